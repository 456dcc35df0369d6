package parser

import (
	"fmt"

	"permute/internal/ast"
	"permute/internal/diag"
	"permute/internal/lexer"
	"permute/internal/source"
	"permute/internal/token"
)

type Options struct {
	// MaxDiagnostics ограничивает количество собираемых диагностик.
	MaxDiagnostics int
}

type Result struct {
	Pattern *ast.Pattern
	Bag     *diag.Bag
}

// Parser — состояние разбора одного шаблона.
type Parser struct {
	lx    *lexer.Lexer
	arena *ast.Arena
	bag   *diag.Bag
	text  *source.Text
}

// Parse — входная точка: текст шаблона → дерево + диагностики.
// Дерево возвращается даже при ошибках (насколько удалось разобрать),
// но использовать его можно только если !Bag.HasErrors().
func Parse(patternText string, opts Options) Result {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}
	text := source.NewText(patternText)
	bag := diag.NewBag(maxDiag)
	p := &Parser{
		lx:    lexer.New(text, bag),
		arena: ast.NewArena(16),
		bag:   bag,
		text:  text,
	}

	var root ast.NodeID
	if text.Len() == 0 {
		bag.Add(diag.NewError(diag.SynEmptyPattern, source.Span{}, "empty pattern"))
		root = p.arena.New(ast.Node{Kind: ast.NodeSeq})
	} else {
		root = p.parseSequence(true)
	}

	bag.Sort()
	return Result{
		Pattern: &ast.Pattern{Arena: p.arena, Root: root, Text: text},
		Bag:     bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseSequence разбирает конкатенацию термов. На верхнем уровне (top)
// останавливается только на EOF, внутри ветви — на `,` и `}`.
func (p *Parser) parseSequence(top bool) ast.NodeID {
	start := p.lx.Peek().Span
	var kids []ast.NodeID

	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return p.finishSequence(kids, start)

		case token.Chunk:
			p.lx.Next()
			if tok.Text != "" {
				kids = append(kids, p.arena.New(ast.Node{
					Kind: ast.NodeLiteral,
					Span: tok.Span,
					Text: tok.Text,
				}))
			}

		case token.LBrace:
			kids = append(kids, p.parseGroup())

		case token.RBrace:
			if top {
				// `}` вне группы — ошибка, пропускаем и продолжаем
				p.lx.Next()
				p.bag.Add(diag.NewError(
					diag.SynUnbalancedClose,
					tok.Span,
					"unmatched `}`, not inside a group",
				))
				continue
			}
			return p.finishSequence(kids, start)

		case token.Comma:
			if top {
				// лексер не выдаёт Comma на глубине 0
				p.lx.Next()
				continue
			}
			return p.finishSequence(kids, start)

		case token.DotDot:
			// `..` может стоять только между двумя одиночными байтами
			// в начале альтернативы; сюда мы попадаем при любом другом
			// употреблении
			p.lx.Next()
			p.bag.Add(diag.NewError(
				diag.SynRangeDangling,
				tok.Span,
				"`..` is only allowed between two single-byte range endpoints",
			))
			p.skipBranch()
			return p.finishSequence(kids, start)

		default:
			p.lx.Next()
		}
	}
}

// finishSequence сворачивает собранные термы: одиночный терм возвращается
// как есть, пустая последовательность становится пустым литералом.
func (p *Parser) finishSequence(kids []ast.NodeID, start source.Span) ast.NodeID {
	switch len(kids) {
	case 0:
		return p.arena.New(ast.Node{
			Kind: ast.NodeLiteral,
			Span: source.Span{Start: start.Start, End: start.Start},
		})
	case 1:
		return kids[0]
	default:
		span := p.arena.Get(kids[0]).Span
		for _, kid := range kids[1:] {
			span = span.Cover(p.arena.Get(kid).Span)
		}
		return p.arena.New(ast.Node{
			Kind: ast.NodeSeq,
			Span: span,
			Kids: kids,
		})
	}
}

// parseGroup разбирает `{alt,alt,...}`. Открывающая скобка ещё не съедена.
func (p *Parser) parseGroup() ast.NodeID {
	open := p.lx.Next() // LBrace
	var branches []ast.NodeID

	for {
		branches = append(branches, p.parseBranch())

		switch tok := p.lx.Peek(); tok.Kind {
		case token.Comma:
			p.lx.Next()
		case token.RBrace:
			closing := p.lx.Next()
			return p.arena.New(ast.Node{
				Kind: ast.NodeAlt,
				Span: open.Span.Cover(closing.Span),
				Kids: branches,
			})
		default: // EOF
			p.bag.Add(diag.NewError(
				diag.SynUnbalancedOpen,
				open.Span,
				"unbalanced `{`, group is never closed",
			))
			return p.arena.New(ast.Node{
				Kind: ast.NodeAlt,
				Span: open.Span.Cover(tok.Span),
				Kids: branches,
			})
		}
	}
}

// parseBranch разбирает одну альтернативу группы: либо диапазон `x..y`,
// либо произвольную последовательность. Пустая альтернатива даёт пустой
// литерал (кардинальность 1).
func (p *Parser) parseBranch() ast.NodeID {
	first := p.lx.Peek()

	if first.Kind == token.DotDot {
		p.lx.Next()
		p.bag.Add(diag.NewError(
			diag.SynRangeEndpoint,
			first.Span,
			"range is missing its start",
		))
		p.skipBranch()
		return p.emptyLiteral(first.Span)
	}

	if first.Kind == token.Chunk {
		chunk := p.lx.Next()
		if p.at(token.DotDot) {
			return p.parseRange(chunk)
		}
		// обычная ветвь, начавшаяся с литерала: возвращаем чанк в
		// последовательность через уже разобранный узел
		var kids []ast.NodeID
		if chunk.Text != "" {
			kids = append(kids, p.arena.New(ast.Node{
				Kind: ast.NodeLiteral,
				Span: chunk.Span,
				Text: chunk.Text,
			}))
		}
		rest := p.parseSequence(false)
		if n := p.arena.Get(rest); n.Kind == ast.NodeLiteral && n.Text == "" && len(kids) > 0 {
			// хвост пуст — ветвь состоит из одного чанка
			if len(kids) == 1 {
				return kids[0]
			}
		} else {
			kids = append(kids, rest)
		}
		return p.finishSequence(kids, first.Span)
	}

	return p.parseSequence(false)
}

// parseRange разбирает `lo..hi` после уже съеденного стартового чанка.
func (p *Parser) parseRange(start token.Token) ast.NodeID {
	dots := p.lx.Next() // DotDot
	span := start.Span.Cover(dots.Span)

	if len(start.Text) != 1 {
		p.bag.Add(diag.NewError(
			diag.SynRangeEndpoint,
			start.Span,
			fmt.Sprintf("range start must be a single byte, got %q", start.Text),
		))
		p.skipBranch()
		return p.emptyLiteral(span)
	}

	endTok := p.lx.Peek()
	if endTok.Kind != token.Chunk {
		p.bag.Add(diag.NewError(
			diag.SynRangeMissingEnd,
			span.Cover(endTok.Span),
			"range is missing its end",
		))
		p.skipBranch()
		return p.emptyLiteral(span)
	}
	p.lx.Next()
	span = span.Cover(endTok.Span)

	if len(endTok.Text) != 1 {
		p.bag.Add(diag.NewError(
			diag.SynRangeEndpoint,
			endTok.Span,
			fmt.Sprintf("range end must be a single byte, got %q", endTok.Text),
		))
		p.skipBranch()
		return p.emptyLiteral(span)
	}

	// диапазон обязан заканчивать альтернативу
	if next := p.lx.Peek(); next.Kind != token.Comma && next.Kind != token.RBrace && next.Kind != token.EOF {
		p.bag.Add(diag.NewError(
			diag.SynRangeDangling,
			next.Span,
			"range alternative must be followed by `,` or `}`",
		))
		p.skipBranch()
		return p.emptyLiteral(span)
	}

	lo, hi := start.Text[0], endTok.Text[0]
	if lo > hi {
		p.bag.Add(diag.NewError(
			diag.SynRangeDescending,
			span,
			fmt.Sprintf("descending range %q..%q (start is greater than end)", lo, hi),
		))
		return p.emptyLiteral(span)
	}

	return p.arena.New(ast.Node{
		Kind: ast.NodeRange,
		Span: span,
		Lo:   lo,
		Hi:   hi,
	})
}

// skipBranch пропускает токены до конца текущей альтернативы,
// чтобы одна ошибка не порождала каскад.
func (p *Parser) skipBranch() {
	for {
		switch p.lx.Peek().Kind {
		case token.Comma, token.RBrace, token.EOF:
			return
		case token.LBrace:
			p.parseGroup() // вложенную группу пропускаем целиком
		default:
			p.lx.Next()
		}
	}
}

func (p *Parser) emptyLiteral(sp source.Span) ast.NodeID {
	return p.arena.New(ast.Node{
		Kind: ast.NodeLiteral,
		Span: source.Span{Start: sp.Start, End: sp.Start},
	})
}

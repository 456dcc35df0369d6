package lexer

import (
	"strings"

	"permute/internal/diag"
	"permute/internal/source"
	"permute/internal/token"
)

// Lexer разбивает текст шаблона на токены.
// Запятая и `..` являются структурными только внутри групп `{...}`,
// снаружи они остаются обычными байтами — поэтому лексер следит за
// глубиной вложенности.
type Lexer struct {
	text   *source.Text
	cursor Cursor
	bag    *diag.Bag
	depth  uint32
	look   *token.Token // 1-элементный буфер для токена
}

// New создаёт лексер над текстом шаблона. Диагностики попадают в bag.
func New(text *source.Text, bag *diag.Bag) *Lexer {
	return &Lexer{
		text:   text,
		cursor: NewCursor(text),
		bag:    bag,
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scan()
		lx.look = &tok
	}
	return *lx.look
}

// Next возвращает следующий токен. После конца текста всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	switch ch := lx.cursor.Peek(); {
	case ch == '{':
		lx.cursor.Bump()
		lx.depth++
		return token.Token{Kind: token.LBrace, Span: lx.cursor.SpanFrom(start)}

	case ch == '}':
		lx.cursor.Bump()
		if lx.depth > 0 {
			lx.depth--
		}
		return token.Token{Kind: token.RBrace, Span: lx.cursor.SpanFrom(start)}

	case ch == ',' && lx.depth > 0:
		lx.cursor.Bump()
		return token.Token{Kind: token.Comma, Span: lx.cursor.SpanFrom(start)}

	case lx.atRangeDots():
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Token{Kind: token.DotDot, Span: lx.cursor.SpanFrom(start)}

	default:
		return lx.scanChunk()
	}
}

// scanChunk накапливает литеральные байты до следующего структурного токена.
// Байт после `\` всегда попадает в чанк как есть.
func (lx *Lexer) scanChunk() token.Token {
	start := lx.cursor.Mark()
	var b strings.Builder

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '{' || ch == '}' {
			break
		}
		if ch == ',' && lx.depth > 0 {
			break
		}
		if lx.atRangeDots() {
			break
		}
		if ch == '\\' {
			escMark := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				lx.bag.Add(diag.NewError(
					diag.LexTrailingEscape,
					lx.cursor.SpanFrom(escMark),
					"trailing `\\` at end of pattern",
				))
				break
			}
			b.WriteByte(lx.cursor.Bump())
			continue
		}
		b.WriteByte(lx.cursor.Bump())
	}

	return token.Token{
		Kind: token.Chunk,
		Span: lx.cursor.SpanFrom(start),
		Text: b.String(),
	}
}

// atRangeDots проверяет, стоит ли курсор на `..` внутри группы.
// Одиночная точка — обычный байт.
func (lx *Lexer) atRangeDots() bool {
	if lx.depth == 0 {
		return false
	}
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && b1 == '.'
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

package token

import (
	"fmt"

	"permute/internal/source"
)

// Token представляет один токен шаблона с его позицией.
// Text заполнен только для Chunk и содержит байты уже без экранирования,
// поэтому Span может быть длиннее Text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsStructural reports whether the token shapes a group rather than
// contributing literal bytes.
func (t Token) IsStructural() bool {
	switch t.Kind {
	case LBrace, RBrace, Comma, DotDot:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	if t.Kind == Chunk {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}

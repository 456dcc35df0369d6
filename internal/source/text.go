package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Text хранит исходный текст шаблона. Все Span'ы считаются относительно него.
type Text struct {
	Content []byte
}

// NewText wraps a raw pattern string.
func NewText(pattern string) *Text {
	return &Text{Content: []byte(pattern)}
}

// Len возвращает длину текста в байтах.
func (t *Text) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.Content))
	if err != nil {
		panic(fmt.Errorf("pattern length overflow: %w", err))
	}
	return n
}

// Slice returns the raw bytes the span points at.
func (t *Text) Slice(sp Span) string {
	if sp.Start > sp.End || sp.End > t.Len() {
		return ""
	}
	return string(t.Content[sp.Start:sp.End])
}

package lexer

import (
	"permute/internal/source"
)

// Cursor представляет собой позицию в тексте шаблона.
type Cursor struct {
	Text *source.Text
	Off  uint32
}

// NewCursor creates a new cursor over the provided pattern text.
func NewCursor(t *source.Text) Cursor {
	return Cursor{Text: t, Off: 0}
}

// EOF проверяет, достигнут ли конец текста.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Text.Len()
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Text.Content[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Text.Len() {
		return 0, 0, false
	}
	return c.Text.Content[c.Off], c.Text.Content[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text.Content[c.Off]
	c.Off++
	return b
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

package space

import (
	"permute/internal/ast"
)

// Advance переводит курсор на следующую комбинацию.
// Возвращает false, когда пространство исчерпано: перенос вышел за корень.
// Исчерпание — терминальное состояние, не ошибка.
//
// Амортизированная стоимость шага — O(1) касаний узлов; худший случай —
// O(глубины дерева) из-за распространения переноса, как у одометра.
func (c *Cursor) Advance() bool {
	if c.done {
		return false
	}
	if c.advance(c.pat.Root) {
		c.done = true
		return false
	}
	return true
}

// advance возвращает true, если узел переполнился и обнулился (перенос).
func (c *Cursor) advance(id ast.NodeID) bool {
	n := c.pat.Node(id)
	switch n.Kind {
	case ast.NodeLiteral:
		// единственная комбинация: всегда переносим дальше
		return true

	case ast.NodeRange:
		c.pos[id]++
		if c.pos[id] == uint32(n.Hi-n.Lo)+1 {
			c.pos[id] = 0
			return true
		}
		return false

	case ast.NodeSeq:
		// младший разряд справа; перенос идёт влево
		for i := len(n.Kids) - 1; i >= 0; i-- {
			if !c.advance(n.Kids[i]) {
				return false
			}
		}
		return true

	case ast.NodeAlt:
		if !c.advance(n.Kids[c.pos[id]]) {
			return false
		}
		// текущая ветвь исчерпана и сама обнулилась — к следующей
		c.pos[id]++
		if c.pos[id] == uint32(len(n.Kids)) {
			c.pos[id] = 0
			return true
		}
		return false
	}
	return true
}

// Render дописывает строку текущей позиции в buf и возвращает результат.
// Чистый нисходящий проход; buf позволяет переиспользовать память между
// шагами.
func (c *Cursor) Render(buf []byte) []byte {
	if !c.pat.Root.IsValid() {
		return buf
	}
	return c.render(c.pat.Root, buf)
}

func (c *Cursor) render(id ast.NodeID, buf []byte) []byte {
	n := c.pat.Node(id)
	switch n.Kind {
	case ast.NodeLiteral:
		return append(buf, n.Text...)

	case ast.NodeRange:
		return append(buf, n.Lo+byte(c.pos[id]))

	case ast.NodeSeq:
		for _, kid := range n.Kids {
			buf = c.render(kid, buf)
		}
		return buf

	case ast.NodeAlt:
		return c.render(n.Kids[c.pos[id]], buf)
	}
	return buf
}

package ast

import (
	"permute/internal/source"
)

// Pattern — разобранное дерево шаблона вместе с исходным текстом.
// Дерево неизменяемо после парсинга; единственная мутация — аннотация
// кардинальностей (space.Annotate).
type Pattern struct {
	Arena *Arena
	Root  NodeID
	Text  *source.Text
}

// Node возвращает узел по идентификатору.
func (p *Pattern) Node(id NodeID) *Node {
	return p.Arena.Get(id)
}

// Walk обходит дерево в глубину, родитель перед детьми.
// Если fn возвращает false, поддерево не посещается.
func (p *Pattern) Walk(fn func(id NodeID, n *Node) bool) {
	p.walk(p.Root, fn)
}

func (p *Pattern) walk(id NodeID, fn func(id NodeID, n *Node) bool) {
	if !id.IsValid() {
		return
	}
	n := p.Node(id)
	if !fn(id, n) {
		return
	}
	for _, kid := range n.Kids {
		p.walk(kid, fn)
	}
}

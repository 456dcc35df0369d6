package ast

import (
	"math/big"

	"permute/internal/source"
)

// NodeKind enumerates the different kinds of pattern nodes.
type NodeKind uint8

const (
	// NodeLiteral represents a fixed run of bytes; cardinality 1.
	NodeLiteral NodeKind = iota
	// NodeRange represents an inclusive byte range `lo..hi`.
	NodeRange
	// NodeAlt represents comma-separated alternatives of a group.
	NodeAlt
	// NodeSeq represents the concatenation of its children.
	NodeSeq
)

func (k NodeKind) String() string {
	switch k {
	case NodeLiteral:
		return "literal"
	case NodeRange:
		return "range"
	case NodeAlt:
		return "alt"
	case NodeSeq:
		return "seq"
	}
	return "unknown"
}

// Node — один узел дерева шаблона. Поля заполняются в зависимости от Kind:
// Text для литералов, Lo/Hi для диапазонов, Kids для ветвей и детей.
// Card заполняет space.Annotate; до этого поле равно nil.
type Node struct {
	Kind NodeKind
	Span source.Span
	Text string
	Lo   byte
	Hi   byte
	Kids []NodeID
	Card *big.Int
}

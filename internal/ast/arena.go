package ast

// NodeID ссылается на узел в арене. Ноль — отсутствующий узел.
type NodeID uint32

const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// Arena владеет всеми узлами одного шаблона. Узлы никогда не удаляются,
// дерево остаётся ацикличным по построению.
type Arena struct {
	nodes []Node
}

// NewArena creates an arena with capacity for capHint nodes.
func NewArena(capHint uint) *Arena {
	return &Arena{nodes: make([]Node, 0, capHint)}
}

// New размещает узел и возвращает его идентификатор (1-based).
func (a *Arena) New(n Node) NodeID {
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes))
}

func (a *Arena) Get(id NodeID) *Node {
	if id == NoNode {
		return nil
	}
	return &a.nodes[id-1]
}

func (a *Arena) Len() uint32 {
	return uint32(len(a.nodes))
}

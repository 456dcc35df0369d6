package space

import (
	"fmt"
	"math/big"

	"permute/internal/ast"
)

// Cursor — изменяемое состояние перечисления: по одной маленькой позиции
// на узел дерева (смещение для диапазона, индекс ветви для альтернативы).
// Строка текущей позиции — чистая функция (дерево, курсор); никакого
// скрытого состояния больше нет.
type Cursor struct {
	pat  *ast.Pattern
	pos  []uint32 // индексируется NodeID (1-based), слот 0 не используется
	done bool
}

// NewCursor создаёт курсор в начальной позиции (лексикографически первая
// комбинация). Аннотирует кардинальности, если это ещё не сделано.
func NewCursor(p *ast.Pattern) *Cursor {
	Annotate(p)
	return &Cursor{
		pat:  p,
		pos:  make([]uint32, p.Arena.Len()+1),
		done: !p.Root.IsValid(),
	}
}

// Done сообщает, исчерпано ли пространство.
func (c *Cursor) Done() bool {
	return c.done
}

// Reset возвращает курсор к позиции 0.
func (c *Cursor) Reset() {
	for i := range c.pos {
		c.pos[i] = 0
	}
	c.done = !c.pat.Root.IsValid()
}

// Seek устанавливает курсор на линейный индекс k ∈ [0, total) без
// проигрывания промежуточных шагов — той же смешанно-радиксной
// декомпозицией, которой курсор продвигается.
func (c *Cursor) Seek(k *big.Int) error {
	total := Annotate(c.pat)
	if k.Sign() < 0 || k.Cmp(total) >= 0 {
		return fmt.Errorf("index %s out of range [0, %s)", k, total)
	}
	c.Reset()
	c.seek(c.pat.Root, new(big.Int).Set(k))
	return nil
}

func (c *Cursor) seek(id ast.NodeID, k *big.Int) {
	n := c.pat.Node(id)
	switch n.Kind {
	case ast.NodeLiteral:
		// k здесь всегда 0

	case ast.NodeRange:
		// k < 256, помещается без потерь
		c.pos[id] = uint32(k.Uint64())

	case ast.NodeSeq:
		// правые дети меняются быстрее: раскладываем справа налево
		for i := len(n.Kids) - 1; i >= 0; i-- {
			kid := n.Kids[i]
			rem := new(big.Int)
			k.QuoRem(k, c.pat.Node(kid).Card, rem)
			c.seek(kid, rem)
		}

	case ast.NodeAlt:
		for i, kid := range n.Kids {
			card := c.pat.Node(kid).Card
			if k.Cmp(card) < 0 {
				c.pos[id] = uint32(i)
				c.seek(kid, k)
				return
			}
			k.Sub(k, card)
		}
	}
}

// Index возвращает линейный индекс текущей позиции — точную обратную
// функцию к Seek.
func (c *Cursor) Index() *big.Int {
	if !c.pat.Root.IsValid() {
		return new(big.Int)
	}
	return c.index(c.pat.Root)
}

func (c *Cursor) index(id ast.NodeID) *big.Int {
	n := c.pat.Node(id)
	switch n.Kind {
	case ast.NodeRange:
		return big.NewInt(int64(c.pos[id]))

	case ast.NodeSeq:
		idx := new(big.Int)
		for _, kid := range n.Kids {
			idx.Mul(idx, c.pat.Node(kid).Card)
			idx.Add(idx, c.index(kid))
		}
		return idx

	case ast.NodeAlt:
		idx := new(big.Int)
		branch := int(c.pos[id])
		for _, kid := range n.Kids[:branch] {
			idx.Add(idx, c.pat.Node(kid).Card)
		}
		idx.Add(idx, c.index(n.Kids[branch]))
		return idx

	default: // NodeLiteral
		return new(big.Int)
	}
}

package space

import (
	"math/big"

	"permute/internal/ast"
)

// Annotate вычисляет кардинальности всех узлов снизу вверх и возвращает
// кардинальность корня — полный размер пространства. Арифметика только
// на math/big: реальные шаблоны легко выходят за пределы uint64.
// Повторный вызов бесплатен (узлы уже аннотированы).
//
// Стоимость — O(числа узлов) и никогда не зависит от размера пространства.
func Annotate(p *ast.Pattern) *big.Int {
	if !p.Root.IsValid() {
		return new(big.Int)
	}
	return annotate(p, p.Root)
}

func annotate(p *ast.Pattern, id ast.NodeID) *big.Int {
	n := p.Node(id)
	if n.Card != nil {
		return n.Card
	}

	switch n.Kind {
	case ast.NodeLiteral:
		n.Card = big.NewInt(1)

	case ast.NodeRange:
		n.Card = big.NewInt(int64(n.Hi) - int64(n.Lo) + 1)

	case ast.NodeAlt:
		// сумма ветвей; пустая ветвь — это пустой литерал с кардинальностью 1
		sum := new(big.Int)
		for _, kid := range n.Kids {
			sum.Add(sum, annotate(p, kid))
		}
		n.Card = sum

	case ast.NodeSeq:
		prod := big.NewInt(1)
		for _, kid := range n.Kids {
			prod.Mul(prod, annotate(p, kid))
		}
		n.Card = prod
	}

	return n.Card
}

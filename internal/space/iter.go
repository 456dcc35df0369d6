package space

import (
	"math/big"

	"permute/internal/ast"
)

// Iter — ленивая последовательность строк пространства.
// Возвращаемый Next срез валиден до следующего вызова Next.
type Iter struct {
	cur     *Cursor
	buf     []byte
	started bool
}

// NewIter создаёт итератор с позиции 0.
func NewIter(p *ast.Pattern) *Iter {
	return &Iter{cur: NewCursor(p)}
}

// Seek перезапускает итератор с линейного индекса k.
func (it *Iter) Seek(k *big.Int) error {
	if err := it.cur.Seek(k); err != nil {
		return err
	}
	it.started = false
	return nil
}

// Next выдаёт следующую строку. После исчерпания всегда возвращает false.
func (it *Iter) Next() ([]byte, bool) {
	if it.cur.Done() {
		return nil, false
	}
	if it.started {
		if !it.cur.Advance() {
			return nil, false
		}
	}
	it.started = true
	it.buf = it.cur.Render(it.buf[:0])
	return it.buf, true
}

// Index возвращает линейный индекс строки, которую выдал последний Next
// (или позицию старта, если Next ещё не вызывался).
func (it *Iter) Index() *big.Int {
	return it.cur.Index()
}

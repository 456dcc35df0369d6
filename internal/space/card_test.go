package space

import (
	"math/big"
	"testing"

	"permute/internal/ast"
	"permute/internal/parser"
)

// compile разбирает шаблон и падает на любой диагностике.
func compile(t *testing.T, pattern string) *ast.Pattern {
	t.Helper()
	res := parser.Parse(pattern, parser.Options{})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", pattern, res.Bag.Items())
	}
	return res.Pattern
}

func checkCard(t *testing.T, pattern string, want int64) {
	t.Helper()
	total := Annotate(compile(t, pattern))
	if total.Cmp(big.NewInt(want)) != 0 {
		t.Errorf("pattern %q: got cardinality %s, want %d", pattern, total, want)
	}
}

func TestCardinalities(t *testing.T) {
	checkCard(t, "abc", 1)
	checkCard(t, "{x,y,z}", 3)
	checkCard(t, "{a..z}", 26)
	checkCard(t, "{a..a}", 1)
	checkCard(t, "{a..z}{0..9}", 260)
	checkCard(t, "a{b,c{d,e{f,g}}}", 4)
	checkCard(t, "{x,}", 2)
	checkCard(t, "{}", 1)
	checkCard(t, "{a..z}{a..z}{a..z}{a..z}{a..z}", 11881376)
}

// TestHugeCardinality: счёт не должен упираться в uint64.
func TestHugeCardinality(t *testing.T) {
	pattern := ""
	for i := 0; i < 16; i++ {
		pattern += "{\x20..\x7e}" // 95 печатных ASCII-байтов
	}
	total := Annotate(compile(t, pattern))

	want := new(big.Int).Exp(big.NewInt(95), big.NewInt(16), nil)
	if total.Cmp(want) != 0 {
		t.Fatalf("got %s, want 95^16 = %s", total, want)
	}
}

// TestAnnotateIdempotent: повторный вызов возвращает тот же объект.
func TestAnnotateIdempotent(t *testing.T) {
	p := compile(t, "{a..z}{0..9}")
	first := Annotate(p)
	second := Annotate(p)
	if first != second {
		t.Error("re-annotation should reuse memoized cardinalities")
	}
}

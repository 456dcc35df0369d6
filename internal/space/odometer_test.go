package space

import (
	"math/big"
	"testing"
)

// drain собирает всё пространство в срез строк.
func drain(t *testing.T, pattern string) []string {
	t.Helper()
	it := NewIter(compile(t, pattern))
	var out []string
	for {
		line, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, string(line))
	}
}

func checkOrder(t *testing.T, pattern string, want []string) {
	t.Helper()
	got := drain(t, pattern)
	if len(got) != len(want) {
		t.Fatalf("pattern %q: got %d lines %v, want %d", pattern, len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %q line %d: got %q, want %q", pattern, i, got[i], want[i])
		}
	}
}

func TestOrderNested(t *testing.T) {
	checkOrder(t, "a{b,c{d,e{f,g}}}", []string{"ab", "acd", "acef", "aceg"})
}

// TestOrderRightmostFastest: правая группа крутится быстрее левой.
func TestOrderRightmostFastest(t *testing.T) {
	checkOrder(t, "{a,b}{0,1}", []string{"a0", "a1", "b0", "b1"})
}

func TestOrderRange(t *testing.T) {
	checkOrder(t, "x{0..3}", []string{"x0", "x1", "x2", "x3"})
}

func TestOrderEmptyBranch(t *testing.T) {
	checkOrder(t, "{x,}", []string{"x", ""})
	checkOrder(t, "a{,b}c", []string{"ac", "abc"})
}

func TestOrderLiteralOnly(t *testing.T) {
	checkOrder(t, "hello", []string{"hello"})
}

// TestDrainMatchesCardinality: перебор выдаёт ровно столько строк, сколько
// обещает счётчик, без дубликатов.
func TestDrainMatchesCardinality(t *testing.T) {
	for _, pattern := range []string{
		"{a..z}{0..9}",
		"pre{a,bb,}{0..4}post",
		"{a,{b,{c,d}}}{x..z}",
	} {
		p := compile(t, pattern)
		total := Annotate(p)

		it := NewIter(p)
		seen := make(map[string]struct{})
		count := int64(0)
		for {
			line, ok := it.Next()
			if !ok {
				break
			}
			s := string(line)
			if _, dup := seen[s]; dup {
				t.Errorf("pattern %q: duplicate line %q", pattern, s)
			}
			seen[s] = struct{}{}
			count++
		}
		if total.Cmp(big.NewInt(count)) != 0 {
			t.Errorf("pattern %q: drained %d lines, cardinality says %s", pattern, count, total)
		}
	}
}

// TestExhaustionIsSticky: после исчерпания Next всегда возвращает false.
func TestExhaustionIsSticky(t *testing.T) {
	it := NewIter(compile(t, "{a,b}"))
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("Next returned a line after exhaustion")
		}
	}
}

// TestDeterminism: два независимых прохода дают одинаковую последовательность.
func TestDeterminism(t *testing.T) {
	const pattern = "{a,bb}{0..2}{x,y}"
	first := drain(t, pattern)
	second := drain(t, pattern)
	if len(first) != len(second) {
		t.Fatalf("runs disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("line %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

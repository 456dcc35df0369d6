package space

import (
	"math/big"
	"testing"
)

// TestSeekMatchesDrain: Seek(k) приземляется ровно на k-ю строку перебора.
func TestSeekMatchesDrain(t *testing.T) {
	const pattern = "a{b,c{d,e{f,g}}}{0..2}"
	all := drain(t, pattern)

	p := compile(t, pattern)
	for k := range all {
		it := NewIter(p)
		if err := it.Seek(big.NewInt(int64(k))); err != nil {
			t.Fatalf("Seek(%d): %v", k, err)
		}
		line, ok := it.Next()
		if !ok {
			t.Fatalf("Seek(%d): iterator immediately exhausted", k)
		}
		if string(line) != all[k] {
			t.Errorf("Seek(%d): got %q, want %q", k, line, all[k])
		}
	}
}

// TestSeekThenDrain: после Seek(k) остаток совпадает с хвостом полного прохода.
func TestSeekThenDrain(t *testing.T) {
	const pattern = "{a..e}{0..9}"
	all := drain(t, pattern)

	it := NewIter(compile(t, pattern))
	const skip = 17
	if err := it.Seek(big.NewInt(skip)); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	var rest []string
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, string(line))
	}
	want := all[skip:]
	if len(rest) != len(want) {
		t.Fatalf("got %d lines after seek, want %d", len(rest), len(want))
	}
	for i := range want {
		if rest[i] != want[i] {
			t.Fatalf("line %d after seek: got %q, want %q", i, rest[i], want[i])
		}
	}
}

// TestIndexRoundTrip: Index — точная обратная функция к Seek.
func TestIndexRoundTrip(t *testing.T) {
	p := compile(t, "{a,bb,}{0..4}{x,y{1..3}}")
	total := Annotate(p)

	cur := NewCursor(p)
	for k := big.NewInt(0); k.Cmp(total) < 0; k.Add(k, big.NewInt(1)) {
		if err := cur.Seek(k); err != nil {
			t.Fatalf("Seek(%s): %v", k, err)
		}
		if got := cur.Index(); got.Cmp(k) != 0 {
			t.Fatalf("Index after Seek(%s): got %s", k, got)
		}
	}
}

// TestIndexTracksAdvance: индекс растёт на единицу с каждым шагом.
func TestIndexTracksAdvance(t *testing.T) {
	cur := NewCursor(compile(t, "{a,b}{0..3}"))
	want := big.NewInt(0)
	for {
		if got := cur.Index(); got.Cmp(want) != 0 {
			t.Fatalf("got index %s, want %s", got, want)
		}
		if !cur.Advance() {
			break
		}
		want.Add(want, big.NewInt(1))
	}
}

func TestSeekOutOfRange(t *testing.T) {
	cur := NewCursor(compile(t, "{a,b,c}"))
	if err := cur.Seek(big.NewInt(3)); err == nil {
		t.Error("Seek(total) should fail")
	}
	if err := cur.Seek(big.NewInt(-1)); err == nil {
		t.Error("Seek(-1) should fail")
	}
	if err := cur.Seek(big.NewInt(2)); err != nil {
		t.Errorf("Seek(total-1) should succeed, got %v", err)
	}
}

// TestSeekDoesNotMutateArgument: вызывающий может переиспользовать k.
func TestSeekDoesNotMutateArgument(t *testing.T) {
	cur := NewCursor(compile(t, "{a..z}{a..z}"))
	k := big.NewInt(123)
	if err := cur.Seek(k); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if k.Cmp(big.NewInt(123)) != 0 {
		t.Errorf("Seek mutated its argument: %s", k)
	}
}

func TestReset(t *testing.T) {
	cur := NewCursor(compile(t, "{a,b}{0,1}"))
	cur.Advance()
	cur.Advance()
	cur.Reset()
	if cur.Index().Sign() != 0 {
		t.Errorf("after Reset: got index %s, want 0", cur.Index())
	}
	if got := string(cur.Render(nil)); got != "a0" {
		t.Errorf("after Reset: got %q, want \"a0\"", got)
	}
}

package parser

import (
	"testing"

	"permute/internal/ast"
	"permute/internal/diag"
)

func mustParse(t *testing.T, pattern string) *ast.Pattern {
	t.Helper()
	res := Parse(pattern, Options{})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", pattern, res.Bag.Items())
	}
	return res.Pattern
}

func mustFail(t *testing.T, pattern string, code diag.Code) diag.Diagnostic {
	t.Helper()
	res := Parse(pattern, Options{})
	if !res.Bag.HasErrors() {
		t.Fatalf("expected parse error for %q", pattern)
	}
	for _, d := range res.Bag.Items() {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("pattern %q: no diagnostic with code %s, got %v", pattern, code, res.Bag.Items())
	return diag.Diagnostic{}
}

func TestSimpleLiteral(t *testing.T) {
	p := mustParse(t, "abc")
	root := p.Node(p.Root)
	if root.Kind != ast.NodeLiteral || root.Text != "abc" {
		t.Fatalf("got %s %q, want literal \"abc\"", root.Kind, root.Text)
	}
}

func TestGroupShape(t *testing.T) {
	p := mustParse(t, "abc{x,y,z}")
	root := p.Node(p.Root)
	if root.Kind != ast.NodeSeq || len(root.Kids) != 2 {
		t.Fatalf("got root %s with %d kids, want seq with 2", root.Kind, len(root.Kids))
	}
	alt := p.Node(root.Kids[1])
	if alt.Kind != ast.NodeAlt || len(alt.Kids) != 3 {
		t.Fatalf("got %s with %d branches, want alt with 3", alt.Kind, len(alt.Kids))
	}
}

func TestNestedGroups(t *testing.T) {
	p := mustParse(t, "a{b,c{x,y},d}")
	root := p.Node(p.Root)
	alt := p.Node(root.Kids[1])
	if len(alt.Kids) != 3 {
		t.Fatalf("got %d branches, want 3", len(alt.Kids))
	}
	middle := p.Node(alt.Kids[1])
	if middle.Kind != ast.NodeSeq || len(middle.Kids) != 2 {
		t.Fatalf("middle branch: got %s with %d kids, want seq with 2", middle.Kind, len(middle.Kids))
	}
}

func TestRangeNode(t *testing.T) {
	p := mustParse(t, "{a..z}")
	alt := p.Node(p.Root)
	if alt.Kind != ast.NodeAlt || len(alt.Kids) != 1 {
		t.Fatalf("got %s with %d kids, want alt with 1", alt.Kind, len(alt.Kids))
	}
	rng := p.Node(alt.Kids[0])
	if rng.Kind != ast.NodeRange || rng.Lo != 'a' || rng.Hi != 'z' {
		t.Fatalf("got %s %q..%q, want range 'a'..'z'", rng.Kind, rng.Lo, rng.Hi)
	}
}

// TestRangeAmongAlternatives: диапазон может стоять в любой позиции ветви.
func TestRangeAmongAlternatives(t *testing.T) {
	p := mustParse(t, "{a..c,x,0..3}")
	alt := p.Node(p.Root)
	if len(alt.Kids) != 3 {
		t.Fatalf("got %d branches, want 3", len(alt.Kids))
	}
	if p.Node(alt.Kids[0]).Kind != ast.NodeRange {
		t.Error("first branch should be a range")
	}
	if p.Node(alt.Kids[1]).Kind != ast.NodeLiteral {
		t.Error("second branch should be a literal")
	}
	if p.Node(alt.Kids[2]).Kind != ast.NodeRange {
		t.Error("third branch should be a range")
	}
}

// TestSingleByteRange: lo == hi — допустимый вырожденный диапазон.
func TestSingleByteRange(t *testing.T) {
	p := mustParse(t, "{a..a}")
	rng := p.Node(p.Node(p.Root).Kids[0])
	if rng.Kind != ast.NodeRange || rng.Lo != rng.Hi {
		t.Fatalf("got %s, want degenerate range", rng.Kind)
	}
}

func TestEmptyBranches(t *testing.T) {
	for pattern, branches := range map[string]int{
		"{x,}":   2,
		"{,x}":   2,
		"{x,,y}": 3,
		"{}":     1,
	} {
		p := mustParse(t, pattern)
		alt := p.Node(p.Root)
		if alt.Kind != ast.NodeAlt || len(alt.Kids) != branches {
			t.Errorf("pattern %q: got %s with %d branches, want alt with %d",
				pattern, alt.Kind, len(alt.Kids), branches)
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	mustFail(t, "", diag.SynEmptyPattern)
}

// TestUnbalancedOpen: незакрытая группа указывает на свою скобку.
func TestUnbalancedOpen(t *testing.T) {
	d := mustFail(t, "a{b,c", diag.SynUnbalancedOpen)
	if d.Primary.Start != 1 {
		t.Errorf("got error position %d, want 1 (the `{`)", d.Primary.Start)
	}
}

func TestUnbalancedClose(t *testing.T) {
	d := mustFail(t, "ab}c", diag.SynUnbalancedClose)
	if d.Primary.Start != 2 {
		t.Errorf("got error position %d, want 2 (the `}`)", d.Primary.Start)
	}
}

func TestDescendingRange(t *testing.T) {
	mustFail(t, "{z..a}", diag.SynRangeDescending)
}

func TestMalformedRanges(t *testing.T) {
	cases := map[string]diag.Code{
		"{..}":     diag.SynRangeEndpoint,
		"{0..}":    diag.SynRangeMissingEnd,
		"{..0}":    diag.SynRangeEndpoint,
		"{00..}":   diag.SynRangeEndpoint,
		"{00..00}": diag.SynRangeEndpoint,
		"{ab..c}":  diag.SynRangeEndpoint,
		"{a..bc}":  diag.SynRangeEndpoint,
		"{a..b1}":  diag.SynRangeEndpoint,
	}
	for pattern, code := range cases {
		mustFail(t, pattern, code)
	}
}

// TestRangeMustEndBranch: после диапазона — только `,` или `}`.
func TestRangeMustEndBranch(t *testing.T) {
	mustFail(t, "{a..b{x}}", diag.SynRangeDangling)
}

func TestDanglingDots(t *testing.T) {
	mustFail(t, "{x{y}..z}", diag.SynRangeDangling)
}

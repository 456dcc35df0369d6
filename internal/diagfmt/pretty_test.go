package diagfmt

import (
	"strings"
	"testing"

	"permute/internal/diag"
	"permute/internal/source"
)

func TestPrettySingleDiagnostic(t *testing.T) {
	text := source.NewText("a{b,c")
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnbalancedOpen, source.Span{Start: 1, End: 2}, "unbalanced `{`"))

	var sb strings.Builder
	Pretty(&sb, bag, text, PrettyOpts{})
	out := sb.String()

	want := "pattern:2: ERROR P2002: unbalanced `{`\n" +
		"  a{b,c\n" +
		"   ^\n"
	if out != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

// TestPrettyCaretWidth: подчёркивание покрывает весь спан.
func TestPrettyCaretWidth(t *testing.T) {
	text := source.NewText("{ab..c}")
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynRangeEndpoint, source.Span{Start: 1, End: 3}, "endpoint must be one byte"))

	var sb strings.Builder
	Pretty(&sb, bag, text, PrettyOpts{})

	if !strings.Contains(sb.String(), "\n   ^~\n") {
		t.Errorf("marker does not cover the 2-byte span:\n%s", sb.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	text := source.NewText("{x}")
	bag := diag.NewBag(8)
	d := diag.NewError(diag.SynRangeDangling, source.Span{Start: 1, End: 2}, "stray `..`").
		WithNote(source.Span{Start: 0, End: 1}, "group opened here")
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, text, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "pattern:1: note: group opened here") {
		t.Errorf("note line missing:\n%s", out)
	}
}

func TestPrettySortOrder(t *testing.T) {
	text := source.NewText("abcdef")
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnbalancedClose, source.Span{Start: 4, End: 5}, "second"))
	bag.Add(diag.NewError(diag.SynUnbalancedClose, source.Span{Start: 1, End: 2}, "first"))
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, text, PrettyOpts{})
	out := sb.String()

	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Errorf("diagnostics not sorted by position:\n%s", out)
	}
}

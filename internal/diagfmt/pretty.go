package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"permute/internal/diag"
	"permute/internal/source"
)

type PrettyOpts struct {
	// Color включает ANSI-цвета.
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// pattern:<col>: <SEV> <CODE>: <Message>
// затем сам шаблон с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, text *source.Text, opts PrettyOpts) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "pattern:%d: %s %s: %s\n",
			d.Primary.Start+1,
			severityLabel(d.Severity, opts.Color),
			d.Code,
			d.Message,
		)
		underline(w, text, d.Primary, opts.Color)
		for _, note := range d.Notes {
			fmt.Fprintf(w, "pattern:%d: note: %s\n", note.Span.Start+1, note.Msg)
			underline(w, text, note.Span, opts.Color)
		}
	}
}

// underline печатает текст шаблона и строку с ^~~~ под указанным спаном.
// Ширина отступа считается в экранных колонках, не в байтах.
func underline(w io.Writer, text *source.Text, sp source.Span, colored bool) {
	raw := string(text.Content)
	fmt.Fprintf(w, "  %s\n", raw)

	prefix := text.Slice(source.Span{Start: 0, End: sp.Start})
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	width := runewidth.StringWidth(text.Slice(sp))
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = errColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"permute/internal/ast"
)

// FormatTreePretty печатает дерево шаблона с кардинальностями (если они
// уже аннотированы).
func FormatTreePretty(w io.Writer, p *ast.Pattern) error {
	if !p.Root.IsValid() {
		return nil
	}
	return writeNode(w, p, p.Root, "", "")
}

func writeNode(w io.Writer, p *ast.Pattern, id ast.NodeID, indent, childIndent string) error {
	n := p.Node(id)
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, describe(n)); err != nil {
		return err
	}
	for i, kid := range n.Kids {
		prefix, next := childIndent+"├─ ", childIndent+"│  "
		if i == len(n.Kids)-1 {
			prefix, next = childIndent+"└─ ", childIndent+"   "
		}
		if err := writeNode(w, p, kid, prefix, next); err != nil {
			return err
		}
	}
	return nil
}

func describe(n *ast.Node) string {
	card := ""
	if n.Card != nil {
		card = " ×" + n.Card.String()
	}
	switch n.Kind {
	case ast.NodeLiteral:
		return fmt.Sprintf("literal %q%s", n.Text, card)
	case ast.NodeRange:
		return fmt.Sprintf("range %q..%q%s", n.Lo, n.Hi, card)
	case ast.NodeAlt:
		return fmt.Sprintf("alt (%d branches)%s", len(n.Kids), card)
	default:
		return fmt.Sprintf("seq (%d terms)%s", len(n.Kids), card)
	}
}

type jsonNode struct {
	Kind        string     `json:"kind"`
	Span        string     `json:"span"`
	Text        *string    `json:"text,omitempty"`
	Lo          string     `json:"lo,omitempty"`
	Hi          string     `json:"hi,omitempty"`
	Cardinality string     `json:"cardinality,omitempty"`
	Children    []jsonNode `json:"children,omitempty"`
}

// FormatTreeJSON сериализует дерево шаблона в JSON.
func FormatTreeJSON(w io.Writer, p *ast.Pattern) error {
	if !p.Root.IsValid() {
		_, err := io.WriteString(w, "null\n")
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSON(p, p.Root))
}

func buildJSON(p *ast.Pattern, id ast.NodeID) jsonNode {
	n := p.Node(id)
	out := jsonNode{
		Kind: n.Kind.String(),
		Span: n.Span.String(),
	}
	if n.Kind == ast.NodeLiteral {
		text := n.Text
		out.Text = &text
	}
	if n.Kind == ast.NodeRange {
		out.Lo = string(rune(n.Lo))
		out.Hi = string(rune(n.Hi))
	}
	if n.Card != nil {
		out.Cardinality = n.Card.String()
	}
	for _, kid := range n.Kids {
		out.Children = append(out.Children, buildJSON(p, kid))
	}
	return out
}

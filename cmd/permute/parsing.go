package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"permute/internal/ast"
	"permute/internal/diagfmt"
	"permute/internal/parser"
)

// parsePattern разбирает шаблон и при ошибках печатает диагностику в stderr.
// Возвращает дерево только для корректного шаблона.
func parsePattern(cmd *cobra.Command, patternText string) (*ast.Pattern, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result := parser.Parse(patternText, parser.Options{MaxDiagnostics: maxDiagnostics})
	if result.Bag.HasErrors() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		diagfmt.Pretty(os.Stderr, result.Bag, result.Pattern.Text, opts)
		return nil, fmt.Errorf("pattern has %d error(s)", result.Bag.Len())
	}
	return result.Pattern, nil
}

// useColor решает, красить ли вывод в поток f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

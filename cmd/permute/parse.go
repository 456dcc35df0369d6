package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"permute/internal/diagfmt"
	"permute/internal/space"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] PATTERN",
	Short: "Parse a pattern and dump its tree",
	Long:  `Parse shows the pattern tree with per-node cardinalities, for debugging patterns before a long run.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	pat, err := parsePattern(cmd, args[0])
	if err != nil {
		return err
	}
	space.Annotate(pat)

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, pat)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, pat)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

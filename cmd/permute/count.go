package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"permute/internal/observ"
	"permute/internal/space"
)

var countCmd = &cobra.Command{
	Use:   "count PATTERN",
	Short: "Count combinations without enumerating them",
	Long: `Count walks the pattern tree once and prints the exact size of the
space. The cost depends on the number of pattern nodes, never on the
(possibly astronomical) number of combinations.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()

	tParse := timer.Begin("parse")
	pat, err := parsePattern(cmd, args[0])
	if err != nil {
		return err
	}
	timer.End(tParse, "")

	tAnnotate := timer.Begin("annotate")
	total := space.Annotate(pat)
	timer.End(tAnnotate, "")

	// в stdout — только точное число, пригодное для скриптов
	fmt.Println(total.String())

	quiet, verbose := readOutputFlags(cmd)
	if verbose >= 1 && !quiet {
		fmt.Fprintf(os.Stderr, "%s combinations\n", humanCount(total))
	}

	printTimings(cmd, timer)
	return nil
}

var countPrinter = message.NewPrinter(language.English)

// humanCount печатает число с группировкой разрядов; слишком большие для
// int64 значения — в научной нотации.
func humanCount(v *big.Int) string {
	if v.IsInt64() {
		return countPrinter.Sprintf("%d", v.Int64())
	}
	return new(big.Float).SetInt(v).Text('e', 3)
}

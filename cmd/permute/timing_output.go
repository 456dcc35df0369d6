package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"permute/internal/observ"
)

// printTimings печатает сводку таймера в stderr, если запрошен --timings.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !timings {
		return
	}
	fmt.Fprint(os.Stderr, timer.Summary())
}

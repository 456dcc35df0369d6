package main

import (
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"permute/internal/observ"
	"permute/internal/sink"
	"permute/internal/space"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] PATTERN",
	Short: "Stream every combination of a brace pattern",
	Long: `Run enumerates the whole space of the pattern in a fixed order,
one candidate per line on stdout, or feeds each candidate to a
subprocess with --exec and stops on the first success.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	addRunFlags(runCmd)
}

// addRunFlags регистрирует флаги перечисления. Они нужны дважды: команде
// run и корневой команде, которая принимает голый шаблон без подкоманды.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("exec", "e", "", "send candidates to a subprocess (arguments are supported but shell syntax is not)")
	cmd.Flags().String("progress", "", "progress bar on stderr (auto|on|off)")
	cmd.Flags().StringP("skip", "s", "", "start enumeration at linear index N")
	cmd.Flags().Uint64P("limit", "n", 0, "stop after N candidates (0 = unlimited)")
}

func runRun(cmd *cobra.Command, args []string) error {
	execCmdline, err := cmd.Flags().GetString("exec")
	if err != nil {
		return fmt.Errorf("failed to get exec flag: %w", err)
	}
	limit, err := cmd.Flags().GetUint64("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	// конфиг даёт только значения по умолчанию, флаги всегда главнее
	cfg, err := loadFileConfig(".")
	if err != nil {
		return err
	}
	progressValue := cfg.apply(cmd)
	quiet, verbose := readOutputFlags(cmd)

	timer := observ.NewTimer()
	tParse := timer.Begin("parse")
	pat, err := parsePattern(cmd, args[0])
	if err != nil {
		return err
	}
	timer.End(tParse, "")

	tAnnotate := timer.Begin("annotate")
	total := space.Annotate(pat)
	timer.End(tAnnotate, total.String()+" combinations")

	base, err := readSkip(cmd, total)
	if err != nil {
		return err
	}

	it := space.NewIter(pat)
	if base.Sign() > 0 {
		if err := it.Seek(base); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	execMode := execCmdline != ""
	var snk sink.Sink
	if execMode {
		snk, err = sink.NewExec(ctx, execCmdline)
		if err != nil {
			return err
		}
	} else {
		snk = sink.NewStream(os.Stdout)
	}

	if verbose >= 1 && !quiet {
		fmt.Fprintf(os.Stderr, "space size: %s combinations\n", humanCount(total))
		if base.Sign() > 0 {
			fmt.Fprintf(os.Stderr, "starting at index %s\n", humanCount(base))
		}
	}

	mode, err := readProgressMode(progressValue)
	if err != nil {
		return err
	}

	tEnum := timer.Begin("enumerate")
	var out outcome
	if shouldShowProgress(mode, quiet, execMode) {
		out, err = runWithUI(ctx, it, snk, total, base, limit)
	} else {
		out, err = enumerate(ctx, it, snk, limit, nil)
	}
	timer.End(tEnum, fmt.Sprintf("%d candidates", out.produced))

	closeErr := snk.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	printTimings(cmd, timer)

	if out.found != nil {
		printFound(out.found)
		return nil
	}
	if execMode && !out.stopped && ctx.Err() == nil {
		return errExhausted
	}
	return nil
}

// readOutputFlags читает общие флаги quiet/verbose.
func readOutputFlags(cmd *cobra.Command) (quiet bool, verbose int) {
	quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")
	verbose, _ = cmd.Root().PersistentFlags().GetCount("verbose")
	return quiet, verbose
}

// readSkip разбирает --skip как десятичное число произвольной точности
// и проверяет попадание в [0, total).
func readSkip(cmd *cobra.Command, total *big.Int) (*big.Int, error) {
	skipValue, err := cmd.Flags().GetString("skip")
	if err != nil || skipValue == "" {
		return new(big.Int), nil
	}
	base, ok := new(big.Int).SetString(skipValue, 10)
	if !ok {
		return nil, fmt.Errorf("invalid --skip value %q (expected a decimal integer)", skipValue)
	}
	if base.Sign() < 0 || base.Cmp(total) >= 0 {
		return nil, fmt.Errorf("--skip %s out of range [0, %s)", base, total)
	}
	return base, nil
}

func printFound(candidate []byte) {
	marker := color.New(color.FgGreen, color.Bold).Sprint("[+]")
	fmt.Printf("%s found: %s\n", marker, candidate)
}

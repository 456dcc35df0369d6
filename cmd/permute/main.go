package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"permute/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "permute [flags] PATTERN",
	Short: "Lazy brace pattern permutation engine",
	Long: `permute expands brace patterns like secret{a..z}{0..9,} into every
combination they denote, one candidate at a time, without ever holding
the whole space in memory.

A bare pattern argument is a shorthand for the run subcommand:
permute 'ab{c,d}' and permute run 'ab{c,d}' are the same invocation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runRun(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errExhausted сигнализирует, что в exec-режиме пространство кончилось,
// а подходящий кандидат так и не нашёлся. Наружу транслируется кодом 2.
var errExhausted = errors.New("keyspace exhausted without a match")

// init sets the command version and registers subcommands and flags.
func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress the progress bar and non-essential output")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase verbosity (repeatable, up to -vvvv)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	// корневая команда принимает голый шаблон и ведёт себя как run
	addRunFlags(rootCmd)
}

func main() {
	// Закрытый pipe (permute ... | head) должен приходить ошибкой записи
	// и останавливать перебор, а не убивать процесс сигналом: иначе
	// приёмник не закрывается и тайминги не печатаются.
	signal.Ignore(syscall.SIGPIPE)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errExhausted) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

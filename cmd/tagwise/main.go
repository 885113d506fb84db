package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tagwise/internal/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagwise",
		Short: "Markup completion and schema linting",
		Long: `tagwise completes tag names, attribute names and attribute values from a
markup catalog and reports schema violations found by an external validator`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  beforeRun,
		PersistentPostRunE: afterRun,
	}
	// Устанавливаем версию для автоматического флага --version
	cmd.Version = version.Version

	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newCompleteCmd())
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newLSPCmd())
	cmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	cmd.PersistentFlags().String("config", "", "path to tagwise.toml (default: search upwards from the working directory)")
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	cmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	cmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
	return cmd
}

// errIssues makes the process exit with status 1 after the diagnostics
// were already printed.
var errIssues = errors.New("documents have issues")

// main executes the root command and exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	_ = finishRun(os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, errIssues) {
			fmt.Fprintf(os.Stderr, "tagwise: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output written to f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	}
	return f != nil && isTerminal(f)
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

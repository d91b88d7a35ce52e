// Command lox is the Lox interpreter's CLI entry point: REPL or
// single-file execution, per spec.md §6.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/lox/internal/diagnostics"
	"github.com/aledsdavies/lox/internal/lox"
)

func main() {
	var (
		debug   bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:           "lox [script]",
		Short:         "A tree-walking interpreter for Lox",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)
			sink := diagnostics.NewConsole(os.Stderr, diagnostics.ShouldUseColor(noColor))

			var code int
			if len(args) == 1 {
				code = lox.RunFile(args[0], os.Stdout, sink, logger)
			} else {
				code = runPrompt(os.Stdout, sink, logger)
			}

			if code != lox.ExitOK {
				os.Exit(code)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug tracing")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(lox.ExitUsage)
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// runPrompt implements the REPL: prompt ">> ", one persistent Lox driver
// across lines. The trailing-';' convenience itself lives in
// lox.PreparePromptLine so it can be tested without a terminal.
func runPrompt(out io.Writer, sink diagnostics.Sink, logger *slog.Logger) int {
	rl, err := readline.New(">> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return lox.ExitUsage
	}
	defer rl.Close()

	driver := lox.New(out, sink, logger)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return lox.ExitOK
		}

		prepared := lox.PreparePromptLine(line)
		if prepared == "" {
			continue
		}
		driver.Run(prepared)
	}
}

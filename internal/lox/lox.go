// Package lox is the driver facade threading scanner -> parser -> evaluator,
// owning the had_error/had_runtime_error flags and a single persistent
// Interpreter across REPL lines (spec.md §4.6).
package lox

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aledsdavies/lox/internal/diagnostics"
	"github.com/aledsdavies/lox/internal/interp"
	"github.com/aledsdavies/lox/internal/parser"
	"github.com/aledsdavies/lox/internal/scanner"
)

// Exit codes per spec.md §6.
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitSyntax  = 65
	ExitRuntime = 70
)

// Lox owns the error flags and the one Interpreter instance that persists
// across REPL lines, so variable and function state survives between
// prompts.
type Lox struct {
	sink   diagnostics.Sink
	logger *slog.Logger
	interp *interp.Interpreter

	HadError        bool
	HadRuntimeError bool
}

// New returns a driver writing `put` output to out and diagnostics through
// sink. A nil logger disables debug tracing.
func New(out io.Writer, sink diagnostics.Sink, logger *slog.Logger) *Lox {
	return &Lox{
		sink:   sink,
		logger: logger,
		interp: interp.New(out, sink, logger),
	}
}

// reportTrackingSink wraps a diagnostics.Sink and flips *reported the first
// time Report is called, so the driver can gate HadError on "did any
// lexical or syntactic diagnostic fire" rather than solely on the parser's
// combined error (the scanner has no error return of its own — it only
// ever signals through the sink).
type reportTrackingSink struct {
	diagnostics.Sink
	reported *bool
}

func (s reportTrackingSink) Report(line int, where, message string) {
	*s.reported = true
	s.Sink.Report(line, where, message)
}

// Run scans, parses, and (if no lexical or syntax errors were reported)
// executes source. It clears HadError/HadRuntimeError at the start of every
// call, so a REPL line's failure does not poison the next one.
func (l *Lox) Run(source string) {
	l.HadError = false
	l.HadRuntimeError = false

	sink := reportTrackingSink{Sink: l.sink, reported: &l.HadError}

	sc := scanner.New(source, sink, l.logger)
	tokens := sc.ScanTokens()

	p := parser.New(tokens, sink, l.logger)
	stmts, _ := p.Parse()
	if l.HadError {
		return
	}

	if err := l.interp.Interpret(stmts); err != nil {
		l.HadRuntimeError = true
	}
}

// PreparePromptLine implements the REPL's trailing-semicolon convenience
// (spec.md §6): a line that doesn't already end with ';' gets one appended
// before being fed to Run. Blank input (after trimming) is reported back as
// "" so the caller can skip it.
func PreparePromptLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasSuffix(trimmed, ";") {
		return trimmed
	}
	return trimmed + ";"
}

// RunFile reads path as UTF-8 source, runs it, and returns the process exit
// code per spec.md §6.
func RunFile(path string, out io.Writer, sink diagnostics.Sink, logger *slog.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		sink.Report(0, "", err.Error())
		return ExitSyntax
	}

	l := New(out, sink, logger)
	l.Run(string(data))

	switch {
	case l.HadError:
		return ExitSyntax
	case l.HadRuntimeError:
		return ExitRuntime
	default:
		return ExitOK
	}
}

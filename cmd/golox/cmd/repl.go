package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/loxlang/golox/internal/scanner"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long: `Start a read-eval-print loop: each line is scanned, parsed, resolved,
and evaluated against one persistent global environment, so variables and
functions declared on one line are visible on the next.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return exitWithError(diagnostics.ExitUsage, "reading config: %v", err)
	}

	useColor := cfg.Color && isatty.IsTerminal(os.Stdout.Fd())
	errColor := color.New(color.FgRed)
	if !useColor {
		errColor.DisableColor()
	}

	rl, err := readline.New(cfg.Prompt)
	if err != nil {
		return exitWithError(diagnostics.ExitUsage, "starting line editor: %v", err)
	}
	defer rl.Close()

	in := interp.New(interp.WithStdout(os.Stdout))
	line := 0

	for {
		text, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return exitWithError(diagnostics.ExitUsage, "reading input: %v", err)
		}
		line++
		if text == "" {
			continue
		}
		evalREPLLine(in, text, line, errColor)
	}
}

// evalREPLLine runs one REPL entry through the full pipeline, reporting
// whatever stage failed with the cumulative line counter as the
// "(after line N)" suffix. It never returns an error: a bad line stays in
// the loop rather than exiting the session.
func evalREPLLine(in *interp.Interpreter, text string, line int, errColor *color.Color) {
	sc := scanner.New(text)
	toks := sc.ScanTokens()
	if errs := sc.Errors(); len(errs) > 0 {
		reportREPLErrors(diagnostics.Scan, errColor, line, errs, func(e *scanner.Error) int { return e.Line })
		return
	}

	p := parser.New(toks)
	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		reportREPLErrors(diagnostics.Parse, errColor, line, errs, func(e *parser.Error) int { return e.Line })
		return
	}

	res := resolver.New()
	res.Resolve(program)
	if errs := res.Errors(); len(errs) > 0 {
		reportREPLErrors(diagnostics.Resolve, errColor, line, errs, func(e *resolver.Error) int { return e.Line })
		return
	}

	if err := in.Interpret(program.Statements); err != nil {
		d := diagnostics.New(diagnostics.Runtime, runtimeErrorLine(err), err.Error())
		errColor.Fprintln(os.Stderr, d.Format(line))
	}
}

func reportREPLErrors[E interface{ error }](kind diagnostics.Kind, errColor *color.Color, afterLine int, errs []E, lineOf func(E) int) {
	for _, d := range diagnostics.FromErrors(kind, lineOf, errs) {
		errColor.Fprintln(os.Stderr, d.Format(afterLine))
	}
}

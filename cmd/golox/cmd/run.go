package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/astjson"
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/loxlang/golox/internal/scanner"
)

var (
	evalExpr     string
	dumpAST      bool
	dumpASTJSON  bool
	astQueryPath string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file or expression",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  # Run a script file
  golox run script.lox

  # Evaluate an inline expression
  golox run -e "print 1 + 2;"

  # Dump the parsed AST as text
  golox run --dump-ast script.lox

  # Dump the parsed AST as JSON and pull one subtree out of it
  golox run --dump-ast-json --ast-query "statements.0.expression" script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST as Lox source text")
	runCmd.Flags().BoolVar(&dumpASTJSON, "dump-ast-json", false, "dump the parsed AST as a JSON document")
	runCmd.Flags().StringVar(&astQueryPath, "ast-query", "", "with --dump-ast-json, print only the subtree at this gjson path")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			if os.IsNotExist(err) {
				return exitWithError(diagnostics.ExitFileNotFound, "file not found: %s", filename)
			}
			return exitWithError(diagnostics.ExitFileNotFound, "failed to read file %s: %v", filename, err)
		}
		input = string(content)
	default:
		return exitWithError(diagnostics.ExitUsage, "either provide a file path or use -e for inline code")
	}

	program, runErr := compileAndRun(input, os.Stdout)
	if dumpAST && program != nil {
		fmt.Println(program.String())
	}
	if dumpASTJSON && program != nil {
		doc, err := astjson.Dump(program)
		if err != nil {
			return exitWithError(diagnostics.ExitStageFailure, "ast json: %v", err)
		}
		if astQueryPath != "" {
			if result, ok := astjson.Query(doc, astQueryPath); ok {
				fmt.Println(result)
			} else {
				fmt.Fprintf(os.Stderr, "ast-query: no match for path %q\n", astQueryPath)
			}
		} else {
			fmt.Println(doc)
		}
	}
	return runErr
}

// compileAndRun threads src through the scanner, parser, resolver, and
// interpreter in strict order, printing accumulated diagnostics for
// whichever stage fails first and setting exitCode to the status that
// stage owns. program is returned even on a later stage's failure so
// --dump-ast/--dump-ast-json can still show it.
func compileAndRun(src string, out *os.File) (*ast.Program, error) {
	sc := scanner.New(src)
	toks := sc.ScanTokens()
	if errs := sc.Errors(); len(errs) > 0 {
		printDiagnostics(diagnostics.FromErrors(diagnostics.Scan, func(e *scanner.Error) int { return e.Line }, errs))
		return nil, exitWithError(diagnostics.ExitStageFailure, "scanning failed with %d error(s)", len(errs))
	}

	p := parser.New(toks)
	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		printDiagnostics(diagnostics.FromErrors(diagnostics.Parse, func(e *parser.Error) int { return e.Line }, errs))
		return program, exitWithError(diagnostics.ExitStageFailure, "parsing failed with %d error(s)", len(errs))
	}

	res := resolver.New()
	res.Resolve(program)
	if errs := res.Errors(); len(errs) > 0 {
		printDiagnostics(diagnostics.FromErrors(diagnostics.Resolve, func(e *resolver.Error) int { return e.Line }, errs))
		return program, exitWithError(diagnostics.ExitStageFailure, "resolving failed with %d error(s)", len(errs))
	}

	in := interp.New(interp.WithStdout(out))
	if err := in.Interpret(program.Statements); err != nil {
		d := diagnostics.New(diagnostics.Runtime, runtimeErrorLine(err), err.Error())
		fmt.Fprintln(os.Stderr, d.Format(0))
		return program, exitWithError(diagnostics.ExitRuntime, "%s", err.Error())
	}
	return program, nil
}

func runtimeErrorLine(err error) int {
	if rtErr, ok := err.(*interp.RuntimeError); ok {
		return rtErr.Line
	}
	return 0
}

func printDiagnostics(diags []*diagnostics.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format(0))
	}
}

package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/loxlang/golox/internal/ast"
)

// Interpreter holds the single environment chain for one program run: a
// set of built-in globals, the user's global bindings, and whichever
// frame is currently innermost while walking the tree.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	out         io.Writer
	in          io.Reader
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStdout redirects `print` output; the CLI's REPL and file runner
// pass os.Stdout, while their diagnostics go to os.Stderr.
func WithStdout(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithStdin redirects the `input()` builtin's source.
func WithStdin(r io.Reader) Option {
	return func(in *Interpreter) { in.in = r }
}

// New creates an Interpreter with the host builtins already bound in the
// global frame.
func New(opts ...Option) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{globals: globals, environment: globals, out: os.Stdout, in: os.Stdin}
	for _, opt := range opts {
		opt(in)
	}
	registerBuiltins(in)
	return in
}

// Interpret executes statements in order. A runtime error aborts the
// current call to Interpret immediately; the caller decides what that
// means for exit codes and whether to keep going (the REPL calls
// Interpret once per submitted line and continues regardless).
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if _, err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SetStdout redirects `print` output for the lifetime of subsequent
// Interpret calls. pkg/golox uses this to fork output to both the
// caller's configured writer and a per-call buffer without constructing a
// fresh Interpreter (and therefore a fresh global environment) each time.
func (in *Interpreter) SetStdout(w io.Writer) { in.out = w }

func (in *Interpreter) print(v Value) {
	fmt.Fprintln(in.out, v.String())
}

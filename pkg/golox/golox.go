// Package golox is the embeddable entry point for the Lox interpreter: a
// small wrapper over internal/scanner, internal/parser, internal/resolver,
// and internal/interp that a host Go program links against directly,
// instead of shelling out to cmd/golox. It exposes a New/Option
// constructor, a Compile/Run/Eval split, and a structured Error type
// (see DESIGN.md for the engine shape this is grounded on) adapted to
// Lox's simpler single-pass pipeline — there is no optional type-checking
// stage or FFI/unit-loading surface to carry here.
package golox

import (
	"bytes"
	"io"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/loxlang/golox/internal/scanner"
)

// Engine runs Lox programs against one persistent global environment:
// successive Eval/Run calls on the same Engine see each other's global
// variable and function declarations, the way successive lines of a REPL
// session do.
type Engine struct {
	out         io.Writer
	interpreter *interp.Interpreter
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	out io.Writer
}

// WithOutput mirrors the engine's `print` output to w. Without it, print
// output is discarded apart from Result.Output, which always holds one
// Eval/Run call's own output either way.
func WithOutput(w io.Writer) Option {
	return func(c *engineConfig) { c.out = w }
}

// New constructs an Engine. It never itself fails — there is no FFI
// registration or similar step that can error at construction time — but
// returns an error to keep the constructor shape stable for callers that
// configure it further in the future.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	out := cfg.out
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		out:         out,
		interpreter: interp.New(interp.WithStdout(out)),
	}, nil
}

// Program is source that has been scanned, parsed, and resolved, ready to
// Run any number of times.
type Program struct {
	statements []ast.Stmt
	tree       *ast.Program
}

// Compile scans, parses, and resolves src, returning a *CompileError (not
// a plain error) that names which stage failed and carries every
// diagnostic from it.
func (e *Engine) Compile(src string) (*Program, error) {
	sc := scanner.New(src)
	toks := sc.ScanTokens()
	if errs := sc.Errors(); len(errs) > 0 {
		return nil, &CompileError{Stage: "scanning", Errors: scanErrorsToErrors(errs)}
	}

	p := parser.New(toks)
	tree := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, &CompileError{Stage: "parsing", Errors: parseErrorsToErrors(errs)}
	}

	res := resolver.New()
	res.Resolve(tree)
	if errs := res.Errors(); len(errs) > 0 {
		return nil, &CompileError{Stage: "resolving", Errors: resolveErrorsToErrors(errs)}
	}

	return &Program{statements: tree.Statements, tree: tree}, nil
}

// AST returns the parsed, resolved syntax tree, for callers that want to
// inspect or print it (mirrors what cmd/golox's --dump-ast flag shows).
func (p *Program) AST() *ast.Program { return p.tree }

// Result is the observable outcome of one Run/Eval call.
type Result struct {
	// Output is everything the program printed during this call.
	Output string
}

// Run executes an already-compiled Program against the engine's
// persistent global environment.
func (e *Engine) Run(program *Program) (*Result, error) {
	var buf bytes.Buffer
	e.interpreter.SetStdout(io.MultiWriter(e.out, &buf))
	defer e.interpreter.SetStdout(e.out)

	if err := e.interpreter.Interpret(program.statements); err != nil {
		return nil, runtimeErrorToError(err)
	}
	return &Result{Output: buf.String()}, nil
}

// Eval compiles and immediately runs src in one call.
func (e *Engine) Eval(src string) (*Result, error) {
	program, err := e.Compile(src)
	if err != nil {
		return nil, err
	}
	return e.Run(program)
}

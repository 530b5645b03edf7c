// Package resolver performs the static pass between parsing and
// evaluation: for every local variable reference it computes how many
// environment frames outward from the innermost one the binding lives, and it
// enforces the handful of contextual rules that are cheaper to check once,
// statically, than on every evaluation.
//
// This is a fresh pass rather than a trim of any larger type-checking
// front end — see DESIGN.md. What it keeps is the error-collection
// discipline common across this codebase's pipeline stages: errors
// accumulate in a slice across the whole tree instead of aborting at the
// first one.
package resolver

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// functionKind distinguishes the enclosing callable a statement resolves
// under, since `return` and `this`/`super` rules differ by kind.
type functionKind int

const (
	noFunction functionKind = iota
	function
	method
	initializer
	staticMethod
	getter
)

// Error is a single resolver-time diagnostic.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string { return e.Message }

// classInfo tracks the enclosing class while resolving its members, so
// `super` can be validated against whether a superclass actually exists.
type classInfo struct {
	hasSuperclass bool
}

// Resolver walks a parsed program once, annotating every ast.Variable,
// ast.Assign, and ast.Super node with its resolution depth in place.
type Resolver struct {
	scopes  []map[string]bool // true once a binding's initializer has completed
	errors  []*Error
	current functionKind
	class   *classInfo
	inLoop  bool
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{current: noFunction}
}

// Errors returns every contextual error found during Resolve.
func (r *Resolver) Errors() []*Error { return r.errors }

// Resolve walks program's statements, annotating depths in place.
func (r *Resolver) Resolve(program *ast.Program) {
	r.resolveStmts(program.Statements)
}

func (r *Resolver) error(tok token.Token, message string) {
	r.errors = append(r.errors, &Error{Message: message, Line: tok.Line})
}

// --- scope stack --------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare introduces name into the innermost scope as not-yet-initialized,
// so its own initializer expression can detect a self-read.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; depth i means
// "i scopes above the current innermost". A name found nowhere keeps its
// node's depth at -1 (global/unresolved).
func (r *Resolver) resolveLocal(name token.Token) int {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			return len(r.scopes) - 1 - i
		}
	}
	return -1
}

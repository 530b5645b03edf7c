package resolver

import "github.com/loxlang/golox/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		enclosingLoop := r.inLoop
		r.inLoop = true
		r.resolveStmt(s.Body)
		r.inLoop = enclosingLoop
	case *ast.BreakStmt:
		if !r.inLoop {
			r.error(s.Keyword, "Can't use 'break' outside of a loop.")
		}
	case *ast.ReturnStmt:
		r.resolveReturn(s)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, function)
	case *ast.ClassStmt:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveReturn(s *ast.ReturnStmt) {
	if r.current == noFunction {
		r.error(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.current == initializer {
			r.error(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// parameters declared and immediately defined (no self-reference hazard
// the way a var initializer has).
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.current
	enclosingLoop := r.inLoop
	r.current = kind
	r.inLoop = false

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.current = enclosingFunction
	r.inLoop = enclosingLoop
}

// resolveClass handles the class-scoped `this` (and `super`) bindings
// that every instance method and getter resolves against, plus the
// contextual checks: no self-inheritance, no `super` without a
// superclass. Static methods are resolved after those scopes are closed,
// so they see neither `this` nor `super`.
func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.class
	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class cannot inherit from itself.")
		}
		r.resolveExpr(s.Superclass)
	}

	r.class = &classInfo{hasSuperclass: s.Superclass != nil}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range s.Methods {
		kind := method
		if m.Name.Lexeme == "init" {
			kind = initializer
		}
		r.resolveFunction(m, kind)
	}
	for _, g := range s.Getters {
		r.resolveFunction(g, getter)
	}

	r.endScope() // this

	if s.Superclass != nil {
		r.endScope() // super
	}

	for _, m := range s.StaticMethods {
		r.resolveFunction(m, staticMethod)
	}

	r.class = enclosingClass
}

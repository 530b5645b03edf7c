package resolver

import "github.com/loxlang/golox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no subexpressions, nothing to bind
	case *ast.Variable:
		r.resolveVariable(e)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		e.Depth = r.resolveLocal(e.Name)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		r.resolveSuper(e)
	}
}

// resolveVariable handles the self-reference-in-initializer trap (spec
// §4.3): inside a local scope, `var x = x;` is reported as an error rather
// than reading the half-declared local.
func (r *Resolver) resolveVariable(v *ast.Variable) {
	if len(r.scopes) > 0 {
		if initialized, ok := r.scopes[len(r.scopes)-1][v.Name.Lexeme]; ok && !initialized {
			r.error(v.Name, "Can't read local variable in its own initializer.")
		}
	}
	v.Depth = r.resolveLocal(v.Name)
}

func (r *Resolver) resolveSuper(s *ast.Super) {
	if r.class == nil {
		r.error(s.Keyword, "Can't use 'super' outside of a class.")
	} else if !r.class.hasSuperclass {
		r.error(s.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	s.Depth = r.resolveLocal(s.Keyword)
}

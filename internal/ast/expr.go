package ast

import "github.com/loxlang/golox/internal/token"

// Literal is a literal value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Token token.Token
	Value any
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) Pos() token.Token     { return l.Token }
func (l *Literal) String() string       { return literalString(l.Value) }

// Variable is a reference to a named value. Depth is filled in by the
// resolver: -1 means "global / unresolved", otherwise it is the number of
// environment frames to walk outward from the innermost frame to reach the
// one where the name is bound (0 = the innermost frame itself).
type Variable struct {
	Name  token.Token
	Depth int
}

func (v *Variable) exprNode()            {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }
func (v *Variable) Pos() token.Token     { return v.Name }
func (v *Variable) String() string       { return v.Name.Lexeme }

// Assign is a variable assignment expression; it yields the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
	Depth int
}

func (a *Assign) exprNode()            {}
func (a *Assign) TokenLiteral() string { return a.Name.Lexeme }
func (a *Assign) Pos() token.Token     { return a.Name }
func (a *Assign) String() string {
	return parenthesize("= "+a.Name.Lexeme, a.Value)
}

// Unary is a prefix operator expression (! or -).
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }
func (u *Unary) Pos() token.Token     { return u.Operator }
func (u *Unary) String() string       { return parenthesize(u.Operator.Lexeme, u.Right) }

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }
func (b *Binary) Pos() token.Token     { return b.Operator }
func (b *Binary) String() string       { return parenthesize(b.Operator.Lexeme, b.Left, b.Right) }

// Logical is `and`/`or`; unlike Binary it short-circuits.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (l *Logical) exprNode()            {}
func (l *Logical) TokenLiteral() string { return l.Operator.Lexeme }
func (l *Logical) Pos() token.Token     { return l.Operator }
func (l *Logical) String() string       { return parenthesize(l.Operator.Lexeme, l.Left, l.Right) }

// Grouping is a parenthesized expression, kept distinct so printers can
// preserve it.
type Grouping struct {
	LParen     token.Token
	Expression Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return g.LParen.Lexeme }
func (g *Grouping) Pos() token.Token     { return g.LParen }
func (g *Grouping) String() string       { return parenthesize("group", g.Expression) }

// Call is a function/method invocation.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ')' — used for the call-site line in errors
	Args   []Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }
func (c *Call) Pos() token.Token     { return c.Paren }
func (c *Call) String() string       { return parenthesize("call", append([]Expr{c.Callee}, c.Args...)...) }

// Get is a property read, `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) exprNode()            {}
func (g *Get) TokenLiteral() string { return g.Name.Lexeme }
func (g *Get) Pos() token.Token     { return g.Name }
func (g *Get) String() string       { return parenthesize("get "+g.Name.Lexeme, g.Object) }

// Set is a property write, `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) exprNode()            {}
func (s *Set) TokenLiteral() string { return s.Name.Lexeme }
func (s *Set) Pos() token.Token     { return s.Name }
func (s *Set) String() string      { return parenthesize("set "+s.Name.Lexeme, s.Object, s.Value) }

// Super is `super.method`, resolved against the enclosing class's
// superclass rather than the instance's dynamic class.
type Super struct {
	Keyword token.Token
	Method  token.Token
	Depth   int
}

func (s *Super) exprNode()            {}
func (s *Super) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *Super) Pos() token.Token     { return s.Keyword }
func (s *Super) String() string       { return "(super " + s.Method.Lexeme + ")" }

// Note: there is no dedicated "This" node. `this` is not a keyword — it
// scans as a plain IDENT and is parsed as an ordinary Variable, resolved
// exactly like any other identifier against the `this` binding the
// evaluator injects into a method's closure.

// Package ast defines the Lox abstract syntax tree.
//
// Every node answers TokenLiteral(), String(), and Pos() for diagnostics
// and debugging, and Expr/Stmt are thin marker interfaces over Node so the
// parser's return types stay exhaustive and the evaluator can dispatch by
// type switch rather than virtual calls. Lox's node set is small and
// fixed — see DESIGN.md for how it was sized against the broader corpus.
package ast

import (
	"bytes"
	"fmt"

	"github.com/loxlang/golox/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Token
}

// Expr is any node that produces a runtime value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself producing a
// value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: a complete parsed source file.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Token{Line: 1}
}

func parenthesize(name string, exprs ...Expr) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		out.WriteString(e.String())
	}
	out.WriteString(")")
	return out.String()
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

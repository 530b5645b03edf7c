package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// expression is the entry point of the precedence ladder: assignment,
// logic_or, logic_and, equality, comparison, addition, multiplication,
// unary, call, primary — lowest to highest.
func (p *Parser) expression() (ast.Expr, bool) {
	return p.assignment()
}

// assignment re-parses its left-hand side: a Variable target becomes an
// Assign, a Get target becomes a Set, anything else is an "Invalid
// assignment target" error. It is right-associative via the recursive
// call on the RHS.
func (p *Parser) assignment() (ast.Expr, bool) {
	expr, ok := p.or()
	if !ok {
		return nil, false
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value, ok := p.assignment()
		if !ok {
			return nil, false
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value, Depth: -1}, true
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, true
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return nil, false
		}
	}
	return expr, true
}

func (p *Parser) or() (ast.Expr, bool) {
	expr, ok := p.and()
	if !ok {
		return nil, false
	}
	for p.match(token.OR) {
		operator := p.previous()
		right, ok := p.and()
		if !ok {
			return nil, false
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, true
}

func (p *Parser) and() (ast.Expr, bool) {
	expr, ok := p.equality()
	if !ok {
		return nil, false
	}
	for p.match(token.AND) {
		operator := p.previous()
		right, ok := p.equality()
		if !ok {
			return nil, false
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, true
}

func (p *Parser) equality() (ast.Expr, bool) {
	return p.binaryLevel(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, bool) {
	return p.binaryLevel(p.addition, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) addition() (ast.Expr, bool) {
	return p.binaryLevel(p.multiplication, token.MINUS, token.PLUS)
}

func (p *Parser) multiplication() (ast.Expr, bool) {
	return p.binaryLevel(p.unary, token.SLASH, token.STAR)
}

// binaryLevel parses one left-associative precedence level: an operand
// from next, followed by zero or more (operator, operand) pairs whose
// operator is one of kinds.
func (p *Parser) binaryLevel(next func() (ast.Expr, bool), kinds ...token.Kind) (ast.Expr, bool) {
	expr, ok := next()
	if !ok {
		return nil, false
	}
	for p.match(kinds...) {
		operator := p.previous()
		right, ok := next()
		if !ok {
			return nil, false
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, true
}

func (p *Parser) unary() (ast.Expr, bool) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		return &ast.Unary{Operator: operator, Right: right}, true
	}
	return p.call()
}

// call parses a primary expression followed by any chain of `(args)` and
// `.name` suffixes, left to right.
func (p *Parser) call() (ast.Expr, bool) {
	expr, ok := p.primary()
	if !ok {
		return nil, false
	}

	for {
		switch {
		case p.match(token.LPAREN):
			expr, ok = p.finishCall(expr)
			if !ok {
				return nil, false
			}
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENT, "Expect property name after '.'.")
			if !ok {
				return nil, false
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, true
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, bool) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, ok := p.expression()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(token.RPAREN, "Expect ')' after arguments.")
	if !ok {
		return nil, false
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, true
}

func (p *Parser) primary() (ast.Expr, bool) {
	switch {
	case p.match(token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}, true
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous(), Depth: -1}, true
	case p.match(token.SUPER):
		return p.superExpression()
	case p.match(token.LPAREN):
		lparen := p.previous()
		expr, ok := p.expression()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(token.RPAREN, "Expect ')' after expression."); !ok {
			return nil, false
		}
		return &ast.Grouping{LParen: lparen, Expression: expr}, true
	default:
		p.errorAt(p.peek(), "Expect expression.")
		return nil, false
	}
}

// superExpression parses `super.method`; super is only valid as a plain
// property read or as the receiver of a call, both of which the
// surrounding call() chain handles once this returns the Super node as an
// ordinary primary.
func (p *Parser) superExpression() (ast.Expr, bool) {
	keyword := p.previous()
	if _, ok := p.consume(token.DOT, "Expect '.' after 'super'."); !ok {
		return nil, false
	}
	method, ok := p.consume(token.IDENT, "Expect superclass method name.")
	if !ok {
		return nil, false
	}
	return &ast.Super{Keyword: keyword, Method: method, Depth: -1}, true
}

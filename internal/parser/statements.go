package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// declaration parses one top-level-or-block item: a class, function, var,
// or plain statement. A failed parse synchronizes and is dropped from the
// resulting statement list.
func (p *Parser) declaration() (ast.Stmt, bool) {
	var (
		stmt ast.Stmt
		ok   bool
	)
	switch {
	case p.match(token.CLASS):
		stmt, ok = p.classDeclaration()
	case p.match(token.FUN):
		stmt, ok = p.function("function", false)
	case p.match(token.VAR):
		stmt, ok = p.varDeclaration()
	default:
		stmt, ok = p.statement()
	}
	if !ok {
		p.synchronize()
		return nil, false
	}
	return stmt, true
}

func (p *Parser) varDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect variable name.")
	if !ok {
		return nil, false
	}

	var init ast.Expr
	if p.match(token.EQUAL) {
		init, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		return nil, false
	}
	return &ast.VarStmt{Name: name, Initializer: init}, true
}

// classDeclaration parses `class Name [< Super] { members }`. Each member
// is routed into one of three tables by the shape the parser sees: a
// leading `class` keyword means a static method, no parameter list at all
// means a getter, otherwise it is an instance method.
func (p *Parser) classDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect class name.")
	if !ok {
		return nil, false
	}

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superName, ok := p.consume(token.IDENT, "Expect superclass name.")
		if !ok {
			return nil, false
		}
		superclass = &ast.Variable{Name: superName, Depth: -1}
	}

	if _, ok := p.consume(token.LBRACE, "Expect '{' before class body."); !ok {
		return nil, false
	}

	class := &ast.ClassStmt{Name: name, Superclass: superclass}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		isStatic := p.match(token.CLASS)
		memberName, ok := p.consume(token.IDENT, "Expect method name.")
		if !ok {
			return nil, false
		}

		if p.check(token.LBRACE) {
			getter, ok := p.functionBody(memberName, true)
			if !ok {
				return nil, false
			}
			if isStatic {
				class.StaticMethods = append(class.StaticMethods, getter)
			} else {
				class.Getters = append(class.Getters, getter)
			}
			continue
		}

		method, ok := p.functionBody(memberName, false)
		if !ok {
			return nil, false
		}
		if isStatic {
			class.StaticMethods = append(class.StaticMethods, method)
		} else {
			class.Methods = append(class.Methods, method)
		}
	}

	if _, ok := p.consume(token.RBRACE, "Expect '}' after class body."); !ok {
		return nil, false
	}
	return class, true
}

// function parses a top-level `fun name(params) { body }` declaration.
func (p *Parser) function(kind string, isGetter bool) (*ast.FunctionStmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect "+kind+" name.")
	if !ok {
		return nil, false
	}
	return p.functionBody(name, isGetter)
}

// functionBody parses the parameter list (unless isGetter) and body block
// shared by top-level functions, methods, static methods, and getters.
func (p *Parser) functionBody(name token.Token, isGetter bool) (*ast.FunctionStmt, bool) {
	var params []token.Token
	if !isGetter {
		if _, ok := p.consume(token.LPAREN, "Expect '(' after name."); !ok {
			return nil, false
		}
		if !p.check(token.RPAREN) {
			for {
				if len(params) >= maxArgs {
					p.errorAt(p.peek(), "Can't have more than 255 parameters.")
				}
				param, ok := p.consume(token.IDENT, "Expect parameter name.")
				if !ok {
					return nil, false
				}
				params = append(params, param)
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		if _, ok := p.consume(token.RPAREN, "Expect ')' after parameters."); !ok {
			return nil, false
		}
	}

	if _, ok := p.consume(token.LBRACE, "Expect '{' before body."); !ok {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body, IsGetter: isGetter}, true
}

func (p *Parser) statement() (ast.Stmt, bool) {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LBRACE):
		return p.blockStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after value."); !ok {
		return nil, false
	}
	return &ast.PrintStmt{Keyword: keyword, Expression: value}, true
}

func (p *Parser) expressionStatement() (ast.Stmt, bool) {
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after expression."); !ok {
		return nil, false
	}
	return &ast.ExpressionStmt{Expression: expr}, true
}

func (p *Parser) block() ([]ast.Stmt, bool) {
	var statements []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, ok := p.declaration()
		if ok {
			statements = append(statements, stmt)
		}
	}
	if _, ok := p.consume(token.RBRACE, "Expect '}' after block."); !ok {
		return nil, false
	}
	return statements, true
}

func (p *Parser) blockStatement() (ast.Stmt, bool) {
	lbrace := p.previous()
	statements, ok := p.block()
	if !ok {
		return nil, false
	}
	return &ast.BlockStmt{LBrace: lbrace, Statements: statements}, true
}

func (p *Parser) ifStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'if'."); !ok {
		return nil, false
	}
	condition, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after if condition."); !ok {
		return nil, false
	}
	thenBranch, ok := p.statement()
	if !ok {
		return nil, false
	}

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, ok = p.statement()
		if !ok {
			return nil, false
		}
	}
	return &ast.IfStmt{Keyword: keyword, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, true
}

func (p *Parser) whileStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'while'."); !ok {
		return nil, false
	}
	condition, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after while condition."); !ok {
		return nil, false
	}
	body, ok := p.statement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}, true
}

// forStatement desugars `for (init; cond; inc) body` into a Block wrapping
// a While — there is no dedicated ForStmt node.
func (p *Parser) forStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'for'."); !ok {
		return nil, false
	}

	var (
		initializer ast.Stmt
		ok          bool
	)
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		initializer, ok = p.varDeclaration()
		if !ok {
			return nil, false
		}
	default:
		initializer, ok = p.expressionStatement()
		if !ok {
			return nil, false
		}
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		return nil, false
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after for clauses."); !ok {
		return nil, false
	}

	body, ok := p.statement()
	if !ok {
		return nil, false
	}

	if increment != nil {
		body = &ast.BlockStmt{LBrace: keyword, Statements: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expression: increment},
		}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: true}
	}
	body = &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}

	var outer []ast.Stmt
	if initializer != nil {
		outer = append(outer, initializer)
	}
	return &ast.BlockStmt{LBrace: keyword, Statements: append(outer, body)}, true
}

func (p *Parser) breakStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after 'break'."); !ok {
		return nil, false
	}
	return &ast.BreakStmt{Keyword: keyword}, true
}

func (p *Parser) returnStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var ok bool
		value, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after return value."); !ok {
		return nil, false
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, true
}

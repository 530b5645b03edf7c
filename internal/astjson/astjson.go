// Package astjson renders a parsed program as a JSON document and answers
// path queries over it. `golox run --dump-ast-json` builds the document one
// node at a time with sjson.Set, the same way a recursive AST visitor would
// build up a String() result node by node; --ast-query then reads the
// document back with gjson.Get so a caller can pull one subtree without a
// Go struct describing the whole tree's shape.
package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/loxlang/golox/internal/ast"
)

// Dump serializes program to a JSON document rooted at "type": "Program".
func Dump(program *ast.Program) (string, error) {
	doc := `{"type":"Program"}`
	doc, err := sjson.Set(doc, "line", program.Pos().Line)
	if err != nil {
		return "", err
	}
	for i, stmt := range program.Statements {
		path := fmt.Sprintf("statements.%d", i)
		node, err := stmtNode(stmt)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, path, node)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Query evaluates a gjson path against a document produced by Dump and
// returns the matched subtree as compact JSON text. ok is false when the
// path matches nothing.
func Query(doc, path string) (result string, ok bool) {
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return "", false
	}
	return r.Raw, true
}

func set(doc, path string, v any) string {
	doc, err := sjson.Set(doc, path, v)
	if err != nil {
		// Every value passed in here is a string, int, float64, bool, or
		// nil literal drawn from the token stream, never user-controlled
		// outside that shape, so Set cannot fail in practice.
		panic(err)
	}
	return doc
}

func setRaw(doc, path, raw string) string {
	doc, err := sjson.SetRaw(doc, path, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func stmtNode(s ast.Stmt) (string, error) {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		doc := `{"type":"ExpressionStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		expr, err := exprNode(st.Expression)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "expression", expr), nil

	case *ast.PrintStmt:
		doc := `{"type":"PrintStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		expr, err := exprNode(st.Expression)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "expression", expr), nil

	case *ast.VarStmt:
		doc := `{"type":"VarStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		doc = set(doc, "name", st.Name.Lexeme)
		if st.Initializer != nil {
			expr, err := exprNode(st.Initializer)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, "initializer", expr)
		}
		return doc, nil

	case *ast.BlockStmt:
		doc := `{"type":"BlockStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		for i, inner := range st.Statements {
			node, err := stmtNode(inner)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, fmt.Sprintf("statements.%d", i), node)
		}
		return doc, nil

	case *ast.IfStmt:
		doc := `{"type":"IfStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		cond, err := exprNode(st.Condition)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, "condition", cond)
		then, err := stmtNode(st.ThenBranch)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, "then", then)
		if st.ElseBranch != nil {
			els, err := stmtNode(st.ElseBranch)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, "else", els)
		}
		return doc, nil

	case *ast.WhileStmt:
		doc := `{"type":"WhileStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		cond, err := exprNode(st.Condition)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, "condition", cond)
		body, err := stmtNode(st.Body)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "body", body), nil

	case *ast.BreakStmt:
		doc := `{"type":"BreakStmt"}`
		return set(doc, "line", st.Pos().Line), nil

	case *ast.ReturnStmt:
		doc := `{"type":"ReturnStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		if st.Value != nil {
			val, err := exprNode(st.Value)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, "value", val)
		}
		return doc, nil

	case *ast.FunctionStmt:
		return functionNode(st)

	case *ast.ClassStmt:
		doc := `{"type":"ClassStmt"}`
		doc = set(doc, "line", st.Pos().Line)
		doc = set(doc, "name", st.Name.Lexeme)
		if st.Superclass != nil {
			doc = set(doc, "superclass", st.Superclass.Name.Lexeme)
		}
		for i, m := range st.Methods {
			node, err := functionNode(m)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, fmt.Sprintf("methods.%d", i), node)
		}
		for i, m := range st.StaticMethods {
			node, err := functionNode(m)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, fmt.Sprintf("staticMethods.%d", i), node)
		}
		for i, g := range st.Getters {
			node, err := functionNode(g)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, fmt.Sprintf("getters.%d", i), node)
		}
		return doc, nil
	}
	return "", fmt.Errorf("astjson: unhandled statement type %T", s)
}

func functionNode(f *ast.FunctionStmt) (string, error) {
	doc := `{"type":"FunctionStmt"}`
	doc = set(doc, "line", f.Pos().Line)
	doc = set(doc, "name", f.Name.Lexeme)
	doc = set(doc, "isGetter", f.IsGetter)
	for i, p := range f.Params {
		doc = set(doc, fmt.Sprintf("params.%d", i), p.Lexeme)
	}
	for i, inner := range f.Body {
		node, err := stmtNode(inner)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, fmt.Sprintf("body.%d", i), node)
	}
	return doc, nil
}

func exprNode(e ast.Expr) (string, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		doc := `{"type":"Literal"}`
		doc = set(doc, "line", ex.Pos().Line)
		if ex.Value == nil {
			doc = set(doc, "value", nil)
		} else {
			doc = set(doc, "value", ex.Value)
		}
		return doc, nil

	case *ast.Variable:
		doc := `{"type":"Variable"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "name", ex.Name.Lexeme)
		doc = set(doc, "depth", ex.Depth)
		return doc, nil

	case *ast.Assign:
		doc := `{"type":"Assign"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "name", ex.Name.Lexeme)
		doc = set(doc, "depth", ex.Depth)
		val, err := exprNode(ex.Value)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "value", val), nil

	case *ast.Unary:
		doc := `{"type":"Unary"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "operator", ex.Operator.Lexeme)
		right, err := exprNode(ex.Right)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "right", right), nil

	case *ast.Binary:
		return binaryLike("Binary", ex.Operator.Lexeme, ex.Pos().Line, ex.Left, ex.Right)

	case *ast.Logical:
		return binaryLike("Logical", ex.Operator.Lexeme, ex.Pos().Line, ex.Left, ex.Right)

	case *ast.Grouping:
		doc := `{"type":"Grouping"}`
		doc = set(doc, "line", ex.Pos().Line)
		inner, err := exprNode(ex.Expression)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "expression", inner), nil

	case *ast.Call:
		doc := `{"type":"Call"}`
		doc = set(doc, "line", ex.Pos().Line)
		callee, err := exprNode(ex.Callee)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, "callee", callee)
		for i, a := range ex.Args {
			node, err := exprNode(a)
			if err != nil {
				return "", err
			}
			doc = setRaw(doc, fmt.Sprintf("args.%d", i), node)
		}
		return doc, nil

	case *ast.Get:
		doc := `{"type":"Get"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "name", ex.Name.Lexeme)
		obj, err := exprNode(ex.Object)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "object", obj), nil

	case *ast.Set:
		doc := `{"type":"Set"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "name", ex.Name.Lexeme)
		obj, err := exprNode(ex.Object)
		if err != nil {
			return "", err
		}
		doc = setRaw(doc, "object", obj)
		val, err := exprNode(ex.Value)
		if err != nil {
			return "", err
		}
		return setRaw(doc, "value", val), nil

	case *ast.Super:
		doc := `{"type":"Super"}`
		doc = set(doc, "line", ex.Pos().Line)
		doc = set(doc, "method", ex.Method.Lexeme)
		doc = set(doc, "depth", ex.Depth)
		return doc, nil
	}
	return "", fmt.Errorf("astjson: unhandled expression type %T", e)
}

func binaryLike(kind, operator string, line int, left, right ast.Expr) (string, error) {
	doc := fmt.Sprintf(`{"type":%q}`, kind)
	doc = set(doc, "line", line)
	doc = set(doc, "operator", operator)
	l, err := exprNode(left)
	if err != nil {
		return "", err
	}
	doc = setRaw(doc, "left", l)
	r, err := exprNode(right)
	if err != nil {
		return "", err
	}
	return setRaw(doc, "right", r), nil
}

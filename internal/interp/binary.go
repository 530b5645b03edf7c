package interp

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// evalBinary implements Lox's binary operator rules: `+` is overloaded
// between numeric addition and string concatenation; every other
// arithmetic/relational operator requires two numbers; equality is total
// and never errors.
func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EQUAL_EQUAL:
		return BooleanValue(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return BooleanValue(!valuesEqual(left, right)), nil

	case token.PLUS:
		return in.evalPlus(left, right, e.Operator.Line)

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := numeric(left)
		rn, rok := numeric(right)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Operator.Line, "Operands must be numbers.")
		}
		return applyArithmetic(e.Operator.Kind, ln, rn, e.Operator.Line)
	}
	return Nil, nil
}

// evalPlus concatenates two strings or adds two numbers. Runtime values
// have a single number kind, so a whole-number/integer coercion retry does
// not apply here — see DESIGN.md's note on that open question.
func (in *Interpreter) evalPlus(left, right Value, line int) (Value, error) {
	if l, ok := left.(NumberValue); ok {
		if r, ok := right.(NumberValue); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(StringValue); ok {
		if r, ok := right.(StringValue); ok {
			return l + r, nil
		}
	}
	return nil, runtimeErrorf(line, "Operands must be two numbers or two strings.")
}

func numeric(v Value) (NumberValue, bool) {
	n, ok := v.(NumberValue)
	return n, ok
}

func applyArithmetic(op token.Kind, l, r NumberValue, line int) (Value, error) {
	switch op {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, runtimeErrorf(line, "Division by zero.")
		}
		return l / r, nil
	case token.GREATER:
		return BooleanValue(l > r), nil
	case token.GREATER_EQUAL:
		return BooleanValue(l >= r), nil
	case token.LESS:
		return BooleanValue(l < r), nil
	case token.LESS_EQUAL:
		return BooleanValue(l <= r), nil
	}
	return Nil, nil
}

package interp

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// evalExpr evaluates one expression node to a Value.
func (in *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Variable:
		return in.lookupVariable(e.Name.Lexeme, e.Depth, e.Name.Line)

	case *ast.Assign:
		value, err := in.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		in.assignVariable(e.Name.Lexeme, e.Depth, value)
		return value, nil

	case *ast.Grouping:
		return in.evalExpr(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.Super:
		return in.evalSuper(e)
	}
	return Nil, nil
}

// literalValue converts the literal any the scanner/parser attached into
// the tagged runtime Value it corresponds to.
func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Nil
	case bool:
		return BooleanValue(val)
	case float64:
		return NumberValue(val)
	case string:
		return StringValue(val)
	default:
		return Nil
	}
}

func (in *Interpreter) lookupVariable(name string, depth, line int) (Value, error) {
	if depth >= 0 {
		if v, ok := in.environment.GetAt(depth, name); ok {
			return v, nil
		}
	} else if v, ok := in.globals.Get(name); ok {
		return v, nil
	}
	return nil, runtimeErrorf(line, "Undefined variable '%s'.", name)
}

func (in *Interpreter) assignVariable(name string, depth int, value Value) {
	if depth >= 0 {
		in.environment.AssignAt(depth, name, value)
		return
	}
	in.globals.Assign(name, value)
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.BANG:
		return BooleanValue(!IsTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, runtimeErrorf(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	}
	return Nil, nil
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else if !IsTruthy(left) {
		return left, nil
	}
	return in.evalExpr(e.Right)
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	result, err := fn.Call(in, args)
	if rtErr, ok := err.(*RuntimeError); ok && rtErr.Line == 0 {
		rtErr.Line = e.Paren.Line
	}
	return result, err
}

// evalGet reads object.name. This is normally only valid on an
// instance; a Class receiver additionally supports static member access
// (`ClassName.staticMethod`), a natural extension of the static-method
// table — see DESIGN.md.
func (in *Interpreter) evalGet(e *ast.Get) (Value, error) {
	object, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	switch obj := object.(type) {
	case *Instance:
		return obj.get(in, e.Name.Lexeme, e.Name.Line)
	case *Class:
		if m, ok := obj.staticProperty(e.Name.Lexeme); ok {
			return m, nil
		}
		return nil, runtimeErrorf(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	default:
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, error) {
	object, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have fields.")
	}
	value, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper resolves super.method against the enclosing class's
// superclass (never the instance's dynamic class) and binds `this` from
// the frame one level closer than `super` itself.
func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	superVal, ok := in.environment.GetAt(e.Depth, "super")
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "Undefined variable 'super'.")
	}
	superclass := superVal.(*Class)

	thisVal, _ := in.environment.GetAt(e.Depth-1, "this")
	instance, _ := thisVal.(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance), nil
}


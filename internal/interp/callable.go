package interp

import (
	"strings"

	"github.com/loxlang/golox/internal/ast"
)

// Callable is anything invocable with Call: a native function, a user
// function, or a class.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// NativeFunction wraps a host function with a fixed arity (clock, len,
// input).
type NativeFunction struct {
	Name string
	Args int
	Fn   func(in *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Type() string   { return "NATIVE_FUNCTION" }
func (n *NativeFunction) String() string { return "<fn native " + n.Name + ">" }
func (n *NativeFunction) Arity() int     { return n.Args }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

// UserFunction is a Lox function or method value: parameters, body, and
// the environment captured at declaration time. IsInitializer marks a
// class's init method; a getter is marked by Declaration.IsGetter.
type UserFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *UserFunction) Type() string { return "FUNCTION" }

func (f *UserFunction) String() string {
	var params strings.Builder
	for i, p := range f.Declaration.Params {
		if i > 0 {
			params.WriteString(",")
		}
		params.WriteString(p.Lexeme)
	}
	return "<fn " + f.Declaration.Name.Lexeme + "(" + params.String() + ")>"
}

func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

// bind returns a copy of f whose closure has a fresh frame binding `this`
// to instance prepended. `super` is not bound here: it lives in the frame
// execClassDecl builds around a subclass's methods, just outside this one.
// This is what makes a method retrieved and invoked separately still see
// the correct receiver.
func (f *UserFunction) bind(instance *Instance) *UserFunction {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &UserFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call pushes a frame for the parameters over the captured closure,
// executes the body, and unwinds a return signal into the function's
// result.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	signal, err := in.execBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}
	if signal.IsReturn() {
		return signal.Value, nil
	}
	return Nil, nil
}

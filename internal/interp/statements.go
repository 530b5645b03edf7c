package interp

import "github.com/loxlang/golox/internal/ast"

// execStmt executes one statement and returns the control-flow signal it
// produced. A nil error with signal.IsNone() means normal completion; a
// non-nil error is a runtime error that should unwind every enclosing
// frame up to the nearest recovery point (a call boundary or the top of
// Interpret).
func (in *Interpreter) execStmt(stmt ast.Stmt) (ControlFlow, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evalExpr(s.Expression)
		return none, err

	case *ast.PrintStmt:
		v, err := in.evalExpr(s.Expression)
		if err != nil {
			return none, err
		}
		in.print(v)
		return none, nil

	case *ast.VarStmt:
		value := Value(Nil)
		if s.Initializer != nil {
			var err error
			value, err = in.evalExpr(s.Initializer)
			if err != nil {
				return none, err
			}
		}
		in.environment.Define(s.Name.Lexeme, value)
		return none, nil

	case *ast.BlockStmt:
		return in.execBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		return in.execIf(s)

	case *ast.WhileStmt:
		return in.execWhile(s)

	case *ast.BreakStmt:
		return breakSignal(), nil

	case *ast.ReturnStmt:
		value := Value(Nil)
		if s.Value != nil {
			var err error
			value, err = in.evalExpr(s.Value)
			if err != nil {
				return none, err
			}
		}
		return returnSignal(value), nil

	case *ast.FunctionStmt:
		fn := &UserFunction{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return none, nil

	case *ast.ClassStmt:
		return in.execClassDecl(s)
	}
	return none, nil
}

func (in *Interpreter) execIf(s *ast.IfStmt) (ControlFlow, error) {
	cond, err := in.evalExpr(s.Condition)
	if err != nil {
		return none, err
	}
	if IsTruthy(cond) {
		return in.execStmt(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return in.execStmt(s.ElseBranch)
	}
	return none, nil
}

func (in *Interpreter) execWhile(s *ast.WhileStmt) (ControlFlow, error) {
	for {
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return none, err
		}
		if !IsTruthy(cond) {
			return none, nil
		}
		signal, err := in.execStmt(s.Body)
		if err != nil {
			return none, err
		}
		if signal.IsBreak() {
			return none, nil
		}
		if signal.IsReturn() {
			return signal, nil
		}
	}
}

// execBlock pushes env as the current frame, runs statements in order,
// and always restores the previous frame on the way out — whether it
// exits by normal completion, a break/return signal, or a runtime error.
func (in *Interpreter) execBlock(statements []ast.Stmt, env *Environment) (ControlFlow, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		signal, err := in.execStmt(stmt)
		if err != nil {
			return none, err
		}
		if !signal.IsNone() {
			return signal, nil
		}
	}
	return none, nil
}

// execClassDecl resolves the (optional) superclass, builds the class's
// method tables, and binds the class name.
func (in *Interpreter) execClassDecl(s *ast.ClassStmt) (ControlFlow, error) {
	var superclass *Class
	if s.Superclass != nil {
		superVal, err := in.evalExpr(s.Superclass)
		if err != nil {
			return none, err
		}
		sc, ok := superVal.(*Class)
		if !ok {
			return none, runtimeErrorf(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	// The class's own name is pre-declared so methods whose bodies
	// reference the class recursively (e.g. a static factory) resolve it.
	in.environment.Define(s.Name.Lexeme, Nil)

	// Instance methods and getters close over a frame with `super` bound
	// to the superclass, matching the extra scope the resolver injects
	// around them.
	methodEnv := in.environment
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &UserFunction{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}
	getters := make(map[string]*UserFunction, len(s.Getters))
	for _, g := range s.Getters {
		getters[g.Name.Lexeme] = &UserFunction{Declaration: g, Closure: methodEnv}
	}
	// Static methods never see `this` or `super` — they close over the
	// declaration-time frame directly.
	staticMethods := make(map[string]*UserFunction, len(s.StaticMethods))
	for _, m := range s.StaticMethods {
		staticMethods[m.Name.Lexeme] = &UserFunction{Declaration: m, Closure: in.environment}
	}

	class := &Class{
		Name:          s.Name.Lexeme,
		Superclass:    superclass,
		Methods:       methods,
		StaticMethods: staticMethods,
		Getters:       getters,
	}
	in.environment.Assign(s.Name.Lexeme, class)
	return none, nil
}

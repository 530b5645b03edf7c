package resolver

import (
	"testing"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/scanner"
)

func resolveSource(t *testing.T, src string) (*ast.Program, *Resolver) {
	t.Helper()
	toks := scanner.New(src).ScanTokens()
	p := parser.New(toks)
	program := p.Parse()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := New()
	r.Resolve(program)
	return program, r
}

func TestResolve_GlobalVariableStaysUnresolved(t *testing.T) {
	program, r := resolveSource(t, "var a = 1; print a;")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
	print := program.Statements[1].(*ast.PrintStmt)
	v := print.Expression.(*ast.Variable)
	if v.Depth != -1 {
		t.Errorf("depth = %d, want -1 for a global", v.Depth)
	}
}

func TestResolve_LocalVariableDepth(t *testing.T) {
	program, r := resolveSource(t, "{ var a = 1; print a; }")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
	block := program.Statements[0].(*ast.BlockStmt)
	print := block.Statements[1].(*ast.PrintStmt)
	v := print.Expression.(*ast.Variable)
	if v.Depth != 0 {
		t.Errorf("depth = %d, want 0 (same block scope)", v.Depth)
	}
}

func TestResolve_ClosureCapturesDeclarationTimeScope(t *testing.T) {
	_, r := resolveSource(t, `
var c = 0;
fun make() {
	fun inc() { c = c + 1; return c; }
	return inc;
}
var i = make();
`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
}

func TestResolve_ReadLocalInOwnInitializerIsError(t *testing.T) {
	_, r := resolveSource(t, "var a = 1; { var a = a; }")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error reading a local in its own initializer")
	}
}

func TestResolve_RedeclareInSameScopeIsError(t *testing.T) {
	_, r := resolveSource(t, "{ var a = 1; var a = 2; }")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error for redeclaring a name in the same scope")
	}
}

func TestResolve_ReturnAtTopLevelIsError(t *testing.T) {
	_, r := resolveSource(t, "fun f() { return 1; } return 2;")
	if len(r.Errors()) == 0 {
		t.Fatal("expected a resolver error for top-level return")
	}
}

func TestResolve_ReturnValueInInitializerIsError(t *testing.T) {
	_, r := resolveSource(t, "class A { init() { return 1; } }")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error returning a value from an initializer")
	}
}

func TestResolve_BareReturnInInitializerIsFine(t *testing.T) {
	_, r := resolveSource(t, "class A { init() { return; } }")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
}

func TestResolve_BreakOutsideLoopIsError(t *testing.T) {
	_, r := resolveSource(t, "break;")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error for break outside a loop")
	}
}

func TestResolve_BreakInsideLoopIsFine(t *testing.T) {
	_, r := resolveSource(t, "while (true) { break; }")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, r := resolveSource(t, "fun f() { return super.g(); }")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error for super outside a class")
	}
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	_, r := resolveSource(t, "class A { f() { return super.g(); } }")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error for super in a class without a superclass")
	}
}

func TestResolve_SuperWithSuperclassIsFine(t *testing.T) {
	_, r := resolveSource(t, "class A {} class B < A { f() { return super.f(); } }")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
}

func TestResolve_SelfInheritanceIsError(t *testing.T) {
	_, r := resolveSource(t, "class A < A {}")
	if len(r.Errors()) == 0 {
		t.Fatal("expected an error for a class inheriting from itself")
	}
}

func TestResolve_ThisAndSuperAreInjectedBindingsInMethods(t *testing.T) {
	program, r := resolveSource(t, `
class A { f() { return 1; } }
class B < A {
	f() { return super.f() + this.x; }
}
`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}
	classB := program.Statements[1].(*ast.ClassStmt)
	body := classB.Methods[0].Body
	ret := body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.Binary)
	super := bin.Left.(*ast.Call).Callee.(*ast.Super)
	if super.Depth < 0 {
		t.Errorf("super depth = %d, want a resolved non-negative depth", super.Depth)
	}
	get := bin.Right.(*ast.Get)
	thisVar := get.Object.(*ast.Variable)
	if thisVar.Name.Lexeme != "this" || thisVar.Depth < 0 {
		t.Errorf("this = %+v, want a resolved 'this' variable", thisVar)
	}
}

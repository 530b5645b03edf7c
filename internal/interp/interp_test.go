package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/loxlang/golox/internal/scanner"
)

// run scans, parses, resolves, and evaluates src, returning everything
// written to stdout. It fails the test immediately on any stage error,
// mirroring the strictly staged pipeline the real CLI runs.
func run(t *testing.T, src string) string {
	t.Helper()
	sc := scanner.New(src)
	toks := sc.ScanTokens()
	if errs := sc.Errors(); len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}

	p := parser.New(toks)
	program := p.Parse()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	res := resolver.New()
	res.Resolve(program)
	if errs := res.Errors(); len(errs) != 0 {
		t.Fatalf("resolver errors: %v", errs)
	}

	var out bytes.Buffer
	in := New(WithStdout(&out))
	if err := in.Interpret(program.Statements); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return out.String()
}

func runExpectError(t *testing.T, src string) error {
	t.Helper()
	toks := scanner.New(src).ScanTokens()
	p := parser.New(toks)
	program := p.Parse()
	res := resolver.New()
	res.Resolve(program)
	var out bytes.Buffer
	in := New(WithStdout(&out))
	return in.Interpret(program.Statements)
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	if got := run(t, "print 1+2;"); got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestInterpret_StringConcatClosure(t *testing.T) {
	got := run(t, `var a = "Hi "; fun greet(n){ print a+n; } greet("Bob");`)
	if got != "Hi Bob\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_SuperCall(t *testing.T) {
	got := run(t, `class A { f(){ return 1; } } class B < A { f(){ return super.f()+1; } } print B().f();`)
	if got != "2\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_ClosureOverMutableUpvalue(t *testing.T) {
	got := run(t, `var c = 0; fun make(){ fun inc(){ c = c+1; return c; } return inc; } var i = make(); print i(); print i(); print i();`)
	if got != "1\n2\n3\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_ForLoopWithBreak(t *testing.T) {
	got := run(t, `for (var i = 0; i < 3; i = i+1) { if (i == 2) break; print i; }`)
	if got != "0\n1\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_Getter(t *testing.T) {
	got := run(t, `class P { area { return 10*10; } } print P().area;`)
	if got != "100\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_InitializerAlwaysReturnsThis(t *testing.T) {
	got := run(t, `
class Box {
	init(v) { this.v = v; return; }
}
var b = Box(5);
print b.v;
`)
	if got != "5\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_MethodRebindingKeepsOriginalThis(t *testing.T) {
	got := run(t, `
class Counter {
	init() { this.n = 0; }
	inc() { this.n = this.n + 1; return this.n; }
}
var c1 = Counter();
var f = c1.inc;
print f();
print f();
`)
	if got != "1\n2\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_AddingStringAndNumberIsRuntimeError(t *testing.T) {
	err := runExpectError(t, `print "a" + 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	err := runExpectError(t, `print 1/0;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_EqualityNeverErrors(t *testing.T) {
	got := run(t, `print 1 == "1"; print nil == false; print "a" == "a";`)
	if got != "false\nfalse\ntrue\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_TruthinessOfZeroAndEmptyString(t *testing.T) {
	got := run(t, `if (0) print "zero is truthy"; if ("") print "empty string is truthy";`)
	if !strings.Contains(got, "zero is truthy") || !strings.Contains(got, "empty string is truthy") {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_OrAndAndShortCircuit(t *testing.T) {
	got := run(t, `
fun sideEffect(tag) { print tag; return true; }
print true or sideEffect("or-rhs");
print false and sideEffect("and-rhs");
`)
	if strings.Contains(got, "or-rhs") || strings.Contains(got, "and-rhs") {
		t.Errorf("short-circuit failed, got %q", got)
	}
}

func TestInterpret_NumberDisplayFormatting(t *testing.T) {
	got := run(t, `print 3; print 3.5; print -2;`)
	if got != "3\n3.5\n-2\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_StaticMethod(t *testing.T) {
	got := run(t, `class Math2 { class square(x) { return x*x; } } print Math2.square(4);`)
	if got != "16\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_LenBuiltin(t *testing.T) {
	got := run(t, `print len("hello");`)
	if got != "5\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_LenBuiltinRejectsNonString(t *testing.T) {
	err := runExpectError(t, `print len(5);`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_ClockBuiltinReturnsNumber(t *testing.T) {
	got := run(t, `var t = clock(); print t >= 0;`)
	if got != "true\n" {
		t.Errorf("got %q", got)
	}
}

func TestInterpret_InputBuiltinReadsOneLine(t *testing.T) {
	toks := scanner.New(`print input();`).ScanTokens()
	p := parser.New(toks)
	program := p.Parse()
	res := resolver.New()
	res.Resolve(program)

	var out bytes.Buffer
	in := New(WithStdout(&out), WithStdin(strings.NewReader("Ada\nLovelace\n")))
	if err := in.Interpret(program.Statements); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	if out.String() != "Ada\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	err := runExpectError(t, `print undefinedThing;`)
	if err == nil {
		t.Fatal("expected a runtime error for an undefined global")
	}
}

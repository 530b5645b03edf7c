package golox_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/loxlang/golox/pkg/golox"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestEngine_EvalArithmetic(t *testing.T) {
	engine, err := golox.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := engine.Eval(`print 6*7;`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Output != "42\n" {
		t.Errorf("got %q", result.Output)
	}
}

func TestEngine_CompileErrorReportsStage(t *testing.T) {
	engine, err := golox.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = engine.Compile(`var x = ;`)
	if err == nil {
		t.Fatal("expected a compile error")
	}
	compileErr, ok := err.(*golox.CompileError)
	if !ok {
		t.Fatalf("expected *golox.CompileError, got %T", err)
	}
	if compileErr.Stage != "parsing" {
		t.Errorf("stage = %q, want %q", compileErr.Stage, "parsing")
	}
	if !compileErr.HasErrors() {
		t.Error("expected HasErrors() to be true")
	}
}

func TestEngine_RuntimeErrorIsStructured(t *testing.T) {
	engine, err := golox.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = engine.Eval(`print 1/0;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	structErr, ok := err.(*golox.Error)
	if !ok {
		t.Fatalf("expected *golox.Error, got %T", err)
	}
	if !structErr.IsError() {
		t.Error("IsError() = false, want true")
	}
}

func TestEngine_PersistentGlobalsAcrossEval(t *testing.T) {
	engine, err := golox.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.Eval(`var total = 0;`); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if _, err := engine.Eval(`total = total + 5;`); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	result, err := engine.Eval(`print total;`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Output != "5\n" {
		t.Errorf("got %q, want globals to persist across Eval calls", result.Output)
	}
}

func TestEngine_ClassesAndSnapshot(t *testing.T) {
	engine, err := golox.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := engine.Eval(`
class Greeter {
	init(name) { this.name = name; }
	greet() { return "Hello, " + this.name + "!"; }
}
var g = Greeter("Lox");
print g.greet();
`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	snaps.MatchSnapshot(t, result.Output)
}

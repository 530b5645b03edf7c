package golox_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/loxlang/golox/pkg/golox"
)

// Example shows basic usage of the golox engine.
func Example() {
	engine, err := golox.New()
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Eval(`print "Hello, World!";`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Output)
	// Output: Hello, World!
}

// Example_compile demonstrates compiling once and running multiple times.
func Example_compile() {
	engine, err := golox.New()
	if err != nil {
		log.Fatal(err)
	}

	program, err := engine.Compile(`
var greeting = "Hello!";
print greeting;
`)
	if err != nil {
		log.Fatal(err)
	}

	result1, _ := engine.Run(program)
	fmt.Print(result1.Output)

	result2, _ := engine.Run(program)
	fmt.Print(result2.Output)

	// Output:
	// Hello!
	// Hello!
}

// Example_withOutput shows how to mirror program output to a custom
// writer, in addition to the Result every Eval/Run call returns.
func Example_withOutput() {
	var buf bytes.Buffer

	engine, err := golox.New(golox.WithOutput(&buf))
	if err != nil {
		log.Fatal(err)
	}

	_, err = engine.Eval(`print "Captured!";`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(buf.String())
	// Output: Captured!
}

// Example_closures demonstrates a function returning a closure that keeps
// its own state.
func Example_closures() {
	engine, err := golox.New()
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Eval(`
fun makeCounter() {
	var count = 0;
	fun counter() {
		count = count + 1;
		return count;
	}
	return counter;
}
var c = makeCounter();
print c();
print c();
print c();
`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Output)
	// Output:
	// 1
	// 2
	// 3
}

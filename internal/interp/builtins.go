package interp

import (
	"bufio"
	"strings"
	"time"
	"unicode/utf8"
)

// registerBuiltins binds the three host functions (clock, len, input)
// into the global frame before any user code runs.
func registerBuiltins(in *Interpreter) {
	in.globals.Define("clock", &NativeFunction{
		Name: "clock",
		Args: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return NumberValue(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})

	in.globals.Define("len", &NativeFunction{
		Name: "len",
		Args: 1,
		Fn: func(_ *Interpreter, args []Value) (Value, error) {
			s, ok := args[0].(StringValue)
			if !ok {
				return nil, runtimeErrorf(0, "len() expects a string, got %s.", quoted(args[0]))
			}
			return NumberValue(float64(utf8.RuneCountInString(string(s)))), nil
		},
	})

	in.globals.Define("input", &NativeFunction{
		Name: "input",
		Args: 0,
		Fn: func(ip *Interpreter, _ []Value) (Value, error) {
			reader := bufio.NewReader(ip.in)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return StringValue(""), nil
			}
			return StringValue(strings.TrimRight(line, "\r\n")), nil
		},
	})
}

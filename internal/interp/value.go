// Package interp is the tree-walking evaluator: environments, closures,
// calls, classes, and the non-local control transfer used by break and
// return.
//
// Value is a tagged union with one concrete type per primitive kind (nil,
// boolean, a single IEEE-754 number, string, callable, instance): a closed
// Value interface with Type()/String(), dispatched by type switch rather
// than a split numeric hierarchy or any collection types — see DESIGN.md.
package interp

import (
	"fmt"
	"strconv"
)

// Value is a runtime Lox value. Every concrete type below is the only
// implementation the evaluator ever constructs — the interface exists for
// dispatch, not for external extension.
type Value interface {
	Type() string
	String() string
}

// NilValue is the single nil value. The zero value of the type is the
// only instance the evaluator ever needs; Nil is that instance.
type NilValue struct{}

// Nil is the interned nil singleton.
var Nil = NilValue{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// BooleanValue is true or false.
type BooleanValue bool

func (BooleanValue) Type() string { return "BOOLEAN" }
func (b BooleanValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is Lox's only numeric kind: an IEEE-754 double.
type NumberValue float64

func (NumberValue) Type() string { return "NUMBER" }

// String formats a whole-number-valued double with no decimal point;
// everything else uses Go's default double formatting.
func (n NumberValue) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StringValue is an immutable Lox string.
type StringValue string

func (StringValue) Type() string     { return "STRING" }
func (s StringValue) String() string { return string(s) }

// quoted renders a value the way error messages quote it: strings get
// surrounding double quotes, everything else uses its plain String().
func quoted(v Value) string {
	if s, ok := v.(StringValue); ok {
		return fmt.Sprintf("%q", string(s))
	}
	return v.String()
}

// IsTruthy is Lox's truthiness rule: only false and nil are falsey,
// everything else — including 0 and the empty string — is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BooleanValue:
		return bool(val)
	default:
		return true
	}
}

// valuesEqual is Lox equality: value equality within a primitive kind,
// reference equality for callables and instances, and never-equal across
// different kinds. It never errors.
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BooleanValue:
		bv, ok := b.(BooleanValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	default:
		// Callables (native/user functions, classes): reference equality.
		return a == b
	}
}

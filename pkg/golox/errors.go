package golox

import (
	"fmt"

	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/loxlang/golox/internal/scanner"
)

// ErrorSeverity classifies a diagnostic. Lox's scanner, parser, resolver,
// and evaluator only ever produce SeverityError — there is no warning or
// hint pass — but the enum is kept at full width so a host embedding
// golox can switch on it the same way it would for any other
// structured-error-returning engine.
type ErrorSeverity int

const (
	SeverityError ErrorSeverity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

func (s ErrorSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Error is one structured diagnostic from a failed Compile. Column and
// Length are always 0: the scanner/parser/resolver track only source
// line, not column or span width.
type Error struct {
	Message  string
	Line     int
	Column   int
	Length   int
	Severity ErrorSeverity
	Code     string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s at %d:%d: %s [%s]", e.Severity, e.Line, e.Column, e.Message, e.Code)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Severity, e.Line, e.Column, e.Message)
}

func (e *Error) IsError() bool   { return e.Severity == SeverityError }
func (e *Error) IsWarning() bool { return e.Severity == SeverityWarning }

// CompileError is returned by Engine.Compile when scanning, parsing, or
// resolving fails. Stage names which one ("scanning", "parsing",
// "resolving") and Errors carries every diagnostic that stage collected
// before giving up, not just the first.
type CompileError struct {
	Stage  string
	Errors []*Error
}

func (e *CompileError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s failed: %s", e.Stage, e.Errors[0].Message)
	}
	return fmt.Sprintf("%s failed with %d error(s)", e.Stage, len(e.Errors))
}

func (e *CompileError) HasErrors() bool { return len(e.Errors) > 0 }

func scanErrorsToErrors(errs []*scanner.Error) []*Error {
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = &Error{Message: e.Message, Line: e.Line, Severity: SeverityError}
	}
	return out
}

func parseErrorsToErrors(errs []*parser.Error) []*Error {
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = &Error{Message: e.Message, Line: e.Line, Severity: SeverityError}
	}
	return out
}

func resolveErrorsToErrors(errs []*resolver.Error) []*Error {
	out := make([]*Error, len(errs))
	for i, e := range errs {
		out[i] = &Error{Message: e.Message, Line: e.Line, Severity: SeverityError}
	}
	return out
}

// runtimeErrorToError wraps an *interp.RuntimeError as a *Error so
// Run/Eval callers can type-switch on a single error shape regardless of
// which stage failed.
func runtimeErrorToError(err error) *Error {
	if rtErr, ok := err.(*interp.RuntimeError); ok {
		return &Error{Message: rtErr.Message, Line: rtErr.Line, Severity: SeverityError}
	}
	return &Error{Message: err.Error(), Severity: SeverityError}
}

package diagnostics

// Exit codes the CLI returns.
const (
	ExitSuccess      = 0
	ExitUsage        = 64
	ExitStageFailure = 65 // scan, parse, or resolver error
	ExitFileNotFound = 66
	ExitRuntime      = 70
)

// FromErrors converts a slice of stage errors (scanner.Error,
// parser.Error, resolver.Error — each a distinct type to avoid an import
// cycle with the command layer that imports both this package and
// theirs) into Diagnostics of the given kind, using lineOf to pull each
// error's line number. The command layer calls this once per stage after
// checking Errors() is non-empty.
func FromErrors[E interface {
	error
}](kind Kind, lineOf func(E) int, errs []E) []*Diagnostic {
	out := make([]*Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = New(kind, lineOf(e), e.Error())
	}
	return out
}

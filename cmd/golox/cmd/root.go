package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "golox interpreter",
	Long: `golox is a tree-walking interpreter for the Lox language.

Lox is a small, dynamically typed scripting language with closures,
classes with single inheritance, and a handful of built-in functions.
Source runs through a scanner, a recursive-descent parser, a static
resolver that computes variable binding depths, and a tree-walking
evaluator, in that order.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitCode carries the process status a subcommand wants, since Cobra's
// RunE error path collapses every failure to the same shape but golox
// needs four distinct failure codes (64 usage, 65 stage failure, 66 file
// not found, 70 runtime) plus 0 on success.
var exitCode int

// Execute runs the root command and returns the exit code the process
// should use.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if exitCode == 0 {
			exitCode = 64
		}
		return exitCode
	}
	return exitCode
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (REPL prompt, color, search depth)")
}

// exitWithError records the exit code a failing subcommand should report
// and returns an error value for RunE so Cobra unwinds cleanly.
func exitWithError(code int, format string, args ...any) error {
	exitCode = code
	return fmt.Errorf(format, args...)
}

// Command golox is the command-line front end for the Lox interpreter.
package main

import (
	"os"

	"github.com/loxlang/golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

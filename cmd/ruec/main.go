// Command ruec is a small debugging front-end over the rue lexer and
// parser: it exists to exercise the library from the command line, not as
// part of the language's own contract.
package main

import (
	"fmt"
	"os"

	"github.com/Rigidity/rue-lang/cmd/ruec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

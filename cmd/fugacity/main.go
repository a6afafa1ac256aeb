// Command fugacity prints saturation points and fugacity curves of a
// single component from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fugacity/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fugacity:", err)
		os.Exit(1)
	}
}

// main is the entry point for the pagelens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pagelens/pagelens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

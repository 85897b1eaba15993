// Command tagcloud writes an HTML tag cloud of the most frequent words in a
// plain-text document.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	cmd := newRootCommand(defaultDeps())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

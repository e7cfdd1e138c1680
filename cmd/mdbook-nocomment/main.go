// Package main is the entry point for the mdbook-nocomment preprocessor.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmylchreest/mdbook-nocomment/cmd/mdbook-nocomment/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrUnsupportedRenderer) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

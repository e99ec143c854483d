// Package main provides the entry point for the tunectl CLI, a small
// inspection tool over tune parameter sets: it reads a pipeline spec, builds
// the set of marked parameters, optionally finalizes data-dependent bounds
// against a CSV sample, and prints the result as a table.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

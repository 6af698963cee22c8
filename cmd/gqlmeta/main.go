// Package main provides the CLI entrypoint for gqlmeta.
//
// gqlmeta builds GraphQL schema types from annotated Go packages and YAML
// manifests:
//   - Loads Go packages (AST + go/types) and manifest declarations
//   - Resolves arguments and input fields from directives, doc comments and signatures
//   - Prints and validates the resulting schema as SDL
package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

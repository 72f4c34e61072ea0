// Package main provides the CLI entrypoint for phfile.
//
// phfile works with photometric data files:
//   - check: validates LDT / IES files
//   - get, set: reads and changes fields by name or LDT position
//   - fmt: re-serializes a file in canonical form
//   - dump: prints all fields as YAML, JSON or Go values
package main

import (
	"context"
	"fmt"
	"os"

	"phfile/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

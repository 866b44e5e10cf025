// Package main is the entry point for the maestro CLI.
package main

import (
	"os"

	"github.com/thoreinstein/maestro/cmd/maestro/commands"
	"github.com/thoreinstein/maestro/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.CodeOf(err))
	}
}

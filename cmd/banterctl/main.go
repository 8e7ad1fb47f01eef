// Package main is the entry point for the banterctl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/banter-mcp/banterctl/cmd/banterctl/commands"
	banterrors "github.com/banter-mcp/banterctl/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)

		var exitErr *banterrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(banterrors.ExitUser)
	}
}

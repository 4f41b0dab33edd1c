// Package main is the entry point for the baremp3 CLI.
package main

import (
	"os"

	"github.com/aikumo/baremp3/cmd/baremp3/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}

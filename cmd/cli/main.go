// Package main is the entry point for the unties CLI.
package main

import (
	"os"

	"unties/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

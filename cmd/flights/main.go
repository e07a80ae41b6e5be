// Package main is the entry point for the flights CLI.
package main

import (
	"os"

	"github.com/FranciscoRecio/flights/cmd/flights/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the modelsql CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/modelsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

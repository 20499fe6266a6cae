// Package main provides the reactlint command.
package main

import (
	"os"

	"github.com/leapstack-labs/reactlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

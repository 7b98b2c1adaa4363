// Package main provides the wordfreq CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/wordfreq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the nrql2dql CLI binary.
package main

import (
	"os"

	"nrql2dql/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}

// Package main is the entry point for the gnu-json-result CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/gnu-json-result/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}

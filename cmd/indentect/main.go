// Package main provides the indentect command.
package main

import (
	"os"

	"github.com/l0b0/indentect/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

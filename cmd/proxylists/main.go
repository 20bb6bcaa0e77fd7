// Package main is the entry point for the proxylists CLI application.
package main

import (
	"context"
	"os"

	"github.com/NikitaCOEUR/proxylists/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

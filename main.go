package main

import (
	"fmt"
	"os"

	"github.com/idelchi/duscan/internal/cli"
)

var version = "dev" //nolint:gochecknoglobals // Set at build time

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/kk-code-lab/dirpeek/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

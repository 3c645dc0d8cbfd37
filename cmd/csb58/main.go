package main

import (
	"fmt"
	"os"

	"github.com/cleared-dev/csb58/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", commands.Describe(err))
		os.Exit(1)
	}
}

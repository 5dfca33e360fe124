package main

import (
	"os"

	"github.com/mangit-cli/mangit/cmd"
	"github.com/mangit-cli/mangit/internal/store"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(store.ExitCode(err))
	}
}

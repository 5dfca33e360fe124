package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mangit-cli/mangit/internal/config"
	"github.com/mangit-cli/mangit/internal/registry"
	"github.com/mangit-cli/mangit/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the mangit directory and an empty registry",
	Long: `Creates the mangit directory, a default config.toml, and an empty
registry. Safe to run again on an existing setup; an unreadable registry is
reported, never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}

	// Write the default config only on first run so edits survive re-init.
	if _, err := os.Stat(config.FilePath(dir)); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(dir, config.Default()); err != nil {
			return err
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	eng := registry.New(store.NewFileStore(config.RegistryPath(dir)), cfg.LockTimeout())
	if err := eng.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized mangit at %s\n", dir)
	return nil
}

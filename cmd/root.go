package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mangit-cli/mangit/internal/config"
	"github.com/mangit-cli/mangit/internal/registry"
	"github.com/mangit-cli/mangit/internal/store"
	"github.com/mangit-cli/mangit/internal/telemetry"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mangit",
	Short: "Manage Git repositories with tags and frecency-ranked search",
	Long: `Mangit keeps a personal registry of Git project paths. Tag them, search
them, and let frecency (access frequency + recency) order the results for
quick jumps from the shell.

The registry lives in $MANGIT_HOME (default ~/.mangit) as a single JSON
document that shell integrations may read directly.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.SetVersion(Version)
		telemetry.Init()
		// Track command usage (skip root command itself)
		if cmd.Name() != "mangit" {
			telemetry.TrackCommand(cmd.Name())
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.Close()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
}

// openEngine wires the registry engine against the configured mangit
// directory.
func openEngine() (*registry.Engine, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	s := store.NewFileStore(config.RegistryPath(dir))
	return registry.New(s, cfg.LockTimeout()), nil
}

// expandTilde resolves a leading ~ to the user's home directory.
func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

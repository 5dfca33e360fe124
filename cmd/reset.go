package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetPath string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset usage statistics for one repo or all of them",
	Long: `Sets the access count to zero and clears the last access time. Tags and
creation times are preserved. Without --path, every repository is reset in
a single write.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVarP(&resetPath, "path", "p", "", "Reset only this repository")
}

func runReset(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	if resetPath != "" {
		if err := eng.Reset(expandTilde(resetPath)); err != nil {
			return err
		}
		fmt.Printf("Reset stats for repo: %s\n", resetPath)
		return nil
	}

	count, err := eng.ResetAll()
	if err != nil {
		return err
	}
	fmt.Printf("Reset stats for %d repo(s)\n", count)
	return nil
}

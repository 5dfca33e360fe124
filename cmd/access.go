package cmd

import (
	"github.com/spf13/cobra"
)

var accessCmd = &cobra.Command{
	Use:   "access [path]",
	Short: "Record an access to a repository (boosts its frecency)",
	Long: `Increments the repository's access count and stamps the access time.
Shell integrations call this when jumping into a repo; output stays silent
so it can be wired into cd hooks.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccess,
}

func runAccess(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	_, err = eng.Access(expandTilde(args[0]))
	return err
}

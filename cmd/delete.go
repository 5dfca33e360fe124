package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Remove a repository from the registry",
	Long:  `Removes a registered repository. The working tree itself is left alone.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	if err := eng.Delete(expandTilde(args[0])); err != nil {
		return err
	}
	fmt.Printf("Deleted repo: %s\n", args[0])
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var updateTags []string

var updateCmd = &cobra.Command{
	Use:   "update [path]",
	Short: "Replace a repository's tags",
	Long: `Replaces the full tag set of a registered repository. Usage statistics
are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringSliceVarP(&updateTags, "tags", "t", nil, "New tags for the repository (comma separated)")
	_ = updateCmd.MarkFlagRequired("tags")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	rec, err := eng.Update(expandTilde(args[0]), updateTags)
	if err != nil {
		return err
	}
	fmt.Printf("Updated repo: %s\n", rec.Path)
	fmt.Printf("Tags: %s\n", strings.Join(rec.Tags, ", "))
	return nil
}

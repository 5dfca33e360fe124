package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mangit-cli/mangit/internal/store"
	"github.com/spf13/cobra"
)

var (
	addTags        []string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register a repository with tags",
	Long: `Registers a Git repository under its canonical absolute path. The path
must exist and contain a .git directory. Adding a path that is already
registered fails; use update to change its tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "Tags for the repository (comma separated)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Short description of the repository")
}

func runAdd(cmd *cobra.Command, args []string) error {
	path := expandTilde(args[0])

	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return store.NewError(store.KindInvalidInput, args[0], errors.New("path does not exist"))
	}
	if !store.IsGitRepo(path) {
		return store.NewError(store.KindInvalidInput, args[0], errors.New("not a Git repository"))
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	rec, err := eng.Add(path, addTags, addDescription)
	if err != nil {
		return err
	}

	fmt.Printf("Added repo: %s\n", rec.Path)
	if len(rec.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(rec.Tags, ", "))
	}
	if rec.Language != "" {
		fmt.Printf("Language: %s\n", rec.Language)
	}
	return nil
}

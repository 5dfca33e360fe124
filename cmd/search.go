package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var searchVerbose bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search repositories by tag or path, best match first",
	Long: `Matches the query case-insensitively against each repository's tags,
path, description, and language. Results are ordered by frecency so the
repos you use most, most recently, come first.

The default output is one path per line for piping into fzf or a shell
function; --verbose prints a table instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Show a table with tags and scores")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	results, err := eng.Search(query)
	if err != nil {
		return err
	}

	if !searchVerbose {
		for _, res := range results {
			fmt.Println(res.Record.Path)
		}
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No matching repos found")
		return nil
	}

	fmt.Printf("%-24s %-30s %-10s %s\n", "NAME", "TAGS", "SCORE", "PATH")
	for _, res := range results {
		tags := strings.Join(res.Record.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		fmt.Printf("%-24s %-30s %-10.3f %s\n",
			filepath.Base(res.Record.Path), tags, res.Score, res.Record.Path)
	}
	return nil
}

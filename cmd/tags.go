package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with their usage counts",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	counts, err := eng.Tags()
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("No tags found in any repositories")
		return nil
	}

	type tagCount struct {
		tag   string
		count int
	}
	sorted := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		sorted = append(sorted, tagCount{tag, count})
	}
	// Most used first, then by name for stable output.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].tag < sorted[j].tag
	})

	fmt.Println("All tags (tag: count):")
	for _, tc := range sorted {
		fmt.Printf("%s: %d\n", tc.tag, tc.count)
	}
	return nil
}

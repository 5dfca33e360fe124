package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listTags []string
	listSort string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered repositories",
	Long: `Lists every registered repository, optionally filtered to those carrying
all of the given tags. Sort by name (default) or by most recent access.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVarP(&listTags, "tags", "t", nil, "Only show repos carrying all of these tags")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "name", "Sort order: name or recent")
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	records, err := eng.List(listTags)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No repositories found")
		return nil
	}

	switch listSort {
	case "name":
		sort.Slice(records, func(i, j int) bool {
			return strings.ToLower(filepath.Base(records[i].Path)) < strings.ToLower(filepath.Base(records[j].Path))
		})
	case "recent":
		sort.Slice(records, func(i, j int) bool {
			return records[i].LastAccessedTime().After(records[j].LastAccessedTime())
		})
	default:
		fmt.Printf("Unknown sort field '%s', using name\n", listSort)
	}

	fmt.Printf("%-24s %-15s %-30s %-10s %s\n", "NAME", "LANGUAGE", "TAGS", "ACCESSES", "LAST ACCESSED")
	fmt.Println(strings.Repeat("-", 95))
	for _, rec := range records {
		language := rec.Language
		if language == "" {
			language = "-"
		}
		tags := strings.Join(rec.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		lastAccessed := "never"
		if rec.LastAccessed != nil {
			lastAccessed = formatTimeAgo(rec.LastAccessedTime())
		}
		fmt.Printf("%-24s %-15s %-30s %-10d %s\n",
			filepath.Base(rec.Path), language, tags, rec.AccessCount, lastAccessed)
	}
	return nil
}

package cmd

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mangit-cli/mangit/internal/registry"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show details and git status for a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	rec, err := eng.Get(expandTilde(args[0]))
	if err != nil {
		return err
	}

	tags := strings.Join(rec.Tags, ", ")
	if tags == "" {
		tags = "None"
	}
	language := rec.Language
	if language == "" {
		language = "Unknown"
	}
	lastAccessed := "never"
	if rec.LastAccessed != nil {
		lastAccessed = formatTimeAgo(rec.LastAccessedTime())
	}
	description := rec.Description
	if description == "" {
		description = "None"
	}

	fmt.Printf("Repository: %s\n", filepath.Base(rec.Path))
	fmt.Printf("Path: %s\n", rec.Path)
	fmt.Printf("Language: %s\n", language)
	fmt.Printf("Tags: %s\n", tags)
	fmt.Printf("Description: %s\n", description)
	fmt.Printf("Added: %s\n", formatTimeAgo(time.Unix(rec.CreatedAt, 0)))
	fmt.Printf("Accesses: %d (last: %s)\n", rec.AccessCount, lastAccessed)
	fmt.Printf("Frecency score: %.3f\n", registry.Score(rec, time.Now()))

	fmt.Println("\nGit Status:")
	status, err := exec.Command("git", "-C", rec.Path, "status", "--short").Output()
	if err != nil {
		fmt.Println("  Could not get git status")
	} else if strings.TrimSpace(string(status)) == "" {
		fmt.Println("  No changes")
	} else {
		for _, line := range strings.Split(strings.TrimRight(string(status), "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}

	fmt.Println("\nRecent Commits:")
	log, err := exec.Command("git", "-C", rec.Path, "log", "-3", "--oneline").Output()
	if err != nil || strings.TrimSpace(string(log)) == "" {
		fmt.Println("  No commits found")
	} else {
		for _, line := range strings.Split(strings.TrimRight(string(log), "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}

	return nil
}

// formatTimeAgo renders an instant as a rough relative day count.
func formatTimeAgo(t time.Time) string {
	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

package cmd

import (
	"fmt"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/refs"
	"github.com/gitlet-vcs/gitlet/internal/staging"
	"github.com/gitlet-vcs/gitlet/internal/worktree"
)

// StatusHandler prints the five status sections, each lexicographically
// sorted, with the active branch starred.
func StatusHandler(repo *core.Repository, args []string) error {
	ix, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	head, err := headCommit(repo)
	if err != nil {
		return err
	}
	branches, err := refs.ListBranches(repo)
	if err != nil {
		return err
	}
	current, err := refs.ReadHead(repo)
	if err != nil {
		return err
	}
	status, err := worktree.ScanStatus(repo, ix, head)
	if err != nil {
		return err
	}

	fmt.Println("=== Branches ===")
	for _, branch := range branches {
		if branch == current {
			fmt.Println("*" + branch)
		} else {
			fmt.Println(branch)
		}
	}
	fmt.Println()

	printSection("=== Staged Files ===", status.Staged)
	printSection("=== Removed Files ===", status.Removed)
	printSection("=== Modifications Not Staged For Commit ===", status.Modifications)
	printSection("=== Untracked Files ===", status.Untracked)
	return nil
}

func printSection(header string, names []string) {
	fmt.Println(header)
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"status",
		"Show branches, staged files, and working-tree state",
		0,
		StatusHandler,
	))
}

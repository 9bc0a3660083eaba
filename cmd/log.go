package cmd

import (
	"fmt"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
)

// LogHandler walks the first-parent chain from the head commit, printing
// each commit's display form.
func LogHandler(repo *core.Repository, args []string) error {
	commit, err := headCommit(repo)
	if err != nil {
		return err
	}
	for {
		fmt.Println(commit.Display())
		if commit.Parent == "" {
			return nil
		}
		commit, err = objects.GetCommit(repo, commit.Parent)
		if err != nil {
			return err
		}
	}
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"log",
		"Show the history of the current branch",
		0,
		LogHandler,
	))
}

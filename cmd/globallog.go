package cmd

import (
	"fmt"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
)

// GlobalLogHandler prints every commit in the store in listing order.
func GlobalLogHandler(repo *core.Repository, args []string) error {
	hashes, err := objects.ListCommitHashes(repo)
	if err != nil {
		return err
	}
	for _, hash := range hashes {
		commit, err := objects.GetCommit(repo, hash)
		if err != nil {
			return err
		}
		fmt.Println(commit.Display())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"global-log",
		"Show every commit ever made",
		0,
		GlobalLogHandler,
	))
}

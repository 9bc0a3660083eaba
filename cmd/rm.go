package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

// RmHandler handles the 'rm' command.
func RmHandler(repo *core.Repository, args []string) error {
	ix, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	head, err := headCommit(repo)
	if err != nil {
		return err
	}
	if err := staging.UnstageOrMarkRemoved(repo, ix, head, args[0]); err != nil {
		return err
	}
	return ix.Write(repo)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"rm <file>",
		"Unstage a file, or stage it for removal and delete it",
		1,
		RmHandler,
	))
}

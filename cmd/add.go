package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

// AddHandler handles the 'add' command.
func AddHandler(repo *core.Repository, args []string) error {
	ix, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	head, err := headCommit(repo)
	if err != nil {
		return err
	}
	if err := staging.Stage(repo, ix, head, args[0]); err != nil {
		return err
	}
	return ix.Write(repo)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"add <file>",
		"Stage a file for the next commit",
		1,
		AddHandler,
	))
}

package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/refs"
)

// BranchHandler creates a new branch at the current head commit.
func BranchHandler(repo *core.Repository, args []string) error {
	hash, err := refs.HeadCommitHash(repo)
	if err != nil {
		return err
	}
	return refs.CreateBranch(repo, args[0], hash)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"branch <name>",
		"Create a new branch at the current head commit",
		1,
		BranchHandler,
	))
}

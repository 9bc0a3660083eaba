package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
	"github.com/gitlet-vcs/gitlet/internal/worktree"
)

// ResetHandler moves the current branch to the resolved commit, reconciling
// the working directory to its snapshot and clearing the index.
func ResetHandler(repo *core.Repository, args []string) error {
	hash, err := objects.ResolvePrefix(repo, args[0])
	if err != nil {
		return err
	}
	target, err := objects.GetCommit(repo, hash)
	if err != nil {
		return err
	}
	head, err := headCommit(repo)
	if err != nil {
		return err
	}
	branch, err := refs.ReadHead(repo)
	if err != nil {
		return err
	}

	if err := worktree.Reconcile(repo, head, target); err != nil {
		return err
	}
	if err := refs.SetBranch(repo, branch, hash); err != nil {
		return err
	}
	return clearIndex(repo)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"reset <commit id>",
		"Move the current branch to a commit and restore its snapshot",
		1,
		ResetHandler,
	))
}

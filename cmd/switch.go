package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
	"github.com/gitlet-vcs/gitlet/internal/staging"
	"github.com/gitlet-vcs/gitlet/internal/worktree"
)

// SwitchHandler makes the named branch active: the working directory is
// reconciled to its head snapshot and the index is cleared.
func SwitchHandler(repo *core.Repository, args []string) error {
	name := args[0]
	if !refs.BranchExists(repo, name) {
		return core.ErrNoSuchBranchSwitch
	}
	current, err := refs.ReadHead(repo)
	if err != nil {
		return err
	}
	if name == current {
		return core.ErrAlreadyOnBranch
	}

	head, err := headCommit(repo)
	if err != nil {
		return err
	}
	targetHash, err := refs.ReadBranch(repo, name)
	if err != nil {
		return err
	}
	target, err := objects.GetCommit(repo, targetHash)
	if err != nil {
		return err
	}

	if err := worktree.Reconcile(repo, head, target); err != nil {
		return err
	}
	if err := refs.SetHead(repo, name); err != nil {
		return err
	}
	return clearIndex(repo)
}

// clearIndex empties the staging area and persists it.
func clearIndex(repo *core.Repository) error {
	ix := staging.NewIndex()
	return ix.Write(repo)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"switch <branch>",
		"Switch to another branch",
		1,
		SwitchHandler,
	))
}

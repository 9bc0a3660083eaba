package cmd

import (
	"strings"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

// CommitHandler handles the 'commit' command: the new snapshot is the head
// snapshot with the staged additions applied and the staged removals
// dropped. The current branch advances and the index is cleared.
func CommitHandler(repo *core.Repository, args []string) error {
	message := args[0]
	if strings.TrimSpace(message) == "" {
		return core.ErrEmptyMessage
	}

	ix, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	if !ix.HasChanges() {
		return core.ErrNoChangesAdded
	}

	branch, err := refs.ReadHead(repo)
	if err != nil {
		return err
	}
	head, err := headCommit(repo)
	if err != nil {
		return err
	}

	commit := objects.NewCommit(message, head.Hash, ix.ApplyTo(head.BlobMap))
	hash, err := objects.PutCommit(repo, commit)
	if err != nil {
		return err
	}
	if err := refs.SetBranch(repo, branch, hash); err != nil {
		return err
	}
	ix.Clear()
	return ix.Write(repo)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"commit <message>",
		"Record the staged snapshot as a new commit",
		1,
		CommitHandler,
	))
}

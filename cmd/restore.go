package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/worktree"
)

// RestoreHandler handles both restore forms:
//
//	restore -- <file>        restore the file from the head commit
//	restore <id> -- <file>   restore the file from the resolved commit
//
// Restoring never touches the staging area.
func RestoreHandler(repo *core.Repository, args []string) error {
	var commit *objects.Commit
	var name string
	var err error

	switch {
	case len(args) == 2 && args[0] == "--":
		name = args[1]
		commit, err = headCommit(repo)
		if err != nil {
			return err
		}
	case len(args) == 3 && args[1] == "--":
		name = args[2]
		hash, err := objects.ResolvePrefix(repo, args[0])
		if err != nil {
			return err
		}
		commit, err = objects.GetCommit(repo, hash)
		if err != nil {
			return err
		}
	default:
		return core.ErrIncorrectOperands
	}

	return worktree.RestoreFile(repo, commit, name)
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"restore [<commit id>] -- <file>",
		"Restore a file from a commit into the working directory",
		-1,
		RestoreHandler,
	))
}

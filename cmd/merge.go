package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/merge"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

// MergeHandler merges the given branch into the current one.
func MergeHandler(repo *core.Repository, args []string) error {
	ix, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	return merge.Merge(repo, ix, args[0])
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"merge <branch>",
		"Merge the given branch into the current branch",
		1,
		MergeHandler,
	))
}

package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/refs"
)

// RmBranchHandler deletes a branch pointer. The commits it pointed at stay
// in the store.
func RmBranchHandler(repo *core.Repository, args []string) error {
	return refs.DeleteBranch(repo, args[0])
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"rm-branch <name>",
		"Delete a branch pointer",
		1,
		RmBranchHandler,
	))
}

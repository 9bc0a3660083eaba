package cmd

import (
	"fmt"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
)

// FindHandler prints the hash of every commit whose message equals the
// operand.
func FindHandler(repo *core.Repository, args []string) error {
	hashes, err := objects.ListCommitHashes(repo)
	if err != nil {
		return err
	}
	found := false
	for _, hash := range hashes {
		commit, err := objects.GetCommit(repo, hash)
		if err != nil {
			return err
		}
		if commit.Message == args[0] {
			fmt.Println(hash)
			found = true
		}
	}
	if !found {
		return core.ErrNoCommitWithMessage
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newRepoCommand(
		"find <message>",
		"Print the ids of all commits with the given message",
		1,
		FindHandler,
	))
}

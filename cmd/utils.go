package cmd

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
)

// headCommit loads the head commit of the active branch.
func headCommit(repo *core.Repository) (*objects.Commit, error) {
	hash, err := refs.HeadCommitHash(repo)
	if err != nil {
		return nil, err
	}
	return objects.GetCommit(repo, hash)
}

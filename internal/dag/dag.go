// Package dag walks the commit graph. Commits are content-addressed records
// pointing at parent hashes; traversal loads nodes on demand from the store.
package dag

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
)

// PathToRoot returns every ancestor of hash, including hash itself,
// following both parents of merge commits.
func PathToRoot(repo *core.Repository, hash string) (map[string]bool, error) {
	ancestors := make(map[string]bool)
	queue := []string{hash}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == "" || ancestors[current] {
			continue
		}
		ancestors[current] = true
		commit, err := objects.GetCommit(repo, current)
		if err != nil {
			return nil, err
		}
		queue = append(queue, commit.Parent)
		if commit.IsMerge() {
			queue = append(queue, commit.SecondParent)
		}
	}
	return ancestors, nil
}

// LCA returns the lowest common ancestor of a and b: a breadth-first
// traversal from b, enqueueing both parents of merge commits, returning the
// first hash that is also an ancestor of a. Ties break in BFS order from b.
// The initial commit is a universal ancestor, so the result is always
// defined for two commits of the same repository.
func LCA(repo *core.Repository, a, b string) (string, error) {
	ancestorsOfA, err := PathToRoot(repo, a)
	if err != nil {
		return "", err
	}

	visited := make(map[string]bool)
	queue := []string{b}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == "" || visited[current] {
			continue
		}
		visited[current] = true
		if ancestorsOfA[current] {
			return current, nil
		}
		commit, err := objects.GetCommit(repo, current)
		if err != nil {
			return "", err
		}
		queue = append(queue, commit.Parent)
		if commit.IsMerge() {
			queue = append(queue, commit.SecondParent)
		}
	}
	return "", core.ErrNoSuchCommitID
}

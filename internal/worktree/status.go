package worktree

import (
	"sort"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/staging"
	"github.com/gitlet-vcs/gitlet/utils"
)

// Status is the computed working-tree state backing the status command.
// Every slice is lexicographically sorted; Modifications entries already
// carry their " (modified)" or " (deleted)" tag.
type Status struct {
	Staged        []string
	Removed       []string
	Modifications []string
	Untracked     []string
}

// ScanStatus compares the working directory, the index, and the head
// snapshot.
//
// A file is modified when it is tracked at a different hash than its
// working content and not restaged at that content, or staged for addition
// at a different hash than its working content. It is deleted when it is
// staged for addition but missing, or tracked, missing, and not staged for
// removal. Untracked files are present but neither staged for addition nor
// tracked.
func ScanStatus(repo *core.Repository, ix *staging.Index, head *objects.Commit) (*Status, error) {
	working, err := core.ListWorkingFiles(repo)
	if err != nil {
		return nil, err
	}
	inWork := make(map[string]bool, len(working))
	workHash := make(map[string]string, len(working))
	for _, name := range working {
		inWork[name] = true
		hash, err := utils.HashFile(repo.WorkPath(name))
		if err != nil {
			return nil, err
		}
		workHash[name] = hash
	}

	status := &Status{}
	for _, entry := range ix.Entries() {
		if entry.Kind == staging.KindAdd {
			status.Staged = append(status.Staged, entry.Name)
		} else {
			status.Removed = append(status.Removed, entry.Name)
		}
	}

	seen := make(map[string]bool)
	var names []string
	collect := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range head.BlobMap {
		collect(name)
	}
	for _, entry := range ix.Entries() {
		collect(entry.Name)
	}
	for _, name := range working {
		collect(name)
	}
	sort.Strings(names)

	for _, name := range names {
		trackedHash, tracked := head.BlobMap[name]
		stagedHash, stagedAdd := ix.Addition(name)
		_, stagedRm := ix.Removal(name)

		switch {
		case inWork[name] && !stagedAdd && !tracked:
			status.Untracked = append(status.Untracked, name)
		case tracked && inWork[name] && workHash[name] != trackedHash &&
			!(stagedAdd && stagedHash == workHash[name]):
			status.Modifications = append(status.Modifications, name+" (modified)")
		case stagedAdd && inWork[name] && stagedHash != workHash[name]:
			status.Modifications = append(status.Modifications, name+" (modified)")
		case stagedAdd && !inWork[name]:
			status.Modifications = append(status.Modifications, name+" (deleted)")
		case tracked && !inWork[name] && !stagedRm:
			status.Modifications = append(status.Modifications, name+" (deleted)")
		}
	}
	return status, nil
}

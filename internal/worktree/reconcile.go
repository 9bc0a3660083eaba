// Package worktree projects commit snapshots onto the working directory and
// scans the working directory for status. It never modifies a file that the
// source commit does not track.
package worktree

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

// CheckUntracked fails when an untracked working-directory file (present
// but not tracked by old) would be overwritten by new. It mutates nothing.
func CheckUntracked(repo *core.Repository, old, new *objects.Commit) error {
	working, err := core.ListWorkingFiles(repo)
	if err != nil {
		return err
	}
	for _, name := range working {
		if !old.Tracks(name) && new.Tracks(name) {
			return core.ErrUntrackedInTheWay
		}
	}
	return nil
}

// Reconcile transitions the working directory from old's snapshot to new's:
// the untracked-file check runs before any mutation, files tracked only by
// old are deleted, and every file tracked by new is restored from its blob.
func Reconcile(repo *core.Repository, old, new *objects.Commit) error {
	if err := CheckUntracked(repo, old, new); err != nil {
		return err
	}
	for _, name := range old.TrackedFiles() {
		if new.Tracks(name) {
			continue
		}
		if err := core.RemovePlainFile(repo.WorkPath(name)); err != nil {
			return err
		}
	}
	for _, name := range new.TrackedFiles() {
		if err := RestoreFile(repo, new, name); err != nil {
			return err
		}
	}
	return nil
}

// RestoreFile overwrites the working-directory file with the blob bytes the
// commit tracks it at. The staging area is not touched.
func RestoreFile(repo *core.Repository, commit *objects.Commit, name string) error {
	hash, ok := commit.BlobMap[name]
	if !ok {
		return core.ErrFileNotInCommit
	}
	content, err := objects.GetBlob(repo, hash)
	if err != nil {
		return err
	}
	return core.WriteFileContent(repo.WorkPath(name), content)
}

// RestoreAndStage restores a file from the commit and stages it for
// addition. The merge engine uses this; plain restore never stages.
func RestoreAndStage(repo *core.Repository, ix *staging.Index, commit *objects.Commit, name string) error {
	if err := RestoreFile(repo, commit, name); err != nil {
		return err
	}
	ix.StageAddition(name, commit.BlobMap[name])
	return nil
}

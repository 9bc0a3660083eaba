// Package merge implements the three-way merge: per-file resolution from
// (split, current, given) blob triples, conflict marking, and merge-commit
// assembly.
package merge

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/dag"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
	"github.com/gitlet-vcs/gitlet/internal/staging"
	"github.com/gitlet-vcs/gitlet/internal/worktree"
)

// Conflict marker literals. The conflict file is exactly: the start marker,
// the current contents (empty when untracked), the separator, the given
// contents, the end marker. No extra newline is appended.
const (
	conflictStart     = "<<<<<<< HEAD\n"
	conflictSeparator = "=======\n"
	conflictEnd       = ">>>>>>>\n"
)

// Merge merges the given branch into the current one.
//
// ErrFastForwarded and ErrMergeConflict are informational: when they are
// returned the merge has already advanced the current branch.
func Merge(repo *core.Repository, ix *staging.Index, givenBranch string) error {
	if ix.HasChanges() {
		return core.ErrUncommittedChanges
	}
	currentBranch, err := refs.ReadHead(repo)
	if err != nil {
		return err
	}
	if givenBranch == currentBranch {
		return core.ErrMergeWithSelf
	}
	if !refs.BranchExists(repo, givenBranch) {
		return core.ErrNoSuchBranch
	}

	curHash, err := refs.ReadBranch(repo, currentBranch)
	if err != nil {
		return err
	}
	givenHash, err := refs.ReadBranch(repo, givenBranch)
	if err != nil {
		return err
	}
	curCommit, err := objects.GetCommit(repo, curHash)
	if err != nil {
		return err
	}
	givenCommit, err := objects.GetCommit(repo, givenHash)
	if err != nil {
		return err
	}
	if err := worktree.CheckUntracked(repo, curCommit, givenCommit); err != nil {
		return err
	}

	split, err := dag.LCA(repo, curHash, givenHash)
	if err != nil {
		return err
	}
	if split == givenHash {
		return core.ErrGivenIsAncestor
	}
	if split == curHash {
		// Fast-forward: project the given snapshot and advance the current
		// branch to the given head; HEAD stays on the current branch.
		if err := worktree.Reconcile(repo, curCommit, givenCommit); err != nil {
			return err
		}
		if err := refs.SetBranch(repo, currentBranch, givenHash); err != nil {
			return err
		}
		ix.Clear()
		if err := ix.Write(repo); err != nil {
			return err
		}
		return core.ErrFastForwarded
	}

	splitCommit, err := objects.GetCommit(repo, split)
	if err != nil {
		return err
	}

	conflict, err := resolveFiles(repo, ix, splitCommit, curCommit, givenCommit)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Merged %s into %s.", givenBranch, currentBranch)
	blobMap := ix.ApplyTo(curCommit.BlobMap)
	mergeCommit := objects.NewMergeCommit(message, curHash, givenHash, blobMap)
	hash, err := objects.PutCommit(repo, mergeCommit)
	if err != nil {
		return err
	}
	if err := refs.SetBranch(repo, currentBranch, hash); err != nil {
		return err
	}
	ix.Clear()
	if err := ix.Write(repo); err != nil {
		return err
	}

	if conflict {
		return core.ErrMergeConflict
	}
	return nil
}

// resolveFiles applies the per-file merge rules over the union of files
// known to the split, current, and given snapshots. For each file the first
// matching rule wins; absence is a distinct value when comparing the three
// hashes. Returns whether any conflict was emitted.
func resolveFiles(repo *core.Repository, ix *staging.Index, splitCommit, curCommit, givenCommit *objects.Commit) (bool, error) {
	union := make(map[string]bool)
	for name := range splitCommit.BlobMap {
		union[name] = true
	}
	for name := range curCommit.BlobMap {
		union[name] = true
	}
	for name := range givenCommit.BlobMap {
		union[name] = true
	}
	names := make([]string, 0, len(union))
	for name := range union {
		names = append(names, name)
	}
	sort.Strings(names)

	conflict := false
	for _, name := range names {
		s := splitCommit.BlobMap[name]
		c := curCommit.BlobMap[name]
		g := givenCommit.BlobMap[name]

		switch {
		case s != "" && c != "" && g != "" && s == c && s != g:
			// Modified only in given: take given's version.
			if err := worktree.RestoreAndStage(repo, ix, givenCommit, name); err != nil {
				return false, err
			}
		case s != c && s != g && c != g:
			if err := emitConflict(repo, ix, name, c, g); err != nil {
				return false, err
			}
			conflict = true
		case s == "" && g == "":
			// Only current knows the file: keep it as is.
		case s == "" && g != "":
			// Created only in given: take it.
			if err := worktree.RestoreAndStage(repo, ix, givenCommit, name); err != nil {
				return false, err
			}
		case s == c && g == "":
			// Unmodified in current, deleted in given: drop it.
			if err := core.RemovePlainFile(repo.WorkPath(name)); err != nil {
				return false, err
			}
			ix.StageRemoval(name, c)
		}
	}
	return conflict, nil
}

// emitConflict writes the conflict envelope for name into the working
// directory and stages it for addition.
func emitConflict(repo *core.Repository, ix *staging.Index, name, curHash, givenHash string) error {
	var curContent, givenContent []byte
	var err error
	if curHash != "" {
		curContent, err = objects.GetBlob(repo, curHash)
		if err != nil {
			return err
		}
	}
	if givenHash != "" {
		givenContent, err = objects.GetBlob(repo, givenHash)
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	buf.WriteString(conflictStart)
	buf.Write(curContent)
	buf.WriteString(conflictSeparator)
	buf.Write(givenContent)
	buf.WriteString(conflictEnd)

	if err := core.WriteFileContent(repo.WorkPath(name), buf.Bytes()); err != nil {
		return err
	}
	blobHash, err := objects.PutBlob(repo, buf.Bytes())
	if err != nil {
		return err
	}
	ix.StageAddition(name, blobHash)
	return nil
}

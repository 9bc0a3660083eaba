package staging

import (
	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
)

// Stage stages a working-directory file for the next commit.
//
// A file staged for removal is simply unmarked. Otherwise the file must
// exist in the working directory; its content is stored as a blob, and the
// addition is recorded unless the head commit already tracks the file at
// exactly that content, in which case any stale staged addition is dropped.
func Stage(repo *core.Repository, ix *Index, head *objects.Commit, name string) error {
	if _, ok := ix.Removal(name); ok {
		ix.DropRemoval(name)
		return nil
	}

	path := repo.WorkPath(name)
	if !core.IsPlainFile(path) {
		return core.ErrFileDoesNotExist
	}
	content, err := core.ReadFileContent(path)
	if err != nil {
		return err
	}
	hash, err := objects.PutBlob(repo, content)
	if err != nil {
		return err
	}

	if tracked, ok := head.BlobMap[name]; ok && tracked == hash {
		ix.DropAddition(name)
		return nil
	}
	ix.StageAddition(name, hash)
	return nil
}

// UnstageOrMarkRemoved implements the rm command: unstage the file if it is
// staged for addition, and if the head commit tracks it, delete it from the
// working directory and stage it for removal. A file that is neither staged
// for addition nor tracked, or whose removal is already staged, is an error.
func UnstageOrMarkRemoved(repo *core.Repository, ix *Index, head *objects.Commit, name string) error {
	tracked, isTracked := head.BlobMap[name]
	_, isStaged := ix.Addition(name)
	_, alreadyRemoved := ix.Removal(name)
	if (!isTracked || alreadyRemoved) && !isStaged {
		return core.ErrNoReasonToRemove
	}

	ix.DropAddition(name)

	if isTracked {
		if err := core.RemovePlainFile(repo.WorkPath(name)); err != nil {
			return err
		}
		ix.StageRemoval(name, tracked)
	}
	return nil
}

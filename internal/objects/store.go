package objects

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/utils"
)

// PutCommit serializes the commit, hashes it, and writes it to the commit
// store. The commit's Hash field is set as a side effect. Storing the same
// commit object twice yields the same hash and is idempotent.
func PutCommit(repo *core.Repository, commit *Commit) (string, error) {
	data, err := commit.serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize commit: %w", err)
	}
	hash := utils.HashBytes(data)
	commit.Hash = hash

	objectPath := commitPath(repo, hash)
	if core.FileExists(objectPath) {
		return hash, nil
	}

	// Write through a temporary file so a commit object is never observed
	// half-written.
	tempPath := objectPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write commit file: %w", err)
	}
	if err := os.Rename(tempPath, objectPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to finalize commit file: %w", err)
	}
	return hash, nil
}

// GetCommit reads a commit from the store by its full hash. A missing
// commit reports core.ErrNoSuchCommitID.
func GetCommit(repo *core.Repository, hash string) (*Commit, error) {
	content, err := os.ReadFile(commitPath(repo, hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrNoSuchCommitID
		}
		return nil, fmt.Errorf("failed to read commit file: %w", err)
	}
	commit, err := deserializeCommit(content)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize commit %s: %w", hash, err)
	}
	commit.Hash = hash
	return commit, nil
}

// ListCommitHashes returns every commit hash in the store in
// filesystem-listing order.
func ListCommitHashes(repo *core.Repository) ([]string, error) {
	entries, err := os.ReadDir(repo.CommitsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to list commit store: %w", err)
	}
	var hashes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		hashes = append(hashes, entry.Name())
	}
	sort.Strings(hashes)
	return hashes, nil
}

// ResolvePrefix resolves an abbreviated commit id to a full hash. Matching
// is by substring containment, scanning hashes in sorted order so the result
// is deterministic. A full hash resolves without scanning.
func ResolvePrefix(repo *core.Repository, id string) (string, error) {
	if id == "" {
		return "", core.ErrNoSuchCommitID
	}
	if core.FileExists(commitPath(repo, id)) {
		return id, nil
	}
	hashes, err := ListCommitHashes(repo)
	if err != nil {
		return "", err
	}
	for _, hash := range hashes {
		if strings.Contains(hash, id) {
			return hash, nil
		}
	}
	return "", core.ErrNoSuchCommitID
}

// commitPath returns the path to a serialized commit.
func commitPath(repo *core.Repository, hash string) string {
	return filepath.Join(repo.CommitsDir(), hash)
}

package objects

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/utils"
)

// PutBlob stores content in the object store and returns its hash. Blob
// identity is the SHA-1 of the raw bytes; writing the same content twice is
// idempotent.
func PutBlob(repo *core.Repository, content []byte) (string, error) {
	hash := utils.HashBytes(content)
	objectPath := blobPath(repo, hash)
	if core.FileExists(objectPath) {
		return hash, nil
	}
	if err := os.WriteFile(objectPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}
	return hash, nil
}

// GetBlob retrieves a blob's bytes by its hash.
func GetBlob(repo *core.Repository, hash string) ([]byte, error) {
	content, err := os.ReadFile(blobPath(repo, hash))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob file: %w", err)
	}
	return content, nil
}

// blobPath returns the path to a blob object.
func blobPath(repo *core.Repository, hash string) string {
	return filepath.Join(repo.ObjectsDir(), hash)
}

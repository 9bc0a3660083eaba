package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// GitletDirName is the repository metadata directory created by init.
const GitletDirName = ".gitlet"

// Repository is the process-wide context for a single command: the working
// directory root and, derived from it, every path inside .gitlet. It is
// resolved once per command and passed explicitly.
type Repository struct {
	Root string
}

// GitletDir returns the path of the .gitlet directory.
func (r *Repository) GitletDir() string {
	return filepath.Join(r.Root, GitletDirName)
}

// ObjectsDir returns the directory holding blob objects.
func (r *Repository) ObjectsDir() string {
	return filepath.Join(r.GitletDir(), "objects")
}

// CommitsDir returns the directory holding serialized commits.
func (r *Repository) CommitsDir() string {
	return filepath.Join(r.ObjectsDir(), "commits")
}

// HeadsDir returns the directory holding branch pointer files.
func (r *Repository) HeadsDir() string {
	return filepath.Join(r.GitletDir(), "refs", "heads")
}

// HeadFile returns the path of the HEAD file.
func (r *Repository) HeadFile() string {
	return filepath.Join(r.GitletDir(), "HEAD")
}

// IndexFile returns the path of the staging index file.
func (r *Repository) IndexFile() string {
	return filepath.Join(r.GitletDir(), "index")
}

// WorkPath returns the working-directory path for a tracked filename.
// Tracked filenames are flat, so this is a single join.
func (r *Repository) WorkPath(name string) string {
	return filepath.Join(r.Root, name)
}

// FindRepository locates the repository root by searching for the .gitlet
// directory in the current and parent directories.
func FindRepository() (*Repository, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	for {
		if FileExists(filepath.Join(dir, GitletDirName)) {
			return &Repository{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotInitialized
		}
		dir = parent
	}
}

// InitRepository creates the on-disk layout for a new repository rooted at
// dir. The caller is responsible for writing the initial commit and refs.
func InitRepository(dir string) (*Repository, error) {
	repo := &Repository{Root: dir}
	if FileExists(repo.GitletDir()) {
		return nil, ErrAlreadyInitialized
	}
	subDirs := []string{
		repo.ObjectsDir(),
		repo.CommitsDir(),
		repo.HeadsDir(),
	}
	for _, subDir := range subDirs {
		if err := os.MkdirAll(subDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", subDir, err)
		}
	}
	return repo, nil
}

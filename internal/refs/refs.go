// Package refs manages branch pointers and the HEAD reference. A branch is
// a file under refs/heads whose contents are a commit hash; HEAD is a
// symbolic reference naming the active branch. There is no detached state.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitlet-vcs/gitlet/core"
)

const headRefPrefix = "ref: refs/heads/"

// BranchExists reports whether the named branch pointer is present.
func BranchExists(repo *core.Repository, name string) bool {
	return core.FileExists(branchPath(repo, name))
}

// CreateBranch creates a new branch pointing at commitHash.
func CreateBranch(repo *core.Repository, name, commitHash string) error {
	if BranchExists(repo, name) {
		return core.ErrBranchExists
	}
	return SetBranch(repo, name, commitHash)
}

// SetBranch points an existing or new branch at commitHash.
func SetBranch(repo *core.Repository, name, commitHash string) error {
	if err := os.WriteFile(branchPath(repo, name), []byte(commitHash+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write branch file: %w", err)
	}
	return nil
}

// ReadBranch returns the commit hash a branch points at.
func ReadBranch(repo *core.Repository, name string) (string, error) {
	content, err := os.ReadFile(branchPath(repo, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", core.ErrNoSuchBranch
		}
		return "", fmt.Errorf("failed to read branch file: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}

// DeleteBranch removes a branch pointer. The active branch cannot be
// removed.
func DeleteBranch(repo *core.Repository, name string) error {
	if !BranchExists(repo, name) {
		return core.ErrNoSuchBranch
	}
	current, err := ReadHead(repo)
	if err != nil {
		return err
	}
	if name == current {
		return core.ErrCannotRemoveCurrent
	}
	if err := os.Remove(branchPath(repo, name)); err != nil {
		return fmt.Errorf("failed to delete branch file: %w", err)
	}
	return nil
}

// ListBranches returns all branch names in sorted order.
func ListBranches(repo *core.Repository) ([]string, error) {
	entries, err := os.ReadDir(repo.HeadsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadHead returns the name of the active branch.
func ReadHead(repo *core.Repository) (string, error) {
	content, err := os.ReadFile(repo.HeadFile())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	headStr := strings.TrimSpace(string(content))
	if !strings.HasPrefix(headStr, headRefPrefix) {
		return "", fmt.Errorf("malformed HEAD: %q", headStr)
	}
	return strings.TrimPrefix(headStr, headRefPrefix), nil
}

// SetHead makes branchName the active branch.
func SetHead(repo *core.Repository, branchName string) error {
	content := headRefPrefix + branchName + "\n"
	if err := os.WriteFile(repo.HeadFile(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}
	return nil
}

// HeadCommitHash returns the hash of the active branch's head commit.
func HeadCommitHash(repo *core.Repository) (string, error) {
	branch, err := ReadHead(repo)
	if err != nil {
		return "", err
	}
	return ReadBranch(repo, branch)
}

func branchPath(repo *core.Repository, name string) string {
	return filepath.Join(repo.HeadsDir(), name)
}

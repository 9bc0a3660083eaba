package core

import (
	"fmt"
	"os"
	"sort"
)

// FileExists checks if a file or directory exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsPlainFile reports whether path exists and is a regular file.
func IsPlainFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFileContent reads the content of a file.
func ReadFileContent(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// WriteFileContent writes content to a file, creating or truncating it.
func WriteFileContent(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// EnsureDirExists creates a directory if it doesn't exist.
func EnsureDirExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", path, err)
	}
	return nil
}

// RemovePlainFile deletes path only when it exists and is a regular file.
// Anything else is left untouched.
func RemovePlainFile(path string) error {
	if !IsPlainFile(path) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}

// ListWorkingFiles returns the names of the regular files at the top level
// of the working directory, sorted, excluding the .gitlet directory.
// Tracked filenames are flat, so nothing below the top level is scanned.
func ListWorkingFiles(repo *Repository) ([]string, error) {
	entries, err := os.ReadDir(repo.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to list working directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

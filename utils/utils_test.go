package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHashBytes(t *testing.T) {
	// SHA-1 of the empty input and of "hello\n" are well-known vectors.
	if got := HashBytes(nil); got != "da39a3ee5e6b4b0d3255bfef95601890afd80709" {
		t.Errorf("HashBytes(nil) = %s", got)
	}
	if got := HashBytes([]byte("hello\n")); got != "f572d396fae9206628714fb2ce00f72e94f2258f" {
		t.Errorf("HashBytes(hello) = %s", got)
	}
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	hash, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if want := HashBytes([]byte("hello\n")); hash != want {
		t.Errorf("HashFile = %s, want %s", hash, want)
	}

	if _, err := HashFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatTimestamp(t *testing.T) {
	// The day of month renders without zero padding; the epoch falls on
	// Jan 1 UTC, Dec 31 in zones west of it.
	formatted := FormatTimestamp(0)
	if !strings.Contains(formatted, "Jan 1 ") && !strings.Contains(formatted, "Dec 31 ") {
		t.Errorf("FormatTimestamp(0) = %q, expected unpadded day of month", formatted)
	}
	if !strings.Contains(formatted, "1970") && !strings.Contains(formatted, "1969") {
		t.Errorf("FormatTimestamp(0) = %q, expected epoch year", formatted)
	}
}

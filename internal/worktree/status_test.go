package worktree

import (
	"os"
	"reflect"
	"testing"

	"github.com/gitlet-vcs/gitlet/internal/staging"
	"github.com/gitlet-vcs/gitlet/utils"
)

func TestScanStatusUntracked(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{})
	writeWorkFile(t, repo, "new.txt", "fresh\n")

	status, err := ScanStatus(repo, staging.NewIndex(), head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"new.txt"}; !reflect.DeepEqual(status.Untracked, want) {
		t.Errorf("Untracked = %v, want %v", status.Untracked, want)
	}
	if len(status.Modifications) != 0 {
		t.Errorf("Modifications = %v", status.Modifications)
	}
}

func TestScanStatusStagedAndRemoved(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{"gone.txt": "bye\n"})
	writeWorkFile(t, repo, "new.txt", "fresh\n")

	ix := staging.NewIndex()
	ix.StageAddition("new.txt", utils.HashBytes([]byte("fresh\n")))
	ix.StageRemoval("gone.txt", head.BlobMap["gone.txt"])

	status, err := ScanStatus(repo, ix, head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"new.txt"}; !reflect.DeepEqual(status.Staged, want) {
		t.Errorf("Staged = %v, want %v", status.Staged, want)
	}
	if want := []string{"gone.txt"}; !reflect.DeepEqual(status.Removed, want) {
		t.Errorf("Removed = %v, want %v", status.Removed, want)
	}
	if len(status.Untracked) != 0 {
		t.Errorf("Untracked = %v", status.Untracked)
	}
	if len(status.Modifications) != 0 {
		t.Errorf("Modifications = %v", status.Modifications)
	}
}

func TestScanStatusModified(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{"a.txt": "hello\n"})
	writeWorkFile(t, repo, "a.txt", "edited\n")

	status, err := ScanStatus(repo, staging.NewIndex(), head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"a.txt (modified)"}; !reflect.DeepEqual(status.Modifications, want) {
		t.Errorf("Modifications = %v, want %v", status.Modifications, want)
	}
}

func TestScanStatusRestagedAtCurrentContent(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{"a.txt": "hello\n"})
	writeWorkFile(t, repo, "a.txt", "edited\n")

	// The edit is staged at exactly the working content: not modified.
	ix := staging.NewIndex()
	ix.StageAddition("a.txt", utils.HashBytes([]byte("edited\n")))

	status, err := ScanStatus(repo, ix, head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if len(status.Modifications) != 0 {
		t.Errorf("Modifications = %v, want none", status.Modifications)
	}
}

func TestScanStatusStagedThenEdited(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{})
	writeWorkFile(t, repo, "a.txt", "later\n")

	// Staged at one content, then edited to another.
	ix := staging.NewIndex()
	ix.StageAddition("a.txt", utils.HashBytes([]byte("earlier\n")))

	status, err := ScanStatus(repo, ix, head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"a.txt (modified)"}; !reflect.DeepEqual(status.Modifications, want) {
		t.Errorf("Modifications = %v, want %v", status.Modifications, want)
	}
}

func TestScanStatusDeleted(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{"a.txt": "hello\n", "b.txt": "B\n"})

	// a.txt tracked and missing: deleted. b.txt staged for removal and
	// missing: not listed.
	ix := staging.NewIndex()
	ix.StageRemoval("b.txt", head.BlobMap["b.txt"])

	status, err := ScanStatus(repo, ix, head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"a.txt (deleted)"}; !reflect.DeepEqual(status.Modifications, want) {
		t.Errorf("Modifications = %v, want %v", status.Modifications, want)
	}
}

func TestScanStatusStagedThenDeleted(t *testing.T) {
	repo := newTestRepo(t)
	head := snapshot(t, repo, map[string]string{})
	writeWorkFile(t, repo, "a.txt", "hello\n")
	ix := staging.NewIndex()
	ix.StageAddition("a.txt", utils.HashBytes([]byte("hello\n")))
	if err := os.Remove(repo.WorkPath("a.txt")); err != nil {
		t.Fatal(err)
	}

	status, err := ScanStatus(repo, ix, head)
	if err != nil {
		t.Fatalf("ScanStatus failed: %v", err)
	}
	if want := []string{"a.txt (deleted)"}; !reflect.DeepEqual(status.Modifications, want) {
		t.Errorf("Modifications = %v, want %v", status.Modifications, want)
	}
}

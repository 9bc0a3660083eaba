package worktree

import (
	"errors"
	"os"
	"testing"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/staging"
)

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	repo, err := core.InitRepository(t.TempDir())
	if err != nil {
		t.Fatalf("InitRepository failed: %v", err)
	}
	return repo
}

func writeWorkFile(t *testing.T, repo *core.Repository, name, content string) {
	t.Helper()
	if err := os.WriteFile(repo.WorkPath(name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readWorkFile(t *testing.T, repo *core.Repository, name string) string {
	t.Helper()
	content, err := os.ReadFile(repo.WorkPath(name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(content)
}

// snapshot stores each content as a blob and returns a commit tracking them.
func snapshot(t *testing.T, repo *core.Repository, files map[string]string) *objects.Commit {
	t.Helper()
	blobMap := make(map[string]string, len(files))
	for name, content := range files {
		hash, err := objects.PutBlob(repo, []byte(content))
		if err != nil {
			t.Fatal(err)
		}
		blobMap[name] = hash
	}
	return &objects.Commit{Message: "snapshot", BlobMap: blobMap}
}

func TestReconcileRestoresAndDeletes(t *testing.T) {
	repo := newTestRepo(t)
	old := snapshot(t, repo, map[string]string{"a.txt": "hello\n", "b.txt": "B\n"})
	writeWorkFile(t, repo, "a.txt", "hello\n")
	writeWorkFile(t, repo, "b.txt", "B\n")

	target := snapshot(t, repo, map[string]string{"a.txt": "hello2\n"})
	if err := Reconcile(repo, old, target); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if got := readWorkFile(t, repo, "a.txt"); got != "hello2\n" {
		t.Errorf("a.txt = %q, want hello2", got)
	}
	if core.IsPlainFile(repo.WorkPath("b.txt")) {
		t.Error("de-tracked b.txt should be deleted")
	}
}

func TestReconcileRefusesToClobberUntracked(t *testing.T) {
	repo := newTestRepo(t)
	old := snapshot(t, repo, map[string]string{})
	target := snapshot(t, repo, map[string]string{"a.txt": "from target\n"})

	// a.txt exists but the source commit does not track it.
	writeWorkFile(t, repo, "a.txt", "precious\n")

	err := Reconcile(repo, old, target)
	if !errors.Is(err, core.ErrUntrackedInTheWay) {
		t.Fatalf("expected ErrUntrackedInTheWay, got %v", err)
	}
	// The check runs before any mutation.
	if got := readWorkFile(t, repo, "a.txt"); got != "precious\n" {
		t.Errorf("untracked file was modified: %q", got)
	}
}

func TestReconcileLeavesUntrackedAlone(t *testing.T) {
	repo := newTestRepo(t)
	old := snapshot(t, repo, map[string]string{"a.txt": "hello\n"})
	writeWorkFile(t, repo, "a.txt", "hello\n")
	writeWorkFile(t, repo, "notes.txt", "keep me\n")

	target := snapshot(t, repo, map[string]string{"a.txt": "hello2\n"})
	if err := Reconcile(repo, old, target); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got := readWorkFile(t, repo, "notes.txt"); got != "keep me\n" {
		t.Errorf("untracked notes.txt was touched: %q", got)
	}
}

func TestRestoreFile(t *testing.T) {
	repo := newTestRepo(t)
	commit := snapshot(t, repo, map[string]string{"a.txt": "hello\n"})

	if err := RestoreFile(repo, commit, "a.txt"); err != nil {
		t.Fatalf("RestoreFile failed: %v", err)
	}
	if got := readWorkFile(t, repo, "a.txt"); got != "hello\n" {
		t.Errorf("a.txt = %q", got)
	}

	if err := RestoreFile(repo, commit, "nope.txt"); !errors.Is(err, core.ErrFileNotInCommit) {
		t.Errorf("expected ErrFileNotInCommit, got %v", err)
	}
}

func TestRestoreAndStage(t *testing.T) {
	repo := newTestRepo(t)
	commit := snapshot(t, repo, map[string]string{"a.txt": "hello\n"})
	ix := staging.NewIndex()

	if err := RestoreAndStage(repo, ix, commit, "a.txt"); err != nil {
		t.Fatalf("RestoreAndStage failed: %v", err)
	}
	if hash, ok := ix.Addition("a.txt"); !ok || hash != commit.BlobMap["a.txt"] {
		t.Errorf("Addition(a.txt) = %s, %v", hash, ok)
	}
}

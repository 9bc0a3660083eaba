package refs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gitlet-vcs/gitlet/core"
)

const someHash = "a0da1ea5a15ab613bf9961fd86f010cf74c7ee48"

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	repo, err := core.InitRepository(t.TempDir())
	if err != nil {
		t.Fatalf("InitRepository failed: %v", err)
	}
	return repo
}

func TestCreateReadBranch(t *testing.T) {
	repo := newTestRepo(t)

	if err := CreateBranch(repo, "main", someHash); err != nil {
		t.Fatalf("CreateBranch failed: %v", err)
	}
	got, err := ReadBranch(repo, "main")
	if err != nil {
		t.Fatalf("ReadBranch failed: %v", err)
	}
	if got != someHash {
		t.Errorf("ReadBranch = %s, want %s", got, someHash)
	}

	if err := CreateBranch(repo, "main", someHash); !errors.Is(err, core.ErrBranchExists) {
		t.Errorf("expected ErrBranchExists, got %v", err)
	}
}

func TestReadBranchMissing(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := ReadBranch(repo, "nope"); !errors.Is(err, core.ErrNoSuchBranch) {
		t.Errorf("expected ErrNoSuchBranch, got %v", err)
	}
}

func TestHeadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	if err := CreateBranch(repo, "main", someHash); err != nil {
		t.Fatal(err)
	}
	if err := SetHead(repo, "main"); err != nil {
		t.Fatalf("SetHead failed: %v", err)
	}

	branch, err := ReadHead(repo)
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	if branch != "main" {
		t.Errorf("ReadHead = %s, want main", branch)
	}

	hash, err := HeadCommitHash(repo)
	if err != nil {
		t.Fatalf("HeadCommitHash failed: %v", err)
	}
	if hash != someHash {
		t.Errorf("HeadCommitHash = %s, want %s", hash, someHash)
	}
}

func TestDeleteBranch(t *testing.T) {
	repo := newTestRepo(t)
	if err := CreateBranch(repo, "main", someHash); err != nil {
		t.Fatal(err)
	}
	if err := SetHead(repo, "main"); err != nil {
		t.Fatal(err)
	}
	if err := CreateBranch(repo, "dev", someHash); err != nil {
		t.Fatal(err)
	}

	if err := DeleteBranch(repo, "nope"); !errors.Is(err, core.ErrNoSuchBranch) {
		t.Errorf("expected ErrNoSuchBranch, got %v", err)
	}
	if err := DeleteBranch(repo, "main"); !errors.Is(err, core.ErrCannotRemoveCurrent) {
		t.Errorf("expected ErrCannotRemoveCurrent, got %v", err)
	}
	if err := DeleteBranch(repo, "dev"); err != nil {
		t.Fatalf("DeleteBranch failed: %v", err)
	}
	if BranchExists(repo, "dev") {
		t.Error("dev still exists after deletion")
	}
}

func TestListBranchesSorted(t *testing.T) {
	repo := newTestRepo(t)
	for _, name := range []string{"main", "dev", "feature"} {
		if err := CreateBranch(repo, name, someHash); err != nil {
			t.Fatal(err)
		}
	}
	names, err := ListBranches(repo)
	if err != nil {
		t.Fatalf("ListBranches failed: %v", err)
	}
	if want := []string{"dev", "feature", "main"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ListBranches = %v, want %v", names, want)
	}
}

package core

import "errors"

// Command-facing errors. Each Error() string is the exact single line the
// command layer prints to standard output; the process still exits 0.
var (
	ErrAlreadyInitialized  = errors.New("A Gitlet version-control system already exists in the current directory.")
	ErrNotInitialized      = errors.New("Not in an initialized Gitlet directory.")
	ErrNoCommand           = errors.New("Please enter a command.")
	ErrNoSuchCommand       = errors.New("No command with that name exists.")
	ErrIncorrectOperands   = errors.New("Incorrect operands.")
	ErrFileDoesNotExist    = errors.New("File does not exist.")
	ErrNoReasonToRemove    = errors.New("No reason to remove the file.")
	ErrNoChangesAdded      = errors.New("No changes added to the commit.")
	ErrEmptyMessage        = errors.New("Please enter a commit message.")
	ErrBranchExists        = errors.New("A branch with that name already exists.")
	ErrNoSuchBranch        = errors.New("A branch with that name does not exist.")
	ErrNoSuchBranchSwitch  = errors.New("No such branch exists.")
	ErrCannotRemoveCurrent = errors.New("Cannot remove the current branch.")
	ErrAlreadyOnBranch     = errors.New("No need to switch to the current branch.")
	ErrNoSuchCommitID      = errors.New("No commit with that id exists.")
	ErrFileNotInCommit     = errors.New("File does not exist in that commit.")
	ErrNoCommitWithMessage = errors.New("Found no commit with that message.")
	ErrUntrackedInTheWay   = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrUncommittedChanges  = errors.New("You have uncommitted changes.")
	ErrMergeWithSelf       = errors.New("Cannot merge a branch with itself.")
	ErrGivenIsAncestor     = errors.New("Given branch is an ancestor of the current branch.")
	ErrFastForwarded       = errors.New("Current branch fast-forwarded.")
	ErrMergeConflict       = errors.New("Encountered a merge conflict.")
)

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitlet-vcs/gitlet/core"
	"github.com/gitlet-vcs/gitlet/internal/objects"
	"github.com/gitlet-vcs/gitlet/internal/refs"
)

var initCmd = &cobra.Command{
	Use:                "init",
	Short:              "Initialize a new Gitlet repository in the current directory",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return core.ErrIncorrectOperands
		}
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		return initRepository(dir)
	},
}

// initRepository creates the store layout, the initial commit, and the main
// branch, and points HEAD at main.
func initRepository(dir string) error {
	repo, err := core.InitRepository(dir)
	if err != nil {
		return err
	}

	initial := objects.NewCommit("initial commit", "", make(map[string]string))
	hash, err := objects.PutCommit(repo, initial)
	if err != nil {
		return err
	}
	if err := refs.CreateBranch(repo, "main", hash); err != nil {
		return err
	}
	return refs.SetHead(repo, "main")
}

func init() {
	rootCmd.AddCommand(initCmd)
}

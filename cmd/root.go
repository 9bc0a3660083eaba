package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitlet-vcs/gitlet/core"
)

var rootCmd = &cobra.Command{
	Use:   "gitlet",
	Short: "Gitlet is a minimal, local-only, content-addressed version-control system",
	Long: `Gitlet is a minimal, local-only, content-addressed version-control system.
It supports staging, committing, branching, restoring files, logging,
and three-way merging with conflict marking.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute dispatches the command line. Every error is a single line on
// standard output and the process exits 0: an empty argv, an unknown
// command, and command failures all follow the same contract.
func Execute() {
	if len(os.Args) < 2 {
		fmt.Println(core.ErrNoCommand)
		return
	}
	if !commandExists(os.Args[1]) {
		fmt.Println(core.ErrNoSuchCommand)
		return
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}

func commandExists(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

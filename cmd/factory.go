package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitlet-vcs/gitlet/core"
)

// handlerFunc is the signature of all repository-bound command handlers.
type handlerFunc func(repo *core.Repository, args []string) error

// newRepoCommand creates a command that requires an initialized repository.
// Flag parsing is disabled so operands such as "--" or messages starting
// with a dash reach the handler verbatim. A negative operand count skips
// the arity check, leaving it to the handler.
func newRepoCommand(use, short string, operands int, handler handlerFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if operands >= 0 && len(args) != operands {
				return core.ErrIncorrectOperands
			}
			repo, err := core.FindRepository()
			if err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}

// Package cli defines the command line surface: a one-shot batch run and
// a long-running server with the REST API and the scheduler.
package cli

import (
	"logistic/cmd"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand(root *cmd.CompositionRoot) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "logistic",
		Short:         "Order notifier for closed logistic records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newNotifyCommand(root))
	rootCmd.AddCommand(newServeCommand(root))
	return rootCmd
}

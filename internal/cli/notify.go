package cli

import (
	"fmt"
	"strconv"

	"logistic/cmd"
	"logistic/internal/core/application/targets"
	"logistic/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

func newNotifyCommand(root *cmd.CompositionRoot) *cobra.Command {
	return &cobra.Command{
		Use:   "notify <target> [limit]",
		Short: "Run one notification batch across every tenant",
		Long: "Runs the named notification target once for every configured tenant,\n" +
			"processing at most the given number of rows per tenant " +
			fmt.Sprintf("(default %d).", targets.DefaultBatchLimit),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			limit := targets.DefaultBatchLimit
			if len(args) == 2 {
				parsed, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid limit %q: %w", args[1], err)
				}
				limit = parsed
			}

			handler, err := root.CreateRunNotificationBatchCommandHandler(cobraCmd.OutOrStdout())
			if err != nil {
				return err
			}

			batchCmd, err := commands.NewRunNotificationBatchCommand(args[0], limit)
			if err != nil {
				return err
			}

			return handler.Handle(cobraCmd.Context(), batchCmd)
		},
	}
}

package root

import (
	"context"

	"github.com/spf13/cobra"

	"blklauncher/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			games, err := loadGames(ctx, svc)
			if err != nil {
				return err
			}
			return tui.RunBoard(ctx, svc, games, cmd.OutOrStdout())
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's daily quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			dc, err := svc.EnsureDailyChallenges(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Daily Quests — "+dc.Date))
			for _, ch := range dc.Challenges {
				mark := ui.Muted.Render("[ ]")
				if ch.Done {
					mark = ui.Good.Render("[✓]")
				}
				fmt.Fprintf(out, "%s %s\n", mark, ch.Text)
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range all {
				if a.Earned {
					fmt.Fprintf(out, "%s %s — %s\n", ui.Good.Render("✓"), ui.Gold.Render(a.Name), a.Description)
				} else {
					fmt.Fprintf(out, "%s %s — %s\n", ui.Muted.Render("·"), a.Name, ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}

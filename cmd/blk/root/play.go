package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blklauncher/internal/catalog"
	"blklauncher/internal/engine"
	"blklauncher/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "play <game-id>",
		Short: "Record a play session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("game id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireUnlocked(ctx, svc); err != nil {
				return err
			}
			if minutes < 0 {
				return errors.New("minutes must not be negative")
			}

			games, err := loadGames(ctx, svc)
			if err != nil {
				return err
			}
			g, ok := catalog.Find(games, args[0])
			if !ok {
				// Unknown ids are still playable; the ledger does not
				// require a catalog entry.
				g = catalog.Game{ID: args[0], Title: args[0]}
			}

			res, err := svc.Play(ctx, g, time.Duration(minutes)*time.Minute)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Played %s: +%d XP (level %d, %d plays)\n",
				ui.IconGame, ui.Key.Render(g.Title), engine.PlayXP, res.XP.Level, res.Stat.Plays)
			for _, rule := range res.Unlocked {
				fmt.Fprintf(out, "%s %s — %s\n", ui.IconTrophy, ui.Gold.Render(rule.Name), rule.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length in minutes")

	return cmd
}

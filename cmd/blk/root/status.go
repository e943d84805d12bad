package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/engine"
	"blklauncher/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active profile's progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.ActiveProfile(ctx)
			if err != nil {
				return err
			}
			required := engine.XPRequiredForLevel(p.Level)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGame, "BLK Launcher"))
			fmt.Fprintln(out, ui.LabelValue("Profile", fmt.Sprintf("%s (%s)", p.Name, p.ID)))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s", p.Level, ui.Gold.Render(p.Title))))
			fmt.Fprintf(out, "%s %s %d/%d\n", ui.Key.Render("XP:"), ui.XPBar(p.XP, required, 20), p.XP, required)
			fmt.Fprintln(out, "")

			unlocked, err := svc.UnlockedAchievements(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d unlocked", len(unlocked))))

			dc, err := svc.EnsureDailyChallenges(ctx)
			if err != nil {
				return err
			}
			done := 0
			for _, ch := range dc.Challenges {
				if ch.Done {
					done++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Daily quests", fmt.Sprintf("%d/%d done", done, len(dc.Challenges))))

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			plays := 0
			for _, st := range stats {
				plays += st.Plays
			}
			fmt.Fprintln(out, ui.LabelValue("Plays", fmt.Sprintf("%d across %d games", plays, len(stats))))

			ld, err := svc.Lockdown(ctx)
			if err != nil {
				return err
			}
			if ld.Active {
				line := ui.Bad.Render(ui.IconLock + " Lockdown active")
				if !ld.Until.IsZero() {
					line += " " + ui.Warn.Render(ld.Countdown())
				}
				fmt.Fprintln(out, line)
			} else {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconUnlock+" No lockdown."))
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage launcher profiles",
	}

	cmd.AddCommand(newProfileListCmd(), newProfileCreateCmd(), newProfileUseCmd())
	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			active, err := svc.ActiveProfile(ctx)
			if err != nil {
				return err
			}
			profiles, err := svc.Profiles(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range profiles {
				mark := "  "
				if p.ID == active.ID {
					mark = ui.Good.Render("* ")
				}
				fmt.Fprintf(out, "%s%s %s %s\n", mark, ui.Key.Render(p.ID), p.Name,
					ui.Muted.Render(fmt.Sprintf("(level %d, %s)", p.Level, p.Title)))
			}
			return nil
		},
	}
}

func newProfileCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a profile and switch to it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile name is required")
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
			p, err := svc.CreateProfile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s (%s) and made it active.\n", ui.IconSparkle, ui.Key.Render(p.Name), p.ID)
			return nil
		},
	}
}

func newProfileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Switch the active profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile id is required")
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
			if err := svc.SetActiveProfile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Switched to %s.\n", ui.IconSparkle, ui.Key.Render(args[0]))
			return nil
		},
	}
}

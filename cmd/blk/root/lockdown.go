package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/ui"
)

func newLockdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lockdown",
		Short: "Inspect or control the admin lockdown",
	}

	cmd.AddCommand(newLockdownStatusCmd(), newLockdownArmCmd(), newLockdownClearCmd())
	return cmd
}

func newLockdownStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the lockdown state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Lockdown(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !st.Active {
				fmt.Fprintln(out, ui.Good.Render(ui.IconUnlock+" Not locked."))
				return nil
			}
			fmt.Fprintln(out, ui.Bad.Render(ui.IconLock+" Lockdown active"))
			fmt.Fprintln(out, ui.LabelValue("Reason", st.Reason))
			if !st.Until.IsZero() {
				fmt.Fprintln(out, ui.LabelValue("Remaining", ui.Warn.Render(st.Countdown())))
			}
			return nil
		},
	}
}

func newLockdownArmCmd() *cobra.Command {
	var secret string
	var minutes int
	var reason string

	cmd := &cobra.Command{
		Use:   "arm",
		Short: "Arm a timed lockdown (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.ArmLockdown(ctx, secret, minutes, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Locked for %s: %s\n",
				ui.IconLock, ui.Warn.Render(st.Countdown()), st.Reason)
			return nil
		},
	}

	cmd.Flags().StringVarP(&secret, "secret", "s", "", "Admin secret")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Lockdown length in minutes")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Message shown while locked")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newLockdownClearCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the lockdown (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearLockdown(ctx, secret); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconUnlock+" Lockdown cleared."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&secret, "secret", "s", "", "Admin secret")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

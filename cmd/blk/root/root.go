package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blklauncher/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "blk",
	Short:         "BLK Launcher — game launcher with profiles and progression",
	Long:          "BLK Launcher is a local-first game launcher: profiles, XP and levels, achievements, daily quests and an admin lockdown gate.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newGamesCmd(),
		newPlayCmd(),
		newFavCmd(),
		newQuestsCmd(),
		newAchievementsCmd(),
		newProfileCmd(),
		newLockdownCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconWarn+" "+err.Error()))
		os.Exit(1)
	}
}

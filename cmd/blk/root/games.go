package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blklauncher/internal/catalog"
	"blklauncher/internal/ui"
)

func newGamesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "games [query]",
		Short: "List games in the catalog",
		Args:  cobra.MaximumNArgs(1),
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
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			games = catalog.Filter(games, query, category)

			favs, err := svc.Favorites(ctx)
			if err != nil {
				return err
			}
			favored := map[string]bool{}
			for _, id := range favs {
				favored[id] = true
			}

			out := cmd.OutOrStdout()
			if len(games) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No games match."))
				return nil
			}
			for _, g := range games {
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.FavoriteMark(favored[g.ID]),
					ui.Key.Render(g.ID),
					g.Title,
					ui.Muted.Render("("+g.Category+")"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category filter")

	cmd.AddCommand(newGamesAddCmd())
	return cmd
}

func newGamesAddCmd() *cobra.Command {
	var id string
	var category string
	var url string
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a local game to the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
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

			g, err := svc.AddLocalGame(ctx, catalog.Game{
				ID:          id,
				Title:       args[0],
				Category:    category,
				Description: desc,
				URL:         url,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s (%s).\n", ui.IconPlus, ui.Key.Render(g.Title), g.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Game id (defaults to a slug of the title)")
	cmd.Flags().StringVarP(&category, "category", "c", "other", "Category")
	cmd.Flags().StringVarP(&url, "url", "u", "", "Game URL (required)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")

	return cmd
}

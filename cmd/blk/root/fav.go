package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"blklauncher/internal/catalog"
	"blklauncher/internal/ui"
)

func newFavCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "fav [game-id]",
		Short: "Toggle a favorite, or list favorites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				favs, err := svc.Favorites(ctx)
				if err != nil {
					return err
				}
				if len(favs) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No favorites yet."))
					return nil
				}
				games, err := loadGames(ctx, svc)
				if err != nil {
					return err
				}
				for _, id := range favs {
					title := id
					if g, ok := catalog.Find(games, id); ok {
						title = g.Title
					}
					fmt.Fprintf(out, "%s %s\n", ui.FavoriteMark(true), title)
				}
				return nil
			}

			if err := requireUnlocked(ctx, svc); err != nil {
				return err
			}
			id := args[0]
			if id == "" {
				return errors.New("game id is required")
			}
			on, err := svc.ToggleFavorite(ctx, id)
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintf(out, "%s Added %s to favorites.\n", ui.IconHeart, ui.Key.Render(id))
			} else {
				fmt.Fprintf(out, "%s Removed %s from favorites.\n", ui.IconHeart, ui.Key.Render(id))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List favorites")

	return cmd
}

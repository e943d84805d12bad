package engine

import (
	"context"
	"testing"

	"blklauncher/internal/catalog"
)

func TestAddLocalGame(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.AddLocalGame(ctx, catalog.Game{Title: "My Cool Game!", URL: "https://example.com/game"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g.ID != "my-cool-game" {
		t.Fatalf("derived id = %q", g.ID)
	}

	games, err := svc.LocalGames(ctx)
	if err != nil {
		t.Fatalf("LocalGames: %v", err)
	}
	if len(games) != 1 || games[0].Title != "My Cool Game!" {
		t.Fatalf("local games = %+v", games)
	}

	// Duplicate ids are rejected.
	if _, err := svc.AddLocalGame(ctx, catalog.Game{Title: "My cool GAME", URL: "https://example.com/other"}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestAddLocalGameValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddLocalGame(ctx, catalog.Game{URL: "https://example.com"}); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if _, err := svc.AddLocalGame(ctx, catalog.Game{Title: "No URL"}); err == nil {
		t.Fatalf("expected error for missing URL")
	}
	// Nothing was written by the failed attempts.
	games, err := svc.LocalGames(ctx)
	if err != nil {
		t.Fatalf("LocalGames: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("local games = %+v", games)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Drift Hunters":    "drift-hunters",
		"  2048  ":         "2048",
		"Rocket--Race 3D!": "rocket-race-3d",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q)=%q, want %q", in, got, want)
		}
	}
}

package engine

import (
	"context"
	"testing"
)

func TestToggleFavorite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, "slope")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !on {
		t.Fatalf("expected favorite on")
	}
	favs, err := svc.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favs) != 1 || favs[0] != "slope" {
		t.Fatalf("favorites = %v", favs)
	}

	on, err = svc.ToggleFavorite(ctx, "slope")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if on {
		t.Fatalf("expected favorite off")
	}
	favs, err = svc.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("favorites = %v", favs)
	}
}

func TestSecondFavoriteCompletesQuest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ToggleFavorite(ctx, "slope"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	dc, err := svc.EnsureDailyChallenges(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, ch := range dc.Challenges {
		if ch.ID == "favorite_two" && ch.Done {
			t.Fatalf("favorite_two completed with one favorite")
		}
	}

	if _, err := svc.ToggleFavorite(ctx, "2048"); err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	dc, err = svc.EnsureDailyChallenges(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, ch := range dc.Challenges {
		if ch.ID == "favorite_two" && !ch.Done {
			t.Fatalf("favorite_two not completed: %+v", dc)
		}
	}
}

func TestCollectionsRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cols := []Collection{{Name: "Chill", GameIDs: []string{"2048", "slope"}}}
	if err := svc.SaveCollections(ctx, cols); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := svc.Collections(ctx)
	if err != nil {
		t.Fatalf("Collections: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Chill" || len(got[0].GameIDs) != 2 {
		t.Fatalf("collections = %+v", got)
	}

	if err := svc.SaveCollections(ctx, []Collection{{Name: " "}}); err == nil {
		t.Fatalf("expected error for unnamed collection")
	}
}

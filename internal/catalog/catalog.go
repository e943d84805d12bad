// Package catalog loads and filters the game catalog.
//
// The catalog is read-only input: a games.json file plus user-added local
// games merged on top. Any load failure degrades to an empty catalog.
package catalog

import (
	"encoding/json"
	"os"
	"strings"
)

// Game is one catalog descriptor.
type Game struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
}

// Load reads the base catalog file. A missing or malformed file yields an
// empty catalog, never an error.
func Load(path string) []Game {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var games []Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil
	}
	return games
}

// Merge appends user-local games after the base catalog.
func Merge(base, local []Game) []Game {
	out := make([]Game, 0, len(base)+len(local))
	out = append(out, base...)
	out = append(out, local...)
	return out
}

// Find resolves a game id. Stats and history may reference ids that are no
// longer in the catalog; callers skip those entries.
func Find(games []Game, id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Filter returns the games matching a category ("" or "all" matches any) and
// a case-insensitive title/description substring query.
func Filter(games []Game, query, category string) []Game {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Game
	for _, g := range games {
		if category != "" && category != "all" && g.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(g.Title), q) &&
			!strings.Contains(strings.ToLower(g.Description), q) {
			continue
		}
		out = append(out, g)
	}
	return out
}

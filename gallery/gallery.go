// Package gallery filters portfolio items by artist.
package gallery

import (
	"sort"

	"limbo/artwork"
)

// All shows every item regardless of artist.
const All = "all"

type Item struct {
	ID     string
	Artist string
	Hidden bool
}

// Filter hides every item whose artist is not artist, unless artist is All.
// It returns the number of visible items.
func Filter(items []Item, artist string) int {
	visible := 0
	for i := range items {
		items[i].Hidden = artist != All && items[i].Artist != artist
		if !items[i].Hidden {
			visible++
		}
	}
	return visible
}

// Visible returns the IDs of items that are not hidden, in order.
func Visible(items []Item) []string {
	var ids []string
	for _, it := range items {
		if !it.Hidden {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Artists returns the distinct non-empty artists, sorted.
func Artists(items []Item) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if it.Artist == "" || seen[it.Artist] {
			continue
		}
		seen[it.Artist] = true
		out = append(out, it.Artist)
	}
	sort.Strings(out)
	return out
}

// FromCatalog makes one item per piece, keyed by the piece path.
func FromCatalog(c artwork.Catalog) []Item {
	items := make([]Item, len(c))
	for i, p := range c {
		items[i] = Item{ID: p.Path, Artist: p.Artist}
	}
	return items
}

// Select narrows c to the pieces by artist. An empty artist or All returns
// c unchanged.
func Select(c artwork.Catalog, artist string) artwork.Catalog {
	if artist == "" || artist == All {
		return c
	}
	items := FromCatalog(c)
	Filter(items, artist)
	out := make(artwork.Catalog, 0, len(c))
	for i, it := range items {
		if !it.Hidden {
			out = append(out, c[i])
		}
	}
	return out
}

// SelectOrAll is Select, except that it falls back to all of c when no
// piece matches. It reports whether the filter was applied.
func SelectOrAll(c artwork.Catalog, artist string) (artwork.Catalog, bool) {
	out := Select(c, artist)
	if len(out) == 0 && len(c) > 0 {
		return c, false
	}
	return out, true
}

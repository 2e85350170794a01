// Package pages tracks which portfolio page is active and the history of
// pages visited before it.
package pages

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Home          = "home"
	artworkPrefix = "artwork-"
)

var ErrUnknownPage = errors.New("pages: unknown page")

// ArtworkID returns the page ID for an artwork.
func ArtworkID(id string) string { return artworkPrefix + id }

// Navigator shows exactly one registered page at a time.
type Navigator struct {
	pages   map[string]bool
	active  string
	history []string
}

// NewNavigator registers ids and activates the first one.
func NewNavigator(ids ...string) *Navigator {
	n := &Navigator{pages: make(map[string]bool, len(ids))}
	for _, id := range ids {
		n.pages[id] = true
	}
	if len(ids) > 0 {
		n.active = ids[0]
	}
	return n
}

func (n *Navigator) Register(id string) { n.pages[id] = true }

// Show activates id, remembering the current page so Back can return to
// it. Showing the active page again does not grow the history.
func (n *Navigator) Show(id string) error {
	if !n.pages[id] {
		return fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	if id == n.active {
		return nil
	}
	if n.active != "" {
		n.history = append(n.history, n.active)
	}
	n.active = id
	return nil
}

func (n *Navigator) ShowArtwork(id string) error {
	return n.Show(ArtworkID(id))
}

// Back returns to the previous page. It reports false when there is none.
func (n *Navigator) Back() bool {
	if len(n.history) == 0 {
		return false
	}
	last := len(n.history) - 1
	n.active = n.history[last]
	n.history = n.history[:last]
	return true
}

func (n *Navigator) Active() string { return n.active }

// Depth is the number of pages Back can return through.
func (n *Navigator) Depth() int { return len(n.history) }

// IsArtwork reports whether the active page shows an artwork, and which.
func (n *Navigator) IsArtwork() (string, bool) {
	id, ok := strings.CutPrefix(n.active, artworkPrefix)
	return id, ok && id != ""
}

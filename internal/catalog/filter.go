package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SortKey selects the order used by SortPlaylists.
type SortKey int

const (
	SortRecent       SortKey = iota // most recently updated first
	SortAlphabetical                // by name
	SortCreator                     // by owner name
)

// String returns the label shown in the library sort selector.
func (k SortKey) String() string {
	switch k {
	case SortRecent:
		return "Recents"
	case SortAlphabetical:
		return "Alphabetical"
	case SortCreator:
		return "Creator"
	default:
		return "Unknown"
	}
}

// Next cycles recent → alphabetical → creator → recent.
func (k SortKey) Next() SortKey {
	switch k {
	case SortRecent:
		return SortAlphabetical
	case SortAlphabetical:
		return SortCreator
	default:
		return SortRecent
	}
}

// matches reports whether any field contains query, ignoring case.
// query must already be lower-cased.
func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Search matches every entity kind against query. Tracks match on title or
// artist, playlists on name, albums on title or artist, artists on name.
// Catalog order is preserved. A blank query matches nothing.
func (c *Catalog) Search(query string) Results {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Results{}
	}
	return Results{
		Tracks: lo.Filter(c.Tracks(), func(t Track, _ int) bool {
			return matches(q, t.Title, t.Artist)
		}),
		Playlists: FilterPlaylists(c.Playlists(), q),
		Albums: lo.Filter(c.Albums(), func(a Album, _ int) bool {
			return matches(q, a.Title, a.Artist)
		}),
		Artists: lo.Filter(c.Artists(), func(a Artist, _ int) bool {
			return matches(q, a.Name)
		}),
	}
}

// FilterPlaylists returns the playlists whose name contains query, ignoring
// case, in their original relative order. An empty query keeps everything.
// The input slice is not modified.
func FilterPlaylists(playlists []Playlist, query string) []Playlist {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(playlists, func(p Playlist, _ int) bool {
		return q == "" || matches(q, p.Name)
	})
}

// SortPlaylists returns a sorted copy of playlists. Ties keep input order.
func SortPlaylists(playlists []Playlist, key SortKey) []Playlist {
	out := slices.Clone(playlists)
	switch key {
	case SortAlphabetical:
		slices.SortStableFunc(out, func(a, b Playlist) int {
			return compareFold(a.Name, b.Name)
		})
	case SortCreator:
		slices.SortStableFunc(out, func(a, b Playlist) int {
			return compareFold(a.Owner, b.Owner)
		})
	default:
		slices.SortStableFunc(out, func(a, b Playlist) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}
	return out
}

func compareFold(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

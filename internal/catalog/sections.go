package catalog

import (
	"time"

	"github.com/samber/lo"
)

// LikedSongsID is the pseudo playlist id of the liked songs collection.
const LikedSongsID = "liked"

// Section sizes used by the home and library pages.
const (
	quickPicksSize     = 6
	recentlyPlayedSize = 6
	madeForYouSize     = 3
	featuredSize       = 5
	popularArtistsSize = 5
	likedSongsSize     = 50
)

// QuickPicks returns the playlists shown in the home page grid.
func (c *Catalog) QuickPicks() []Playlist {
	return lo.Slice(c.Playlists(), 0, quickPicksSize)
}

// RecentlyPlayed returns the tracks shown as recently played.
func (c *Catalog) RecentlyPlayed() []Track {
	return lo.Slice(c.Tracks(), 0, recentlyPlayedSize)
}

// MadeForYou returns the personalised playlists row.
func (c *Catalog) MadeForYou() []Playlist {
	return lo.Slice(c.Playlists(), 0, madeForYouSize)
}

// Featured returns the featured playlists row.
func (c *Catalog) Featured() []Playlist {
	return lo.Slice(c.Playlists(), 0, featuredSize)
}

// PopularArtists returns the distinct artist names of recently played tracks.
func (c *Catalog) PopularArtists() []string {
	names := lo.Map(c.RecentlyPlayed(), func(t Track, _ int) string {
		return t.Artist
	})
	return lo.Slice(lo.Uniq(names), 0, popularArtistsSize)
}

// UserPlaylists returns the playlists owned by the listener.
func (c *Catalog) UserPlaylists() []Playlist {
	return lo.Filter(c.Playlists(), func(p Playlist, _ int) bool {
		return p.Owner == c.owner
	})
}

// LikedSongs returns the listener's liked tracks.
func (c *Catalog) LikedSongs() []Track {
	return lo.Slice(c.Tracks(), 0, likedSongsSize)
}

// LikedPlaylist wraps the liked songs as a playlist owned by the listener.
func (c *Catalog) LikedPlaylist() Playlist {
	tracks := c.LikedSongs()
	return Playlist{
		ID:            LikedSongsID,
		Name:          "Liked Songs",
		Owner:         c.owner,
		TrackCount:    len(tracks),
		TotalDuration: lo.SumBy(tracks, func(t Track) time.Duration { return t.Duration }),
		Tracks:        tracks,
	}
}

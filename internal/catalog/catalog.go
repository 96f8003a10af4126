// Package catalog holds the static, read-only music catalog browsed by the
// application: tracks, playlists, albums, artists and browse categories.
//
// A Catalog never hands out references to its internal slices. Every accessor
// returns fresh copies so views can filter, sort and slice freely.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultOwner is the owner name used for the listener's own playlists.
const DefaultOwner = "You"

var (
	// ErrNotFound is returned by lookups when no record has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when catalog data is malformed.
	ErrInvalid = errors.New("invalid catalog")
)

// Catalog is an immutable collection of catalog records.
type Catalog struct {
	owner      string
	tracks     []Track
	playlists  []Playlist
	albums     []Album
	artists    []Artist
	categories []Category
}

// New builds a catalog from already-resolved records. The inputs are copied.
func New(owner string, tracks []Track, playlists []Playlist, albums []Album,
	artists []Artist, categories []Category,
) *Catalog {
	if owner == "" {
		owner = DefaultOwner
	}
	return &Catalog{
		owner:      owner,
		tracks:     slices.Clone(tracks),
		playlists:  clonePlaylists(playlists),
		albums:     cloneAlbums(albums),
		artists:    cloneArtists(artists),
		categories: slices.Clone(categories),
	}
}

// Owner returns the name that marks the listener's own playlists.
func (c *Catalog) Owner() string { return c.owner }

// Tracks returns a copy of all tracks in catalog order.
func (c *Catalog) Tracks() []Track { return slices.Clone(c.tracks) }

// Playlists returns a copy of all playlists in catalog order.
func (c *Catalog) Playlists() []Playlist { return clonePlaylists(c.playlists) }

// Albums returns a copy of all albums in catalog order.
func (c *Catalog) Albums() []Album { return cloneAlbums(c.albums) }

// Artists returns a copy of all artists in catalog order.
func (c *Catalog) Artists() []Artist { return cloneArtists(c.artists) }

// Categories returns a copy of the browse categories.
func (c *Catalog) Categories() []Category { return slices.Clone(c.categories) }

// Track looks up a track by id.
func (c *Catalog) Track(id string) (Track, error) {
	for _, t := range c.tracks {
		if t.ID == id {
			return t, nil
		}
	}
	return Track{}, fmt.Errorf("track %q: %w", id, ErrNotFound)
}

// Playlist looks up a playlist by id.
func (c *Catalog) Playlist(id string) (Playlist, error) {
	for i := range c.playlists {
		if c.playlists[i].ID == id {
			return clonePlaylist(c.playlists[i]), nil
		}
	}
	return Playlist{}, fmt.Errorf("playlist %q: %w", id, ErrNotFound)
}

// Album looks up an album by id.
func (c *Catalog) Album(id string) (Album, error) {
	for i := range c.albums {
		if c.albums[i].ID == id {
			return cloneAlbum(c.albums[i]), nil
		}
	}
	return Album{}, fmt.Errorf("album %q: %w", id, ErrNotFound)
}

// Artist looks up an artist by id.
func (c *Catalog) Artist(id string) (Artist, error) {
	for i := range c.artists {
		if c.artists[i].ID == id {
			return cloneArtist(c.artists[i]), nil
		}
	}
	return Artist{}, fmt.Errorf("artist %q: %w", id, ErrNotFound)
}

// ArtistByName looks up an artist by exact name.
func (c *Catalog) ArtistByName(name string) (Artist, error) {
	for i := range c.artists {
		if c.artists[i].Name == name {
			return cloneArtist(c.artists[i]), nil
		}
	}
	return Artist{}, fmt.Errorf("artist %q: %w", name, ErrNotFound)
}

func clonePlaylist(p Playlist) Playlist {
	p.Tracks = slices.Clone(p.Tracks)
	return p
}

func clonePlaylists(in []Playlist) []Playlist {
	if in == nil {
		return nil
	}
	out := make([]Playlist, len(in))
	for i := range in {
		out[i] = clonePlaylist(in[i])
	}
	return out
}

func cloneAlbum(a Album) Album {
	a.Tracks = slices.Clone(a.Tracks)
	return a
}

func cloneAlbums(in []Album) []Album {
	if in == nil {
		return nil
	}
	out := make([]Album, len(in))
	for i := range in {
		out[i] = cloneAlbum(in[i])
	}
	return out
}

func cloneArtist(a Artist) Artist {
	a.Genres = slices.Clone(a.Genres)
	return a
}

func cloneArtists(in []Artist) []Artist {
	if in == nil {
		return nil
	}
	out := make([]Artist, len(in))
	for i := range in {
		out[i] = cloneArtist(in[i])
	}
	return out
}

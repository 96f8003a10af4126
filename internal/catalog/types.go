package catalog

import "time"

// Track is a single song in the catalog.
type Track struct {
	ID         string
	Title      string
	Artist     string
	Album      string
	Duration   time.Duration
	Cover      string
	Explicit   bool
	Popularity int
}

// Playlist is an ordered, curated list of tracks.
type Playlist struct {
	ID            string
	Name          string
	Description   string
	Cover         string
	Owner         string
	Public        bool
	TrackCount    int
	TotalDuration time.Duration
	Tracks        []Track
	Followers     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Album is a released record by a single artist.
type Album struct {
	ID            string
	Title         string
	Artist        string
	Cover         string
	ReleaseDate   time.Time
	TrackCount    int
	TotalDuration time.Duration
	Tracks        []Track
	Genre         string
	Label         string
}

// Artist is a performer profile.
type Artist struct {
	ID               string
	Name             string
	Image            string
	Followers        int
	Verified         bool
	Genres           []string
	MonthlyListeners int
}

// Category is a browse tile shown on the empty search page.
type Category struct {
	ID    string
	Title string
	Color string
	Image string
}

// Results groups search matches by entity kind.
type Results struct {
	Tracks    []Track
	Playlists []Playlist
	Albums    []Album
	Artists   []Artist
}

// Empty reports whether no entity matched.
func (r Results) Empty() bool {
	return len(r.Tracks) == 0 && len(r.Playlists) == 0 &&
		len(r.Albums) == 0 && len(r.Artists) == 0
}

// Year returns the release year of the album, or 0 if unknown.
func (a Album) Year() int {
	if a.ReleaseDate.IsZero() {
		return 0
	}
	return a.ReleaseDate.Year()
}

// Contains reports whether the playlist includes a track with the given id.
func (p Playlist) Contains(trackID string) bool {
	for i := range p.Tracks {
		if p.Tracks[i].ID == trackID {
			return true
		}
	}
	return false
}

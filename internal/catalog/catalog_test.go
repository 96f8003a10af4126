package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func playlistIDs(ps []Playlist) []string {
	return lo.Map(ps, func(p Playlist, _ int) string { return p.ID })
}

func trackIDs(ts []Track) []string {
	return lo.Map(ts, func(t Track, _ int) string { return t.ID })
}

func TestDefault_LoadsBundledCatalog(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, "You", c.Owner())
	assert.Len(t, c.Tracks(), 6)
	assert.Len(t, c.Playlists(), 5)
	assert.Len(t, c.Albums(), 3)
	assert.Len(t, c.Artists(), 3)
	assert.Len(t, c.Categories(), 8)

	chill, err := c.Playlist("2")
	require.NoError(t, err)
	assert.Equal(t, "Chill Hits", chill.Name)
	assert.Equal(t, []string{"3", "4", "5", "6"}, trackIDs(chill.Tracks))
	assert.Equal(t, 9200*time.Second, chill.TotalDuration)
	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), chill.UpdatedAt)

	track, err := c.Track("4")
	require.NoError(t, err)
	assert.Equal(t, "Heat Waves", track.Title)
	assert.Equal(t, 238*time.Second, track.Duration)

	album, err := c.Album("3")
	require.NoError(t, err)
	assert.Equal(t, 2022, album.Year())
	assert.Equal(t, []string{"6"}, trackIDs(album.Tracks))

	artist, err := c.ArtistByName("Dua Lipa")
	require.NoError(t, err)
	assert.True(t, artist.Verified)
	assert.Equal(t, []string{"Pop", "Dance", "Electronic"}, artist.Genres)
}

func TestLookups_UnknownID_ReturnsNotFound(t *testing.T) {
	c := defaultCatalog(t)

	_, err := c.Playlist("404")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = c.Album("404")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = c.Artist("404")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = c.Track("404")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown track reference",
			doc: `
[[tracks]]
id = "1"
title = "A"
duration = 10

[[playlists]]
id = "p"
name = "P"
tracks = ["1", "2"]
`,
		},
		{
			name: "duplicate track id",
			doc: `
[[tracks]]
id = "1"
title = "A"

[[tracks]]
id = "1"
title = "B"
`,
		},
		{
			name: "duplicate album id",
			doc: `
[[albums]]
id = "a"
title = "First"

[[albums]]
id = "a"
title = "Second"
`,
		},
		{
			name: "duplicate artist id",
			doc: `
[[artists]]
id = "x"
name = "One"

[[artists]]
id = "x"
name = "Two"
`,
		},
		{
			name: "bad date",
			doc: `
[[playlists]]
id = "p"
name = "P"
updated_at = "yesterday"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	_, err := Load([]byte("[[tracks]\nid = "))
	assert.Error(t, err)
}

func TestLoad_DefaultsOwner(t *testing.T) {
	c, err := Load([]byte(`
[[tracks]]
id = "1"
title = "Only"
duration = 61
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultOwner, c.Owner())
	assert.Equal(t, 61*time.Second, c.Tracks()[0].Duration)
}

func TestSearch(t *testing.T) {
	c := defaultCatalog(t)

	t.Run("chill matches playlist names case-insensitively", func(t *testing.T) {
		r := c.Search("CHILL")
		assert.Equal(t, []string{"2"}, playlistIDs(r.Playlists))
		assert.Empty(t, r.Tracks)
		assert.Empty(t, r.Albums)
		assert.Empty(t, r.Artists)
	})

	t.Run("artist name matches tracks albums and artists", func(t *testing.T) {
		r := c.Search("weeknd")
		assert.Equal(t, []string{"1"}, trackIDs(r.Tracks))
		require.Len(t, r.Albums, 1)
		assert.Equal(t, "After Hours", r.Albums[0].Title)
		require.Len(t, r.Artists, 1)
		assert.Equal(t, "The Weeknd", r.Artists[0].Name)
	})

	t.Run("order follows catalog order", func(t *testing.T) {
		r := c.Search("a")
		ids := trackIDs(r.Tracks)
		assert.IsIncreasing(t, ids)
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.True(t, c.Search("   ").Empty())
	})

	t.Run("no match", func(t *testing.T) {
		assert.True(t, c.Search("zzzz").Empty())
	})
}

func TestFilterPlaylists(t *testing.T) {
	c := defaultCatalog(t)
	all := c.Playlists()

	assert.Equal(t, []string{"1", "2"}, playlistIDs(FilterPlaylists(all, "Hits")))
	assert.Equal(t, playlistIDs(all), playlistIDs(FilterPlaylists(all, "")))
	assert.Empty(t, FilterPlaylists(all, "podcast"))
}

func TestSortPlaylists(t *testing.T) {
	c := defaultCatalog(t)

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortRecent, []string{"1", "4", "2", "3", "5"}},
		{SortAlphabetical, []string{"2", "4", "3", "1", "5"}},
		{SortCreator, []string{"1", "2", "4", "3", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, playlistIDs(SortPlaylists(c.Playlists(), tt.key)))
		})
	}
}

func TestSortKey_NextCycles(t *testing.T) {
	assert.Equal(t, SortAlphabetical, SortRecent.Next())
	assert.Equal(t, SortCreator, SortAlphabetical.Next())
	assert.Equal(t, SortRecent, SortCreator.Next())
}

func TestCatalog_DoesNotExposeInternalSlices(t *testing.T) {
	c := defaultCatalog(t)
	before := playlistIDs(c.Playlists())

	ps := c.Playlists()
	_ = SortPlaylists(ps, SortAlphabetical)
	ps[0].Name = "changed"
	ps[0].Tracks[0].Title = "changed"

	fromLookup, err := c.Playlist("1")
	require.NoError(t, err)
	fromLookup.Tracks[0].Title = "changed too"

	assert.Equal(t, before, playlistIDs(c.Playlists()))
	again, err := c.Playlist("1")
	require.NoError(t, err)
	assert.Equal(t, "Today's Top Hits", again.Name)
	assert.Equal(t, "Blinding Lights", again.Tracks[0].Title)
}

func TestSortPlaylists_DoesNotReorderInput(t *testing.T) {
	c := defaultCatalog(t)
	ps := c.Playlists()
	before := playlistIDs(ps)

	_ = SortPlaylists(ps, SortCreator)

	assert.Equal(t, before, playlistIDs(ps))
}

func TestSections(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, playlistIDs(c.QuickPicks()))
	assert.Equal(t, []string{"1", "2", "3"}, playlistIDs(c.MadeForYou()))
	assert.Len(t, c.Featured(), 5)
	assert.Len(t, c.RecentlyPlayed(), 6)
	assert.Equal(t, []string{"3", "5"}, playlistIDs(c.UserPlaylists()))
	assert.Len(t, c.LikedSongs(), 6)
	assert.Equal(t,
		[]string{"The Weeknd", "Harry Styles", "Olivia Rodrigo", "Glass Animals", "Dua Lipa"},
		c.PopularArtists())
}

func TestLikedPlaylist(t *testing.T) {
	c := defaultCatalog(t)
	liked := c.LikedPlaylist()

	assert.Equal(t, LikedSongsID, liked.ID)
	assert.Equal(t, "Liked Songs", liked.Name)
	assert.Equal(t, "You", liked.Owner)
	assert.Equal(t, len(c.LikedSongs()), liked.TrackCount)
	assert.Equal(t, trackIDs(c.LikedSongs()), trackIDs(liked.Tracks))

	var total time.Duration
	for _, tr := range liked.Tracks {
		total += tr.Duration
	}
	assert.Equal(t, total, liked.TotalDuration)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{200 * time.Second, "3:20"},
		{61*time.Minute + 5*time.Second, "61:05"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{10800 * time.Second, "3 hr 0 min"},
		{9200 * time.Second, "2 hr 33 min"},
		{2220 * time.Second, "37 min"},
		{0, "0 min"},
	}
	for _, tt := range tests {
		if got := FormatLength(tt.in); got != tt.want {
			t.Errorf("FormatLength(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFollowers(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{32500000, "32.5M"},
		{15600000, "15.6M"},
		{1500, "1.5K"},
		{245, "245"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatFollowers(tt.in); got != tt.want {
			t.Errorf("FormatFollowers(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
	assert.Equal(t, "89,000,000", FormatCount(89000000))
}

func TestImageOrFallback(t *testing.T) {
	assert.Equal(t, "covers/x.png", ImageOrFallback("covers/x.png", false, ImageTrack))
	assert.Equal(t, FallbackImage(ImagePlayer), ImageOrFallback("covers/x.png", true, ImagePlayer))
	assert.Equal(t, FallbackImage(ImageArtist), ImageOrFallback("", false, ImageArtist))
	assert.NotEqual(t, FallbackImage(ImageArtist), FallbackImage(ImageCategory))
	assert.Equal(t, FallbackImage(ImageTrack), FallbackImage(ImageContext(99)))
}

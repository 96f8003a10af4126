package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed data/catalog.toml
var defaultData []byte

const dateLayout = "2006-01-02"

// Records as they appear in a catalog TOML file. Playlists and albums
// reference tracks by id; Load resolves them into Track values.
type catalogFile struct {
	Owner      string         `koanf:"owner"`
	Tracks     []trackFile    `koanf:"tracks"`
	Playlists  []playlistFile `koanf:"playlists"`
	Albums     []albumFile    `koanf:"albums"`
	Artists    []artistFile   `koanf:"artists"`
	Categories []categoryFile `koanf:"categories"`
}

type trackFile struct {
	ID         string `koanf:"id"`
	Title      string `koanf:"title"`
	Artist     string `koanf:"artist"`
	Album      string `koanf:"album"`
	Duration   int    `koanf:"duration"` // seconds
	Cover      string `koanf:"cover"`
	Explicit   bool   `koanf:"explicit"`
	Popularity int    `koanf:"popularity"`
}

type playlistFile struct {
	ID            string   `koanf:"id"`
	Name          string   `koanf:"name"`
	Description   string   `koanf:"description"`
	Cover         string   `koanf:"cover"`
	Owner         string   `koanf:"owner"`
	Public        bool     `koanf:"public"`
	TrackCount    int      `koanf:"track_count"`
	TotalDuration int      `koanf:"total_duration"` // seconds
	Tracks        []string `koanf:"tracks"`
	Followers     int      `koanf:"followers"`
	CreatedAt     string   `koanf:"created_at"`
	UpdatedAt     string   `koanf:"updated_at"`
}

type albumFile struct {
	ID            string   `koanf:"id"`
	Title         string   `koanf:"title"`
	Artist        string   `koanf:"artist"`
	Cover         string   `koanf:"cover"`
	ReleaseDate   string   `koanf:"release_date"`
	TrackCount    int      `koanf:"track_count"`
	TotalDuration int      `koanf:"total_duration"` // seconds
	Tracks        []string `koanf:"tracks"`
	Genre         string   `koanf:"genre"`
	Label         string   `koanf:"label"`
}

type artistFile struct {
	ID               string   `koanf:"id"`
	Name             string   `koanf:"name"`
	Image            string   `koanf:"image"`
	Followers        int      `koanf:"followers"`
	Verified         bool     `koanf:"verified"`
	Genres           []string `koanf:"genres"`
	MonthlyListeners int      `koanf:"monthly_listeners"`
}

type categoryFile struct {
	ID    string `koanf:"id"`
	Title string `koanf:"title"`
	Color string `koanf:"color"`
	Image string `koanf:"image"`
}

// bytesProvider feeds an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("bytes provider does not support Read")
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(defaultData)
}

// Load parses a TOML catalog document.
func Load(data []byte) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return fromKoanf(k)
}

// LoadFile parses a TOML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Catalog, error) {
	var f catalogFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.resolve()
}

func (f catalogFile) resolve() (*Catalog, error) {
	tracks := make([]Track, 0, len(f.Tracks))
	byID := make(map[string]Track, len(f.Tracks))
	for _, t := range f.Tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: track %q has no id", ErrInvalid, t.Title)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate track id %q", ErrInvalid, t.ID)
		}
		if t.Duration < 0 {
			return nil, fmt.Errorf("%w: track %q has negative duration", ErrInvalid, t.ID)
		}
		track := Track{
			ID:         t.ID,
			Title:      t.Title,
			Artist:     t.Artist,
			Album:      t.Album,
			Duration:   seconds(t.Duration),
			Cover:      t.Cover,
			Explicit:   t.Explicit,
			Popularity: t.Popularity,
		}
		byID[t.ID] = track
		tracks = append(tracks, track)
	}

	lookup := func(owner string, ids []string) ([]Track, error) {
		out := make([]Track, 0, len(ids))
		for _, id := range ids {
			t, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s references unknown track %q", ErrInvalid, owner, id)
			}
			out = append(out, t)
		}
		return out, nil
	}

	playlists := make([]Playlist, 0, len(f.Playlists))
	seen := make(map[string]bool, len(f.Playlists))
	for _, p := range f.Playlists {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate playlist id %q", ErrInvalid, p.ID)
		}
		seen[p.ID] = true

		pt, err := lookup("playlist "+p.ID, p.Tracks)
		if err != nil {
			return nil, err
		}
		created, err := parseDate(p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("playlist %s created_at: %w", p.ID, err)
		}
		updated, err := parseDate(p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("playlist %s updated_at: %w", p.ID, err)
		}
		playlists = append(playlists, Playlist{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Cover:         p.Cover,
			Owner:         p.Owner,
			Public:        p.Public,
			TrackCount:    p.TrackCount,
			TotalDuration: seconds(p.TotalDuration),
			Tracks:        pt,
			Followers:     p.Followers,
			CreatedAt:     created,
			UpdatedAt:     updated,
		})
	}

	albums := make([]Album, 0, len(f.Albums))
	seen = make(map[string]bool, len(f.Albums))
	for _, a := range f.Albums {
		if seen[a.ID] {
			return nil, fmt.Errorf("%w: duplicate album id %q", ErrInvalid, a.ID)
		}
		seen[a.ID] = true

		at, err := lookup("album "+a.ID, a.Tracks)
		if err != nil {
			return nil, err
		}
		released, err := parseDate(a.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("album %s release_date: %w", a.ID, err)
		}
		albums = append(albums, Album{
			ID:            a.ID,
			Title:         a.Title,
			Artist:        a.Artist,
			Cover:         a.Cover,
			ReleaseDate:   released,
			TrackCount:    a.TrackCount,
			TotalDuration: seconds(a.TotalDuration),
			Tracks:        at,
			Genre:         a.Genre,
			Label:         a.Label,
		})
	}

	artists := make([]Artist, 0, len(f.Artists))
	seen = make(map[string]bool, len(f.Artists))
	for _, a := range f.Artists {
		if seen[a.ID] {
			return nil, fmt.Errorf("%w: duplicate artist id %q", ErrInvalid, a.ID)
		}
		seen[a.ID] = true
		artists = append(artists, Artist{
			ID:               a.ID,
			Name:             a.Name,
			Image:            a.Image,
			Followers:        a.Followers,
			Verified:         a.Verified,
			Genres:           a.Genres,
			MonthlyListeners: a.MonthlyListeners,
		})
	}

	categories := make([]Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		categories = append(categories, Category(c))
	}

	return New(f.Owner, tracks, playlists, albums, artists, categories), nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return t, nil
}

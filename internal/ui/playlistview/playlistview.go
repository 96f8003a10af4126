// Package playlistview shows one playlist, album or artist: a gradient
// header and the track list.
package playlistview

import (
	"fmt"
	"hash/fnv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
	"github.com/llehouerou/wavify/internal/ui/tracklist"
)

// Kind is what the page shows.
type Kind int

const (
	KindPlaylist Kind = iota
	KindAlbum
	KindArtist
)

// String returns the label printed above the title.
func (k Kind) String() string {
	switch k {
	case KindAlbum:
		return "Album"
	case KindArtist:
		return "Artist"
	default:
		return "Playlist"
	}
}

// headerHeight is banner, label, title, description, meta, blank, controls
// and blank.
const headerHeight = 8

// accents are the header colors, picked per id.
var accents = []string{"#530053", "#1e3264", "#8d67ab", "#e8115b", "#148a08", "#503750", "#0d73ec"}

func accentFor(id string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return accents[h.Sum32()%uint32(len(accents))]
}

type header struct {
	title       string
	description string
	meta        string
	accent      string
}

// Model is the playlist page.
type Model struct {
	ui.Base
	catalog *catalog.Catalog
	store   *playback.Store
	kind    Kind
	id      string
	found   bool
	header  header
	tracks  tracklist.Model
}

// New creates an empty page. It panics if store is nil.
func New(c *catalog.Catalog, store *playback.Store) Model {
	return Model{
		catalog: c,
		store:   playback.Must(store),
		tracks:  tracklist.New(store),
	}
}

// Open loads the entity. An unknown id leaves the page in its not-found
// state and returns an error wrapping catalog.ErrNotFound.
func (m *Model) Open(kind Kind, id string) error {
	m.kind, m.id = kind, id
	m.found = false
	m.header = header{}
	m.tracks.SetTracks(nil)
	m.tracks.SetEmptyText("No tracks")

	var (
		tracks []catalog.Track
		err    error
	)
	switch kind {
	case KindAlbum:
		tracks, err = m.openAlbum(id)
	case KindArtist:
		tracks, err = m.openArtist(id)
	default:
		tracks, err = m.openPlaylist(id)
	}
	if err != nil {
		return err
	}
	m.found = true
	m.tracks.SetTracks(tracks)
	return nil
}

func (m *Model) openPlaylist(id string) ([]catalog.Track, error) {
	var (
		p   catalog.Playlist
		err error
	)
	if id == catalog.LikedSongsID {
		p = m.catalog.LikedPlaylist()
		m.tracks.SetEmptyText("Songs you like will appear here")
	} else if p, err = m.catalog.Playlist(id); err != nil {
		return nil, err
	}
	m.header = header{
		title:       p.Name,
		description: p.Description,
		meta: fmt.Sprintf("%s • %s followers • %d songs, about %s",
			p.Owner, catalog.FormatFollowers(p.Followers), p.TrackCount, catalog.FormatLength(p.TotalDuration)),
		accent: accentFor("playlist:" + p.ID),
	}
	return p.Tracks, nil
}

func (m *Model) openAlbum(id string) ([]catalog.Track, error) {
	a, err := m.catalog.Album(id)
	if err != nil {
		return nil, err
	}
	meta := a.Artist
	if y := a.Year(); y > 0 {
		meta += fmt.Sprintf(" • %d", y)
	}
	meta += fmt.Sprintf(" • %d songs, %s", a.TrackCount, catalog.FormatLength(a.TotalDuration))
	desc := a.Genre
	if a.Label != "" {
		desc = strings.TrimPrefix(desc+" · "+a.Label, " · ")
	}
	m.header = header{
		title:       a.Title,
		description: desc,
		meta:        meta,
		accent:      accentFor("album:" + a.ID),
	}
	return a.Tracks, nil
}

func (m *Model) openArtist(id string) ([]catalog.Track, error) {
	a, err := m.catalog.Artist(id)
	if err != nil {
		return nil, err
	}
	var tracks []catalog.Track
	for _, t := range m.catalog.Tracks() {
		if t.Artist == a.Name {
			tracks = append(tracks, t)
		}
	}
	title := a.Name
	if a.Verified {
		title += " " + icons.Verified()
	}
	m.header = header{
		title:       title,
		description: strings.Join(a.Genres, ", "),
		meta: fmt.Sprintf("%s monthly listeners • %s followers",
			catalog.FormatCount(a.MonthlyListeners), catalog.FormatFollowers(a.Followers)),
		accent: accentFor("artist:" + a.ID),
	}
	return tracks, nil
}

// Kind returns the kind of the open entity.
func (m Model) Kind() Kind { return m.kind }

// ID returns the requested id.
func (m Model) ID() string { return m.id }

// Found reports whether the requested id exists.
func (m Model) Found() bool { return m.found }

// Title returns the entity title, empty when not found.
func (m Model) Title() string { return m.header.title }

// Tracks returns the tracks shown.
func (m Model) Tracks() []catalog.Track { return m.tracks.Tracks() }

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.tracks.SetSize(width, m.BodyHeight(headerHeight))
}

// SetFocused sets focus on the page and its track list.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.tracks.SetFocused(focused)
}

// playingHere reports whether the current track belongs to this page.
func (m Model) playingHere(ps playback.State) bool {
	if ps.Current == nil {
		return false
	}
	for _, t := range m.tracks.Tracks() {
		if t.ID == ps.Current.ID {
			return true
		}
	}
	return false
}

// Update handles play-all and delegates the rest to the track list. When the
// current track belongs to this page, play-all toggles play/pause instead of
// restarting.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.found {
		return m, nil
	}
	if km, ok := msg.(ui.KeyMsg); ok && km.Action == keymap.ActionPlayAll {
		if m.playingHere(m.store.State()) {
			m.store.TogglePlay()
		} else {
			m.tracks.PlayAll()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tracks, cmd = m.tracks.Update(msg)
	return m, cmd
}

// View renders the header and track list, or the not-found state.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()
	if !m.found {
		noun := strings.ToLower(m.kind.String())
		lines := []string{
			"", "",
			s.Title.Render(fmt.Sprintf("%s not found", m.kind)),
			s.Muted.Render(fmt.Sprintf("The %s you're looking for doesn't exist.", noun)),
		}
		return render.FitLines(strings.Join(lines, "\n"), m.Width(), m.Height())
	}

	h := m.header
	play := icons.Play() + " Play"
	if ps := m.store.State(); m.playingHere(ps) && ps.Playing {
		play = icons.Pause() + " Pause"
	}
	lines := []string{
		styles.Banner(h.accent, m.Width()),
		s.Base.Render(m.kind.String()),
		styles.HeaderGradient(render.Sanitize(h.title), h.accent),
		s.Muted.Render(render.Sanitize(h.description)),
		s.Muted.Render(render.Sanitize(h.meta)),
		"",
		s.Playing.Render(play) + s.Subtle.Render("   P play all · enter play from track · a add to queue"),
		"",
	}
	top := render.FitLines(strings.Join(lines, "\n"), m.Width(), min(headerHeight, m.Height()))
	if m.BodyHeight(headerHeight) == 0 {
		return top
	}
	return top + "\n" + m.tracks.View()
}

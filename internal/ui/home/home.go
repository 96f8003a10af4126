// Package home renders the landing page: a greeting and shelves of
// playlists, recently played tracks and artists.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/card"
	"github.com/llehouerou/wavify/internal/ui/layout"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

const source = "home"

// Greeting returns the salutation for the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

type entryKind int

const (
	entryPlaylist entryKind = iota
	entryTrack
	entryArtist
)

type entry struct {
	kind     entryKind
	playlist catalog.Playlist
	track    catalog.Track
	artist   string
	card     card.Card
}

type section struct {
	title   string
	entries []entry
}

// Model is the home page.
type Model struct {
	ui.Base
	catalog  *catalog.Catalog
	store    *playback.Store
	now      func() time.Time
	sections []section
	sec      int   // selected section
	items    []int // selected entry per section
}

// New builds the home page from the catalog. It panics if store is nil.
func New(c *catalog.Catalog, store *playback.Store) Model {
	m := Model{
		catalog: c,
		store:   playback.Must(store),
		now:     time.Now,
	}
	m.sections = buildSections(c)
	m.items = make([]int, len(m.sections))
	return m
}

// SetClock replaces the clock used for the greeting.
func (m *Model) SetClock(now func() time.Time) { m.now = now }

func playlistEntries(ps []catalog.Playlist) []entry {
	out := make([]entry, 0, len(ps))
	for _, p := range ps {
		out = append(out, entry{
			kind:     entryPlaylist,
			playlist: p,
			card: card.Card{
				Title:    icons.FormatPlaylist(p.Name),
				Subtitle: p.Description,
				Meta:     fmt.Sprintf("%s · %d songs", p.Owner, p.TrackCount),
			},
		})
	}
	return out
}

func buildSections(c *catalog.Catalog) []section {
	recent := c.RecentlyPlayed()
	tracks := make([]entry, 0, len(recent))
	for _, t := range recent {
		tracks = append(tracks, entry{
			kind:  entryTrack,
			track: t,
			card: card.Card{
				Title:    icons.FormatTrack(t.Title),
				Subtitle: t.Artist,
				Meta:     catalog.FormatClock(t.Duration),
			},
		})
	}

	names := c.PopularArtists()
	artists := make([]entry, 0, len(names))
	for _, name := range names {
		meta := "Artist"
		if a, err := c.ArtistByName(name); err == nil {
			meta = catalog.FormatFollowers(a.MonthlyListeners) + " monthly listeners"
		}
		artists = append(artists, entry{
			kind:   entryArtist,
			artist: name,
			card: card.Card{
				Title:    icons.FormatArtist(name),
				Subtitle: "Artist",
				Meta:     meta,
				Accent:   string(styles.T().Secondary),
			},
		})
	}

	all := []section{
		{"Quick picks", playlistEntries(c.QuickPicks())},
		{"Recently played", tracks},
		{"Made for you", playlistEntries(c.MadeForYou())},
		{"Featured playlists", playlistEntries(c.Featured())},
		{"Popular artists", artists},
	}
	out := all[:0]
	for _, s := range all {
		if len(s.entries) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) selected() (entry, bool) {
	if len(m.sections) == 0 {
		return entry{}, false
	}
	s := m.sections[m.sec]
	return s.entries[m.items[m.sec]], true
}

// SelectedTitle returns the section and card title under the cursor.
func (m Model) SelectedTitle() (sectionTitle, cardTitle string) {
	e, ok := m.selected()
	if !ok {
		return "", ""
	}
	return m.sections[m.sec].title, e.card.Title
}

// Update handles shelf navigation and activation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(ui.KeyMsg)
	if !ok || len(m.sections) == 0 {
		return m, nil
	}

	switch km.Action {
	case keymap.ActionMoveDown:
		m.sec = min(m.sec+1, len(m.sections)-1)
	case keymap.ActionMoveUp:
		m.sec = max(m.sec-1, 0)
	case keymap.ActionMoveRight:
		m.items[m.sec] = min(m.items[m.sec]+1, len(m.sections[m.sec].entries)-1)
	case keymap.ActionMoveLeft:
		m.items[m.sec] = max(m.items[m.sec]-1, 0)
	case keymap.ActionJumpStart:
		m.sec = 0
	case keymap.ActionJumpEnd:
		m.sec = len(m.sections) - 1
	case keymap.ActionSelect:
		return m, m.activate()
	case keymap.ActionPlayAll:
		m.playSelected()
	case keymap.ActionAdd:
		if e, _ := m.selected(); e.kind == entryTrack {
			m.store.AddToQueue(e.track)
			return m, action.Cmd(source, action.Notify{Text: "Added to queue: " + render.Sanitize(e.track.Title)})
		}
	}
	return m, nil
}

// activate opens the selected playlist or artist, or plays the track.
func (m Model) activate() tea.Cmd {
	e, _ := m.selected()
	switch e.kind {
	case entryPlaylist:
		return action.Cmd(source, action.OpenPlaylist{ID: e.playlist.ID})
	case entryTrack:
		m.store.PlayTrack(e.track)
	case entryArtist:
		if a, err := m.catalog.ArtistByName(e.artist); err == nil {
			return action.Cmd(source, action.OpenArtist{ID: a.ID})
		}
		return action.Cmd(source, action.OpenSearch{Query: e.artist})
	}
	return nil
}

// playSelected starts the selected playlist or track without opening it.
func (m Model) playSelected() {
	e, _ := m.selected()
	switch e.kind {
	case entryPlaylist:
		if len(e.playlist.Tracks) > 0 {
			m.store.PlayContext(e.playlist.Tracks, 0)
		}
	case entryTrack:
		m.store.PlayTrack(e.track)
	}
}

// sectionHeight is the heading plus a card row plus the gap.
const sectionHeight = 1 + ui.CardHeight + ui.SectionGap

// View renders the greeting and as many shelves as fit, scrolled so the
// selected one is visible.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()
	lines := []string{
		styles.HeaderGradient(Greeting(m.now()), string(styles.T().Secondary)),
		"",
	}

	fit := max((m.Height()-ui.PageHeaderHeight)/sectionHeight, 1)
	first := max(m.sec-fit+1, 0)
	cols := layout.GridColumns(m.Width(), ui.CardWidth, 2)
	ps := m.store.State()

	for i := first; i < len(m.sections) && i < first+fit; i++ {
		sec := m.sections[i]
		heading := s.Heading.UnsetMarginBottom().Render(sec.title)
		if i == m.sec && m.IsFocused() {
			heading = s.Playing.Render(sec.title)
		}
		lines = append(lines, heading)

		start, end := card.Window(len(sec.entries), cols, m.items[i])
		cards := make([]string, 0, end-start)
		for j := start; j < end; j++ {
			e := sec.entries[j]
			c := e.card
			if e.kind == entryTrack && ps.IsCurrent(e.track.ID) {
				c.Title = icons.Play() + " " + c.Title
			}
			cards = append(cards, card.Render(c, ui.CardWidth, i == m.sec && j == m.items[i] && m.IsFocused()))
		}
		lines = append(lines, card.Row(cards, 2), "")
	}
	return render.FitLines(strings.Join(lines, "\n"), m.Width(), m.Height())
}

// Package tracklist renders a table of tracks and plays them from the
// cursor. Playlist, album, search and liked-songs pages share it.
package tracklist

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/list"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

// headerRows is the column header plus its rule.
const headerRows = 2

// Column widths.
const (
	indexWidth    = 3
	durationWidth = 5
	minAlbumWidth = 70 // below this table width the album column is hidden
)

// Model is a track table bound to the playback store.
type Model struct {
	ui.Base
	store *playback.Store
	list  list.Model[catalog.Track]
	empty string
}

// New creates an empty track list. It panics if store is nil.
func New(store *playback.Store) Model {
	return Model{
		store: playback.Must(store),
		list:  list.New[catalog.Track](ui.ScrollMargin),
		empty: "No tracks",
	}
}

// SetEmptyText sets the message shown when there are no tracks.
func (m *Model) SetEmptyText(s string) { m.empty = s }

// SetTracks replaces the tracks and moves the cursor to the top.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.list.SetItems(tracks)
	m.list.Reset()
}

// Tracks returns the displayed tracks.
func (m Model) Tracks() []catalog.Track { return m.list.Items() }

// Len returns the number of tracks.
func (m Model) Len() int { return m.list.Len() }

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int { return m.list.SelectedIndex() }

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) { return m.list.Selected() }

// SetSize sets the table dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetHeight(m.BodyHeight(headerRows))
}

// PlayAll plays every track from the first.
func (m Model) PlayAll() {
	if m.list.Len() > 0 {
		m.store.PlayContext(m.list.Items(), 0)
	}
}

// Update handles navigation, enter (play from the cursor) and add to queue.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(ui.KeyMsg)
	if !ok {
		return m, nil
	}
	if km.Action == keymap.ActionPlayAll {
		m.PlayAll()
		return m, nil
	}

	res := m.list.Update(km.Action)
	switch res.Action {
	case list.ActionEnter:
		m.store.PlayContext(m.list.Items(), res.Index)
	case list.ActionAdd:
		t := m.list.Items()[res.Index]
		m.store.AddToQueue(t)
		return m, action.Cmd("tracklist", action.Notify{Text: "Added to queue: " + render.Sanitize(t.Title)})
	}
	return m, nil
}

// View renders the header and visible rows.
func (m Model) View() string {
	width := m.Width()
	if width <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()
	if m.list.Len() == 0 {
		return render.FitLines(s.Muted.Render(m.empty), width, m.Height())
	}

	cols := m.columns()
	lines := []string{
		s.Subtle.Render(render.Columns(
			render.Column{Text: "#", Width: indexWidth, Right: true},
			render.Column{Text: "Title", Width: cols.title},
			render.Column{Text: "Artist", Width: cols.artist},
			render.Column{Text: "Album", Width: cols.album},
			render.Column{Text: "⏱", Width: durationWidth, Right: true},
		)),
		s.Subtle.Render(render.Separator(width)),
	}

	ps := m.store.State()
	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(items[i], i, cols, ps))
	}
	return render.FitLines(strings.Join(lines, "\n"), width, m.Height())
}

type columnWidths struct {
	title, artist, album int
}

// columns splits the flexible width between title, artist and album.
func (m Model) columns() columnWidths {
	// separators between the five columns
	flex := max(m.Width()-indexWidth-durationWidth-4, 0)
	if m.Width() < minAlbumWidth {
		title := flex * 3 / 5
		return columnWidths{title: title, artist: max(flex-title-1, 0)}
	}
	title := flex * 2 / 5
	artist := flex * 3 / 10
	return columnWidths{title: title, artist: artist, album: max(flex-title-artist-1, 0)}
}

func (m Model) renderRow(t catalog.Track, i int, cols columnWidths, ps playback.State) string {
	s := styles.T().S()
	current := ps.IsCurrent(t.ID)

	index := strconv.Itoa(i + 1)
	if current {
		index = icons.Play()
		if !ps.Playing {
			index = icons.Pause()
		}
	}

	titleStyle := s.Base
	if current {
		titleStyle = s.Playing
	}
	title := titleStyle.Render(render.Sanitize(t.Title))
	if t.Explicit {
		title += " " + s.Explicit.Render(icons.Explicit())
	}

	row := render.Columns(
		render.Column{Text: s.Subtle.Render(index), Width: indexWidth, Right: true},
		render.Column{Text: title, Width: cols.title},
		render.Column{Text: s.Muted.Render(render.Sanitize(t.Artist)), Width: cols.artist},
		render.Column{Text: s.Muted.Render(render.Sanitize(t.Album)), Width: cols.album},
		render.Column{Text: s.Muted.Render(catalog.FormatClock(t.Duration)), Width: durationWidth, Right: true},
	)

	if m.IsFocused() && i == m.list.SelectedIndex() {
		// plain text so the highlight spans the whole row
		return s.Cursor.Width(m.Width()).Render(ansi.Strip(row))
	}
	return row
}

// Package search implements the search page: a query input, a browse grid
// while the query is empty and tabbed results otherwise.
package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/card"
	"github.com/llehouerou/wavify/internal/ui/layout"
	"github.com/llehouerou/wavify/internal/ui/list"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

const source = "search"

// Placeholder is shown in the empty query input.
const Placeholder = "What do you want to listen to?"

// allTabSongs is how many songs the All tab lists.
const allTabSongs = 4

// Tab is a results tab.
type Tab int

const (
	TabAll Tab = iota
	TabSongs
	TabArtists
	TabAlbums
	TabPlaylists
	tabCount
)

var tabNames = [tabCount]string{"All", "Songs", "Artists", "Albums", "Playlists"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

type kind int

const (
	kindTrack kind = iota
	kindArtist
	kindAlbum
	kindPlaylist
)

var kindLabels = map[kind]string{
	kindTrack:    "Song",
	kindArtist:   "Artist",
	kindAlbum:    "Album",
	kindPlaylist: "Playlist",
}

type item struct {
	kind     kind
	track    catalog.Track
	artist   catalog.Artist
	album    catalog.Album
	playlist catalog.Playlist
}

// Model is the search page.
type Model struct {
	ui.Base
	catalog    *catalog.Catalog
	store      *playback.Store
	input      textinput.Model
	editing    bool
	tab        Tab
	results    catalog.Results
	items      list.Model[item]
	categories list.Model[catalog.Category]
}

// New creates the search page. It panics if store is nil.
func New(c *catalog.Catalog, store *playback.Store) Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = icons.Search() + "› "
	ti.CharLimit = 100

	m := Model{
		catalog:    c,
		store:      playback.Must(store),
		input:      ti,
		items:      list.New[item](ui.ScrollMargin),
		categories: list.NewGrid[catalog.Category](0, 1),
	}
	m.categories.SetItems(c.Categories())
	return m
}

// Query returns the current query.
func (m Model) Query() string { return m.input.Value() }

// Tab returns the active results tab.
func (m Model) Tab() Tab { return m.tab }

// Results returns the current matches.
func (m Model) Results() catalog.Results { return m.results }

// Capturing reports whether keys go to the query input.
func (m Model) Capturing() bool { return m.editing }

// Focus starts editing the query.
func (m *Model) Focus() tea.Cmd {
	m.editing = true
	return m.input.Focus()
}

// Blur stops editing the query.
func (m *Model) Blur() {
	m.editing = false
	m.input.Blur()
}

// SetQuery replaces the query and reruns the search.
func (m *Model) SetQuery(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
	m.runSearch()
}

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
	m.items.SetHeight(m.BodyHeight(m.overhead()))
	m.categories.SetCols(layout.GridColumns(width, ui.CardWidth, 2))
	m.categories.SetHeight(m.BodyHeight(m.overhead()) / ui.CardHeight)
}

// overhead is the input, tabs or heading line and a blank line.
func (m Model) overhead() int {
	if m.tab == TabAll && len(m.results.Tracks) > 0 {
		return 5 // plus the top result and its blank line
	}
	return 3
}

func (m *Model) runSearch() {
	m.results = m.catalog.Search(m.input.Value())
	m.refresh()
}

// refresh rebuilds the list for the active tab.
func (m *Model) refresh() {
	r := m.results
	var items []item
	tracks := r.Tracks
	if m.tab == TabAll {
		tracks = tracks[:min(len(tracks), allTabSongs)]
	}
	if m.tab == TabAll || m.tab == TabSongs {
		for _, t := range tracks {
			items = append(items, item{kind: kindTrack, track: t})
		}
	}
	if m.tab == TabAll || m.tab == TabArtists {
		for _, a := range r.Artists {
			items = append(items, item{kind: kindArtist, artist: a})
		}
	}
	if m.tab == TabAll || m.tab == TabAlbums {
		for _, a := range r.Albums {
			items = append(items, item{kind: kindAlbum, album: a})
		}
	}
	if m.tab == TabAll || m.tab == TabPlaylists {
		for _, p := range r.Playlists {
			items = append(items, item{kind: kindPlaylist, playlist: p})
		}
	}
	m.items.SetItems(items)
	m.items.Reset()
	m.items.SetHeight(m.BodyHeight(m.overhead()))
}

// Update handles query editing, tab switching and result activation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(ui.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.editing {
		return m.updateInput(km)
	}

	switch km.Action {
	case keymap.ActionFilter:
		return m, m.Focus()
	case keymap.ActionNextTab:
		m.tab = (m.tab + 1) % tabCount
		m.refresh()
		return m, nil
	case keymap.ActionPrevTab:
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.refresh()
		return m, nil
	}

	if m.input.Value() == "" {
		return m.updateBrowse(km.Action)
	}
	return m.updateResults(km.Action)
}

func (m Model) updateInput(km ui.KeyMsg) (Model, tea.Cmd) {
	switch km.Key.String() {
	case "esc", "enter", "tab":
		m.Blur()
		return m, nil
	case "down":
		if m.items.Len() > 0 {
			m.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km.Key)
	if m.input.Value() != before {
		m.runSearch()
	}
	return m, cmd
}

func (m Model) updateBrowse(a keymap.Action) (Model, tea.Cmd) {
	res := m.categories.Update(a)
	if res.Action == list.ActionEnter {
		cat := m.categories.Items()[res.Index]
		m.SetQuery(cat.Title)
	}
	return m, nil
}

func (m Model) updateResults(a keymap.Action) (Model, tea.Cmd) {
	res := m.items.Update(a)
	switch res.Action {
	case list.ActionEnter:
		return m, m.activate(m.items.Items()[res.Index])
	case list.ActionAdd:
		it := m.items.Items()[res.Index]
		if it.kind == kindTrack {
			m.store.AddToQueue(it.track)
			return m, action.Cmd(source, action.Notify{Text: "Added to queue: " + render.Sanitize(it.track.Title)})
		}
	}
	if a == keymap.ActionPlayAll && len(m.results.Tracks) > 0 {
		m.store.PlayContext(m.results.Tracks, 0)
	}
	return m, nil
}

// activate plays a song from the matching songs or opens the entity page.
func (m Model) activate(it item) tea.Cmd {
	switch it.kind {
	case kindTrack:
		for i, t := range m.results.Tracks {
			if t.ID == it.track.ID {
				m.store.PlayContext(m.results.Tracks, i)
				break
			}
		}
	case kindArtist:
		return action.Cmd(source, action.OpenArtist{ID: it.artist.ID})
	case kindAlbum:
		return action.Cmd(source, action.OpenAlbum{ID: it.album.ID})
	case kindPlaylist:
		return action.Cmd(source, action.OpenPlaylist{ID: it.playlist.ID})
	}
	return nil
}

// View renders the page.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	lines := []string{m.input.View()}

	switch {
	case m.input.Value() == "":
		lines = append(lines, styles.T().S().Title.Render("Browse all"), "")
		lines = append(lines, m.renderCategories())
	case m.results.Empty():
		lines = append(lines, "", "")
		lines = append(lines, m.renderNoResults()...)
	default:
		lines = append(lines, m.renderTabs(), "")
		lines = append(lines, m.renderResults()...)
	}
	return render.FitLines(strings.Join(lines, "\n"), m.Width(), m.Height())
}

func (m Model) renderCategories() string {
	cats := m.categories.Items()
	cols := m.categories.Cols()
	start, end := m.categories.VisibleRange()
	var rows []string
	for i := start; i < end; i += cols {
		var cards []string
		for j := i; j < min(i+cols, end); j++ {
			c := cats[j]
			cards = append(cards, card.Render(card.Card{
				Title:  c.Title,
				Accent: c.Color,
			}, ui.CardWidth, m.IsFocused() && !m.editing && j == m.categories.SelectedIndex()))
		}
		rows = append(rows, card.Row(cards, 2))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderNoResults() []string {
	s := styles.T().S()
	return []string{
		s.Title.Render(fmt.Sprintf("No results found for %q", render.Sanitize(m.input.Value()))),
		s.Muted.Render("Please make sure your words are spelled correctly, or use fewer or different keywords."),
	}
}

func (m Model) renderTabs() string {
	s := styles.T().S()
	counts := [tabCount]int{
		-1,
		len(m.results.Tracks),
		len(m.results.Artists),
		len(m.results.Albums),
		len(m.results.Playlists),
	}
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		label := t.String()
		if counts[t] >= 0 {
			label = fmt.Sprintf("%s (%d)", label, counts[t])
		}
		if t == m.tab {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(styles.T().BgBase).
				Background(styles.T().FgBase).
				Padding(0, 1).
				Render(label))
		} else {
			parts = append(parts, s.Muted.Padding(0, 1).Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderResults() []string {
	s := styles.T().S()
	var lines []string
	if m.tab == TabAll && len(m.results.Tracks) > 0 {
		top := m.results.Tracks[0]
		lines = append(lines,
			s.Subtle.Render("Top result  ")+s.Title.Render(render.Sanitize(top.Title))+
				s.Muted.Render(" by "+render.Sanitize(top.Artist)+" • Song"),
			"")
	}
	if m.items.Len() == 0 {
		return append(lines, s.Muted.Render("Nothing in this tab"))
	}

	ps := m.store.State()
	items := m.items.Items()
	start, end := m.items.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(items[i], i, ps))
	}
	return lines
}

func (m Model) renderItem(it item, i int, ps playback.State) string {
	s := styles.T().S()
	var name, detail string
	nameStyle := s.Base
	switch it.kind {
	case kindTrack:
		name = icons.FormatTrack(it.track.Title)
		detail = it.track.Artist + " · " + catalog.FormatClock(it.track.Duration)
		if ps.IsCurrent(it.track.ID) {
			nameStyle = s.Playing
		}
		if it.track.Explicit {
			name += " " + icons.Explicit()
		}
	case kindArtist:
		name = icons.FormatArtist(it.artist.Name)
		if it.artist.Verified {
			name += " " + icons.Verified()
		}
		detail = catalog.FormatFollowers(it.artist.Followers) + " followers"
	case kindAlbum:
		name = icons.FormatAlbum(it.album.Title)
		detail = it.album.Artist
		if y := it.album.Year(); y > 0 {
			detail = fmt.Sprintf("%d · %s", y, it.album.Artist)
		}
	case kindPlaylist:
		name = icons.FormatPlaylist(it.playlist.Name)
		detail = "By " + it.playlist.Owner
	}

	labelWidth := 9
	flex := max(m.Width()-labelWidth-2, 0)
	row := render.Columns(
		render.Column{Text: s.Subtle.Render(kindLabels[it.kind]), Width: labelWidth},
		render.Column{Text: nameStyle.Render(render.Sanitize(name)), Width: flex / 2},
		render.Column{Text: s.Muted.Render(render.Sanitize(detail)), Width: flex - flex/2},
	)
	if m.IsFocused() && !m.editing && i == m.items.SelectedIndex() {
		return s.Cursor.Width(m.Width()).Render(ansi.Strip(row))
	}
	return row
}

// Package library implements "Your Library": the listener's playlists with
// filtering, sorting and a grid or list layout.
package library

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

const source = "library"

// Placeholder is shown in the empty filter input.
const Placeholder = "Search in Your Library"

// Layout is how playlists are arranged.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutList
)

// Tab is a library section.
type Tab int

const (
	TabPlaylists Tab = iota
	TabArtists
	TabAlbums
	TabDownloaded
	tabCount
)

var tabNames = [tabCount]string{"Playlists", "Artists", "Albums", "Downloaded"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// emptyStates are the headline and hint of tabs with nothing saved.
var emptyStates = map[Tab][2]string{
	TabArtists:    {"Follow your first artist", "Follow artists you love to see what they're up to."},
	TabAlbums:     {"Save your first album", "Save albums to access them quickly and easily."},
	TabDownloaded: {"Download music for offline listening", "You haven't downloaded any music yet."},
}

// header is the title, subtitle, filter line and tab line with gaps.
const header = 6

// Model is the library page.
type Model struct {
	ui.Base
	catalog *catalog.Catalog
	store   *playback.Store
	input   textinput.Model
	editing bool
	sort    catalog.SortKey
	layout  Layout
	tab     Tab
	items   list.Model[catalog.Playlist]
}

// New creates the library page. It panics if store is nil.
func New(c *catalog.Catalog, store *playback.Store) Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = icons.Search() + "› "
	ti.CharLimit = 100

	m := Model{
		catalog: c,
		store:   playback.Must(store),
		input:   ti,
		items:   list.NewGrid[catalog.Playlist](0, 1),
	}
	m.refresh()
	return m
}

// Capturing reports whether keys go to the filter input.
func (m Model) Capturing() bool { return m.editing }

// Focus starts editing the filter.
func (m *Model) Focus() tea.Cmd {
	m.editing = true
	return m.input.Focus()
}

// Blur stops editing the filter.
func (m *Model) Blur() {
	m.editing = false
	m.input.Blur()
}

// Filter returns the filter text.
func (m Model) Filter() string { return m.input.Value() }

// Sort returns the active sort key.
func (m Model) Sort() catalog.SortKey { return m.sort }

// Layout returns the active layout.
func (m Model) Layout() Layout { return m.layout }

// Tab returns the active tab.
func (m Model) Tab() Tab { return m.tab }

// Playlists returns the entries shown in the playlists tab, in order.
func (m Model) Playlists() []catalog.Playlist { return m.items.Items() }

// Refresh reloads the playlists, keeping the filter and sort.
func (m *Model) Refresh() { m.refresh() }

func (m *Model) refresh() {
	q := m.input.Value()
	playlists := catalog.SortPlaylists(catalog.FilterPlaylists(m.catalog.UserPlaylists(), q), m.sort)

	liked := m.catalog.LikedPlaylist()
	if q == "" || strings.Contains(strings.ToLower(liked.Name), strings.ToLower(q)) {
		playlists = append([]catalog.Playlist{liked}, playlists...)
	}
	m.items.SetItems(playlists)
	m.items.SetHeight(m.bodyRows())
}

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width/2, 10)
	m.applyLayout()
}

func (m *Model) applyLayout() {
	if m.layout == LayoutGrid {
		m.items.SetCols(layout.GridColumns(m.Width(), ui.CardWidth, 2))
	} else {
		m.items.SetCols(1)
	}
	m.items.SetHeight(m.bodyRows())
}

// bodyRows is the number of grid rows or list lines that fit.
func (m Model) bodyRows() int {
	h := m.BodyHeight(header)
	if m.layout == LayoutGrid {
		return h / ui.CardHeight
	}
	return h
}

// Update handles filter editing, sort and layout toggles and activation.
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
	case keymap.ActionCycleSort:
		m.sort = m.sort.Next()
		m.refresh()
		return m, nil
	case keymap.ActionToggleLayout:
		if m.layout == LayoutGrid {
			m.layout = LayoutList
		} else {
			m.layout = LayoutGrid
		}
		m.applyLayout()
		return m, nil
	case keymap.ActionNextTab:
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case keymap.ActionPrevTab:
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	}

	if m.tab != TabPlaylists {
		return m, nil
	}
	if km.Action == keymap.ActionPlayAll {
		if p, ok := m.items.Selected(); ok && len(p.Tracks) > 0 {
			m.store.PlayContext(p.Tracks, 0)
		}
		return m, nil
	}
	if res := m.items.Update(km.Action); res.Action == list.ActionEnter {
		p := m.items.Items()[res.Index]
		return m, action.Cmd(source, action.OpenPlaylist{ID: p.ID})
	}
	return m, nil
}

func (m Model) updateInput(km ui.KeyMsg) (Model, tea.Cmd) {
	switch km.Key.String() {
	case "esc", "enter", "tab", "down":
		m.Blur()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km.Key)
	if m.input.Value() != before {
		m.refresh()
		m.items.Reset()
	}
	return m, cmd
}

// View renders the page.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()
	controls := render.Row(
		m.input.View(),
		s.Subtle.Render("Sort by: ")+s.Base.Render(m.sort.String()),
		m.Width(),
	)
	lines := []string{
		styles.HeaderGradient("Your Library", string(styles.T().Secondary)),
		s.Muted.Render("Manage your saved music and playlists"),
		"",
		controls,
		m.renderTabs(),
		"",
	}

	if m.tab == TabPlaylists {
		lines = append(lines, m.renderPlaylists()...)
	} else {
		e := emptyStates[m.tab]
		lines = append(lines, "", s.Title.Render(e[0]), s.Muted.Render(e[1]))
	}
	return render.FitLines(strings.Join(lines, "\n"), m.Width(), m.Height())
}

func (m Model) renderTabs() string {
	s := styles.T().S()
	counts := [tabCount]int{len(m.catalog.UserPlaylists()), 0, 0, 0}
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		label := fmt.Sprintf("%s (%d)", t, counts[t])
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

func (m Model) renderPlaylists() []string {
	s := styles.T().S()
	if m.items.Len() == 0 {
		q := render.Sanitize(m.input.Value())
		if q != "" {
			return []string{s.Title.Render(fmt.Sprintf("No playlists found for %q", q)),
				s.Muted.Render("Try searching with different keywords.")}
		}
		return []string{s.Title.Render("Create your first playlist"),
			s.Muted.Render("It's easy, we'll help you")}
	}

	items := m.items.Items()
	start, end := m.items.VisibleRange()
	selected := func(i int) bool {
		return m.IsFocused() && !m.editing && i == m.items.SelectedIndex()
	}

	if m.layout == LayoutList {
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			p := items[i]
			row := render.Row(
				s.Base.Render(icons.FormatPlaylist(render.Sanitize(p.Name))),
				s.Muted.Render(fmt.Sprintf("%d songs • by %s", p.TrackCount, render.Sanitize(p.Owner))),
				m.Width(),
			)
			if selected(i) {
				row = s.Cursor.Width(m.Width()).Render(ansi.Strip(row))
			}
			lines = append(lines, row)
		}
		return lines
	}

	cols := m.items.Cols()
	var lines []string
	for i := start; i < end; i += cols {
		var cards []string
		for j := i; j < min(i+cols, end); j++ {
			p := items[j]
			c := card.Card{
				Title:    icons.FormatPlaylist(p.Name),
				Subtitle: "By " + p.Owner,
				Meta:     catalog.FormatCount(p.TrackCount) + " songs",
			}
			if p.ID == catalog.LikedSongsID {
				c.Title = icons.Liked() + " " + p.Name
				c.Accent = string(styles.T().Secondary)
			}
			cards = append(cards, card.Render(c, ui.CardWidth, selected(j)))
		}
		lines = append(lines, card.Row(cards, 2))
	}
	return lines
}

// Package sidebar renders the left navigation column: the three top-level
// pages followed by the listener's playlists.
package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/headerbar"
	"github.com/llehouerou/wavify/internal/ui/list"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

const source = "sidebar"

type entry struct {
	label      string
	page       string // set for navigation entries
	playlistID string // set for playlist entries
}

// Model is the sidebar.
type Model struct {
	ui.Base
	entries      []entry
	list         list.Model[entry]
	navCount     int
	activePage   string
	activeListID string
}

// New builds the sidebar from the listener's playlists.
func New(c *catalog.Catalog) Model {
	nav := []entry{
		{label: icons.Home() + "Home", page: headerbar.ModeHome},
		{label: icons.Search() + "Search", page: headerbar.ModeSearch},
		{label: icons.Library() + "Your Library", page: headerbar.ModeLibrary},
	}
	entries := append([]entry{}, nav...)
	entries = append(entries, entry{label: icons.Liked() + " Liked Songs", playlistID: catalog.LikedSongsID})
	for _, p := range c.UserPlaylists() {
		entries = append(entries, entry{label: icons.FormatPlaylist(p.Name), playlistID: p.ID})
	}

	m := Model{
		entries:    entries,
		list:       list.New[entry](1),
		navCount:   len(nav),
		activePage: headerbar.ModeHome,
	}
	m.list.SetItems(entries)
	return m
}

// SetActive marks the current page, and the open playlist when page is
// headerbar.ModePlaylist.
func (m *Model) SetActive(page, playlistID string) {
	m.activePage = page
	m.activeListID = ""
	if page == headerbar.ModePlaylist {
		m.activeListID = playlistID
	}
}

// SetSize sets the sidebar dimensions, border included.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	// border, title, and the two separators
	m.list.SetHeight(max(height-5, 0))
}

// Update moves the selection and opens the selected entry on enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(ui.KeyMsg)
	if !ok {
		return m, nil
	}
	res := m.list.Update(km.Action)
	if res.Action != list.ActionEnter {
		return m, nil
	}
	e := m.entries[res.Index]
	if e.page != "" {
		return m, action.Cmd(source, action.ShowPage{Page: e.page})
	}
	return m, action.Cmd(source, action.OpenPlaylist{ID: e.playlistID})
}

// View renders the sidebar panel.
func (m Model) View() string {
	if m.Width() <= 2 || m.Height() <= 2 {
		return ""
	}
	inner := m.Width() - 2
	s := styles.T().S()

	lines := []string{s.Title.Render("wavify"), s.Subtle.Render(render.Separator(inner))}
	start, end := m.list.VisibleRange()
	for i := start; i < end; i++ {
		if i == m.navCount && i > start {
			lines = append(lines, s.Subtle.Render(render.Separator(inner)))
		}
		e := m.entries[i]
		active := (e.page != "" && e.page == m.activePage) ||
			(e.playlistID != "" && e.playlistID == m.activeListID)

		label := render.TruncateEllipsis(render.Sanitize(e.label), inner)
		switch {
		case m.IsFocused() && i == m.list.SelectedIndex():
			label = s.Cursor.Width(inner).Render(ansi.Strip(label))
		case active:
			label = s.Playing.Render(label)
		case e.page != "":
			label = s.Base.Render(label)
		default:
			label = s.Muted.Render(label)
		}
		lines = append(lines, label)
	}

	body := render.FitLines(strings.Join(lines, "\n"), inner, m.Height()-2)
	return styles.PanelStyle(m.IsFocused()).Render(body)
}

package app

import (
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/headerbar"
	"github.com/llehouerou/wavify/internal/ui/layout"
	"github.com/llehouerou/wavify/internal/ui/playerbar"
)

// playerBarState snapshots the store and transport for the player bar.
func (m Model) playerBarState() playerbar.State {
	return playerbar.NewState(m.store.State(), m.Transport.Position(), m.Transport.Seeking(), m.PlayerDisplayMode)
}

// hasStatusLine reports whether an error or notification is shown.
func (m Model) hasStatusLine() bool {
	return m.ErrorMsg != "" || m.StatusMsg != ""
}

// ContentHeight returns the height of the sidebar and page area.
func (m Model) ContentHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: playerbar.Height(m.playerBarState()),
		HasStatusLine:   m.hasStatusLine(),
	})
}

// resize hands every pane its current dimensions. The content height depends
// on the player bar and the status line, so it runs after anything that can
// change them.
func (m *Model) resize() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	h := m.ContentHeight()
	pageW := layout.PageWidth(m.Width, ui.SidebarWidth)

	m.Sidebar.SetSize(layout.SidebarWidth(m.Width, ui.SidebarWidth), h)
	m.Home.SetSize(pageW, h)
	m.Search.SetSize(pageW, h)
	m.Library.SetSize(pageW, h)
	m.Playlist.SetSize(pageW, h)
	m.Help.SetSize(m.Width, m.Height)

	// the sidebar is hidden in narrow mode
	if layout.IsNarrowMode(m.Width) && m.Focus == FocusSidebar {
		m.Focus = FocusContent
		m.applyFocus()
	}
}

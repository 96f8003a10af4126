package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/ui/headerbar"
	"github.com/llehouerou/wavify/internal/ui/layout"
	"github.com/llehouerou/wavify/internal/ui/overlay"
	"github.com/llehouerou/wavify/internal/ui/playerbar"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	title := ""
	if m.ViewMode == ViewPlaylist {
		title = m.Playlist.Title()
	}
	parts := []string{headerbar.Render(string(m.ViewMode), title, m.Width)}

	content := m.pageView()
	if !layout.IsNarrowMode(m.Width) {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.Sidebar.View(), content)
	}
	parts = append(parts, render.FitLines(content, m.Width, m.ContentHeight()))

	if bar := playerbar.Render(m.playerBarState(), m.Width); bar != "" {
		parts = append(parts, bar)
	}
	if m.hasStatusLine() {
		parts = append(parts, m.renderStatusLine())
	}

	view := strings.Join(parts, "\n")
	if m.ShowHelp {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

func (m Model) pageView() string {
	switch m.ViewMode {
	case ViewSearch:
		return m.Search.View()
	case ViewLibrary:
		return m.Library.View()
	case ViewPlaylist:
		return m.Playlist.View()
	default:
		return m.Home.View()
	}
}

// renderStatusLine shows the error message, or the notification when there
// is no error.
func (m Model) renderStatusLine() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return s.Error.Render(render.TruncateEllipsis(m.ErrorMsg, m.Width))
	}
	return s.Muted.Render(render.TruncateEllipsis(m.StatusMsg, m.Width))
}

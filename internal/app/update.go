package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/errmsg"
	"github.com/llehouerou/wavify/internal/transport"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/helpbindings"
	"github.com/llehouerou/wavify/internal/ui/playlistview"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case StoreChangedMsg:
		return m.handleStoreChanged(msg)

	case StoreClosedMsg:
		m.logger.Debug("store closed")
		return m, nil

	case transport.TickMsg, transport.SeekCommitMsg:
		var cmd tea.Cmd
		m.Transport, cmd = m.Transport.Update(msg)
		return m, cmd

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.routeToPage(msg)
}

// routeToPage forwards a message to the visible page, for the text input
// blink and other page-internal commands.
func (m Model) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ViewMode {
	case ViewHome:
		m.Home, cmd = m.Home.Update(msg)
	case ViewSearch:
		m.Search, cmd = m.Search.Update(msg)
	case ViewLibrary:
		m.Library, cmd = m.Library.Update(msg)
	case ViewPlaylist:
		m.Playlist, cmd = m.Playlist.Update(msg)
	}
	m.resize()
	return m, cmd
}

// routeToFocused forwards a resolved key to the sidebar or the page.
func (m Model) routeToFocused(km ui.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Focus == FocusSidebar {
		var cmd tea.Cmd
		m.Sidebar, cmd = m.Sidebar.Update(km)
		return m, cmd
	}
	return m.routeToPage(km)
}

// handleAction carries out a request emitted by a page.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case action.ShowPage:
		cmd := m.showPage(ViewMode(a.Page))
		return m, cmd

	case action.OpenPlaylist:
		m.openCollection(playlistview.KindPlaylist, a.ID)
	case action.OpenAlbum:
		m.openCollection(playlistview.KindAlbum, a.ID)
	case action.OpenArtist:
		m.openCollection(playlistview.KindArtist, a.ID)

	case action.OpenSearch:
		cmd := m.showPage(ViewSearch)
		m.Search.Blur()
		m.Search.SetQuery(a.Query)
		return m, cmd

	case action.Notify:
		m.StatusMsg = a.Text

	case helpbindings.Close:
		m.ShowHelp = false

	default:
		m.logger.Warn("unhandled page action", "source", msg.Source, "type", msg.Action.ActionType())
	}
	m.resize()
	return m, nil
}

// openCollection shows a playlist, album or artist page. Unknown ids still
// open the page, which renders its not-found state.
func (m *Model) openCollection(kind playlistview.Kind, id string) {
	if m.ViewMode != ViewPlaylist || m.Playlist.Kind() != kind || m.Playlist.ID() != id {
		m.pushHistory()
	}
	if err := m.Playlist.Open(kind, id); err != nil {
		m.ErrorMsg = errmsg.FormatWith(openOp(kind), id, err)
		m.logger.Warn("open failed", "kind", kind.String(), "id", id, "error", err)
	}
	m.setView(ViewPlaylist)
}

func openOp(kind playlistview.Kind) errmsg.Op {
	switch kind {
	case playlistview.KindAlbum:
		return errmsg.OpAlbumOpen
	case playlistview.KindArtist:
		return errmsg.OpArtistOpen
	default:
		return errmsg.OpPlaylistOpen
	}
}

// showPage switches to a top-level page, remembering the current one.
func (m *Model) showPage(v ViewMode) tea.Cmd {
	if v == m.ViewMode {
		m.Focus = FocusContent
		m.applyFocus()
		return nil
	}
	m.pushHistory()
	return m.setView(v)
}

func (m *Model) pushHistory() {
	m.history = append(m.history, visit{mode: m.ViewMode, kind: m.Playlist.Kind(), id: m.Playlist.ID()})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// goBack returns to the previous page. It reports false when there is none.
func (m *Model) goBack() bool {
	if len(m.history) == 0 {
		return false
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	if prev.mode == ViewPlaylist {
		// errors were reported when the page was first opened
		_ = m.Playlist.Open(prev.kind, prev.id)
	}
	m.setView(prev.mode)
	return true
}

// setView makes v the visible page and gives it the focus. Entering the
// search page focuses its input when the query is empty.
func (m *Model) setView(v ViewMode) tea.Cmd {
	if m.ViewMode != v {
		m.logger.Debug("page", "from", string(m.ViewMode), "to", string(v))
	}
	m.Search.Blur()
	m.Library.Blur()
	m.ViewMode = v
	m.Focus = FocusContent
	m.applyFocus()
	m.resize()
	if v == ViewSearch && m.Search.Query() == "" {
		return m.Search.Focus()
	}
	return nil
}

// capturing reports whether the visible page is editing text.
func (m Model) capturing() bool {
	if m.Focus != FocusContent {
		return false
	}
	switch m.ViewMode {
	case ViewSearch:
		return m.Search.Capturing()
	case ViewLibrary:
		return m.Library.Capturing()
	}
	return false
}

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/transport"
	"github.com/llehouerou/wavify/internal/ui"
)

// volumeStep is the volume change of one +/- press.
const volumeStep = 10

// handleKeyMsg routes a key press. Order matters: the help overlay and an
// editing text input see raw keys first, then an active seek gesture claims
// enter and esc, then global bindings, then the focused pane.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	m.StatusMsg = ""
	m.ErrorMsg = ""

	if m.ShowHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	km := ui.KeyMsg{Key: msg, Action: m.resolver.Resolve(key)}

	if m.capturing() {
		return m.routeToPage(km)
	}

	if m.Transport.Seeking() {
		switch key {
		case "enter":
			cmd := m.Transport.EndSeek()
			return m, cmd
		case "esc":
			cmd := m.Transport.CancelSeek()
			return m, cmd
		}
	}

	if handled, cmd := m.handlePlaybackKey(km.Action); handled {
		return m, cmd
	}
	if handled, cmd := m.handleGlobalKey(km.Action); handled {
		return m, cmd
	}
	return m.routeToFocused(km)
}

// handlePlaybackKey handles the transport bindings, available on every page.
func (m *Model) handlePlaybackKey(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionPlayPause:
		m.store.TogglePlay()
	case keymap.ActionNextTrack:
		m.store.NextTrack()
	case keymap.ActionPrevTrack:
		m.store.PreviousTrack()
	case keymap.ActionSeekBack:
		return true, m.Transport.SeekBy(-transport.SeekStep)
	case keymap.ActionSeekForward:
		return true, m.Transport.SeekBy(transport.SeekStep)
	case keymap.ActionScrubBack:
		return true, m.Transport.MoveSeek(-transport.SeekStep)
	case keymap.ActionScrubForward:
		return true, m.Transport.MoveSeek(transport.SeekStep)
	case keymap.ActionVolumeUp:
		m.store.SetVolume(m.store.State().Volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.store.SetVolume(m.store.State().Volume - volumeStep)
	case keymap.ActionToggleMute:
		m.store.ToggleMute()
	case keymap.ActionToggleShuffle:
		m.store.ToggleShuffle()
	case keymap.ActionCycleRepeat:
		mode := m.store.CycleRepeatMode()
		m.StatusMsg = "Repeat: " + mode.String()
	case keymap.ActionPlayerDisplay:
		m.PlayerDisplayMode = m.PlayerDisplayMode.Toggle()
		m.resize()
	default:
		return false, nil
	}
	return true, nil
}

// handleGlobalKey handles page switching, focus, help and quit.
func (m *Model) handleGlobalKey(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		return true, tea.Quit
	case keymap.ActionHelp:
		m.openHelp()
		return true, nil
	case keymap.ActionSwitchFocus:
		if m.Focus == FocusContent {
			m.Focus = FocusSidebar
		} else {
			m.Focus = FocusContent
		}
		m.applyFocus()
		return true, nil
	case keymap.ActionViewHome:
		return true, m.showPage(ViewHome)
	case keymap.ActionViewSearch:
		return true, m.showPage(ViewSearch)
	case keymap.ActionViewLibrary:
		return true, m.showPage(ViewLibrary)
	case keymap.ActionBack:
		if m.Focus == FocusSidebar {
			m.Focus = FocusContent
			m.applyFocus()
			return true, nil
		}
		return m.goBack(), nil
	case keymap.ActionFilter:
		if m.ViewMode == ViewHome || m.ViewMode == ViewPlaylist {
			cmd := m.showPage(ViewSearch)
			return true, tea.Batch(cmd, m.Search.Focus())
		}
	}
	return false, nil
}

// openHelp shows the binding overlay for the contexts that apply to the
// visible page.
func (m *Model) openHelp() {
	contexts := []string{"global", "playback", "navigation"}
	switch m.ViewMode {
	case ViewSearch:
		contexts = append(contexts, "search", "tracklist")
	case ViewLibrary:
		contexts = append(contexts, "library", "tracklist")
	case ViewHome, ViewPlaylist:
		contexts = append(contexts, "tracklist")
	}
	m.Help.SetContexts(contexts)
	m.ShowHelp = true
	m.resize()
}

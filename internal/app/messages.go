package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/playback"
)

// StoreChangedMsg carries one store change into the update loop.
type StoreChangedMsg playback.Change

// StoreClosedMsg is sent once when the store is closed.
type StoreClosedMsg struct{}

// WatchStore waits for the next store change. The handler re-issues it after
// every change, so exactly one wait is pending at a time.
func (m Model) WatchStore() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case c := <-sub.Changed:
			return StoreChangedMsg(c)
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}

// handleStoreChanged keeps the transport timer in step with the store.
func (m Model) handleStoreChanged(msg StoreChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.TrackChanged {
		cmd = m.Transport.Restart()
		if t := msg.Current.Current; t != nil {
			m.logger.Debug("track loaded", "id", t.ID, "title", t.Title)
		}
	} else {
		cmd = m.Transport.Sync()
	}
	m.resize()
	return m, tea.Batch(cmd, m.WatchStore())
}

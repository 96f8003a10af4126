// Package transport drives the playback position. Nothing is decoded, so the
// position advances on a one-second display timer while the store reports
// playing and no seek gesture is active.
package transport

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/playback"
)

const (
	// TickInterval is the position resolution.
	TickInterval = time.Second
	// SeekCommitDelay is how long a seek gesture waits for another move
	// before it is committed.
	SeekCommitDelay = 600 * time.Millisecond
	// SeekStep is the distance of a single seek key press.
	SeekStep = 5 * time.Second
)

// TickMsg advances the position by one TickInterval. Ticks from an older
// generation are ignored.
type TickMsg struct{ Gen int }

// SeekCommitMsg commits a seek gesture that has been idle for SeekCommitDelay.
type SeekCommitMsg struct{ Gen int }

// Model is the progress driver.
type Model struct {
	store *playback.Store

	ticking bool
	gen     int

	seeking bool
	seekPos time.Duration
	seekGen int
}

// New creates a driver for store.
func New(store *playback.Store) Model {
	return Model{store: playback.Must(store)}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

func seekCommitCmd(gen int) tea.Cmd {
	return tea.Tick(SeekCommitDelay, func(time.Time) tea.Msg {
		return SeekCommitMsg{Gen: gen}
	})
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool { return m.ticking }

// Seeking reports whether a seek gesture is in progress.
func (m Model) Seeking() bool { return m.seeking }

// Position returns the position to display: the gesture position while
// seeking, the store position otherwise.
func (m Model) Position() time.Duration {
	if m.seeking {
		return m.seekPos
	}
	return m.store.State().CurrentTime
}

// Sync starts the timer when it should run and is not running, and cancels
// it when it should not run. It is a no-op otherwise.
func (m *Model) Sync() tea.Cmd {
	st := m.store.State()
	want := st.HasTrack() && st.Playing && !m.seeking
	switch {
	case want && !m.ticking:
		m.gen++
		m.ticking = true
		return tickCmd(m.gen)
	case !want && m.ticking:
		m.cancel()
	}
	return nil
}

// Restart cancels any pending tick and seek gesture, then syncs. Called when
// the loaded track changes.
func (m *Model) Restart() tea.Cmd {
	m.cancel()
	m.seeking = false
	m.seekGen++
	return m.Sync()
}

func (m *Model) cancel() {
	m.gen++
	m.ticking = false
}

// Update handles TickMsg and SeekCommitMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Gen != m.gen || !m.ticking {
			return m, nil
		}
		m.ticking = false
		m.advance()
		return m, m.Sync()

	case SeekCommitMsg:
		if msg.Gen != m.seekGen || !m.seeking {
			return m, nil
		}
		return m, m.EndSeek()
	}
	return m, nil
}

// advance moves the position forward one tick and handles the end of the
// track.
func (m *Model) advance() {
	st := m.store.State()
	if !st.HasTrack() || !st.Playing {
		return
	}
	next := st.CurrentTime + TickInterval
	if st.Duration <= 0 || next < st.Duration {
		m.store.SetCurrentTime(next)
		return
	}

	switch {
	case st.Repeat == playback.RepeatTrack:
		m.store.SetCurrentTime(0)
	case len(st.Queue) > 0:
		m.store.NextTrack()
	case st.Repeat == playback.RepeatContext && len(st.Previous) > 0:
		m.store.Dispatch(playback.RestartContext{})
	case st.Repeat == playback.RepeatContext:
		m.store.SetCurrentTime(0)
	default:
		m.store.SetCurrentTime(st.Duration)
		m.store.Pause()
	}
}

// BeginSeek starts a seek gesture at the current position and stops the
// timer until the gesture ends.
func (m *Model) BeginSeek() {
	st := m.store.State()
	if !st.HasTrack() || m.seeking {
		return
	}
	m.seeking = true
	m.seekPos = st.CurrentTime
	m.cancel()
}

// MoveSeek moves the gesture position by delta, clamped to the track. The
// store is not touched until the gesture is committed. The returned command
// commits the gesture after SeekCommitDelay without further moves.
func (m *Model) MoveSeek(delta time.Duration) tea.Cmd {
	m.BeginSeek()
	if !m.seeking {
		return nil
	}
	st := m.store.State()
	pos := max(m.seekPos+delta, 0)
	if st.Duration > 0 {
		pos = min(pos, st.Duration)
	}
	m.seekPos = pos
	m.seekGen++
	return seekCommitCmd(m.seekGen)
}

// EndSeek commits the gesture position and resumes the timer.
func (m *Model) EndSeek() tea.Cmd {
	if !m.seeking {
		return nil
	}
	m.seeking = false
	m.seekGen++
	m.store.SetCurrentTime(m.seekPos)
	return m.Sync()
}

// CancelSeek abandons the gesture, leaving the position unchanged.
func (m *Model) CancelSeek() tea.Cmd {
	if !m.seeking {
		return nil
	}
	m.seeking = false
	m.seekGen++
	return m.Sync()
}

// SeekBy seeks relative to the current position in one step. During a
// gesture it moves the gesture position instead.
func (m *Model) SeekBy(delta time.Duration) tea.Cmd {
	if m.seeking {
		return m.MoveSeek(delta)
	}
	st := m.store.State()
	if !st.HasTrack() {
		return nil
	}
	m.store.SetCurrentTime(st.CurrentTime + delta)
	return nil
}

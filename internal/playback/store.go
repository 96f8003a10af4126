package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/wavify/internal/catalog"
)

// ErrNoStore is the panic value raised when the player is used before the
// application created its store.
var ErrNoStore = errors.New("playback: store used before it was created")

// Store owns the one mutable player State of a session. It is created once
// by the composition root and handed to every view; views never touch the
// State directly.
type Store struct {
	mu     sync.Mutex
	state  State
	logger hclog.Logger

	subsMu sync.Mutex
	subs   []*Subscription
	closed bool
}

// NewStore creates a store holding initial.
func NewStore(initial State, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		state:  initial.Clone(),
		logger: logger.Named("playback"),
	}
}

// Must returns s, panicking with ErrNoStore when s is nil.
func Must(s *Store) *Store {
	if s == nil {
		panic(ErrNoStore)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	Must(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies an action atomically and notifies subscribers.
// It returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	return s.dispatch(func(State) Action { return a })
}

// dispatch builds the action from the current state and reduces it under
// the same lock, so read-modify-write actions never lose updates.
func (s *Store) dispatch(build func(State) Action) State {
	Must(s)
	s.mu.Lock()
	prev := s.state
	a := build(prev)
	next := Reduce(prev, a)
	s.state = next
	change := Change{
		Action:       a,
		Previous:     prev.Clone(),
		Current:      next.Clone(),
		TrackChanged: loaded(prev, next),
	}
	s.mu.Unlock()

	if change.TrackChanged && next.Current != nil {
		s.logger.Debug("track loaded", "id", next.Current.ID, "title", next.Current.Title,
			"queue", len(next.Queue), "history", len(next.Previous))
	} else {
		s.logger.Trace("dispatch", "action", actionName(a), "status", next.Status().String())
	}

	s.publish(change)
	return change.Current
}

// Subscribe registers a new subscriber.
func (s *Store) Subscribe() *Subscription {
	Must(s)
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close ends every subscription. Dispatch keeps working afterwards.
func (s *Store) Close() error {
	Must(s)
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

func (s *Store) publish(c Change) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		sub.send(c)
	}
}

// PlayTrack loads t and starts playing it.
func (s *Store) PlayTrack(t catalog.Track) { s.Dispatch(PlayTrack{Track: t}) }

// PlayContext plays tracks starting at index.
func (s *Store) PlayContext(tracks []catalog.Track, index int) {
	s.Dispatch(PlayContext{Tracks: tracks, Index: index})
}

// TogglePlay flips play/pause.
func (s *Store) TogglePlay() { s.Dispatch(TogglePlay{}) }

// Pause pauses playback.
func (s *Store) Pause() { s.Dispatch(Pause{}) }

// Resume resumes playback.
func (s *Store) Resume() { s.Dispatch(Resume{}) }

// NextTrack advances to the next queued track.
func (s *Store) NextTrack() { s.Dispatch(NextTrack{}) }

// PreviousTrack goes back one track.
func (s *Store) PreviousTrack() { s.Dispatch(PreviousTrack{}) }

// SetVolume sets the volume (0-100).
func (s *Store) SetVolume(v int) { s.Dispatch(SetVolume{Volume: v}) }

// ToggleMute mutes or unmutes.
func (s *Store) ToggleMute() { s.Dispatch(ToggleMute{}) }

// SetCurrentTime seeks to t.
func (s *Store) SetCurrentTime(t time.Duration) { s.Dispatch(SetCurrentTime{Time: t}) }

// ToggleShuffle flips the shuffle flag.
func (s *Store) ToggleShuffle() { s.Dispatch(ToggleShuffle{}) }

// SetRepeatMode selects a repeat mode.
func (s *Store) SetRepeatMode(m RepeatMode) { s.Dispatch(SetRepeatMode{Mode: m}) }

// CycleRepeatMode moves to the next repeat mode and returns it.
func (s *Store) CycleRepeatMode() RepeatMode {
	Must(s)
	return s.dispatch(func(st State) Action {
		return SetRepeatMode{Mode: st.Repeat.Next()}
	}).Repeat
}

// SetQueue replaces the queue.
func (s *Store) SetQueue(tracks []catalog.Track) { s.Dispatch(SetQueue{Tracks: tracks}) }

// AddToQueue appends t to the queue.
func (s *Store) AddToQueue(t catalog.Track) { s.Dispatch(AddToQueue{Track: t}) }

func actionName(a Action) string {
	switch a.(type) {
	case PlayTrack:
		return "play_track"
	case PlayContext:
		return "play_context"
	case TogglePlay:
		return "toggle_play"
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	case SetCurrentTime:
		return "set_current_time"
	case SetDuration:
		return "set_duration"
	case SetVolume:
		return "set_volume"
	case ToggleMute:
		return "toggle_mute"
	case ToggleShuffle:
		return "toggle_shuffle"
	case SetRepeatMode:
		return "set_repeat_mode"
	case NextTrack:
		return "next_track"
	case PreviousTrack:
		return "previous_track"
	case RestartContext:
		return "restart_context"
	case SetQueue:
		return "set_queue"
	case AddToQueue:
		return "add_to_queue"
	default:
		return "unknown"
	}
}

// Package playback is the single source of truth for what is playing: the
// current track, transport flags, volume and the queue/history pair.
//
// State only changes through Reduce, a pure function from (State, Action) to
// a new State. Store wraps it for the running application.
package playback

import (
	"fmt"
	"slices"
	"time"

	"github.com/llehouerou/wavify/internal/catalog"
)

// DefaultVolume is the startup volume and the level restored when unmuting
// with no remembered volume.
const DefaultVolume = 70

// MaxVolume is the upper bound of the volume scale.
const MaxVolume = 100

// Status is the coarse playback status derived from State.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// RepeatMode defines what happens when the current track ends.
type RepeatMode int

const (
	RepeatOff     RepeatMode = iota // stop at the end of the queue
	RepeatTrack                     // replay the current track
	RepeatContext                   // loop the whole playlist or album
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "off"
	case RepeatTrack:
		return "track"
	case RepeatContext:
		return "context"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m in the player bar cycle:
// off → context → track → off.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatContext
	case RepeatContext:
		return RepeatTrack
	default:
		return RepeatOff
	}
}

// ParseRepeatMode parses "off", "track" or "context".
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch s {
	case "off", "":
		return RepeatOff, nil
	case "track":
		return RepeatTrack, nil
	case "context":
		return RepeatContext, nil
	default:
		return RepeatOff, fmt.Errorf("unknown repeat mode %q", s)
	}
}

// State is a snapshot of the player.
type State struct {
	Current     *catalog.Track
	Playing     bool
	CurrentTime time.Duration
	Duration    time.Duration
	Volume      int
	Muted       bool
	Shuffled    bool
	Repeat      RepeatMode
	Queue       []catalog.Track // head plays next
	Previous    []catalog.Track // tail is the most recently played

	// lastVolume is the last non-zero volume, restored on unmute.
	lastVolume int
}

// NewState returns the startup state: nothing loaded, the given volume.
// Out-of-range volumes fall back to DefaultVolume.
func NewState(volume int) State {
	if volume <= 0 || volume > MaxVolume {
		volume = DefaultVolume
	}
	return State{
		Volume:     volume,
		Repeat:     RepeatOff,
		Queue:      []catalog.Track{},
		Previous:   []catalog.Track{},
		lastVolume: volume,
	}
}

// Status derives the coarse status.
func (s State) Status() Status {
	switch {
	case s.Current == nil:
		return StatusIdle
	case s.Playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

// HasTrack reports whether a track is loaded.
func (s State) HasTrack() bool {
	return s.Current != nil
}

// IsCurrent reports whether the given track id is loaded.
func (s State) IsCurrent(trackID string) bool {
	return s.Current != nil && s.Current.ID == trackID
}

// Progress returns playback progress in [0, 1].
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.CurrentTime)/float64(s.Duration), 0), 1)
}

// Clone returns a deep copy that shares nothing with s.
func (s State) Clone() State {
	if s.Current != nil {
		t := *s.Current
		s.Current = &t
	}
	s.Queue = slices.Clone(s.Queue)
	s.Previous = slices.Clone(s.Previous)
	return s
}

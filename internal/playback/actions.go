package playback

import (
	"time"

	"github.com/llehouerou/wavify/internal/catalog"
)

// Action is a player command. The set is closed: only the types in this
// file implement it.
type Action interface {
	action()
}

type (
	// PlayTrack loads a track and starts it from the beginning.
	PlayTrack struct{ Track catalog.Track }

	// PlayContext starts Tracks[Index]. Earlier tracks become history and
	// later tracks become the queue.
	PlayContext struct {
		Tracks []catalog.Track
		Index  int
	}

	// TogglePlay flips between playing and paused.
	TogglePlay struct{}

	// Pause stops progress.
	Pause struct{}

	// Resume restarts progress.
	Resume struct{}

	// SetCurrentTime moves the playback position.
	SetCurrentTime struct{ Time time.Duration }

	// SetDuration overrides the length of the loaded track.
	SetDuration struct{ Duration time.Duration }

	// SetVolume sets the volume on a 0-100 scale.
	SetVolume struct{ Volume int }

	// ToggleMute mutes or restores the last audible volume.
	ToggleMute struct{}

	// ToggleShuffle flips the shuffle flag.
	ToggleShuffle struct{}

	// SetRepeatMode selects the repeat behaviour.
	SetRepeatMode struct{ Mode RepeatMode }

	// NextTrack advances to the head of the queue.
	NextTrack struct{}

	// PreviousTrack goes back to the tail of the history.
	PreviousTrack struct{}

	// RestartContext wraps around: history and current become the queue
	// again and the oldest history entry starts.
	RestartContext struct{}

	// SetQueue replaces the queue.
	SetQueue struct{ Tracks []catalog.Track }

	// AddToQueue appends a track to the queue.
	AddToQueue struct{ Track catalog.Track }
)

func (PlayTrack) action()      {}
func (PlayContext) action()    {}
func (TogglePlay) action()     {}
func (Pause) action()          {}
func (Resume) action()         {}
func (SetCurrentTime) action() {}
func (SetDuration) action()    {}
func (SetVolume) action()      {}
func (ToggleMute) action()     {}
func (ToggleShuffle) action()  {}
func (SetRepeatMode) action()  {}
func (NextTrack) action()      {}
func (PreviousTrack) action()  {}
func (RestartContext) action() {}
func (SetQueue) action()       {}
func (AddToQueue) action()     {}

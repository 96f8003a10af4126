package playback

import (
	"slices"
	"time"

	"github.com/llehouerou/wavify/internal/catalog"
)

// Reduce applies an action to a state and returns the resulting state.
// It never modifies the slices of s; changed collections are reallocated.
// Actions whose preconditions do not hold return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case PlayTrack:
		return s.load(a.Track, true)

	case PlayContext:
		if a.Index < 0 || a.Index >= len(a.Tracks) {
			return s
		}
		s.Previous = cloneTracks(a.Tracks[:a.Index])
		s.Queue = cloneTracks(a.Tracks[a.Index+1:])
		return s.load(a.Tracks[a.Index], true)

	case TogglePlay:
		if s.Current == nil {
			return s
		}
		if s.Playing {
			s.Playing = false
			return s
		}
		return s.resume()

	case Pause:
		s.Playing = false
		return s

	case Resume:
		if s.Current == nil {
			return s
		}
		return s.resume()

	case SetCurrentTime:
		s.CurrentTime = s.clampTime(a.Time)
		return s

	case SetDuration:
		s.Duration = max(a.Duration, 0)
		s.CurrentTime = s.clampTime(s.CurrentTime)
		return s

	case SetVolume:
		v := min(max(a.Volume, 0), MaxVolume)
		s.Volume = v
		s.Muted = v == 0
		if v > 0 {
			s.lastVolume = v
		}
		return s

	case ToggleMute:
		if s.Muted {
			s.Muted = false
			s.Volume = s.lastVolume
			if s.Volume <= 0 {
				s.Volume = DefaultVolume
			}
			return s
		}
		if s.Volume > 0 {
			s.lastVolume = s.Volume
		}
		s.Volume = 0
		s.Muted = true
		return s

	case ToggleShuffle:
		s.Shuffled = !s.Shuffled
		return s

	case SetRepeatMode:
		if a.Mode < RepeatOff || a.Mode > RepeatContext {
			return s
		}
		s.Repeat = a.Mode
		return s

	case NextTrack:
		if len(s.Queue) == 0 {
			return s
		}
		next := s.Queue[0]
		previous := cloneTracks(s.Previous)
		if s.Current != nil {
			previous = append(previous, *s.Current)
		}
		s.Previous = previous
		s.Queue = cloneTracks(s.Queue[1:])
		return s.load(next, s.Playing)

	case PreviousTrack:
		if len(s.Previous) == 0 {
			return s
		}
		last := len(s.Previous) - 1
		prev := s.Previous[last]
		queue := make([]catalog.Track, 0, len(s.Queue)+1)
		if s.Current != nil {
			queue = append(queue, *s.Current)
		}
		s.Queue = append(queue, s.Queue...)
		s.Previous = cloneTracks(s.Previous[:last])
		return s.load(prev, s.Playing)

	case RestartContext:
		if len(s.Previous) == 0 {
			return s
		}
		order := make([]catalog.Track, 0, len(s.Previous)+len(s.Queue)+1)
		order = append(order, s.Previous...)
		if s.Current != nil {
			order = append(order, *s.Current)
		}
		order = append(order, s.Queue...)
		s.Previous = []catalog.Track{}
		s.Queue = order[1:]
		return s.load(order[0], s.Playing)

	case SetQueue:
		s.Queue = cloneTracks(a.Tracks)
		return s

	case AddToQueue:
		queue := make([]catalog.Track, 0, len(s.Queue)+1)
		queue = append(queue, s.Queue...)
		s.Queue = append(queue, a.Track)
		return s
	}
	return s
}

// load makes t the current track, rewound to the start.
func (s State) load(t catalog.Track, playing bool) State {
	s.Current = &t
	s.Playing = playing
	s.CurrentTime = 0
	s.Duration = t.Duration
	return s
}

// resume starts playback, from the top when the track has already ended.
func (s State) resume() State {
	if s.Duration > 0 && s.CurrentTime >= s.Duration {
		s.CurrentTime = 0
	}
	s.Playing = true
	return s
}

func (s State) clampTime(t time.Duration) time.Duration {
	t = max(t, 0)
	if s.Duration > 0 {
		t = min(t, s.Duration)
	}
	return t
}

func cloneTracks(ts []catalog.Track) []catalog.Track {
	if ts == nil {
		return []catalog.Track{}
	}
	return slices.Clone(ts)
}

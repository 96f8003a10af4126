package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavify/internal/catalog"
)

func track(id string, secs int) catalog.Track {
	return catalog.Track{
		ID:       id,
		Title:    "Track " + id,
		Artist:   "Artist",
		Duration: time.Duration(secs) * time.Second,
	}
}

func ids(ts []catalog.Track) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func currentID(s State) string {
	if s.Current == nil {
		return ""
	}
	return s.Current.ID
}

// playing returns a state with a loaded, playing track a, queue and history.
func playing(a catalog.Track, queue, previous []catalog.Track) State {
	s := NewState(DefaultVolume)
	s = Reduce(s, PlayTrack{Track: a})
	s = Reduce(s, SetQueue{Tracks: queue})
	s.Previous = previous
	return s
}

func TestReduce_PlayTrack(t *testing.T) {
	tracks := []catalog.Track{track("1", 200), track("2", 0), track("3", 1)}
	for _, tr := range tracks {
		t.Run(tr.ID, func(t *testing.T) {
			s := NewState(50)
			s.CurrentTime = 42 * time.Second

			got := Reduce(s, PlayTrack{Track: tr})

			require.NotNil(t, got.Current)
			assert.Equal(t, tr, *got.Current)
			assert.True(t, got.Playing)
			assert.Equal(t, time.Duration(0), got.CurrentTime)
			assert.Equal(t, tr.Duration, got.Duration)
			assert.Equal(t, 50, got.Volume)
		})
	}
}

func TestReduce_PlayTrack_FromPaused(t *testing.T) {
	s := playing(track("1", 100), nil, nil)
	s = Reduce(s, Pause{})
	s = Reduce(s, SetCurrentTime{Time: 30 * time.Second})

	got := Reduce(s, PlayTrack{Track: track("2", 60)})

	assert.Equal(t, "2", currentID(got))
	assert.True(t, got.Playing)
	assert.Equal(t, time.Duration(0), got.CurrentTime)
	assert.Equal(t, 60*time.Second, got.Duration)
}

func TestReduce_TogglePlay_Involution(t *testing.T) {
	for _, startPlaying := range []bool{true, false} {
		s := playing(track("1", 100), []catalog.Track{track("2", 10)}, nil)
		s.Playing = startPlaying

		once := Reduce(s, TogglePlay{})
		twice := Reduce(once, TogglePlay{})

		assert.Equal(t, !startPlaying, once.Playing)
		assert.Equal(t, s, twice)
	}
}

func TestReduce_TogglePlay_IdleNoop(t *testing.T) {
	s := NewState(DefaultVolume)
	got := Reduce(s, TogglePlay{})
	assert.Equal(t, s, got)
	assert.Equal(t, StatusIdle, got.Status())
}

func TestReduce_PauseResume(t *testing.T) {
	s := playing(track("1", 100), nil, nil)

	paused := Reduce(s, Pause{})
	assert.Equal(t, StatusPaused, paused.Status())

	resumed := Reduce(paused, Resume{})
	assert.Equal(t, StatusPlaying, resumed.Status())

	idle := Reduce(NewState(DefaultVolume), Resume{})
	assert.Equal(t, StatusIdle, idle.Status())
	assert.False(t, idle.Playing)
}

func TestReduce_ResumeAtEndRewinds(t *testing.T) {
	ended := playing(track("1", 100), nil, nil)
	ended.Playing = false
	ended.CurrentTime = ended.Duration

	for name, a := range map[string]Action{"toggle": TogglePlay{}, "resume": Resume{}} {
		got := Reduce(ended, a)
		assert.True(t, got.Playing, name)
		assert.Equal(t, time.Duration(0), got.CurrentTime, name)
	}

	// pausing at the end keeps the position
	ended.Playing = true
	assert.Equal(t, ended.Duration, Reduce(ended, TogglePlay{}).CurrentTime)
}

func TestReduce_SetCurrentTime_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		in       time.Duration
		want     time.Duration
	}{
		{"within", 100 * time.Second, 30 * time.Second, 30 * time.Second},
		{"negative", 100 * time.Second, -5 * time.Second, 0},
		{"past end", 100 * time.Second, 150 * time.Second, 100 * time.Second},
		{"at end", 100 * time.Second, 100 * time.Second, 100 * time.Second},
		{"unknown duration", 0, 12 * time.Second, 12 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Duration: tt.duration}
			got := Reduce(s, SetCurrentTime{Time: tt.in})
			assert.Equal(t, tt.want, got.CurrentTime)
		})
	}
}

func TestReduce_SetDuration(t *testing.T) {
	s := State{CurrentTime: 90 * time.Second, Duration: 100 * time.Second}
	got := Reduce(s, SetDuration{Duration: 60 * time.Second})
	assert.Equal(t, 60*time.Second, got.Duration)
	assert.Equal(t, 60*time.Second, got.CurrentTime)
}

func TestReduce_SetVolume_MutedCorrelation(t *testing.T) {
	tests := []struct {
		in        int
		wantVol   int
		wantMuted bool
	}{
		{0, 0, true},
		{1, 1, false},
		{55, 55, false},
		{100, 100, false},
		{150, 100, false},
		{-10, 0, true},
	}
	for _, tt := range tests {
		s := NewState(DefaultVolume)
		s.Muted = !tt.wantMuted
		got := Reduce(s, SetVolume{Volume: tt.in})
		if got.Volume != tt.wantVol || got.Muted != tt.wantMuted {
			t.Errorf("SetVolume(%d) = (%d, muted=%v), want (%d, muted=%v)",
				tt.in, got.Volume, got.Muted, tt.wantVol, tt.wantMuted)
		}
	}
}

func TestReduce_ToggleMute_RestoresLastVolume(t *testing.T) {
	s := NewState(DefaultVolume)
	s = Reduce(s, SetVolume{Volume: 35})

	muted := Reduce(s, ToggleMute{})
	assert.True(t, muted.Muted)
	assert.Equal(t, 0, muted.Volume)

	unmuted := Reduce(muted, ToggleMute{})
	assert.False(t, unmuted.Muted)
	assert.Equal(t, 35, unmuted.Volume)
}

func TestReduce_ToggleMute_AfterSliderToZero(t *testing.T) {
	s := NewState(DefaultVolume)
	s = Reduce(s, SetVolume{Volume: 80})
	s = Reduce(s, SetVolume{Volume: 0})
	require.True(t, s.Muted)

	got := Reduce(s, ToggleMute{})
	assert.False(t, got.Muted)
	assert.Equal(t, 80, got.Volume, "unmute restores the last non-zero volume")
}

func TestReduce_ToggleMute_NothingRemembered(t *testing.T) {
	s := State{Muted: true}
	got := Reduce(s, ToggleMute{})
	assert.False(t, got.Muted)
	assert.Equal(t, DefaultVolume, got.Volume)
}

func TestReduce_ToggleShuffle_DoesNotReorderQueue(t *testing.T) {
	s := playing(track("a", 10), []catalog.Track{track("b", 10), track("c", 10)}, nil)
	got := Reduce(s, ToggleShuffle{})
	assert.True(t, got.Shuffled)
	assert.Equal(t, []string{"b", "c"}, ids(got.Queue))

	back := Reduce(got, ToggleShuffle{})
	assert.False(t, back.Shuffled)
}

func TestReduce_SetRepeatMode(t *testing.T) {
	s := NewState(DefaultVolume)
	for _, m := range []RepeatMode{RepeatContext, RepeatTrack, RepeatOff} {
		s = Reduce(s, SetRepeatMode{Mode: m})
		assert.Equal(t, m, s.Repeat)
	}

	got := Reduce(s, SetRepeatMode{Mode: RepeatMode(9)})
	assert.Equal(t, s, got, "invalid mode is ignored")
}

func TestReduce_RepeatCycleThroughActions(t *testing.T) {
	s := NewState(DefaultVolume)
	var seen []RepeatMode
	for range 6 {
		s = Reduce(s, SetRepeatMode{Mode: s.Repeat.Next()})
		seen = append(seen, s.Repeat)
	}
	assert.Equal(t, []RepeatMode{
		RepeatContext, RepeatTrack, RepeatOff,
		RepeatContext, RepeatTrack, RepeatOff,
	}, seen)
}

func TestReduce_NextPrevious_Scenario(t *testing.T) {
	a, b, c := track("A", 100), track("B", 120), track("C", 140)
	s := playing(a, []catalog.Track{b, c}, nil)

	s = Reduce(s, NextTrack{})
	assert.Equal(t, "B", currentID(s))
	assert.Equal(t, []string{"C"}, ids(s.Queue))
	assert.Equal(t, []string{"A"}, ids(s.Previous))
	assert.Equal(t, 120*time.Second, s.Duration)

	s = Reduce(s, NextTrack{})
	assert.Equal(t, "C", currentID(s))
	assert.Empty(t, s.Queue)
	assert.Equal(t, []string{"A", "B"}, ids(s.Previous))

	s = Reduce(s, PreviousTrack{})
	assert.Equal(t, "B", currentID(s))
	assert.Equal(t, []string{"C"}, ids(s.Queue))
	assert.Equal(t, []string{"A"}, ids(s.Previous))
	assert.Equal(t, 120*time.Second, s.Duration)
	assert.Equal(t, time.Duration(0), s.CurrentTime)
}

func TestReduce_NextThenPrevious_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		queue    []string
		previous []string
	}{
		{"single", []string{"q1"}, nil},
		{"with history", []string{"q1", "q2"}, []string{"h1", "h2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var queue, previous []catalog.Track
			for _, id := range tt.queue {
				queue = append(queue, track(id, 10))
			}
			for _, id := range tt.previous {
				previous = append(previous, track(id, 10))
			}
			s := playing(track("cur", 30), queue, previous)
			s = Reduce(s, SetCurrentTime{Time: 12 * time.Second})

			got := Reduce(Reduce(s, NextTrack{}), PreviousTrack{})

			assert.Equal(t, "cur", currentID(got))
			assert.Equal(t, ids(s.Queue), ids(got.Queue))
			assert.Equal(t, ids(s.Previous), ids(got.Previous))
			assert.Equal(t, 30*time.Second, got.Duration)
		})
	}
}

func TestReduce_NextTrack_EmptyQueueNoop(t *testing.T) {
	s := playing(track("a", 100), nil, []catalog.Track{track("z", 10)})
	s = Reduce(s, SetCurrentTime{Time: 50 * time.Second})

	got := Reduce(s, NextTrack{})
	assert.Equal(t, s, got)
	assert.Equal(t, s, Reduce(got, NextTrack{}))
}

func TestReduce_PreviousTrack_EmptyHistoryNoop(t *testing.T) {
	s := playing(track("a", 100), []catalog.Track{track("b", 10)}, nil)
	assert.Equal(t, s, Reduce(s, PreviousTrack{}))
}

func TestReduce_NextTrack_PreservesPlaying(t *testing.T) {
	s := playing(track("a", 100), []catalog.Track{track("b", 10)}, nil)
	s = Reduce(s, Pause{})

	got := Reduce(s, NextTrack{})
	assert.Equal(t, "b", currentID(got))
	assert.False(t, got.Playing)
}

func TestReduce_NextTrack_FromIdle(t *testing.T) {
	s := NewState(DefaultVolume)
	s = Reduce(s, SetQueue{Tracks: []catalog.Track{track("b", 10)}})

	got := Reduce(s, NextTrack{})
	assert.Equal(t, "b", currentID(got))
	assert.Empty(t, got.Previous, "no current track to push onto history")
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	queue := []catalog.Track{track("b", 10), track("c", 10)}
	previous := []catalog.Track{track("z", 10)}
	s := playing(track("a", 100), queue, previous)
	before := s.Clone()

	for _, a := range []Action{
		NextTrack{}, PreviousTrack{}, AddToQueue{Track: track("d", 1)},
		SetQueue{Tracks: nil}, RestartContext{},
	} {
		_ = Reduce(s, a)
		assert.Equal(t, before, s, "%T mutated its input", a)
	}
	assert.Equal(t, []string{"b", "c"}, ids(queue))
	assert.Equal(t, []string{"z"}, ids(previous))
}

func TestReduce_SetQueueAndAddToQueue(t *testing.T) {
	s := NewState(DefaultVolume)
	src := []catalog.Track{track("1", 1), track("2", 1)}

	s = Reduce(s, SetQueue{Tracks: src})
	src[0].ID = "mutated"
	assert.Equal(t, []string{"1", "2"}, ids(s.Queue), "SetQueue copies its input")

	s = Reduce(s, AddToQueue{Track: track("3", 1)})
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Queue))

	s = Reduce(s, SetQueue{Tracks: nil})
	assert.NotNil(t, s.Queue)
	assert.Empty(t, s.Queue)
}

func TestReduce_PlayContext(t *testing.T) {
	tracks := []catalog.Track{track("1", 10), track("2", 20), track("3", 30), track("4", 40)}

	got := Reduce(NewState(DefaultVolume), PlayContext{Tracks: tracks, Index: 1})
	assert.Equal(t, "2", currentID(got))
	assert.True(t, got.Playing)
	assert.Equal(t, 20*time.Second, got.Duration)
	assert.Equal(t, []string{"1"}, ids(got.Previous))
	assert.Equal(t, []string{"3", "4"}, ids(got.Queue))

	for _, idx := range []int{-1, 4} {
		s := NewState(DefaultVolume)
		assert.Equal(t, s, Reduce(s, PlayContext{Tracks: tracks, Index: idx}))
	}
}

func TestReduce_RestartContext(t *testing.T) {
	tracks := []catalog.Track{track("1", 10), track("2", 20), track("3", 30)}
	s := Reduce(NewState(DefaultVolume), PlayContext{Tracks: tracks, Index: 2})

	got := Reduce(s, RestartContext{})
	assert.Equal(t, "1", currentID(got))
	assert.Equal(t, []string{"2", "3"}, ids(got.Queue))
	assert.Empty(t, got.Previous)
	assert.True(t, got.Playing)

	first := Reduce(NewState(DefaultVolume), PlayContext{Tracks: tracks, Index: 0})
	assert.Equal(t, first, Reduce(first, RestartContext{}), "no history: nothing to restart")
}

type unknownAction struct{}

func (unknownAction) action() {}

func TestReduce_UnknownActionNoop(t *testing.T) {
	s := playing(track("a", 10), nil, nil)
	assert.Equal(t, s, Reduce(s, unknownAction{}))
}

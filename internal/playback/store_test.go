package playback

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavify/internal/catalog"
)

func newTestStore() *Store {
	return NewStore(NewState(DefaultVolume), hclog.NewNullLogger())
}

func TestStore_NilPanicsWithErrNoStore(t *testing.T) {
	var s *Store
	calls := map[string]func(){
		"State":      func() { s.State() },
		"Dispatch":   func() { s.Dispatch(TogglePlay{}) },
		"TogglePlay": func() { s.TogglePlay() },
		"Subscribe":  func() { s.Subscribe() },
		"Must":       func() { Must(s) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithValue(t, ErrNoStore, call)
		})
	}
}

func TestStore_NilLoggerAllowed(t *testing.T) {
	s := NewStore(NewState(DefaultVolume), nil)
	s.PlayTrack(track("1", 10))
	assert.Equal(t, StatusPlaying, s.State().Status())
}

func TestStore_StateIsACopy(t *testing.T) {
	s := newTestStore()
	s.PlayContext([]catalog.Track{track("1", 10), track("2", 10)}, 0)

	st := s.State()
	st.Current.Title = "changed"
	st.Queue[0].ID = "changed"

	fresh := s.State()
	assert.Equal(t, "Track 1", fresh.Current.Title)
	assert.Equal(t, "2", fresh.Queue[0].ID)
}

func TestStore_InitialStateCopied(t *testing.T) {
	initial := NewState(DefaultVolume)
	initial.Queue = []catalog.Track{track("1", 10)}
	s := NewStore(initial, hclog.NewNullLogger())

	initial.Queue[0].ID = "changed"
	assert.Equal(t, "1", s.State().Queue[0].ID)
}

func TestStore_HelpersDispatch(t *testing.T) {
	s := newTestStore()

	s.PlayTrack(track("1", 100))
	s.AddToQueue(track("2", 50))
	s.SetQueue([]catalog.Track{track("3", 30), track("4", 40)})
	s.Pause()
	require.Equal(t, StatusPaused, s.State().Status())
	s.Resume()
	s.TogglePlay()
	require.Equal(t, StatusPaused, s.State().Status())
	s.TogglePlay()

	s.SetCurrentTime(20 * time.Second)
	assert.Equal(t, 20*time.Second, s.State().CurrentTime)

	s.NextTrack()
	assert.Equal(t, "3", s.State().Current.ID)
	s.PreviousTrack()
	assert.Equal(t, "1", s.State().Current.ID)

	s.SetVolume(30)
	s.ToggleMute()
	assert.True(t, s.State().Muted)
	s.ToggleMute()
	assert.Equal(t, 30, s.State().Volume)

	s.ToggleShuffle()
	assert.True(t, s.State().Shuffled)

	s.SetRepeatMode(RepeatTrack)
	assert.Equal(t, RepeatTrack, s.State().Repeat)
}

func TestStore_CycleRepeatMode(t *testing.T) {
	s := newTestStore()
	got := []RepeatMode{s.CycleRepeatMode(), s.CycleRepeatMode(), s.CycleRepeatMode()}
	assert.Equal(t, []RepeatMode{RepeatContext, RepeatTrack, RepeatOff}, got)
}

func TestStore_Subscribe_ReceivesChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newTestStore()
		sub := s.Subscribe()

		s.PlayTrack(track("1", 100))

		c := <-sub.Changed
		assert.IsType(t, PlayTrack{}, c.Action)
		assert.True(t, c.TrackChanged)
		assert.True(t, c.StatusChanged())
		assert.Equal(t, StatusIdle, c.Previous.Status())
		assert.Equal(t, StatusPlaying, c.Current.Status())
	})
}

func TestStore_Subscribe_TrackChangedFlag(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newTestStore()
		s.PlayContext([]catalog.Track{track("1", 10), track("2", 10)}, 0)
		sub := s.Subscribe()

		s.SetVolume(20)
		s.NextTrack()
		s.NextTrack() // empty queue
		s.PlayTrack(track("2", 10))

		want := []bool{false, true, false, true}
		for i, w := range want {
			c := <-sub.Changed
			assert.Equal(t, w, c.TrackChanged, "change %d (%T)", i, c.Action)
		}
	})
}

func TestStore_Close_SignalsSubscribers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := newTestStore()
		sub := s.Subscribe()

		require.NoError(t, s.Close())
		<-sub.Done
		require.NoError(t, s.Close())

		late := s.Subscribe()
		<-late.Done

		s.TogglePlay()
	})
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := newTestStore()
	s.PlayTrack(track("1", 1000))

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			s.AddToQueue(track("q", 1))
		})
	}
	wg.Wait()

	assert.Len(t, s.State().Queue, 50)
}

func TestStore_CycleRepeatMode_Concurrent(t *testing.T) {
	s := newTestStore()

	const cycles = 30
	var (
		mu  sync.Mutex
		got = map[RepeatMode]int{}
		wg  sync.WaitGroup
	)
	for range cycles {
		wg.Go(func() {
			m := s.CycleRepeatMode()
			mu.Lock()
			got[m]++
			mu.Unlock()
		})
	}
	wg.Wait()

	assert.Equal(t, map[RepeatMode]int{
		RepeatContext: cycles / 3,
		RepeatTrack:   cycles / 3,
		RepeatOff:     cycles / 3,
	}, got)
	assert.Equal(t, RepeatOff, s.State().Repeat)
}

package playback

const eventBufferSize = 16

// Subscription delivers store changes to one subscriber.
type Subscription struct {
	Changed <-chan Change
	Done    <-chan struct{}

	changeCh chan Change
	doneCh   chan struct{}

	// lostTrackChange is set when a TrackChanged change was dropped; the
	// next delivered change carries the flag instead. Guarded by the
	// store's subsMu.
	lostTrackChange bool
}

func newSubscription() *Subscription {
	s := &Subscription{
		changeCh: make(chan Change, eventBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.Changed = s.changeCh
	s.Done = s.doneCh
	return s
}

// close signals the subscriber to stop.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers a change without blocking. Changes are dropped when the
// buffer is full; every change carries a full snapshot, so the next one
// received is still accurate. A dropped TrackChanged flag is folded into
// the next change that gets through.
func (s *Subscription) send(c Change) {
	if s.lostTrackChange {
		c.TrackChanged = true
	}
	select {
	case s.changeCh <- c:
		s.lostTrackChange = false
	default:
		s.lostTrackChange = c.TrackChanged
	}
}

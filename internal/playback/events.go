package playback

// Change is emitted after every dispatched action.
//
// Previous and Current are deep copies; subscribers may keep them.
type Change struct {
	Action   Action
	Previous State
	Current  State

	// TrackChanged is set when the action loaded a track, including a
	// restart of the same track.
	TrackChanged bool
}

// StatusChanged reports whether the coarse status differs.
func (c Change) StatusChanged() bool {
	return c.Previous.Status() != c.Current.Status()
}

// loaded reports whether Reduce loaded a track going from prev to next.
// load always allocates a new Current, and no-ops return the same one.
func loaded(prev, next State) bool {
	return prev.Current != next.Current
}

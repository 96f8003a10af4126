package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigation", "tracklist", "library", "search"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionViewHome, []string{"1"}, "Home", "global"},
	{ActionViewSearch, []string{"2"}, "Search", "global"},
	{ActionViewLibrary, []string{"3"}, "Your library", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionSeekBack, []string{","}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"."}, "Seek +5s", "playback"},
	{ActionScrubBack, []string{"shift+left"}, "Scrub back (enter commits)", "playback"},
	{ActionScrubForward, []string{"shift+right"}, "Scrub forward (enter commits)", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Shuffle", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},
	{ActionPlayerDisplay, []string{"e"}, "Expand player bar", "playback"},

	// Navigation
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigation"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigation"},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", "navigation"},
	{ActionMoveRight, []string{"l", "right"}, "Move right", "navigation"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigation"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigation"},
	{ActionSelect, []string{"enter"}, "Play/open", "navigation"},

	// Track lists
	{ActionAdd, []string{"a"}, "Add to queue", "tracklist"},
	{ActionPlayAll, []string{"P"}, "Play all", "tracklist"},

	// Library
	{ActionFilter, []string{"/"}, "Filter playlists", "library"},
	{ActionCycleSort, []string{"o"}, "Cycle sort order", "library"},
	{ActionToggleLayout, []string{"v"}, "Grid/list", "library"},

	// Search
	{ActionFilter, []string{"/"}, "Edit query", "search"},
	{ActionNextTab, []string{"]"}, "Next tab", "search"},
	{ActionPrevTab, []string{"["}, "Previous tab", "search"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"
	ActionBack        Action = "back"

	// View switching
	ActionViewHome    Action = "view_home"
	ActionViewSearch  Action = "view_search"
	ActionViewLibrary Action = "view_library"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"   // one-shot
	ActionSeekBack      Action = "seek_back"      // one-shot
	ActionScrubForward  Action = "scrub_forward"  // seek gesture
	ActionScrubBack     Action = "scrub_back"     // seek gesture
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionPlayerDisplay Action = "player_display" // compact/expanded bar

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionNextTab   Action = "next_tab"
	ActionPrevTab   Action = "prev_tab"

	// Selection/activation actions
	ActionSelect  Action = "select"   // enter - play/open
	ActionAdd     Action = "add"      // a - add to queue
	ActionPlayAll Action = "play_all" // P - play the whole playlist

	// Library-specific actions
	ActionCycleSort    Action = "cycle_sort"    // o
	ActionToggleLayout Action = "toggle_layout" // v - grid/list
	ActionFilter       Action = "filter"        // / - focus the text input
)

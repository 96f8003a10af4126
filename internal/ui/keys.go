package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/keymap"
)

// KeyMsg is a key press already resolved against the keymap. Views with a
// focused text input read Key, everything else reads Action.
type KeyMsg struct {
	Key    tea.KeyMsg
	Action keymap.Action
}

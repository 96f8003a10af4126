package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "navigation"},
		{ActionMoveDown, []string{"j", "down"}, "Move down", "navigation"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if result := r.Resolve(tt.key); result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionAdd, []string{"a"}, "Add", "tracklist"},
		{ActionPlayAll, []string{"a"}, "Play all", "tracklist"},
	})
	if got := r.Resolve("a"); got != ActionPlayAll {
		t.Errorf("Resolve(a) = %q, want %q", got, ActionPlayAll)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionFilter, []string{"/"}, "Filter", "library"},
		{ActionFilter, []string{"/", "f"}, "Edit query", "search"},
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	})

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionFilter, []string{"/", "f"}},
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionHelp, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := r.KeysFor(tt.action); !slices.Equal(got, tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, got, tt.expected)
			}
		})
	}
}

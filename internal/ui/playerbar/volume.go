package playerbar

import (
	"fmt"

	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/playback"
)

// RenderVolume renders the volume indicator: "vol  70%" or "mute   0%".
func RenderVolume(volume int, muted bool) string {
	icon := icons.Volume()
	if muted || volume == 0 {
		icon = icons.Muted()
	}
	return timeStyle().Render(fmt.Sprintf("%s %3d%%", icon, volume))
}

// RenderModes renders the shuffle and repeat indicators, lit when active.
func RenderModes(s State) string {
	shuffle := inactiveStyle().Render(icons.Shuffle())
	if s.Shuffled {
		shuffle = activeStyle().Render(icons.Shuffle())
	}

	var repeat string
	switch s.Repeat {
	case playback.RepeatTrack:
		repeat = activeStyle().Render(icons.RepeatTrack())
	case playback.RepeatContext:
		repeat = activeStyle().Render(icons.RepeatContext())
	default:
		repeat = inactiveStyle().Render(icons.RepeatContext())
	}
	return shuffle + " " + repeat
}

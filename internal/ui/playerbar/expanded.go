package playerbar

import (
	"fmt"
	"strings"

	"github.com/llehouerou/wavify/internal/ui/render"
)

// expandedRows is the number of content rows of the expanded bar.
const expandedRows = 5

// RenderExpanded renders the expanded player: title, artist and album, the
// queue length, a block progress bar and the mode indicators.
func RenderExpanded(s State, width int) string {
	innerWidth := max(width-6, 0)
	if innerWidth < 40 {
		return renderCompact(s, width)
	}

	artist := render.Sanitize(s.Artist)
	if artist == "" {
		artist = "Unknown Artist"
	}
	info := artist
	if s.Album != "" {
		info += " · " + render.Sanitize(s.Album)
	}

	queue := "Queue empty"
	if s.Queued > 0 {
		queue = fmt.Sprintf("%d up next", s.Queued)
	}
	if s.Seeking {
		queue = "Seeking… enter to jump, esc to cancel"
	}

	lines := []string{
		render.TruncateEllipsis(titleStyle().Render(trackTitle(s)), innerWidth),
		render.TruncateEllipsis(artistStyle().Render(info), innerWidth),
		"",
		progressFilledStyle(s.Seeking).Render(RenderProgressBar(s.Position, s.Duration, innerWidth, s.Playing)),
		render.TruncateEllipsis(render.Row(timeStyle().Render(queue), RenderModes(s)+"   "+RenderVolume(s.Volume, s.Muted), innerWidth), innerWidth),
	}

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

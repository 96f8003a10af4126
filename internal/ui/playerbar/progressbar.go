package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func RenderProgressBar(position, duration time.Duration, width int, playing bool) string {
	status := icons.Play()
	if !playing {
		status = icons.Pause()
	}

	posStr := catalog.FormatClock(position)
	durStr := catalog.FormatClock(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	filled := filledCells(position, duration, barWidth)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}

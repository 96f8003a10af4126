// Package card renders the tiles used by the home, library and search
// grids.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

// Card is one tile: a title line, a subtitle and an optional meta line.
type Card struct {
	Title    string
	Subtitle string
	Meta     string
	Accent   string // hex color of the left edge, theme primary when empty
}

// Render draws c as ui.CardHeight lines of the given outer width.
func Render(c Card, width int, selected bool) string {
	inner := max(width-2, 1) // card padding
	s := styles.T().S()

	accent := styles.T().Primary
	if c.Accent != "" {
		accent = lipgloss.Color(c.Accent)
	}
	edge := lipgloss.NewStyle().Foreground(accent).Render("▎")

	title := s.Title.Render(render.TruncateEllipsis(render.Sanitize(c.Title), inner-1))
	lines := []string{
		edge + title,
		" " + s.Muted.Render(render.TruncateEllipsis(render.Sanitize(c.Subtitle), inner-1)),
		" " + s.Subtle.Render(render.TruncateEllipsis(render.Sanitize(c.Meta), inner-1)),
	}
	for len(lines) < ui.CardHeight {
		lines = append(lines, "")
	}
	return styles.CardStyle(width, selected).Render(strings.Join(lines[:ui.CardHeight], "\n"))
}

// Row joins rendered cards side by side separated by gap columns.
func Row(cards []string, gap int) string {
	if len(cards) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", max(gap, 0))
	parts := make([]string, 0, len(cards)*2-1)
	for i, c := range cards {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Window returns the [start, end) slice of n items, at most cols long,
// that keeps selected visible when scrolling horizontally.
func Window(n, cols, selected int) (start, end int) {
	cols = max(cols, 1)
	if n <= cols {
		return 0, n
	}
	start = max(selected-cols+1, 0)
	return start, min(start+cols, n)
}

// Package overlay draws a box over an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center draws box in the middle of a width x height screen. Screen lines
// the box does not cover are kept as they are.
func Center(screen, box string, width, height int) string {
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x := max((width-bw)/2, 0)
	y := max((height-bh)/2, 0)
	return At(screen, box, x, y, width)
}

// At draws box with its top-left corner at column x, line y. Each box line
// replaces the screen cells it spans; cells left and right of it survive.
// Screen lines shorter than width are padded first.
func At(screen, box string, x, y, width int) string {
	lines := strings.Split(screen, "\n")
	for i, row := range strings.Split(box, "\n") {
		at := y + i
		if at >= len(lines) {
			break
		}
		rw := ansi.StringWidth(row)
		if rw == 0 {
			continue
		}
		base := lines[at]
		if w := ansi.StringWidth(base); w < width {
			base += strings.Repeat(" ", width-w)
		}
		line := ansi.Cut(base, 0, x) + row
		if end := x + rw; end < width {
			line += ansi.Cut(base, end, width)
		}
		lines[at] = line
	}
	return strings.Join(lines, "\n")
}

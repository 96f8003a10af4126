// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the sidebar is hidden
// and navigation falls back to the header tabs.
const NarrowThreshold = 90

// StatusLineHeight is the height of the error/notification line.
const StatusLineHeight = 1

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int // 0 when nothing is loaded
	HasStatusLine   bool
}

// ContentHeight calculates the available height for the sidebar and page
// area: the terminal height minus header, player bar and status line.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	if opts.HasStatusLine {
		height -= StatusLineHeight
	}
	return max(height, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// SidebarWidth returns the sidebar width, 0 in narrow mode.
func SidebarWidth(windowWidth, preferred int) int {
	if IsNarrowMode(windowWidth) {
		return 0
	}
	return preferred
}

// PageWidth returns the width left for the page next to the sidebar.
func PageWidth(windowWidth, preferred int) int {
	return max(windowWidth-SidebarWidth(windowWidth, preferred), 0)
}

// GridColumns returns how many cards of cardWidth fit in width when
// separated by gap columns. Always at least 1.
func GridColumns(width, cardWidth, gap int) int {
	if cardWidth <= 0 {
		return 1
	}
	cols := (width + gap) / (cardWidth + gap)
	return max(cols, 1)
}

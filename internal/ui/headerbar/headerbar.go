// Package headerbar renders the one-line page tab strip at the top of the
// screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/ui/render"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Page modes understood by Render.
const (
	ModeHome     = "home"
	ModeSearch   = "search"
	ModeLibrary  = "library"
	ModePlaylist = "playlist"
)

type tab struct {
	key  string
	name string
	mode string
	icon func() string
}

var tabs = []tab{
	{"1", "Home", ModeHome, icons.Home},
	{"2", "Search", ModeSearch, icons.Search},
	{"3", "Your Library", ModeLibrary, icons.Library},
}

// Render returns the header bar for the given width. currentMode is one of
// the Mode constants; title, when set, is shown as a breadcrumb after the
// tabs (the open playlist or album).
func Render(currentMode, title string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	activeKey := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	activeName := lipgloss.NewStyle().Foreground(t.FgBase).Bold(true)
	inactiveKey := lipgloss.NewStyle().Foreground(t.FgSubtle)
	inactiveName := lipgloss.NewStyle().Foreground(t.FgMuted)
	separator := lipgloss.NewStyle().Foreground(t.Border).Render(" │ ")

	parts := make([]string, 0, len(tabs)+1)
	for _, tb := range tabs {
		keyStyle, nameStyle := inactiveKey, inactiveName
		if tb.mode == currentMode {
			keyStyle, nameStyle = activeKey, activeName
		}
		parts = append(parts, keyStyle.Render(tb.key)+" "+nameStyle.Render(tb.icon()+tb.name))
	}
	if title != "" {
		parts = append(parts, activeName.Render("› "+render.Sanitize(title)))
	}

	content := strings.Join(parts, separator)
	contentWidth := lipgloss.Width(content)
	if contentWidth > width {
		return render.TruncateEllipsis(content, width)
	}
	return strings.Repeat(" ", (width-contentWidth)/2) + content
}

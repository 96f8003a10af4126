package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// CardStyle returns the style of a grid card of the given outer width.
func CardStyle(width int, selected bool) lipgloss.Style {
	s := T().S().Card.Width(max(width, 1))
	if selected {
		s = s.Background(T().BgCursor)
	}
	return s
}

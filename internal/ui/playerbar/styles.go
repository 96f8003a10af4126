package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func inactiveStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func progressFilledStyle(seeking bool) lipgloss.Style {
	if seeking {
		return lipgloss.NewStyle().Foreground(styles.T().Secondary)
	}
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressEmptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Border)
}

// Package ui provides shared view constants and the Base every view embeds.
package ui

// Layout constants shared by the views.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// SidebarWidth is the outer width of the navigation sidebar.
	SidebarWidth = 26

	// CardWidth is the outer width of a grid card (playlists, artists,
	// categories).
	CardWidth = 24

	// CardHeight is the number of lines of a grid card.
	CardHeight = 3

	// SectionGap is the blank lines between home page sections.
	SectionGap = 1

	// PageHeaderHeight is the title line plus the blank line below it.
	PageHeaderHeight = 2
)

package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Green - playing track, active page, progress
	Secondary lipgloss.Color // Blue - links, owner names

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (artists, metadata)
	FgSubtle lipgloss.Color // Tertiary text (indices, hints)

	// Backgrounds
	BgBase   lipgloss.Color // Panel backgrounds
	BgCard   lipgloss.Color // Grid cards
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Heading  lipgloss.Style // Section headings ("Recently played")
	Playing  lipgloss.Style // Currently playing track
	Cursor   lipgloss.Style // Cursor background highlight
	Card     lipgloss.Style // Grid card body
	Explicit lipgloss.Style // Explicit marker badge
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#1db954"),
	Secondary: lipgloss.Color("#509bf5"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#ffffff"),
	FgMuted:  lipgloss.Color("#b3b3b3"),
	FgSubtle: lipgloss.Color("#6a6a6a"),

	// Backgrounds
	BgBase:   lipgloss.Color("#121212"),
	BgCard:   lipgloss.Color("#181818"),
	BgCursor: lipgloss.Color("#2a2a2a"),

	// Borders
	Border:      lipgloss.Color("#404040"),
	BorderFocus: lipgloss.Color("#1db954"),

	// Status
	Success: lipgloss.Color("#1db954"),
	Error:   lipgloss.Color("#e91429"),
	Warning: lipgloss.Color("#ffa42b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: base.Bold(true).MarginBottom(1),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Card: lipgloss.NewStyle().
			Background(t.BgCard).
			Padding(0, 1),
		Explicit: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.FgMuted),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

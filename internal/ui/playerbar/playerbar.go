// Package playerbar renders the persistent now-playing bar.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui/render"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // two lines: track and progress
	ModeExpanded                    // adds album, queue and a block progress bar
)

// Toggle switches between compact and expanded.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeExpanded {
		return ModeCompact
	}
	return ModeExpanded
}

// State holds everything needed to render the player bar.
type State struct {
	Active   bool // a track is loaded
	Playing  bool
	Title    string
	Artist   string
	Album    string
	Explicit bool
	Position time.Duration
	Duration time.Duration
	Seeking  bool
	Volume   int
	Muted    bool
	Shuffled bool
	Repeat   playback.RepeatMode
	Queued   int

	DisplayMode DisplayMode
}

// Height returns the total height of the player bar, 0 when idle.
func Height(s State) int {
	if !s.Active {
		return 0
	}
	if s.DisplayMode == ModeExpanded {
		return expandedRows + 2
	}
	return 4 // two content rows + border
}

// NewState builds the bar state from a playback snapshot. position is the
// transport position, which differs from CurrentTime during a seek gesture.
func NewState(ps playback.State, position time.Duration, seeking bool, mode DisplayMode) State {
	if !ps.HasTrack() {
		return State{}
	}
	return State{
		Active:      true,
		Playing:     ps.Playing,
		Title:       ps.Current.Title,
		Artist:      ps.Current.Artist,
		Album:       ps.Current.Album,
		Explicit:    ps.Current.Explicit,
		Position:    position,
		Duration:    ps.Duration,
		Seeking:     seeking,
		Volume:      ps.Volume,
		Muted:       ps.Muted,
		Shuffled:    ps.Shuffled,
		Repeat:      ps.Repeat,
		Queued:      len(ps.Queue),
		DisplayMode: mode,
	}
}

// Render returns the player bar for the given width, or "" when idle.
func Render(s State, width int) string {
	if !s.Active {
		return ""
	}
	if s.DisplayMode == ModeExpanded {
		return RenderExpanded(s, width)
	}
	return renderCompact(s, width)
}

func statusIcon(s State) string {
	if s.Playing {
		return icons.Play()
	}
	return icons.Pause()
}

func trackTitle(s State) string {
	title := render.Sanitize(s.Title)
	if title == "" {
		title = "Unknown Track"
	}
	if s.Explicit {
		title += " " + icons.Explicit()
	}
	return title
}

func renderCompact(s State, width int) string {
	// border and padding
	innerWidth := max(width-6, 0)

	// Line 1: ▶ Title · Artist                 [S] [R]  vol 70%
	right := RenderModes(s) + "   " + RenderVolume(s.Volume, s.Muted)
	leftWidth := max(innerWidth-lipgloss.Width(right)-3, 10)

	left := statusIcon(s) + "  " + titleStyle().Render(trackTitle(s))
	if s.Artist != "" {
		left += artistStyle().Render(" · " + render.Sanitize(s.Artist))
	}
	left = render.TruncateEllipsis(left, leftWidth)
	line1 := render.TruncateEllipsis(render.Row(left, right, innerWidth), innerWidth)

	// Line 2: 1:23 ━━━━━━────── 3:58
	line2 := renderProgressLine(s, innerWidth)

	content := line1 + "\n" + line2
	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(content)
}

// renderProgressLine renders "1:23 ━━━━─── 3:58" spanning width.
func renderProgressLine(s State, width int) string {
	pos := catalog.FormatClock(s.Position)
	dur := catalog.FormatClock(s.Duration)
	barWidth := max(width-lipgloss.Width(pos)-lipgloss.Width(dur)-2, 5)

	filled := filledCells(s.Position, s.Duration, barWidth)
	bar := progressFilledStyle(s.Seeking).Render(strings.Repeat("━", filled)) +
		progressEmptyStyle().Render(strings.Repeat("─", barWidth-filled))

	return timeStyle().Render(pos) + " " + bar + " " + timeStyle().Render(dur)
}

// filledCells returns how many of width cells represent position/duration.
func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || width <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(max(int(float64(width)*ratio), 0), width)
}

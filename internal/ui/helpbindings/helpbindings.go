// Package helpbindings renders the scrollable key binding overlay.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/styles"
)

// Close signals the overlay should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{
	"global",
	"playback",
	"navigation",
	"tracklist",
	"library",
	"search",
}

var categoryLabels = map[string]string{
	"global":     "Global",
	"playback":   "Playback",
	"navigation": "Navigation",
	"tracklist":  "Track Lists",
	"library":    "Your Library",
	"search":     "Search",
}

// Model holds the state for the help overlay.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

// New creates a help model showing the given contexts.
func New(contexts ...string) Model {
	m := Model{}
	m.SetContexts(contexts)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int { return m.scrollOffset }

// Update handles raw keys while the overlay is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd("helpbindings", Close{})
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the overlay content inside a rounded panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width over all lines so the panel does not resize while scrolling
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.buildFooter()))

	return styles.PanelStyle(true).Padding(0, 1).Render(b.String())
}

func (m Model) buildContent() string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.FgBase)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := lipgloss.NewStyle().Foreground(t.Border)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		k := keyLabel(b)
		sb.WriteString(keyStyle.Render(k + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(k))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins a binding's keys, spelling out the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// title, footer, blank lines and border
	return max(m.Height()-8, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}

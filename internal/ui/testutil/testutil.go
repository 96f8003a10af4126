// Package testutil provides helpers for testing views.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var whitespace = regexp.MustCompile(`\s+`)

// StripANSI removes escape sequences so rendered output can be compared.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace collapses whitespace runs to one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// MeasureWidth returns the cell width of s without escape sequences.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line of output containing substr, stripped of
// escape sequences, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// CountLines returns the number of non-blank lines.
func CountLines(output string) int {
	count := 0
	for line := range strings.SplitSeq(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// SplitLines splits output into lines without trailing blank lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEsc,
	"tab":         tea.KeyTab,
	"backspace":   tea.KeyBackspace,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"ctrl+c":      tea.KeyCtrlC,
	" ":           tea.KeySpace,
}

// Key builds the KeyMsg whose String() is key.
func Key(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Type builds one KeyMsg per rune of text.
func Type(text string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, Key(string(r)))
	}
	return msgs
}

// Package render provides text layout helpers for the views.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) and invalid UTF-8 and
// turns non-breaking spaces into plain ones. Catalog text can come from any
// file, and a stray escape would break the layout.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == unicode.ReplacementChar:
			return -1
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate shortens plain text to maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens s, which may contain ANSI styling, to maxWidth
// cells ending with "…" when cut.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells. Styled input is measured
// without its escape sequences.
func Pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// TruncateAndPad returns s cut or padded to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(TruncateEllipsis(s, width), width)
}

// Row joins left and right with enough spaces to span width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Column is one cell of a table row.
type Column struct {
	Text  string
	Width int
	Right bool // right-align
}

// Columns lays out cells separated by one space. Each cell is cut or padded
// to its width.
func Columns(cols ...Column) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		if c.Width <= 0 {
			continue
		}
		cell := TruncateEllipsis(c.Text, c.Width)
		if c.Right {
			cell = strings.Repeat(" ", max(c.Width-lipgloss.Width(cell), 0)) + cell
		} else {
			cell = Pad(cell, c.Width)
		}
		parts = append(parts, cell)
	}
	return strings.Join(parts, " ")
}

// Separator creates a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine returns width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

// FitLines cuts or pads a block to exactly height lines, each cut to width.
func FitLines(block string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = TruncateAndPad(l, width)
	}
	for len(lines) < height {
		lines = append(lines, EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

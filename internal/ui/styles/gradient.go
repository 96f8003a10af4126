package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

// HeaderGradient renders a page title fading from accent to the theme's
// primary color. An invalid accent falls back to a gray.
func HeaderGradient(title, accent string) string {
	return ApplyBoldGradient(title, lipgloss.Color(accent), T().Primary)
}

// Banner returns a full-width bar fading from accent into the panel
// background, drawn above playlist and album headers.
func Banner(accent string, width int) string {
	if width <= 0 {
		return ""
	}
	colors := blendColors(width, lipgloss.Color(accent), T().BgBase)
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(colorToHex(c))).
			Render(" "))
	}
	return b.String()
}

// Darken returns hex darkened by amount in [0,1] (Lab lightness).
func Darken(hex string, amount float64) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	l, a, bb := c.Lab()
	l = max(l-amount, 0)
	return lipgloss.Color(colorful.Lab(l, a, bb).Clamped().Hex())
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters, so emoji and combining marks keep one color
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from).Bold(bold)
		return style.Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(bold)
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	if size < 2 {
		return []color.Color{c1}
	}
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}

	return colors
}

// lipglossToColor converts a hex lipgloss.Color ("#rgb" or "#rrggbb").
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	// ANSI colors: neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

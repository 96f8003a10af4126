package ui

// Base holds the size and focus state every view embeds.
//
//	type Model struct {
//	    ui.Base
//	    list list.Model[catalog.Track]
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the view receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the view receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the view dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the view dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the view width.
func (b Base) Width() int {
	return b.width
}

// Height returns the view height.
func (b Base) Height() int {
	return b.height
}

// BodyHeight returns the height left after overhead lines, never negative.
func (b Base) BodyHeight(overhead int) int {
	return max(b.height-overhead, 0)
}

// Package cursor tracks a selection and scroll offset over a list or a grid.
package cursor

import "github.com/llehouerou/wavify/internal/keymap"

// Cursor manages the selected index and the first visible row. Lengths and
// viewport heights are passed in because they change with the data and the
// terminal size.
//
// A grid is a list laid out in rows of cols items; heights and offsets are
// in rows. A plain list is a grid with one column.
type Cursor struct {
	pos    int // selected item
	offset int // first visible row
	margin int // rows kept visible around the cursor
	cols   int
}

// New creates a list cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin, cols: 1}
}

// NewGrid creates a cursor over a grid of cols columns.
func NewGrid(margin, cols int) Cursor {
	c := New(margin)
	c.SetCols(cols)
	return c
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Cols returns the number of grid columns.
func (c Cursor) Cols() int { return c.cols }

// SetCols changes the number of grid columns (minimum 1), for example after
// a resize.
func (c *Cursor) SetCols(cols int) {
	c.cols = max(cols, 1)
}

func (c Cursor) rows(listLen int) int {
	return (listLen + c.cols - 1) / c.cols
}

// Move moves the selection by delta items, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// MoveRow moves the selection by delta rows, keeping the column when the
// target row is long enough.
func (c *Cursor) MoveRow(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	target := c.pos + delta*c.cols
	if target < 0 || target >= listLen {
		target = clamp(target, listLen-1)
		if c.cols > 1 && target/c.cols == c.pos/c.cols {
			return
		}
	}
	c.pos = target
	c.ensureVisible(listLen, height)
}

// Jump selects pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart selects the first item.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// EnsureVisible scrolls so the selection is visible.
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	rows := c.rows(listLen)
	if height <= 0 || rows == 0 {
		return
	}
	row := c.pos / c.cols
	margin := min(c.margin, (height-1)/2)

	if row < c.offset+margin {
		c.offset = max(row-margin, 0)
	}
	if row >= c.offset+height-margin {
		c.offset = row - height + margin + 1
	}
	c.offset = clamp(c.offset, max(rows-height, 0))
}

// ClampToBounds keeps the selection inside a list that shrank. It reports
// whether the selection moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the visible item indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset*c.cols, listLen)
	end = min(start+height*c.cols, listLen)
	return start, end
}

// Reset selects the first item.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleAction applies a navigation action and reports whether it was one.
// Left and right only move inside a grid.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	switch a {
	case keymap.ActionMoveDown:
		c.MoveRow(1, listLen, height)
	case keymap.ActionMoveUp:
		c.MoveRow(-1, listLen, height)
	case keymap.ActionMoveRight:
		if c.cols == 1 {
			return false
		}
		c.Move(1, listLen, height)
	case keymap.ActionMoveLeft:
		if c.cols == 1 {
			return false
		}
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.JumpStart()
	case keymap.ActionJumpEnd:
		c.JumpEnd(listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return min(max(v, 0), max(maxVal, 0))
}

// Package list provides a generic selectable list or grid.
package list

import (
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/ui/cursor"
)

// Action is what an Update did, for the parent to act on.
type Action int

const (
	ActionNone  Action = iota
	ActionMoved        // selection changed
	ActionEnter        // enter on an item
	ActionAdd          // add-to-queue on an item
)

// Result is returned from Update.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// Model holds items and a cursor. Rendering is left to the parent, which
// reads VisibleRange and SelectedIndex.
type Model[T any] struct {
	items  []T
	cursor cursor.Cursor
	height int // visible rows
}

// New creates a one-column list.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// NewGrid creates a list laid out in cols columns.
func NewGrid[T any](margin, cols int) Model[T] {
	return Model[T]{cursor: cursor.NewGrid(margin, cols)}
}

// SetItems replaces the items and keeps the selection in bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.EnsureVisible(len(items), m.height)
}

// SetHeight sets the number of visible rows.
func (m *Model[T]) SetHeight(rows int) {
	m.height = max(rows, 0)
	m.cursor.EnsureVisible(len(m.items), m.height)
}

// SetCols changes the grid width in columns.
func (m *Model[T]) SetCols(cols int) {
	m.cursor.SetCols(cols)
	m.cursor.EnsureVisible(len(m.items), m.height)
}

// Cols returns the number of columns.
func (m Model[T]) Cols() int { return m.cursor.Cols() }

// Items returns the items.
func (m Model[T]) Items() []T { return m.items }

// Len returns the number of items.
func (m Model[T]) Len() int { return len(m.items) }

// Selected returns the selected item, or false when the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the selected index.
func (m Model[T]) SelectedIndex() int { return m.cursor.Pos() }

// Select moves the selection to i.
func (m *Model[T]) Select(i int) {
	m.cursor.Jump(i, len(m.items), m.height)
}

// Reset selects the first item.
func (m *Model[T]) Reset() { m.cursor.Reset() }

// VisibleRange returns the visible item indices [start, end).
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.height)
}

// Update applies a key action.
func (m *Model[T]) Update(a keymap.Action) Result {
	if m.cursor.HandleAction(a, len(m.items), m.height) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if len(m.items) == 0 {
		return Result{Index: -1}
	}
	switch a {
	case keymap.ActionSelect:
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	case keymap.ActionAdd:
		return Result{Action: ActionAdd, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}

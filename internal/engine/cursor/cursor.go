package cursor

import "fmt"

// Cursor is a caret with an optional selection anchor.
// The zero value is a cursor at (0:0) with no selection.
type Cursor struct {
	active   Point
	anchor   Point
	anchored bool
}

// New creates a cursor at p with no selection.
func New(p Point) Cursor {
	return Cursor{active: p}
}

// NewSelection creates a cursor whose trailing point is trailing.
func NewSelection(active, trailing Point) Cursor {
	return Cursor{active: active, anchor: trailing, anchored: true}
}

// Active returns the point that typing and movement act on.
func (c Cursor) Active() Point {
	return c.active
}

// Trailing returns the selection anchor, or the active point when no
// anchor is set.
func (c Cursor) Trailing() Point {
	if c.anchored {
		return c.anchor
	}
	return c.active
}

// SetActive moves the active point, leaving the anchor untouched.
func (c *Cursor) SetActive(p Point) {
	c.active = p
}

// BeginSelection anchors the selection at the active point unless an
// anchor is already set.
func (c *Cursor) BeginSelection() {
	if !c.anchored {
		c.anchor = c.active
		c.anchored = true
	}
}

// InSelection returns true if the active and trailing points differ in
// position.
func (c Cursor) InSelection() bool {
	return c.anchored && !c.anchor.SamePosition(c.active)
}

// Ordered returns the selection bounds as (left, right) where left comes
// first in the document. Without a selection both are the active point.
func (c Cursor) Ordered() (left, right Point) {
	trailing := c.Trailing()
	if trailing.Before(c.active) {
		return trailing, c.active
	}
	return c.active, trailing
}

// ResetTrailing collapses the selection onto the active point.
func (c *Cursor) ResetTrailing() {
	c.anchor = Point{}
	c.anchored = false
}

// ResetTo places both points at p.
func (c *Cursor) ResetTo(p Point) {
	c.active = p
	c.ResetTrailing()
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if !c.InSelection() {
		return fmt.Sprintf("Cursor%s", c.active)
	}
	dir := "→"
	if c.active.Before(c.anchor) {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", c.anchor, dir, c.active)
}

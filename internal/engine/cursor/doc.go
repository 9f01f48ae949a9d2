// Package cursor provides the caret and selection model for text editing.
//
// The cursor package handles:
//
//   - Point, a caret location (row, column) plus a remembered column that
//     vertical movement uses to restore the horizontal position
//   - Cursor, an active point with an optional selection anchor
//
// Selection Model:
//
// A Cursor has an active point (where typing and arrow keys act) and a
// trailing point. The trailing point is the anchor when one is set and the
// active point otherwise. The cursor is selecting exactly when the active
// and trailing points differ in (row, column):
//
//	c := cursor.New(cursor.NewPoint(0, 2))
//	c.BeginSelection()               // anchor at (0:2)
//	c.SetActive(cursor.NewPoint(1, 3))
//	c.InSelection()                  // true
//	left, right := c.Ordered()       // (0:2), (1:3)
//	c.ResetTrailing()                // collapse to the active point
//
// Points are plain values. The cursor package knows nothing about line
// lengths; bounds are enforced by the engine that moves them.
package cursor

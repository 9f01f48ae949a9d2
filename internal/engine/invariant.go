package engine

import (
	"github.com/dshills/elditor/internal/engine/cursor"
)

// checkPoint panics unless p lies inside the document.
func (tb *TextBuffer) checkPoint(op, name string, p cursor.Point) {
	if p.Row < 0 || p.Row >= tb.doc.LineCount() {
		violate(op, "%s row %d outside [0, %d)", name, p.Row, tb.doc.LineCount())
	}
	if n := tb.doc.LineLen(p.Row); p.Col < 0 || p.Col > n {
		violate(op, "%s col %d outside [0, %d] on row %d", name, p.Col, n, p.Row)
	}
}

// checkCursor validates both points of c.
func (tb *TextBuffer) checkCursor(op string, c *cursor.Cursor) {
	if c == nil {
		violate(op, "nil cursor")
	}
	tb.checkPoint(op, "active", c.Active())
	tb.checkPoint(op, "trailing", c.Trailing())
}

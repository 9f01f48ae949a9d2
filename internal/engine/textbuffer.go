package engine

import (
	"io"
	"strings"

	"github.com/dshills/elditor/internal/engine/buffer"
	"github.com/dshills/elditor/internal/engine/cursor"
)

// TextBuffer owns a document and applies cursor movement and edits to it.
// Cursors are borrowed for the duration of a call and never retained.
type TextBuffer struct {
	doc *buffer.Document
}

// New creates a text buffer. Without options it holds one empty line.
func New(opts ...Option) *TextBuffer {
	tb := &TextBuffer{}

	for _, opt := range opts {
		opt(tb)
	}

	if tb.doc == nil {
		tb.doc = buffer.New()
	}
	return tb
}

// NewFromReader creates a text buffer from the content of r.
func NewFromReader(r io.Reader) (*TextBuffer, error) {
	doc, err := buffer.LoadReader(r)
	if err != nil {
		return nil, err
	}
	return New(WithDocument(doc)), nil
}

// Read Operations

// LineCount returns the number of lines. It is never less than one.
func (tb *TextBuffer) LineCount() int {
	return tb.doc.LineCount()
}

// LineAt returns the text of a line, or an error wrapping
// ErrRowOutOfRange for rows outside the document.
func (tb *TextBuffer) LineAt(row int) (string, error) {
	return tb.doc.LineText(row)
}

// LineLen returns the number of characters on a line.
// It returns 0 for rows outside the document.
func (tb *TextBuffer) LineLen(row int) int {
	if !tb.doc.HasRow(row) {
		return 0
	}
	return tb.doc.LineLen(row)
}

// Lines returns a copy of all lines.
func (tb *TextBuffer) Lines() []string {
	return tb.doc.Lines()
}

// Text serializes the document, joining lines with '\n'.
func (tb *TextBuffer) Text() string {
	return buffer.Serialize(tb.doc)
}

// SelectedText returns the text between the cursor's ordered points with
// spanned lines joined by '\n'. It returns "" when nothing is selected.
func (tb *TextBuffer) SelectedText(c cursor.Cursor) string {
	tb.checkCursor("SelectedText", &c)
	if !c.InSelection() {
		return ""
	}

	left, right := c.Ordered()
	if left.Row == right.Row {
		return tb.doc.Line(left.Row).Slice(left.Col, right.Col)
	}

	var sb strings.Builder
	first := tb.doc.Line(left.Row)
	sb.WriteString(first.Slice(left.Col, first.Len()))
	for row := left.Row + 1; row < right.Row; row++ {
		sb.WriteRune(buffer.Terminator)
		sb.WriteString(tb.doc.Line(row).String())
	}
	sb.WriteRune(buffer.Terminator)
	sb.WriteString(tb.doc.Line(right.Row).Slice(0, right.Col))
	return sb.String()
}

// Point Movement

// MovePointUp moves p to the previous line, restoring the remembered
// column clamped to that line's length. On the first line it moves to
// column 0 and resets the remembered column.
func (tb *TextBuffer) MovePointUp(p *cursor.Point) {
	tb.checkPoint("MovePointUp", "point", *p)
	if p.Row > 0 {
		p.Row--
		p.Col = min(p.RememberedCol, tb.doc.LineLen(p.Row))
	} else {
		p.Col = 0
		p.RememberedCol = 0
	}
	tb.checkPoint("MovePointUp", "point", *p)
}

// MovePointDown moves p to the next line, restoring the remembered column
// clamped to that line's length. On the last line it moves to the end of
// the document and remembers that column.
func (tb *TextBuffer) MovePointDown(p *cursor.Point) {
	tb.checkPoint("MovePointDown", "point", *p)
	if p.Row+1 < tb.doc.LineCount() {
		p.Row++
		p.Col = min(p.RememberedCol, tb.doc.LineLen(p.Row))
	} else {
		p.Col = tb.doc.LineLen(p.Row)
		p.Remember()
	}
	tb.checkPoint("MovePointDown", "point", *p)
}

// MovePointLeft moves p one character back, crossing to the end of the
// previous line at column 0. Lines are never merged. No-op at (0:0).
func (tb *TextBuffer) MovePointLeft(p *cursor.Point) {
	tb.checkPoint("MovePointLeft", "point", *p)
	if p.Col > 0 {
		p.Col--
	} else if p.Row > 0 {
		p.Row--
		p.Col = tb.doc.LineLen(p.Row)
	}
	p.Remember()
	tb.checkPoint("MovePointLeft", "point", *p)
}

// MovePointRight moves p one character forward, crossing to column 0 of
// the next line at a line end. No-op at the end of the document.
func (tb *TextBuffer) MovePointRight(p *cursor.Point) {
	tb.checkPoint("MovePointRight", "point", *p)
	if p.Col < tb.doc.LineLen(p.Row) {
		p.Col++
	} else if p.Row+1 < tb.doc.LineCount() {
		p.Row++
		p.Col = 0
	}
	p.Remember()
	tb.checkPoint("MovePointRight", "point", *p)
}

// Cursor Movement

// MoveUp moves the active point up and collapses the selection.
func (tb *TextBuffer) MoveUp(c *cursor.Cursor) { tb.move("MoveUp", c, tb.MovePointUp, false) }

// MoveDown moves the active point down and collapses the selection.
func (tb *TextBuffer) MoveDown(c *cursor.Cursor) { tb.move("MoveDown", c, tb.MovePointDown, false) }

// MoveLeft moves the active point left and collapses the selection.
func (tb *TextBuffer) MoveLeft(c *cursor.Cursor) { tb.move("MoveLeft", c, tb.MovePointLeft, false) }

// MoveRight moves the active point right and collapses the selection.
func (tb *TextBuffer) MoveRight(c *cursor.Cursor) { tb.move("MoveRight", c, tb.MovePointRight, false) }

// ExtendUp moves the active point up, keeping the trailing point.
func (tb *TextBuffer) ExtendUp(c *cursor.Cursor) { tb.move("ExtendUp", c, tb.MovePointUp, true) }

// ExtendDown moves the active point down, keeping the trailing point.
func (tb *TextBuffer) ExtendDown(c *cursor.Cursor) { tb.move("ExtendDown", c, tb.MovePointDown, true) }

// ExtendLeft moves the active point left, keeping the trailing point.
func (tb *TextBuffer) ExtendLeft(c *cursor.Cursor) { tb.move("ExtendLeft", c, tb.MovePointLeft, true) }

// ExtendRight moves the active point right, keeping the trailing point.
func (tb *TextBuffer) ExtendRight(c *cursor.Cursor) {
	tb.move("ExtendRight", c, tb.MovePointRight, true)
}

// move applies a point movement to the active point of c.
func (tb *TextBuffer) move(op string, c *cursor.Cursor, step func(*cursor.Point), extend bool) {
	tb.checkCursor(op, c)

	p := c.Active()
	step(&p)
	if extend {
		c.BeginSelection()
		c.SetActive(p)
	} else {
		c.ResetTo(p)
	}

	tb.checkCursor(op, c)
}

// Write Operations

// InsertStringAt inserts text at the active point and leaves the caret
// right after it. Each '\n' in text splits the line; the part of the line
// that followed the caret is reattached after the last inserted segment.
//
// text must be non-empty and the cursor must not be selecting.
func (tb *TextBuffer) InsertStringAt(text string, c *cursor.Cursor) {
	const op = "InsertStringAt"
	tb.checkCursor(op, c)
	if text == "" {
		violate(op, "empty text")
	}
	if c.InSelection() {
		violate(op, "cursor is selecting; remove the selection first")
	}

	p := c.Active()
	segments := buffer.SplitLines(text)
	if len(segments) == 1 {
		line := buffer.NewLine(text)
		tb.doc.Splice(p.Row, p.Col, line)
		p.Col += line.Len()
	} else {
		tail := tb.doc.Truncate(p.Row, p.Col)
		tb.doc.Append(p.Row, buffer.NewLine(segments[0]))

		rest := make([]buffer.Line, len(segments)-1)
		for i, s := range segments[1:] {
			rest[i] = buffer.NewLine(s)
		}
		last := len(rest) - 1
		col := rest[last].Len()
		rest[last] = append(rest[last], tail...)
		tb.doc.InsertLines(p.Row+1, rest...)

		p.Row += len(segments) - 1
		p.Col = col
	}
	p.Remember()
	c.ResetTo(p)

	tb.checkCursor(op, c)
}

// RemoveStringAt deletes the selection if there is one. Otherwise it
// erases the character before the caret, merging the line into the
// previous one when the caret is at column 0. At (0:0) with no selection
// it does nothing.
func (tb *TextBuffer) RemoveStringAt(c *cursor.Cursor) {
	const op = "RemoveStringAt"
	tb.checkCursor(op, c)

	if c.InSelection() {
		tb.removeSelection(c)
	} else {
		tb.removeBefore(c)
	}

	tb.checkCursor(op, c)
}

// removeBefore implements backspace semantics for a collapsed cursor.
func (tb *TextBuffer) removeBefore(c *cursor.Cursor) {
	p := c.Active()
	switch {
	case p.Col == 0 && p.Row > 0:
		p.Col = tb.doc.JoinWithNext(p.Row - 1)
		p.Row--
	case p.Col > 0:
		tb.doc.Erase(p.Row, p.Col-1, p.Col)
		p.Col--
	}
	p.Remember()
	c.ResetTo(p)
}

// removeSelection deletes the text between the ordered points of c and
// collapses the cursor onto the left point.
func (tb *TextBuffer) removeSelection(c *cursor.Cursor) {
	left, right := c.Ordered()
	if left.Row == right.Row {
		tb.doc.Erase(left.Row, left.Col, right.Col)
	} else {
		tb.doc.Truncate(left.Row, left.Col)
		suffix := tb.doc.Line(right.Row)[right.Col:]
		tb.doc.Append(left.Row, suffix)
		tb.doc.DeleteLines(left.Row+1, right.Row+1)
	}
	left.Remember()
	c.ResetTo(left)
}

package buffer

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by buffer queries.
var (
	// ErrRowOutOfRange indicates a row outside [0, LineCount).
	ErrRowOutOfRange = errors.New("row out of range")
)

// Document is an ordered, row-addressed sequence of lines.
// It always holds at least one line.
//
// The structural helpers below assume their arguments are in bounds; callers
// (the engine) validate positions before mutating. Read queries meant for
// external collaborators return ErrRowOutOfRange instead.
type Document struct {
	lines []Line
}

// New creates a document holding a single empty line.
func New() *Document {
	return &Document{lines: []Line{{}}}
}

// FromLines creates a document from the given lines.
// With no lines it behaves like New.
func FromLines(lines ...string) *Document {
	if len(lines) == 0 {
		return New()
	}
	d := &Document{lines: make([]Line, len(lines))}
	for i, s := range lines {
		d.lines[i] = NewLine(s)
	}
	return d
}

// Read Operations

// LineCount returns the number of lines. It is never less than one.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// HasRow reports whether row addresses an existing line.
func (d *Document) HasRow(row int) bool {
	return row >= 0 && row < len(d.lines)
}

// LineText returns the text of a line.
func (d *Document) LineText(row int) (string, error) {
	if !d.HasRow(row) {
		return "", fmt.Errorf("line %d of %d: %w", row, len(d.lines), ErrRowOutOfRange)
	}
	return d.lines[row].String(), nil
}

// Line returns the line at row. The returned slice is borrowed from the
// document and must not be modified or retained across edits.
func (d *Document) Line(row int) Line {
	return d.lines[row]
}

// LineLen returns the number of characters on a line.
func (d *Document) LineLen(row int) int {
	return len(d.lines[row])
}

// Lines returns a copy of every line as strings.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// Write Operations

// Splice inserts text into a line before column col.
func (d *Document) Splice(row, col int, text []rune) {
	l := d.lines[row]
	out := make(Line, 0, len(l)+len(text))
	out = append(out, l[:col]...)
	out = append(out, text...)
	out = append(out, l[col:]...)
	d.lines[row] = out
}

// Erase removes the characters in [start, end) from a line.
func (d *Document) Erase(row, start, end int) {
	d.lines[row] = slices.Delete(d.lines[row], start, end)
}

// Truncate cuts a line to length col and returns the removed tail as a
// fresh copy.
func (d *Document) Truncate(row, col int) Line {
	l := d.lines[row]
	tail := l[col:].Clone()
	d.lines[row] = l[:col]
	return tail
}

// Append adds text to the end of a line.
func (d *Document) Append(row int, text []rune) {
	d.lines[row] = append(d.lines[row], text...)
}

// InsertLines inserts lines so that the first of them ends up at row at.
// at may equal LineCount to append at the end.
func (d *Document) InsertLines(at int, lines ...Line) {
	d.lines = slices.Insert(d.lines, at, lines...)
}

// DeleteLines removes the rows in [start, end). Removing every line leaves
// a single empty line behind.
func (d *Document) DeleteLines(start, end int) {
	d.lines = slices.Delete(d.lines, start, end)
	if len(d.lines) == 0 {
		d.lines = []Line{{}}
	}
}

// JoinWithNext appends the line after row onto row and removes it.
// Returns the length of row before the join.
func (d *Document) JoinWithNext(row int) int {
	n := len(d.lines[row])
	d.Append(row, d.lines[row+1])
	d.DeleteLines(row+1, row+2)
	return n
}

package cursor

import "fmt"

// Point is a caret location. Row and Col are 0-indexed; Col counts
// characters and may equal the line length (end of line).
// RememberedCol is the last deliberately chosen column, used to re-target
// the column when moving vertically across lines of different length.
type Point struct {
	Row           int
	Col           int
	RememberedCol int
}

// NewPoint creates a point whose remembered column equals col.
func NewPoint(row, col int) Point {
	return Point{Row: row, Col: col, RememberedCol: col}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare orders points by row, then column. RememberedCol is ignored.
// Returns -1 if p < other, 0 if they share a position, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// SamePosition returns true if both points address the same (row, col).
func (p Point) SamePosition(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Remember records the current column as the remembered column.
func (p *Point) Remember() {
	p.RememberedCol = p.Col
}

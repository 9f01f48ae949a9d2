// Package viewport tracks which part of the document is on screen.
package viewport

// Viewport is a window over the document measured in rows and display
// columns. It chases a target position so that the caret stays visible
// with at least ScrollOff rows of context above and below.
type Viewport struct {
	topRow     int
	leftColumn int
	width      int
	height     int
	scrollOff  int
}

// NewViewport creates a viewport of the given size.
func NewViewport(width, height, scrollOff int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	v.SetScrollOff(scrollOff)
	return v
}

// Width returns the viewport width in display columns.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height in rows.
func (v *Viewport) Height() int {
	return v.height
}

// TopRow returns the first visible document row.
func (v *Viewport) TopRow() int {
	return v.topRow
}

// LeftColumn returns the first visible display column.
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// Resize changes the viewport dimensions.
func (v *Viewport) Resize(width, height int) {
	v.width = max(0, width)
	v.height = max(0, height)
}

// SetScrollOff sets the number of context rows kept around the target.
func (v *Viewport) SetScrollOff(n int) {
	v.scrollOff = max(0, n)
}

// effectiveScrollOff shrinks the scroll-off when the window is too small
// to honour it on both sides.
func (v *Viewport) effectiveScrollOff() int {
	return min(v.scrollOff, max(0, (v.height-1)/2))
}

// VisibleRows returns the document rows [start, end) on screen for a
// document of lineCount rows.
func (v *Viewport) VisibleRows(lineCount int) (start, end int) {
	return v.topRow, min(lineCount, v.topRow+v.height)
}

// ToScreen converts a document row and display column to screen
// coordinates relative to the viewport origin.
func (v *Viewport) ToScreen(row, visualCol int) (x, y int) {
	return visualCol - v.leftColumn, row - v.topRow
}

// Chase scrolls the minimum amount needed to show the target row and
// display column. It returns true if the viewport moved.
func (v *Viewport) Chase(row, visualCol, lineCount int) bool {
	top, left := v.topRow, v.leftColumn
	off := v.effectiveScrollOff()

	// Vertical
	if row-off < v.topRow {
		v.topRow = row - off
	} else if row+off >= v.topRow+v.height {
		v.topRow = row + off - v.height + 1
	}
	maxTop := max(0, lineCount-v.height)
	v.topRow = max(0, min(v.topRow, maxTop))

	// Horizontal
	if visualCol < v.leftColumn {
		v.leftColumn = visualCol
	} else if v.width > 0 && visualCol >= v.leftColumn+v.width {
		v.leftColumn = visualCol - v.width + 1
	}
	v.leftColumn = max(0, v.leftColumn)

	return top != v.topRow || left != v.leftColumn
}

// Package layout maps buffer columns to display columns.
//
// A buffer column counts characters; a display column counts terminal
// cells. Tabs expand to the next tab stop and wide characters take two
// cells.
package layout

import (
	"github.com/dshills/elditor/internal/renderer/core"
)

// LineLayout is the visual form of one buffer line.
type LineLayout struct {
	// Cells holds one entry per display column. A wide character is
	// followed by a continuation cell; a tab becomes spaces.
	Cells []core.Cell

	// BufferCols maps a buffer column to the display column it starts at.
	// It has one extra entry for the end-of-line position.
	BufferCols []int
}

// Layout lays out text with the given tab stops. Control characters other
// than tab are shown as '?'.
func Layout(text string, tabs TabStops) *LineLayout {
	l := &LineLayout{
		Cells:      make([]core.Cell, 0, len(text)),
		BufferCols: make([]int, 0, len(text)+1),
	}
	style := core.DefaultStyle()

	for _, r := range text {
		col := len(l.Cells)
		l.BufferCols = append(l.BufferCols, col)

		switch {
		case r == '\t':
			for range tabs.Fill(col) {
				l.Cells = append(l.Cells, core.NewStyledCell(' ', style))
			}
		case core.RuneWidth(r) == 0:
			l.Cells = append(l.Cells, core.NewStyledCell('?', style))
		default:
			cell := core.NewStyledCell(r, style)
			l.Cells = append(l.Cells, cell)
			for i := 1; i < cell.Width; i++ {
				l.Cells = append(l.Cells, core.ContinuationCell())
			}
		}
	}
	l.BufferCols = append(l.BufferCols, len(l.Cells))
	return l
}

// Width returns the total display width of the line.
func (l *LineLayout) Width() int {
	return len(l.Cells)
}

// VisualColumn converts a buffer column to a display column. Columns past
// the end are extrapolated one cell per character.
func (l *LineLayout) VisualColumn(bufCol int) int {
	if bufCol < 0 {
		return 0
	}
	last := len(l.BufferCols) - 1
	if bufCol > last {
		return l.BufferCols[last] + bufCol - last
	}
	return l.BufferCols[bufCol]
}

// Span returns the display columns [start, end) covered by the buffer
// columns [from, to).
func (l *LineLayout) Span(from, to int) (start, end int) {
	return l.VisualColumn(from), l.VisualColumn(to)
}

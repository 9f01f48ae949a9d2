package renderer

import (
	"github.com/dshills/elditor/internal/engine/cursor"
	"github.com/dshills/elditor/internal/renderer/backend"
	"github.com/dshills/elditor/internal/renderer/core"
	"github.com/dshills/elditor/internal/renderer/layout"
	"github.com/dshills/elditor/internal/renderer/viewport"
)

// Options configures the renderer.
type Options struct {
	TabWidth       int        // Display columns per tab stop
	ScrollOff      int        // Rows kept around the caret
	ShowStatusLine bool       // Reserve the bottom row for status
	SelectionStyle core.Style // Style layered over selected text
	CaretStyle     core.Style // Style of the caret cell
	StatusStyle    core.Style // Style of the status line
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		TabWidth:       4,
		ScrollOff:      2,
		ShowStatusLine: true,
		SelectionStyle: core.StyleNamed("underline"),
		CaretStyle:     core.StyleNamed("reverse"),
		StatusStyle:    core.DefaultStyle().Reverse(),
	}
}

// Renderer is the main rendering facade. It is driven from the event
// loop and is not safe for concurrent use.
type Renderer struct {
	opts    Options
	backend backend.Backend
	tabs    layout.TabStops

	width  int
	height int

	viewport *viewport.Viewport
}

// New creates a renderer sized to the backend.
func New(be backend.Backend, opts Options) *Renderer {
	r := &Renderer{
		opts:     opts,
		backend:  be,
		tabs:     layout.NewTabStops(opts.TabWidth),
		viewport: viewport.NewViewport(0, 0, opts.ScrollOff),
	}
	r.Resize(be.Size())
	return r
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = max(0, width)
	r.height = max(0, height)
	r.viewport.Resize(r.width, r.textHeight())
}

// Viewport returns the viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// textHeight returns the rows available for document text.
func (r *Renderer) textHeight() int {
	if r.opts.ShowStatusLine && r.height > 1 {
		return r.height - 1
	}
	return r.height
}

// Render draws one frame: the visible rows of doc decorated for c and,
// when enabled, the status line. The viewport first scrolls so the
// caret is on screen.
func (r *Renderer) Render(doc Document, c cursor.Cursor, status StatusInfo) {
	caret := c.Active()
	caretLine, _ := doc.LineAt(caret.Row)
	caretCol := layout.Layout(caretLine, r.tabs).VisualColumn(caret.Col)
	r.viewport.Chase(caret.Row, caretCol, doc.LineCount())

	r.backend.Clear()

	start, end := r.viewport.VisibleRows(doc.LineCount())
	vm := BuildViewModel(doc, c, start, end)
	for _, lv := range vm.Lines {
		_, y := r.viewport.ToScreen(lv.Row, 0)
		r.drawLine(lv, y)
	}

	if r.opts.ShowStatusLine && r.height > 1 {
		r.drawStatus(status)
	}

	x, y := r.viewport.ToScreen(caret.Row, caretCol)
	if x >= 0 && x < r.viewport.Width() && y >= 0 && y < r.viewport.Height() {
		r.backend.ShowCursor(x, y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

// drawLine renders a single line at screen row y.
func (r *Renderer) drawLine(lv LineView, y int) {
	lay := layout.Layout(lv.Text, r.tabs)
	left := r.viewport.LeftColumn()

	type span struct {
		start, end int
		style      core.Style
	}
	spans := make([]span, 0, len(lv.Tags))
	for _, t := range lv.Tags {
		s, e := lay.Span(t.Start, t.End)
		spans = append(spans, span{start: s, end: e, style: r.tagStyle(t.Kind)})
	}

	for x := range r.viewport.Width() {
		col := left + x
		cell := core.EmptyCell()
		if col < len(lay.Cells) {
			cell = lay.Cells[col]
		}
		// The right half of a wide character cut off at the left edge.
		if x == 0 && cell.IsContinuation() {
			cell = core.EmptyCell()
		}
		for _, sp := range spans {
			if col >= sp.start && col < sp.end {
				cell.Style = cell.Style.Merge(sp.style)
			}
		}
		r.backend.SetCell(x, y, cell)
	}
}

// drawStatus renders the status line on the bottom row.
func (r *Renderer) drawStatus(info StatusInfo) {
	y := r.height - 1
	text := FormatStatus(info, r.width)

	x := 0
	for _, ch := range text {
		cell := core.NewStyledCell(ch, r.opts.StatusStyle)
		if cell.Width == 0 {
			cell = core.NewStyledCell('?', r.opts.StatusStyle)
		}
		r.backend.SetCell(x, y, cell)
		for i := 1; i < cell.Width; i++ {
			r.backend.SetCell(x+i, y, core.ContinuationCell())
		}
		x += cell.Width
	}
	for ; x < r.width; x++ {
		r.backend.SetCell(x, y, core.NewStyledCell(' ', r.opts.StatusStyle))
	}
}

func (r *Renderer) tagStyle(kind TagKind) core.Style {
	if kind == TagCaret {
		return r.opts.CaretStyle
	}
	return r.opts.SelectionStyle
}

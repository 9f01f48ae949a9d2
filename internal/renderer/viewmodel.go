package renderer

import (
	"unicode/utf8"

	"github.com/dshills/elditor/internal/engine/cursor"
)

// Document provides read access to the lines being displayed.
type Document interface {
	LineCount() int
	LineAt(row int) (string, error)
}

// TagKind identifies what a tag decorates.
type TagKind int

const (
	// TagSelection marks selected characters.
	TagSelection TagKind = iota
	// TagCaret marks the caret cell.
	TagCaret
)

// String returns the tag kind name.
func (k TagKind) String() string {
	switch k {
	case TagSelection:
		return "selection"
	case TagCaret:
		return "caret"
	default:
		return "unknown"
	}
}

// Tag decorates the buffer columns [Start, End) of one line.
type Tag struct {
	Kind  TagKind
	Start int
	End   int
}

// LineView is a visible line with its decorations.
type LineView struct {
	Row  int
	Text string
	Tags []Tag
}

// ViewModel is a snapshot of the visible rows.
type ViewModel struct {
	Lines []LineView
	Caret cursor.Point
}

// BuildViewModel snapshots rows [start, end) of doc and tags them for c.
// Rows outside the document are skipped.
func BuildViewModel(doc Document, c cursor.Cursor, start, end int) *ViewModel {
	start = max(0, start)
	end = min(end, doc.LineCount())

	vm := &ViewModel{Caret: c.Active()}
	if end <= start {
		return vm
	}

	vm.Lines = make([]LineView, 0, end-start)
	for row := start; row < end; row++ {
		text, err := doc.LineAt(row)
		if err != nil {
			break
		}
		vm.Lines = append(vm.Lines, LineView{Row: row, Text: text})
	}

	if c.InSelection() {
		vm.tagSelection(c)
	} else {
		vm.tag(c.Active().Row, Tag{Kind: TagCaret, Start: c.Active().Col, End: c.Active().Col + 1})
	}
	return vm
}

// Line returns the view of a document row, or nil if it is not visible.
func (vm *ViewModel) Line(row int) *LineView {
	if len(vm.Lines) == 0 {
		return nil
	}
	idx := row - vm.Lines[0].Row
	if idx < 0 || idx >= len(vm.Lines) {
		return nil
	}
	return &vm.Lines[idx]
}

func (vm *ViewModel) tagSelection(c cursor.Cursor) {
	left, right := c.Ordered()
	if left.Row == right.Row {
		vm.tag(left.Row, Tag{Kind: TagSelection, Start: left.Col, End: right.Col})
		return
	}

	// First row suffix, whole middle rows, last row prefix.
	for _, lv := range vm.Lines {
		switch {
		case lv.Row == left.Row:
			vm.tag(lv.Row, Tag{Kind: TagSelection, Start: left.Col, End: utf8.RuneCountInString(lv.Text)})
		case lv.Row > left.Row && lv.Row < right.Row:
			vm.tag(lv.Row, Tag{Kind: TagSelection, Start: 0, End: utf8.RuneCountInString(lv.Text)})
		case lv.Row == right.Row:
			vm.tag(lv.Row, Tag{Kind: TagSelection, Start: 0, End: right.Col})
		}
	}
}

func (vm *ViewModel) tag(row int, t Tag) {
	if t.End <= t.Start {
		return
	}
	if lv := vm.Line(row); lv != nil {
		lv.Tags = append(lv.Tags, t)
	}
}

package engine

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/elditor/internal/engine/cursor"
)

// applyRandomOp runs one randomly chosen public operation against tb.
func applyRandomOp(t *rapid.T, tb *TextBuffer, c *cursor.Cursor) {
	switch rapid.IntRange(0, 9).Draw(t, "op") {
	case 0:
		tb.MoveUp(c)
	case 1:
		tb.MoveDown(c)
	case 2:
		tb.MoveLeft(c)
	case 3:
		tb.MoveRight(c)
	case 4:
		tb.ExtendUp(c)
	case 5:
		tb.ExtendDown(c)
	case 6:
		tb.ExtendLeft(c)
	case 7:
		tb.ExtendRight(c)
	case 8:
		text := rapid.StringMatching(`[a-c\n]{1,6}`).Draw(t, "text")
		if c.InSelection() {
			tb.RemoveStringAt(c)
		}
		tb.InsertStringAt(text, c)
	case 9:
		tb.RemoveStringAt(c)
	}
}

func pointInBounds(tb *TextBuffer, p cursor.Point) bool {
	return p.Row >= 0 && p.Row < tb.LineCount() && p.Col >= 0 && p.Col <= tb.LineLen(p.Row)
}

func TestPropertyCursorAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringMatching(`[a-z\n]{0,30}`).Draw(t, "content")
		tb := New(WithContent(content))
		var c cursor.Cursor

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			applyRandomOp(t, tb, &c)

			if tb.LineCount() < 1 {
				t.Fatalf("document has %d lines", tb.LineCount())
			}
			if !pointInBounds(tb, c.Active()) || !pointInBounds(tb, c.Trailing()) {
				t.Fatalf("cursor %s out of bounds in %q", c, tb.Lines())
			}
		}
	})
}

func TestPropertyInsertThenRemoveRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringMatching(`[a-z\n]{0,20}`).Draw(t, "content")
		text := rapid.StringMatching(`[x-z\n]{1,8}`).Draw(t, "text")
		tb := New(WithContent(content))

		row := rapid.IntRange(0, tb.LineCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, tb.LineLen(row)).Draw(t, "col")
		start := cursor.NewPoint(row, col)
		c := cursor.New(start)

		tb.InsertStringAt(text, &c)
		end := c.Active()
		sel := cursor.NewSelection(end, start)
		if got := tb.SelectedText(sel); got != text {
			t.Fatalf("inserted %q but selection reads %q", text, got)
		}

		tb.RemoveStringAt(&sel)
		if got := tb.Text(); got != content {
			t.Fatalf("expected %q after removal, got %q", content, got)
		}
		if !sel.Active().SamePosition(start) {
			t.Fatalf("expected caret at %s, got %s", start, sel.Active())
		}
	})
}

func TestPropertyBackspaceCountsCharacters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringMatching(`[a-z\n]{0,20}`).Draw(t, "content")
		tb := New(WithContent(content))
		last := tb.LineCount() - 1
		c := cursor.New(cursor.NewPoint(last, tb.LineLen(last)))

		for i := 0; i < len(content); i++ {
			tb.RemoveStringAt(&c)
		}
		if tb.Text() != "" {
			t.Fatalf("expected empty document, got %q", tb.Text())
		}
		if !c.Active().SamePosition(cursor.NewPoint(0, 0)) {
			t.Fatalf("expected caret at (0:0), got %s", c.Active())
		}
	})
}

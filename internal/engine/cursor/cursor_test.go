package cursor

import (
	"testing"
)

// Point Tests

func TestNewPoint(t *testing.T) {
	p := NewPoint(2, 5)

	if p.Row != 2 || p.Col != 5 {
		t.Errorf("expected (2:5), got %s", p)
	}
	if p.RememberedCol != 5 {
		t.Errorf("expected remembered column 5, got %d", p.RememberedCol)
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{NewPoint(0, 0), NewPoint(0, 0), 0},
		{NewPoint(0, 1), NewPoint(0, 2), -1},
		{NewPoint(0, 9), NewPoint(1, 0), -1},
		{NewPoint(2, 0), NewPoint(1, 9), 1},
		{NewPoint(1, 3), NewPoint(1, 2), 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointCompareIgnoresRememberedCol(t *testing.T) {
	a := Point{Row: 1, Col: 1, RememberedCol: 7}
	b := Point{Row: 1, Col: 1, RememberedCol: 0}

	if a.Compare(b) != 0 {
		t.Error("points at the same position should compare equal")
	}
	if !a.SamePosition(b) {
		t.Error("points at the same position should report SamePosition")
	}
}

func TestPointBefore(t *testing.T) {
	if !NewPoint(0, 3).Before(NewPoint(1, 0)) {
		t.Error("(0:3) should be before (1:0)")
	}
	if NewPoint(1, 0).Before(NewPoint(1, 0)) {
		t.Error("a point should not be before itself")
	}
}

func TestPointRemember(t *testing.T) {
	p := Point{Row: 0, Col: 4, RememberedCol: 10}
	p.Remember()

	if p.RememberedCol != 4 {
		t.Errorf("expected remembered column 4, got %d", p.RememberedCol)
	}
}

// Cursor Tests

func TestZeroCursor(t *testing.T) {
	var c Cursor

	if c.InSelection() {
		t.Error("zero cursor should not be selecting")
	}
	if !c.Active().SamePosition(NewPoint(0, 0)) {
		t.Errorf("expected (0:0), got %s", c.Active())
	}
}

func TestCursorTrailingDefaultsToActive(t *testing.T) {
	c := New(NewPoint(3, 1))

	if !c.Trailing().SamePosition(c.Active()) {
		t.Errorf("expected trailing %s, got %s", c.Active(), c.Trailing())
	}
}

func TestCursorSelection(t *testing.T) {
	c := New(NewPoint(0, 2))
	c.BeginSelection()

	if c.InSelection() {
		t.Error("anchor at the active point is not a selection")
	}

	c.SetActive(NewPoint(1, 3))
	if !c.InSelection() {
		t.Error("expected selection after moving the active point")
	}
	if !c.Trailing().SamePosition(NewPoint(0, 2)) {
		t.Errorf("expected trailing (0:2), got %s", c.Trailing())
	}
}

func TestCursorBeginSelectionKeepsAnchor(t *testing.T) {
	c := New(NewPoint(0, 0))
	c.BeginSelection()
	c.SetActive(NewPoint(0, 4))
	c.BeginSelection()

	if !c.Trailing().SamePosition(NewPoint(0, 0)) {
		t.Errorf("second BeginSelection moved the anchor to %s", c.Trailing())
	}
}

func TestCursorSelectionShrinksBackToEmpty(t *testing.T) {
	c := New(NewPoint(0, 1))
	c.BeginSelection()
	c.SetActive(NewPoint(0, 2))
	c.SetActive(NewPoint(0, 1))

	if c.InSelection() {
		t.Error("active back on the anchor should not be selecting")
	}

	c.SetActive(NewPoint(0, 0))
	if !c.InSelection() {
		t.Error("anchor should survive an empty intermediate state")
	}
}

func TestCursorOrdered(t *testing.T) {
	tests := []struct {
		name        string
		active      Point
		trailing    Point
		left, right Point
	}{
		{"forward", NewPoint(1, 3), NewPoint(0, 2), NewPoint(0, 2), NewPoint(1, 3)},
		{"backward", NewPoint(0, 2), NewPoint(1, 3), NewPoint(0, 2), NewPoint(1, 3)},
		{"same row", NewPoint(4, 1), NewPoint(4, 6), NewPoint(4, 1), NewPoint(4, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSelection(tt.active, tt.trailing)
			left, right := c.Ordered()
			if !left.SamePosition(tt.left) || !right.SamePosition(tt.right) {
				t.Errorf("expected (%s, %s), got (%s, %s)", tt.left, tt.right, left, right)
			}
		})
	}
}

func TestCursorResetTrailing(t *testing.T) {
	c := NewSelection(NewPoint(2, 2), NewPoint(0, 0))
	c.ResetTrailing()

	if c.InSelection() {
		t.Error("ResetTrailing should collapse the selection")
	}
	if !c.Trailing().SamePosition(NewPoint(2, 2)) {
		t.Errorf("expected trailing (2:2), got %s", c.Trailing())
	}
}

func TestCursorResetTo(t *testing.T) {
	c := NewSelection(NewPoint(2, 2), NewPoint(0, 0))
	c.ResetTo(NewPoint(1, 1))

	if c.InSelection() {
		t.Error("ResetTo should collapse the selection")
	}
	if !c.Active().SamePosition(NewPoint(1, 1)) || !c.Trailing().SamePosition(NewPoint(1, 1)) {
		t.Errorf("expected both points at (1:1), got %s / %s", c.Active(), c.Trailing())
	}
}

func TestCursorString(t *testing.T) {
	if got := New(NewPoint(1, 2)).String(); got != "Cursor(1:2)" {
		t.Errorf("unexpected string %q", got)
	}
	if got := NewSelection(NewPoint(0, 1), NewPoint(0, 4)).String(); got != "Selection((0:4)←(0:1))" {
		t.Errorf("unexpected string %q", got)
	}
}

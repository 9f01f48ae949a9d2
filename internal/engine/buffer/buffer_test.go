package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDocument(t *testing.T) {
	d := New()

	if d.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", d.LineCount())
	}
	if d.LineLen(0) != 0 {
		t.Errorf("expected empty line, got length %d", d.LineLen(0))
	}
}

func TestFromLinesEmpty(t *testing.T) {
	d := FromLines()

	if d.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", d.LineCount())
	}
}

func TestLineText(t *testing.T) {
	d := FromLines("hello", "world")

	got, err := d.LineText(1)
	if err != nil {
		t.Fatalf("LineText failed: %v", err)
	}
	if got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}

func TestLineTextOutOfRange(t *testing.T) {
	d := FromLines("only")

	for _, row := range []int{-1, 1, 100} {
		_, err := d.LineText(row)
		if !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("row %d: expected ErrRowOutOfRange, got %v", row, err)
		}
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		text string
		want string
	}{
		{"start", "world", 0, "hello ", "hello world"},
		{"middle", "held", 2, "l", "helld"},
		{"end", "hello", 5, "!", "hello!"},
		{"empty line", "", 0, "abc", "abc"},
		{"multibyte", "héllo", 2, "X", "héXllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromLines(tt.line)
			d.Splice(0, tt.col, []rune(tt.text))
			if got := d.Line(0).String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErase(t *testing.T) {
	d := FromLines("hello world")
	d.Erase(0, 5, 11)

	if got := d.Line(0).String(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestTruncateReturnsIndependentTail(t *testing.T) {
	d := FromLines("hello world")

	tail := d.Truncate(0, 5)
	d.Append(0, []rune("!!!!!!"))

	if tail.String() != " world" {
		t.Errorf("tail was overwritten: %q", tail.String())
	}
	if got := d.Line(0).String(); got != "hello!!!!!!" {
		t.Errorf("expected %q, got %q", "hello!!!!!!", got)
	}
}

func TestInsertLines(t *testing.T) {
	d := FromLines("a", "d")
	d.InsertLines(1, NewLine("b"), NewLine("c"))

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	d.InsertLines(d.LineCount(), NewLine("e"))
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteLines(t *testing.T) {
	d := FromLines("a", "b", "c", "d")
	d.DeleteLines(1, 3)

	if diff := cmp.Diff([]string{"a", "d"}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteAllLinesKeepsOne(t *testing.T) {
	d := FromLines("a", "b")
	d.DeleteLines(0, 2)

	if diff := cmp.Diff([]string{""}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinWithNext(t *testing.T) {
	d := FromLines("ab", "cd", "ef")

	n := d.JoinWithNext(0)
	if n != 2 {
		t.Errorf("expected previous length 2, got %d", n)
	}
	if diff := cmp.Diff([]string{"abcd", "ef"}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	d := FromLines("a")
	lines := d.Lines()
	lines[0] = "changed"

	if got := d.Line(0).String(); got != "a" {
		t.Errorf("document changed through Lines(): %q", got)
	}
}

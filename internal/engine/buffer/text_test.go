package buffer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n", []string{"a", ""}},
		{"\n", []string{"", ""}},
		{"\n\n", []string{"", "", ""}},
		{"a\r\nb", []string{"a\r", "b"}},
	}

	for _, tt := range tests {
		got := SplitLines(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	d := Load("")

	if d.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", d.LineCount())
	}
}

func TestLoadTrailingTerminator(t *testing.T) {
	d := Load("a\nb\n")

	if diff := cmp.Diff([]string{"a", "b", ""}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		lines []string
		want  string
	}{
		{[]string{""}, ""},
		{[]string{"a", "b"}, "a\nb"},
		{[]string{"a", "b", ""}, "a\nb\n"},
		{[]string{"", ""}, "\n"},
	}

	for _, tt := range tests {
		if got := Serialize(FromLines(tt.lines...)); got != tt.want {
			t.Errorf("Serialize(%q) = %q, want %q", tt.lines, got, tt.want)
		}
	}
}

func TestLoadReader(t *testing.T) {
	d, err := LoadReader(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinLines(t *testing.T) {
	if got := JoinLines([]string{"a", "", "b"}); got != "a\n\nb" {
		t.Errorf("expected %q, got %q", "a\n\nb", got)
	}
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "text")
		if got := Serialize(Load(s)); got != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, got)
		}
	})
}

func TestRoundTripLineHeavy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[ab\n]{0,30}`).Draw(t, "text")
		d := Load(s)
		if d.LineCount() != strings.Count(s, "\n")+1 {
			t.Fatalf("expected %d lines, got %d", strings.Count(s, "\n")+1, d.LineCount())
		}
		if got := Serialize(d); got != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, got)
		}
	})
}

func TestRoundTripInvalidUTF8(t *testing.T) {
	tests := []string{
		"caf\xe9\n",
		"\xff\xfe",
		"a\xe2\x82\nb",
		"\xef\xbf\xbd\xc0",
	}
	for _, s := range tests {
		if got := Serialize(Load(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestRoundTripBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOf(rapid.Byte()).Draw(t, "bytes"))
		if got := Serialize(Load(s)); got != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, got)
		}
	})
}

func TestLineRawBytes(t *testing.T) {
	l := NewLine("caf\xe9!")
	if l.Len() != 5 {
		t.Fatalf("expected 5 columns, got %d", l.Len())
	}
	if got := l.Slice(3, 4); got != "\xe9" {
		t.Errorf("expected raw byte, got %q", got)
	}
	if got := l.Slice(0, 3); got != "caf" {
		t.Errorf("expected %q, got %q", "caf", got)
	}
	if got := l.String(); got != "caf\xe9!" {
		t.Errorf("expected %q, got %q", "caf\xe9!", got)
	}
}

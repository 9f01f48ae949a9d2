package buffer

import "unicode/utf8"

// Line is the content of one row. It never contains the line terminator.
// Columns index runes, not bytes. A byte that is not part of valid UTF-8
// occupies one column and is stored as a negative rune so that String
// reproduces it unchanged.
type Line []rune

// NewLine creates a line from a string.
func NewLine(s string) Line {
	l := make(Line, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByte(s[i])
		}
		l = append(l, r)
		i += size
	}
	return l
}

// rawByte encodes an invalid byte as a rune no decoder can produce.
func rawByte(b byte) rune {
	return -1 - rune(b)
}

// appendRune encodes r, writing raw bytes back verbatim.
func appendRune(buf []byte, r rune) []byte {
	if r < 0 {
		return append(buf, byte(-1-r))
	}
	return utf8.AppendRune(buf, r)
}

// Len returns the number of characters in the line.
func (l Line) Len() int {
	return len(l)
}

// String returns the line as a string.
func (l Line) String() string {
	return l.Slice(0, len(l))
}

// Slice returns the characters in [start, end) as a string.
func (l Line) Slice(start, end int) string {
	buf := make([]byte, 0, end-start)
	for _, r := range l[start:end] {
		buf = appendRune(buf, r)
	}
	return string(buf)
}

// Clone returns a copy that shares no storage with l.
func (l Line) Clone() Line {
	if l == nil {
		return Line{}
	}
	out := make(Line, len(l))
	copy(out, l)
	return out
}

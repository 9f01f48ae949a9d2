package buffer

import (
	"io"
	"strings"
)

// Terminator separates lines in loaded and serialized text.
const Terminator = '\n'

// SplitLines splits text into line segments on the terminator.
// A terminator at the end of text yields one trailing empty segment, and
// empty text yields a single empty segment:
//
//	"a"    -> ["a"]
//	"a\nb" -> ["a", "b"]
//	"a\n"  -> ["a", ""]
//	""     -> [""]
func SplitLines(text string) []string {
	return strings.Split(text, string(Terminator))
}

// JoinLines joins lines with the terminator, adding none at the end.
func JoinLines(lines []string) string {
	return strings.Join(lines, string(Terminator))
}

// Load builds a document from raw text using the SplitLines rule.
// The result always has at least one line.
func Load(raw string) *Document {
	segments := SplitLines(raw)
	lines := make([]Line, len(segments))
	for i, s := range segments {
		lines[i] = NewLine(s)
	}
	return &Document{lines: lines}
}

// LoadReader reads all of r and loads it as a document.
func LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Load(string(data)), nil
}

// Serialize joins the document's lines with the terminator. Bytes that
// were not valid UTF-8 on load are written back unchanged.
// ["a","b"] serializes to "a\nb" and ["a","b",""] to "a\nb\n".
func Serialize(d *Document) string {
	return JoinLines(d.Lines())
}

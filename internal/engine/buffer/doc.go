// Package buffer holds the line-oriented document model used by the editor
// engine.
//
// A Document is an ordered sequence of Lines and always contains at least
// one line. Lines are rune slices and never store a line terminator; the
// terminator only exists at the edges, when text is loaded or serialized.
//
// The buffer package provides:
//
//   - Line, an owned and mutable rune sequence
//   - Document, the row-addressed container with structural edit helpers
//     (splice, erase, truncate, append, insert and delete rows)
//   - Load, Serialize and SplitLines, which share one terminator rule
//
// Basic usage:
//
//	doc := buffer.Load("hello\nworld")
//	doc.LineCount()          // 2
//	doc.LineText(1)          // "world", nil
//	buffer.Serialize(doc)    // "hello\nworld"
//
// Terminator rule:
//
// A '\n' marks a boundary between two lines. A terminator at the very end of
// the text yields one trailing empty line, so "a\n" loads as ["a", ""] and
// Serialize(Load(s)) == s for every valid UTF-8 string s.
//
// Thread Safety:
//
// Document is not safe for concurrent use. The editing session owns it and
// mutates it from a single goroutine.
package buffer

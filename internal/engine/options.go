package engine

import (
	"github.com/dshills/elditor/internal/engine/buffer"
)

// Option configures a TextBuffer during creation.
type Option func(*TextBuffer)

// WithContent loads the initial content of the buffer from raw text.
func WithContent(content string) Option {
	return func(tb *TextBuffer) {
		tb.doc = buffer.Load(content)
	}
}

// WithLines sets the initial content line by line.
func WithLines(lines ...string) Option {
	return func(tb *TextBuffer) {
		tb.doc = buffer.FromLines(lines...)
	}
}

// WithDocument makes the buffer own an existing document.
func WithDocument(doc *buffer.Document) Option {
	return func(tb *TextBuffer) {
		if doc != nil {
			tb.doc = doc
		}
	}
}

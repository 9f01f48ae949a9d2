// Package engine provides the text-buffer editing engine for elditor.
//
// The engine package combines the line document from the buffer package
// with the caret model from the cursor package. TextBuffer owns the
// document and exposes every movement and mutation; cursors are owned by
// the caller and updated in place by each call.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: Line and Document, plus the load/serialize terminator rule
//   - cursor: Point (row, col, remembered column) and Cursor (active point
//     with an optional selection anchor)
//
// # Basic Usage
//
//	tb := engine.New()
//	var c cursor.Cursor
//
//	tb.InsertStringAt("hello", &c)    // ["hello"], caret (0:5)
//	tb.InsertStringAt("\nworld", &c)  // ["hello", "world"], caret (1:5)
//
//	tb.ExtendLeft(&c)                 // select "d"
//	tb.RemoveStringAt(&c)             // ["hello", "worl"], caret (1:4)
//
// # Movement
//
// Plain moves (MoveUp, MoveDown, MoveLeft, MoveRight) move the active point
// and collapse any selection. Extend moves (ExtendUp, ...) move the active
// point and keep the trailing point, growing or shrinking the selection.
// Horizontal moves record the column as the remembered column; vertical
// moves restore it, clamped to the target line length.
//
// # Mutation
//
// InsertStringAt requires non-empty text and no active selection; callers
// that type over a selection remove it first. RemoveStringAt deletes the
// selection if there is one, and otherwise behaves like backspace, merging
// the line into the previous one at column 0.
//
// # Error Handling
//
// Every public operation validates the cursor on entry and exit. A point
// outside the document, or an insert while selecting, is a programming
// error: the engine panics with *ContractError and never leaves a partial
// edit behind. Read queries for external collaborators (LineAt) return an
// error wrapping ErrRowOutOfRange instead.
//
// # Thread Safety
//
// TextBuffer is not safe for concurrent use. One editing session calls it
// from one goroutine, to completion, before handling the next event.
package engine

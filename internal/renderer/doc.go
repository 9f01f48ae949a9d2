// Package renderer draws a document and its cursor through a backend.
//
// Rendering happens in two steps. BuildViewModel snapshots the visible
// rows and tags the ranges that need decoration: the selection, or the
// caret cell when nothing is selected. Renderer then lays each row out
// in display columns, applies the tag styles and writes the cells to the
// backend along with an optional status line.
//
// Architecture:
//
//	┌──────────────────────────────┐
//	│    Renderer (Facade)         │
//	├──────────────────────────────┤
//	│ ViewModel │ Viewport │ Layout│
//	├──────────────────────────────┤
//	│    Backend Abstraction       │
//	├──────────────────────────────┤
//	│ Terminal (tcell) │ Null      │
//	└──────────────────────────────┘
//
// Usage:
//
//	be, _ := backend.NewTerminal()
//	r := renderer.New(be, renderer.DefaultOptions())
//	r.Render(tb, cur, renderer.StatusInfo{Name: "notes.txt"})
package renderer

package lua

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/elditor/internal/engine/cursor"
	"github.com/dshills/elditor/internal/input"
)

// Editor is the surface scripts drive.
type Editor interface {
	// Apply performs an editor action.
	Apply(a input.Action) error

	// LineCount returns the number of lines in the document.
	LineCount() int

	// LineAt returns the text of a 0-indexed row.
	LineAt(row int) (string, error)

	// Caret returns the active cursor point.
	Caret() cursor.Point

	// SelectedText returns the selected text, or "" without a selection.
	SelectedText() string

	// SetMessage shows a message on the status line.
	SetMessage(msg string)
}

// OpenEditor installs the global "editor" table bound to ed.
func OpenEditor(s *State, ed Editor) {
	m := &editorModule{ed: ed}
	s.RegisterModule("editor", map[string]lua.LGFunction{
		"insert":        m.insert,
		"backspace":     m.backspace,
		"delete":        m.delete,
		"move":          m.move,
		"save":          m.save,
		"line_count":    m.lineCount,
		"line":          m.line,
		"cursor":        m.cursor,
		"selected_text": m.selectedText,
		"message":       m.message,
	})
}

// RunFile runs a script file with the editor module installed.
func RunFile(ctx context.Context, path string, ed Editor, opts ...StateOption) error {
	s := NewState(opts...)
	defer s.Close()

	OpenEditor(s, ed)
	return s.DoFile(ctx, path)
}

type editorModule struct {
	ed Editor
}

func (m *editorModule) apply(L *lua.LState, a input.Action) {
	if err := m.ed.Apply(a); err != nil {
		L.RaiseError("%s: %v", a.Name, err)
	}
}

// insert(text)
// Inserts text at the caret, replacing any selection.
func (m *editorModule) insert(L *lua.LState) int {
	text := L.CheckString(1)
	m.apply(L, input.Insert(text))
	return 0
}

// backspace()
// Removes the selection or the character before the caret.
func (m *editorModule) backspace(L *lua.LState) int {
	m.apply(L, input.Action{Name: input.ActionBackspace})
	return 0
}

// delete()
// Removes the selection or the character after the caret.
func (m *editorModule) delete(L *lua.LState) int {
	m.apply(L, input.Action{Name: input.ActionDelete})
	return 0
}

// move(direction, [extend])
// Moves the caret "up", "down", "left" or "right".
func (m *editorModule) move(L *lua.LState) int {
	dir, err := input.ParseDirection(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	action, err := input.Move(dir, L.OptBool(2, false))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	m.apply(L, action)
	return 0
}

// save()
// Writes the document to its storage.
func (m *editorModule) save(L *lua.LState) int {
	m.apply(L, input.Action{Name: input.ActionSave})
	return 0
}

// line_count() -> number
func (m *editorModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.ed.LineCount()))
	return 1
}

// line(n) -> string
// Returns the text of a 1-indexed line.
func (m *editorModule) line(L *lua.LState) int {
	n := L.CheckInt(1)
	text, err := m.ed.LineAt(n - 1)
	if err != nil {
		L.RaiseError("line: %v", err)
		return 0
	}
	L.Push(lua.LString(text))
	return 1
}

// cursor() -> row, col
// Returns the 1-indexed caret position.
func (m *editorModule) cursor(L *lua.LState) int {
	p := m.ed.Caret()
	L.Push(lua.LNumber(p.Row + 1))
	L.Push(lua.LNumber(p.Col + 1))
	return 2
}

// selected_text() -> string
func (m *editorModule) selectedText(L *lua.LState) int {
	L.Push(lua.LString(m.ed.SelectedText()))
	return 1
}

// message(text)
func (m *editorModule) message(L *lua.LState) int {
	m.ed.SetMessage(L.CheckString(1))
	return 0
}

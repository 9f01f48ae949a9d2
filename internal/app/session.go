package app

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/elditor/internal/engine"
	"github.com/dshills/elditor/internal/engine/cursor"
	"github.com/dshills/elditor/internal/input"
	"github.com/dshills/elditor/internal/renderer"
	"github.com/dshills/elditor/internal/storage"
)

// Session is one open document: the text buffer, its cursor and where
// it is stored. It is owned by the event loop and not safe for
// concurrent use.
type Session struct {
	id    string
	tb    *engine.TextBuffer
	cur   cursor.Cursor
	store storage.Storage
	name  string

	modified bool
	message  string

	// saved is the content last read from or written to the store.
	saved []byte

	logger *Logger
}

// NewScratchSession creates a session with an empty document and no
// storage. Saving it fails with ErrNoFilePath.
func NewScratchSession(logger *Logger) *Session {
	return newSession(engine.New(), nil, nil, logger)
}

// OpenSession loads a document from store.
func OpenSession(store storage.Storage, logger *Logger) (*Session, error) {
	data, err := store.ReadAll()
	if err != nil {
		return nil, NewOperationError("open", storage.NameOf(store), err)
	}
	tb, err := engine.NewFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewOperationError("open", storage.NameOf(store), err)
	}
	return newSession(tb, store, data, logger), nil
}

func newSession(tb *engine.TextBuffer, store storage.Storage, saved []byte, logger *Logger) *Session {
	if logger == nil {
		logger = NullLogger
	}
	id := uuid.NewString()
	s := &Session{
		id:     id,
		tb:     tb,
		store:  store,
		name:   storage.NameOf(store),
		saved:  saved,
		logger: logger.WithComponent("session").WithField("session", id),
	}
	s.logger.Info("opened %s (%d lines)", s.name, tb.LineCount())
	return s
}

// ID returns the unique session id.
func (s *Session) ID() string {
	return s.id
}

// Name returns the display name of the document.
func (s *Session) Name() string {
	return s.name
}

// Buffer returns the text buffer.
func (s *Session) Buffer() *engine.TextBuffer {
	return s.tb
}

// Cursor returns a copy of the cursor.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Caret returns the active cursor point.
func (s *Session) Caret() cursor.Point {
	return s.cur.Active()
}

// LineCount returns the number of lines in the document.
func (s *Session) LineCount() int {
	return s.tb.LineCount()
}

// LineAt returns the text of a row.
func (s *Session) LineAt(row int) (string, error) {
	return s.tb.LineAt(row)
}

// SelectedText returns the selected text, or "" without a selection.
func (s *Session) SelectedText() string {
	return s.tb.SelectedText(s.cur)
}

// Modified reports whether the document changed since it was last
// opened or saved.
func (s *Session) Modified() bool {
	return s.modified
}

// Message returns the status message.
func (s *Session) Message() string {
	return s.message
}

// SetMessage sets the status message.
func (s *Session) SetMessage(msg string) {
	s.message = msg
}

// Status returns the status line state.
func (s *Session) Status() renderer.StatusInfo {
	p := s.cur.Active()
	return renderer.StatusInfo{
		Name:     s.name,
		Modified: s.modified,
		Row:      p.Row,
		Col:      p.Col,
		Message:  s.message,
	}
}

// Apply performs an action on the document. ActionQuit returns ErrQuit.
func (s *Session) Apply(a input.Action) error {
	switch a.Name {
	case input.ActionMoveUp:
		s.tb.MoveUp(&s.cur)
	case input.ActionMoveDown:
		s.tb.MoveDown(&s.cur)
	case input.ActionMoveLeft:
		s.tb.MoveLeft(&s.cur)
	case input.ActionMoveRight:
		s.tb.MoveRight(&s.cur)
	case input.ActionExtendUp:
		s.tb.ExtendUp(&s.cur)
	case input.ActionExtendDown:
		s.tb.ExtendDown(&s.cur)
	case input.ActionExtendLeft:
		s.tb.ExtendLeft(&s.cur)
	case input.ActionExtendRight:
		s.tb.ExtendRight(&s.cur)
	case input.ActionClearSelection:
		s.cur.ResetTo(s.cur.Active())
	case input.ActionInsert:
		s.insert(a.Text)
	case input.ActionBackspace:
		s.backspace()
	case input.ActionDelete:
		s.deleteForward()
	case input.ActionSave:
		return s.Save()
	case input.ActionQuit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Name)
	}
	return nil
}

// insert types text, replacing the selection.
func (s *Session) insert(text string) {
	if s.cur.InSelection() {
		s.tb.RemoveStringAt(&s.cur)
		s.modified = true
	}
	if text == "" {
		return
	}
	s.tb.InsertStringAt(text, &s.cur)
	s.modified = true
}

// backspace removes the selection or the character before the caret.
func (s *Session) backspace() {
	p := s.cur.Active()
	if !s.cur.InSelection() && p.Row == 0 && p.Col == 0 {
		return
	}
	s.tb.RemoveStringAt(&s.cur)
	s.modified = true
}

// deleteForward removes the selection or the character after the caret.
func (s *Session) deleteForward() {
	if s.cur.InSelection() {
		s.tb.RemoveStringAt(&s.cur)
		s.modified = true
		return
	}

	before := s.cur.Active()
	s.tb.MoveRight(&s.cur)
	if s.cur.Active().SamePosition(before) {
		return
	}
	s.tb.RemoveStringAt(&s.cur)
	s.modified = true
}

// Save writes the document to its storage.
func (s *Session) Save() error {
	if s.store == nil {
		return NewOperationError("save", s.name, ErrNoFilePath)
	}

	data := []byte(s.tb.Text())
	if err := s.store.WriteAll(data); err != nil {
		s.logger.Error("save failed: %v", err)
		return NewOperationError("save", s.name, err)
	}

	s.saved = data
	s.modified = false
	s.message = fmt.Sprintf("wrote %d lines", s.tb.LineCount())
	s.logger.Info("saved %s (%d bytes)", s.name, len(data))
	return nil
}

// CheckDisk compares the stored content with what was last loaded or
// saved. If another program changed it, the status message says so and
// CheckDisk returns true.
func (s *Session) CheckDisk() bool {
	if s.store == nil {
		return false
	}

	data, err := s.store.ReadAll()
	if err != nil {
		s.logger.Warn("re-reading %s: %v", s.name, err)
		return false
	}
	if bytes.Equal(data, s.saved) {
		return false
	}

	s.message = "file changed on disk"
	s.logger.Info("%s changed on disk", s.name)
	return true
}

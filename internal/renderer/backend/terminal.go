package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/elditor/internal/renderer/core"
)

// Terminal is the tcell implementation of Backend.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// locked runs fn with the screen lock held.
func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err != nil {
			return
		}
		s.SetStyle(tcell.StyleDefault)
		s.SetCursorStyle(tcell.CursorStyleSteadyBar)
	})
	return err
}

func (t *Terminal) Shutdown() {
	t.locked(func(s tcell.Screen) { s.Fini() })
}

func (t *Terminal) Size() (width, height int) {
	t.locked(func(s tcell.Screen) { width, height = s.Size() })
	return width, height
}

// SetCell draws cell. Continuation cells are skipped because tcell
// spreads a wide rune over both columns itself.
func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		return
	}
	style := tcellStyle(cell.Style)
	t.locked(func(s tcell.Screen) { s.SetContent(x, y, cell.Rune, nil, style) })
}

func (t *Terminal) Clear() {
	t.locked(func(s tcell.Screen) { s.Clear() })
}

func (t *Terminal) Show() {
	t.locked(func(s tcell.Screen) { s.Show() })
}

func (t *Terminal) ShowCursor(x, y int) {
	t.locked(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

func (t *Terminal) HideCursor() {
	t.locked(func(s tcell.Screen) { s.HideCursor() })
}

// PollEvent blocks until an event the editor handles arrives. Once the
// screen is finalized it returns an EventNone.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{Type: EventNone}
		case *tcell.EventResize:
			t.locked(func(s tcell.Screen) { s.Sync() })
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return InterruptEvent(ev.Data())
		case *tcell.EventKey:
			if key, ok := fromTcellKey[ev.Key()]; ok {
				return KeyEvent(key, ev.Rune(), fromTcellMod(ev.Modifiers()))
			}
		}
	}
}

// PostEvent queues a key or interrupt event. Other event types are
// dropped, as is anything posted while tcell's queue is full.
func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(toTcellKey(event.Key), event.Rune, toTcellMod(event.Mod))
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Data)
	default:
		return
	}
	_ = t.screen.PostEvent(ev)
}

var attrMap = []struct {
	ours core.Attribute
	tc   tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

func tcellStyle(s core.Style) tcell.Style {
	var attrs tcell.AttrMask
	for _, a := range attrMap {
		if s.Attributes.Has(a.ours) {
			attrs |= a.tc
		}
	}
	return tcell.StyleDefault.Attributes(attrs)
}

var fromTcellKey = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlS:      KeyCtrlS,
}

func toTcellKey(k Key) tcell.Key {
	if k == KeyBackspace {
		return tcell.KeyBackspace2
	}
	for tk, ours := range fromTcellKey {
		if ours == k {
			return tk
		}
	}
	return tcell.KeyRune
}

var modMap = []struct {
	ours ModMask
	tc   tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
}

func fromTcellMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, mm := range modMap {
		if m&mm.tc != 0 {
			out |= mm.ours
		}
	}
	return out
}

func toTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, mm := range modMap {
		if m.Has(mm.ours) {
			out |= mm.tc
		}
	}
	return out
}

var _ Backend = (*Terminal)(nil)

package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/elditor/internal/renderer/backend"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Chord is a named key plus the Shift modifier.
type Chord struct {
	Key   backend.Key
	Shift bool
}

// ChordOf returns the chord for a key event.
func ChordOf(ev backend.Event) Chord {
	return Chord{Key: ev.Key, Shift: ev.Mod.Has(backend.ModShift)}
}

var keyNames = map[string]backend.Key{
	"escape":    backend.KeyEscape,
	"esc":       backend.KeyEscape,
	"enter":     backend.KeyEnter,
	"return":    backend.KeyEnter,
	"cr":        backend.KeyEnter,
	"tab":       backend.KeyTab,
	"backspace": backend.KeyBackspace,
	"bs":        backend.KeyBackspace,
	"delete":    backend.KeyDelete,
	"del":       backend.KeyDelete,
	"up":        backend.KeyUp,
	"down":      backend.KeyDown,
	"left":      backend.KeyLeft,
	"right":     backend.KeyRight,
}

var ctrlKeys = map[string]backend.Key{
	"c": backend.KeyCtrlC,
	"q": backend.KeyCtrlQ,
	"s": backend.KeyCtrlS,
}

// ParseKey parses a key specification into a chord.
//
// Supported formats:
//   - Key names: "Enter", "Escape", "Tab", "Backspace", "Delete", "Up"
//   - With modifiers: "Ctrl+S", "Shift+Up"
//   - Vim-style: "<C-s>", "<S-Left>", "<CR>", "<Esc>"
func ParseKey(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	var mods []string
	var name string
	switch {
	case strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">"):
		parts := strings.Split(spec[1:len(spec)-1], "-")
		mods, name = parts[:len(parts)-1], parts[len(parts)-1]
	case strings.Contains(spec, "+"):
		parts := strings.Split(spec, "+")
		mods, name = parts[:len(parts)-1], parts[len(parts)-1]
	default:
		name = spec
	}

	var ctrl, shift bool
	for _, m := range mods {
		switch strings.ToLower(strings.TrimSpace(m)) {
		case "c", "ctrl", "control":
			ctrl = true
		case "s", "shift":
			shift = true
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, m)
		}
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if ctrl {
		key, ok := ctrlKeys[name]
		if !ok || shift {
			return Chord{}, fmt.Errorf("%w: unsupported control key %q", ErrInvalidSpec, spec)
		}
		return Chord{Key: key}, nil
	}

	key, ok := keyNames[name]
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return Chord{Key: key, Shift: shift}, nil
}

// String returns the canonical "Modifier+Key" form of the chord.
func (c Chord) String() string {
	var name string
	switch c.Key {
	case backend.KeyCtrlC:
		return "Ctrl+C"
	case backend.KeyCtrlQ:
		return "Ctrl+Q"
	case backend.KeyCtrlS:
		return "Ctrl+S"
	case backend.KeyEscape:
		name = "Escape"
	case backend.KeyEnter:
		name = "Enter"
	case backend.KeyTab:
		name = "Tab"
	case backend.KeyBackspace:
		name = "Backspace"
	case backend.KeyDelete:
		name = "Delete"
	case backend.KeyUp:
		name = "Up"
	case backend.KeyDown:
		name = "Down"
	case backend.KeyLeft:
		name = "Left"
	case backend.KeyRight:
		name = "Right"
	default:
		name = "None"
	}
	if c.Shift {
		return "Shift+" + name
	}
	return name
}

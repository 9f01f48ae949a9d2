package input

import (
	"strings"

	"github.com/dshills/elditor/internal/renderer/backend"
)

// Config configures text produced by the handler.
type Config struct {
	// TabWidth is the number of spaces Tab inserts when ExpandTabs is set.
	TabWidth int

	// ExpandTabs inserts spaces instead of a tab character.
	ExpandTabs bool
}

// Handler translates backend events into actions.
type Handler struct {
	keymap *Keymap
	tab    string
}

// NewHandler creates a handler for the given keymap.
func NewHandler(km *Keymap, cfg Config) *Handler {
	if km == nil {
		km = DefaultKeymap()
	}
	tab := "\t"
	if cfg.ExpandTabs {
		tab = strings.Repeat(" ", max(1, cfg.TabWidth))
	}
	return &Handler{keymap: km, tab: tab}
}

// Keymap returns the handler's keymap.
func (h *Handler) Keymap() *Keymap {
	return h.keymap
}

// Handle returns the action for a key event. Non-key events and keys
// with no meaning yield false.
func (h *Handler) Handle(ev backend.Event) (Action, bool) {
	if ev.Type != backend.EventKey {
		return Action{}, false
	}

	if ev.Key == backend.KeyRune {
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) || ev.Rune == 0 {
			return Action{}, false
		}
		return Insert(string(ev.Rune)), true
	}

	if b, ok := h.keymap.Lookup(ChordOf(ev)); ok {
		return Action{Name: b.Action}, true
	}

	// Unbound text keys still type.
	switch ev.Key {
	case backend.KeyEnter:
		return Insert("\n"), true
	case backend.KeyTab:
		return Insert(h.tab), true
	}
	return Action{}, false
}

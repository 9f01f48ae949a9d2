// Package input turns backend key events into editor actions.
//
// Keys are looked up in a Keymap first. Anything left unbound that
// produces a character becomes an insert action. Only the Shift modifier
// is significant for named keys; control chords arrive as distinct keys.
//
// # Usage
//
//	h := input.NewHandler(input.DefaultKeymap(), input.Config{TabWidth: 4})
//	if action, ok := h.Handle(ev); ok {
//	    session.Apply(action)
//	}
package input

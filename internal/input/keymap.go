package input

import (
	"fmt"
	"maps"
	"slices"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification, e.g. "Ctrl+S" or "<S-Up>".
	Keys string

	// Action is the action name to produce.
	Action string

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Keymap holds key bindings. Later bindings for the same chord replace
// earlier ones.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings in the order added.
	Bindings []Binding

	index map[Chord]int
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
		index:    make(map[Chord]int),
	}
}

// Add adds a binding to this keymap. It panics on an invalid key
// specification and is meant for built-in tables.
func (k *Keymap) Add(keys, action, description, category string) *Keymap {
	if err := k.AddBinding(Binding{Keys: keys, Action: action, Description: description, Category: category}); err != nil {
		panic(err)
	}
	return k
}

// AddBinding adds a binding to this keymap.
func (k *Keymap) AddBinding(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("binding %s: empty action", b.Keys)
	}
	if !IsBindable(b.Action) {
		return fmt.Errorf("binding %q: %w %q", b.Keys, ErrUnknownAction, b.Action)
	}
	chord, err := ParseKey(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}

	if i, ok := k.index[chord]; ok {
		k.Bindings[i] = b
		return nil
	}
	k.index[chord] = len(k.Bindings)
	k.Bindings = append(k.Bindings, b)
	return nil
}

// Bind maps each key specification in keys to an action name. Keys are
// applied in sorted order so errors are reported deterministically.
func (k *Keymap) Bind(keys map[string]string) error {
	for _, spec := range slices.Sorted(maps.Keys(keys)) {
		if err := k.AddBinding(Binding{Keys: spec, Action: keys[spec], Category: "User"}); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the binding for a chord.
func (k *Keymap) Lookup(c Chord) (Binding, bool) {
	i, ok := k.index[c]
	if !ok {
		return Binding{}, false
	}
	return k.Bindings[i], true
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.Bindings)
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return NewKeymap("default").
		// Movement
		Add("Up", ActionMoveUp, "Move up", "Movement").
		Add("Down", ActionMoveDown, "Move down", "Movement").
		Add("Left", ActionMoveLeft, "Move left", "Movement").
		Add("Right", ActionMoveRight, "Move right", "Movement").

		// Selection
		Add("Shift+Up", ActionExtendUp, "Extend selection up", "Selection").
		Add("Shift+Down", ActionExtendDown, "Extend selection down", "Selection").
		Add("Shift+Left", ActionExtendLeft, "Extend selection left", "Selection").
		Add("Shift+Right", ActionExtendRight, "Extend selection right", "Selection").
		Add("Escape", ActionClearSelection, "Clear selection", "Selection").

		// Editing
		Add("Backspace", ActionBackspace, "Delete backward", "Editing").
		Add("Delete", ActionDelete, "Delete forward", "Editing").

		// File
		Add("Ctrl+S", ActionSave, "Save file", "File").
		Add("Ctrl+Q", ActionQuit, "Quit", "File").
		Add("Ctrl+C", ActionQuit, "Quit", "File")
}

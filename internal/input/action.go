package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action names.
const (
	ActionMoveUp    = "cursor.moveUp"
	ActionMoveDown  = "cursor.moveDown"
	ActionMoveLeft  = "cursor.moveLeft"
	ActionMoveRight = "cursor.moveRight"

	ActionExtendUp    = "cursor.extendUp"
	ActionExtendDown  = "cursor.extendDown"
	ActionExtendLeft  = "cursor.extendLeft"
	ActionExtendRight = "cursor.extendRight"

	ActionClearSelection = "selection.clear"

	ActionInsert    = "edit.insert"
	ActionBackspace = "edit.backspace"
	ActionDelete    = "edit.delete"

	ActionSave = "file.save"
	ActionQuit = "editor.quit"
)

var (
	// ErrUnknownDirection is returned for a direction name that is not one
	// of up, down, left or right.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrUnknownAction is returned when a key is bound to an action name
	// that no key can trigger.
	ErrUnknownAction = errors.New("unknown action")
)

// bindable holds the actions a key binding may name. ActionInsert is
// excluded because a binding carries no text.
var bindable = map[string]bool{
	ActionMoveUp:         true,
	ActionMoveDown:       true,
	ActionMoveLeft:       true,
	ActionMoveRight:      true,
	ActionExtendUp:       true,
	ActionExtendDown:     true,
	ActionExtendLeft:     true,
	ActionExtendRight:    true,
	ActionClearSelection: true,
	ActionBackspace:      true,
	ActionDelete:         true,
	ActionSave:           true,
	ActionQuit:           true,
}

// IsBindable reports whether name is an action a key can be bound to.
func IsBindable(name string) bool {
	return bindable[name]
}

// Action is a request to change the editor state.
type Action struct {
	// Name identifies the action, e.g. "cursor.moveUp".
	Name string

	// Text is the text to insert for ActionInsert.
	Text string
}

// String returns a string representation of the action.
func (a Action) String() string {
	if a.Name == ActionInsert {
		return fmt.Sprintf("%s(%q)", a.Name, a.Text)
	}
	return a.Name
}

// Insert creates an insert action.
func Insert(text string) Action {
	return Action{Name: ActionInsert, Text: text}
}

// Direction represents a movement direction.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward direction.
	DirUp
	// DirDown indicates downward direction.
	DirDown
	// DirLeft indicates leftward direction.
	DirLeft
	// DirRight indicates rightward direction.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirNone, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// Move returns the action that moves the caret in d, extending the
// selection when extend is set.
func Move(d Direction, extend bool) (Action, error) {
	var move, ext string
	switch d {
	case DirUp:
		move, ext = ActionMoveUp, ActionExtendUp
	case DirDown:
		move, ext = ActionMoveDown, ActionExtendDown
	case DirLeft:
		move, ext = ActionMoveLeft, ActionExtendLeft
	case DirRight:
		move, ext = ActionMoveRight, ActionExtendRight
	default:
		return Action{}, fmt.Errorf("%w: %s", ErrUnknownDirection, d)
	}
	if extend {
		return Action{Name: ext}, nil
	}
	return Action{Name: move}, nil
}

// IsMovement returns true for the cursor movement and extension actions.
func (a Action) IsMovement() bool {
	return strings.HasPrefix(a.Name, "cursor.")
}

// IsEdit returns true for actions that change the document.
func (a Action) IsEdit() bool {
	return strings.HasPrefix(a.Name, "edit.")
}

package input

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name string
		want Direction
	}{
		{"up", DirUp},
		{"DOWN", DirDown},
		{" left ", DirLeft},
		{"Right", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.name)
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir    Direction
		extend bool
		want   string
	}{
		{DirUp, false, ActionMoveUp},
		{DirDown, true, ActionExtendDown},
		{DirLeft, false, ActionMoveLeft},
		{DirRight, true, ActionExtendRight},
	}

	for _, tt := range tests {
		got, err := Move(tt.dir, tt.extend)
		if err != nil {
			t.Fatalf("Move(%s, %v) failed: %v", tt.dir, tt.extend, err)
		}
		if got.Name != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got.Name)
		}
		if !got.IsMovement() || got.IsEdit() {
			t.Errorf("expected %s to be a movement", got.Name)
		}
	}

	if _, err := Move(DirNone, false); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestActionString(t *testing.T) {
	if got := Insert("a\n").String(); got != `edit.insert("a\n")` {
		t.Errorf("unexpected insert string %q", got)
	}
	if got := (Action{Name: ActionSave}).String(); got != ActionSave {
		t.Errorf("expected %q, got %q", ActionSave, got)
	}
	if !Insert("x").IsEdit() {
		t.Error("expected insert to be an edit")
	}
}

package world

import (
	"errors"
	"testing"
)

func TestNewStaticObject(t *testing.T) {
	if _, err := NewStaticObject("", "display"); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for empty name, got %v", err)
	}
	if _, err := NewStaticObject("fountain", ""); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for empty display text, got %v", err)
	}

	s, err := NewStaticObject("fountain", "A marble fountain burbles softly.")
	if err != nil {
		t.Fatalf("NewStaticObject failed: %v", err)
	}
	if s.Used {
		t.Error("new object should not be marked used")
	}
}

func TestStaticObjectUse(t *testing.T) {
	s, _ := NewStaticObject("lever", "A rusty lever juts from the wall.")
	s.UseText = "The lever groans but moves."

	if got := s.Use(); got != "The lever groans but moves." {
		t.Errorf("unexpected use text %q", got)
	}
	if !s.Used {
		t.Error("Use should set the used flag")
	}
}

func TestStaticObjectUseWith(t *testing.T) {
	s, _ := NewStaticObject("door", "A heavy door blocks the way.")
	s.AddItemUse("crowbar", "You pry the door open.")

	if text, ok := s.UseWith("hammer"); ok || text != "" {
		t.Errorf("unregistered item should not match, got ok=%v text=%q", ok, text)
	}
	if s.Used {
		t.Error("a non-matching item must not mark the object used")
	}

	text, ok := s.UseWith("crowbar")
	if !ok || text != "You pry the door open." {
		t.Errorf("registered item should match, got ok=%v text=%q", ok, text)
	}
	if !s.Used {
		t.Error("matching item use should mark the object used")
	}

	// Re-registering an item replaces the text.
	s.AddItemUse("crowbar", "The door is already open.")
	if len(s.ItemUses) != 1 {
		t.Errorf("expected 1 registered item use, got %d", len(s.ItemUses))
	}
	if text, _ := s.UseWith("crowbar"); text != "The door is already open." {
		t.Errorf("item use text not replaced: %q", text)
	}
}

func TestStaticObjectCanUse(t *testing.T) {
	s, _ := NewStaticObject("panel", "A control panel.")
	s.AddRequirement("keycard")

	if s.CanUse(nil) {
		t.Error("use should be gated without the keycard")
	}
	if !s.CanUse([]string{"keycard"}) {
		t.Error("use should pass with the keycard carried")
	}
}

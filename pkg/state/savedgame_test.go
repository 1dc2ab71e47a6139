package state

import (
	"testing"
)

func TestSavedGameMatches(t *testing.T) {
	sg := &SavedGame{Name: "The Story of a Man", Version: "1.0"}

	if !sg.Matches("The Story of a Man", "1.0") {
		t.Error("exact name and version should match")
	}
	if sg.Matches("The Story of a Man", "1.1") {
		t.Error("different version must not match")
	}
	if sg.Matches("Another Story", "1.0") {
		t.Error("different name must not match")
	}

	var nilSg *SavedGame
	if nilSg.Matches("The Story of a Man", "1.0") {
		t.Error("nil snapshot must not match")
	}
}

func TestSavedGameUsable(t *testing.T) {
	var nilSg *SavedGame
	if nilSg.Usable() {
		t.Error("nil snapshot is not usable")
	}

	sg := &SavedGame{}
	if sg.Usable() {
		t.Error("empty snapshot is not usable")
	}

	sg.State.CurrentRoom = "hall"
	if sg.Usable() {
		t.Error("snapshot without entity maps is not usable")
	}

	sg.State.Rooms = map[string]RoomState{"hall": {Entered: true}}
	sg.State.Items = map[string]ItemState{}
	if !sg.Usable() {
		t.Error("snapshot with room and maps should be usable")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"The Story of a Man", "the-story-of-a-man"},
		{"simple", "simple"},
		{"Already-Dashed", "already-dashed"},
		{"lots   of\tspace", "lots-of-space"},
		{"Trailing! ", "trailing"},
		{"  Leading", "leading"},
		{"Mixed_case & Symbols #2", "mixed-case-symbols-2"},
	}
	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

package state

import (
	"strings"

	"github.com/google/uuid"
)

// RoomState is the mutable slice of a room: whether it has been entered and
// which entities still sit in it. Placement texts are authoring data and are
// not persisted; restore filters the authored placements down to these names.
type RoomState struct {
	Entered bool     `json:"entered"`
	Items   []string `json:"items,omitempty"`
	Objects []string `json:"objects,omitempty"`
}

// ItemState is the mutable slice of a portable item.
type ItemState struct {
	Used     bool `json:"used"`
	PickedUp bool `json:"picked_up"`
	Crafted  bool `json:"crafted"`
}

// ObjectState is the mutable slice of a static object.
type ObjectState struct {
	Used bool `json:"used"`
}

// WorldState is the aggregate mutable state of a session: where the player
// is, what they carry, where they have been, and the per-entity flags.
type WorldState struct {
	CurrentRoom  string                 `json:"current_room"`
	PreviousRoom string                 `json:"previous_room,omitempty"`
	Inventory    []string               `json:"inventory"`
	Visited      []string               `json:"visited"`
	Actions      int                    `json:"actions"`
	Rooms        map[string]RoomState   `json:"rooms"`
	Items        map[string]ItemState   `json:"items"`
	Objects      map[string]ObjectState `json:"objects"`
}

// SavedGame is the persistence artifact: a game-identity header plus the
// world state. A snapshot is only usable by the exact game name and version
// that wrote it.
type SavedGame struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	SessionID uuid.UUID  `json:"session_id"`
	State     WorldState `json:"state"`
}

// Matches reports whether the header identifies the given game exactly.
func (sg *SavedGame) Matches(name, version string) bool {
	return sg != nil && sg.Name == name && sg.Version == version
}

// Usable reports whether the snapshot is structurally complete enough to
// restore from. Incomplete payloads degrade to a fresh start.
func (sg *SavedGame) Usable() bool {
	if sg == nil {
		return false
	}
	return sg.State.CurrentRoom != "" && sg.State.Rooms != nil && sg.State.Items != nil
}

// Slug derives the storage key for a game name: lowercase, with runs of
// non-alphanumeric characters collapsed to single dashes.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

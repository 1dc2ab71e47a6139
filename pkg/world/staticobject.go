package world

import "fmt"

// ItemUse maps a portable item to the text shown when it is used on a
// static object.
type ItemUse struct {
	Item string `json:"item"`
	Text string `json:"text"`
}

// StaticObject is a non-portable interactive object fixed in a room.
type StaticObject struct {
	Name          string `json:"name"`
	DisplayText   string `json:"display_text"`
	UseText       string `json:"use_text"`
	FailedUseText string `json:"failed_use_text"`
	Used          bool   `json:"used,omitempty"`
	Music         string `json:"music,omitempty"`

	// Items that must be carried to interact with the object.
	Requires []string `json:"requires,omitempty"`

	// Registered item interactions, in registration order.
	ItemUses []ItemUse `json:"item_uses,omitempty"`
}

// NewStaticObject creates a static object. Name and display text are required.
func NewStaticObject(name, display string) (*StaticObject, error) {
	if name == "" || display == "" {
		return nil, fmt.Errorf("static object needs a name and a display text: %w", ErrInvalidParameters)
	}
	return &StaticObject{Name: name, DisplayText: display}, nil
}

// Use marks the object used and returns its use text. Bare mutator: callers
// check requirements first.
func (s *StaticObject) Use() string {
	s.Used = true
	return s.UseText
}

// UseWith returns the interaction text registered for the given item,
// reporting false when no interaction exists.
func (s *StaticObject) UseWith(item string) (string, bool) {
	for _, iu := range s.ItemUses {
		if iu.Item == item {
			s.Used = true
			return iu.Text, true
		}
	}
	return "", false
}

// CanUse reports whether every required item is carried.
func (s *StaticObject) CanUse(inventory []string) bool {
	for _, req := range s.Requires {
		if !containsName(inventory, req) {
			return false
		}
	}
	return true
}

// AddRequirement adds an item that must be carried to interact.
func (s *StaticObject) AddRequirement(item string) {
	s.Requires = append(s.Requires, item)
}

// AddItemUse registers the text shown when the given item is used on the
// object. Registering the same item again replaces the text.
func (s *StaticObject) AddItemUse(item, text string) {
	for i := range s.ItemUses {
		if s.ItemUses[i].Item == item {
			s.ItemUses[i].Text = text
			return
		}
	}
	s.ItemUses = append(s.ItemUses, ItemUse{Item: item, Text: text})
}

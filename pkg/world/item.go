package world

import "fmt"

// Item is a portable object the player can pick up, use and combine.
// An item lives in at most one of: a room, the inventory, or consumed by a
// craft. Items are registered once and never destroyed; removal from a room
// means insertion into the inventory or consumption, not deletion.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	UseText          string `json:"use_text"`
	FailedUseText    string `json:"failed_use_text"`
	PickupText       string `json:"pickup_text"`
	FailedPickupText string `json:"failed_pickup_text"`

	Used     bool `json:"used,omitempty"`
	PickedUp bool `json:"picked_up,omitempty"`
	Crafted  bool `json:"crafted,omitempty"`

	Craftable    bool   `json:"craftable,omitempty"`
	CraftingText string `json:"crafting_text,omitempty"`

	// Possession gates, evaluated against the holder's inventory.
	PickupRequires []string `json:"pickup_requires,omitempty"`
	UseRequires    []string `json:"use_requires,omitempty"`
}

// NewItem creates an item. Name and description are required; default texts
// are the engine's responsibility and must already be substituted.
func NewItem(name, description string) (*Item, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("item needs a name and a description: %w", ErrInvalidParameters)
	}
	return &Item{Name: name, Description: description}, nil
}

// Use marks the item used and returns its use text. This is a bare mutator:
// callers must have checked the use requirements already.
func (i *Item) Use() string {
	i.Used = true
	return i.UseText
}

// PickUp marks the item picked up and returns its pickup text. Bare mutator,
// same contract as Use.
func (i *Item) PickUp() string {
	i.PickedUp = true
	return i.PickupText
}

// Craft marks a craftable item crafted and returns its crafting text.
// Non-craftable items are left untouched and report false.
func (i *Item) Craft() (string, bool) {
	if !i.Craftable {
		return "", false
	}
	i.Crafted = true
	return i.CraftingText, true
}

// CanPickUp reports whether every pickup-prerequisite item is carried.
func (i *Item) CanPickUp(inventory []string) bool {
	for _, req := range i.PickupRequires {
		if !containsName(inventory, req) {
			return false
		}
	}
	return true
}

// CanUse reports whether every use-prerequisite item is carried.
func (i *Item) CanUse(inventory []string) bool {
	for _, req := range i.UseRequires {
		if !containsName(inventory, req) {
			return false
		}
	}
	return true
}

// AddPickupRequirement adds an item that must be carried to pick this one up.
func (i *Item) AddPickupRequirement(item string) {
	i.PickupRequires = append(i.PickupRequires, item)
}

// AddUseRequirement adds an item that must be carried to use this one.
func (i *Item) AddUseRequirement(item string) {
	i.UseRequires = append(i.UseRequires, item)
}

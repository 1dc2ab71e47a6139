package world

import (
	"fmt"
	"strings"
)

// Requirement gates entry to a room. Target is the name of a room that must
// already be visited, or of an item that must be carried, depending on which
// list the requirement is registered in. Deny is shown when the gate holds.
type Requirement struct {
	Target string `json:"target"`
	Deny   string `json:"deny"`
}

// Placement is an entity sitting in a room together with the text shown
// while it is there.
type Placement struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Room is a navigable location node in the world graph. Rooms are created
// once, referenced by name thereafter, and never destroyed during a session.
type Room struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	FirstVisitDescription string `json:"first_visit_description,omitempty"`
	Starting              bool   `json:"starting,omitempty"`
	Entered               bool   `json:"entered,omitempty"`
	Music                 string `json:"music,omitempty"`

	// Contained entities, in placement order.
	Items   []Placement `json:"items,omitempty"`
	Objects []Placement `json:"objects,omitempty"`

	// Entry gates, in registration order.
	VisitRequirements []Requirement `json:"visit_requirements,omitempty"`
	ItemRequirements  []Requirement `json:"item_requirements,omitempty"`
}

// NewRoom creates a room. Name and description are required.
func NewRoom(name, description, firstVisit string, starting bool) (*Room, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("room needs a name and a description: %w", ErrMissingParameters)
	}
	return &Room{
		Name:                  name,
		Description:           description,
		FirstVisitDescription: firstVisit,
		Starting:              starting,
	}, nil
}

// PutItem places an item in the room with the given placement text.
// Placing an item that is already present replaces its text.
func (r *Room) PutItem(name, text string) {
	for i := range r.Items {
		if r.Items[i].Name == name {
			r.Items[i].Text = text
			return
		}
	}
	r.Items = append(r.Items, Placement{Name: name, Text: text})
}

// PutObject places a static object in the room.
func (r *Room) PutObject(name, text string) {
	for i := range r.Objects {
		if r.Objects[i].Name == name {
			r.Objects[i].Text = text
			return
		}
	}
	r.Objects = append(r.Objects, Placement{Name: name, Text: text})
}

// RemoveItem takes an item out of the room, reporting whether it was there.
func (r *Room) RemoveItem(name string) bool {
	for i := range r.Items {
		if r.Items[i].Name == name {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the named item currently sits in the room.
func (r *Room) HasItem(name string) bool {
	for _, p := range r.Items {
		if p.Name == name {
			return true
		}
	}
	return false
}

// HasObject reports whether the named static object sits in the room.
func (r *Room) HasObject(name string) bool {
	for _, p := range r.Objects {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Enter marks the room entered and returns its narrative description.
// The first successful entry includes the first-visit text when one is set;
// later entries return the base description. Object and item placement
// texts are appended in placement order.
func (r *Room) Enter() string {
	var items string
	if len(r.Items) > 0 {
		texts := make([]string, 0, len(r.Items))
		for _, p := range r.Items {
			texts = append(texts, p.Text)
		}
		items = "\n" + strings.Join(texts, " ")
	}

	var objects string
	if len(r.Objects) > 0 {
		texts := make([]string, 0, len(r.Objects))
		for _, p := range r.Objects {
			texts = append(texts, p.Text)
		}
		objects = " " + strings.Join(texts, " ")
	}

	if !r.Entered {
		r.Entered = true
		if r.FirstVisitDescription != "" {
			return r.FirstVisitDescription + objects + "\n" + r.Description + items
		}
	}
	return r.Description + objects + items
}

// AddVisitRequirement requires the named room to have been visited before
// this one can be entered.
func (r *Room) AddVisitRequirement(room, deny string) {
	r.VisitRequirements = append(r.VisitRequirements, Requirement{Target: room, Deny: deny})
}

// AddItemRequirement requires the named item to be carried before this room
// can be entered.
func (r *Room) AddItemRequirement(item, deny string) {
	r.ItemRequirements = append(r.ItemRequirements, Requirement{Target: item, Deny: deny})
}

// HasRequirements reports whether the room declares any entry gates.
func (r *Room) HasRequirements() bool {
	return len(r.VisitRequirements) > 0 || len(r.ItemRequirements) > 0
}

// CheckVisitRequirements evaluates the room's visit gates against the set of
// visited room names. When any required room is missing, the deny messages
// of ALL registered visit requirements are returned newline-joined, so the
// player sees every reason at once.
func (r *Room) CheckVisitRequirements(visited []string) (string, bool) {
	return checkRequirements(r.VisitRequirements, visited)
}

// CheckItemRequirements evaluates the room's possession gates against the
// inventory. Same all-deny-messages policy as CheckVisitRequirements.
func (r *Room) CheckItemRequirements(inventory []string) (string, bool) {
	return checkRequirements(r.ItemRequirements, inventory)
}

func checkRequirements(reqs []Requirement, have []string) (string, bool) {
	for _, req := range reqs {
		if !containsName(have, req.Target) {
			denies := make([]string, 0, len(reqs))
			for _, r := range reqs {
				denies = append(denies, r.Deny)
			}
			return strings.Join(denies, "\n"), false
		}
	}
	return "", true
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

package game

import (
	"fmt"

	"github.com/defaltsimon/pac-adventure/pkg/events"
	"github.com/defaltsimon/pac-adventure/pkg/world"
)

// WalkResult distinguishes a narrative description from a requirement
// denial at the type level. Exactly one of the two fields is set.
type WalkResult struct {
	// Description is the entered room's narrative text on success.
	Description string
	// Denial carries the newline-joined deny messages when entry was
	// blocked by unmet requirements.
	Denial string
}

// Denied reports whether entry was blocked.
func (r WalkResult) Denied() bool { return r.Denial != "" }

// Walk moves the player to the named room. It fails with ErrUnknownEntity
// for an unregistered name and ErrNotLinked when no edge leads from the
// current room to the target. Requirement denials are not errors: they come
// back in the WalkResult.
//
// The target's music starts before the link and requirement checks run, so
// a blocked doorway can still change the ambience. An ENTER event fires
// only when the target declares at least one requirement; rooms with no
// gates enter silently. Both behaviors are long-standing and relied upon by
// existing adventures.
func (g *Game) Walk(name string) (WalkResult, error) {
	room, err := g.Room(name)
	if err != nil {
		return WalkResult{}, err
	}

	if room.Music != "" && room.Music != g.currentMusic {
		g.startMusic(room.Music)
	}

	if g.current == nil {
		return WalkResult{}, fmt.Errorf("no current room, the game has not started: %w", world.ErrMissingParameters)
	}
	if !g.linked(g.current.Name, room.Name) {
		return WalkResult{}, fmt.Errorf("no path from %q to %q: %w", g.current.Name, room.Name, world.ErrNotLinked)
	}

	itemDeny, itemsOK := room.CheckItemRequirements(g.inventory)
	visitDeny, visitsOK := room.CheckVisitRequirements(g.visited)

	if room.HasRequirements() {
		g.events.Publish(events.TypeEnter, map[string]any{
			"from":       g.current.Name,
			"to":         room.Name,
			"first_time": !room.Entered,
		})
	}

	switch {
	case itemsOK && visitsOK:
		g.previous = g.current
		g.current = room
		g.visit(room.Name)
		desc := room.Enter()
		g.completedAction()
		return WalkResult{Description: desc}, nil
	case itemsOK:
		return WalkResult{Denial: visitDeny}, nil
	case visitsOK:
		return WalkResult{Denial: itemDeny}, nil
	default:
		return WalkResult{Denial: itemDeny + "\n" + visitDeny}, nil
	}
}

// GoBack walks to the previously occupied room. It fails with
// ErrNoPreviousRoom when there is none. Going back delegates to Walk, so it
// re-runs the full link and requirement checks and can itself be denied.
func (g *Game) GoBack() (WalkResult, error) {
	if g.previous == nil {
		return WalkResult{}, world.ErrNoPreviousRoom
	}
	return g.Walk(g.previous.Name)
}

// Ways returns the names of the rooms reachable from the current room.
func (g *Game) Ways() []string {
	if g.current == nil {
		return nil
	}
	ways := make([]string, len(g.links[g.current.Name]))
	copy(ways, g.links[g.current.Name])
	return ways
}

func (g *Game) linked(from, to string) bool {
	for _, name := range g.links[from] {
		if name == to {
			return true
		}
	}
	return false
}

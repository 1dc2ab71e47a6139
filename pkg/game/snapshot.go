package game

import (
	"context"
	"fmt"
	"time"

	"github.com/defaltsimon/pac-adventure/pkg/state"
)

// Snapshot captures the aggregate mutable state under the game-identity
// header. Authoring data (descriptions, requirements, links, placement
// texts) is not captured; a snapshot is only meaningful against the same
// authored world.
func (g *Game) Snapshot() *state.SavedGame {
	ws := state.WorldState{
		Inventory: g.InventoryNames(),
		Visited:   g.Visited(),
		Actions:   g.actions,
		Rooms:     make(map[string]state.RoomState, len(g.rooms)),
		Items:     make(map[string]state.ItemState, len(g.items)),
		Objects:   make(map[string]state.ObjectState, len(g.statics)),
	}
	if g.current != nil {
		ws.CurrentRoom = g.current.Name
	}
	if g.previous != nil {
		ws.PreviousRoom = g.previous.Name
	}
	for name, room := range g.rooms {
		rs := state.RoomState{Entered: room.Entered}
		for _, p := range room.Items {
			rs.Items = append(rs.Items, p.Name)
		}
		for _, p := range room.Objects {
			rs.Objects = append(rs.Objects, p.Name)
		}
		ws.Rooms[name] = rs
	}
	for name, item := range g.items {
		ws.Items[name] = state.ItemState{Used: item.Used, PickedUp: item.PickedUp, Crafted: item.Crafted}
	}
	for name, obj := range g.statics {
		ws.Objects[name] = state.ObjectState{Used: obj.Used}
	}
	return &state.SavedGame{
		Name:      g.name,
		Version:   g.version,
		SessionID: g.session,
		State:     ws,
	}
}

// Restore applies a snapshot onto the authored world. It reports false and
// leaves the game untouched when the snapshot is nil, structurally
// incomplete, carries a mismatched name or version, or references a current
// room this world does not have: all of those degrade to a fresh start.
func (g *Game) Restore(sg *state.SavedGame) bool {
	if !sg.Usable() || !sg.Matches(g.name, g.version) {
		return false
	}
	current, ok := g.rooms[sg.State.CurrentRoom]
	if !ok {
		return false
	}

	g.current = current
	g.previous = nil
	if prev, ok := g.rooms[sg.State.PreviousRoom]; ok {
		g.previous = prev
	}
	g.inventory = append([]string(nil), sg.State.Inventory...)
	g.visited = append([]string(nil), sg.State.Visited...)
	g.actions = sg.State.Actions
	g.session = sg.SessionID

	for name, rs := range sg.State.Rooms {
		room, ok := g.rooms[name]
		if !ok {
			continue
		}
		room.Entered = rs.Entered
		// Containment only shrinks at runtime: drop authored placements the
		// snapshot no longer lists.
		kept := room.Items[:0]
		for _, p := range room.Items {
			if containsString(rs.Items, p.Name) {
				kept = append(kept, p)
			}
		}
		room.Items = kept
	}
	for name, is := range sg.State.Items {
		if item, ok := g.items[name]; ok {
			item.Used = is.Used
			item.PickedUp = is.PickedUp
			item.Crafted = is.Crafted
		}
	}
	for name, os := range sg.State.Objects {
		if obj, ok := g.statics[name]; ok {
			obj.Used = os.Used
		}
	}
	return true
}

// Save writes a snapshot to the attached store, keyed by the slugged game
// name. It is an error to call Save without a store attached.
func (g *Game) Save(ctx context.Context) error {
	if g.store == nil {
		return fmt.Errorf("no save store attached")
	}
	return g.store.SaveGame(ctx, state.Slug(g.name), g.Snapshot())
}

// LoadSaved loads and restores the snapshot for this game from the attached
// store. It reports whether a usable save was applied; storage errors and
// unusable snapshots degrade to false with a log line.
func (g *Game) LoadSaved(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	sg, err := g.store.LoadGame(ctx, state.Slug(g.name))
	if err != nil {
		g.logger.Warn("failed to load saved game, starting fresh", "error", err)
		return false
	}
	if sg == nil {
		return false
	}
	if !g.Restore(sg) {
		g.logger.Info("saved game not usable, starting fresh",
			"saved_name", sg.Name, "saved_version", sg.Version,
			"game_name", g.name, "game_version", g.version)
		return false
	}
	g.logger.Info("restored saved game", "room", g.current.Name, "actions", g.actions)
	return true
}

// completedAction advances the action counter and autosaves on cadence.
// Autosave failures are logged and never surface to the player.
func (g *Game) completedAction() {
	g.actions++
	if !g.autosave || g.store == nil || g.actions%g.autosaveEvery != 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.Save(ctx); err != nil {
		g.logger.Warn("autosave failed", "error", err, "actions", g.actions)
		return
	}
	g.logger.Debug("autosaved", "actions", g.actions)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

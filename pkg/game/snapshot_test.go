package game

import (
	"context"
	"testing"

	"github.com/defaltsimon/pac-adventure/pkg/events"
	"github.com/defaltsimon/pac-adventure/pkg/state"
	"github.com/defaltsimon/pac-adventure/pkg/storage"
)

func TestSnapshotRestoreRoundtrip(t *testing.T) {
	g := newTestGame(t)
	buildHouse(t, g)
	mustStart(t, g)
	mustPickUp(t, g, "lamp")
	mustWalk(t, g, "hallway")
	mustWalk(t, g, "garden")

	sg := g.Snapshot()
	if sg.Name != "test adventure" || sg.Version != "1.0" {
		t.Errorf("snapshot header wrong: %s v%s", sg.Name, sg.Version)
	}
	if sg.State.CurrentRoom != "garden" || sg.State.PreviousRoom != "hallway" {
		t.Errorf("snapshot position wrong: current=%q previous=%q",
			sg.State.CurrentRoom, sg.State.PreviousRoom)
	}

	// A fresh engine over the same authored world picks up where we left off.
	g2 := newTestGame(t)
	buildHouse(t, g2)
	if !g2.Restore(sg) {
		t.Fatal("Restore should accept the snapshot")
	}
	if g2.CurrentRoom().Name != "garden" {
		t.Errorf("restored position wrong: %q", g2.CurrentRoom().Name)
	}
	if !g2.Carrying("lamp") {
		t.Errorf("restored inventory wrong: %v", g2.InventoryNames())
	}
	kitchen, _ := g2.Room("kitchen")
	if kitchen.HasItem("lamp") {
		t.Error("the picked-up lamp must not reappear in the kitchen")
	}
	if !kitchen.Entered {
		t.Error("entered flags should be restored")
	}
	item, _ := g2.Item("lamp")
	if !item.PickedUp {
		t.Error("item flags should be restored")
	}
	if g2.SessionID() != g.SessionID() {
		t.Error("restore adopts the snapshot's session ID")
	}

	// Start after restore keeps the restored position.
	text, err := g2.Start()
	if err != nil {
		t.Fatalf("Start after Restore failed: %v", err)
	}
	if g2.CurrentRoom().Name != "garden" {
		t.Errorf("Start must keep the restored room, got %q", g2.CurrentRoom().Name)
	}
	if text == "" {
		t.Error("Start should still return the room description")
	}
}

func TestRestoreRejectsMismatches(t *testing.T) {
	g := newTestGame(t)
	buildHouse(t, g)
	mustStart(t, g)
	sg := g.Snapshot()

	other := New("test adventure", "2.0", events.NewDispatcher(), g.logger)
	buildHouse(t, other)
	if other.Restore(sg) {
		t.Error("a snapshot from another version must be rejected")
	}
	if other.CurrentRoom() != nil {
		t.Error("a rejected restore must leave the game untouched")
	}

	if g.Restore(nil) {
		t.Error("nil snapshot must be rejected")
	}
	if g.Restore(&state.SavedGame{Name: "test adventure", Version: "1.0"}) {
		t.Error("structurally incomplete snapshot must be rejected")
	}

	bad := g.Snapshot()
	bad.State.CurrentRoom = "demolished wing"
	g2 := newTestGame(t)
	buildHouse(t, g2)
	if g2.Restore(bad) {
		t.Error("a snapshot pointing at an unknown room must be rejected")
	}
}

func TestSaveAndLoadSaved(t *testing.T) {
	store := storage.NewMockStore()
	ctx := context.Background()

	g := newTestGame(t)
	buildHouse(t, g)
	g.SetSaveStore(store, false, 0)
	mustStart(t, g)
	mustPickUp(t, g, "lamp")
	mustWalk(t, g, "hallway")

	if err := g.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	g2 := newTestGame(t)
	buildHouse(t, g2)
	g2.SetSaveStore(store, false, 0)
	if !g2.LoadSaved(ctx) {
		t.Fatal("LoadSaved should find and apply the save")
	}
	if g2.CurrentRoom().Name != "hallway" || !g2.Carrying("lamp") {
		t.Errorf("loaded state wrong: room=%q inv=%v",
			g2.CurrentRoom().Name, g2.InventoryNames())
	}

	// A different game name looks under a different key.
	g3 := New("another adventure", "1.0", events.NewDispatcher(), g.logger)
	g3.SetSaveStore(store, false, 0)
	if g3.LoadSaved(ctx) {
		t.Error("LoadSaved must not apply another game's save")
	}
}

func TestSaveWithoutStore(t *testing.T) {
	g := newTestGame(t)
	buildHouse(t, g)
	mustStart(t, g)

	if err := g.Save(context.Background()); err == nil {
		t.Error("Save without a store should fail")
	}
	if g.LoadSaved(context.Background()) {
		t.Error("LoadSaved without a store reports false")
	}
}

func TestAutosaveCadence(t *testing.T) {
	store := storage.NewMockStore()

	g := newTestGame(t)
	buildHouse(t, g)
	g.SetSaveStore(store, true, 2)
	mustStart(t, g)

	mustPickUp(t, g, "lamp") // action 1
	if store.SaveCount() != 0 {
		t.Fatalf("no autosave before the cadence, got %d", store.SaveCount())
	}
	mustWalk(t, g, "hallway") // action 2: autosave
	if store.SaveCount() != 1 {
		t.Fatalf("expected 1 autosave after 2 actions, got %d", store.SaveCount())
	}
	mustWalk(t, g, "garden")  // action 3
	mustWalk(t, g, "hallway") // action 4: autosave
	if store.SaveCount() != 2 {
		t.Fatalf("expected 2 autosaves after 4 actions, got %d", store.SaveCount())
	}

	// Denied walks are not completed actions.
	g.removeFromInventory("lamp")
	for i := 0; i < 3; i++ {
		res := mustWalk(t, g, "cellar")
		if !res.Denied() {
			t.Fatal("cellar walk should be denied")
		}
	}
	if store.SaveCount() != 2 {
		t.Errorf("denied walks must not advance the autosave cadence, got %d", store.SaveCount())
	}
}

func TestAutosaveDisabled(t *testing.T) {
	store := storage.NewMockStore()

	g := newTestGame(t)
	buildHouse(t, g)
	g.SetSaveStore(store, false, 1)
	mustStart(t, g)

	mustPickUp(t, g, "lamp")
	mustWalk(t, g, "hallway")
	if store.SaveCount() != 0 {
		t.Errorf("autosave disabled, expected 0 saves, got %d", store.SaveCount())
	}
}

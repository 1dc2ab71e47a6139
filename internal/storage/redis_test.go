package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/defaltsimon/pac-adventure/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSavedGame() *state.SavedGame {
	return &state.SavedGame{
		Name:      "test adventure",
		Version:   "1.0",
		SessionID: uuid.New(),
		State: state.WorldState{
			CurrentRoom: "hallway",
			Inventory:   []string{"lamp"},
			Visited:     []string{"kitchen", "hallway"},
			Actions:     3,
			Rooms: map[string]state.RoomState{
				"kitchen": {Entered: true},
				"hallway": {Entered: true, Items: []string{"matchbox"}},
			},
			Items: map[string]state.ItemState{
				"lamp":     {PickedUp: true},
				"matchbox": {},
			},
			Objects: map[string]state.ObjectState{},
		},
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), testLogger())
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStorePing(t *testing.T) {
	store, _ := newTestRedisStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestRedisStoreSaveLoadDelete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	sg := testSavedGame()

	if err := store.SaveGame(ctx, "test-adventure", sg); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}

	loaded, err := store.LoadGame(ctx, "test-adventure")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a saved game")
	}
	if loaded.Name != sg.Name || loaded.SessionID != sg.SessionID {
		t.Errorf("loaded header wrong: %s %s", loaded.Name, loaded.SessionID)
	}
	if loaded.State.CurrentRoom != "hallway" || len(loaded.State.Inventory) != 1 {
		t.Errorf("loaded state wrong: %+v", loaded.State)
	}
	if !loaded.State.Rooms["kitchen"].Entered {
		t.Error("room states should survive the roundtrip")
	}

	if err := store.DeleteGame(ctx, "test-adventure"); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}
	loaded, err = store.LoadGame(ctx, "test-adventure")
	if err != nil {
		t.Fatalf("LoadGame after delete failed: %v", err)
	}
	if loaded != nil {
		t.Error("expected nil after delete")
	}
}

func TestRedisStoreLoadMissing(t *testing.T) {
	store, _ := newTestRedisStore(t)

	sg, err := store.LoadGame(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if sg != nil {
		t.Error("a missing save yields nil, not an error")
	}
}

func TestRedisStoreLoadCorrupt(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Set("savegame:broken", "{not json")

	sg, err := store.LoadGame(context.Background(), "broken")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if sg != nil {
		t.Error("a corrupt save degrades to nil, not an error")
	}
}

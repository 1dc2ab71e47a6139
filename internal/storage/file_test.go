package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSaveLoadDelete(t *testing.T) {
	store := NewFileStore(t.TempDir(), testLogger())
	ctx := context.Background()
	sg := testSavedGame()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
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
	if loaded.SessionID != sg.SessionID || loaded.State.CurrentRoom != "hallway" {
		t.Errorf("loaded state wrong: %+v", loaded)
	}

	if err := store.DeleteGame(ctx, "test-adventure"); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}
	loaded, err = store.LoadGame(ctx, "test-adventure")
	if err != nil || loaded != nil {
		t.Errorf("expected (nil, nil) after delete, got (%v, %v)", loaded, err)
	}

	// Deleting again is not an error.
	if err := store.DeleteGame(ctx, "test-adventure"); err != nil {
		t.Errorf("deleting a missing save should not fail: %v", err)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir(), testLogger())

	sg, err := store.LoadGame(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if sg != nil {
		t.Error("a missing save yields nil, not an error")
	}
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sg, err := store.LoadGame(context.Background(), "broken")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if sg != nil {
		t.Error("a corrupt save degrades to nil, not an error")
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	store := NewFileStore(dir, testLogger())

	if err := store.SaveGame(context.Background(), "test-adventure", testSavedGame()); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "test-adventure.json")); err != nil {
		t.Errorf("save file missing: %v", err)
	}
}

func TestFileStoreAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())
	ctx := context.Background()

	if err := store.SaveGame(ctx, "test-adventure", testSavedGame()); err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

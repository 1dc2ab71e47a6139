package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/defaltsimon/pac-adventure/pkg/state"
	"github.com/defaltsimon/pac-adventure/pkg/storage"
)

// FileStore implements SaveStore on the local filesystem: one JSON file per
// game under the save directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// Ensure FileStore implements SaveStore interface
var _ storage.SaveStore = (*FileStore)(nil)

// NewFileStore creates a filesystem-backed save store rooted at dir.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if dir == "" {
		dir = ".saves"
	}
	return &FileStore{dir: dir, logger: logger}
}

func (f *FileStore) path(slug string) string {
	return filepath.Join(f.dir, slug+".json")
}

// Ping verifies the save directory exists, creating it if needed.
func (f *FileStore) Ping(ctx context.Context) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("save directory %s unavailable: %w", f.dir, err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}

// SaveGame writes the snapshot as pretty-printed JSON. The write goes
// through a temp file and rename so a crash mid-write cannot corrupt an
// existing save.
func (f *FileStore) SaveGame(ctx context.Context, slug string, sg *state.SavedGame) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	data, err := json.MarshalIndent(sg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal saved game: %w", err)
	}

	tmp := f.path(slug) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write saved game: %w", err)
	}
	if err := os.Rename(tmp, f.path(slug)); err != nil {
		return fmt.Errorf("failed to finalize saved game: %w", err)
	}
	return nil
}

// LoadGame reads the snapshot for the slug. A missing file or an
// undecodable payload yields (nil, nil): there is no usable save.
func (f *FileStore) LoadGame(ctx context.Context, slug string) (*state.SavedGame, error) {
	data, err := os.ReadFile(f.path(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil // Return nil for not found
		}
		return nil, fmt.Errorf("failed to read saved game: %w", err)
	}

	var sg state.SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		f.logger.Warn("Saved game is corrupt, treating as no save", "slug", slug, "error", err)
		return nil, nil
	}
	return &sg, nil
}

// DeleteGame removes the snapshot file. Deleting a save that does not exist
// is not an error.
func (f *FileStore) DeleteGame(ctx context.Context, slug string) error {
	if err := os.Remove(f.path(slug)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete saved game: %w", err)
	}
	return nil
}

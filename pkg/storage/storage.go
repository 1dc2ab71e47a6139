package storage

import (
	"context"

	"github.com/defaltsimon/pac-adventure/pkg/state"
)

// SaveStore persists game snapshots keyed by the slugged game name.
// Implementations must treat a missing snapshot as (nil, nil), not an error:
// the engine degrades to a fresh start when no usable save exists.
type SaveStore interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Snapshot operations
	SaveGame(ctx context.Context, slug string, sg *state.SavedGame) error
	LoadGame(ctx context.Context, slug string) (*state.SavedGame, error)
	DeleteGame(ctx context.Context, slug string) error
}

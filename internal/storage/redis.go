package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/defaltsimon/pac-adventure/pkg/state"
	"github.com/defaltsimon/pac-adventure/pkg/storage"
)

// RedisStore implements SaveStore on Redis. Snapshots are stored as JSON
// under savegame: keys with no expiry.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements SaveStore interface
var _ storage.SaveStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed save store.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func saveKey(slug string) string {
	return "savegame:" + slug
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// SaveGame writes a snapshot under the slugged game name.
func (r *RedisStore) SaveGame(ctx context.Context, slug string, sg *state.SavedGame) error {
	data, err := json.Marshal(sg)
	if err != nil {
		r.logger.Error("Failed to marshal saved game", "slug", slug, "error", err)
		return fmt.Errorf("failed to marshal saved game: %w", err)
	}

	if err := r.client.Set(ctx, saveKey(slug), data, 0).Err(); err != nil {
		r.logger.Error("Failed to save game", "slug", slug, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// LoadGame reads the snapshot for the slug. A missing key or an
// undecodable payload yields (nil, nil): there is no usable save.
func (r *RedisStore) LoadGame(ctx context.Context, slug string) (*state.SavedGame, error) {
	data, err := r.client.Get(ctx, saveKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load saved game", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	var sg state.SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		r.logger.Warn("Saved game is corrupt, treating as no save", "slug", slug, "error", err)
		return nil, nil
	}
	return &sg, nil
}

// DeleteGame removes the snapshot for the slug.
func (r *RedisStore) DeleteGame(ctx context.Context, slug string) error {
	if err := r.client.Del(ctx, saveKey(slug)).Err(); err != nil {
		r.logger.Error("Failed to delete saved game", "slug", slug, "error", err)
		return fmt.Errorf("failed to delete saved game: %w", err)
	}
	return nil
}

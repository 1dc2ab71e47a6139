package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/defaltsimon/pac-adventure/internal/audio"
	"github.com/defaltsimon/pac-adventure/internal/config"
	"github.com/defaltsimon/pac-adventure/internal/logger"
	intstorage "github.com/defaltsimon/pac-adventure/internal/storage"
	"github.com/defaltsimon/pac-adventure/internal/worldfile"
	"github.com/defaltsimon/pac-adventure/pkg/events"
	"github.com/defaltsimon/pac-adventure/pkg/game"
	"github.com/defaltsimon/pac-adventure/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	def, err := worldfile.Load(cfg.WorldFile)
	if err != nil {
		logger.WithError(log, err).Error("failed to load world file", "path", cfg.WorldFile)
		os.Exit(1)
	}
	dispatcher := events.NewDispatcher()
	g := game.New(def.Name, def.Version, dispatcher, log)

	if err := worldfile.Build(def, g); err != nil {
		logger.WithError(log, err).Error("failed to build world")
		os.Exit(1)
	}

	store, err := newSaveStore(cfg, log)
	if err != nil {
		log.Error("failed to initialize save storage", "backend", cfg.SaveBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("error closing save storage", "error", err)
		}
	}()
	g.SetSaveStore(store, cfg.Autosave, cfg.AutosaveEvery)

	if cfg.AudioPlayer != "" {
		g.SetAudioPlayer(audio.NewExecPlayer(cfg.AudioPlayer, log))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if g.LoadSaved(ctx) {
		log.Info("restored saved game", "game", g.Name(), "session", g.SessionID())
	}
	cancel()

	opening, err := g.Start()
	if err != nil {
		log.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewAdventureUI(g, opening),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("terminal UI exited with error", "error", err)
		os.Exit(1)
	}
}

// newSaveStore picks the persistence backend from config. The file backend
// needs no external services and is the default for local play.
func newSaveStore(cfg *config.Config, log *slog.Logger) (storage.SaveStore, error) {
	switch cfg.SaveBackend {
	case config.BackendRedis:
		store := intstorage.NewRedisStore(cfg.RedisURL, log)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := store.WaitForConnection(ctx); err != nil {
			return nil, fmt.Errorf("redis not reachable at %s: %w", cfg.RedisURL, err)
		}
		return store, nil
	default:
		store := intstorage.NewFileStore(cfg.SaveDir, log)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("save directory %s not writable: %w", cfg.SaveDir, err)
		}
		return store, nil
	}
}

package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/defaltsimon/pac-adventure/pkg/events"
	"github.com/defaltsimon/pac-adventure/pkg/storage"
	"github.com/defaltsimon/pac-adventure/pkg/world"
)

// Defaults are the engine-wide fallback messages substituted into entities
// at creation time and shown when an interaction is declined.
type Defaults struct {
	Use           string
	FailedUse     string
	FailedPickup  string
	FailedCombine string
}

// Game is the world/state engine for one session. It owns the entity
// registries, the adjacency graph and the player's aggregate state, and
// publishes lifecycle events as operations mutate that state.
//
// A single logical thread of control is assumed: operations are synchronous
// and non-reentrant, and the engine does no internal locking. Hosts issuing
// concurrent commands must serialize them externally.
type Game struct {
	name    string
	version string
	session uuid.UUID

	rooms      map[string]*world.Room
	items      map[string]*world.Item
	statics    map[string]*world.StaticObject
	blueprints []world.Blueprint

	// Directed adjacency: room name to reachable room names. Edges are
	// one-way unless linked as a reciprocal pair.
	links map[string][]string

	inventory []string // acquisition order, no duplicates
	visited   []string // first-visit order
	current   *world.Room
	previous  *world.Room

	startingRoom    *world.Room
	startingMessage string
	started         bool

	defaults Defaults

	events       *events.Dispatcher
	audio        AudioPlayer
	currentMusic string

	store         storage.SaveStore
	autosave      bool
	autosaveEvery int
	actions       int

	logger *slog.Logger
}

// New creates an engine for the named game. The dispatcher and logger are
// required collaborators; pass explicitly constructed instances, the engine
// holds no globals.
func New(name, version string, dispatcher *events.Dispatcher, logger *slog.Logger) *Game {
	if dispatcher == nil {
		dispatcher = events.NewDispatcher()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		name:    name,
		version: version,
		session: uuid.New(),
		rooms:   make(map[string]*world.Room),
		items:   make(map[string]*world.Item),
		statics: make(map[string]*world.StaticObject),
		links:   make(map[string][]string),
		defaults: Defaults{
			Use:           "Hmm...",
			FailedUse:     "Hmm...",
			FailedPickup:  "I can't do that.",
			FailedCombine: "Can't do that...",
		},
		events:        dispatcher,
		audio:         NopPlayer{},
		autosaveEvery: 4,
		logger:        logger,
	}
}

// Name returns the game's identity name.
func (g *Game) Name() string { return g.name }

// Version returns the game's identity version.
func (g *Game) Version() string { return g.version }

// SessionID returns the unique ID of this session.
func (g *Game) SessionID() uuid.UUID { return g.session }

// Events returns the engine's event dispatcher.
func (g *Game) Events() *events.Dispatcher { return g.events }

// SetAudioPlayer attaches the ambient audio collaborator. Audio is a pure
// side channel: player failures never affect game state.
func (g *Game) SetAudioPlayer(p AudioPlayer) {
	if p == nil {
		p = NopPlayer{}
	}
	g.audio = p
}

// SetSaveStore attaches snapshot storage. When autosave is enabled a
// snapshot is written every `every` completed player actions; every <= 0
// keeps the current cadence.
func (g *Game) SetSaveStore(store storage.SaveStore, autosave bool, every int) {
	g.store = store
	g.autosave = autosave
	if every > 0 {
		g.autosaveEvery = every
	}
}

// SetStartingMessage sets the message shown when the adventure begins.
// Required before Start.
func (g *Game) SetStartingMessage(message string) {
	g.startingMessage = message
}

// StartingMessage returns the configured starting message.
func (g *Game) StartingMessage() string { return g.startingMessage }

// SetDefaultUseMessage sets the fallback use text substituted into entities
// created without one.
func (g *Game) SetDefaultUseMessage(message string) { g.defaults.Use = message }

// SetDefaultUseFailMessage sets the fallback deny text for failed use.
func (g *Game) SetDefaultUseFailMessage(message string) { g.defaults.FailedUse = message }

// SetDefaultPickUpFailMessage sets the fallback deny text for failed pickup.
func (g *Game) SetDefaultPickUpFailMessage(message string) { g.defaults.FailedPickup = message }

// SetDefaultCombineFailMessage sets the text shown when no blueprint matches.
func (g *Game) SetDefaultCombineFailMessage(message string) { g.defaults.FailedCombine = message }

// DefaultCombineFailMessage returns the configured combine-fail text.
func (g *Game) DefaultCombineFailMessage() string { return g.defaults.FailedCombine }

// Room resolves a room by name.
func (g *Game) Room(name string) (*world.Room, error) {
	r, ok := g.rooms[name]
	if !ok {
		return nil, fmt.Errorf("room %q: %w", name, world.ErrUnknownEntity)
	}
	return r, nil
}

// Item resolves a portable item by name.
func (g *Game) Item(name string) (*world.Item, error) {
	i, ok := g.items[name]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", name, world.ErrUnknownEntity)
	}
	return i, nil
}

// StaticObject resolves a static object by name.
func (g *Game) StaticObject(name string) (*world.StaticObject, error) {
	s, ok := g.statics[name]
	if !ok {
		return nil, fmt.Errorf("static object %q: %w", name, world.ErrUnknownEntity)
	}
	return s, nil
}

// CurrentRoom returns the room the player occupies, which is nil before
// Start or Restore.
func (g *Game) CurrentRoom() *world.Room { return g.current }

// Inventory returns the carried items in acquisition order.
func (g *Game) Inventory() []*world.Item {
	items := make([]*world.Item, 0, len(g.inventory))
	for _, name := range g.inventory {
		items = append(items, g.items[name])
	}
	return items
}

// InventoryNames returns the carried item names in acquisition order.
func (g *Game) InventoryNames() []string {
	names := make([]string, len(g.inventory))
	copy(names, g.inventory)
	return names
}

// Carrying reports whether the named item is in the inventory.
func (g *Game) Carrying(name string) bool {
	for _, n := range g.inventory {
		if n == name {
			return true
		}
	}
	return false
}

// Visited returns the visited room names in first-visit order.
func (g *Game) Visited() []string {
	names := make([]string, len(g.visited))
	copy(names, g.visited)
	return names
}

// HasVisited reports whether the named room has been visited.
func (g *Game) HasVisited(name string) bool {
	for _, n := range g.visited {
		if n == name {
			return true
		}
	}
	return false
}

// Start begins the adventure: it publishes the START event, places the
// player in the starting room and returns the room's entry description.
// A starting room and a starting message must have been configured.
// When a snapshot was restored first, Start keeps the restored position.
func (g *Game) Start() (string, error) {
	if g.startingRoom == nil || g.startingMessage == "" {
		return "", fmt.Errorf("starting room and starting message are required: %w", world.ErrMissingParameters)
	}
	g.started = true
	g.events.Publish(events.TypeStart, nil)

	if g.current == nil {
		g.current = g.startingRoom
		g.visit(g.current.Name)
	}
	if g.current.Music != "" {
		g.startMusic(g.current.Music)
	}
	return g.current.Enter(), nil
}

// visit records a room in the visit history, preserving first-visit order.
func (g *Game) visit(name string) {
	if !g.HasVisited(name) {
		g.visited = append(g.visited, name)
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/defaltsimon/pac-adventure/internal/worldfile"
	"github.com/defaltsimon/pac-adventure/pkg/events"
	"github.com/defaltsimon/pac-adventure/pkg/game"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml> [world.yaml ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &WorldValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("world file must have a .yaml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !isValidWorldFilename(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.yaml, not my-world.yaml or MyWorld.yaml)", baseName)
	}

	def, err := worldfile.Load(filename)
	if err != nil {
		return err
	}

	v.errors = nil
	v.validateDefinition(def)

	// Building the world catches everything the structural checks can't:
	// duplicate names, unknown references in links, placements, blueprints
	// and requirements.
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := game.New(def.Name, def.Version, events.NewDispatcher(), discard)
	if err := worldfile.Build(def, g); err != nil {
		v.addError(err.Error())
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *WorldValidator) validateDefinition(def *worldfile.Definition) {
	for _, item := range def.Items {
		if item.Name == "" {
			v.addError("item with empty name")
		}
		if item.Description == "" {
			v.addError(fmt.Sprintf("item '%s' has no description", item.Name))
		}
		if item.Crafting != "" && !item.Craftable {
			v.addError(fmt.Sprintf("item '%s' has crafting text but is not craftable", item.Name))
		}
	}

	for _, obj := range def.Objects {
		if obj.Name == "" {
			v.addError("object with empty name")
		}
		if obj.Display == "" {
			v.addError(fmt.Sprintf("object '%s' has no display text", obj.Name))
		}
	}

	for _, room := range def.Rooms {
		v.validateRoom(&room)
	}

	for _, link := range def.Links {
		if link.From == "" || link.To == "" {
			v.addError(fmt.Sprintf("link '%s' -> '%s' is missing an endpoint", link.From, link.To))
		}
		if link.From == link.To {
			v.addError(fmt.Sprintf("room '%s' is linked to itself", link.From))
		}
	}

	for _, bp := range def.Blueprints {
		if bp.First == "" || bp.Second == "" || bp.Result == "" {
			v.addError(fmt.Sprintf("blueprint for '%s' is missing an ingredient or result", bp.Result))
		}
	}
}

func (v *WorldValidator) validateRoom(room *worldfile.RoomDef) {
	if room.Name == "" {
		v.addError("room with empty name")
	}
	if room.Description == "" {
		v.addError(fmt.Sprintf("room '%s' has no description", room.Name))
	}

	for _, req := range room.RequiresVisits {
		if req.Room == "" {
			v.addError(fmt.Sprintf("room '%s' has a visit requirement without a room", room.Name))
		}
		if req.Deny == "" {
			v.addError(fmt.Sprintf("room '%s' has a visit requirement without a deny message", room.Name))
		}
	}
	for _, req := range room.RequiresItems {
		if req.Item == "" {
			v.addError(fmt.Sprintf("room '%s' has an item requirement without an item", room.Name))
		}
		if req.Deny == "" {
			v.addError(fmt.Sprintf("room '%s' has an item requirement without a deny message", room.Name))
		}
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}

package worldfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk authoring format for a world: everything needed
// to build a Game through the authoring API.
type Definition struct {
	Name            string   `yaml:"name"`
	Version         string   `yaml:"version"`
	StartingMessage string   `yaml:"starting_message"`
	Defaults        Defaults `yaml:"defaults"`

	Items      []ItemDef      `yaml:"items"`
	Objects    []ObjectDef    `yaml:"objects"`
	Rooms      []RoomDef      `yaml:"rooms"`
	Links      []LinkDef      `yaml:"links"`
	Blueprints []BlueprintDef `yaml:"blueprints"`
}

// Defaults overrides the engine-wide fallback messages. Empty fields keep
// the engine's built-in texts.
type Defaults struct {
	Use           string `yaml:"use"`
	FailedUse     string `yaml:"failed_use"`
	FailedPickup  string `yaml:"failed_pickup"`
	FailedCombine string `yaml:"failed_combine"`
}

type ItemDef struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Use            string   `yaml:"use"`
	FailedUse      string   `yaml:"failed_use"`
	Pickup         string   `yaml:"pickup"`
	FailedPickup   string   `yaml:"failed_pickup"`
	Craftable      bool     `yaml:"craftable"`
	Crafting       string   `yaml:"crafting"`
	PickupRequires []string `yaml:"pickup_requires"`
	UseRequires    []string `yaml:"use_requires"`
}

type ObjectDef struct {
	Name      string            `yaml:"name"`
	Display   string            `yaml:"display"`
	Use       string            `yaml:"use"`
	FailedUse string            `yaml:"failed_use"`
	Requires  []string          `yaml:"requires"`
	ItemUses  map[string]string `yaml:"item_uses"`
	Music     string            `yaml:"music"`
}

type RoomDef struct {
	Name           string            `yaml:"name"`
	Description    string            `yaml:"description"`
	FirstVisit     string            `yaml:"first_visit"`
	Starting       bool              `yaml:"starting"`
	Music          string            `yaml:"music"`
	Items          []RoomItemDef     `yaml:"items"`
	Objects        []string          `yaml:"objects"`
	RequiresVisits []RequirementDef  `yaml:"requires_visits"`
	RequiresItems  []RequirementDef  `yaml:"requires_items"`
}

type RoomItemDef struct {
	Name      string `yaml:"name"`
	Placement string `yaml:"placement"`
}

type RequirementDef struct {
	Room string `yaml:"room,omitempty"`
	Item string `yaml:"item,omitempty"`
	Deny string `yaml:"deny"`
}

type LinkDef struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	TwoWay bool   `yaml:"two_way"`
}

type BlueprintDef struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Result string `yaml:"result"`
}

// Load reads and decodes a world definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse world file %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world file %s: %w", path, err)
	}
	return &def, nil
}

// Validate checks the structural requirements the builder depends on.
// Entity-level errors (duplicates, unknown references) surface later from
// the authoring API with the offending name attached.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("world needs a name")
	}
	if d.Version == "" {
		return fmt.Errorf("world needs a version")
	}
	if d.StartingMessage == "" {
		return fmt.Errorf("world needs a starting_message")
	}
	if len(d.Rooms) == 0 {
		return fmt.Errorf("world needs at least one room")
	}
	starting := 0
	for _, r := range d.Rooms {
		if r.Starting {
			starting++
		}
	}
	if starting != 1 {
		return fmt.Errorf("world needs exactly one starting room, found %d", starting)
	}
	return nil
}

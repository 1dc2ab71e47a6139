package game

import (
	"fmt"

	"github.com/defaltsimon/pac-adventure/pkg/world"
)

// ItemSpec carries the creation fields for a portable item. Empty optional
// texts are substituted from the engine defaults current at creation time.
type ItemSpec struct {
	Name             string
	Description      string
	UseText          string
	FailedUseText    string
	PickupText       string
	FailedPickupText string
	Craftable        bool
	CraftingText     string
}

// ObjectSpec carries the creation fields for a static object.
type ObjectSpec struct {
	Name          string
	DisplayText   string
	UseText       string
	FailedUseText string
}

// CreateRoom registers a new room. At most one room may be marked starting;
// a later starting room replaces the earlier one.
func (g *Game) CreateRoom(name, description, firstVisit string, starting bool) (*world.Room, error) {
	if _, exists := g.rooms[name]; exists {
		return nil, fmt.Errorf("room %q: %w", name, world.ErrAlreadyExists)
	}
	room, err := world.NewRoom(name, description, firstVisit, starting)
	if err != nil {
		return nil, err
	}
	g.rooms[name] = room
	if starting {
		g.startingRoom = room
	}
	return room, nil
}

// CreateItem registers a new portable item, substituting engine defaults for
// omitted texts.
func (g *Game) CreateItem(spec ItemSpec) (*world.Item, error) {
	if _, exists := g.items[spec.Name]; exists {
		return nil, fmt.Errorf("item %q: %w", spec.Name, world.ErrAlreadyExists)
	}
	item, err := world.NewItem(spec.Name, spec.Description)
	if err != nil {
		return nil, err
	}

	item.UseText = spec.UseText
	if item.UseText == "" {
		item.UseText = g.defaults.Use
	}
	item.FailedUseText = spec.FailedUseText
	if item.FailedUseText == "" {
		item.FailedUseText = g.defaults.FailedUse
	}
	item.PickupText = spec.PickupText
	if item.PickupText == "" {
		item.PickupText = fmt.Sprintf("You picked up %s", spec.Name)
	}
	item.FailedPickupText = spec.FailedPickupText
	if item.FailedPickupText == "" {
		item.FailedPickupText = g.defaults.FailedPickup
	}
	item.Craftable = spec.Craftable
	item.CraftingText = spec.CraftingText
	if item.CraftingText == "" {
		item.CraftingText = fmt.Sprintf("By combining you created a %s", spec.Name)
	}

	g.items[spec.Name] = item
	return item, nil
}

// CreateStaticObject registers a new static object.
func (g *Game) CreateStaticObject(spec ObjectSpec) (*world.StaticObject, error) {
	if _, exists := g.statics[spec.Name]; exists {
		return nil, fmt.Errorf("static object %q: %w", spec.Name, world.ErrAlreadyExists)
	}
	obj, err := world.NewStaticObject(spec.Name, spec.DisplayText)
	if err != nil {
		return nil, err
	}

	obj.UseText = spec.UseText
	if obj.UseText == "" {
		obj.UseText = g.defaults.Use
	}
	obj.FailedUseText = spec.FailedUseText
	if obj.FailedUseText == "" {
		obj.FailedUseText = g.defaults.FailedUse
	}

	g.statics[spec.Name] = obj
	return obj, nil
}

// CreateBlueprint registers a crafting rule. All three items must already be
// registered. Pair uniqueness is not enforced; the first registered
// blueprint for a pair wins.
func (g *Game) CreateBlueprint(first, second, result string) error {
	for _, name := range []string{first, second, result} {
		if _, err := g.Item(name); err != nil {
			return err
		}
	}
	g.blueprints = append(g.blueprints, world.Blueprint{First: first, Second: second, Result: result})
	return nil
}

// LinkRooms adds a directed edge from one room to another, and the reverse
// edge as well when twoWay is set.
func (g *Game) LinkRooms(from, to string, twoWay bool) error {
	if _, err := g.Room(from); err != nil {
		return err
	}
	if _, err := g.Room(to); err != nil {
		return err
	}
	g.links[from] = append(g.links[from], to)
	if twoWay {
		g.links[to] = append(g.links[to], from)
	}
	return nil
}

// PutItem places a registered item in a registered room with the given
// placement text.
func (g *Game) PutItem(roomName, itemName, placement string) error {
	room, err := g.Room(roomName)
	if err != nil {
		return err
	}
	if _, err := g.Item(itemName); err != nil {
		return err
	}
	room.PutItem(itemName, placement)
	return nil
}

// PutStaticObject places a registered static object in a registered room.
// The object's display text serves as the placement text.
func (g *Game) PutStaticObject(roomName, objectName string) error {
	room, err := g.Room(roomName)
	if err != nil {
		return err
	}
	obj, err := g.StaticObject(objectName)
	if err != nil {
		return err
	}
	room.PutObject(objectName, obj.DisplayText)
	return nil
}

// AddVisitRequirement gates entry to a room behind a prior visit to another.
func (g *Game) AddVisitRequirement(roomName, requiredRoom, deny string) error {
	room, err := g.Room(roomName)
	if err != nil {
		return err
	}
	if _, err := g.Room(requiredRoom); err != nil {
		return err
	}
	room.AddVisitRequirement(requiredRoom, deny)
	return nil
}

// AddItemRequirement gates entry to a room behind possession of an item.
func (g *Game) AddItemRequirement(roomName, requiredItem, deny string) error {
	room, err := g.Room(roomName)
	if err != nil {
		return err
	}
	if _, err := g.Item(requiredItem); err != nil {
		return err
	}
	room.AddItemRequirement(requiredItem, deny)
	return nil
}

// AddPickupRequirement gates picking up an item behind possession of another.
func (g *Game) AddPickupRequirement(itemName, requiredItem string) error {
	item, err := g.Item(itemName)
	if err != nil {
		return err
	}
	if _, err := g.Item(requiredItem); err != nil {
		return err
	}
	item.AddPickupRequirement(requiredItem)
	return nil
}

// AddUseRequirement gates using an item behind possession of another.
func (g *Game) AddUseRequirement(itemName, requiredItem string) error {
	item, err := g.Item(itemName)
	if err != nil {
		return err
	}
	if _, err := g.Item(requiredItem); err != nil {
		return err
	}
	item.AddUseRequirement(requiredItem)
	return nil
}

// AddObjectRequirement gates interaction with a static object behind
// possession of an item.
func (g *Game) AddObjectRequirement(objectName, requiredItem string) error {
	obj, err := g.StaticObject(objectName)
	if err != nil {
		return err
	}
	if _, err := g.Item(requiredItem); err != nil {
		return err
	}
	obj.AddRequirement(requiredItem)
	return nil
}

// AddObjectItemUse registers the text shown when an item is used on a
// static object.
func (g *Game) AddObjectItemUse(objectName, itemName, text string) error {
	obj, err := g.StaticObject(objectName)
	if err != nil {
		return err
	}
	if _, err := g.Item(itemName); err != nil {
		return err
	}
	obj.AddItemUse(itemName, text)
	return nil
}

// SetRoomMusic associates an ambient audio path with a room.
func (g *Game) SetRoomMusic(roomName, path string) error {
	room, err := g.Room(roomName)
	if err != nil {
		return err
	}
	room.Music = path
	return nil
}

// SetObjectMusic associates an ambient audio path with a static object.
func (g *Game) SetObjectMusic(objectName, path string) error {
	obj, err := g.StaticObject(objectName)
	if err != nil {
		return err
	}
	obj.Music = path
	return nil
}

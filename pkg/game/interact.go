package game

import (
	"github.com/defaltsimon/pac-adventure/pkg/events"
)

// PickUp moves an item from the current room into the inventory and returns
// the item's pickup text. An unregistered name fails with ErrUnknownEntity.
// When the item is not in the current room, or its pickup prerequisites are
// not carried, the appropriate deny text is returned instead and nothing
// changes.
func (g *Game) PickUp(name string) (string, error) {
	item, err := g.Item(name)
	if err != nil {
		return "", err
	}
	if g.current == nil || !g.current.HasItem(name) {
		return g.defaults.FailedPickup, nil
	}
	if !item.CanPickUp(g.inventory) {
		return item.FailedPickupText, nil
	}

	text := item.PickUp()
	g.current.RemoveItem(name)
	g.inventory = append(g.inventory, name)
	g.events.Publish(events.TypePickup, map[string]any{"item": name, "desc": text})
	g.completedAction()
	return text, nil
}

// UseItem uses a carried item in place and returns its use text. The item
// stays in the inventory: used and carried are independent. Deny texts are
// returned for an item not carried or with unmet use prerequisites.
func (g *Game) UseItem(name string) (string, error) {
	item, err := g.Item(name)
	if err != nil {
		return "", err
	}
	if !g.Carrying(name) {
		return g.defaults.FailedUse, nil
	}
	if !item.CanUse(g.inventory) {
		return item.FailedUseText, nil
	}

	text := item.Use()
	g.events.Publish(events.TypeUseItem, map[string]any{"item": name, "desc": text})
	g.completedAction()
	return text, nil
}

// UseObject interacts with a static object in the current room, optionally
// applying a carried item to it. With an empty itemName the object's own use
// text is returned; with an item, the text registered for that item on the
// object. No registered interaction for the pair counts as a failed use.
func (g *Game) UseObject(name, itemName string) (string, error) {
	obj, err := g.StaticObject(name)
	if err != nil {
		return "", err
	}
	if g.current == nil || !g.current.HasObject(name) {
		return g.defaults.FailedUse, nil
	}
	if !obj.CanUse(g.inventory) {
		return obj.FailedUseText, nil
	}

	if obj.Music != "" {
		g.startMusic(obj.Music)
	}

	var text string
	if itemName == "" {
		text = obj.Use()
	} else {
		if _, err := g.Item(itemName); err != nil {
			return "", err
		}
		var ok bool
		text, ok = obj.UseWith(itemName)
		if !ok {
			text = obj.FailedUseText
		}
	}

	g.events.Publish(events.TypeUseObject, map[string]any{"object": name, "desc": text})
	g.completedAction()
	return text, nil
}

// Combine matches a pair of carried items against the registered blueprints,
// in registration order. On a match, one occurrence of each input is
// consumed from the inventory, the result item is inserted and crafted, a
// COMBINE event fires and the crafting text is returned with crafted=true.
// When either item is not carried or no blueprint matches, Combine declines
// with crafted=false and the caller falls back to the default combine-fail
// message. Matching is symmetric: Combine(a, b) and Combine(b, a) behave
// identically.
func (g *Game) Combine(first, second string) (string, bool, error) {
	if _, err := g.Item(first); err != nil {
		return "", false, err
	}
	if _, err := g.Item(second); err != nil {
		return "", false, err
	}
	if !g.Carrying(first) || !g.Carrying(second) {
		return "", false, nil
	}

	for _, bp := range g.blueprints {
		if !bp.Matches(first, second) {
			continue
		}
		result := g.items[bp.Result]

		g.removeFromInventory(first)
		g.removeFromInventory(second)
		g.inventory = append(g.inventory, bp.Result)

		// Non-craftable results keep their flags and yield empty text.
		text, _ := result.Craft()

		g.events.Publish(events.TypeCombine, map[string]any{
			"first":  first,
			"second": second,
			"result": bp.Result,
		})
		g.completedAction()
		return text, true, nil
	}
	return "", false, nil
}

// removeFromInventory removes the first occurrence of the named item.
func (g *Game) removeFromInventory(name string) {
	for i, n := range g.inventory {
		if n == name {
			g.inventory = append(g.inventory[:i], g.inventory[i+1:]...)
			return
		}
	}
}

package worldfile

import (
	"fmt"

	"github.com/defaltsimon/pac-adventure/pkg/game"
)

// Build applies the definition onto a game through the authoring API, in a
// fixed order: defaults, items, objects, rooms, placement, requirements,
// links, blueprints. The first authoring error aborts the build.
func Build(def *Definition, g *game.Game) error {
	applyDefaults(def.Defaults, g)
	g.SetStartingMessage(def.StartingMessage)

	for _, it := range def.Items {
		if _, err := g.CreateItem(game.ItemSpec{
			Name:             it.Name,
			Description:      it.Description,
			UseText:          it.Use,
			FailedUseText:    it.FailedUse,
			PickupText:       it.Pickup,
			FailedPickupText: it.FailedPickup,
			Craftable:        it.Craftable,
			CraftingText:     it.Crafting,
		}); err != nil {
			return fmt.Errorf("item %q: %w", it.Name, err)
		}
	}
	// Pickup/use prerequisites reference other items, so a second pass.
	for _, it := range def.Items {
		for _, req := range it.PickupRequires {
			if err := g.AddPickupRequirement(it.Name, req); err != nil {
				return fmt.Errorf("item %q pickup requirement: %w", it.Name, err)
			}
		}
		for _, req := range it.UseRequires {
			if err := g.AddUseRequirement(it.Name, req); err != nil {
				return fmt.Errorf("item %q use requirement: %w", it.Name, err)
			}
		}
	}

	for _, ob := range def.Objects {
		if _, err := g.CreateStaticObject(game.ObjectSpec{
			Name:          ob.Name,
			DisplayText:   ob.Display,
			UseText:       ob.Use,
			FailedUseText: ob.FailedUse,
		}); err != nil {
			return fmt.Errorf("object %q: %w", ob.Name, err)
		}
		for _, req := range ob.Requires {
			if err := g.AddObjectRequirement(ob.Name, req); err != nil {
				return fmt.Errorf("object %q requirement: %w", ob.Name, err)
			}
		}
		for item, text := range ob.ItemUses {
			if err := g.AddObjectItemUse(ob.Name, item, text); err != nil {
				return fmt.Errorf("object %q item use: %w", ob.Name, err)
			}
		}
		if ob.Music != "" {
			if err := g.SetObjectMusic(ob.Name, ob.Music); err != nil {
				return fmt.Errorf("object %q music: %w", ob.Name, err)
			}
		}
	}

	for _, rm := range def.Rooms {
		if _, err := g.CreateRoom(rm.Name, rm.Description, rm.FirstVisit, rm.Starting); err != nil {
			return fmt.Errorf("room %q: %w", rm.Name, err)
		}
		if rm.Music != "" {
			if err := g.SetRoomMusic(rm.Name, rm.Music); err != nil {
				return fmt.Errorf("room %q music: %w", rm.Name, err)
			}
		}
		for _, it := range rm.Items {
			if err := g.PutItem(rm.Name, it.Name, it.Placement); err != nil {
				return fmt.Errorf("room %q item: %w", rm.Name, err)
			}
		}
		for _, ob := range rm.Objects {
			if err := g.PutStaticObject(rm.Name, ob); err != nil {
				return fmt.Errorf("room %q object: %w", rm.Name, err)
			}
		}
	}
	// Visit requirements reference other rooms, so after all rooms exist.
	for _, rm := range def.Rooms {
		for _, req := range rm.RequiresVisits {
			if err := g.AddVisitRequirement(rm.Name, req.Room, req.Deny); err != nil {
				return fmt.Errorf("room %q visit requirement: %w", rm.Name, err)
			}
		}
		for _, req := range rm.RequiresItems {
			if err := g.AddItemRequirement(rm.Name, req.Item, req.Deny); err != nil {
				return fmt.Errorf("room %q item requirement: %w", rm.Name, err)
			}
		}
	}

	for _, ln := range def.Links {
		if err := g.LinkRooms(ln.From, ln.To, ln.TwoWay); err != nil {
			return fmt.Errorf("link %q -> %q: %w", ln.From, ln.To, err)
		}
	}

	for _, bp := range def.Blueprints {
		if err := g.CreateBlueprint(bp.First, bp.Second, bp.Result); err != nil {
			return fmt.Errorf("blueprint %q + %q: %w", bp.First, bp.Second, err)
		}
	}

	return nil
}

func applyDefaults(d Defaults, g *game.Game) {
	if d.Use != "" {
		g.SetDefaultUseMessage(d.Use)
	}
	if d.FailedUse != "" {
		g.SetDefaultUseFailMessage(d.FailedUse)
	}
	if d.FailedPickup != "" {
		g.SetDefaultPickUpFailMessage(d.FailedPickup)
	}
	if d.FailedCombine != "" {
		g.SetDefaultCombineFailMessage(d.FailedCombine)
	}
}

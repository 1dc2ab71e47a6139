package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/defaltsimon/pac-adventure/pkg/game"
	"github.com/defaltsimon/pac-adventure/pkg/world"
)

// commandResult is what one player utterance produced: text to display and
// whether it was a denial (styled differently) or a quit request.
type commandResult struct {
	text   string
	denial bool
	header bool // re-render the room header above the text
	quit   bool
}

const helpText = "Commands: go <room>, back, pick up <item>, use <item>, " +
	"use <item> on <object>, combine <item> with <item>, look, inv, where, ways, save, help, quit"

// runCommand maps a free-text command onto engine calls. This is a thin
// veneer: all state, requirement and ordering rules live in the engine.
func runCommand(g *game.Game, input string) commandResult {
	// Entity names are authored lowercase, so matching runs on the
	// lowercased input.
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)

	switch {
	case lower == "help" || lower == "what to do":
		return commandResult{text: helpText}

	case lower == "quit" || lower == "exit":
		return commandResult{quit: true}

	case lower == "inv" || lower == "inventory":
		return commandResult{text: describeInventory(g)}

	case lower == "where" || lower == "where am i" || lower == "room":
		return commandResult{text: "You are in the " + g.CurrentRoom().Name + "."}

	case lower == "ways" || lower == "paths":
		return commandResult{text: "You can go to: " + strings.Join(g.Ways(), ", ")}

	case lower == "look":
		return commandResult{text: g.CurrentRoom().Enter(), header: true}

	case lower == "save":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.Save(ctx); err != nil {
			return commandResult{text: "Could not save the game.", denial: true}
		}
		return commandResult{text: "Game saved."}

	case lower == "go back" || lower == "back":
		res, err := g.GoBack()
		return walkOutcome(res, err)

	case hasWalkPrefix(lower):
		target := stripArticle(cutWalkPrefix(lower))
		if target == "" {
			return commandResult{text: "Where do you want to go?"}
		}
		res, err := g.Walk(target)
		return walkOutcome(res, err)

	case strings.HasPrefix(lower, "pick up"):
		name := stripArticle(strings.TrimSpace(lower[len("pick up"):]))
		if name == "" {
			return commandResult{text: "What do you want to pick up?"}
		}
		text, err := g.PickUp(name)
		if err != nil {
			return errorOutcome(err)
		}
		return commandResult{text: text}

	case strings.HasPrefix(lower, "combine"):
		return runCombine(g, strings.TrimSpace(lower[len("combine"):]))

	case strings.HasPrefix(lower, "use"):
		return runUse(g, stripArticle(strings.TrimSpace(lower[len("use"):])))
	}

	return commandResult{text: "I don't understand that. Type 'help' for commands."}
}

func runUse(g *game.Game, rest string) commandResult {
	if rest == "" {
		return commandResult{text: "What do you want to use?"}
	}

	// "use <item> on <object>" and "use <item> with <object>" apply an item
	// to a static object; bare "use <name>" tries the item, then the object.
	for _, sep := range []string{" on ", " with "} {
		if item, object, found := strings.Cut(rest, sep); found {
			text, err := g.UseObject(stripArticle(strings.TrimSpace(object)), stripArticle(strings.TrimSpace(item)))
			if err != nil {
				return errorOutcome(err)
			}
			return commandResult{text: text}
		}
	}

	if _, err := g.Item(rest); err == nil {
		text, err := g.UseItem(rest)
		if err != nil {
			return errorOutcome(err)
		}
		return commandResult{text: text}
	}
	text, err := g.UseObject(rest, "")
	if err != nil {
		return errorOutcome(err)
	}
	return commandResult{text: text}
}

func runCombine(g *game.Game, rest string) commandResult {
	first, second, found := strings.Cut(rest, " with ")
	if !found {
		first, second, found = strings.Cut(rest, " and ")
	}
	if !found {
		return commandResult{text: "Use: combine <item> with <item>"}
	}

	text, crafted, err := g.Combine(stripArticle(strings.TrimSpace(first)), stripArticle(strings.TrimSpace(second)))
	if err != nil {
		return errorOutcome(err)
	}
	if !crafted {
		return commandResult{text: g.DefaultCombineFailMessage(), denial: true}
	}
	return commandResult{text: text}
}

func walkOutcome(res game.WalkResult, err error) commandResult {
	if err != nil {
		return errorOutcome(err)
	}
	if res.Denied() {
		return commandResult{text: res.Denial, denial: true}
	}
	return commandResult{text: res.Description, header: true}
}

func errorOutcome(err error) commandResult {
	switch {
	case errors.Is(err, world.ErrNotLinked):
		return commandResult{text: "You can't get there from here.", denial: true}
	case errors.Is(err, world.ErrUnknownEntity):
		return commandResult{text: "I don't know what that is.", denial: true}
	case errors.Is(err, world.ErrNoPreviousRoom):
		return commandResult{text: "There's nowhere to go back to.", denial: true}
	default:
		return commandResult{text: fmt.Sprintf("Something went wrong: %v", err), denial: true}
	}
}

var walkPrefixes = []string{"walk down ", "walk to ", "walk ", "go to ", "go down ", "go "}

func hasWalkPrefix(lower string) bool {
	for _, p := range walkPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func cutWalkPrefix(input string) string {
	lower := strings.ToLower(input)
	for _, p := range walkPrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(input[len(p):])
		}
	}
	return input
}

// stripArticle drops a leading "a", "an" or "the" from an entity name.
func stripArticle(name string) string {
	lower := strings.ToLower(name)
	for _, art := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(lower, art) {
			return strings.TrimSpace(name[len(art):])
		}
	}
	return name
}

func describeInventory(g *game.Game) string {
	items := g.Inventory()
	if len(items) == 0 {
		return "You do not have anything in your inventory."
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, withArticle(it.Name))
	}
	if len(names) == 1 {
		return "You have " + names[0] + "."
	}
	if len(names) == 2 {
		return "You have " + names[0] + " and " + names[1] + "."
	}
	return "You have " + strings.Join(names, ", ") + "."
}

func withArticle(name string) string {
	if name == "" {
		return name
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + name
	}
	return "a " + name
}

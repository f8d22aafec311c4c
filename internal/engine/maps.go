package engine

import (
	"fmt"
	"log/slog"

	"github.com/saltwindgames/saltwind/internal/world"
)

// arriveAtGateway handles stepping onto a gateway tile: the location is
// discovered, and enterable places swap the active map.
func (e *Engine) arriveAtGateway(place *world.Place) {
	if e.player.DiscoverLocation(place.Name) {
		e.AddMessage(fmt.Sprintf("You discovered %s!", place.Name))
	}

	if !place.Enterable() {
		e.AddMessage(fmt.Sprintf("You stand before %s.", place.Name))
		return
	}
	e.enterPlace(place)
}

// enterPlace pushes the current map state onto the transition stack and
// swaps in the place's sub-map, generating and caching it on first entry.
// The pushed frame records the player's overworld position so the return
// trip restores it exactly.
func (e *Engine) enterPlace(place *world.Place) {
	generated, ok := e.gen.EnterPlace(place)
	if !ok {
		return
	}

	e.stack = append(e.stack, frame{
		gameMap:   e.gameMap,
		monsters:  e.monsters,
		npcs:      e.npcs,
		places:    e.places,
		playerPos: world.Point{X: e.player.X, Y: e.player.Y},
	})

	e.gameMap = generated.Map
	e.monsters = generated.Monsters
	e.npcs = generated.NPCs
	e.places = generated.Places
	e.player.X, e.player.Y = generated.PlayerStart.X, generated.PlayerStart.Y

	slog.Info("entered place", "place", place.Name, "depth", len(e.stack))
	e.AddMessage(fmt.Sprintf("You enter %s.", place.Name))
	e.publish(EventMapTransition, e.player, nil)
}

// exitMap pops the transition stack, restoring the previous map, its entity
// list, and the player's recorded position.
func (e *Engine) exitMap() {
	if len(e.stack) == 0 {
		return
	}

	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	e.gameMap = top.gameMap
	e.monsters = top.monsters
	e.npcs = top.npcs
	e.places = top.places
	e.player.X, e.player.Y = top.playerPos.X, top.playerPos.Y

	slog.Info("returned to previous map", "depth", len(e.stack))
	e.AddMessage("You return the way you came.")
	e.publish(EventMapTransition, e.player, nil)
}

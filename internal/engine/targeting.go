package engine

import (
	"math"

	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/spells"
	"github.com/saltwindgames/saltwind/internal/world"
)

// targetingState is the transient aim-cursor state while a spell waits for
// a target.
type targetingState struct {
	spell      spells.Spell
	cursor     world.Point
	rangeTiles map[world.Point]bool
}

// Targeting reports whether the engine is waiting on an aim cursor.
func (e *Engine) Targeting() bool {
	return e.targeting != nil
}

// TargetCursor returns the aim cursor position. Only meaningful while
// Targeting.
func (e *Engine) TargetCursor() world.Point {
	if e.targeting == nil {
		return world.Point{}
	}
	return e.targeting.cursor
}

// RangeTiles returns the precomputed set of tiles the pending spell can
// reach, for the renderer to highlight.
func (e *Engine) RangeTiles() []world.Point {
	if e.targeting == nil {
		return nil
	}
	out := make([]world.Point, 0, len(e.targeting.rangeTiles))
	for p := range e.targeting.rangeTiles {
		out = append(out, p)
	}
	return out
}

// AreaTiles returns the blast disc around the current cursor for area
// spells.
func (e *Engine) AreaTiles() []world.Point {
	if e.targeting == nil {
		return nil
	}
	radius := e.targeting.spell.AreaRadius()
	if radius == 0 {
		return nil
	}
	return e.tilesWithin(e.targeting.cursor, radius)
}

// StartTargeting begins a spell cast. Casting preconditions are checked up
// front; self-targeted spells skip the cursor and resolve immediately.
func (e *Engine) StartTargeting(spellName string) {
	if e.state != StatePlaying {
		return
	}
	if e.targeting != nil {
		e.CancelTargeting()
	}

	spell, ok := spells.ByName(spellName)
	if !ok {
		e.AddMessage("No such spell.")
		return
	}
	if reason, castable := e.book.CanCast(spellName); !castable {
		e.AddMessage(reason)
		return
	}

	if spell.Target == spells.TargetSelf {
		e.resolveCast(spell, nil, world.Point{X: e.player.X, Y: e.player.Y})
		return
	}

	e.targeting = &targetingState{
		spell:      spell,
		cursor:     world.Point{X: e.player.X, Y: e.player.Y},
		rangeTiles: e.rangeTileSet(spell),
	}
}

// MoveCursor steps the aim cursor, clamped to the map bounds.
func (e *Engine) MoveCursor(dx, dy int) {
	if e.targeting == nil {
		return
	}
	nx, ny := e.targeting.cursor.X+dx, e.targeting.cursor.Y+dy
	if e.gameMap.InBounds(nx, ny) {
		e.targeting.cursor = world.Point{X: nx, Y: ny}
	}
}

// CancelTargeting abandons the pending cast without spending anything.
func (e *Engine) CancelTargeting() {
	e.targeting = nil
}

// ConfirmTarget resolves the pending cast at the cursor. Aim points outside
// the range set and missing targets for single-target spells are rejected
// with a message; targeting stays active so the player can re-aim.
func (e *Engine) ConfirmTarget() {
	if e.targeting == nil {
		return
	}
	spell := e.targeting.spell
	cursor := e.targeting.cursor

	if !e.targeting.rangeTiles[cursor] {
		e.AddMessage("That is out of range.")
		return
	}

	target := e.monsterAt(cursor.X, cursor.Y)
	if spell.NeedsTarget() && target == nil {
		e.AddMessage("No valid target at that location!")
		return
	}

	e.targeting = nil
	e.resolveCast(spell, target, cursor)
}

// resolveCast burns the slot, applies the effect (to every monster in the
// blast for area spells), and hands the turn to the monsters. Casting while
// invisible breaks invisibility.
func (e *Engine) resolveCast(spell spells.Spell, target *entities.Monster, aim world.Point) {
	if !e.book.ExpendSlot(spell.Name) {
		return
	}

	wasInvisible := e.player.Status.Invisible

	if spell.AreaRadius() > 0 {
		e.applyAreaSpell(spell, aim)
	} else {
		ctx := spells.Context{Caster: e.player, Target: target, Roller: e.roller}
		e.AddMessage(spell.Apply(ctx))
		if target != nil && !target.Alive() {
			e.killMonster(target)
		}
	}

	if wasInvisible && spell.Name != "Invisibility" {
		e.player.Status.Invisible = false
		e.AddMessage("The spell's release breaks your invisibility.")
	}

	e.publish(EventSpellCast, e.player, nil)
	e.monsterTurns()
}

// applyAreaSpell hits every living monster inside the blast disc; over
// empty ground the spell still fires for flavor.
func (e *Engine) applyAreaSpell(spell spells.Spell, aim world.Point) {
	var hit int
	for _, p := range e.tilesWithin(aim, spell.AreaRadius()) {
		if m := e.monsterAt(p.X, p.Y); m != nil {
			hit++
			msg := spell.Apply(spells.Context{Caster: e.player, Target: m, Roller: e.roller})
			e.AddMessage(msg)
			if !m.Alive() {
				e.killMonster(m)
			}
		}
	}
	if hit == 0 {
		e.AddMessage(spell.Apply(spells.Context{Caster: e.player, Roller: e.roller}))
	}
}

// rangeTileSet precomputes every tile within the spell's range of the
// caster, by Euclidean distance.
func (e *Engine) rangeTileSet(spell spells.Spell) map[world.Point]bool {
	set := make(map[world.Point]bool)
	center := world.Point{X: e.player.X, Y: e.player.Y}
	for _, p := range e.tilesWithin(center, spell.RangeTiles()) {
		set[p] = true
	}
	return set
}

// tilesWithin returns the in-bounds tiles within radius of a center.
func (e *Engine) tilesWithin(center world.Point, radius int) []world.Point {
	var out []world.Point
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if !e.gameMap.InBounds(x, y) {
				continue
			}
			dx, dy := float64(x-center.X), float64(y-center.Y)
			if math.Hypot(dx, dy) <= float64(radius) {
				out = append(out, world.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Package spells holds the spell catalog, spell effects, and the Mage's
// spellbook (known/prepared spells and level-bucketed slots).
package spells

import (
	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/entities"
)

// TargetType selects how a spell resolves its target.
type TargetType string

// Target types.
const (
	TargetSelf   TargetType = "self"   // always the caster, no geometry
	TargetTouch  TargetType = "touch"  // effective range 1 tile
	TargetSingle TargetType = "single" // one entity at the aim tile
	TargetArea   TargetType = "area"   // every entity in a disc around the aim tile
)

// Context carries everything a spell effect may need. Target is nil for
// self-targeted casts and for area casts over empty ground.
type Context struct {
	Caster *entities.Player
	Target *entities.Monster
	Roller dice.Roller
}

// Spell is one row of the static catalog.
type Spell struct {
	Name        string
	Level       int
	RangeFeet   int // 0 means caster-only
	Duration    string
	Description string
	Target      TargetType
	effect      func(ctx Context) string
}

// RangeTiles converts the spell's range to map tiles at 5 feet per tile.
// Self-targeted spells have no reach; touch spells reach one tile.
func (s Spell) RangeTiles() int {
	switch s.Target {
	case TargetSelf:
		return 0
	case TargetTouch:
		return 1
	}
	if s.RangeFeet <= 0 {
		return 0
	}
	return s.RangeFeet / 5
}

// AreaRadius is the blast radius in tiles for area spells, zero otherwise.
// Fireball covers a wider disc than the rest.
func (s Spell) AreaRadius() int {
	if s.Target != TargetArea {
		return 0
	}
	if s.Name == "Fireball" {
		return 2
	}
	return 1
}

// NeedsTarget reports whether the spell refuses to fire without an entity
// under the cursor.
func (s Spell) NeedsTarget() bool {
	return s.Target == TargetSingle
}

// Apply runs the spell's effect and returns the log message.
func (s Spell) Apply(ctx Context) string {
	return s.effect(ctx)
}

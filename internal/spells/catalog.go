package spells

import (
	"fmt"
	"sort"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/entities"
)

// sleepHPThreshold is the most HP a creature can have and still be affected
// by Sleep (roughly four hit dice).
const sleepHPThreshold = 32

// baseSaveDC is the fixed part of a spell save DC; the caster's Intelligence
// modifier is added on top.
const baseSaveDC = 12

// SaveDC is the difficulty class of the caster's save-or-suffer spells.
func SaveDC(caster *entities.Player) int {
	return baseSaveDC + caster.Mod(entities.INT)
}

var catalog = map[string]Spell{
	"Light": {
		Name: "Light", Level: 1, RangeFeet: 60, Duration: "1 hour",
		Description: "Creates a magical light source, illuminating a 30' radius.",
		Target:      TargetSelf,
		effect: func(ctx Context) string {
			return "You create a magical light that illuminates the area around you."
		},
	},
	"Magic Missile": {
		Name: "Magic Missile", Level: 1, RangeFeet: 150, Duration: "Instant",
		Description: "A dart of magical energy automatically hits one visible target for 1d4+1 force damage.",
		Target:      TargetSingle,
		effect: func(ctx Context) string {
			if ctx.Target == nil {
				return "Magic Missile requires a target!"
			}
			damage := ctx.Roller.Roll(1, 4) + 1
			ctx.Target.TakeDamage(damage)
			return fmt.Sprintf("Magic missile strikes %s for %d force damage!", ctx.Target.Name, damage)
		},
	},
	"Shield": {
		Name: "Shield", Level: 1, Duration: "5 min",
		Description: "A magical barrier grants the caster a +2 bonus to Armor Class.",
		Target:      TargetSelf,
		effect: func(ctx Context) string {
			ctx.Caster.Status.TempACBonus += 2
			return "A shimmering magical barrier appears around you. +2 AC."
		},
	},
	"Sleep": {
		Name: "Sleep", Level: 1, RangeFeet: 120, Duration: "1 min",
		Description: "Puts a weak creature to sleep. Creatures above roughly four hit dice are unaffected.",
		Target:      TargetSingle,
		effect: func(ctx Context) string {
			if ctx.Target == nil {
				return "Sleep requires a target!"
			}
			if ctx.Target.HP > sleepHPThreshold {
				return fmt.Sprintf("%s is too powerful to be affected by sleep.", ctx.Target.Name)
			}
			ctx.Target.Status.Sleeping = true
			return fmt.Sprintf("%s falls into a magical sleep!", ctx.Target.Name)
		},
	},
	"Invisibility": {
		Name: "Invisibility", Level: 2, Duration: "10 min",
		Description: "The caster becomes invisible. The spell ends on an attack or another cast.",
		Target:      TargetSelf,
		effect: func(ctx Context) string {
			ctx.Caster.Status.Invisible = true
			return "You fade from sight. Monsters can no longer see you."
		},
	},
	"Scorching Ray": {
		Name: "Scorching Ray", Level: 2, RangeFeet: 90, Duration: "Instant",
		Description: "Hurls a ray of fire. Requires an attack roll; on a hit, deals 3d6 fire damage.",
		Target:      TargetSingle,
		effect: func(ctx Context) string {
			if ctx.Target == nil {
				return "Scorching Ray requires a target!"
			}
			roll := ctx.Roller.Roll(1, 20)
			if !dice.Resolve(roll, ctx.Caster.SpellAttackBonus(), 0, ctx.Target.AC()) {
				return fmt.Sprintf("Scorching ray misses %s.", ctx.Target.Name)
			}
			damage := ctx.Roller.Roll(3, 6)
			ctx.Target.TakeDamage(damage)
			return fmt.Sprintf("Scorching ray burns %s for %d fire damage!", ctx.Target.Name, damage)
		},
	},
	"Web": {
		Name: "Web", Level: 2, RangeFeet: 60, Duration: "10 min",
		Description: "Sticky webs fill the area. A creature caught in them must make a Reflex save or be restrained.",
		Target:      TargetSingle,
		effect: func(ctx Context) string {
			if ctx.Target == nil {
				return "Web requires a target!"
			}
			saved, _ := ctx.Target.MakeSavingThrow(ctx.Roller, entities.SaveReflex, SaveDC(ctx.Caster))
			if saved {
				return fmt.Sprintf("%s dodges the web!", ctx.Target.Name)
			}
			ctx.Target.Status.Restrained = true
			return fmt.Sprintf("%s is restrained by sticky webs!", ctx.Target.Name)
		},
	},
	"Fireball": {
		Name: "Fireball", Level: 3, RangeFeet: 150, Duration: "Instant",
		Description: "A fiery explosion. Every creature in the blast takes 6d6 fire damage, Reflex save for half.",
		Target:      TargetArea,
		effect: func(ctx Context) string {
			if ctx.Target == nil {
				return "The fireball explodes over empty ground, scorching the earth."
			}
			damage := ctx.Roller.Roll(6, 6)
			saved, _ := ctx.Target.MakeSavingThrow(ctx.Roller, entities.SaveReflex, SaveDC(ctx.Caster))
			suffix := "takes the full blast"
			if saved {
				damage /= 2
				suffix = "dives aside for half damage"
			}
			ctx.Target.TakeDamage(damage)
			return fmt.Sprintf("%s %s (%d fire damage)!", ctx.Target.Name, suffix, damage)
		},
	},
	"Fly": {
		Name: "Fly", Level: 3, Duration: "10 min",
		Description: "The caster gains the ability to fly at normal movement speed.",
		Target:      TargetSelf,
		effect: func(ctx Context) string {
			ctx.Caster.Status.Flying = true
			return "You rise into the air on currents of magic."
		},
	},
	"Haste": {
		Name: "Haste", Level: 3, RangeFeet: 30, Duration: "1 min",
		Description: "The caster moves with supernatural speed, gaining +1 AC.",
		Target:      TargetSelf,
		effect: func(ctx Context) string {
			ctx.Caster.Status.Hasted = true
			ctx.Caster.Status.TempACBonus++
			return "You begin moving with supernatural speed! +1 AC."
		},
	},
}

// ByName looks up a spell.
func ByName(name string) (Spell, bool) {
	s, ok := catalog[name]
	return s, ok
}

// ByLevel returns all spells of the given level, sorted by name.
func ByLevel(level int) []Spell {
	var out []Spell
	for _, s := range catalog {
		if s.Level == level {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every spell name sorted by level, then name.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := catalog[names[i]], catalog[names[j]]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.Name < b.Name
	})
	return names
}

// StartingMageSpells is the full spell list a new Mage knows.
func StartingMageSpells() []string {
	return Names()
}

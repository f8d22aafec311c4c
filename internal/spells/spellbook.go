package spells

import (
	"fmt"
	"sort"

	"github.com/saltwindgames/saltwind/internal/rules"
)

// Spellbook tracks a caster's known spells, the prepared loadout, and
// level-bucketed spell slots. Preparation is bounded by the slot maximum per
// level; casting burns a slot and unprepares the spell, so it must be
// re-prepared before the next cast. Resting refills every slot but wipes the
// prepared loadout.
type Spellbook struct {
	archetype rules.Archetype
	known     map[string]bool
	prepared  map[int][]string
	slots     map[int]int
	maxSlots  map[int]int
}

// NewSpellbook builds the book for an archetype at a level. Mages start
// knowing the whole catalog; other archetypes get an empty book with no
// slots.
func NewSpellbook(a rules.Archetype, level int) *Spellbook {
	b := &Spellbook{
		archetype: a,
		known:     make(map[string]bool),
		prepared:  make(map[int][]string),
		maxSlots:  rules.SpellSlotsAtLevel(a, level),
		slots:     make(map[int]int),
	}
	for lvl, max := range b.maxSlots {
		b.slots[lvl] = max
	}
	if a == rules.ArchetypeMage {
		for _, name := range StartingMageSpells() {
			b.known[name] = true
		}
	}
	return b
}

// Knows reports whether the spell is in the caster's known set.
func (b *Spellbook) Knows(name string) bool {
	return b.known[name]
}

// KnownNames lists known spells sorted by level, then name.
func (b *Spellbook) KnownNames() []string {
	var names []string
	for _, name := range Names() {
		if b.known[name] {
			names = append(names, name)
		}
	}
	return names
}

// Learn adds a spell to the known set. Unknown catalog names are ignored.
func (b *Spellbook) Learn(name string) bool {
	if _, ok := ByName(name); !ok {
		return false
	}
	b.known[name] = true
	return true
}

// Prepare moves a known spell into its level bucket. The returned message
// reports the outcome; ok is false when the spell stays unprepared.
func (b *Spellbook) Prepare(name string) (string, bool) {
	spell, exists := ByName(name)
	if !exists || !b.known[name] {
		return fmt.Sprintf("You don't know %s.", name), false
	}
	if b.IsPrepared(name) {
		return fmt.Sprintf("%s is already prepared.", name), false
	}
	if len(b.prepared[spell.Level]) >= b.maxSlots[spell.Level] {
		return fmt.Sprintf("No room to prepare more level %d spells.", spell.Level), false
	}
	b.prepared[spell.Level] = append(b.prepared[spell.Level], name)
	return fmt.Sprintf("You prepare %s.", name), true
}

// IsPrepared reports whether the spell is in the prepared loadout.
func (b *Spellbook) IsPrepared(name string) bool {
	spell, ok := ByName(name)
	if !ok {
		return false
	}
	for _, prepared := range b.prepared[spell.Level] {
		if prepared == name {
			return true
		}
	}
	return false
}

// Prepared returns the prepared spells of a level, sorted by name.
func (b *Spellbook) Prepared(level int) []string {
	out := append([]string(nil), b.prepared[level]...)
	sort.Strings(out)
	return out
}

// SlotsRemaining returns the unspent slots at a level.
func (b *Spellbook) SlotsRemaining(level int) int {
	return b.slots[level]
}

// MaxSlots returns the slot maximum at a level.
func (b *Spellbook) MaxSlots(level int) int {
	return b.maxSlots[level]
}

// CanCast checks the full casting precondition: known, prepared, and a slot
// remaining at the spell's level. The returned reason is player-facing.
func (b *Spellbook) CanCast(name string) (string, bool) {
	spell, exists := ByName(name)
	if !exists || !b.known[name] {
		return fmt.Sprintf("You don't know %s.", name), false
	}
	if !b.IsPrepared(name) {
		return fmt.Sprintf("%s is not prepared!", name), false
	}
	if b.slots[spell.Level] <= 0 {
		return fmt.Sprintf("No level %d spell slots remaining!", spell.Level), false
	}
	return "", true
}

// ExpendSlot burns a slot for the spell and removes it from the prepared
// loadout. Returns false if the spell was not castable.
func (b *Spellbook) ExpendSlot(name string) bool {
	if _, ok := b.CanCast(name); !ok {
		return false
	}
	spell, _ := ByName(name)
	b.slots[spell.Level]--
	bucket := b.prepared[spell.Level]
	for i, prepared := range bucket {
		if prepared == name {
			b.prepared[spell.Level] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	return true
}

// Rest refills every slot to its maximum and clears the prepared loadout:
// ready-to-act is traded for flexibility, and the loadout must be chosen
// again.
func (b *Spellbook) Rest() {
	for lvl, max := range b.maxSlots {
		b.slots[lvl] = max
	}
	b.prepared = make(map[int][]string)
}

// AdvanceLevel recomputes slot maxima after a level up. Newly unlocked
// levels arrive with full slots; existing levels keep their unspent count,
// clamped to the new maximum.
func (b *Spellbook) AdvanceLevel(level int) {
	next := rules.SpellSlotsAtLevel(b.archetype, level)
	for lvl, max := range next {
		if _, had := b.maxSlots[lvl]; !had {
			b.slots[lvl] = max
		} else if b.slots[lvl] > max {
			b.slots[lvl] = max
		}
	}
	b.maxSlots = next
}

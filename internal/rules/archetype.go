// Package rules holds the static game rules shared across components:
// archetypes, proficiency classes, and the experience progression table.
package rules

// Archetype is the player's class. It determines hit-die size, starting
// attack bonus, proficiencies, and special abilities.
type Archetype string

// The three archetypes.
const (
	ArchetypeWarrior Archetype = "Warrior"
	ArchetypeMage    Archetype = "Mage"
	ArchetypeExpert  Archetype = "Expert"
)

// archetypeData is the static per-archetype stat table.
type archetypeData struct {
	hitDie           int
	startAttackBonus int
	proficiencies    string
}

var archetypes = map[Archetype]archetypeData{
	ArchetypeWarrior: {hitDie: 10, startAttackBonus: 1, proficiencies: "All weapons, all armor, shields"},
	ArchetypeMage:    {hitDie: 4, startAttackBonus: 0, proficiencies: "Dagger, staff"},
	ArchetypeExpert:  {hitDie: 6, startAttackBonus: 0, proficiencies: "Light/medium armor, simple/ranged weapons"},
}

// Valid reports whether a is one of the three archetypes.
func (a Archetype) Valid() bool {
	_, ok := archetypes[a]
	return ok
}

// HitDie returns the archetype's hit-die size (sides).
func (a Archetype) HitDie() int {
	return archetypes[a].hitDie
}

// StartingAttackBonus returns the base attack bonus at level 1.
func (a Archetype) StartingAttackBonus() int {
	return archetypes[a].startAttackBonus
}

// Proficiencies returns the display string for character sheets.
func (a Archetype) Proficiencies() string {
	return archetypes[a].proficiencies
}

package rules

// levelProgression is the canonical xp-to-next-level table. Levels past the
// table keep doubling the last entry.
var levelProgression = map[int]int{
	1: 2000,
	2: 4000,
	3: 8000,
	4: 16000,
	5: 32000,
}

const maxTableLevel = 5

// XPToNextLevel returns the experience required to advance from the given
// level. Non-decreasing in level.
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if xp, ok := levelProgression[level]; ok {
		return xp
	}
	xp := levelProgression[maxTableLevel]
	for l := maxTableLevel; l < level; l++ {
		xp *= 2
	}
	return xp
}

// AttackBonusAtLevel returns the archetype's base attack bonus at a level.
// Warriors gain +1 on even-level milestones; the other archetypes keep their
// starting bonus.
func AttackBonusAtLevel(a Archetype, level int) int {
	bonus := a.StartingAttackBonus()
	if a == ArchetypeWarrior {
		bonus += level / 2
	}
	return bonus
}

// SneakAttackDice returns the number of d6 an Expert adds on a sneak attack
// at the given level: one die at level 1, another at each odd level.
func SneakAttackDice(a Archetype, level int) int {
	if a != ArchetypeExpert {
		return 0
	}
	return (level + 1) / 2
}

// SpellSlotsAtLevel returns a Mage's spell slots per spell level. Non-casters
// get nil. Slots open up one spell level per two character levels, deepest
// level thinnest.
func SpellSlotsAtLevel(a Archetype, level int) map[int]int {
	if a != ArchetypeMage {
		return nil
	}
	if level < 1 {
		level = 1
	}
	slots := map[int]int{1: 1 + level/2}
	if level >= 3 {
		slots[2] = level / 2
	}
	if level >= 5 {
		slots[3] = level / 3
	}
	return slots
}

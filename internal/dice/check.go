package dice

// Modifier converts an ability score to its universal bonus:
// floor((score-10)/2). Correct for scores below 10 (8 -> -1, 7 -> -2).
func Modifier(score int) int {
	diff := score - 10
	if diff >= 0 {
		return diff / 2
	}
	return (diff - 1) / 2
}

// Resolve is the Universal Resolution Mechanic: a single d20-based predicate
// shared by attacks, skill checks, and saving throws. Callers supply whichever
// modifiers apply to their context and the target number to beat.
func Resolve(d20Roll, abilityMod, proficiencyBonus, targetNumber int) bool {
	return d20Roll+abilityMod+proficiencyBonus >= targetNumber
}

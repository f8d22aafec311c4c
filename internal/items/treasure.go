package items

import (
	"fmt"

	"github.com/saltwindgames/saltwind/internal/dice"
)

// Treasure tier thresholds. Tiering is purely presentational; the value is
// what feeds gold and XP.
const (
	treasureTierSilver = 25
	treasureTierGold   = 100
)

// RandomTreasure draws a uniform gold value in [lo, hi] and synthesizes a
// treasure item whose name scales with the tier. Returns the item and its
// value.
func RandomTreasure(roller dice.Roller, lo, hi int) (Item, int) {
	if hi < lo {
		lo, hi = hi, lo
	}
	value := lo
	if span := hi - lo + 1; span > 1 {
		value = lo + roller.Roll(1, span) - 1
	}

	var name, description string
	switch {
	case value < treasureTierSilver:
		name = "a pouch of silver coins"
		description = fmt.Sprintf("Tarnished silver worth %d gold.", value)
	case value < treasureTierGold:
		name = "a handful of gold coins"
		description = fmt.Sprintf("Gleaming coins worth %d gold.", value)
	default:
		name = "a cluster of cut gems"
		description = fmt.Sprintf("Precious stones worth %d gold.", value)
	}

	return Item{
		Name:        name,
		Description: description,
		Type:        TypeTreasure,
		Value:       value,
	}, value
}

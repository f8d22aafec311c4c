package entities

import (
	"fmt"

	"github.com/saltwindgames/saltwind/internal/dice"
)

// Combatant is the shared state of anything that can fight. Derived stats
// (AC, attack bonus, saves) are computed on read, never cached, so equipment
// and status changes can't go stale.
type Combatant struct {
	GameObject
	HP              int
	MaxHP           int
	BaseAC          int
	BaseAttackBonus int
	Level           int
	Abilities       Abilities
	Status          Status
}

// Mod returns the universal modifier for one of the combatant's abilities.
func (c *Combatant) Mod(a Ability) int {
	return dice.Modifier(c.Abilities[a])
}

// Alive reports whether the combatant is still in the fight.
func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// AC is the base armor class plus any temporary bonus. Player overrides this
// with its equipment-aware formula.
func (c *Combatant) AC() int {
	return c.BaseAC + c.Status.TempACBonus
}

// AttackBonus is the base attack bonus. Player overrides this with its
// equipment-aware formula.
func (c *Combatant) AttackBonus() int {
	return c.BaseAttackBonus
}

// SaveBonus returns the bonus for a saving throw type: the governing ability
// modifier plus half the combatant's level.
func (c *Combatant) SaveBonus(save SaveType) int {
	var mod int
	switch save {
	case SaveFortitude:
		mod = c.Mod(CON)
	case SaveReflex:
		mod = c.Mod(DEX)
	case SaveWill:
		mod = c.Mod(WIS)
	}
	return mod + c.Level/2
}

// MakeSavingThrow rolls a d20 save against a DC. Returns success and the
// rolled total.
func (c *Combatant) MakeSavingThrow(roller dice.Roller, save SaveType, dc int) (bool, int) {
	total := roller.Roll(1, 20) + c.SaveBonus(save)
	return total >= dc, total
}

// TakeDamage subtracts damage from HP, flooring at zero. Returns the amount
// actually applied.
func (c *Combatant) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	if amount > 0 {
		c.Status.Sleeping = false
	}
	return amount
}

// Heal restores HP, clamped at MaxHP. Returns the amount actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if c.HP+amount > c.MaxHP {
		amount = c.MaxHP - c.HP
	}
	c.HP += amount
	return amount
}

// DisplayName returns the combatant's human-readable name.
func (c *Combatant) DisplayName() string {
	return c.Name
}

// OffGuard reports whether the combatant is in no state to defend itself.
// Sneak attacks key off this.
func (c *Combatant) OffGuard() bool {
	return c.Status.Sleeping || c.Status.Restrained
}

// Target is what an attack or hostile spell resolves against. Both Player
// and Monster satisfy it; Player brings its equipment-aware AC.
type Target interface {
	DisplayName() string
	AC() int
	TakeDamage(amount int) int
	Alive() bool
	OffGuard() bool
}

// AttackResult is the structured outcome of a single attack. Collaborators
// branch on Hit and Damage; Message is display-only.
type AttackResult struct {
	Hit     bool
	Damage  int
	Message string
}

// resolveAttack runs the shared to-hit and damage logic for any attacker.
// attackBonus includes every modifier the attacker brings; damage is computed
// only on a hit and always lands for at least 1.
func resolveAttack(roller dice.Roller, attackerName string, attackBonus int, target Target, damageFn func() int) AttackResult {
	roll := roller.Roll(1, 20)
	if !dice.Resolve(roll, attackBonus, 0, target.AC()) {
		return AttackResult{
			Message: fmt.Sprintf("%s misses %s.", attackerName, target.DisplayName()),
		}
	}

	damage := damageFn()
	if damage < 1 {
		damage = 1
	}
	applied := target.TakeDamage(damage)
	return AttackResult{
		Hit:    true,
		Damage: applied,
		Message: fmt.Sprintf("%s hits %s for %d damage!",
			attackerName, target.DisplayName(), applied),
	}
}

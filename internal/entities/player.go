package entities

import (
	"fmt"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/items"
	"github.com/saltwindgames/saltwind/internal/quests"
	"github.com/saltwindgames/saltwind/internal/rules"
)

// Player is the single player-controlled combatant.
type Player struct {
	Combatant

	Archetype rules.Archetype
	XP        int
	Gold      int

	Inventory []items.Item
	Equipped  map[items.Slot]items.Item

	QuestLog       *quests.Log
	KnownLocations map[string]bool
}

// NewPlayer creates a level 1 player of the given archetype with the
// standard starting kit. Max HP is the archetype's full hit die plus the
// Constitution modifier, never below 1.
func NewPlayer(id, name string, archetype rules.Archetype, abilities Abilities) *Player {
	if abilities == nil {
		abilities = DefaultAbilities()
	}

	maxHP := archetype.HitDie() + dice.Modifier(abilities[CON])
	if maxHP < 1 {
		maxHP = 1
	}

	p := &Player{
		Combatant: Combatant{
			GameObject: GameObject{
				ID:    id,
				Kind:  KindPlayer,
				Glyph: '@',
				Color: ColorPlayer,
				Name:  name,
			},
			HP:        maxHP,
			MaxHP:     maxHP,
			Level:     1,
			Abilities: abilities,
		},
		Archetype:      archetype,
		Gold:           25,
		Equipped:       make(map[items.Slot]items.Item),
		QuestLog:       quests.NewLog(),
		KnownLocations: make(map[string]bool),
	}

	ironSword, _ := items.NewMagicWeapon("Iron Sword", "Long Sword", 1)
	shield, _ := items.NewArmor("Wooden Shield")
	p.Inventory = []items.Item{
		items.HealthPotion(),
		items.Rope(),
		ironSword,
		shield,
	}
	p.Equipped[items.SlotWeapon], _ = items.NewWeapon("Short Sword")
	p.Equipped[items.SlotArmor], _ = items.NewArmor("Leather Armor")

	return p
}

// AC is 10 plus the Dexterity modifier, plus AC bonuses from every equipped
// item and any temporary spell bonus.
func (p *Player) AC() int {
	ac := 10 + p.Mod(DEX) + p.Status.TempACBonus
	for _, it := range p.Equipped {
		ac += it.Bonus("ac")
	}
	return ac
}

// AttackBonus is the Strength modifier plus the archetype's level-based
// bonus plus any attack bonus on the equipped weapon.
func (p *Player) AttackBonus() int {
	bonus := p.Mod(STR) + rules.AttackBonusAtLevel(p.Archetype, p.Level)
	if w, ok := p.Equipped[items.SlotWeapon]; ok {
		bonus += w.Bonus("attack")
	}
	return bonus
}

// SpellAttackBonus is the Intelligence modifier plus half the player's
// level, used by attack-roll spells.
func (p *Player) SpellAttackBonus() int {
	return p.Mod(INT) + p.Level/2
}

// Attack swings the equipped weapon (or fists) at the target. An Expert
// striking from invisibility or at an off-guard target adds sneak attack
// dice to the damage.
func (p *Player) Attack(roller dice.Roller, target Target) AttackResult {
	sneak := rules.SneakAttackDice(p.Archetype, p.Level)
	if sneak > 0 && !p.Status.Invisible && !target.OffGuard() {
		sneak = 0
	}
	return resolveAttack(roller, p.Name, p.AttackBonus(), target, func() int {
		damage := p.rollWeaponDamage(roller)
		if sneak > 0 {
			damage += roller.Roll(sneak, 6)
		}
		return damage
	})
}

func (p *Player) rollWeaponDamage(roller dice.Roller) int {
	w, ok := p.Equipped[items.SlotWeapon]
	if !ok {
		return roller.Roll(1, 2) + p.Mod(STR)
	}
	return roller.Roll(w.DamageDice, w.DamageSides) + p.Mod(STR) + w.Bonus("damage")
}

// Equip moves an inventory item into its slot, returning the previously
// equipped item (if any) to the inventory. The returned message reports the
// outcome; a rejected equip leaves all state unchanged.
func (p *Player) Equip(index int) (string, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return "There's nothing there to equip.", false
	}
	it := p.Inventory[index]
	if !it.Equippable() {
		return fmt.Sprintf("You can't equip the %s.", it.Name), false
	}

	switch it.Type {
	case items.TypeWeapon:
		if !items.CanUseWeapon(p.Archetype, it.Category) {
			return fmt.Sprintf("You don't know how to wield a %s.", it.Category), false
		}
	case items.TypeArmor:
		if !items.CanWearArmor(p.Archetype, it.Category) {
			return fmt.Sprintf("You aren't trained to wear %s.", it.Category), false
		}
	}

	p.removeFromInventory(index)
	if prev, ok := p.Equipped[it.Slot]; ok {
		p.Inventory = append(p.Inventory, prev)
	}
	p.Equipped[it.Slot] = it
	return fmt.Sprintf("You equip the %s.", it.Name), true
}

// UseItem consumes a consumable from the inventory. Non-consumables are
// rejected with a message and stay put.
func (p *Player) UseItem(roller dice.Roller, index int) string {
	if index < 0 || index >= len(p.Inventory) {
		return "There's nothing there to use."
	}
	it := p.Inventory[index]
	if it.Type != items.TypeConsumable {
		return fmt.Sprintf("You can't use the %s.", it.Name)
	}

	p.removeFromInventory(index)
	if it.Healing != nil {
		amount := roller.Roll(it.Healing.Dice, it.Healing.Sides) + it.Healing.Bonus
		healed := p.Heal(amount)
		return fmt.Sprintf("You drink the %s and recover %d HP.", it.Name, healed)
	}
	return fmt.Sprintf("You use the %s.", it.Name)
}

// DropItem removes an inventory item and returns it so the caller can place
// it in the world.
func (p *Player) DropItem(index int) (items.Item, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return items.Item{}, false
	}
	it := p.Inventory[index]
	p.removeFromInventory(index)
	return it, true
}

func (p *Player) removeFromInventory(index int) {
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
}

// GainMonsterXP awards the XP value of a defeated monster.
func (p *Player) GainMonsterXP(amount int) {
	if amount > 0 {
		p.XP += amount
	}
}

// GainTreasureXP awards XP equal to the gold value of recovered treasure and
// adds the gold itself.
func (p *Player) GainTreasureXP(value int) {
	if value > 0 {
		p.XP += value
		p.Gold += value
	}
}

// XPToNextLevel is the total XP required for the player's next level.
func (p *Player) XPToNextLevel() int {
	return rules.XPToNextLevel(p.Level)
}

// CheckForLevelUp applies every level the player has earned, returning one
// message per level gained.
func (p *Player) CheckForLevelUp(roller dice.Roller) []string {
	var messages []string
	for p.XP >= p.XPToNextLevel() {
		messages = append(messages, p.levelUp(roller)...)
	}
	return messages
}

// levelUp advances one level: max HP grows by a hit die roll plus the
// Constitution modifier (never below 1) and the player heals to full.
func (p *Player) levelUp(roller dice.Roller) []string {
	p.Level++

	gained := roller.Roll(1, p.Archetype.HitDie()) + p.Mod(CON)
	if gained < 1 {
		gained = 1
	}
	p.MaxHP += gained
	p.HP = p.MaxHP

	messages := []string{
		fmt.Sprintf("You reach level %d! Max HP increases by %d.", p.Level, gained),
	}

	switch p.Archetype {
	case rules.ArchetypeWarrior:
		if p.Level%2 == 0 {
			messages = append(messages, "Your martial training sharpens: +1 to attack.")
		}
	case rules.ArchetypeMage:
		messages = append(messages, "Your arcane reserves deepen.")
	case rules.ArchetypeExpert:
		if p.Level%2 == 1 {
			messages = append(messages, fmt.Sprintf("Your sneak attack improves to %dd6.",
				rules.SneakAttackDice(p.Archetype, p.Level)))
		}
	}
	return messages
}

// DiscoverLocation records a named landmark as known. Returns true the first
// time the location is seen.
func (p *Player) DiscoverLocation(name string) bool {
	if name == "" || p.KnownLocations[name] {
		return false
	}
	p.KnownLocations[name] = true
	return true
}

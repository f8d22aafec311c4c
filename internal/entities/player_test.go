package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/items"
	"github.com/saltwindgames/saltwind/internal/rules"
)

func newWarrior() *entities.Player {
	return entities.NewPlayer("player-1", "Aldric", rules.ArchetypeWarrior, nil)
}

func TestNewPlayer(t *testing.T) {
	t.Run("warrior starts with full hit die", func(t *testing.T) {
		p := newWarrior()
		assert.Equal(t, 10, p.MaxHP)
		assert.Equal(t, p.MaxHP, p.HP)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 25, p.Gold)
	})

	t.Run("constitution raises starting HP", func(t *testing.T) {
		abilities := entities.DefaultAbilities()
		abilities[entities.CON] = 16 // +3
		p := entities.NewPlayer("player-1", "Brom", rules.ArchetypeWarrior, abilities)
		assert.Equal(t, 13, p.MaxHP)
	})

	t.Run("mage HP never drops below 1", func(t *testing.T) {
		abilities := entities.DefaultAbilities()
		abilities[entities.CON] = 3 // -4 beats the d4
		p := entities.NewPlayer("player-1", "Wisp", rules.ArchetypeMage, abilities)
		assert.Equal(t, 1, p.MaxHP)
	})

	t.Run("starting kit is equipped and stowed", func(t *testing.T) {
		p := newWarrior()
		assert.Equal(t, "Short Sword", p.Equipped[items.SlotWeapon].Name)
		assert.Equal(t, "Leather Armor", p.Equipped[items.SlotArmor].Name)
		assert.Len(t, p.Inventory, 4)
	})
}

func TestPlayerDerivedStats(t *testing.T) {
	p := newWarrior()

	// 10 base + 0 DEX + 2 leather.
	assert.Equal(t, 12, p.AC())
	// 0 STR + 1 warrior level bonus + plain short sword.
	assert.Equal(t, 1, p.AttackBonus())

	p.Abilities[entities.DEX] = 14
	p.Status.TempACBonus = 2
	assert.Equal(t, 16, p.AC())

	p.Abilities[entities.STR] = 18
	assert.Equal(t, 5, p.AttackBonus())
}

func TestPlayerEquip(t *testing.T) {
	t.Run("magic weapon raises attack bonus", func(t *testing.T) {
		p := newWarrior()
		// Iron Sword sits at inventory index 2.
		msg, ok := p.Equip(2)
		assert.True(t, ok)
		assert.Equal(t, "You equip the Iron Sword.", msg)
		assert.Equal(t, "Iron Sword", p.Equipped[items.SlotWeapon].Name)
		assert.Equal(t, 2, p.AttackBonus())
		// Short Sword went back to the bags.
		assert.Len(t, p.Inventory, 4)
	})

	t.Run("shield stacks with armor", func(t *testing.T) {
		p := newWarrior()
		msg, ok := p.Equip(3)
		assert.True(t, ok)
		assert.Equal(t, "You equip the Wooden Shield.", msg)
		assert.Equal(t, 13, p.AC())
	})

	t.Run("mage cannot wear armor", func(t *testing.T) {
		p := entities.NewPlayer("player-1", "Wisp", rules.ArchetypeMage, nil)
		armor, ok := items.NewArmor("Chain Mail")
		require.True(t, ok)
		p.Inventory = append(p.Inventory, armor)

		msg, ok := p.Equip(len(p.Inventory) - 1)
		assert.False(t, ok)
		assert.Contains(t, msg, "aren't trained")
		assert.Contains(t, p.Inventory[len(p.Inventory)-1].Name, "Chain Mail")
	})

	t.Run("mage cannot wield martial weapons", func(t *testing.T) {
		p := entities.NewPlayer("player-1", "Wisp", rules.ArchetypeMage, nil)
		sword, ok := items.NewWeapon("Long Sword")
		require.True(t, ok)
		p.Inventory = append(p.Inventory, sword)

		msg, ok := p.Equip(len(p.Inventory) - 1)
		assert.False(t, ok)
		assert.Contains(t, msg, "don't know how to wield")
	})

	t.Run("consumables are not equippable", func(t *testing.T) {
		p := newWarrior()
		msg, ok := p.Equip(0) // Health Potion
		assert.False(t, ok)
		assert.Contains(t, msg, "can't equip")
		assert.Len(t, p.Inventory, 4)
	})

	t.Run("bad index", func(t *testing.T) {
		p := newWarrior()
		msg, ok := p.Equip(99)
		assert.False(t, ok)
		assert.Equal(t, "There's nothing there to equip.", msg)
	})
}

func TestPlayerUseItem(t *testing.T) {
	p := newWarrior()
	p.HP = 1

	msg := p.UseItem(&dice.FixedRoller{Value: 6}, 0)
	assert.Contains(t, msg, "recover 6 HP")
	assert.Equal(t, 7, p.HP)
	assert.Len(t, p.Inventory, 3)

	// Rope is now index 0 and not consumable.
	msg = p.UseItem(&dice.FixedRoller{Value: 6}, 0)
	assert.Contains(t, msg, "can't use")
	assert.Len(t, p.Inventory, 3)
}

func TestPlayerXPAndLeveling(t *testing.T) {
	t.Run("monsters and treasure both award XP", func(t *testing.T) {
		p := newWarrior()
		p.GainMonsterXP(50)
		p.GainTreasureXP(30)
		assert.Equal(t, 80, p.XP)
		assert.Equal(t, 55, p.Gold)
	})

	t.Run("level up heals to full and grows max HP", func(t *testing.T) {
		p := newWarrior()
		p.HP = 2
		p.XP = 2000

		msgs := p.CheckForLevelUp(&dice.FixedRoller{Value: 6})
		require.NotEmpty(t, msgs)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 16, p.MaxHP)
		assert.Equal(t, p.MaxHP, p.HP)
		assert.Contains(t, msgs[0], "level 2")
	})

	t.Run("a big haul can grant several levels", func(t *testing.T) {
		p := newWarrior()
		p.XP = 4000 // past level 2 (2000) and level 3 (4000)

		p.CheckForLevelUp(&dice.FixedRoller{Value: 1})
		assert.Equal(t, 3, p.Level)
	})

	t.Run("no level without the XP", func(t *testing.T) {
		p := newWarrior()
		p.XP = 1999
		assert.Empty(t, p.CheckForLevelUp(&dice.FixedRoller{Value: 1}))
		assert.Equal(t, 1, p.Level)
	})
}

func TestExpertSneakAttack(t *testing.T) {
	// Roll 13 meets Goblin AC 13; weapon and sneak dice land fixed at 13.
	roller := &dice.FixedRoller{Value: 13}

	newExpert := func() *entities.Player {
		p := entities.NewPlayer("player-1", "Shade", rules.ArchetypeExpert, nil)
		p.Level = 3 // 2d6 sneak attack
		return p
	}
	newVictim := func(t *testing.T) *entities.Monster {
		m := spawn(t, "Goblin", 0, 0)
		m.HP = 40
		m.MaxHP = 40
		return m
	}

	t.Run("sleeping targets take sneak damage", func(t *testing.T) {
		m := newVictim(t)
		m.Status.Sleeping = true
		result := newExpert().Attack(roller, m)
		require.True(t, result.Hit)
		assert.Equal(t, 26, result.Damage) // 13 weapon + 13 sneak
	})

	t.Run("restrained targets take sneak damage", func(t *testing.T) {
		m := newVictim(t)
		m.Status.Restrained = true
		result := newExpert().Attack(roller, m)
		assert.Equal(t, 26, result.Damage)
	})

	t.Run("striking from invisibility adds sneak damage", func(t *testing.T) {
		p := newExpert()
		p.Status.Invisible = true
		result := p.Attack(roller, newVictim(t))
		assert.Equal(t, 26, result.Damage)
	})

	t.Run("an aware target takes plain weapon damage", func(t *testing.T) {
		result := newExpert().Attack(roller, newVictim(t))
		assert.Equal(t, 13, result.Damage)
	})

	t.Run("other archetypes never sneak attack", func(t *testing.T) {
		m := newVictim(t)
		m.Status.Sleeping = true
		p := newWarrior()
		p.Level = 3
		result := p.Attack(roller, m)
		assert.Equal(t, 13, result.Damage)
	})
}

func TestPlayerDiscoverLocation(t *testing.T) {
	p := newWarrior()
	assert.True(t, p.DiscoverLocation("Saltwind Village"))
	assert.False(t, p.DiscoverLocation("Saltwind Village"))
	assert.False(t, p.DiscoverLocation(""))
	assert.True(t, p.KnownLocations["Saltwind Village"])
}

package spells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/rules"
	"github.com/saltwindgames/saltwind/internal/spells"
)

func newMage(t *testing.T) *entities.Player {
	t.Helper()
	abilities := entities.DefaultAbilities()
	abilities[entities.INT] = 16 // +3, save DC 15
	return entities.NewPlayer("player-1", "Wisp", rules.ArchetypeMage, abilities)
}

func newTarget(t *testing.T, template string) *entities.Monster {
	t.Helper()
	m, ok := entities.NewMonster("monster-1", template, 0, 0)
	require.True(t, ok)
	return m
}

func TestCatalogShape(t *testing.T) {
	assert.Len(t, spells.Names(), 10)
	assert.Len(t, spells.ByLevel(1), 4)
	assert.Len(t, spells.ByLevel(2), 3)
	assert.Len(t, spells.ByLevel(3), 3)

	_, ok := spells.ByName("Wish")
	assert.False(t, ok)
}

func TestRangeGeometry(t *testing.T) {
	missile, _ := spells.ByName("Magic Missile")
	assert.Equal(t, 30, missile.RangeTiles()) // 150 feet
	assert.Equal(t, 0, missile.AreaRadius())
	assert.True(t, missile.NeedsTarget())

	shield, _ := spells.ByName("Shield")
	assert.Equal(t, 0, shield.RangeTiles())
	assert.False(t, shield.NeedsTarget())

	fireball, _ := spells.ByName("Fireball")
	assert.Equal(t, 30, fireball.RangeTiles())
	assert.Equal(t, 2, fireball.AreaRadius())
	assert.False(t, fireball.NeedsTarget()) // area spells may hit empty ground
}

func TestMagicMissile(t *testing.T) {
	caster := newMage(t)
	target := newTarget(t, "Goblin")
	spell, _ := spells.ByName("Magic Missile")

	msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 3}})
	assert.Contains(t, msg, "4 force damage")
	assert.Equal(t, 3, target.HP) // 7 - (3+1)

	msg = spell.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 3}})
	assert.Contains(t, msg, "requires a target")
}

func TestShieldAndHasteStack(t *testing.T) {
	caster := newMage(t)
	base := caster.AC()

	shield, _ := spells.ByName("Shield")
	shield.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 1}})
	assert.Equal(t, base+2, caster.AC())

	haste, _ := spells.ByName("Haste")
	haste.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 1}})
	assert.Equal(t, base+3, caster.AC())
	assert.True(t, caster.Status.Hasted)
}

func TestSleepThreshold(t *testing.T) {
	caster := newMage(t)
	spell, _ := spells.ByName("Sleep")

	weak := newTarget(t, "Goblin")
	msg := spell.Apply(spells.Context{Caster: caster, Target: weak, Roller: &dice.FixedRoller{Value: 1}})
	assert.Contains(t, msg, "falls into a magical sleep")
	assert.True(t, weak.Status.Sleeping)

	tough := newTarget(t, "Skeleton")
	tough.HP = 40
	msg = spell.Apply(spells.Context{Caster: caster, Target: tough, Roller: &dice.FixedRoller{Value: 1}})
	assert.Contains(t, msg, "too powerful")
	assert.False(t, tough.Status.Sleeping)
}

func TestScorchingRay(t *testing.T) {
	caster := newMage(t) // spell attack +3
	spell, _ := spells.ByName("Scorching Ray")

	t.Run("hit", func(t *testing.T) {
		target := newTarget(t, "Goblin") // AC 13
		// 10 + 3 meets AC exactly; meeting the target number is a hit.
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 10}})
		assert.Contains(t, msg, "burns Goblin")
		assert.Equal(t, 0, target.HP) // 3d6 fixed at 10 overkills 7 HP
	})

	t.Run("miss", func(t *testing.T) {
		target := newTarget(t, "Goblin")
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 9}})
		assert.Contains(t, msg, "misses")
		assert.Equal(t, 7, target.HP)
	})
}

func TestWeb(t *testing.T) {
	caster := newMage(t) // DC 15
	spell, _ := spells.ByName("Web")

	t.Run("restrains on a failed save", func(t *testing.T) {
		target := newTarget(t, "Goblin")
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 14}})
		assert.Contains(t, msg, "restrained")
		assert.True(t, target.Status.Restrained)
	})

	t.Run("dodged on a made save", func(t *testing.T) {
		target := newTarget(t, "Goblin")
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 15}})
		assert.Contains(t, msg, "dodges")
		assert.False(t, target.Status.Restrained)
	})
}

func TestFireball(t *testing.T) {
	caster := newMage(t) // DC 15
	spell, _ := spells.ByName("Fireball")

	t.Run("full damage on a failed save", func(t *testing.T) {
		target := newTarget(t, "Skeleton")
		target.MaxHP = 60
		target.HP = 60
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 14}})
		assert.Contains(t, msg, "full blast")
		assert.Equal(t, 60-14, target.HP)
	})

	t.Run("half damage on a made save", func(t *testing.T) {
		target := newTarget(t, "Skeleton")
		target.MaxHP = 60
		target.HP = 60
		// Save roll 16 + skeleton reflex beats DC 15; 6d6 fixed at 16, halved.
		msg := spell.Apply(spells.Context{Caster: caster, Target: target, Roller: &dice.FixedRoller{Value: 16}})
		assert.Contains(t, msg, "half damage")
		assert.Equal(t, 60-8, target.HP)
	})

	t.Run("empty ground", func(t *testing.T) {
		msg := spell.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 10}})
		assert.Contains(t, msg, "empty ground")
	})
}

func TestSelfBuffs(t *testing.T) {
	caster := newMage(t)

	invis, _ := spells.ByName("Invisibility")
	invis.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 1}})
	assert.True(t, caster.Status.Invisible)

	fly, _ := spells.ByName("Fly")
	fly.Apply(spells.Context{Caster: caster, Roller: &dice.FixedRoller{Value: 1}})
	assert.True(t, caster.Status.Flying)
}

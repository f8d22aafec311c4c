package spells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/rules"
	"github.com/saltwindgames/saltwind/internal/spells"
)

func TestNewSpellbook(t *testing.T) {
	t.Run("mage knows the whole catalog", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1)
		assert.Len(t, b.KnownNames(), 10)
		assert.True(t, b.Knows("Fireball"))
		assert.Equal(t, 1, b.MaxSlots(1))
		assert.Equal(t, 1, b.SlotsRemaining(1))
		assert.Equal(t, 0, b.MaxSlots(2))
	})

	t.Run("warriors get an empty book", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeWarrior, 5)
		assert.Empty(t, b.KnownNames())
		assert.Equal(t, 0, b.MaxSlots(1))
	})
}

func TestSpellbookPrepare(t *testing.T) {
	t.Run("prepared spells land in their level bucket", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1)
		msg, ok := b.Prepare("Magic Missile")
		assert.True(t, ok)
		assert.Equal(t, "You prepare Magic Missile.", msg)
		assert.Equal(t, []string{"Magic Missile"}, b.Prepared(1))
	})

	t.Run("buckets are bounded by the slot maximum", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1) // one level-1 slot
		_, ok := b.Prepare("Magic Missile")
		require.True(t, ok)

		msg, ok := b.Prepare("Sleep")
		assert.False(t, ok)
		assert.Contains(t, msg, "No room")
	})

	t.Run("unknown and duplicate spells are rejected", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1)
		_, ok := b.Prepare("Wish")
		assert.False(t, ok)

		b.Prepare("Magic Missile")
		msg, ok := b.Prepare("Magic Missile")
		assert.False(t, ok)
		assert.Contains(t, msg, "already prepared")
	})
}

func TestSpellbookCasting(t *testing.T) {
	t.Run("casting burns the slot and unprepares", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1)
		b.Prepare("Magic Missile")

		require.True(t, b.ExpendSlot("Magic Missile"))
		assert.Equal(t, 0, b.SlotsRemaining(1))
		assert.False(t, b.IsPrepared("Magic Missile"))

		// Must re-prepare before the next cast, and there is no slot left
		// to power it anyway.
		reason, ok := b.CanCast("Magic Missile")
		assert.False(t, ok)
		assert.Contains(t, reason, "not prepared")
	})

	t.Run("unprepared spells cannot be cast", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 1)
		reason, ok := b.CanCast("Fireball")
		assert.False(t, ok)
		assert.Contains(t, reason, "not prepared")
		assert.False(t, b.ExpendSlot("Fireball"))
	})

	t.Run("empty slots block casting", func(t *testing.T) {
		b := spells.NewSpellbook(rules.ArchetypeMage, 3) // two level-1 slots
		b.Prepare("Magic Missile")
		b.Prepare("Sleep")
		require.True(t, b.ExpendSlot("Magic Missile"))
		require.True(t, b.ExpendSlot("Sleep"))

		b.Prepare("Light")
		reason, ok := b.CanCast("Light")
		assert.False(t, ok)
		assert.Contains(t, reason, "No level 1 spell slots")
	})
}

func TestSpellbookRest(t *testing.T) {
	b := spells.NewSpellbook(rules.ArchetypeMage, 3)
	b.Prepare("Magic Missile")
	b.Prepare("Web")
	b.ExpendSlot("Magic Missile")

	b.Rest()

	assert.Equal(t, b.MaxSlots(1), b.SlotsRemaining(1))
	assert.Equal(t, b.MaxSlots(2), b.SlotsRemaining(2))
	assert.Empty(t, b.Prepared(1))
	assert.Empty(t, b.Prepared(2))
}

func TestSpellbookAdvanceLevel(t *testing.T) {
	b := spells.NewSpellbook(rules.ArchetypeMage, 1)
	_, ok := b.Prepare("Magic Missile")
	require.True(t, ok)
	require.True(t, b.ExpendSlot("Magic Missile"))

	b.AdvanceLevel(3)

	// Level 2 slots unlock fully charged; the spent level-1 slot stays
	// spent until a rest.
	assert.Equal(t, 1, b.MaxSlots(2))
	assert.Equal(t, 1, b.SlotsRemaining(2))
	assert.Equal(t, 2, b.MaxSlots(1))
	assert.Equal(t, 0, b.SlotsRemaining(1))
}

package saves_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/errors"
	"github.com/saltwindgames/saltwind/internal/pkg/clock"
	"github.com/saltwindgames/saltwind/internal/repositories/saves"
	"github.com/saltwindgames/saltwind/internal/rules"
	"github.com/saltwindgames/saltwind/internal/testutils"
)

var testSavedAt = time.Unix(1700000000, 0)

// newTestRepository backs a repository with miniredis and a frozen clock.
func newTestRepository(t *testing.T) (saves.Repository, func()) {
	t.Helper()
	client, cleanup := testutils.CreateTestRedisClient(t)
	repo, err := saves.NewRedisRepository(&saves.Config{
		Client: client,
		Clock:  &clock.Fixed{T: testSavedAt},
	})
	require.NoError(t, err)
	return repo, cleanup
}

func testSnapshot() *saves.Snapshot {
	return &saves.Snapshot{
		Name:      "Aldric",
		Archetype: rules.ArchetypeWarrior,
		Level:     3,
		XP:        4500,
		HP:        21,
		MaxHP:     28,
		Gold:      140,
		X:         57,
		Y:         112,
		Seed:      42,
		Abilities: entities.Abilities{
			entities.STR: 16, entities.DEX: 12, entities.CON: 14,
			entities.INT: 10, entities.WIS: 11, entities.CHA: 8,
		},
		KnownLocations: []string{"Dragon's Lair", "Saltwind Village"},
	}
}

func TestRedisRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	want := testSnapshot()
	_, err := repo.Save(ctx, saves.SaveInput{Slot: "slot1", Snapshot: want})
	require.NoError(t, err)

	out, err := repo.Load(ctx, saves.LoadInput{Slot: "slot1"})
	require.NoError(t, err)
	want.SavedAt = testSavedAt.Unix()
	assert.Equal(t, want, out.Snapshot)
}

func TestRedisRepository_LoadMissingSlot(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()

	_, err := repo.Load(context.Background(), saves.LoadInput{Slot: "empty"})
	assert.True(t, errors.IsNotFound(err))
}

func TestRedisRepository_SaveValidation(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("empty slot", func(t *testing.T) {
		_, err := repo.Save(ctx, saves.SaveInput{Snapshot: testSnapshot()})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("nil snapshot", func(t *testing.T) {
		_, err := repo.Save(ctx, saves.SaveInput{Slot: "slot1"})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unknown archetype", func(t *testing.T) {
		s := testSnapshot()
		s.Archetype = "Bard"
		_, err := repo.Save(ctx, saves.SaveInput{Slot: "slot1", Snapshot: s})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestRedisRepository_SaveReplacesSlot(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	first := testSnapshot()
	_, err := repo.Save(ctx, saves.SaveInput{Slot: "slot1", Snapshot: first})
	require.NoError(t, err)

	second := testSnapshot()
	second.Level = 4
	second.KnownLocations = nil
	_, err = repo.Save(ctx, saves.SaveInput{Slot: "slot1", Snapshot: second})
	require.NoError(t, err)

	out, err := repo.Load(ctx, saves.LoadInput{Slot: "slot1"})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Snapshot.Level)
	assert.Empty(t, out.Snapshot.KnownLocations, "stale fields must not leak into the new save")
}

func TestRedisRepository_ListSorted(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	for _, slot := range []string{"zeta", "alpha"} {
		_, err := repo.Save(ctx, saves.SaveInput{Slot: slot, Snapshot: testSnapshot()})
		require.NoError(t, err)
	}

	out, err := repo.List(ctx, saves.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, out.Slots)
}

func TestRedisRepository_Delete(t *testing.T) {
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.Save(ctx, saves.SaveInput{Slot: "slot1", Snapshot: testSnapshot()})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, saves.DeleteInput{Slot: "slot1"})
	require.NoError(t, err)

	_, err = repo.Load(ctx, saves.LoadInput{Slot: "slot1"})
	assert.True(t, errors.IsNotFound(err))

	out, err := repo.List(ctx, saves.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Slots)

	_, err = repo.Delete(ctx, saves.DeleteInput{Slot: "slot1"})
	assert.True(t, errors.IsNotFound(err))
}

func TestSnapshotPlayerRoundTrip(t *testing.T) {
	abilities := entities.DefaultAbilities()
	abilities[entities.STR] = 16
	player := entities.NewPlayer("player-1", "Aldric", rules.ArchetypeWarrior, abilities)
	player.Level = 2
	player.XP = 2400
	player.MaxHP = 22
	player.HP = 17
	player.Gold = 88
	player.X, player.Y = 31, 77
	player.KnownLocations["Saltwind Village"] = true

	snapshot := saves.FromPlayer(player, 7)
	restored := snapshot.ToPlayer("player-2")

	assert.Equal(t, player.Name, restored.Name)
	assert.Equal(t, player.Archetype, restored.Archetype)
	assert.Equal(t, player.Level, restored.Level)
	assert.Equal(t, player.XP, restored.XP)
	assert.Equal(t, player.HP, restored.HP)
	assert.Equal(t, player.MaxHP, restored.MaxHP)
	assert.Equal(t, player.Gold, restored.Gold)
	assert.Equal(t, player.X, restored.X)
	assert.Equal(t, player.Y, restored.Y)
	assert.Equal(t, player.Abilities, restored.Abilities)
	assert.True(t, restored.KnownLocations["Saltwind Village"])
	assert.Equal(t, int64(7), snapshot.Seed)
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	_, err := saves.NewRedisRepository(&saves.Config{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = saves.NewRedisRepository(nil)
	assert.Error(t, err)
}

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/pkg/idgen"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := NewGenerator(&Config{Seed: seed, IDGenerator: idgen.NewSequential("gen")})
	require.NoError(t, err)
	return g
}

func TestConfigValidate(t *testing.T) {
	err := (&Config{Seed: 1}).Validate()
	assert.Error(t, err)

	err = (&Config{Seed: 1, IDGenerator: idgen.NewSequential("gen")}).Validate()
	assert.NoError(t, err)

	_, err = NewGenerator(&Config{})
	assert.Error(t, err)
}

func TestBiomeTile(t *testing.T) {
	tests := []struct {
		value   float64
		name    string
		blocked bool
	}{
		{-0.5, "deep water", true},
		{-0.2, "shallow water", true},
		{-0.15, "shallow water", true},
		{-0.05, "sand", false},
		{0.0, "grass", false},
		{0.29, "grass", false},
		{0.3, "forest", false},
		{0.49, "forest", false},
		{0.5, "mountain", true},
		{0.9, "mountain", true},
	}
	for _, tc := range tests {
		tile := biomeTile(tc.value)
		assert.Equal(t, tc.name, tile.Name, "value %v", tc.value)
		assert.Equal(t, tc.blocked, tile.Blocked, "value %v", tc.value)
	}
}

func TestOverworldDeterminism(t *testing.T) {
	a := newTestGenerator(t, 42).Overworld(80, 80)
	b := newTestGenerator(t, 42).Overworld(80, 80)

	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			ta, tb := a.Map.At(x, y), b.Map.At(x, y)
			require.Equal(t, ta.Name, tb.Name, "tile (%d,%d)", x, y)
			require.Equal(t, ta.Blocked, tb.Blocked, "tile (%d,%d)", x, y)
		}
	}
	assert.Equal(t, a.PlayerStart, b.PlayerStart)
	assert.Len(t, b.Places, len(a.Places))
}

func TestOverworldSeedsDiffer(t *testing.T) {
	a := newTestGenerator(t, 1).Overworld(80, 80)
	b := newTestGenerator(t, 2).Overworld(80, 80)

	same := true
	for y := 0; y < 80 && same; y++ {
		for x := 0; x < 80; x++ {
			if a.Map.At(x, y).Name != b.Map.At(x, y).Name {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "different seeds should give different worlds")
}

func TestOverworldLandmarks(t *testing.T) {
	out := newTestGenerator(t, 42).Overworld(OverworldSize, OverworldSize)

	counts := make(map[string]int)
	for _, p := range out.Places {
		counts[p.Name]++
	}

	// Placement can give up, never overshoot.
	assert.LessOrEqual(t, counts["Lone Farmstead"], 2)
	assert.LessOrEqual(t, counts["Saltwind Village"], 1)
	assert.LessOrEqual(t, counts["Ancient Crypt"], 2)
	assert.LessOrEqual(t, counts["Mage Tower"], 1)
	assert.LessOrEqual(t, counts["Dragon's Lair"], 1)
	// Bandit camps have no gateway and never register a place.
	assert.Zero(t, counts["Bandit Camp"])

	for _, p := range out.Places {
		tile := out.Map.At(p.X, p.Y)
		require.NotNil(t, tile)
		assert.Same(t, p, tile.GatewayTo)
		assert.False(t, tile.Blocked)
		assert.Contains(t, tile.Name, "entrance to")
	}

	// Player starts on the village when it placed.
	for _, p := range out.Places {
		if p.Name == "Saltwind Village" {
			assert.Equal(t, Point{p.X, p.Y}, out.PlayerStart)
		}
	}

	start := out.Map.At(out.PlayerStart.X, out.PlayerStart.Y)
	require.NotNil(t, start)
	assert.False(t, start.Blocked)
}

func TestVillageLayout(t *testing.T) {
	out := newTestGenerator(t, 7).Village(SubMapSize, SubMapSize)
	m := out.Map

	// Forest border all around.
	for x := 0; x < m.Width; x++ {
		assert.Equal(t, "forest", m.NameAt(x, 0))
		assert.Equal(t, "forest", m.NameAt(x, m.Height-1))
	}

	// 3x3 town square at the center.
	cx, cy := m.Width/2, m.Height/2
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			name := m.NameAt(cx+i, cy+j)
			// Maeve stands on the square; paths may overwrite nothing here.
			assert.Equal(t, "town square", name)
		}
	}

	// Western exit and the player just inside it.
	exit := m.At(1, m.Height/2)
	require.NotNil(t, exit)
	assert.True(t, exit.Exit)
	assert.Equal(t, Point{2, m.Height / 2}, out.PlayerStart)

	// Elder Maeve carries the Serpent Temple quest.
	var maeve bool
	for _, npc := range out.NPCs {
		if npc.Name == "Elder Maeve" {
			maeve = true
			require.NotNil(t, npc.Quest)
			assert.Equal(t, "The Serpent Temple", npc.Quest.Name)
		}
	}
	assert.True(t, maeve)
}

func TestDungeonLayout(t *testing.T) {
	out := newTestGenerator(t, 11).Dungeon(SubMapSize, SubMapSize)
	m := out.Map

	exit := m.At(m.Width/2, m.Height/2)
	require.NotNil(t, exit)
	assert.True(t, exit.Exit)
	assert.False(t, exit.Blocked)

	floors := m.FindTiles(func(t Tile) bool { return t.Name == "dungeon floor" })
	assert.NotEmpty(t, floors)

	for _, monster := range out.Monsters {
		assert.Equal(t, "Skeleton", monster.Name)
		assert.Equal(t, "dungeon floor", m.NameAt(monster.X, monster.Y))
	}
}

func TestEnterPlaceCaches(t *testing.T) {
	g := newTestGenerator(t, 3)

	village := &Place{X: 10, Y: 10, Name: "Saltwind Village", Kind: KindVillage}
	first, ok := g.EnterPlace(village)
	require.True(t, ok)
	second, ok := g.EnterPlace(village)
	require.True(t, ok)
	assert.Same(t, first, second)

	farm := &Place{X: 5, Y: 5, Name: "Lone Farmstead"}
	_, ok = g.EnterPlace(farm)
	assert.False(t, ok)

	_, ok = g.EnterPlace(nil)
	assert.False(t, ok)
}

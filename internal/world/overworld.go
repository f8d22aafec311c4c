package world

import (
	"fmt"

	"github.com/saltwindgames/saltwind/internal/entities"
)

// placeDefinition is one row of the landmark table. Counts and names are
// part of the world's identity.
type placeDefinition struct {
	name     string
	count    int
	terrain  []string
	landmark string
	gateway  rune
	kind     PlaceKind
}

var placeDefinitions = []placeDefinition{
	{name: "Lone Farmstead", count: 2, terrain: []string{"grass"}, landmark: "tilled_earth", gateway: GlyphFarmstead},
	{name: "Bandit Camp", count: 3, terrain: []string{"grass", "sand"}, landmark: "bandit_camp"},
	{name: "Saltwind Village", count: 1, terrain: []string{"grass"}, landmark: "farmland", gateway: GlyphVillage, kind: KindVillage},
	{name: "Ancient Crypt", count: 2, terrain: []string{"forest"}, landmark: "graveyard", gateway: GlyphDungeon, kind: KindDungeon},
	{name: "Mage Tower", count: 1, terrain: []string{"forest"}, landmark: "corrupt_forest", gateway: GlyphTower},
	{name: "Dragon's Lair", count: 1, terrain: []string{"mountain"}, landmark: "scorched_earth", gateway: GlyphLair},
}

// Overworld generates the outdoor map: noise-classified biomes, cosmetic
// features on the plains, and the landmark roster with its gateways. The
// player starts on Saltwind Village when it placed, otherwise on a random
// open tile.
func (g *Generator) Overworld(width, height int) *GeneratedMap {
	m := NewMap(width, height, Tile{})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, biomeTile(g.sample(x, y)))
		}
	}

	g.scatterFeatures(m)

	out := &GeneratedMap{Map: m}
	g.placeLandmarks(m, out)

	out.PlayerStart = g.findPlayerStart(m, out.Places)
	return out
}

// scatterFeatures drops cosmetic ponds, rocks, and wildflowers on grass.
func (g *Generator) scatterFeatures(m *Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.NameAt(x, y) != "grass" || g.rng.Float64() >= featureChance {
				continue
			}
			switch g.rng.Intn(3) {
			case 0:
				g.carvePond(m, x, y)
			case 1:
				g.carveRocks(m, x, y)
			case 2:
				g.carveFlowers(m, x, y)
			}
		}
	}
}

func (g *Generator) carvePond(m *Map, x, y int) {
	radius := g.intBetween(1, 2)
	for px := -radius; px <= radius; px++ {
		for py := -radius; py <= radius; py++ {
			if px*px+py*py < radius*radius {
				m.Set(x+px, y+py, NewTile(true, GlyphWater, ColorShallowWater, "a small pond"))
			}
		}
	}
}

func (g *Generator) carveRocks(m *Map, x, y int) {
	for i := 0; i < g.intBetween(1, 4); i++ {
		rx, ry := x+g.intBetween(-2, 2), y+g.intBetween(-2, 2)
		if m.NameAt(rx, ry) == "grass" {
			m.Set(rx, ry, NewGlyphTile(true, GlyphRock, ColorGrass, ColorGrey, "a rock"))
		}
	}
}

func (g *Generator) carveFlowers(m *Map, x, y int) {
	for i := 0; i < g.intBetween(5, 15); i++ {
		fx, fy := x+g.intBetween(-3, 3), y+g.intBetween(-3, 3)
		if m.NameAt(fx, fy) == "grass" {
			m.Set(fx, fy, NewGlyphTile(false, GlyphFlower, ColorGrass, ColorFlower, "wildflowers"))
		}
	}
}

// placeLandmarks runs the placement loop for every row of the landmark
// table: up to placementAttempts random draws per instance, constrained to
// matching terrain away from the map edges. Running out of attempts is
// tolerated; the world just has fewer landmarks.
func (g *Generator) placeLandmarks(m *Map, out *GeneratedMap) {
	for _, def := range placeDefinitions {
		for n := 0; n < def.count; n++ {
			for attempt := 0; attempt < placementAttempts; attempt++ {
				x := g.intBetween(placementEdgeMargin, m.Width-placementEdgeMargin-1)
				y := g.intBetween(placementEdgeMargin, m.Height-placementEdgeMargin-1)
				if !terrainMatches(m.NameAt(x, y), def.terrain) {
					continue
				}

				g.carveLandmark(m, out, def, x, y)
				if def.gateway != 0 {
					g.registerGateway(m, out, def, x, y)
				}
				break
			}
		}
	}
}

func terrainMatches(name string, allowed []string) bool {
	for _, t := range allowed {
		if name == t {
			return true
		}
	}
	return false
}

func (g *Generator) carveLandmark(m *Map, out *GeneratedMap, def placeDefinition, x, y int) {
	switch def.landmark {
	case "tilled_earth":
		g.carveFarmstead(m, out, x, y)
	case "bandit_camp":
		g.carveBanditCamp(m, out, x, y)
	default:
		g.carveDisc(m, def.landmark, x, y)
	}
}

// carveFarmstead lays four square crop plots around the homestead and lets
// a crow or two loose over the fields.
func (g *Generator) carveFarmstead(m *Map, out *GeneratedMap, x, y int) {
	const fieldSize = 3
	plots := [][4]int{
		{x - fieldSize - 1, y - fieldSize - 1, x - 1, y - 1},
		{x + 2, y - fieldSize - 1, x + fieldSize + 2, y - 1},
		{x - fieldSize - 1, y + 2, x - 1, y + fieldSize + 2},
		{x + 2, y + 2, x + fieldSize + 2, y + fieldSize + 2},
	}
	for _, plot := range plots {
		for i := plot[0]; i < plot[2]; i++ {
			for j := plot[1]; j < plot[3]; j++ {
				m.Set(i, j, NewGlyphTile(false, GlyphTilled, ColorTilledEarth, ColorBrown, "tilled earth"))
			}
		}
	}
	for i := 0; i < g.intBetween(1, 2); i++ {
		if crow, ok := entities.NewMonster(g.idGen.Generate(), "Crow", x+g.intBetween(-4, 4), y+g.intBetween(-4, 4)); ok {
			out.Monsters = append(out.Monsters, crow)
		}
	}
}

// carveBanditCamp rings the camp with spike barriers, leaving a three-tile
// opening on one side, then drops a campfire, a loot chest, a few tents, and
// the bandits themselves.
func (g *Generator) carveBanditCamp(m *Map, out *GeneratedMap, x, y int) {
	radius := g.intBetween(3, 4)
	opening := []string{"n", "s", "e", "w"}[g.rng.Intn(4)]

	spike := NewGlyphTile(true, GlyphSpike, ColorGrass, ColorBlack, "a spike barrier")
	inOpening := func(i int) bool { return i >= -1 && i <= 1 }

	for i := -radius; i <= radius; i++ {
		if !(opening == "n" && inOpening(i)) {
			m.Set(x+i, y-radius, spike)
		}
		if !(opening == "s" && inOpening(i)) {
			m.Set(x+i, y+radius, spike)
		}
	}
	for i := -radius + 1; i < radius; i++ {
		if !(opening == "w" && inOpening(i)) {
			m.Set(x-radius, y+i, spike)
		}
		if !(opening == "e" && inOpening(i)) {
			m.Set(x+radius, y+i, spike)
		}
	}

	m.Set(x, y, NewGlyphTile(false, GlyphCampfire, ColorGrass, ColorRed, "a campfire"))
	m.Set(x, y-radius+1, NewGlyphTile(false, GlyphChest, ColorGrass, ColorGold, "a chest"))

	for i := 0; i < g.intBetween(2, 3); i++ {
		tx, ty := x+g.intBetween(-radius+1, radius-1), y+g.intBetween(-radius+1, radius-1)
		if m.NameAt(tx, ty) == "grass" {
			m.Set(tx, ty, NewGlyphTile(true, GlyphTent, ColorGrass, ColorBlack, "a crude tent"))
		}
	}
	for i := 0; i < g.intBetween(3, 5); i++ {
		bx, by := x+g.intBetween(-radius+1, radius-1), y+g.intBetween(-radius+1, radius-1)
		if bandit, ok := entities.NewMonster(g.idGen.Generate(), "Bandit", bx, by); ok {
			out.Monsters = append(out.Monsters, bandit)
		}
	}
}

// carveDisc stamps a circular footprint. Graveyards sprinkle gravestones
// over the disc; other disc landmarks leave the terrain as-is.
func (g *Generator) carveDisc(m *Map, landmark string, x, y int) {
	radius := g.intBetween(5, 8)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j >= radius*radius {
				continue
			}
			lx, ly := x+i, y+j
			if !m.InBounds(lx, ly) || m.Blocked(lx, ly) {
				continue
			}
			if landmark == "graveyard" && g.rng.Float64() < 0.1 {
				m.Set(lx, ly, NewGlyphTile(false, GlyphGravestone, ColorGrass, ColorGravestone, "gravestone"))
			}
		}
	}
}

// registerGateway overwrites the anchor tile with the place's gateway glyph
// and links them.
func (g *Generator) registerGateway(m *Map, out *GeneratedMap, def placeDefinition, x, y int) {
	glyphColor := ColorGateway
	if def.name == "Lone Farmstead" {
		glyphColor = ColorRed
	}

	place := &Place{X: x, Y: y, Name: def.name, Gateway: def.gateway, Kind: def.kind}
	out.Places = append(out.Places, place)

	bg := m.At(x, y).Color
	tile := NewGlyphTile(false, def.gateway, bg, glyphColor, fmt.Sprintf("entrance to %s", def.name))
	tile.GatewayTo = place
	m.Set(x, y, tile)
}

// findPlayerStart prefers the village gateway, falling back to random open
// tiles with a bounded number of draws and finally a linear scan.
func (g *Generator) findPlayerStart(m *Map, places []*Place) Point {
	for _, p := range places {
		if p.Name == "Saltwind Village" {
			return Point{p.X, p.Y}
		}
	}
	for attempt := 0; attempt < placementAttempts; attempt++ {
		x, y := g.rng.Intn(m.Width), g.rng.Intn(m.Height)
		if !m.Blocked(x, y) {
			return Point{x, y}
		}
	}
	open := m.FindTiles(func(t Tile) bool { return !t.Blocked })
	if len(open) > 0 {
		return open[0]
	}
	return Point{}
}

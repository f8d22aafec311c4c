package world

import (
	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/quests"
)

// namedBuilding is one of the village's fixed roster of buildings, placed
// relative to the town square.
type namedBuilding struct {
	name        string
	description string
	glyph       rune
	offsetX     int
	offsetY     int
	npc         string // NPC placed at the door, empty for none
}

var villageBuildings = []namedBuilding{
	{name: "The Salty Siren", description: "a cozy inn", glyph: 'S', offsetX: -8, offsetY: -5},
	{name: "Torvin's Smithy", description: "a busy smithy", glyph: '%', offsetX: 8, offsetY: -3, npc: "Torvin the Smith"},
	{name: "The Elder's Hut", description: "the elder's dwelling", glyph: 'H', offsetX: -3, offsetY: 8},
}

// Village generates Saltwind Village: a forest border, a 3x3 town square,
// the named buildings with doors and L-shaped paths to the square, a few
// filler buildings, and a single western exit. Elder Maeve waits on the
// square with her quest.
func (g *Generator) Village(width, height int) *GeneratedMap {
	m := NewMap(width, height, NewTile(false, GlyphBlank, ColorGrass, "grass"))
	out := &GeneratedMap{Map: m}

	forest := NewGlyphTile(true, GlyphForest, ColorGrass, ColorForest, "forest")
	for x := 0; x < width; x++ {
		m.Set(x, 0, forest)
		m.Set(x, height-1, forest)
	}
	for y := 0; y < height; y++ {
		m.Set(0, y, forest)
		m.Set(width-1, y, forest)
	}

	squareX, squareY := width/2, height/2
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			m.Set(squareX+i, squareY+j, NewTile(false, GlyphBlank, ColorPath, "town square"))
		}
	}

	var doors []Point
	for _, b := range villageBuildings {
		bx, by := squareX+b.offsetX, squareY+b.offsetY
		if bx < 2 || bx > width-3 || by < 2 || by > height-3 {
			continue
		}
		m.Set(bx, by, NewGlyphTile(true, b.glyph, ColorBuilding, ColorBrown, b.description))

		doorX, doorY := bx, by+1
		m.Set(doorX, doorY, NewTile(false, GlyphBlank, ColorGrass, "grass"))
		doors = append(doors, Point{doorX, doorY})

		if b.npc != "" {
			out.NPCs = append(out.NPCs, entities.NewNPC(
				g.idGen.Generate(), b.npc, doorX, doorY, rune(b.npc[0]), []string{
					"Welcome to my smithy! I can craft and repair weapons and armor.",
				}))
		}
	}

	// Filler buildings well clear of the square.
	for n := 0; n < 3; n++ {
		for attempt := 0; attempt < 50; attempt++ {
			bx, by := g.intBetween(5, width-6), g.intBetween(5, height-6)
			if abs(bx-squareX) < 6 && abs(by-squareY) < 6 {
				continue
			}
			if m.NameAt(bx, by) != "grass" {
				continue
			}
			m.Set(bx, by, NewTile(true, GlyphBuilding, ColorBuilding, "a building"))
			doorX, doorY := bx, by+1
			m.Set(doorX, doorY, NewTile(false, GlyphBlank, ColorGrass, "grass"))
			doors = append(doors, Point{doorX, doorY})
			break
		}
	}

	exitX, exitY := 1, height/2
	exit := NewTile(false, GlyphExit, ColorGateway, "path to the wilderness")
	exit.Exit = true
	m.Set(exitX, exitY, exit)

	for _, door := range doors {
		carvePath(m, door.X, door.Y, squareX, squareY)
	}
	carvePath(m, squareX, squareY, exitX, exitY)

	maeve := entities.NewNPC(g.idGen.Generate(), "Elder Maeve", squareX, squareY, 'E', []string{
		"The Serpent Temple stirs... Please help us!",
	})
	maeve.Quest = quests.New(
		"The Serpent Temple",
		"Investigate the strange happenings at the temple.",
		[]string{"Find the temple", "Defeat the priestess"},
	)
	out.NPCs = append(out.NPCs, maeve)

	out.PlayerStart = Point{exitX + 1, exitY}
	return out
}

// carvePath lays an L-shaped path between two points, converting only grass
// so it routes around buildings and the square.
func carvePath(m *Map, x1, y1, x2, y2 int) {
	path := NewTile(false, GlyphBlank, ColorPath, "a path")
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if m.NameAt(x, y1) == "grass" {
			m.Set(x, y1, path)
		}
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if m.NameAt(x2, y) == "grass" {
			m.Set(x2, y, path)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package world

import "github.com/saltwindgames/saltwind/internal/entities"

// Random-walk carving limits.
const (
	dungeonMaxTunnels   = 50
	dungeonTunnelLength = 8
	dungeonMonsterTries = 10
)

// Dungeon generates a crypt interior: a random walk carves floor out of
// solid rock from the map center, the entry point becomes the exit back to
// the overworld, and skeletons haunt the carved floor.
func (g *Generator) Dungeon(width, height int) *GeneratedMap {
	m := NewMap(width, height, NewTile(true, GlyphBlank, ColorDungeonWall, "stone wall"))
	out := &GeneratedMap{Map: m}

	floor := NewTile(false, GlyphFloor, ColorDungeonFloor, "dungeon floor")
	x, y := width/2, height/2
	m.Set(x, y, floor)

	directions := []Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	for t := 0; t < dungeonMaxTunnels; t++ {
		length := g.intBetween(1, dungeonTunnelLength)
		dir := directions[g.rng.Intn(len(directions))]
		for step := 0; step < length; step++ {
			x, y = x+dir.X, y+dir.Y
			if x < 1 || x >= width-1 || y < 1 || y >= height-1 {
				break
			}
			m.Set(x, y, floor)
		}
	}

	exitX, exitY := width/2, height/2
	exit := NewTile(false, GlyphExit, ColorGateway, "path to the overworld")
	exit.Exit = true
	m.Set(exitX, exitY, exit)
	out.PlayerStart = Point{exitX + 1, exitY}

	for i := 0; i < dungeonMonsterTries; i++ {
		mx, my := g.intBetween(1, width-2), g.intBetween(1, height-2)
		if m.NameAt(mx, my) != "dungeon floor" {
			continue
		}
		if skeleton, ok := entities.NewMonster(g.idGen.Generate(), "Skeleton", mx, my); ok {
			out.Monsters = append(out.Monsters, skeleton)
		}
	}

	return out
}

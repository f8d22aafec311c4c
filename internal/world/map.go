package world

// Standard map dimensions.
const (
	OverworldSize = 200
	SubMapSize    = 50
)

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Map is a dense 2D grid of tiles. It satisfies entities.TerrainView so
// monster AI can path over it.
type Map struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewMap allocates a map filled with copies of the fill tile.
func NewMap(width, height int, fill Tile) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
	for i := range m.tiles {
		m.tiles[i] = fill
	}
	return m
}

// At returns a pointer to the tile at (x, y); nil when out of bounds.
func (m *Map) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.tiles[y*m.Width+x]
}

// Set overwrites the tile at (x, y). Out-of-bounds writes are dropped.
func (m *Map) Set(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.tiles[y*m.Width+x] = t
	}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Blocked reports whether the tile at (x, y) blocks movement. Out-of-bounds
// counts as blocked.
func (m *Map) Blocked(x, y int) bool {
	t := m.At(x, y)
	return t == nil || t.Blocked
}

// NameAt returns the terrain name at (x, y), empty when out of bounds.
func (m *Map) NameAt(x, y int) string {
	t := m.At(x, y)
	if t == nil {
		return ""
	}
	return t.Name
}

// FindTiles returns the coordinates of every tile matching the predicate.
func (m *Map) FindTiles(match func(t Tile) bool) []Point {
	var out []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if match(m.tiles[y*m.Width+x]) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Package world generates and holds the game maps: the Perlin-noise
// overworld with its landmarks and gateways, and the lazily generated
// village and dungeon sub-maps behind them.
package world

import "github.com/saltwindgames/saltwind/internal/entities"

// Display glyphs for generated terrain.
const (
	GlyphBlank      = ' '
	GlyphWater      = '~'
	GlyphMountain   = '^'
	GlyphForest     = 'T'
	GlyphFlower     = '*'
	GlyphRock       = 'o'
	GlyphGravestone = '+'
	GlyphTilled     = '='
	GlyphTent       = 'n'
	GlyphCampfire   = '&'
	GlyphSpike      = 'x'
	GlyphChest      = '$'
	GlyphFloor      = '.'
	GlyphExit       = '<'

	GlyphVillage   = 'V'
	GlyphFarmstead = 'F'
	GlyphTower     = 'I'
	GlyphDungeon   = '>'
	GlyphLair      = 'D'
	GlyphBuilding  = '#'
)

// Terrain palette.
var (
	ColorDeepWater    = entities.RGB{R: 0, G: 0, B: 139}
	ColorShallowWater = entities.RGB{R: 65, G: 105, B: 225}
	ColorSand         = entities.RGB{R: 238, G: 214, B: 175}
	ColorGrass        = entities.RGB{R: 34, G: 139, B: 34}
	ColorForest       = entities.RGB{R: 0, G: 100, B: 0}
	ColorMountain     = entities.RGB{R: 105, G: 105, B: 105}
	ColorGrey         = entities.RGB{R: 128, G: 128, B: 128}
	ColorPath         = entities.RGB{R: 160, G: 140, B: 100}
	ColorBuilding     = entities.RGB{R: 139, G: 115, B: 85}
	ColorTilledEarth  = entities.RGB{R: 101, G: 67, B: 33}
	ColorGold         = entities.RGB{R: 255, G: 215, B: 0}
	ColorGateway      = entities.RGB{R: 255, G: 0, B: 255}
	ColorGravestone   = entities.RGB{R: 192, G: 192, B: 192}
	ColorFlower       = entities.RGB{R: 255, G: 255, B: 0}
	ColorDungeonWall  = entities.RGB{R: 80, G: 80, B: 80}
	ColorDungeonFloor = entities.RGB{R: 40, G: 40, B: 40}
	ColorWhite        = entities.RGB{R: 255, G: 255, B: 255}
	ColorRed          = entities.RGB{R: 255, G: 0, B: 0}
	ColorBrown        = entities.RGB{R: 139, G: 69, B: 19}
	ColorBlack        = entities.RGB{R: 0, G: 0, B: 0}
)

// Tile is one map cell. Water, mountains, walls, and landmark props block
// movement; everything else is passable. A tile may carry a gateway link to
// a Place or mark the exit back to the previous map.
type Tile struct {
	Blocked    bool
	Glyph      rune
	Color      entities.RGB
	GlyphColor entities.RGB
	Name       string
	Explored   bool

	// Interactive marks tiles the player can activate in place (chests).
	Interactive bool
	// GatewayTo links an overworld tile to the place it leads into.
	GatewayTo *Place
	// Exit marks the way back to the previous map on the stack.
	Exit bool
}

// NewTile builds a plain tile whose glyph renders in the tile color.
func NewTile(blocked bool, glyph rune, color entities.RGB, name string) Tile {
	return Tile{
		Blocked:     blocked,
		Glyph:       glyph,
		Color:       color,
		GlyphColor:  color,
		Name:        name,
		Interactive: name == "a chest",
	}
}

// NewGlyphTile builds a tile whose glyph renders in its own color over the
// tile color.
func NewGlyphTile(blocked bool, glyph rune, color, glyphColor entities.RGB, name string) Tile {
	t := NewTile(blocked, glyph, color, name)
	t.GlyphColor = glyphColor
	return t
}

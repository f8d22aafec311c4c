// Package entities defines the game objects that live on a map: combatants,
// the player, monsters, and NPCs, together with derived-stat formulas and
// monster AI.
package entities

// RGB is a display color. Pure data for the renderer; the core never
// interprets it.
type RGB struct {
	R, G, B uint8
}

// Colors shared by entity templates.
var (
	ColorWhite    = RGB{R: 255, G: 255, B: 255}
	ColorBlack    = RGB{R: 0, G: 0, B: 0}
	ColorPlayer   = RGB{R: 255, G: 255, B: 0}
	ColorGoblin   = RGB{R: 100, G: 255, B: 100}
	ColorSkeleton = RGB{R: 230, G: 230, B: 230}
	ColorOrc      = RGB{R: 255, G: 100, B: 100}
	ColorRed      = RGB{R: 255, G: 0, B: 0}
	ColorBrown    = RGB{R: 139, G: 69, B: 19}
	ColorNPC      = RGB{R: 0, G: 255, B: 255}
)

// Ability names the six ability scores.
type Ability string

// The six abilities.
const (
	STR Ability = "STR"
	DEX Ability = "DEX"
	CON Ability = "CON"
	INT Ability = "INT"
	WIS Ability = "WIS"
	CHA Ability = "CHA"
)

// AllAbilities lists the abilities in conventional order.
func AllAbilities() []Ability {
	return []Ability{STR, DEX, CON, INT, WIS, CHA}
}

// Abilities holds raw ability scores.
type Abilities map[Ability]int

// DefaultAbilities returns a flat-10 score block.
func DefaultAbilities() Abilities {
	return Abilities{STR: 10, DEX: 10, CON: 10, INT: 10, WIS: 10, CHA: 10}
}

// SaveType names the three saving throw categories.
type SaveType string

// Saving throw types.
const (
	SaveFortitude SaveType = "fortitude"
	SaveReflex    SaveType = "reflex"
	SaveWill      SaveType = "will"
)

// Status holds transient condition flags on a combatant. Cleared or expired
// by spell durations and rest; the engine never persists them.
type Status struct {
	Sleeping      bool
	Invisible     bool
	Restrained    bool
	Flying        bool
	Hasted        bool
	TempACBonus   int
	PendingPoison int // poison damage applied on the victim's next tick
}

// Entity kinds, reported through GetType.
const (
	KindPlayer  = "player"
	KindMonster = "monster"
	KindNPC     = "npc"
)

// GameObject is the base for anything that appears on the map.
type GameObject struct {
	ID    string
	Kind  string
	X, Y  int
	Glyph rune
	Color RGB
	Name  string
}

// GetID implements core.Entity.
func (g *GameObject) GetID() string {
	return g.ID
}

// GetType implements core.Entity.
func (g *GameObject) GetType() string {
	return g.Kind
}

// TerrainView is the slice of map behavior the AI needs: bounds and
// blocking. world.Map implements it.
type TerrainView interface {
	InBounds(x, y int) bool
	Blocked(x, y int) bool
}

// OccupancyFunc reports whether a living combatant other than the mover
// occupies the cell. The engine supplies it so no two combatants share a
// cell.
type OccupancyFunc func(x, y int) bool

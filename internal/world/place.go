package world

import "github.com/saltwindgames/saltwind/internal/entities"

// PlaceKind selects which sub-map generator a gateway runs.
type PlaceKind string

// Place kinds. KindNone gateways are landmarks you can stand on but not yet
// enter (farmsteads, the tower, the lair).
const (
	KindNone    PlaceKind = ""
	KindVillage PlaceKind = "village"
	KindDungeon PlaceKind = "dungeon"
)

// Place is a significant location on the overworld. Its sub-map is generated
// lazily on first entry and cached for the rest of the session, so monsters,
// NPCs, and loot inside persist across visits.
type Place struct {
	X, Y    int
	Name    string
	Gateway rune
	Kind    PlaceKind

	cached *GeneratedMap
}

// Enterable reports whether stepping on the gateway leads anywhere.
func (p *Place) Enterable() bool {
	return p.Kind != KindNone
}

// GeneratedMap bundles a generated map with its starting position and the
// creatures that live on it.
type GeneratedMap struct {
	Map         *Map
	PlayerStart Point
	Monsters    []*entities.Monster
	NPCs        []*entities.NPC
	Places      []*Place
}

package entities

import (
	"fmt"
	"math"

	"github.com/saltwindgames/saltwind/internal/dice"
)

// Behavior selects a monster's turn logic.
type Behavior string

// Behaviors.
const (
	// BehaviorHunter idles until the player comes within sightRange, then
	// closes and attacks.
	BehaviorHunter Behavior = "hunter"
	// BehaviorWander drifts one random step per turn and never attacks.
	BehaviorWander Behavior = "wander"
)

// Special names a template's special ability.
type Special string

// Special abilities.
const (
	SpecialNone  Special = ""
	SpecialHorde Special = "horde" // +1 attack, pack instinct
	SpecialBrute Special = "brute" // +2 damage on every hit
	SpecialVenom Special = "venom" // Fortitude save on hit or poisoned
)

const (
	sightRange  = 10.0
	meleeRange  = 1.5
	venomSaveDC = 11
)

// Template is a static monster stat row. NewMonster copies it; live
// monsters never reference the table again.
type Template struct {
	Name        string
	Glyph       rune
	Color       RGB
	HP          int
	AC          int
	AttackBonus int
	DamageDice  int
	DamageSides int
	XPValue     int
	Behavior    Behavior
	Special     Special
}

var templates = map[string]Template{
	"Goblin":    {Name: "Goblin", Glyph: 'g', Color: ColorGoblin, HP: 7, AC: 13, AttackBonus: 1, DamageDice: 1, DamageSides: 6, XPValue: 25, Behavior: BehaviorHunter, Special: SpecialHorde},
	"Bandit":    {Name: "Bandit", Glyph: 'b', Color: ColorRed, HP: 8, AC: 12, AttackBonus: 1, DamageDice: 1, DamageSides: 6, XPValue: 20, Behavior: BehaviorHunter},
	"Skeleton":  {Name: "Skeleton", Glyph: 's', Color: ColorSkeleton, HP: 13, AC: 12, AttackBonus: 2, DamageDice: 1, DamageSides: 6, XPValue: 50, Behavior: BehaviorHunter},
	"Orc":       {Name: "Orc", Glyph: 'o', Color: ColorOrc, HP: 15, AC: 13, AttackBonus: 2, DamageDice: 1, DamageSides: 8, XPValue: 75, Behavior: BehaviorHunter, Special: SpecialBrute},
	"Giant Rat": {Name: "Giant Rat", Glyph: 'r', Color: ColorBrown, HP: 5, AC: 11, AttackBonus: 1, DamageDice: 1, DamageSides: 4, XPValue: 10, Behavior: BehaviorHunter, Special: SpecialVenom},
	"Crow":      {Name: "Crow", Glyph: 'c', Color: ColorBlack, HP: 1, AC: 10, AttackBonus: 0, DamageDice: 1, DamageSides: 1, XPValue: 0, Behavior: BehaviorWander},
}

// TemplateByName looks up a monster stat row.
func TemplateByName(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// TemplateNames lists the known monster templates.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

// Monster is a live hostile (or harmless) creature on a map.
type Monster struct {
	Combatant

	Template    string
	DamageDice  int
	DamageSides int
	XPValue     int
	Behavior    Behavior
	Special     Special
}

// NewMonster instantiates a template at a position. Unknown templates yield
// nil and false.
func NewMonster(id, template string, x, y int) (*Monster, bool) {
	t, ok := templates[template]
	if !ok {
		return nil, false
	}
	return &Monster{
		Combatant: Combatant{
			GameObject: GameObject{
				ID:    id,
				Kind:  KindMonster,
				X:     x,
				Y:     y,
				Glyph: t.Glyph,
				Color: t.Color,
				Name:  t.Name,
			},
			HP:              t.HP,
			MaxHP:           t.HP,
			BaseAC:          t.AC,
			BaseAttackBonus: t.AttackBonus,
			Level:           1,
			Abilities:       DefaultAbilities(),
		},
		Template:    t.Name,
		DamageDice:  t.DamageDice,
		DamageSides: t.DamageSides,
		XPValue:     t.XPValue,
		Behavior:    t.Behavior,
		Special:     t.Special,
	}, true
}

// Attack strikes the player in melee, applying the template's special
// ability on a hit.
func (m *Monster) Attack(roller dice.Roller, player *Player) AttackResult {
	bonus := m.AttackBonus()
	if m.Special == SpecialHorde {
		bonus++
	}

	result := resolveAttack(roller, m.Name, bonus, player, func() int {
		damage := roller.Roll(m.DamageDice, m.DamageSides)
		if m.Special == SpecialBrute {
			damage += 2
		}
		return damage
	})

	if result.Hit && m.Special == SpecialVenom {
		saved, _ := player.MakeSavingThrow(roller, SaveFortitude, venomSaveDC)
		if !saved {
			player.Status.PendingPoison = roller.Roll(1, 6)
			result.Message += fmt.Sprintf(" Venom courses through %s's veins!", player.Name)
		}
	}
	return result
}

// TakeTurn runs one turn of AI. A non-nil result means the monster attacked;
// nil means it idled or moved. The occupied callback keeps two creatures
// from sharing a cell.
func (m *Monster) TakeTurn(roller dice.Roller, player *Player, terrain TerrainView, occupied OccupancyFunc) *AttackResult {
	if !m.Alive() || m.Status.Sleeping {
		return nil
	}

	if m.Behavior == BehaviorWander {
		m.wander(roller, terrain, occupied)
		return nil
	}

	// Invisible prey can't be hunted.
	if player.Status.Invisible {
		return nil
	}

	dx := float64(player.X - m.X)
	dy := float64(player.Y - m.Y)
	dist := math.Hypot(dx, dy)

	switch {
	case dist > sightRange:
		return nil
	case dist < meleeRange:
		result := m.Attack(roller, player)
		return &result
	case m.Status.Restrained:
		// Webbed: close enough to see, too stuck to close in.
		return nil
	default:
		stepX := int(math.Round(dx / dist))
		stepY := int(math.Round(dy / dist))
		m.tryStep(m.X+stepX, m.Y+stepY, terrain, occupied)
		return nil
	}
}

// wanderSteps are the moves a wandering monster picks from: the four
// cardinal directions or staying put. No diagonal drift.
var wanderSteps = [5][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {0, 0}}

func (m *Monster) wander(roller dice.Roller, terrain TerrainView, occupied OccupancyFunc) {
	step := wanderSteps[roller.Roll(1, 5)-1]
	if step[0] == 0 && step[1] == 0 {
		return
	}
	m.tryStep(m.X+step[0], m.Y+step[1], terrain, occupied)
}

func (m *Monster) tryStep(x, y int, terrain TerrainView, occupied OccupancyFunc) {
	if !terrain.InBounds(x, y) || terrain.Blocked(x, y) || occupied(x, y) {
		return
	}
	m.X, m.Y = x, y
}

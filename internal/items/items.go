package items

// Type classifies what an item is for.
type Type string

// Item types.
const (
	TypeWeapon     Type = "weapon"
	TypeArmor      Type = "armor"
	TypeConsumable Type = "consumable"
	TypeTreasure   Type = "treasure"
	TypeMisc       Type = "misc"
)

// Slot is a fixed equipment slot on the player.
type Slot string

// Equipment slots.
const (
	SlotNone   Slot = ""
	SlotWeapon Slot = "Weapon"
	SlotArmor  Slot = "Armor"
	SlotShield Slot = "Shield"
	SlotRing   Slot = "Ring"
)

// Slots lists the equipment slots in display order.
func Slots() []Slot {
	return []Slot{SlotWeapon, SlotArmor, SlotShield, SlotRing}
}

// Healing describes a consumable's heal roll: Dice d Sides + Bonus.
type Healing struct {
	Dice  int
	Sides int
	Bonus int
}

// Item is a value-like game item. Category data (damage dice, AC bonus) is
// copied in at construction and never re-looked-up; items are immutable once
// created.
type Item struct {
	Name        string
	Description string
	Type        Type
	Category    string
	Slot        Slot
	Bonuses     map[string]int
	Healing     *Healing
	DamageDice  int
	DamageSides int
	Value       int
}

// Bonus returns a named bonus (e.g. "ac", "attack", "damage"), zero when
// absent.
func (it Item) Bonus(name string) int {
	return it.Bonuses[name]
}

// Equippable reports whether the item occupies an equipment slot.
func (it Item) Equippable() bool {
	return it.Slot != SlotNone
}

// NewWeapon builds a weapon from its category row. Unknown categories yield
// a zero Item and false.
func NewWeapon(category string) (Item, bool) {
	c, ok := WeaponCategoryByName(category)
	if !ok {
		return Item{}, false
	}
	return Item{
		Name:        c.Name,
		Type:        TypeWeapon,
		Category:    c.Name,
		Slot:        SlotWeapon,
		DamageDice:  c.DamageDice,
		DamageSides: c.DamageSides,
		Value:       c.Cost,
	}, true
}

// NewMagicWeapon builds a weapon whose attack and damage bonuses are raised
// by the magic bonus.
func NewMagicWeapon(name, category string, bonus int) (Item, bool) {
	it, ok := NewWeapon(category)
	if !ok {
		return Item{}, false
	}
	it.Name = name
	it.Bonuses = map[string]int{"attack": bonus, "damage": bonus}
	it.Value = it.Value * (bonus + 1) * 10
	return it, true
}

// NewArmor builds armor from its category row.
func NewArmor(category string) (Item, bool) {
	c, ok := ArmorCategoryByName(category)
	if !ok {
		return Item{}, false
	}
	slot := SlotArmor
	if c.Class == ArmorShield {
		slot = SlotShield
	}
	return Item{
		Name:     c.Name,
		Type:     TypeArmor,
		Category: c.Name,
		Slot:     slot,
		Bonuses:  map[string]int{"ac": c.ACBonus},
		Value:    c.Cost,
	}, true
}

// NewConsumable builds a healing consumable.
func NewConsumable(name, description string, healing Healing) Item {
	return Item{
		Name:        name,
		Description: description,
		Type:        TypeConsumable,
		Healing:     &healing,
	}
}

// NewMisc builds a plain inventory item.
func NewMisc(name, description string) Item {
	return Item{
		Name:        name,
		Description: description,
		Type:        TypeMisc,
	}
}

// Standard starting gear.

// HealthPotion heals 1d8.
func HealthPotion() Item {
	return NewConsumable("Health Potion", "A vial of glowing red liquid. Heals 1d8 HP.", Healing{Dice: 1, Sides: 8})
}

// Rope is flavor gear.
func Rope() Item {
	return NewMisc("Rope", "A 50-foot coil of sturdy rope.")
}

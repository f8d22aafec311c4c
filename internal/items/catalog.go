// Package items provides the static weapon/armor catalog, item types, and
// archetype proficiency rules.
package items

import "github.com/saltwindgames/saltwind/internal/rules"

// WeaponClass groups weapon categories for proficiency checks.
type WeaponClass string

// Weapon classes.
const (
	WeaponSimple  WeaponClass = "simple"
	WeaponMartial WeaponClass = "martial"
	WeaponRanged  WeaponClass = "ranged"
)

// ArmorClass groups armor categories for proficiency checks.
type ArmorClass string

// Armor classes.
const (
	ArmorLight  ArmorClass = "light"
	ArmorMedium ArmorClass = "medium"
	ArmorHeavy  ArmorClass = "heavy"
	ArmorShield ArmorClass = "shield"
)

// WeaponCategory is a row of the static weapon table. Items reference a
// category by name and inherit its data at construction time.
type WeaponCategory struct {
	Name        string
	Class       WeaponClass
	DamageDice  int
	DamageSides int
	Cost        int
	Properties  []string
}

// ArmorCategory is a row of the static armor table.
type ArmorCategory struct {
	Name    string
	Class   ArmorClass
	ACBonus int
	Cost    int
}

var weaponCategories = map[string]WeaponCategory{
	"Dagger":         {Name: "Dagger", Class: WeaponSimple, DamageDice: 1, DamageSides: 4, Cost: 2, Properties: []string{"light", "thrown"}},
	"Staff":          {Name: "Staff", Class: WeaponSimple, DamageDice: 1, DamageSides: 6, Cost: 1, Properties: []string{"two-handed"}},
	"Short Sword":    {Name: "Short Sword", Class: WeaponSimple, DamageDice: 1, DamageSides: 6, Cost: 10},
	"Long Sword":     {Name: "Long Sword", Class: WeaponMartial, DamageDice: 1, DamageSides: 8, Cost: 15},
	"Battle Axe":     {Name: "Battle Axe", Class: WeaponMartial, DamageDice: 1, DamageSides: 8, Cost: 10, Properties: []string{"versatile"}},
	"Short Bow":      {Name: "Short Bow", Class: WeaponRanged, DamageDice: 1, DamageSides: 6, Cost: 25, Properties: []string{"two-handed"}},
	"Light Crossbow": {Name: "Light Crossbow", Class: WeaponRanged, DamageDice: 1, DamageSides: 8, Cost: 25, Properties: []string{"loading"}},
}

var armorCategories = map[string]ArmorCategory{
	"Leather Armor": {Name: "Leather Armor", Class: ArmorLight, ACBonus: 2, Cost: 10},
	"Chain Shirt":   {Name: "Chain Shirt", Class: ArmorMedium, ACBonus: 3, Cost: 50},
	"Chain Mail":    {Name: "Chain Mail", Class: ArmorHeavy, ACBonus: 6, Cost: 75},
	"Wooden Shield": {Name: "Wooden Shield", Class: ArmorShield, ACBonus: 1, Cost: 10},
}

// WeaponCategoryByName looks up a weapon table row.
func WeaponCategoryByName(name string) (WeaponCategory, bool) {
	c, ok := weaponCategories[name]
	return c, ok
}

// ArmorCategoryByName looks up an armor table row.
func ArmorCategoryByName(name string) (ArmorCategory, bool) {
	c, ok := armorCategories[name]
	return c, ok
}

// weaponProficiencies maps archetype to the weapon classes it may use.
// Warriors use everything; Mages only simple weapons; Experts simple and
// ranged weapons.
var weaponProficiencies = map[rules.Archetype][]WeaponClass{
	rules.ArchetypeWarrior: {WeaponSimple, WeaponMartial, WeaponRanged},
	rules.ArchetypeMage:    {WeaponSimple},
	rules.ArchetypeExpert:  {WeaponSimple, WeaponRanged},
}

// armorProficiencies maps archetype to the armor classes it may wear.
// Mages wear no armor at all.
var armorProficiencies = map[rules.Archetype][]ArmorClass{
	rules.ArchetypeWarrior: {ArmorLight, ArmorMedium, ArmorHeavy, ArmorShield},
	rules.ArchetypeMage:    {},
	rules.ArchetypeExpert:  {ArmorLight, ArmorMedium, ArmorShield},
}

// WeaponsByProficiency returns the weapon categories usable by an archetype.
func WeaponsByProficiency(a rules.Archetype) []WeaponCategory {
	allowed := weaponProficiencies[a]
	var out []WeaponCategory
	for _, c := range weaponCategories {
		for _, class := range allowed {
			if c.Class == class {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// ArmorByProficiency returns the armor categories wearable by an archetype.
func ArmorByProficiency(a rules.Archetype) []ArmorCategory {
	allowed := armorProficiencies[a]
	var out []ArmorCategory
	for _, c := range armorCategories {
		for _, class := range allowed {
			if c.Class == class {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// CanUseWeapon reports whether the archetype is proficient with the weapon
// category.
func CanUseWeapon(a rules.Archetype, category string) bool {
	c, ok := weaponCategories[category]
	if !ok {
		return false
	}
	for _, class := range weaponProficiencies[a] {
		if c.Class == class {
			return true
		}
	}
	return false
}

// CanWearArmor reports whether the archetype is proficient with the armor
// category.
func CanWearArmor(a rules.Archetype, category string) bool {
	c, ok := armorCategories[category]
	if !ok {
		return false
	}
	for _, class := range armorProficiencies[a] {
		if c.Class == class {
			return true
		}
	}
	return false
}

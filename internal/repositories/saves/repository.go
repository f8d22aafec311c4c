// Package saves defines the interface for character save-slot persistence.
// A save is a flat snapshot of the player's progression; generated maps are
// never persisted, the world regenerates from its seed.
package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=savesmock github.com/saltwindgames/saltwind/internal/repositories/saves Repository

import (
	"context"
	"sort"

	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/rules"
)

// Snapshot is the flat player record stored per save slot. SavedAt is
// stamped by the repository on Save.
type Snapshot struct {
	Name           string
	Archetype      rules.Archetype
	Level          int
	XP             int
	HP             int
	MaxHP          int
	Gold           int
	X              int
	Y              int
	Seed           int64
	SavedAt        int64
	Abilities      entities.Abilities
	KnownLocations []string
}

// Repository persists player snapshots keyed by save slot.
type Repository interface {
	// Save creates or replaces the snapshot in a slot.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load retrieves the snapshot in a slot.
	// Returns errors.InvalidArgument for an empty slot name
	// Returns errors.NotFound if the slot is empty
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List returns the occupied slot names in sorted order.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete clears a slot.
	// Returns errors.InvalidArgument for an empty slot name
	// Returns errors.NotFound if the slot is already empty
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a snapshot.
type SaveInput struct {
	Slot     string
	Snapshot *Snapshot
}

// SaveOutput defines the output for saving a snapshot.
type SaveOutput struct{}

// LoadInput defines the input for loading a snapshot.
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading a snapshot.
type LoadOutput struct {
	Snapshot *Snapshot
}

// ListInput defines the input for listing occupied slots.
type ListInput struct{}

// ListOutput defines the output for listing occupied slots.
type ListOutput struct {
	Slots []string
}

// DeleteInput defines the input for clearing a slot.
type DeleteInput struct {
	Slot string
}

// DeleteOutput defines the output for clearing a slot.
type DeleteOutput struct{}

// FromPlayer captures a player's progression into a snapshot. The world
// seed travels with the save so the overworld regenerates identically.
func FromPlayer(p *entities.Player, seed int64) *Snapshot {
	abilities := make(entities.Abilities, len(p.Abilities))
	for k, v := range p.Abilities {
		abilities[k] = v
	}

	locations := make([]string, 0, len(p.KnownLocations))
	for name := range p.KnownLocations {
		locations = append(locations, name)
	}
	sort.Strings(locations)

	return &Snapshot{
		Name:           p.Name,
		Archetype:      p.Archetype,
		Level:          p.Level,
		XP:             p.XP,
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		Gold:           p.Gold,
		X:              p.X,
		Y:              p.Y,
		Seed:           seed,
		Abilities:      abilities,
		KnownLocations: locations,
	}
}

// ToPlayer rebuilds a player from the snapshot. Inventory and equipment
// come back as the archetype's starting kit; only progression is restored.
func (s *Snapshot) ToPlayer(id string) *entities.Player {
	p := entities.NewPlayer(id, s.Name, s.Archetype, s.Abilities)
	p.Level = s.Level
	p.XP = s.XP
	p.MaxHP = s.MaxHP
	p.HP = s.HP
	p.Gold = s.Gold
	p.X, p.Y = s.X, s.Y
	for _, name := range s.KnownLocations {
		p.KnownLocations[name] = true
	}
	return p
}

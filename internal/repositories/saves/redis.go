package saves

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/errors"
	"github.com/saltwindgames/saltwind/internal/pkg/clock"
	redisclient "github.com/saltwindgames/saltwind/internal/redis"
	"github.com/saltwindgames/saltwind/internal/rules"
)

const (
	slotKeyPrefix = "save:"
	slotIndexKey  = "save:slots"

	// Location names never contain this, so it is a safe join separator.
	locationSeparator = "|"

	errSnapshotNil  = "snapshot cannot be nil"
	errSlotEmpty    = "slot name cannot be empty"
	errNameEmpty    = "character name cannot be empty"
	errBadArchetype = "unknown archetype"
)

// Config wires the repository's dependencies.
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures required dependencies are present. Clock defaults to the
// real clock.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidArgument, "config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed save-slot repository. Each slot
// is one hash of flat fields plus membership in a slot index set.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if !input.Snapshot.Archetype.Valid() {
		return nil, errors.InvalidArgument(errBadArchetype)
	}

	fields := snapshotFields(input.Snapshot)
	fields["saved_at"] = r.clock.Now().Unix()
	key := slotKeyPrefix + input.Slot

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key) // replace, don't merge with stale fields
	pipe.HSet(ctx, key, fields)
	pipe.SAdd(ctx, slotIndexKey, input.Slot)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", input.Slot)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	fields, err := r.client.HGetAll(ctx, slotKeyPrefix+input.Slot).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("no save in slot %s", input.Slot)
	}

	snapshot, err := snapshotFromFields(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt save in slot %s", input.Slot)
	}

	return &LoadOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	slots, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list save slots")
	}
	sort.Strings(slots)
	return &ListOutput{Slots: slots}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	key := slotKeyPrefix + input.Slot
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check slot %s", input.Slot)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("no save in slot %s", input.Slot)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, slotIndexKey, input.Slot)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %s", input.Slot)
	}

	return &DeleteOutput{}, nil
}

// snapshotFields flattens a snapshot into hash fields. Ability scores get
// one field each; known locations are a separator-joined list.
func snapshotFields(s *Snapshot) map[string]interface{} {
	fields := map[string]interface{}{
		"name":            s.Name,
		"archetype":       string(s.Archetype),
		"level":           s.Level,
		"xp":              s.XP,
		"hp":              s.HP,
		"max_hp":          s.MaxHP,
		"gold":            s.Gold,
		"x":               s.X,
		"y":               s.Y,
		"seed":            s.Seed,
		"known_locations": strings.Join(s.KnownLocations, locationSeparator),
	}
	for _, ability := range entities.AllAbilities() {
		fields["ability_"+strings.ToLower(string(ability))] = s.Abilities[ability]
	}
	return fields
}

func snapshotFromFields(fields map[string]string) (*Snapshot, error) {
	s := &Snapshot{
		Name:      fields["name"],
		Archetype: rules.Archetype(fields["archetype"]),
		Abilities: make(entities.Abilities, 6),
	}
	if !s.Archetype.Valid() {
		return nil, errors.InvalidArgument(errBadArchetype)
	}

	for name, dst := range map[string]*int{
		"level":  &s.Level,
		"xp":     &s.XP,
		"hp":     &s.HP,
		"max_hp": &s.MaxHP,
		"gold":   &s.Gold,
		"x":      &s.X,
		"y":      &s.Y,
	} {
		v, err := strconv.Atoi(fields[name])
		if err != nil {
			return nil, errors.InvalidArgumentf("field %s: %v", name, err)
		}
		*dst = v
	}

	seed, err := strconv.ParseInt(fields["seed"], 10, 64)
	if err != nil {
		return nil, errors.InvalidArgumentf("field seed: %v", err)
	}
	s.Seed = seed

	savedAt, err := strconv.ParseInt(fields["saved_at"], 10, 64)
	if err != nil {
		return nil, errors.InvalidArgumentf("field saved_at: %v", err)
	}
	s.SavedAt = savedAt

	for _, ability := range entities.AllAbilities() {
		v, err := strconv.Atoi(fields["ability_"+strings.ToLower(string(ability))])
		if err != nil {
			return nil, errors.InvalidArgumentf("ability %s: %v", ability, err)
		}
		s.Abilities[ability] = v
	}

	if raw := fields["known_locations"]; raw != "" {
		s.KnownLocations = strings.Split(raw, locationSeparator)
	}
	return s, nil
}

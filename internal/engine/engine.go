// Package engine is the turn orchestrator: it owns the active map, the
// entity list, the map-transition stack, spell targeting, and the message
// log, and advances the world one player action at a time.
package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/errors"
	"github.com/saltwindgames/saltwind/internal/pkg/idgen"
	"github.com/saltwindgames/saltwind/internal/spells"
	"github.com/saltwindgames/saltwind/internal/world"
)

// State is the engine's run state.
type State string

// Engine states.
const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Event types published on the bus.
const (
	EventPlayerAttack    = "saltwind.player_attack"
	EventMonsterAttack   = "saltwind.monster_attack"
	EventMonsterDefeated = "saltwind.monster_defeated"
	EventSpellCast       = "saltwind.spell_cast"
	EventMapTransition   = "saltwind.map_transition"
	EventLevelUp         = "saltwind.level_up"
	EventPlayerDeath     = "saltwind.player_death"
)

// messageLogLimit bounds the retained message log.
const messageLogLimit = 100

// Config wires the engine's dependencies.
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	Generator   *world.Generator
	Player      *entities.Player
}

// Validate ensures all dependencies are present.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidArgument, "config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Player == nil {
		vb.RequiredField("Player")
	}
	return vb.Build()
}

// frame is one level of the map-transition stack: the full state of a map
// the player has stepped away from, including where to put them back.
type frame struct {
	gameMap   *world.Map
	monsters  []*entities.Monster
	npcs      []*entities.NPC
	places    []*world.Place
	playerPos world.Point
}

// Engine drives the game. It is single-threaded by design: every mutation
// happens in response to one discrete player action.
type Engine struct {
	roller dice.Roller
	idGen  idgen.Generator
	bus    events.EventBus
	gen    *world.Generator

	player *entities.Player
	book   *spells.Spellbook

	gameMap  *world.Map
	monsters []*entities.Monster
	npcs     []*entities.NPC
	places   []*world.Place
	stack    []frame

	targeting *targetingState
	messages  []string
	msgTotal  int
	state     State
}

// New builds an engine, generates the overworld, and drops the player at
// the starting position.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		bus:    cfg.EventBus,
		gen:    cfg.Generator,
		player: cfg.Player,
		book:   spells.NewSpellbook(cfg.Player.Archetype, cfg.Player.Level),
		state:  StatePlaying,
	}

	overworld := e.gen.Overworld(world.OverworldSize, world.OverworldSize)
	e.gameMap = overworld.Map
	e.monsters = overworld.Monsters
	e.npcs = overworld.NPCs
	e.places = overworld.Places
	e.player.X, e.player.Y = overworld.PlayerStart.X, overworld.PlayerStart.Y

	slog.Info("engine ready",
		"player", e.player.Name,
		"archetype", e.player.Archetype,
		"start_x", e.player.X,
		"start_y", e.player.Y,
		"places", len(e.places))

	e.AddMessage("Welcome to the Saltwind Coast. Your story begins.")
	return e, nil
}

// State returns the run state.
func (e *Engine) State() State {
	return e.state
}

// Player returns the player.
func (e *Engine) Player() *entities.Player {
	return e.player
}

// Spellbook returns the player's spellbook.
func (e *Engine) Spellbook() *spells.Spellbook {
	return e.book
}

// Map returns the active map.
func (e *Engine) Map() *world.Map {
	return e.gameMap
}

// Monsters returns the live entity list for the active map.
func (e *Engine) Monsters() []*entities.Monster {
	return e.monsters
}

// NPCs returns the NPCs on the active map.
func (e *Engine) NPCs() []*entities.NPC {
	return e.npcs
}

// Places returns the registered places on the active map.
func (e *Engine) Places() []*world.Place {
	return e.places
}

// MapStackDepth reports how many maps the player is nested inside.
func (e *Engine) MapStackDepth() int {
	return len(e.stack)
}

// AddMessage appends to the message log, trimming the oldest entries past
// the retention limit.
func (e *Engine) AddMessage(msg string) {
	if msg == "" {
		return
	}
	e.messages = append(e.messages, msg)
	e.msgTotal++
	if len(e.messages) > messageLogLimit {
		e.messages = e.messages[len(e.messages)-messageLogLimit:]
	}
}

// Messages returns the retained message log, oldest first.
func (e *Engine) Messages() []string {
	return e.messages
}

// MessageCount returns the total number of messages ever logged, including
// entries trimmed from the retained window. Lets a consumer print only what
// it has not seen yet.
func (e *Engine) MessageCount() int {
	return e.msgTotal
}

// publish emits a game event. Bus failures are logged, never fatal.
func (e *Engine) publish(eventType string, source, target core.Entity) {
	event := events.NewGameEvent(eventType, source, target)
	if err := e.bus.Publish(context.Background(), event); err != nil {
		slog.Warn("event publish failed", "type", eventType, "error", err)
	}
}

// monsterAt returns the living monster occupying (x, y).
func (e *Engine) monsterAt(x, y int) *entities.Monster {
	for _, m := range e.monsters {
		if m.Alive() && m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

// npcAt returns the NPC occupying (x, y).
func (e *Engine) npcAt(x, y int) *entities.NPC {
	for _, n := range e.npcs {
		if n.X == x && n.Y == y {
			return n
		}
	}
	return nil
}

// occupied reports whether a living combatant other than the given monster
// stands on (x, y).
func (e *Engine) occupied(exclude *entities.Monster) entities.OccupancyFunc {
	return func(x, y int) bool {
		if e.player.Alive() && e.player.X == x && e.player.Y == y {
			return true
		}
		if e.npcAt(x, y) != nil {
			return true
		}
		m := e.monsterAt(x, y)
		return m != nil && m != exclude
	}
}

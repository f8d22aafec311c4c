package engine

import (
	"fmt"

	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/items"
	"github.com/saltwindgames/saltwind/internal/world"
)

// MoveOrAttack is the player's basic turn: step one tile, or bump-attack the
// monster standing there. Blocked moves don't consume a turn; everything
// else ends with a full monster pass.
func (e *Engine) MoveOrAttack(dx, dy int) {
	if e.state != StatePlaying {
		return
	}

	nx, ny := e.player.X+dx, e.player.Y+dy

	if m := e.monsterAt(nx, ny); m != nil {
		e.playerAttack(m)
		e.monsterTurns()
		return
	}

	if npc := e.npcAt(nx, ny); npc != nil {
		e.talkTo(npc)
		e.monsterTurns()
		return
	}

	tile := e.gameMap.At(nx, ny)
	if tile == nil || tile.Blocked {
		if tile != nil {
			e.AddMessage(fmt.Sprintf("The %s blocks your way.", tile.Name))
		}
		return
	}

	e.player.X, e.player.Y = nx, ny

	switch {
	case tile.GatewayTo != nil:
		e.arriveAtGateway(tile.GatewayTo)
	case tile.Exit:
		e.exitMap()
	}

	e.monsterTurns()
}

// playerAttack resolves the player's swing and any kill that follows.
// Attacking always ends invisibility.
func (e *Engine) playerAttack(m *entities.Monster) {
	result := e.player.Attack(e.roller, m)
	e.AddMessage(result.Message)
	e.publish(EventPlayerAttack, e.player, m)

	if e.player.Status.Invisible {
		e.player.Status.Invisible = false
		e.AddMessage("Your attack breaks your invisibility.")
	}

	if result.Hit && !m.Alive() {
		e.killMonster(m)
	}
}

// killMonster reports the kill, awards XP, and runs leveling. The corpse is
// pruned from the entity list at the start of the next monster pass.
func (e *Engine) killMonster(m *entities.Monster) {
	e.AddMessage(fmt.Sprintf("%s dies!", m.Name))
	e.publish(EventMonsterDefeated, e.player, m)
	e.player.GainMonsterXP(m.XPValue)
	e.applyLevelUps()
}

// applyLevelUps consumes any earned levels and keeps the spellbook's slot
// table in step with the new level.
func (e *Engine) applyLevelUps() {
	msgs := e.player.CheckForLevelUp(e.roller)
	if len(msgs) == 0 {
		return
	}
	for _, msg := range msgs {
		e.AddMessage(msg)
	}
	e.book.AdvanceLevel(e.player.Level)
	e.publish(EventLevelUp, e.player, nil)
}

func (e *Engine) talkTo(npc *entities.NPC) {
	e.AddMessage(fmt.Sprintf("%s: \"%s\"", npc.Name, npc.Talk()))
	if q := npc.TakeQuest(); q != nil {
		e.AddMessage(e.player.QuestLog.Add(q))
	}
}

// monsterTurns runs the full monster pass: prune the dead, tick poison on
// the player, then let every living monster act once in stable list order.
// The pass halts the moment the player dies.
func (e *Engine) monsterTurns() {
	e.pruneDead()

	if poison := e.player.Status.PendingPoison; poison > 0 {
		e.player.Status.PendingPoison = 0
		e.player.TakeDamage(poison)
		e.AddMessage(fmt.Sprintf("Poison burns through you for %d damage!", poison))
		if !e.player.Alive() {
			e.gameOver()
			return
		}
	}

	for _, m := range e.monsters {
		if !m.Alive() {
			continue
		}
		result := m.TakeTurn(e.roller, e.player, e.gameMap, e.occupied(m))
		if result == nil {
			continue
		}
		e.AddMessage(result.Message)
		e.publish(EventMonsterAttack, m, e.player)
		if !e.player.Alive() {
			e.gameOver()
			return
		}
	}
}

// pruneDead removes dead monsters from the entity list.
func (e *Engine) pruneDead() {
	alive := e.monsters[:0]
	for _, m := range e.monsters {
		if m.Alive() {
			alive = append(alive, m)
		}
	}
	e.monsters = alive
}

func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.AddMessage("You have died. Your story ends on the Saltwind Coast.")
	e.publish(EventPlayerDeath, e.player, nil)
}

// Interact activates whatever is next to the player: an NPC to talk to, or
// a chest to loot. Looting empties the chest permanently and consumes a
// turn.
func (e *Engine) Interact() {
	if e.state != StatePlaying {
		return
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := e.player.X+dx, e.player.Y+dy
			if npc := e.npcAt(x, y); npc != nil && (dx != 0 || dy != 0) {
				e.talkTo(npc)
				e.monsterTurns()
				return
			}

			tile := e.gameMap.At(x, y)
			if tile != nil && tile.Interactive {
				e.lootChest(tile)
				e.monsterTurns()
				return
			}
		}
	}
	e.AddMessage("There is nothing here to interact with.")
}

// lootChest converts the chest into gold, XP, and a treasure bauble.
func (e *Engine) lootChest(tile *world.Tile) {
	treasure, value := items.RandomTreasure(e.roller, 25, 100)
	e.player.Inventory = append(e.player.Inventory, treasure)
	e.player.GainTreasureXP(value)
	e.AddMessage(fmt.Sprintf("You open the chest and find %s worth %d gold!", treasure.Name, value))

	tile.Interactive = false
	tile.Name = "an empty chest"
	tile.Glyph = world.GlyphBlank
	tile.GlyphColor = tile.Color
	e.applyLevelUps()
}

// PrepareSpell moves a known spell into the prepared loadout. A menu
// action: it never consumes a turn.
func (e *Engine) PrepareSpell(name string) {
	msg, _ := e.book.Prepare(name)
	e.AddMessage(msg)
}

// EquipItem equips an inventory item by index and consumes a turn when it
// succeeds. Rejections cost nothing.
func (e *Engine) EquipItem(index int) {
	if e.state != StatePlaying {
		return
	}
	msg, ok := e.player.Equip(index)
	e.AddMessage(msg)
	if ok {
		e.monsterTurns()
	}
}

// UseItem consumes an inventory item by index.
func (e *Engine) UseItem(index int) {
	if e.state != StatePlaying {
		return
	}
	before := len(e.player.Inventory)
	e.AddMessage(e.player.UseItem(e.roller, index))
	if len(e.player.Inventory) < before {
		e.monsterTurns()
	}
}

// DropItem discards an inventory item by index.
func (e *Engine) DropItem(index int) {
	if e.state != StatePlaying {
		return
	}
	if it, ok := e.player.DropItem(index); ok {
		e.AddMessage(fmt.Sprintf("You drop the %s.", it.Name))
	}
}

// Rest restores the player to full HP and refills spell slots at the price
// of the prepared loadout. Resting still gives the monsters a turn.
func (e *Engine) Rest() {
	if e.state != StatePlaying {
		return
	}
	e.player.HP = e.player.MaxHP
	e.book.Rest()
	e.AddMessage("You rest and recover. Spell slots return, but your prepared spells fade.")
	e.monsterTurns()
}

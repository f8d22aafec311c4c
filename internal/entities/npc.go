package entities

import "github.com/saltwindgames/saltwind/internal/quests"

// NPC is a friendly character the player can talk to. Dialogue lines are
// served in order and the last line repeats; an attached quest is granted on
// first conversation.
type NPC struct {
	GameObject

	Dialogue []string
	next     int
	Quest    *quests.Quest
}

// NewNPC creates an NPC at a position.
func NewNPC(id, name string, x, y int, glyph rune, dialogue []string) *NPC {
	return &NPC{
		GameObject: GameObject{
			ID:    id,
			Kind:  KindNPC,
			X:     x,
			Y:     y,
			Glyph: glyph,
			Color: ColorNPC,
			Name:  name,
		},
		Dialogue: dialogue,
	}
}

// Talk returns the NPC's next dialogue line. Once the lines run out the last
// one repeats.
func (n *NPC) Talk() string {
	if len(n.Dialogue) == 0 {
		return n.Name + " has nothing to say."
	}
	line := n.Dialogue[n.next]
	if n.next < len(n.Dialogue)-1 {
		n.next++
	}
	return line
}

// TakeQuest hands over the NPC's quest exactly once; later calls return nil.
func (n *NPC) TakeQuest() *quests.Quest {
	q := n.Quest
	n.Quest = nil
	return q
}

// Package quests tracks the player's quests and objectives.
package quests

// Quest is a named goal with a set of objectives. It completes when every
// objective is marked done.
type Quest struct {
	Name        string
	Description string
	Objectives  map[string]bool
	IsComplete  bool
}

// New creates a quest with all objectives incomplete.
func New(name, description string, objectives []string) *Quest {
	objs := make(map[string]bool, len(objectives))
	for _, o := range objectives {
		objs[o] = false
	}
	return &Quest{
		Name:        name,
		Description: description,
		Objectives:  objs,
	}
}

// CompleteObjective marks an objective done and re-checks completion.
// Unknown objective names are ignored.
func (q *Quest) CompleteObjective(name string) {
	if _, ok := q.Objectives[name]; !ok {
		return
	}
	q.Objectives[name] = true
	q.checkCompletion()
}

func (q *Quest) checkCompletion() {
	for _, done := range q.Objectives {
		if !done {
			return
		}
	}
	q.IsComplete = true
}

package quests

import "sort"

// Log manages the player's active and completed quests.
type Log struct {
	active    map[string]*Quest
	completed map[string]*Quest
}

// NewLog creates an empty quest log.
func NewLog() *Log {
	return &Log{
		active:    make(map[string]*Quest),
		completed: make(map[string]*Quest),
	}
}

// Add registers a new quest. Returns the announcement message, or "" if the
// quest was already known (active or completed).
func (l *Log) Add(q *Quest) string {
	if _, ok := l.active[q.Name]; ok {
		return ""
	}
	if _, ok := l.completed[q.Name]; ok {
		return ""
	}
	l.active[q.Name] = q
	return "New Quest: " + q.Name
}

// Complete moves a quest from active to completed. Returns the announcement
// message, or "" if no such active quest exists.
func (l *Log) Complete(name string) string {
	q, ok := l.active[name]
	if !ok {
		return ""
	}
	delete(l.active, name)
	q.IsComplete = true
	l.completed[name] = q
	return "Quest Complete: " + name
}

// Active returns the active quest with the given name.
func (l *Log) Active(name string) (*Quest, bool) {
	q, ok := l.active[name]
	return q, ok
}

// ActiveNames returns the active quest names in sorted order, for stable
// panel display.
func (l *Log) ActiveNames() []string {
	names := make([]string, 0, len(l.active))
	for name := range l.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompletedNames returns the completed quest names in sorted order.
func (l *Log) CompletedNames() []string {
	names := make([]string, 0, len(l.completed))
	for name := range l.completed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

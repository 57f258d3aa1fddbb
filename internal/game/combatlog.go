package game

const (
	// CombatLogCapacity is the number of lines kept; older lines are evicted.
	CombatLogCapacity = 10
	// CombatLogWindow is the number of most recent lines shown on screen.
	CombatLogWindow = 8
)

// CombatLog is a bounded buffer of combat messages.
type CombatLog struct {
	lines    []string
	capacity int
}

// NewCombatLog creates an empty log holding at most capacity lines.
func NewCombatLog(capacity int) *CombatLog {
	return &CombatLog{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a line, evicting the oldest when full.
func (l *CombatLog) Add(line string) {
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:len(l.lines)-1]
	}
	l.lines = append(l.lines, line)
}

// Clear removes every line.
func (l *CombatLog) Clear() {
	l.lines = l.lines[:0]
}

// Lines returns all lines, oldest first.
func (l *CombatLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Recent returns up to n of the newest lines, oldest first.
func (l *CombatLog) Recent(n int) []string {
	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Len returns the number of lines held.
func (l *CombatLog) Len() int {
	return len(l.lines)
}

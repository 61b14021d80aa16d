package core

// Action represents a semantic input event, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove returns true for the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputQueue collects the events that arrived between two ticks.
// Unlike a set of flags it keeps arrival order and duplicates, since every
// keypress is one discrete move.
type InputQueue struct {
	events []Action
}

// Push appends an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.events = append(q.events, a)
}

// Drain returns the pending events in arrival order and empties the queue.
func (q *InputQueue) Drain() []Action {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

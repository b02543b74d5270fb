// Package state holds the sandbox session states.
package state

// GameState represents the current state of the sandbox session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateDead
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether player input reaches the character
func (s GameState) AcceptsInput() bool {
	return s == StatePlaying
}

// Simulates reports whether the world keeps moving. A dead character
// still falls and props still expire; a paused session is frozen.
func (s GameState) Simulates() bool {
	return s == StatePlaying || s == StateDead
}

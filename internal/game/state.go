// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateMenu shows the level menu.
	StateMenu State = iota
	// StatePlay is an active level: the player walks the maze and the clock runs.
	StatePlay
	// StateWon shows the finish time over the completed maze.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlay:
		return "play"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

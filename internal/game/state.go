// Package game provides the game state machine and the terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateMenu is the title screen.
	StateMenu State = iota
	// StateDifficultySelection lets the player pick a difficulty before a run.
	StateDifficultySelection
	// StateExploration is free grid movement. The inventory is an overlay on this state.
	StateExploration
	// StateCombat is the turn-based fight against the engaged enemy.
	StateCombat
	// StateGameOver is entered when the hero dies.
	StateGameOver
	// StateVictory is entered when the boss dies.
	StateVictory
	// StateInstructions shows how to play.
	StateInstructions
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateDifficultySelection:
		return "difficulty_selection"
	case StateExploration:
		return "exploration"
	case StateCombat:
		return "combat"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	case StateInstructions:
		return "instructions"
	default:
		return "unknown"
	}
}

package indigo

// State is where the game is in its lifecycle
type State int

// game states
const (
	StateChoosingFirstPlayer State = iota
	StateInitialDeal
	StateTurn
	StateGameOver

	// StateExited means the user quit before the game ended. No scores were settled
	StateExited
)

func (s State) String() string {
	switch s {
	case StateChoosingFirstPlayer:
		return "choosing-first-player"
	case StateInitialDeal:
		return "initial-deal"
	case StateTurn:
		return "turn"
	case StateGameOver:
		return "game-over"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

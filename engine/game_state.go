package engine

// GameState is the turn driver state
type GameState uint8

const (
	StateAwaitingInput GameState = iota
	StateUpdating
	StateRendering
	StateStopped
)

func (s GameState) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateUpdating:
		return "updating"
	case StateRendering:
		return "rendering"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

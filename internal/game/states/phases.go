package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInitializing - Board and roster being built
	PhaseInitializing GamePhase = iota

	// PhaseWaiting - Waiting for the active player's move
	PhaseWaiting

	// PhaseChanging - A propagation is in flight
	PhaseChanging

	// PhaseGameOver - One player owns every cell
	PhaseGameOver

	// PhaseReset - Tearing the current game down for a new board
	PhaseReset
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseWaiting:
		return "Waiting"
	case PhaseChanging:
		return "Changing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseReset:
		return "Reset"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanReceiveMoves returns true if a player may submit a move in this phase
func (p GamePhase) CanReceiveMoves() bool {
	return p == PhaseWaiting
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseWaiting}
	case PhaseWaiting:
		return []GamePhase{PhaseChanging, PhaseReset}
	case PhaseChanging:
		return []GamePhase{PhaseWaiting, PhaseGameOver, PhaseReset}
	case PhaseGameOver:
		return []GamePhase{PhaseReset}
	case PhaseReset:
		return []GamePhase{PhaseInitializing}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

package states

import (
	"fmt"
	"time"
)

// InitializingState represents board and roster construction
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// WaitingState waits for the active player's move
type WaitingState struct{}

func NewWaitingState() State {
	return &WaitingState{}
}

func (s *WaitingState) Phase() GamePhase {
	return PhaseWaiting
}

func (s *WaitingState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Debug().
		Int("active_player", ctx.ActivePlayer).
		Int("turn", ctx.Turn).
		Msg("Waiting for move")
	return nil
}

func (s *WaitingState) Exit(ctx *GameContext) error {
	return nil
}

func (s *WaitingState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("roster must have between 1 and %d players, got %d", ctx.MaxPlayers, ctx.PlayerCount)
	}
	if ctx.ActivePlayer < 0 || ctx.ActivePlayer >= ctx.PlayerCount {
		return fmt.Errorf("active player %d out of range", ctx.ActivePlayer)
	}
	return nil
}

// ChangingState represents a propagation in flight
type ChangingState struct{}

func NewChangingState() State {
	return &ChangingState{}
}

func (s *ChangingState) Phase() GamePhase {
	return PhaseChanging
}

func (s *ChangingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("active_player", ctx.ActivePlayer).
		Int("turn", ctx.Turn).
		Msg("Resolving move")
	return nil
}

func (s *ChangingState) Exit(ctx *GameContext) error {
	return nil
}

func (s *ChangingState) Validate(ctx *GameContext) error {
	if ctx.HasWinner() {
		return fmt.Errorf("cannot resolve moves after player %d won", ctx.Winner)
	}
	return nil
}

// GameOverState represents a captured board
type GameOverState struct{}

func NewGameOverState() State {
	return &GameOverState{}
}

func (s *GameOverState) Phase() GamePhase {
	return PhaseGameOver
}

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Int("turns", ctx.Turn).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game over")
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Leaving game over state")
	return nil
}

func (s *GameOverState) Validate(ctx *GameContext) error {
	if !ctx.HasWinner() {
		return fmt.Errorf("game over state requires a winner")
	}
	return nil
}

// ResetState represents game reset
type ResetState struct{}

func NewResetState() State {
	return &ResetState{}
}

func (s *ResetState) Phase() GamePhase {
	return PhaseReset
}

func (s *ResetState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Resetting game")

	ctx.StartTime = time.Time{}
	ctx.Winner = -1
	ctx.Turn = 0
	ctx.ActivePlayer = 0
	ctx.PlayerCount = 0
	return nil
}

func (s *ResetState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Game reset complete")
	return nil
}

func (s *ResetState) Validate(ctx *GameContext) error {
	return nil
}

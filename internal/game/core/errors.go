package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions    = errors.New("invalid board dimensions")
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrIllegalMove          = errors.New("illegal move")
	ErrNotActivePlayer      = fmt.Errorf("%w: player is not active", ErrIllegalMove)
	ErrNotWaiting           = fmt.Errorf("%w: game is not waiting for a move", ErrIllegalMove)
	ErrCellOwned            = fmt.Errorf("%w: cell owned by another player", ErrIllegalMove)
	ErrNoMovesAvailable     = errors.New("no moves available")
	ErrGameOver             = errors.New("game is over")
	ErrInvalidPlayer        = errors.New("invalid player")
)

// MoveError attaches the player and target cell to a move failure.
type MoveError struct {
	Player int
	Target Coordinate
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("player %d: bump %s: %v", e.Player, e.Target, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// WrapMoveError returns nil for a nil err.
func WrapMoveError(player int, target Coordinate, err error) error {
	if err == nil {
		return nil
	}
	return &MoveError{Player: player, Target: target, Err: err}
}

// ConfigError describes which part of a game configuration was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// NewConfigError creates a ConfigError with a formatted reason.
func NewConfigError(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

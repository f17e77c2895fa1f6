package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the number of players in the roster
	PlayerCount int

	// MaxPlayers is the maximum number of players allowed
	MaxPlayers int

	// ActivePlayer is the roster index whose move is awaited or resolving
	ActivePlayer int

	// Turn counts accepted moves, starting at 1
	Turn int

	// StartTime is when the first Waiting phase was entered
	StartTime time.Time

	// Winner is the roster index of the winner (if the game is over)
	Winner int

	base zerolog.Logger
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, maxPlayers int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:     gameID,
		MaxPlayers: maxPlayers,
		Logger:     logger.With().Str("game_id", gameID).Logger(),
		Winner:     -1, // -1 indicates no winner yet
		base:       logger,
	}
}

// Rekey switches the context to a new game ID.
func (gc *GameContext) Rekey(gameID string) {
	gc.GameID = gameID
	gc.Logger = gc.base.With().Str("game_id", gameID).Logger()
}

// IsReady returns true if the roster size is playable
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount >= 1 && gc.PlayerCount <= gc.MaxPlayers
}

// HasWinner reports whether a winner has been recorded
func (gc *GameContext) HasWinner() bool {
	return gc.Winner >= 0
}

// GetElapsedTime returns the time elapsed since the game started
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}

package rules

import (
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/rs/zerolog"
)

// WinConditionChecker handles game over detection and score bookkeeping
type WinConditionChecker struct {
	logger        zerolog.Logger
	gameOverScore int
}

// NewWinConditionChecker creates a checker for a board of the given size
func NewWinConditionChecker(logger zerolog.Logger, gameOverScore int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:        logger.With().Str("component", "WinConditionChecker").Logger(),
		gameOverScore: gameOverScore,
	}
}

// GameOverScore is the number of cells a player must own to win
func (wc *WinConditionChecker) GameOverScore() int {
	return wc.gameOverScore
}

// Scores returns the number of cells owned by each roster index
func (wc *WinConditionChecker) Scores(board *core.Board, numPlayers int) []int {
	scores := make([]int, numPlayers)
	for owner, n := range board.OwnershipCounts() {
		if owner >= 0 && owner < numPlayers {
			scores[owner] = n
		}
	}
	return scores
}

// CheckGameOver reports whether the acting player owns every cell.
// Returns (isGameOver, winnerID); winnerID is -1 while the game continues.
func (wc *WinConditionChecker) CheckGameOver(scores []int, actingPlayer int) (bool, int) {
	if actingPlayer < 0 || actingPlayer >= len(scores) {
		return false, -1
	}
	if scores[actingPlayer] != wc.gameOverScore {
		wc.logger.Debug().
			Int("player", actingPlayer).
			Int("score", scores[actingPlayer]).
			Int("game_over_score", wc.gameOverScore).
			Msg("Game continues")
		return false, -1
	}
	wc.logger.Info().Int("winner_player_id", actingPlayer).Msg("Winner determined")
	return true, actingPlayer
}

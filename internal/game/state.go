package game

import (
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/rules"
	"github.com/mitchelldurbincs/DiceOff/internal/game/states"
)

// Snapshot is a copy of the game state handed to observers. Mutating it
// never affects the game.
type Snapshot struct {
	GameID        string
	Board         *core.Board
	Players       []core.Player // Score is the live cell count
	ActivePlayer  int
	Phase         states.GamePhase
	GameOver      bool
	Winner        int // -1 while the game continues
	Turn          int
	GameOverScore int
	Pending       []core.Coordinate // cells queued for the next tick
}

// Active returns the active player.
func (s Snapshot) Active() core.Player {
	return s.Players[s.ActivePlayer]
}

// Resolving reports whether a chain reaction is in flight.
func (s Snapshot) Resolving() bool {
	return s.Phase == states.PhaseChanging
}

// Scores returns each player's cell count in roster order.
func (s Snapshot) Scores() []int {
	scores := make([]int, len(s.Players))
	for i, p := range s.Players {
		scores[i] = p.Score
	}
	return scores
}

// PlayableMask returns a row-major mask of the cells a human at the board may
// click now. It is nil while a reaction resolves, an automated player is
// active or the game is over.
func (s Snapshot) PlayableMask() []bool {
	if s.Board == nil || s.GameOver || s.Resolving() || s.Active().Automated {
		return nil
	}
	return rules.NewLegalMoveCalculator().GetLegalMoveMask(s.Board, s.ActivePlayer)
}

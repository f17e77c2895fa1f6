package game

import (
	"context"

	"github.com/mitchelldurbincs/DiceOff/internal/game/ai"
)

// RunSelfPlay plays the human seats with sel until the game is over or
// maxMoves human moves have been submitted. Automated seats are played by the
// game itself. onMove, when set, sees the settled state after each human move.
// This is a helper for demos, benchmarks and soak tests.
func RunSelfPlay(ctx context.Context, g *Game, sel *ai.Selector, maxMoves int, onMove func(Snapshot)) (Snapshot, error) {
	for moves := 0; moves < maxMoves; moves++ {
		settle(g)
		snap := g.Snapshot()
		if snap.GameOver {
			return snap, nil
		}

		target, err := sel.SelectMove(snap.Board, snap.ActivePlayer)
		if err != nil {
			return snap, err
		}
		g.log().Debug().
			Str("driver", "self-play").
			Int("player", snap.ActivePlayer).
			Str("target", target.String()).
			Int("turn", snap.Turn).
			Msg("Self-play move")

		if err := g.SubmitMoveContext(ctx, snap.ActivePlayer, target.Row, target.Col); err != nil {
			return snap, err
		}
		if onMove != nil {
			settle(g)
			onMove(g.Snapshot())
		}
	}
	settle(g)
	return g.Snapshot(), nil
}

// settle drains any in-flight reaction of a game that does not auto-resolve.
func settle(g *Game) {
	for range g.Ticks() {
	}
}

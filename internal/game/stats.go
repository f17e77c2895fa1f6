package game

import "github.com/mitchelldurbincs/DiceOff/internal/game/events"

// updateScores recomputes every player's cell count from the board. Runs
// after each tick so observers see live scores during a cascade.
func (g *Game) updateScores(acting int) {
	scores := g.winCondition.Scores(g.board, len(g.players))
	changed := false
	for i := range g.players {
		if g.players[i].Score != scores[i] {
			g.players[i].Score = scores[i]
			changed = true
		}
	}
	if !changed {
		return
	}

	g.logger.Debug().Ints("scores", scores).Int("acting_player", acting).Msg("Scores updated")
	g.outbox.Publish(events.NewScoresUpdatedEvent(g.gameID, scores, acting, g.stateMachine.GetContext().Turn))
}

// scores returns the cached cell counts in roster order
func (g *Game) scores() []int {
	scores := make([]int, len(g.players))
	for i, p := range g.players {
		scores[i] = p.Score
	}
	return scores
}

package game

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/mitchelldurbincs/DiceOff/internal/game/states"
	"github.com/rs/zerolog"
)

// SubmitMove bumps (row, col) for player. The move must come from the active
// player while the game is Waiting, and the cell must be unclaimed or owned
// by that player. Rejected moves leave the board untouched, publish
// move.rejected and return an error matching one of the core sentinels.
func (g *Game) SubmitMove(player, row, col int) error {
	return g.SubmitMoveContext(context.Background(), player, row, col)
}

// SubmitMoveContext is SubmitMove with a context checked before the move is
// seeded. An accepted move always runs to completion.
func (g *Game) SubmitMoveContext(ctx context.Context, player, row, col int) error {
	g.mu.Lock()
	defer g.unlock()

	move := core.NewMove(player, row, col)
	if err := g.validateMove(move); err != nil {
		return g.reject(move, err)
	}
	if err := g.acceptLocked(ctx, move, false); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("submit move: %w", err)
		}
		return g.reject(move, err)
	}

	if g.autoResolve {
		g.drainLocked()
	}
	return nil
}

// Advance applies one tick of the in-flight chain reaction. When the reaction
// settles the turn ends, and if the next player is automated its move is
// seeded so the following Advance continues with it. Returns false when no
// reaction is in flight.
func (g *Game) Advance() (core.Tick, bool) {
	g.mu.Lock()
	defer g.unlock()
	return g.advanceLocked()
}

// Ticks returns a lazy sequence over Advance. It ends when the game waits
// for a human move or is over.
func (g *Game) Ticks() iter.Seq[core.Tick] {
	return func(yield func(core.Tick) bool) {
		for {
			tick, ok := g.Advance()
			if !ok || !yield(tick) {
				return
			}
		}
	}
}

// validateMove ensures the game can receive a move from its player
func (g *Game) validateMove(move core.Move) error {
	if g.gameOver {
		return core.ErrGameOver
	}
	phase := g.stateMachine.CurrentPhase()
	if !phase.CanReceiveMoves() {
		return fmt.Errorf("game is in %s phase: %w", phase, core.ErrNotWaiting)
	}
	if move.Player < 0 || move.Player >= len(g.players) {
		return core.ErrInvalidPlayer
	}
	if active := g.stateMachine.GetContext().ActivePlayer; move.Player != active {
		return fmt.Errorf("player %d is active: %w", active, core.ErrNotActivePlayer)
	}
	return nil
}

func (g *Game) reject(move core.Move, err error) error {
	turn := g.stateMachine.GetContext().Turn
	g.logger.Warn().
		Err(err).
		Int("player", move.Player).
		Str("target", move.Target.String()).
		Int("turn", turn).
		Msg("Move rejected")
	g.outbox.Publish(events.NewMoveRejectedEvent(g.gameID, move.Player, move.Target, err.Error(), turn))
	var moveErr *core.MoveError
	if errors.As(err, &moveErr) {
		return err
	}
	return core.WrapMoveError(move.Player, move.Target, err)
}

// acceptLocked seeds the propagation for move and enters the Changing phase
func (g *Game) acceptLocked(ctx context.Context, move core.Move, automated bool) error {
	p, err := g.moveProcessor.Start(ctx, g.board, move)
	if err != nil {
		return err
	}

	gc := g.stateMachine.GetContext()
	gc.Turn++
	if err := g.stateMachine.TransitionTo(states.PhaseChanging, "Move accepted"); err != nil {
		gc.Turn--
		return err
	}
	g.pending = p

	g.logger.Debug().
		Int("player", move.Player).
		Str("target", move.Target.String()).
		Bool("automated", automated).
		Int("turn", gc.Turn).
		Msg("Move accepted")
	g.outbox.Publish(events.NewMoveSubmittedEvent(g.gameID, move.Player, move.Target, automated, gc.Turn))
	return nil
}

// drainLocked resolves whole reactions, including the automated moves that
// follow, until a human is awaited or the game is over.
func (g *Game) drainLocked() {
	for g.pending != nil {
		turn := g.stateMachine.GetContext().Turn
		res := g.moveProcessor.Resolve(g.pending, g.gameID, turn, func(tick core.Tick) {
			g.updateScores(tick.Player)
		})
		g.logger.Debug().
			Int("turn", turn).
			Int("ticks", res.Ticks).
			Bool("captured", res.Captured).
			Msg("Move resolved")
		g.endTurn()
	}
}

func (g *Game) advanceLocked() (core.Tick, bool) {
	if g.pending == nil {
		return core.Tick{}, false
	}

	turn := g.stateMachine.GetContext().Turn
	tick, ok := g.moveProcessor.Step(g.pending, g.gameID, turn)
	if ok {
		g.updateScores(tick.Player)
	}
	if !ok || g.pending.Done() {
		g.endTurn()
	}
	return tick, ok
}

// endTurn settles the finished reaction: game over check, then round-robin
// to the next player that still has a legal cell.
func (g *Game) endTurn() {
	acting := g.pending.Player()
	g.pending = nil
	gc := g.stateMachine.GetContext()
	turnLogger := g.logger.With().Int("turn", gc.Turn).Logger()

	if over, winner := g.winCondition.CheckGameOver(g.scores(), acting); over {
		g.finish(winner, turnLogger)
		return
	}

	next := g.nextPlayer(acting, turnLogger)
	gc.ActivePlayer = next
	if err := g.stateMachine.TransitionTo(states.PhaseWaiting, "Turn advanced"); err != nil {
		turnLogger.Error().Err(err).Msg("Failed to return to Waiting")
		return
	}
	g.outbox.Publish(events.NewTurnAdvancedEvent(g.gameID, acting, next, g.players[next].Automated, gc.Turn))

	if g.players[next].Automated {
		g.playAutomated(next, turnLogger)
	}
}

// nextPlayer returns the next roster index after acting with a legal cell.
// Players without one forfeit their turn.
func (g *Game) nextPlayer(acting int, turnLogger zerolog.Logger) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		candidate := (acting + i) % n
		if g.legalMoves.HasLegalMove(g.board, candidate) {
			return candidate
		}
		turnLogger.Info().Int("player", candidate).Msg("No legal cells, turn forfeited")
		g.outbox.Publish(events.NewTurnForfeitedEvent(g.gameID, candidate, g.stateMachine.GetContext().Turn))
	}
	return acting
}

// playAutomated picks and seeds the move of an automated player
func (g *Game) playAutomated(player int, turnLogger zerolog.Logger) {
	target, err := g.selector.SelectMove(g.board, player)
	if err != nil {
		turnLogger.Error().Err(err).Int("player", player).Msg("Automated player could not move")
		return
	}
	if err := g.acceptLocked(context.Background(), core.Move{Player: player, Target: target}, true); err != nil {
		turnLogger.Error().Err(err).Int("player", player).Msg("Automated move rejected")
	}
}

func (g *Game) finish(winner int, turnLogger zerolog.Logger) {
	g.gameOver = true
	g.winner = winner

	gc := g.stateMachine.GetContext()
	gc.Winner = winner
	if err := g.stateMachine.TransitionTo(states.PhaseGameOver, "Board captured"); err != nil {
		turnLogger.Error().Err(err).Msg("Failed to enter GameOver")
	}

	turnLogger.Info().
		Int("winner", winner).
		Str("winner_name", g.players[winner].Name).
		Msg("Board captured")
	g.outbox.Publish(events.NewGameOverEvent(g.gameID, winner, g.players[winner].Name, gc.Turn, gc.GetElapsedTime()))
}

// checkContext checks if the context is cancelled
func checkContext(ctx context.Context, logger zerolog.Logger, phase string) error {
	select {
	case <-ctx.Done():
		logger.Warn().
			Err(ctx.Err()).
			Str("phase", phase).
			Msg("Game operation cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

package processor

import (
	"context"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/rs/zerolog"
)

// EventPublisher receives the events produced while resolving a move.
// events.EventPublisherAdapter satisfies it.
type EventPublisher interface {
	Publish(event any)
}

// MoveProcessor seeds and steps chain reactions on behalf of the game
type MoveProcessor struct {
	logger    zerolog.Logger
	publisher EventPublisher
	snapshots bool
}

// NewMoveProcessor creates a new move processor. A nil publisher drops events.
func NewMoveProcessor(logger zerolog.Logger, publisher EventPublisher) *MoveProcessor {
	return &MoveProcessor{
		logger:    logger.With().Str("component", "MoveProcessor").Logger(),
		publisher: publisher,
		snapshots: true,
	}
}

// SetSnapshots controls whether ticks carry a board copy.
func (mp *MoveProcessor) SetSnapshots(enabled bool) {
	mp.snapshots = enabled
}

// Start validates the move and returns its pending propagation. The board is
// untouched until the first Step.
func (mp *MoveProcessor) Start(ctx context.Context, board *core.Board, move core.Move) (*core.Propagation, error) {
	select {
	case <-ctx.Done():
		mp.logger.Warn().Err(ctx.Err()).Msg("Move processing interrupted by context cancellation")
		return nil, ctx.Err()
	default:
	}

	p, err := core.NewPropagation(board, move)
	if err != nil {
		mp.logger.Debug().Err(err).
			Int("player", move.Player).
			Str("target", move.Target.String()).
			Msg("Move failed validation")
		return nil, err
	}
	p.SetSnapshots(mp.snapshots)

	mp.logger.Debug().
		Int("player", move.Player).
		Str("target", move.Target.String()).
		Msg("Propagation seeded")
	return p, nil
}

// Step applies one tick and publishes it.
func (mp *MoveProcessor) Step(p *core.Propagation, gameID string, turn int) (core.Tick, bool) {
	tick, ok := p.Step()
	if !ok {
		return tick, false
	}

	mp.logger.Debug().
		Int("player", tick.Player).
		Int("tick", tick.Number).
		Int("bumps", len(tick.Bumped)).
		Int("overflows", len(tick.Overflowed)).
		Bool("captured", tick.Captured).
		Msg("Tick resolved")

	if mp.publisher != nil {
		mp.publisher.Publish(events.NewTickResolvedEvent(gameID, tick, turn))
	}
	return tick, true
}

// Resolve drains the propagation, calling onTick after every tick.
// Accepted moves always run to completion.
func (mp *MoveProcessor) Resolve(p *core.Propagation, gameID string, turn int, onTick func(core.Tick)) core.Result {
	for {
		tick, ok := mp.Step(p, gameID, turn)
		if !ok {
			break
		}
		if onTick != nil {
			onTick(tick)
		}
	}

	res := p.Result()
	mp.logger.Debug().
		Int("player", p.Player()).
		Int("ticks", res.Ticks).
		Int("bumps", res.Bumps).
		Int("overflows", res.Overflows).
		Bool("captured", res.Captured).
		Msg("Propagation settled")
	return res
}

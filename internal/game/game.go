package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mitchelldurbincs/DiceOff/internal/game/ai"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/mitchelldurbincs/DiceOff/internal/game/processor"
	"github.com/mitchelldurbincs/DiceOff/internal/game/rules"
	"github.com/mitchelldurbincs/DiceOff/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds the settings for a single game. Start from
// DefaultGameConfig; the zero value has no roster and is rejected.
type GameConfig struct {
	Rows    int
	Cols    int
	Players []core.Player

	// AutoResolve drains every tick, including follow-on automated turns,
	// inside SubmitMove. When false the caller pulls ticks with Advance.
	AutoResolve bool

	// FortifyChance is the probability the AI prefers its strongest tied cell.
	FortifyChance float64

	// TickDelay and AIDelay pace collaborators that pull ticks; the game
	// itself never sleeps.
	TickDelay time.Duration
	AIDelay   time.Duration

	Rng      *rand.Rand
	GameID   string
	Logger   zerolog.Logger
	EventBus *events.EventBus // optional, lets subscribers see game.started
}

// DefaultGameConfig returns the 8x11 Green (human) versus Red (automated) setup.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rows:          8,
		Cols:          11,
		Players:       core.DefaultPlayers(),
		AutoResolve:   true,
		FortifyChance: ai.DefaultFortifyChance,
		TickDelay:     250 * time.Millisecond,
		AIDelay:       500 * time.Millisecond,
		Logger:        zerolog.Nop(),
	}
}

// Game owns the board, the roster and the turn cycle. All methods are safe
// for concurrent use; events are delivered after the internal lock is released.
type Game struct {
	mu sync.Mutex

	gameID  string
	board   *core.Board
	players []core.Player
	logger  zerolog.Logger

	autoResolve bool
	tickDelay   time.Duration
	aiDelay     time.Duration

	eventBus      *events.EventBus
	outbox        *outbox
	stateMachine  *states.StateMachine
	moveProcessor *processor.MoveProcessor
	winCondition  *rules.WinConditionChecker
	legalMoves    *rules.LegalMoveCalculator
	selector      *ai.Selector

	// in-flight propagation, nil while waiting for a move
	pending  *core.Propagation
	gameOver bool
	winner   int
}

// NewGame validates cfg, builds the board and roster, and enters the Waiting
// phase with a randomly chosen human as the active player.
func NewGame(ctx context.Context, cfg GameConfig) (*Game, error) {
	return NewGameInitializer(cfg).Initialize(ctx)
}

// EventBus returns the bus that game notifications are published on.
func (g *Game) EventBus() *events.EventBus {
	return g.eventBus
}

// GameID returns the identifier of the current game.
func (g *Game) GameID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameID
}

// ActivePlayer returns the roster index whose move is awaited or resolving.
func (g *Game) ActivePlayer() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMachine.GetContext().ActivePlayer
}

// log returns the logger of the current game; it changes on Reset.
func (g *Game) log() *zerolog.Logger {
	g.mu.Lock()
	defer g.mu.Unlock()
	logger := g.logger
	return &logger
}

// Phase returns the current turn phase.
func (g *Game) Phase() states.GamePhase {
	return g.stateMachine.CurrentPhase()
}

// IsGameOver reports whether a player has captured the whole board.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOver
}

// Winner returns the winning roster index, or -1 while the game continues.
func (g *Game) Winner() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.gameOver {
		return -1
	}
	return g.winner
}

// Pacing returns the delays paced collaborators wait between ticks and
// before an automated move.
func (g *Game) Pacing() (tickDelay, aiDelay time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tickDelay, g.aiDelay
}

// LegalMoves returns the cells player may bump, in board order. Any roster
// index is accepted; the result ignores whose turn it is.
func (g *Game) LegalMoves(player int) []core.Coordinate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves.LegalMoves(g.board, player)
}

// Snapshot returns a deep copy of the observable game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	gc := g.stateMachine.GetContext()
	players := make([]core.Player, len(g.players))
	copy(players, g.players)

	s := Snapshot{
		GameID:        g.gameID,
		Board:         g.board.Clone(),
		Players:       players,
		ActivePlayer:  gc.ActivePlayer,
		Phase:         g.stateMachine.CurrentPhase(),
		GameOver:      g.gameOver,
		Winner:        -1,
		Turn:          gc.Turn,
		GameOverScore: g.winCondition.GameOverScore(),
	}
	if g.gameOver {
		s.Winner = g.winner
	}
	if g.pending != nil {
		s.Pending = g.pending.Pending()
	}
	return s
}

// Reset replaces the board and roster with a fresh game built from cfg and
// returns to Waiting. An in-flight reaction is discarded. The event bus and
// its subscribers carry over; cfg.EventBus is ignored.
func (g *Game) Reset(ctx context.Context, cfg GameConfig) error {
	g.mu.Lock()
	defer g.unlock()

	gi := NewGameInitializer(cfg)
	if err := checkContext(ctx, gi.logger, "reset"); err != nil {
		return err
	}
	gi.config.EventBus = g.eventBus
	gi.setupDefaults()

	board, err := gi.validate()
	if err != nil {
		gi.logger.Error().Err(err).Msg("Invalid game configuration, keeping current game")
		return err
	}

	previous := g.gameID
	if err := g.stateMachine.Reset(gi.config.GameID, "Game reset"); err != nil {
		return fmt.Errorf("reset state machine: %w", err)
	}
	gi.install(g, board)

	first := gi.pickFirstPlayer()
	if err := gi.initializeStateMachine(g, first); err != nil {
		return fmt.Errorf("state machine initialization failed: %w", err)
	}

	g.outbox.Publish(events.NewGameResetEvent(g.gameID, previous, len(g.players), board.Rows, board.Cols))
	g.outbox.Publish(events.NewGameStartedEvent(g.gameID, len(g.players), board.Rows, board.Cols, first))
	g.logger.Info().
		Str("previous_game", previous).
		Int("rows", board.Rows).
		Int("cols", board.Cols).
		Int("players", len(g.players)).
		Msg("Game reset")
	return nil
}

// unlock releases the game lock and then delivers the events queued while it
// was held, so handlers may call back into the game.
func (g *Game) unlock() {
	queued := g.outbox.drain()
	g.mu.Unlock()
	for _, e := range queued {
		g.eventBus.Publish(e)
	}
}

// outbox queues events raised under the game lock.
type outbox struct {
	mu    sync.Mutex
	queue []events.Event
}

func (o *outbox) Publish(e events.Event) {
	o.mu.Lock()
	o.queue = append(o.queue, e)
	o.mu.Unlock()
}

func (o *outbox) drain() []events.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	queued := o.queue
	o.queue = nil
	return queued
}

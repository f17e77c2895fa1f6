package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/game/ai"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/mitchelldurbincs/DiceOff/internal/game/processor"
	"github.com/mitchelldurbincs/DiceOff/internal/game/rules"
	"github.com/mitchelldurbincs/DiceOff/internal/game/states"
	"github.com/rs/zerolog"
)

// GameInitializer builds a Game from a GameConfig
type GameInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewGameInitializer creates a new game initializer
func NewGameInitializer(cfg GameConfig) *GameInitializer {
	return &GameInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "Game").Logger(),
	}
}

// Initialize creates the game and moves it to the Waiting phase
func (gi *GameInitializer) Initialize(ctx context.Context) (*Game, error) {
	if err := checkContext(ctx, gi.logger, "initialize"); err != nil {
		return nil, err
	}

	gi.setupDefaults()

	board, err := gi.validate()
	if err != nil {
		gi.logger.Error().Err(err).Msg("Invalid game configuration")
		return nil, err
	}

	g := gi.createGame()
	gi.install(g, board)

	first := gi.pickFirstPlayer()
	if err := gi.initializeStateMachine(g, first); err != nil {
		gi.logger.Error().Err(err).Msg("State machine initialization failed")
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	g.outbox.Publish(events.NewGameStartedEvent(g.gameID, len(g.players), board.Rows, board.Cols, first))
	for _, e := range g.outbox.drain() {
		g.eventBus.Publish(e)
	}

	g.logger.Info().
		Int("rows", board.Rows).
		Int("cols", board.Cols).
		Int("players", len(g.players)).
		Int("first_player", first).
		Bool("auto_resolve", g.autoResolve).
		Msg("Game created successfully")

	return g, nil
}

// setupDefaults fills the optional fields of the configuration
func (gi *GameInitializer) setupDefaults() {
	if gi.config.Rng == nil {
		gi.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		gi.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if gi.config.GameID == "" {
		gi.config.GameID = uuid.NewString()
	}
	if gi.config.EventBus == nil {
		gi.config.EventBus = events.NewEventBus(gi.config.Logger)
	}
}

// validate checks the configuration and builds the board
func (gi *GameInitializer) validate() (*core.Board, error) {
	board, err := core.NewBoard(gi.config.Rows, gi.config.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidConfiguration, err)
	}
	if err := core.ValidateRoster(gi.config.Players); err != nil {
		return nil, err
	}
	if err := common.ValidateProbability("fortify chance", gi.config.FortifyChance); err != nil {
		return nil, core.NewConfigError("fortify_chance", "%v", err)
	}
	if gi.config.TickDelay < 0 || gi.config.AIDelay < 0 {
		return nil, core.NewConfigError("delays", "must be non-negative")
	}
	return board, nil
}

// createGame creates the game shell with its event plumbing
func (gi *GameInitializer) createGame() *Game {
	g := &Game{
		eventBus:   gi.config.EventBus,
		outbox:     &outbox{},
		legalMoves: rules.NewLegalMoveCalculator(),
	}

	gameContext := states.NewGameContext(gi.config.GameID, core.MaxPlayers, gi.config.Logger)
	g.stateMachine = states.NewStateMachine(gameContext, g.outbox)
	return g
}

// install swaps in the board, roster and the components that depend on them.
// Used both on creation and on reset.
func (gi *GameInitializer) install(g *Game, board *core.Board) {
	players := make([]core.Player, len(gi.config.Players))
	copy(players, gi.config.Players)
	for i := range players {
		players[i].Score = 0
	}

	g.gameID = gi.config.GameID
	g.board = board
	g.players = players
	base := gi.config.Logger.With().Str("game_id", gi.config.GameID).Logger()
	g.logger = base.With().Str("component", "Game").Logger()
	g.autoResolve = gi.config.AutoResolve
	g.tickDelay = gi.config.TickDelay
	g.aiDelay = gi.config.AIDelay

	g.moveProcessor = processor.NewMoveProcessor(base, events.NewEventPublisherAdapter(g.outbox))
	g.moveProcessor.SetSnapshots(!gi.config.AutoResolve)
	g.winCondition = rules.NewWinConditionChecker(base, board.Size())
	g.selector = ai.NewSelector(
		ai.WithRNG(gi.config.Rng),
		ai.WithFortifyChance(gi.config.FortifyChance),
		ai.WithLogger(base),
	)

	g.pending = nil
	g.gameOver = false
	g.winner = -1
}

// pickFirstPlayer chooses a human at random
func (gi *GameInitializer) pickFirstPlayer() int {
	var humans []int
	for i, p := range gi.config.Players {
		if !p.Automated {
			humans = append(humans, i)
		}
	}
	return humans[gi.config.Rng.Intn(len(humans))]
}

// initializeStateMachine moves the machine from Initializing to Waiting
func (gi *GameInitializer) initializeStateMachine(g *Game, first int) error {
	gameContext := g.stateMachine.GetContext()
	gameContext.PlayerCount = len(g.players)
	gameContext.ActivePlayer = first
	gameContext.Turn = 0

	return g.stateMachine.TransitionTo(states.PhaseWaiting, "Board and roster ready")
}

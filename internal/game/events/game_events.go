package events

import (
	"time"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameOver        = "game.over"
	TypeGameReset       = "game.reset"
	TypeMoveSubmitted   = "move.submitted"
	TypeMoveRejected    = "move.rejected"
	TypeTickResolved    = "tick.resolved"
	TypeScoresUpdated   = "scores.updated"
	TypeTurnAdvanced    = "turn.advanced"
	TypeTurnForfeited   = "turn.forfeited"
	TypeStateTransition = "state.transition"
)

func base(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	NumPlayers  int
	Rows        int
	Cols        int
	FirstPlayer int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, rows, cols, firstPlayer int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:   base(TypeGameStarted, gameID),
		Metadata:    EventMetadata{Player: firstPlayer, Turn: 1},
		NumPlayers:  numPlayers,
		Rows:        rows,
		Cols:        cols,
		FirstPlayer: firstPlayer,
	}
}

// GameResetEvent is published when a running game is replaced by a fresh one
type GameResetEvent struct {
	BaseEvent
	PreviousGame string
	NumPlayers   int
	Rows         int
	Cols         int
}

// NewGameResetEvent creates a new GameResetEvent
func NewGameResetEvent(gameID, previousGame string, numPlayers, rows, cols int) *GameResetEvent {
	return &GameResetEvent{
		BaseEvent:    base(TypeGameReset, gameID),
		PreviousGame: previousGame,
		NumPlayers:   numPlayers,
		Rows:         rows,
		Cols:         cols,
	}
}

// GameOverEvent is published when a player owns every cell
type GameOverEvent struct {
	BaseEvent
	Metadata   EventMetadata
	Winner     int
	WinnerName string
	FinalTurn  int
	Duration   time.Duration
}

// NewGameOverEvent creates a new GameOverEvent
func NewGameOverEvent(gameID string, winner int, winnerName string, finalTurn int, duration time.Duration) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent:  base(TypeGameOver, gameID),
		Metadata:   EventMetadata{Player: winner, Turn: finalTurn},
		Winner:     winner,
		WinnerName: winnerName,
		FinalTurn:  finalTurn,
		Duration:   duration,
	}
}

// MoveSubmittedEvent is published when a move is accepted and its propagation starts
type MoveSubmittedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Target    core.Coordinate
	Automated bool
}

// NewMoveSubmittedEvent creates a new MoveSubmittedEvent
func NewMoveSubmittedEvent(gameID string, player int, target core.Coordinate, automated bool, turn int) *MoveSubmittedEvent {
	return &MoveSubmittedEvent{
		BaseEvent: base(TypeMoveSubmitted, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
		Target:    target,
		Automated: automated,
	}
}

// MoveRejectedEvent is published when a move fails validation
type MoveRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Target   core.Coordinate
	Reason   string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, player int, target core.Coordinate, reason string, turn int) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: base(TypeMoveRejected, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
		Target:    target,
		Reason:    reason,
	}
}

// TickResolvedEvent is published after every propagation tick
type TickResolvedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	Tick       int
	Bumped     []core.Coordinate
	Overflowed []core.Coordinate
	Captured   bool
	Final      bool
}

// NewTickResolvedEvent creates a new TickResolvedEvent from an engine tick
func NewTickResolvedEvent(gameID string, tick core.Tick, turn int) *TickResolvedEvent {
	return &TickResolvedEvent{
		BaseEvent:  base(TypeTickResolved, gameID),
		Metadata:   EventMetadata{Player: tick.Player, Turn: turn},
		Tick:       tick.Number,
		Bumped:     tick.Bumped,
		Overflowed: tick.Overflowed,
		Captured:   tick.Captured,
		Final:      tick.Final,
	}
}

// ScoresUpdatedEvent is published whenever scores are recomputed
type ScoresUpdatedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Scores   []int
}

// NewScoresUpdatedEvent creates a new ScoresUpdatedEvent
func NewScoresUpdatedEvent(gameID string, scores []int, activePlayer, turn int) *ScoresUpdatedEvent {
	return &ScoresUpdatedEvent{
		BaseEvent: base(TypeScoresUpdated, gameID),
		Metadata:  EventMetadata{Player: activePlayer, Turn: turn},
		Scores:    append([]int(nil), scores...),
	}
}

// TurnAdvancedEvent is published when the active player changes
type TurnAdvancedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	PreviousPlayer int
	Automated      bool
}

// NewTurnAdvancedEvent creates a new TurnAdvancedEvent; Metadata.Player is the new active player
func NewTurnAdvancedEvent(gameID string, previous, next int, automated bool, turn int) *TurnAdvancedEvent {
	return &TurnAdvancedEvent{
		BaseEvent:      base(TypeTurnAdvanced, gameID),
		Metadata:       EventMetadata{Player: next, Turn: turn},
		PreviousPlayer: previous,
		Automated:      automated,
	}
}

// TurnForfeitedEvent is published when a player has no legal cell and is skipped
type TurnForfeitedEvent struct {
	BaseEvent
	Metadata EventMetadata
}

// NewTurnForfeitedEvent creates a new TurnForfeitedEvent
func NewTurnForfeitedEvent(gameID string, player, turn int) *TurnForfeitedEvent {
	return &TurnForfeitedEvent{
		BaseEvent: base(TypeTurnForfeited, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: base(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if ls.logLevel == zerolog.NoLevel {
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("rows", e.Rows).
			Int("cols", e.Cols).
			Int("first_player", e.FirstPlayer)

	case *events.GameResetEvent:
		logEvent.
			Str("previous_game", e.PreviousGame).
			Int("num_players", e.NumPlayers).
			Int("rows", e.Rows).
			Int("cols", e.Cols)

	case *events.GameOverEvent:
		logEvent.
			Int("winner", e.Winner).
			Str("winner_name", e.WinnerName).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.MoveSubmittedEvent:
		logEvent.
			Int("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Str("target", e.Target.String()).
			Bool("automated", e.Automated)

	case *events.MoveRejectedEvent:
		logEvent.
			Int("player", e.Metadata.Player).
			Str("target", e.Target.String()).
			Str("reason", e.Reason)

	case *events.TickResolvedEvent:
		logEvent.
			Int("player", e.Metadata.Player).
			Int("tick", e.Tick).
			Str("bumped", core.FormatCoords(e.Bumped)).
			Str("overflowed", core.FormatCoords(e.Overflowed)).
			Bool("captured", e.Captured).
			Bool("final", e.Final)

	case *events.ScoresUpdatedEvent:
		logEvent.Ints("scores", e.Scores)

	case *events.TurnAdvancedEvent:
		logEvent.
			Int("previous_player", e.PreviousPlayer).
			Int("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Bool("automated", e.Automated)

	case *events.TurnForfeitedEvent:
		logEvent.
			Int("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.FromPhase).
			Str("to", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

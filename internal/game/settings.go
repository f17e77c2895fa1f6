package game

import (
	"math/rand"
	"time"

	"github.com/mitchelldurbincs/DiceOff/internal/config"
	"github.com/rs/zerolog"
)

// ConfigFromSettings maps loaded application settings onto a GameConfig.
// A zero seed picks a time based one.
func ConfigFromSettings(c *config.Config, logger zerolog.Logger) (GameConfig, error) {
	roster, err := c.Game.Roster()
	if err != nil {
		return GameConfig{}, err
	}

	seed := c.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return GameConfig{
		Rows:          c.Game.Rows,
		Cols:          c.Game.Columns,
		Players:       roster,
		AutoResolve:   c.Game.AutoResolve,
		FortifyChance: c.AI.FortifyChance,
		TickDelay:     c.Game.TickDelay,
		AIDelay:       c.Game.AIDelay,
		Rng:           rand.New(rand.NewSource(seed)),
		Logger:        logger.With().Int64("seed", seed).Logger(),
	}, nil
}

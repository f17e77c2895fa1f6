package game

import (
	"context"
	"testing"
	"time"

	"github.com/mitchelldurbincs/DiceOff/internal/config"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			Rows:    4,
			Columns: 5,
			Players: []config.PlayerConfig{
				{Name: "Alice", Color: "blue"},
				{Color: "yellow", Automated: true},
			},
			TickDelay:   100 * time.Millisecond,
			AIDelay:     time.Second,
			AutoResolve: false,
			Seed:        42,
		},
		AI: config.AIConfig{FortifyChance: 0.25},
	}
}

func TestConfigFromSettings(t *testing.T) {
	cfg, err := ConfigFromSettings(testSettings(), testutil.NopLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 5, cfg.Cols)
	assert.False(t, cfg.AutoResolve)
	assert.Equal(t, 0.25, cfg.FortifyChance)
	assert.Equal(t, 100*time.Millisecond, cfg.TickDelay)
	assert.Equal(t, time.Second, cfg.AIDelay)
	require.NotNil(t, cfg.Rng)
	assert.Equal(t, []core.Player{
		core.NewPlayer("Alice", core.Blue, false),
		core.NewPlayer("Yellow", core.Yellow, true),
	}, cfg.Players)

	g, err := NewGame(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, g.ActivePlayer())
}

func TestConfigFromSettings_SeedIsReproducible(t *testing.T) {
	a, err := ConfigFromSettings(testSettings(), testutil.NopLogger())
	require.NoError(t, err)
	b, err := ConfigFromSettings(testSettings(), testutil.NopLogger())
	require.NoError(t, err)

	assert.Equal(t, a.Rng.Int63(), b.Rng.Int63())
}

func TestConfigFromSettings_BadRoster(t *testing.T) {
	settings := testSettings()
	settings.Game.Players[1].Color = "purple"

	_, err := ConfigFromSettings(settings, testutil.NopLogger())
	assert.Error(t, err)
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/config"
	"github.com/mitchelldurbincs/DiceOff/internal/game"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DiceOff/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay merged from config.<env>.yaml next to the config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	logger := config.NewLogger(cfg.Logging, os.Stderr)
	log.Logger = logger

	// Called on the ebiten update goroutine on restart.
	// The client pulls ticks itself so chain reactions animate.
	newConfig := func() (game.GameConfig, error) {
		settings := config.Get()
		if err := common.ApplyOverrides(settings.UI.Colors); err != nil {
			log.Warn().Err(err).Msg("Ignoring color overrides")
		}
		gc, err := game.ConfigFromSettings(settings, logger)
		gc.AutoResolve = false
		return gc, err
	}

	gc, err := newConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game settings")
	}
	g, err := game.NewGame(context.Background(), gc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}
	g.EventBus().Subscribe(subscribers.NewLoggerSubscriber("ui-event-logger", logger, zerolog.DebugLevel))

	uiGame, err := ui.NewUIGame(g, newConfig, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI")
	}

	config.WatchConfig(func(_ *config.Config, err error) {
		if err != nil {
			log.Warn().Err(err).Msg("Config reload rejected, keeping current settings")
			return
		}
		// A reload rereads only the base file.
		if err := config.LoadEnvironmentConfig(*env); err != nil {
			log.Warn().Err(err).Str("env", *env).Msg("Environment overlay rejected after reload")
		}
		log.Info().Str("file", config.ConfigFilePath()).Msg("Config changed, restarting game")
		uiGame.RequestRestart()
	})

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}

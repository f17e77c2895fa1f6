package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DiceOff/internal/config"
	"github.com/mitchelldurbincs/DiceOff/internal/game"
	"github.com/mitchelldurbincs/DiceOff/internal/game/ai"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events"
	"github.com/mitchelldurbincs/DiceOff/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay merged from config.<env>.yaml next to the config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config default)")
	selfPlay := flag.Bool("self-play", false, "Let the AI play the human seats")
	maxMoves := flag.Int("max-moves", 500, "Move limit for self-play")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	if *seed != 0 {
		config.Set("game.seed", *seed)
	}
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	cfg := config.Get()

	logger := config.NewLogger(cfg.Logging, os.Stderr)
	log.Logger = logger

	gc, err := game.ConfigFromSettings(cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game settings")
	}
	gc.AutoResolve = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(ctx, gc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}
	g.EventBus().Subscribe(subscribers.NewLoggerSubscriber("cli-event-logger", logger, zerolog.DebugLevel))
	g.EventBus().SubscribeFunc(events.TypeTurnForfeited, func(e events.Event) {
		if ev, ok := e.(*events.TurnForfeitedEvent); ok {
			fmt.Printf("Player %d has no legal cell and skips a turn\n", ev.Metadata.Player)
		}
	})

	if *selfPlay {
		runSelfPlay(ctx, g, gc, *maxMoves)
		return
	}
	runInteractive(ctx, g)
}

func runSelfPlay(ctx context.Context, g *game.Game, gc game.GameConfig, maxMoves int) {
	sel := ai.NewSelector(
		ai.WithRNG(gc.Rng),
		ai.WithFortifyChance(gc.FortifyChance),
		ai.WithLogger(gc.Logger),
	)
	start := time.Now()
	final, err := game.RunSelfPlay(ctx, g, sel, maxMoves, func(s game.Snapshot) {
		fmt.Printf("After move %d:\n%s\n", s.Turn, game.Render(s))
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Self-play failed")
	}

	fmt.Printf("Final board:\n%s", game.Render(final))
	log.Info().
		Int("turns", final.Turn).
		Bool("game_over", final.GameOver).
		Dur("elapsed", time.Since(start)).
		Msg("Self-play finished")
}

func runInteractive(ctx context.Context, g *game.Game) {
	scanner := bufio.NewScanner(os.Stdin)
	for ctx.Err() == nil {
		s := g.Snapshot()
		fmt.Print(game.Render(s))
		if s.GameOver {
			return
		}

		fmt.Printf("%s, enter row and column (q to quit): ", s.Active().Name)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return
		}

		row, col, err := parseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := g.SubmitMoveContext(ctx, s.ActivePlayer, row, col); err != nil {
			if errors.Is(err, core.ErrIllegalMove) || errors.Is(err, core.ErrInvalidCoordinates) {
				fmt.Printf("Move rejected: %v\n", err)
				fmt.Printf("Legal cells: %s\n", formatCells(g.LegalMoves(s.ActivePlayer)))
				continue
			}
			log.Error().Err(err).Msg("Move failed")
			return
		}
	}
}

// formatCells lists cells as "row,col" separated by spaces.
func formatCells(cells []core.Coordinate) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
	}
	return strings.Join(parts, " ")
}

// parseMove reads "row col" or "row,col".
func parseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q", fields[1])
	}
	return row, col, nil
}

package ui

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/config"
	"github.com/mitchelldurbincs/DiceOff/internal/game"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/ui/input"
	"github.com/mitchelldurbincs/DiceOff/internal/ui/pacer"
	"github.com/mitchelldurbincs/DiceOff/internal/ui/renderer"
)

// statusFrames is how long a status message stays up (2s at 60 TPS).
const statusFrames = 120

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

func CellSize() int {
	return config.Get().UI.CellSize
}

// UIGame adapts a game.Game to ebiten: clicks become moves and ticks are
// pulled at the configured pace so chain reactions are visible.
type UIGame struct {
	game   *game.Game
	board  *renderer.BoardRenderer
	input  *input.Handler
	pacer  *pacer.Pacer
	face   font.Face
	logger zerolog.Logger

	// newConfig builds the settings for a restart
	newConfig func() (game.GameConfig, error)

	status      string
	statusTimer int

	restartRequested atomic.Bool
}

// NewUIGame creates a new Ebitengine game instance. newConfig is called when
// the player restarts the game.
func NewUIGame(g *game.Game, newConfig func() (game.GameConfig, error), logger zerolog.Logger) (*UIGame, error) {
	if g == nil {
		return nil, errors.New("ui: nil game")
	}
	tickDelay, aiDelay := g.Pacing()
	u := &UIGame{
		game:      g,
		pacer:     pacer.New(tickDelay, aiDelay),
		face:      basicfont.Face7x13,
		logger:    logger.With().Str("component", "UI").Logger(),
		newConfig: newConfig,
	}
	u.board = renderer.NewBoardRenderer(CellSize(), u.face)
	u.input = input.NewHandler(CellSize())
	return u, nil
}

// Update proceeds the game state.
func (u *UIGame) Update() error {
	u.input.Update()
	if u.statusTimer > 0 {
		u.statusTimer--
	}

	if u.input.RestartRequested() || u.restartRequested.Swap(false) {
		u.restart()
	}

	s := u.game.Snapshot()
	u.input.SetBoardSize(s.Board.Rows, s.Board.Cols)

	switch {
	case s.GameOver:
	case s.Resolving():
		if u.pacer.Due(time.Now(), s.Turn, s.Active().Automated) {
			u.game.Advance()
		}
	case s.Active().Automated:
		// An automated player in Waiting only happens with auto-resolve off
		// and is seeded by Advance; nothing to do.
	default:
		if cell, ok := u.input.Clicked(); ok {
			u.submit(s.ActivePlayer, cell)
		}
	}
	return nil
}

func (u *UIGame) submit(player int, cell core.Coordinate) {
	err := u.game.SubmitMove(player, cell.Row, cell.Col)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrCellOwned):
		u.showStatus("That cell belongs to another player")
	default:
		u.showStatus(err.Error())
	}
}

// RequestRestart asks for a restart on the next Update. Safe to call from
// any goroutine, e.g. a config watcher.
func (u *UIGame) RequestRestart() {
	u.restartRequested.Store(true)
}

// restart resets the game with fresh settings. The running game is kept when
// the settings are invalid.
func (u *UIGame) restart() {
	if u.newConfig == nil {
		return
	}
	cfg, err := u.newConfig()
	if err == nil {
		err = u.game.Reset(context.Background(), cfg)
	}
	if err != nil {
		u.logger.Error().Err(err).Msg("Restart failed")
		u.showStatus("Restart failed: " + err.Error())
		return
	}
	u.pacer.Reset()
	u.pacer.SetDelays(u.game.Pacing())
	u.board.SetCellSize(CellSize())
	u.input.SetCellSize(CellSize())
	u.showStatus("New game")
}

func (u *UIGame) showStatus(msg string) {
	u.status = msg
	u.statusTimer = statusFrames
}

// Draw renders the game screen.
func (u *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	s := u.game.Snapshot()
	hover, hovered := u.input.Hovered()
	u.board.Draw(screen, s, hover, hovered)
	u.drawHUD(screen, s)
}

// Layout defines the Ebitengine screen size.
func (u *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/game"
)

const lineHeight = 16

// drawHUD writes turn, scores and status below the board.
func (u *UIGame) drawHUD(screen *ebiten.Image, s game.Snapshot) {
	y := s.Board.Rows*u.board.CellSize() + lineHeight

	active := s.Active()
	var turnStr string
	switch {
	case s.GameOver:
		turnStr = fmt.Sprintf("%s wins after %d moves! Press R to restart", s.Players[s.Winner].Name, s.Turn)
	case s.Resolving():
		turnStr = fmt.Sprintf("Turn %d: %s's move is spreading", s.Turn, active.Name)
	case active.Automated:
		turnStr = fmt.Sprintf("Turn %d: %s is thinking", s.Turn, active.Name)
	default:
		turnStr = fmt.Sprintf("Turn %d: %s to move", s.Turn+1, active.Name)
	}
	text.Draw(screen, turnStr, u.face, 5, y, playerTextColor(s, s.ActivePlayer))

	x := 5
	for i, p := range s.Players {
		scoreStr := fmt.Sprintf("%s %d/%d", p.Name, p.Score, s.GameOverScore)
		text.Draw(screen, scoreStr, u.face, x, y+lineHeight, playerTextColor(s, i))
		x += text.BoundString(u.face, scoreStr).Dx() + 16
	}

	if u.statusTimer > 0 && u.status != "" {
		text.Draw(screen, u.status, u.face, 5, y+2*lineHeight, common.StatusTextColor)
	}
}

func playerTextColor(s game.Snapshot, i int) color.Color {
	if s.GameOver && i != s.Winner {
		return common.UnclaimedColor
	}
	return common.FillFor(s.Players[i].Color, true)
}

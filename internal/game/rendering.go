package game

import (
	"strings"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
	Bold        = "\033[1m"
)

var ansiColors = map[core.Color]string{
	core.Green:  ColorGreen,
	core.Red:    ColorRed,
	core.Yellow: ColorYellow,
	core.Blue:   ColorBlue,
}

// RenderBoard draws the board with each value colored by its owner's color.
// Unclaimed cells are gray; cells queued for the next tick are bold.
func RenderBoard(b *core.Board, players []core.Player, pending []core.Coordinate) string {
	queued := make(map[core.Coordinate]struct{}, len(pending))
	for _, c := range pending {
		queued[c] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((b.Cols*12 + 8) * (b.Rows + 1))

	// Header row
	sb.WriteString("   ")
	for col := 0; col < b.Cols; col++ {
		sb.WriteString(core.IntToStringFixedWidth(col, 3))
	}
	sb.WriteString("\n")

	for row := 0; row < b.Rows; row++ {
		sb.WriteString(core.IntToStringFixedWidth(row, 2))
		sb.WriteString(" ")
		for col := 0; col < b.Cols; col++ {
			cell := b.Cell(row, col)
			if _, ok := queued[cell.Coord()]; ok {
				sb.WriteString(Bold)
			}
			sb.WriteString(ownerColor(cell.Owner, players))
			sb.WriteString(core.IntToStringFixedWidth(cell.Value, 3))
			sb.WriteString(ColorReset)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render draws the snapshot: board, scores and whose turn it is.
func Render(s Snapshot) string {
	var sb strings.Builder
	sb.WriteString(RenderBoard(s.Board, s.Players, s.Pending))
	sb.WriteString("\n")

	for i, p := range s.Players {
		marker := "  "
		if i == s.ActivePlayer && !s.GameOver {
			marker = "> "
		}
		sb.WriteString(marker)
		sb.WriteString(ownerColor(i, s.Players))
		sb.WriteString(p.Name)
		sb.WriteString(ColorReset)
		if p.Automated {
			sb.WriteString(" (AI)")
		}
		sb.WriteString(": ")
		sb.WriteString(core.IntToStringFixedWidth(p.Score, 1))
		sb.WriteString("/")
		sb.WriteString(core.IntToStringFixedWidth(s.GameOverScore, 1))
		sb.WriteString("\n")
	}

	if s.GameOver && s.Winner >= 0 {
		sb.WriteString(Bold)
		sb.WriteString(s.Players[s.Winner].Name)
		sb.WriteString(" wins!")
		sb.WriteString(ColorReset)
		sb.WriteString("\n")
	}
	return sb.String()
}

func ownerColor(owner int, players []core.Player) string {
	if owner < 0 || owner >= len(players) {
		return ColorGray
	}
	if c, ok := ansiColors[players[owner].Color]; ok {
		return c
	}
	return ColorWhite
}

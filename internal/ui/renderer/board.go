package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/game"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

// PendingHueShift lightens cells queued for the next tick.
const PendingHueShift = 40

// BoardRenderer draws the board with one square per cell.
type BoardRenderer struct {
	cellSize    int
	defaultFont font.Face
	tile        *ebiten.Image // white square scaled to each cell's fill
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(cellSize int, f font.Face) *BoardRenderer {
	br := &BoardRenderer{defaultFont: f}
	br.SetCellSize(cellSize)
	return br
}

// SetCellSize changes the cell size, e.g. after a config reload.
func (br *BoardRenderer) SetCellSize(cellSize int) {
	if cellSize == br.cellSize && br.tile != nil {
		return
	}
	br.cellSize = cellSize
	inner := max(cellSize-2, 1)
	br.tile = ebiten.NewImage(inner, inner)
	br.tile.Fill(color.White)
}

func (br *BoardRenderer) CellSize() int { return br.cellSize }

// Draw renders the snapshot's board at the top left of screen. Cells of
// players other than the active one are dimmed; hover is highlighted when
// the active player could bump it.
func (br *BoardRenderer) Draw(screen *ebiten.Image, s game.Snapshot, hover core.Coordinate, hovered bool) {
	if s.Board == nil {
		return
	}

	var playable []bool
	if hovered {
		playable = s.PlayableMask()
	}
	queued := make(map[core.Coordinate]bool, len(s.Pending))
	for _, c := range s.Pending {
		queued[c] = true
	}

	for i := range s.Board.C {
		cell := &s.Board.C[i]
		fill := br.cellColor(cell, s)
		if queued[cell.Coord()] {
			fill = shiftColor(fill, PendingHueShift)
		}
		br.fillCell(screen, cell.Row, cell.Col, fill)

		if playable != nil && playable[i] && hover == cell.Coord() {
			br.fillCell(screen, cell.Row, cell.Col, common.HighlightColor)
		}

		br.drawValue(screen, cell)
	}
}

func (br *BoardRenderer) cellColor(cell *core.Cell, s game.Snapshot) color.RGBA {
	if cell.IsUnclaimed() || cell.Owner >= len(s.Players) {
		return common.UnclaimedColor
	}
	fill := common.FillFor(s.Players[cell.Owner].Color, true)
	if !s.GameOver && cell.Owner != s.ActivePlayer {
		fill = common.Dim(fill, common.InactiveDimAlpha)
	}
	return fill
}

func (br *BoardRenderer) fillCell(screen *ebiten.Image, row, col int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(col*br.cellSize+1), float64(row*br.cellSize+1))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(br.tile, op)
}

func (br *BoardRenderer) drawValue(screen *ebiten.Image, cell *core.Cell) {
	if br.defaultFont == nil {
		return
	}
	valueStr := strconv.Itoa(cell.Value)

	// text bounds in pixels
	b := text.BoundString(br.defaultFont, valueStr)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y

	x := cell.Col*br.cellSize + (br.cellSize-textW)/2
	y := cell.Row*br.cellSize + (br.cellSize+textH)/2
	text.Draw(screen, valueStr, br.defaultFont, x, y, common.ValueTextColor)
}

// shiftColor returns a slightly lighter version of c.
func shiftColor(c color.RGBA, amount int) color.RGBA {
	inc := uint16(amount)
	return color.RGBA{clamp8(uint16(c.R) + inc), clamp8(uint16(c.G) + inc), clamp8(uint16(c.B) + inc), c.A}
}

func clamp8(v uint16) uint8 {
	const max = 0xFF
	if v > max {
		return max
	}
	return uint8(v)
}

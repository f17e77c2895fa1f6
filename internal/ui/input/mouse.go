package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/DiceOff/internal/common"
	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

func IsLeftClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// JustTapped returns the position of a touch that began this frame.
func JustTapped(buf []ebiten.TouchID) (x, y int, ok bool, ids []ebiten.TouchID) {
	ids = inpututil.AppendJustPressedTouchIDs(buf[:0])
	if len(ids) == 0 {
		return 0, 0, false, ids
	}
	x, y = ebiten.TouchPosition(ids[0])
	return x, y, true, ids
}

// ScreenToCell maps a screen position onto a board cell drawn at the origin
// with square cells of cellSize pixels.
func ScreenToCell(x, y, cellSize, rows, cols int) (core.Coordinate, bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return core.Coordinate{}, false
	}
	c := core.Coordinate{Row: y / cellSize, Col: x / cellSize}
	if !common.IsValidCoordinate(c.Row, c.Col, rows, cols) {
		return core.Coordinate{}, false
	}
	return c, true
}

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

// Handler turns mouse clicks and touch taps into board cells.
type Handler struct {
	// Mouse state
	mouseX, mouseY int
	touches        []ebiten.TouchID

	// Board geometry
	cellSize   int
	rows, cols int

	// Per-frame results
	clicked  core.Coordinate
	hasClick bool
	restart  bool
}

func NewHandler(cellSize int) *Handler {
	return &Handler{cellSize: cellSize}
}

// Update reads this frame's input. Call once per ebiten Update.
func (h *Handler) Update() {
	h.mouseX, h.mouseY = GetCursorPosition()
	h.hasClick = false

	if IsLeftClickJustPressed() {
		h.clicked, h.hasClick = h.cellAt(h.mouseX, h.mouseY)
	}

	var x, y int
	var tapped bool
	x, y, tapped, h.touches = JustTapped(h.touches)
	if tapped && !h.hasClick {
		h.clicked, h.hasClick = h.cellAt(x, y)
	}

	h.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func (h *Handler) cellAt(x, y int) (core.Coordinate, bool) {
	return ScreenToCell(x, y, h.cellSize, h.rows, h.cols)
}

// SetBoardSize tells the handler which cells exist; it changes on reset.
func (h *Handler) SetBoardSize(rows, cols int) {
	h.rows = rows
	h.cols = cols
}

func (h *Handler) SetCellSize(cellSize int) {
	h.cellSize = cellSize
}

// Clicked returns the cell clicked or tapped this frame.
func (h *Handler) Clicked() (core.Coordinate, bool) {
	return h.clicked, h.hasClick
}

// Hovered returns the cell under the mouse cursor.
func (h *Handler) Hovered() (core.Coordinate, bool) {
	return h.cellAt(h.mouseX, h.mouseY)
}

// RestartRequested reports whether R was pressed this frame.
func (h *Handler) RestartRequested() bool {
	return h.restart
}

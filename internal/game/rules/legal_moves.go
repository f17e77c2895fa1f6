package rules

import "github.com/mitchelldurbincs/DiceOff/internal/game/core"

// LegalMoveCalculator computes legal moves for players
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// GetLegalMoveMask returns a row-major boolean mask with one entry per cell;
// true means the player may bump that cell.
func (lmc *LegalMoveCalculator) GetLegalMoveMask(board *core.Board, player int) []bool {
	mask := make([]bool, board.Size())
	if player < 0 {
		return mask
	}
	for i := range board.C {
		mask[i] = board.C[i].CanBeBumpedBy(player)
	}
	return mask
}

// LegalMoves returns the coordinates the player may bump, in board order.
func (lmc *LegalMoveCalculator) LegalMoves(board *core.Board, player int) []core.Coordinate {
	var moves []core.Coordinate
	for _, idx := range LegalCells(board, player) {
		moves = append(moves, board.Coord(idx))
	}
	return moves
}

// HasLegalMove reports whether the player can bump any cell.
func (lmc *LegalMoveCalculator) HasLegalMove(board *core.Board, player int) bool {
	if player < 0 {
		return false
	}
	for i := range board.C {
		if board.C[i].CanBeBumpedBy(player) {
			return true
		}
	}
	return false
}

// LegalCells returns the arena indices of every cell the player may bump.
func LegalCells(board *core.Board, player int) []int {
	if player < 0 {
		return nil
	}
	var cells []int
	for i := range board.C {
		if board.C[i].CanBeBumpedBy(player) {
			cells = append(cells, i)
		}
	}
	return cells
}

package core

// Move is a request by a player to bump one cell.
type Move struct {
	Player int
	Target Coordinate
}

// NewMove creates a move for player on (row, col).
func NewMove(player, row, col int) Move {
	return Move{Player: player, Target: Coordinate{Row: row, Col: col}}
}

// Validate checks the seed-move rules: the target must exist and be unclaimed
// or already owned by the mover. Cells reached by a cascade are never validated.
func (m Move) Validate(b *Board) error {
	if m.Player < 0 {
		return ErrInvalidPlayer
	}
	cell := b.CellAt(m.Target)
	if cell == nil {
		return ErrInvalidCoordinates
	}
	if !cell.CanBeBumpedBy(m.Player) {
		return ErrCellOwned
	}
	return nil
}

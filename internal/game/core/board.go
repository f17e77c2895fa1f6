package core

import "fmt"

// NoOwner marks an unclaimed cell.
const NoOwner = -1

// Cell is a single die on the board.
// Owner: NoOwner means unclaimed; 0..N-1 are roster indices.
// Neighbors is fixed at construction, Value and Owner are only changed by a Propagation.
type Cell struct {
	Row       int
	Col       int
	Neighbors int
	Value     int
	Owner     int
}

func (c *Cell) IsUnclaimed() bool         { return c.Owner == NoOwner }
func (c *Cell) IsOwnedBy(player int) bool { return c.Owner == player }
func (c *Cell) Coord() Coordinate         { return Coordinate{Row: c.Row, Col: c.Col} }

// CanBeBumpedBy reports whether player may pick this cell as a seed move.
func (c *Cell) CanBeBumpedBy(player int) bool {
	return c.Owner == NoOwner || c.Owner == player
}

// WouldOverflow reports whether one more bump makes the cell split.
func (c *Cell) WouldOverflow() bool { return c.Value+1 > c.Neighbors }

type Board struct {
	Rows, Cols int
	C          []Cell // length = Rows*Cols (row-major)
}

// NewBoard builds a rows×cols board of unclaimed cells with value 1.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b := &Board{Rows: rows, Cols: cols, C: make([]Cell, rows*cols)}
	for i := range b.C {
		row, col := b.RowCol(i)
		b.C[i] = Cell{
			Row:       row,
			Col:       col,
			Neighbors: b.countNeighbors(row, col),
			Value:     1,
			Owner:     NoOwner,
		}
	}
	return b, nil
}

func (b *Board) Idx(row, col int) int       { return row*b.Cols + col }
func (b *Board) RowCol(idx int) (int, int)  { return idx / b.Cols, idx % b.Cols }
func (b *Board) Coord(idx int) Coordinate   { return FromIndex(idx, b.Cols) }
func (b *Board) Size() int                  { return b.Rows * b.Cols }
func (b *Board) InBounds(row, col int) bool { return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols }
func (b *Board) Contains(c Coordinate) bool { return b.InBounds(c.Row, c.Col) }

// Cell safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) Cell(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.C[b.Idx(row, col)]
}

// CellAt is Cell for a Coordinate
func (b *Board) CellAt(c Coordinate) *Cell {
	return b.Cell(c.Row, c.Col)
}

func (b *Board) countNeighbors(row, col int) int {
	n := 0
	if col > 0 {
		n++
	}
	if col < b.Cols-1 {
		n++
	}
	if row > 0 {
		n++
	}
	if row < b.Rows-1 {
		n++
	}
	return n
}

// NeighborIndices returns the arena indices of the in-bounds neighbors of idx
// in left, right, above, below order.
func (b *Board) NeighborIndices(idx int) []int {
	row, col := b.RowCol(idx)
	result := make([]int, 0, 4)
	if col > 0 {
		result = append(result, idx-1)
	}
	if col < b.Cols-1 {
		result = append(result, idx+1)
	}
	if row > 0 {
		result = append(result, idx-b.Cols)
	}
	if row < b.Rows-1 {
		result = append(result, idx+b.Cols)
	}
	return result
}

// NeighborsOf returns pointers to the existing neighbor cells of (row, col).
// Out-of-bounds positions have no neighbors.
func (b *Board) NeighborsOf(row, col int) []*Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	indices := b.NeighborIndices(b.Idx(row, col))
	cells := make([]*Cell, len(indices))
	for i, idx := range indices {
		cells[i] = &b.C[idx]
	}
	return cells
}

// OwnershipCounts tallies owned cells per roster index. Unclaimed cells are not counted.
func (b *Board) OwnershipCounts() map[int]int {
	counts := make(map[int]int)
	for i := range b.C {
		if owner := b.C[i].Owner; owner != NoOwner {
			counts[owner]++
		}
	}
	return counts
}

// OwnedBy returns the number of cells owned by player.
func (b *Board) OwnedBy(player int) int {
	n := 0
	for i := range b.C {
		if b.C[i].Owner == player {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.C))
	copy(cells, b.C)
	return &Board{Rows: b.Rows, Cols: b.Cols, C: cells}
}

package core

import "fmt"

// Coordinate represents a cell position on the game board
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, cols int) Coordinate {
	return Coordinate{
		Row: idx / cols,
		Col: idx % cols,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(cols int) int {
	return c.Row*cols + c.Col
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col

	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Neighbors returns the four orthogonal neighbors of this coordinate in
// left, right, above, below order.
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{Row: c.Row, Col: c.Col - 1}, // left
		{Row: c.Row, Col: c.Col + 1}, // right
		{Row: c.Row - 1, Col: c.Col}, // above
		{Row: c.Row + 1, Col: c.Col}, // below
	}
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(rows, cols int) []Coordinate {
	valid := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors() {
		if n.IsValid(rows, cols) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

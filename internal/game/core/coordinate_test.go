package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 5, c.Col)
}

func TestCoordinate_FromIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		cols     int
		expected Coordinate
	}{
		{"TopLeft", 0, 10, Coordinate{0, 0}},
		{"TopRight", 9, 10, Coordinate{0, 9}},
		{"SecondRow", 10, 10, Coordinate{1, 0}},
		{"Middle", 55, 10, Coordinate{5, 5}},
		{"BottomRight", 99, 10, Coordinate{9, 9}},
		{"NarrowBoard", 7, 4, Coordinate{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromIndex(tt.index, tt.cols))
		})
	}
}

func TestCoordinate_ToIndex(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		cols     int
		expected int
	}{
		{"Origin", Coordinate{0, 0}, 11, 0},
		{"EndOfFirstRow", Coordinate{0, 10}, 11, 10},
		{"StartOfSecondRow", Coordinate{1, 0}, 11, 11},
		{"Inner", Coordinate{3, 4}, 11, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.ToIndex(tt.cols))
		})
	}
}

func TestCoordinate_RoundTrip(t *testing.T) {
	rows, cols := 8, 11
	for idx := 0; idx < rows*cols; idx++ {
		c := FromIndex(idx, cols)
		require.True(t, c.IsValid(rows, cols))
		assert.Equal(t, idx, c.ToIndex(cols))
	}
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		expected bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"last cell", Coordinate{2, 4}, true},
		{"negative row", Coordinate{-1, 0}, false},
		{"negative col", Coordinate{0, -1}, false},
		{"row equals rows", Coordinate{3, 0}, false},
		{"col equals cols", Coordinate{0, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.IsValid(3, 5))
		})
	}
}

func TestCoordinate_IsAdjacentTo(t *testing.T) {
	center := Coordinate{2, 2}

	assert.True(t, center.IsAdjacentTo(Coordinate{2, 1}), "left")
	assert.True(t, center.IsAdjacentTo(Coordinate{2, 3}), "right")
	assert.True(t, center.IsAdjacentTo(Coordinate{1, 2}), "above")
	assert.True(t, center.IsAdjacentTo(Coordinate{3, 2}), "below")

	assert.False(t, center.IsAdjacentTo(center), "self")
	assert.False(t, center.IsAdjacentTo(Coordinate{1, 1}), "diagonal")
	assert.False(t, center.IsAdjacentTo(Coordinate{2, 4}), "two steps")
}

func TestCoordinate_Neighbors(t *testing.T) {
	c := Coordinate{Row: 4, Col: 6}
	assert.Equal(t, []Coordinate{
		{Row: 4, Col: 5},
		{Row: 4, Col: 7},
		{Row: 3, Col: 6},
		{Row: 5, Col: 6},
	}, c.Neighbors())
}

func TestCoordinate_ValidNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		expected int
	}{
		{"top-left corner", Coordinate{0, 0}, 2},
		{"bottom-right corner", Coordinate{2, 3}, 2},
		{"top edge", Coordinate{0, 1}, 3},
		{"left edge", Coordinate{1, 0}, 3},
		{"interior", Coordinate{1, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := tt.coord.ValidNeighbors(3, 4)
			assert.Len(t, neighbors, tt.expected)
			for _, n := range neighbors {
				assert.True(t, n.IsValid(3, 4))
				assert.True(t, tt.coord.IsAdjacentTo(n))
			}
		})
	}
}

func TestCoordinate_Equal(t *testing.T) {
	assert.True(t, Coordinate{1, 2}.Equal(Coordinate{1, 2}))
	assert.False(t, Coordinate{1, 2}.Equal(Coordinate{2, 1}))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(0,0)", Coordinate{}.String())
	assert.Equal(t, "(7,10)", Coordinate{7, 10}.String())
	assert.Equal(t, "(-1,3)", Coordinate{-1, 3}.String())
}

func TestCoordinate_ComparableAsMapKey(t *testing.T) {
	seen := map[Coordinate]int{}
	seen[Coordinate{1, 1}]++
	seen[NewCoordinate(1, 1)]++
	seen[Coordinate{1, 2}]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Coordinate{1, 1}])
}

func BenchmarkCoordinate_ToIndex(b *testing.B) {
	c := Coordinate{Row: 5, Col: 7}
	for i := 0; i < b.N; i++ {
		_ = c.ToIndex(11)
	}
}

func BenchmarkCoordinate_ValidNeighbors(b *testing.B) {
	c := Coordinate{Row: 0, Col: 0}
	for i := 0; i < b.N; i++ {
		_ = c.ValidNeighbors(8, 11)
	}
}

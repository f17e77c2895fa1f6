package testutil

import (
	"strings"
	"testing"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/stretchr/testify/require"
)

// CreateTestBoard creates a fresh board with the given dimensions
func CreateTestBoard(t testing.TB, rows, cols int) *core.Board {
	t.Helper()
	board, err := core.NewBoard(rows, cols)
	require.NoError(t, err)
	return board
}

// CellSetup describes one cell to preset on a test board.
type CellSetup struct {
	Value int
	Owner int
}

// CreateTestBoardWithCells creates a board and presets specific cells
func CreateTestBoardWithCells(t testing.TB, rows, cols int, cells map[core.Coordinate]CellSetup) *core.Board {
	t.Helper()
	board := CreateTestBoard(t, rows, cols)
	for coord, setup := range cells {
		cell := board.CellAt(coord)
		require.NotNil(t, cell, "cell %s out of bounds", coord)
		cell.Value = setup.Value
		cell.Owner = setup.Owner
	}
	return board
}

// CreateTestPlayers creates count players cycling through the four colors.
// The first player is human, the rest automated.
func CreateTestPlayers(count int) []core.Player {
	colors := []core.Color{core.Green, core.Red, core.Yellow, core.Blue}
	players := make([]core.Player, count)
	for i := 0; i < count; i++ {
		c := colors[i%len(colors)]
		players[i] = core.NewPlayer(capitalize(c.String()), c, i > 0)
	}
	return players
}

// CreateHumanPlayers creates count human players.
func CreateHumanPlayers(count int) []core.Player {
	players := CreateTestPlayers(count)
	for i := range players {
		players[i].Automated = false
	}
	return players
}

// SaturateBoard sets every cell to its neighbor count so the next bump anywhere overflows.
func SaturateBoard(board *core.Board) {
	for i := range board.C {
		board.C[i].Value = board.C[i].Neighbors
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

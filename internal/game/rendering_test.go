package game

import (
	"strings"
	"testing"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	b := testutil.CreateTestBoard(t, 2, 2)
	b.Cell(0, 0).Owner = 0
	b.Cell(0, 0).Value = 2
	b.Cell(1, 1).Owner = 1

	snap := Snapshot{
		Board:         b,
		Players:       core.DefaultPlayers(),
		ActivePlayer:  1,
		GameOverScore: 4,
		Winner:        -1,
		Pending:       []core.Coordinate{{Row: 1, Col: 1}},
	}
	snap.Players[0].Score = 1
	snap.Players[1].Score = 1

	out := Render(snap)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "     0  1", lines[0])
	assert.Contains(t, lines[1], ColorGreen+"  2"+ColorReset)
	assert.Contains(t, lines[1], ColorGray+"  1"+ColorReset)
	assert.Contains(t, lines[2], Bold+ColorRed+"  1"+ColorReset)
	assert.Contains(t, out, "  "+ColorGreen+"Green"+ColorReset+": 1/4")
	assert.Contains(t, out, "> "+ColorRed+"Red"+ColorReset+" (AI): 1/4")
	assert.NotContains(t, out, "wins!")

	snap.GameOver = true
	snap.Winner = 0
	out = Render(snap)
	assert.Contains(t, out, "Green wins!")
	assert.NotContains(t, out, "> ")
}

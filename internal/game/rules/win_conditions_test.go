package rules

import (
	"testing"

	"github.com/mitchelldurbincs/DiceOff/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWinConditionChecker(t *testing.T) {
	board := testutil.CreateTestBoard(t, 2, 2)
	wc := NewWinConditionChecker(testutil.NopLogger(), board.Size())
	assert.Equal(t, 4, wc.GameOverScore())

	t.Run("fresh board scores zero", func(t *testing.T) {
		scores := wc.Scores(board, 2)
		assert.Equal(t, []int{0, 0}, scores)
		over, winner := wc.CheckGameOver(scores, 0)
		assert.False(t, over)
		assert.Equal(t, -1, winner)
	})

	t.Run("partial ownership", func(t *testing.T) {
		board.C[0].Owner = 0
		board.C[1].Owner = 1
		board.C[2].Owner = 1
		scores := wc.Scores(board, 2)
		assert.Equal(t, []int{1, 2}, scores)
		over, _ := wc.CheckGameOver(scores, 1)
		assert.False(t, over)
	})

	t.Run("full capture by the acting player", func(t *testing.T) {
		for i := range board.C {
			board.C[i].Owner = 1
		}
		scores := wc.Scores(board, 3)
		assert.Equal(t, []int{0, 4, 0}, scores)

		over, winner := wc.CheckGameOver(scores, 1)
		assert.True(t, over)
		assert.Equal(t, 1, winner)

		over, _ = wc.CheckGameOver(scores, 0)
		assert.False(t, over, "only the acting player's score is checked")
	})

	t.Run("out of range player", func(t *testing.T) {
		over, winner := wc.CheckGameOver([]int{4}, 3)
		assert.False(t, over)
		assert.Equal(t, -1, winner)
	})

	t.Run("owners beyond the roster are ignored", func(t *testing.T) {
		board.C[0].Owner = 5
		assert.Equal(t, []int{0, 3}, wc.Scores(board, 2))
	})
}

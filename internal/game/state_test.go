package game

import (
	"testing"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPlayableMask(t *testing.T) {
	g, _ := newTestGame(t, newTestConfig(2, 2, core.DefaultPlayers(), 7))
	require.NoError(t, g.SubmitMove(0, 0, 0))

	snap := g.Snapshot()
	assert.Equal(t, []bool{true, true, true, false}, snap.PlayableMask())

	automated := snap
	automated.ActivePlayer = 1
	assert.Nil(t, automated.PlayableMask())

	resolving := snap
	resolving.Phase = states.PhaseChanging
	assert.Nil(t, resolving.PlayableMask())

	over := snap
	over.GameOver = true
	assert.Nil(t, over.PlayableMask())

	assert.Nil(t, Snapshot{}.PlayableMask())
}

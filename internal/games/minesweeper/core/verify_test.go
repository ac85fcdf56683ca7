package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyGeneratedBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, p := range Presets() {
		b, err := NewBoard(p.Width, p.Height, p.Mines)
		require.NoError(t, err)
		for k := 0; k < 50; k++ {
			origin := rng.Intn(b.Len())
			require.NoError(t, b.PlaceMines(origin, rng))
			require.NoError(t, b.Verify(origin), "preset %s origin %d", p.ID, origin)
			require.NoError(t, b.CheckCounters())
		}
	}
}

func TestVerifyDetectsBrokenBoards(t *testing.T) {
	// Mine in the corner, origin next to it.
	b := boardWithMines(t, 4, 4, 0)
	assert.ErrorIs(t, b.Verify(5), ErrBoardInvariant)
	assert.NoError(t, b.Verify(15))

	b.content[15] = 3
	assert.ErrorIs(t, b.Verify(10), ErrBoardInvariant)

	b = boardWithMines(t, 4, 4, 0)
	b.mineCount = 2
	assert.ErrorIs(t, b.Verify(15), ErrBoardInvariant)

	assert.ErrorIs(t, b.Verify(16), ErrOutOfBounds)
}

func TestCheckCounters(t *testing.T) {
	b := boardWithMines(t, 4, 4, 0)
	_, err := b.ToggleFlag(0)
	require.NoError(t, err)
	b.reveal(15)
	require.NoError(t, b.CheckCounters())

	b.flagCount++
	assert.ErrorIs(t, b.CheckCounters(), ErrBoardInvariant)
	b.flagCount--

	b.revealedCount = 0
	assert.ErrorIs(t, b.CheckCounters(), ErrBoardInvariant)
}

package core

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMines(b *Board) int {
	n := 0
	for i := 0; i < b.Len(); i++ {
		if b.Content(i).IsMine() {
			n++
		}
	}
	return n
}

func TestSafeZoneSize(t *testing.T) {
	b, err := NewBoard(5, 5, 0)
	require.NoError(t, err)

	tests := []struct {
		name   string
		origin int
		want   int
	}{
		{"interior", 12, 9},
		{"top edge", 2, 6},
		{"left edge", 10, 6},
		{"corner", 0, 4},
		{"opposite corner", 24, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			zone := b.SafeZone(tc.origin)
			assert.Len(t, zone, tc.want)
			assert.Equal(t, tc.origin, zone[0])
		})
	}
}

func TestPlaceMinesInvariants(t *testing.T) {
	shapes := []struct {
		width, height, mines int
	}{
		{1, 1, 0},
		{3, 3, 0},
		{5, 5, 1},
		{10, 1, 3},
		{1, 10, 5},
		{12, 8, 20},
		{16, 12, 36},
		{24, 16, 80},
		{6, 6, 27},
	}

	for _, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%d_%d", sh.width, sh.height, sh.mines), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(sh.width*100 + sh.height)))
			b := &Board{}
			for origin := 0; origin < sh.width*sh.height; origin++ {
				require.NoError(t, b.Reset(sh.width, sh.height, sh.mines))
				require.NoError(t, b.PlaceMines(origin, rng))

				require.NoError(t, b.Verify(origin), "origin %d", origin)
				assert.Equal(t, sh.mines, countMines(b))
				for _, z := range b.SafeZone(origin) {
					assert.False(t, b.Content(z).IsMine(), "origin %d zone tile %d", origin, z)
				}
			}
		})
	}
}

func TestPlaceMinesDenseBoardKeepsOriginSafe(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := &Board{}
	for origin := 0; origin < 9; origin++ {
		require.NoError(t, b.Reset(3, 3, 8))
		require.NoError(t, b.PlaceMines(origin, rng))
		assert.False(t, b.Content(origin).IsMine())
		assert.Equal(t, 8, countMines(b))
		require.NoError(t, b.Verify(origin))
	}
}

// A single mine on a 5x5 board clicked in the centre must land outside the
// 3x3 block, and over many runs must reach every one of those 16 tiles.
func TestPlaceMinesScenarioCenterClick(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := &Board{}
	zone := map[int]bool{6: true, 7: true, 8: true, 11: true, 12: true, 13: true, 16: true, 17: true, 18: true}
	seen := make(map[int]int)

	for run := 0; run < 2000; run++ {
		require.NoError(t, b.Reset(5, 5, 1))
		require.NoError(t, b.PlaceMines(12, rng))
		mine := -1
		for i := 0; i < b.Len(); i++ {
			if b.Content(i).IsMine() {
				mine = i
			}
		}
		require.NotEqual(t, -1, mine)
		require.False(t, zone[mine], "mine at %d inside safe zone", mine)
		seen[mine]++
	}
	assert.Len(t, seen, 16)
}

func TestPlaceMinesDeterministic(t *testing.T) {
	a := &Board{}
	b := &Board{}
	require.NoError(t, a.Reset(16, 12, 36))
	require.NoError(t, b.Reset(16, 12, 36))
	require.NoError(t, a.PlaceMines(50, rand.New(rand.NewSource(99))))
	require.NoError(t, b.PlaceMines(50, rand.New(rand.NewSource(99))))

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Content(i), b.Content(i))
	}
}

func TestPlaceMinesOutOfBounds(t *testing.T) {
	b, err := NewBoard(3, 3, 1)
	require.NoError(t, err)
	err = b.PlaceMines(9, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPlaceMinesRecountsEarlyFlags(t *testing.T) {
	b, err := NewBoard(4, 4, 15-9)
	require.NoError(t, err)
	for i := 8; i < 16; i++ {
		_, err := b.ToggleFlag(i)
		require.NoError(t, err)
	}
	require.NoError(t, b.PlaceMines(0, rand.New(rand.NewSource(3))))

	flaggedMines := 0
	for i := 8; i < 16; i++ {
		if b.Content(i).IsMine() {
			flaggedMines++
		}
	}
	assert.Equal(t, 8, b.FlagCount())
	assert.Equal(t, flaggedMines, b.FlaggedMineCount())
}

func TestGenerateNumbers(t *testing.T) {
	// . * .
	// . . .
	// * . *
	b := boardWithMines(t, 3, 3, 1, 6, 8)
	want := []Content{1, ContentMine, 1, 2, 3, 2, ContentMine, 2, ContentMine}
	for i, c := range want {
		assert.Equal(t, c, b.Content(i), "tile %d", i)
	}
}

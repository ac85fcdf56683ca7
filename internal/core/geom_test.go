package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsBoardCells(t *testing.T) {
	// A 9x9 board drawn two columns per tile.
	board := NewRect(4, 3, 18, 9)

	for _, tc := range []struct {
		name string
		x, y int
		want bool
	}{
		{"first tile", 4, 3, true},
		{"last tile right half", 21, 11, true},
		{"left border", 3, 5, false},
		{"right edge is exclusive", 22, 5, false},
		{"hud row", 10, 2, false},
		{"footer row", 10, 12, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, board.Contains(tc.x, tc.y))
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(2, 4, 16, 12)

	assert.Equal(t, 18, r.Right())
	assert.Equal(t, 16, r.Bottom())
	cx, cy := r.Center()
	assert.Equal(t, [2]int{10, 10}, [2]int{cx, cy})

	screen := NewRect(0, 0, 80, 24)
	assert.Equal(t, NewRect(28, 8, 24, 8), screen.Centered(24, 8))
	assert.Equal(t, NewRect(-5, -2, 90, 28), screen.Centered(90, 28), "larger boxes overhang evenly")
}

func TestClampMinMax(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 8))
	assert.Equal(t, 8, Clamp(12, 0, 8))
	assert.Equal(t, 5, Clamp(5, 0, 8))
	assert.Equal(t, 3, Clamp(3, 3, 3))

	assert.Equal(t, -1, Min(-1, 4))
	assert.Equal(t, 4, Max(-1, 4))
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.True(t, f.Empty())

	f.Set(ActionFlag)
	f.AddClick(3, 4, ButtonSecondary)
	assert.True(t, f.Has(ActionFlag))
	assert.False(t, f.Has(ActionReveal))
	assert.Equal(t, []Click{{X: 3, Y: 4, Button: ButtonSecondary}}, f.Clicks)
	assert.False(t, f.Empty())

	f.Clear()
	assert.True(t, f.Empty())
}

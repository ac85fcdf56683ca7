package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		mines []int
		want  Stats
	}{
		{
			name: "empty board",
			w:    3, h: 3,
			want: Stats{Openings: 1, BV: 1},
		},
		{
			name: "single centre mine",
			w:    3, h: 3,
			mines: []int{4},
			want:  Stats{Mines: 1, Numbers: 8, Isolated: 8, BV: 8},
		},
		{
			// * . . . *
			name: "opening between mines",
			w:    5, h: 1,
			mines: []int{0, 4},
			want:  Stats{Mines: 2, Openings: 1, Numbers: 2, BV: 1},
		},
		{
			// . * . * .
			name: "split by mines",
			w:    5, h: 1,
			mines: []int{1, 3},
			want:  Stats{Mines: 2, Numbers: 3, Isolated: 3, BV: 3},
		},
		{
			// wall of mines in column 2
			name: "two regions",
			w:    5, h: 5,
			mines: []int{2, 7, 12, 17, 22},
			want:  Stats{Mines: 5, Openings: 2, Numbers: 10, BV: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardWithMines(t, tc.w, tc.h, tc.mines...)
			assert.Equal(t, tc.want, b.Stats())
		})
	}
}

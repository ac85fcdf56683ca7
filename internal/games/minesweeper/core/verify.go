package core

import (
	"errors"
	"fmt"
)

// ErrBoardInvariant is returned by Verify when a generated board is broken.
var ErrBoardInvariant = errors.New("minesweeper: board invariant violated")

// Verify checks a board generated around origin: exact mine count, a
// mine-free safe zone (origin alone on boards too dense for the full zone),
// and adjacency numbers matching the mines.
func (b *Board) Verify(origin int) error {
	if !b.InBoundsIndex(origin) {
		return outOfBounds("Verify", origin, b.Len())
	}

	mines := 0
	for _, c := range b.content {
		if c.IsMine() {
			mines++
		}
	}
	if mines != b.mineCount {
		return fmt.Errorf("%w: %d mines placed, want %d", ErrBoardInvariant, mines, b.mineCount)
	}

	zone := b.SafeZone(origin)
	if free := b.Len() - b.mineCount; len(zone) > free {
		zone = zone[:free]
	}
	for _, z := range zone {
		if b.content[z].IsMine() {
			x, y := b.ToCoordinate(z)
			return fmt.Errorf("%w: mine at (%d,%d) inside safe zone of %d", ErrBoardInvariant, x, y, origin)
		}
	}

	for i, c := range b.content {
		if c.IsMine() {
			continue
		}
		if want := b.adjacentMines(i); int(c) != want {
			x, y := b.ToCoordinate(i)
			return fmt.Errorf("%w: tile (%d,%d) shows %d, has %d adjacent mines", ErrBoardInvariant, x, y, c, want)
		}
	}
	return nil
}

// CheckCounters recounts the visible layer and compares it with the board's
// flag and reveal counters.
func (b *Board) CheckCounters() error {
	flags, flaggedMines, open := 0, 0, 0
	for i, t := range b.tiles {
		switch {
		case t == TileFlagged, t == TileBombWrongFlag:
			flags++
			if b.content[i].IsMine() {
				flaggedMines++
			}
		case t.IsOpen():
			if b.content[i].IsMine() {
				return fmt.Errorf("%w: mine open at index %d", ErrBoardInvariant, i)
			}
			open++
		}
	}
	switch {
	case flags != b.flagCount:
		return fmt.Errorf("%w: %d flags on board, counter says %d", ErrBoardInvariant, flags, b.flagCount)
	case flaggedMines != b.flaggedMineCount:
		return fmt.Errorf("%w: %d flagged mines, counter says %d", ErrBoardInvariant, flaggedMines, b.flaggedMineCount)
	case open != b.revealedCount:
		return fmt.Errorf("%w: %d open tiles, counter says %d", ErrBoardInvariant, open, b.revealedCount)
	}
	return nil
}

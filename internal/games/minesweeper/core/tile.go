// Package core implements the Minesweeper engine: board storage, mine
// generation with a safe first click, reveal and flood fill, flags, and the
// win/loss rules. It has no knowledge of terminals or input devices.
package core

import "fmt"

// Tile is the player-visible state of a board cell.
type Tile uint8

const (
	TileUnrevealed Tile = iota
	TileRevealed        // opened, zero adjacent mines
	TileFlagged
	TileQuestionUnrevealed
	TileQuestionRevealed // question mark over a safe tile, shown after a loss
	TileBombExposed      // unflagged mine shown after a loss
	TileBombTriggered    // the mine that ended the game
	TileBombWrongFlag    // flag placed on a safe tile
	TileNumber1
	TileNumber2
	TileNumber3
	TileNumber4
	TileNumber5
	TileNumber6
	TileNumber7
	TileNumber8
)

// NumberTile returns the visible tag for n adjacent mines (1..8).
func NumberTile(n int) Tile {
	if n < 1 || n > 8 {
		return TileRevealed
	}
	return TileNumber1 + Tile(n-1)
}

// Number returns the adjacency count shown by the tile, or 0.
func (t Tile) Number() int {
	if t >= TileNumber1 && t <= TileNumber8 {
		return int(t-TileNumber1) + 1
	}
	return 0
}

// IsOpen reports whether the tile shows its content.
func (t Tile) IsOpen() bool {
	return t == TileRevealed || t.Number() > 0
}

// IsMarked reports whether the tile carries a flag or a question mark.
func (t Tile) IsMarked() bool {
	return t == TileFlagged || t == TileQuestionUnrevealed
}

func (t Tile) String() string {
	switch t {
	case TileUnrevealed:
		return "Unrevealed"
	case TileRevealed:
		return "Revealed"
	case TileFlagged:
		return "Flagged"
	case TileQuestionUnrevealed:
		return "QuestionUnrevealed"
	case TileQuestionRevealed:
		return "QuestionRevealed"
	case TileBombExposed:
		return "BombExposed"
	case TileBombTriggered:
		return "BombTriggered"
	case TileBombWrongFlag:
		return "BombWrongFlag"
	}
	if n := t.Number(); n > 0 {
		return fmt.Sprintf("Number(%d)", n)
	}
	return "Unknown"
}

// Content is the hidden ground truth of a cell.
// Zero means empty, 1..8 is the adjacency count, ContentMine is a mine.
type Content int8

const (
	ContentEmpty Content = 0
	ContentMine  Content = -1
)

// IsMine reports whether the cell holds a mine.
func (c Content) IsMine() bool {
	return c == ContentMine
}

// Tile returns the visible tag a revealed cell with this content shows.
func (c Content) Tile() Tile {
	switch {
	case c == ContentEmpty:
		return TileRevealed
	case c > 0 && c <= 8:
		return NumberTile(int(c))
	default:
		return TileBombExposed
	}
}

func (c Content) String() string {
	switch {
	case c == ContentEmpty:
		return "Empty"
	case c == ContentMine:
		return "Mine"
	default:
		return fmt.Sprintf("Number(%d)", int(c))
	}
}

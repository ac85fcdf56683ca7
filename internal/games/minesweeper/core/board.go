package core

// NoTile marks an off-grid neighbour slot or a click outside the board.
const NoTile = -1

// Board is a fixed-size grid with a visible tile layer and a hidden content
// layer. Cells are stored in row-major order: index = y*width + x.
type Board struct {
	width  int
	height int

	tiles   []Tile
	content []Content

	mineCount        int
	flagCount        int
	flaggedMineCount int
	revealedCount    int
}

// NewBoard allocates a board and resets it to the given size.
func NewBoard(width, height, mines int) (*Board, error) {
	b := &Board{}
	if err := b.Reset(width, height, mines); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset overwrites the board: all tiles Unrevealed, all content Empty and
// every counter zeroed. Mines are placed later by PlaceMines.
func (b *Board) Reset(width, height, mines int) error {
	if width <= 0 || height <= 0 || mines < 0 || mines >= width*height {
		return &DimensionsError{Width: width, Height: height, Mines: mines}
	}

	n := width * height
	b.width = width
	b.height = height
	if cap(b.tiles) >= n {
		b.tiles = b.tiles[:n]
		b.content = b.content[:n]
	} else {
		b.tiles = make([]Tile, n)
		b.content = make([]Content, n)
	}
	for i := range b.tiles {
		b.tiles[i] = TileUnrevealed
		b.content[i] = ContentEmpty
	}

	b.mineCount = mines
	b.flagCount = 0
	b.flaggedMineCount = 0
	b.revealedCount = 0
	return nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of tiles.
func (b *Board) Len() int { return len(b.tiles) }

// MineCount returns the number of mines the board holds or will hold.
func (b *Board) MineCount() int { return b.mineCount }

// FlagCount returns the number of Flagged tiles.
func (b *Board) FlagCount() int { return b.flagCount }

// FlaggedMineCount returns the number of Flagged tiles that hold a mine.
func (b *Board) FlaggedMineCount() int { return b.flaggedMineCount }

// RevealedCount returns the number of safe tiles opened so far.
func (b *Board) RevealedCount() int { return b.revealedCount }

// MinesRemaining is the mine counter readout: mines minus flags.
// It goes negative when the player over-flags.
func (b *Board) MinesRemaining() int { return b.mineCount - b.flagCount }

// Tile returns the visible state at index i, or TileUnrevealed when out of range.
func (b *Board) Tile(i int) Tile {
	if !b.InBoundsIndex(i) {
		return TileUnrevealed
	}
	return b.tiles[i]
}

// Tiles returns a copy of the visible layer.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Content returns the hidden content at index i. Renderers should not call
// this; it exists for verification and debugging.
func (b *Board) Content(i int) Content {
	if !b.InBoundsIndex(i) {
		return ContentEmpty
	}
	return b.content[i]
}

// ToCoordinate converts an index to (x, y). Callers check bounds first.
func (b *Board) ToCoordinate(i int) (x, y int) {
	return i % b.width, i / b.width
}

// ToIndex converts (x, y) to an index. Callers check bounds first.
func (b *Board) ToIndex(x, y int) int {
	return y*b.width + x
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// InBoundsIndex reports whether i is a valid tile index.
func (b *Board) InBoundsIndex(i int) bool {
	return i >= 0 && i < len(b.tiles)
}

// Neighbors returns the 3x3 block centred on i, the tile itself included at
// slot 4, with off-grid slots set to NoTile. The second result counts the
// mines in the block. Callers that want the surrounding tiles only must skip
// slot 4.
func (b *Board) Neighbors(i int) ([9]int, int) {
	var out [9]int
	x, y := b.ToCoordinate(i)
	mines := 0
	slot := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !b.InBounds(nx, ny) {
				out[slot] = NoTile
				slot++
				continue
			}
			j := b.ToIndex(nx, ny)
			out[slot] = j
			if b.content[j].IsMine() {
				mines++
			}
			slot++
		}
	}
	return out, mines
}

// adjacentMines counts mines around i, excluding i itself.
func (b *Board) adjacentMines(i int) int {
	nb, mines := b.Neighbors(i)
	if b.content[nb[4]].IsMine() {
		mines--
	}
	return mines
}

// recountFlags rebuilds the flag counters from the visible layer.
func (b *Board) recountFlags() {
	b.flagCount = 0
	b.flaggedMineCount = 0
	for i, t := range b.tiles {
		if t != TileFlagged {
			continue
		}
		b.flagCount++
		if b.content[i].IsMine() {
			b.flaggedMineCount++
		}
	}
}

package core

// Layout places the board on a pixel (or terminal cell) surface.
type Layout struct {
	OriginX int // left edge of tile 0
	OriginY int // top edge of tile 0
	TileW   int
	TileH   int
}

// DefaultLayout maps one tile to a 2x1 block of terminal cells at the origin.
func DefaultLayout() Layout {
	return Layout{TileW: 2, TileH: 1}
}

// PixelToGrid converts a surface position to a tile index on b, or NoTile
// when the position falls outside the board.
func (l Layout) PixelToGrid(b *Board, px, py int) int {
	if l.TileW <= 0 || l.TileH <= 0 {
		return NoTile
	}
	dx, dy := px-l.OriginX, py-l.OriginY
	if dx < 0 || dy < 0 {
		return NoTile
	}
	x, y := dx/l.TileW, dy/l.TileH
	if !b.InBounds(x, y) {
		return NoTile
	}
	return b.ToIndex(x, y)
}

// TileOrigin returns the surface position of tile i's top-left corner.
func (l Layout) TileOrigin(b *Board, i int) (px, py int) {
	x, y := b.ToCoordinate(i)
	return l.OriginX + x*l.TileW, l.OriginY + y*l.TileH
}

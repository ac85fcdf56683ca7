package core

import "math/rand"

// SafeZone returns the in-bounds 3x3 neighbourhood of origin with origin
// first. Its size is 9 for an interior tile, 6 on an edge and 4 in a corner.
func (b *Board) SafeZone(origin int) []int {
	nb, _ := b.Neighbors(origin)
	zone := make([]int, 0, 9)
	zone = append(zone, origin)
	for slot, j := range nb {
		if slot == 4 || j == NoTile {
			continue
		}
		zone = append(zone, j)
	}
	return zone
}

// PlaceMines fills the content layer with exactly MineCount mines, keeping
// origin and its 3x3 neighbourhood mine-free, then computes adjacency
// numbers. When the board is too dense for the whole neighbourhood to stay
// clear, origin is kept clear and as many neighbours as the free tiles allow.
//
// Mines start in the lowest indices. The last len(zone) slots are held back
// from a Fisher-Yates shuffle of the rest, so they stay empty; neighbourhood
// tiles outside that tail then swap their values into it.
func (b *Board) PlaceMines(origin int, rng *rand.Rand) error {
	if !b.InBoundsIndex(origin) {
		return outOfBounds("PlaceMines", origin, b.Len())
	}

	n := b.Len()
	for i := range b.content {
		if i < b.mineCount {
			b.content[i] = ContentMine
		} else {
			b.content[i] = ContentEmpty
		}
	}

	zone := b.SafeZone(origin)
	if free := n - b.mineCount; len(zone) > free {
		zone = zone[:free]
	}
	limit := n - len(zone)

	for i := limit - 1; i > 0; i-- {
		r := rng.Intn(i + 1)
		b.content[i], b.content[r] = b.content[r], b.content[i]
	}

	inZone := make(map[int]bool, len(zone))
	for _, z := range zone {
		inZone[z] = true
	}
	spare := make([]int, 0, len(zone))
	for s := limit; s < n; s++ {
		if !inZone[s] {
			spare = append(spare, s)
		}
	}
	k := 0
	for _, z := range zone {
		if z >= limit {
			continue
		}
		s := spare[k]
		k++
		b.content[z], b.content[s] = b.content[s], b.content[z]
	}

	b.GenerateNumbers()
	b.recountFlags()
	return nil
}

// GenerateNumbers sets every non-mine cell to its adjacent mine count.
func (b *Board) GenerateNumbers() {
	for i := range b.content {
		if b.content[i].IsMine() {
			continue
		}
		b.content[i] = Content(b.adjacentMines(i))
	}
}

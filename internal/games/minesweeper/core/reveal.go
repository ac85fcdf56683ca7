package core

// RevealResult is the outcome of opening one tile.
type RevealResult int

const (
	RevealNoOp     RevealResult = iota // tile was not Unrevealed
	RevealHitMine                      // tile holds a mine; caller ends the game
	RevealRevealed                     // tile opened
)

func (r RevealResult) String() string {
	switch r {
	case RevealNoOp:
		return "NoOp"
	case RevealHitMine:
		return "HitMine"
	case RevealRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// MarkResult is the outcome of a flag or question-mark toggle.
type MarkResult int

const (
	MarkNoOp MarkResult = iota
	MarkFlagged
	MarkUnflagged
	MarkQuestioned
	MarkCleared
)

// Reveal opens tile i. Only Unrevealed tiles change; everything else is a
// NoOp. A mine is reported as HitMine and left untouched.
func (b *Board) Reveal(i int) (RevealResult, error) {
	if !b.InBoundsIndex(i) {
		return RevealNoOp, outOfBounds("Reveal", i, b.Len())
	}
	return b.reveal(i), nil
}

func (b *Board) reveal(i int) RevealResult {
	if b.tiles[i] != TileUnrevealed {
		return RevealNoOp
	}
	if b.content[i].IsMine() {
		return RevealHitMine
	}
	b.tiles[i] = b.content[i].Tile()
	b.revealedCount++
	return RevealRevealed
}

// ToggleFlag moves tile i between Unrevealed and Flagged. Other states are
// left alone.
func (b *Board) ToggleFlag(i int) (MarkResult, error) {
	if !b.InBoundsIndex(i) {
		return MarkNoOp, outOfBounds("ToggleFlag", i, b.Len())
	}
	switch b.tiles[i] {
	case TileUnrevealed:
		b.setFlag(i, true)
		b.tiles[i] = TileFlagged
		return MarkFlagged, nil
	case TileFlagged:
		b.setFlag(i, false)
		b.tiles[i] = TileUnrevealed
		return MarkUnflagged, nil
	}
	return MarkNoOp, nil
}

// CycleMark steps tile i through Unrevealed, Flagged, QuestionUnrevealed and
// back to Unrevealed.
func (b *Board) CycleMark(i int) (MarkResult, error) {
	if !b.InBoundsIndex(i) {
		return MarkNoOp, outOfBounds("CycleMark", i, b.Len())
	}
	switch b.tiles[i] {
	case TileUnrevealed:
		b.setFlag(i, true)
		b.tiles[i] = TileFlagged
		return MarkFlagged, nil
	case TileFlagged:
		b.setFlag(i, false)
		b.tiles[i] = TileQuestionUnrevealed
		return MarkQuestioned, nil
	case TileQuestionUnrevealed:
		b.tiles[i] = TileUnrevealed
		return MarkCleared, nil
	}
	return MarkNoOp, nil
}

func (b *Board) setFlag(i int, on bool) {
	d := 1
	if !on {
		d = -1
	}
	b.flagCount += d
	if b.content[i].IsMine() {
		b.flaggedMineCount += d
	}
}

// FloodReveal opens the region around an empty origin breadth-first and
// returns how many tiles it opened, origin excluded. Every neighbour of a
// zero tile is queued and passed to reveal; flagged or question-marked
// tiles stay closed but do not stop the expansion. Nothing happens if origin
// is not empty.
func (b *Board) FloodReveal(origin int) (int, error) {
	if !b.InBoundsIndex(origin) {
		return 0, outOfBounds("FloodReveal", origin, b.Len())
	}
	if b.content[origin] != ContentEmpty {
		return 0, nil
	}
	return b.flood(origin), nil
}

func (b *Board) flood(origin int) int {
	visited := make([]bool, b.Len())
	queue := make([]int, 0, b.Len())
	visited[origin] = true
	queue = append(queue, origin)

	opened := 0
	for head := 0; head < len(queue); head++ {
		t := queue[head]
		nb, mines := b.Neighbors(t)
		if mines != 0 {
			continue
		}
		for _, j := range nb {
			if j == NoTile || visited[j] {
				continue
			}
			visited[j] = true
			queue = append(queue, j)
			if b.reveal(j) == RevealRevealed {
				opened++
			}
		}
	}
	return opened
}

// CheckWinCondition reports whether every safe tile is open.
func (b *Board) CheckWinCondition() bool {
	return b.revealedCount == b.Len()-b.mineCount
}

// LoseGame paints the end-of-game board: unflagged mines become
// BombExposed, flags on safe tiles become BombWrongFlag, question marks on
// safe tiles become QuestionRevealed, and trigger becomes BombTriggered
// whatever it showed before.
func (b *Board) LoseGame(trigger int) error {
	if !b.InBoundsIndex(trigger) {
		return outOfBounds("LoseGame", trigger, b.Len())
	}
	for i, c := range b.content {
		switch {
		case c.IsMine() && b.tiles[i] != TileFlagged:
			b.tiles[i] = TileBombExposed
		case !c.IsMine() && b.tiles[i] == TileFlagged:
			b.tiles[i] = TileBombWrongFlag
		case !c.IsMine() && b.tiles[i] == TileQuestionUnrevealed:
			b.tiles[i] = TileQuestionRevealed
		}
	}
	b.tiles[trigger] = TileBombTriggered
	return nil
}

// ChordResult reports what a chord opened.
type ChordResult struct {
	Opened int // tiles opened, flood fills included
	Mine   int // index of the mine hit, or NoTile
}

// Chord opens the closed neighbours of an open Number(n) tile when exactly
// n of its neighbours are flagged. It stops at the first mine it opens.
func (b *Board) Chord(i int) (ChordResult, error) {
	res := ChordResult{Mine: NoTile}
	if !b.InBoundsIndex(i) {
		return res, outOfBounds("Chord", i, b.Len())
	}
	n := b.tiles[i].Number()
	if n == 0 {
		return res, nil
	}

	nb, _ := b.Neighbors(i)
	flags := 0
	for slot, j := range nb {
		if slot != 4 && j != NoTile && b.tiles[j] == TileFlagged {
			flags++
		}
	}
	if flags != n {
		return res, nil
	}

	for slot, j := range nb {
		if slot == 4 || j == NoTile {
			continue
		}
		switch b.reveal(j) {
		case RevealHitMine:
			res.Mine = j
			return res, nil
		case RevealRevealed:
			res.Opened++
			if b.content[j] == ContentEmpty {
				res.Opened += b.flood(j)
			}
		}
	}
	return res, nil
}

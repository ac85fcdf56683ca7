package core

// Stats describes a generated board.
type Stats struct {
	Mines    int
	Openings int // connected regions of empty tiles
	Numbers  int // numbered tiles
	Isolated int // numbered tiles that touch no empty tile
	BV       int // 3BV: clicks needed to clear the board without flags
}

// Stats computes board statistics. It is meaningful only after PlaceMines.
func (b *Board) Stats() Stats {
	st := Stats{Mines: b.mineCount}
	n := b.Len()
	inOpening := make([]bool, n)
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if b.content[start] != ContentEmpty || inOpening[start] {
			continue
		}
		st.Openings++
		inOpening[start] = true
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			nb, _ := b.Neighbors(queue[head])
			for _, j := range nb {
				if j == NoTile || inOpening[j] || b.content[j] != ContentEmpty {
					continue
				}
				inOpening[j] = true
				queue = append(queue, j)
			}
		}
	}

	for i, c := range b.content {
		if c <= ContentEmpty {
			continue
		}
		st.Numbers++
		touches := false
		nb, _ := b.Neighbors(i)
		for _, j := range nb {
			if j != NoTile && inOpening[j] {
				touches = true
				break
			}
		}
		if !touches {
			st.Isolated++
		}
	}
	st.BV = st.Openings + st.Isolated
	return st
}

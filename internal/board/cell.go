package board

import "strconv"

// Cell holds either a mine or the number of mines among its neighbors
type Cell struct {
	mine  bool
	count int
}

func MineCell() Cell {
	return Cell{mine: true}
}

// CountCell panics on counts outside 0..8, which no board can produce
func CountCell(n int) Cell {
	if n < 0 || n > 8 {
		panic("board: neighbor count out of range: " + strconv.Itoa(n))
	}
	return Cell{count: n}
}

func (c Cell) Mine() bool {
	return c.mine
}

// Count is the neighbor-mine count; always 0 for a mine
func (c Cell) Count() int {
	return c.count
}

func (c Cell) String() string {
	if c.mine {
		return MineGlyph
	}
	return strconv.Itoa(c.count)
}

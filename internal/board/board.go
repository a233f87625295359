package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize      = errors.New("board size must be at least 1")
	ErrInvalidMineCount = errors.New("mine count must be between 1 and size*size-1")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
)

// Coord identifies a single cell
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Outcome is the result of revealing a cell
type Outcome int

const (
	Safe Outcome = iota
	Detonated
)

func (o Outcome) String() string {
	switch o {
	case Safe:
		return "safe"
	case Detonated:
		return "detonated"
	default:
		return "unknown"
	}
}

type Board struct {
	size     int
	mines    int
	cells    [][]Cell
	revealed map[Coord]struct{}
}

// New places mines by rejection sampling and computes neighbor counts.
// A nil src falls back to a randomly seeded source.
func New(size, mines int, src Source) (*Board, error) {
	if err := validate(size, mines); err != nil {
		return nil, err
	}
	if src == nil {
		src = randomSource()
	}

	b := newEmpty(size, mines)

	placed := 0
	for placed < mines {
		loc := src.IntN(size * size)
		row, col := loc/size, loc%size

		if !b.cells[row][col].Mine() {
			b.cells[row][col] = MineCell()
			placed++
		}
	}

	b.assignCounts()
	return b, nil
}

// FromMines builds a board with mines at fixed coordinates
func FromMines(size int, mines []Coord) (*Board, error) {
	if err := validate(size, len(mines)); err != nil {
		return nil, err
	}

	b := newEmpty(size, len(mines))
	for _, m := range mines {
		if !b.inBounds(m.Row, m.Col) {
			return nil, fmt.Errorf("mine at %s: %w", m, ErrOutOfBounds)
		}
		if b.cells[m.Row][m.Col].Mine() {
			return nil, fmt.Errorf("duplicate mine at %s", m)
		}
		b.cells[m.Row][m.Col] = MineCell()
	}

	b.assignCounts()
	return b, nil
}

func validate(size, mines int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if mines < 1 || mines >= size*size {
		return fmt.Errorf("%w: got %d for size %d", ErrInvalidMineCount, mines, size)
	}
	return nil
}

func newEmpty(size, mines int) *Board {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Board{
		size:     size,
		mines:    mines,
		cells:    cells,
		revealed: make(map[Coord]struct{}),
	}
}

func (b *Board) assignCounts() {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c].Mine() {
				continue
			}
			b.cells[r][c] = CountCell(b.neighboringMines(r, c))
		}
	}
}

func (b *Board) neighboringMines(row, col int) int {
	count := 0
	b.eachNeighbor(row, col, func(r, c int) {
		if b.cells[r][c].Mine() {
			count++
		}
	})
	return count
}

// eachNeighbor visits the clamped 3x3 neighborhood, excluding the cell itself
func (b *Board) eachNeighbor(row, col int, fn func(r, c int)) {
	for r := max(0, row-1); r <= min(b.size-1, row+1); r++ {
		for c := max(0, col-1); c <= min(b.size-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			fn(r, c)
		}
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Reveal digs at (row, col). Zero-count cells cascade to their neighbors
// through an explicit stack; mines and numbered cells never cascade.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if !b.inBounds(row, col) {
		return Safe, fmt.Errorf("reveal %s on %dx%d board: %w", Coord{row, col}, b.size, b.size, ErrOutOfBounds)
	}

	b.revealed[Coord{row, col}] = struct{}{}

	cell := b.cells[row][col]
	if cell.Mine() {
		return Detonated, nil
	}
	if cell.Count() > 0 {
		return Safe, nil
	}

	stack := []Coord{{row, col}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.eachNeighbor(cur.Row, cur.Col, func(r, c int) {
			next := Coord{r, c}
			if _, seen := b.revealed[next]; seen {
				return
			}
			b.revealed[next] = struct{}{}
			if b.cells[r][c].Count() == 0 && !b.cells[r][c].Mine() {
				stack = append(stack, next)
			}
		})
	}

	return Safe, nil
}

// RevealAll marks every cell revealed, for the final display after a loss
func (b *Board) RevealAll() {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			b.revealed[Coord{r, c}] = struct{}{}
		}
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) MineCount() int {
	return b.mines
}

func (b *Board) RevealedCount() int {
	return len(b.revealed)
}

// TotalSafeCells is the number of reveals needed to win
func (b *Board) TotalSafeCells() int {
	return b.size*b.size - b.mines
}

// Won reports whether every non-mine cell is revealed
func (b *Board) Won() bool {
	return b.RevealedCount() == b.TotalSafeCells()
}

func (b *Board) IsRevealed(row, col int) bool {
	_, ok := b.revealed[Coord{row, col}]
	return ok
}

// CellAt returns the content at (row, col); callers must pass in-range coordinates
func (b *Board) CellAt(row, col int) Cell {
	return b.cells[row][col]
}

// Mines lists mine coordinates in row-major order
func (b *Board) Mines() []Coord {
	mines := make([]Coord, 0, b.mines)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c].Mine() {
				mines = append(mines, Coord{r, c})
			}
		}
	}
	return mines
}

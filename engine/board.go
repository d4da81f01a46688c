package engine

import (
	"fmt"
	"strings"
)

const (
	litRune   = 'O'
	unlitRune = '.'
)

type Cell struct {
	Coord Coord
	Lit   bool
}

// Board is Height rows of Width cells. A published Board is never modified;
// FlipAround returns a deep copy.
type Board struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func newBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Invalid board size: %dx%d", width, height))
	}

	board := Board{
		Width:  width,
		Height: height,
		Cells:  make([][]Cell, height),
	}

	for i := 0; i < height; i++ {
		board.Cells[i] = make([]Cell, width)
		for j := 0; j < width; j++ {
			board.Cells[i][j] = Cell{Coord: Coord{X: j, Y: i}}
		}
	}

	return board
}

// CreateBoard draws one value per cell from src, in row-major order, and
// lights the cell when the draw is below cfg.ChanceLightStartsOn.
func CreateBoard(cfg Config, src Source) Board {
	board := newBoard(cfg.Cols, cfg.Rows)

	for i := 0; i < board.Height; i++ {
		for j := 0; j < board.Width; j++ {
			board.Cells[i][j].Lit = src.Float64() < cfg.ChanceLightStartsOn
		}
	}

	return board
}

func (b Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

func (b Board) IsLit(c Coord) bool {
	return b.Cells[c.Y][c.X].Lit
}

func (b Board) clone() Board {
	next := Board{
		Width:  b.Width,
		Height: b.Height,
		Cells:  make([][]Cell, b.Height),
	}

	for i := 0; i < b.Height; i++ {
		next.Cells[i] = make([]Cell, b.Width)
		copy(next.Cells[i], b.Cells[i])
	}

	return next
}

// FlipAround returns a copy of b with c and its in-bounds orthogonal
// neighbours negated, along with the coordinates that were flipped.
// Neighbours outside the grid are skipped. b itself is left untouched.
func (b Board) FlipAround(c Coord) (Board, []Coord) {
	next := b.clone()
	flipped := make([]Coord, 0, 1+len(Directions))

	flip := func(target Coord) {
		if !next.InBounds(target) {
			return
		}
		cell := &next.Cells[target.Y][target.X]
		cell.Lit = !cell.Lit
		flipped = append(flipped, target)
	}

	flip(c)
	for _, dir := range Directions {
		flip(GetNeighbor(dir, c))
	}

	return next, flipped
}

// AllOff reports whether no cell is lit.
func (b Board) AllOff() bool {
	return b.LitCount() == 0
}

func (b Board) LitCount() int {
	count := 0
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell.Lit {
				count++
			}
		}
	}
	return count
}

// String renders the board one row per line, 'O' for lit and '.' for off.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Lit {
				sb.WriteRune(litRune)
			} else {
				sb.WriteRune(unlitRune)
			}
		}
	}
	return sb.String()
}

// ParseBoard is the inverse of Board.String. All rows must have the same
// non-zero length.
func ParseBoard(rows ...string) (Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Board{}, fmt.Errorf("parse board: %w: empty board", ErrInvalidConfig)
	}

	board := newBoard(len(rows[0]), len(rows))

	for i, row := range rows {
		if len(row) != board.Width {
			return Board{}, fmt.Errorf("parse board: row %d has %d cells, want %d", i, len(row), board.Width)
		}
		for j, r := range row {
			switch r {
			case litRune:
				board.Cells[i][j].Lit = true
			case unlitRune:
			default:
				return Board{}, fmt.Errorf("parse board: invalid cell %q at %s", r, Coord{X: j, Y: i})
			}
		}
	}

	return board, nil
}

func MustParseBoard(rows ...string) Board {
	board, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return board
}

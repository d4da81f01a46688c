package engine

import "fmt"

// Coord identifies a cell: X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

func GetNeighbor(dir Direction, from Coord) Coord {
	offset := DirToOffset(dir)
	return Coord{X: from.X + offset.X, Y: from.Y + offset.Y}
}

// String renders the coordinate row first, e.g. "2-0".
func (c Coord) String() string {
	return fmt.Sprintf("%d-%d", c.Y, c.X)
}

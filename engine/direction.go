package engine

import (
	"fmt"
	"image"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four orthogonal neighbours flipped by a toggle.
var Directions = []Direction{Up, Down, Left, Right}

func DirToOffset(dir Direction) image.Point {
	switch dir {
	case Up:
		return image.Point{X: 0, Y: -1}
	case Down:
		return image.Point{X: 0, Y: 1}
	case Left:
		return image.Point{X: -1, Y: 0}
	case Right:
		return image.Point{X: 1, Y: 0}
	default:
		panic(fmt.Sprintf("Invalid direction: %d", dir))
	}
}


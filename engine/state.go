package engine

import "fmt"

type State struct {
	Board Board
	Moves int
}

func (s State) Width() int {
	return s.Board.Width
}

func (s State) Height() int {
	return s.Board.Height
}

type Status int

const (
	Playing Status = iota
	Won
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

/**
 * Lights Out engine (game logic only, no rendering)
 */

type Engine struct {
	State     State
	OnToggled func(state State, flipped []Coord)
	OnWon     func(state State)

	log logrus.FieldLogger
}

// New builds an engine around a freshly generated board. It panics on
// non-positive dimensions; callers validate cfg first.
func New(cfg Config, src Source, log logrus.FieldLogger) *Engine {
	return NewFromBoard(CreateBoard(cfg, src), log)
}

func NewFromBoard(board Board, log logrus.FieldLogger) *Engine {
	if board.Width <= 0 || board.Height <= 0 {
		panic(fmt.Sprintf("Invalid board size: %dx%d", board.Width, board.Height))
	}

	if log == nil {
		log = DiscardLogger()
	}

	e := &Engine{
		State: State{Board: board},
		log:   log,
	}

	e.log.WithFields(logrus.Fields{
		"rows":   board.Height,
		"cols":   board.Width,
		"lit":    board.LitCount(),
		"status": e.Status(),
	}).Debug("board created")

	return e
}

// DiscardLogger stands in for a nil logger.
func DiscardLogger() *logrus.Logger {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

func (e *Engine) HasWon() bool {
	return e.State.Board.AllOff()
}

func (e *Engine) Status() Status {
	if e.HasWon() {
		return Won
	}
	return Playing
}

// Toggle flips c and its orthogonal neighbours. The current state is replaced
// in one step; on error it is left as it was.
func (e *Engine) Toggle(c Coord) error {
	if e.HasWon() {
		return fmt.Errorf("toggle %s: %w", c, ErrGameWon)
	}

	if !e.State.Board.InBounds(c) {
		return fmt.Errorf("toggle %s: %w", c, ErrOutOfBounds)
	}

	board, flipped := e.State.Board.FlipAround(c)
	e.State = State{
		Board: board,
		Moves: e.State.Moves + 1,
	}

	e.log.WithFields(logrus.Fields{
		"coord":   c,
		"flipped": flipped,
		"moves":   e.State.Moves,
	}).Debug("toggled")

	if e.OnToggled != nil {
		e.OnToggled(e.State, flipped)
	}

	if e.HasWon() {
		e.log.WithField("moves", e.State.Moves).Info("game won")
		if e.OnWon != nil {
			e.OnWon(e.State)
		}
	}

	return nil
}

package ui

import (
	"fmt"
	"image"

	"lightsout/controller"
	"lightsout/engine"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const (
	DefaultCellSize = unit.Dp(75)
	statusHeight    = unit.Dp(40)
	VictoryMessage  = "Congratulations! You won!"
)

// Board renders the grid of cells, or only the victory message once the game
// is won.
type Board struct {
	ctrl       *controller.Controller
	theme      *material.Theme
	clickables []widget.Clickable
	cellSize   unit.Dp
}

func NewBoard(ctrl *controller.Controller, cellSize unit.Dp) *Board {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	theme.Palette.Fg = whiteColor

	state := ctrl.State()

	return &Board{
		ctrl:       ctrl,
		theme:      theme,
		clickables: make([]widget.Clickable, state.Width()*state.Height()),
		cellSize:   cellSize,
	}
}

// WindowSize is the window size needed to show every cell and the status line.
func WindowSize(cfg engine.Config, cellSize unit.Dp) (unit.Dp, unit.Dp) {
	return unit.Dp(cfg.Cols) * cellSize, unit.Dp(cfg.Rows)*cellSize + statusHeight
}

// Watch calls invalidate after every toggle and once more on the win, so the
// window redraws without waiting for the next input event.
func (b *Board) Watch(invalidate func()) {
	e := b.ctrl.Engine()
	e.OnToggled = func(engine.State, []engine.Coord) {
		invalidate()
	}
	e.OnWon = func(engine.State) {
		invalidate()
	}
}

func (b *Board) clickable(c engine.Coord) *widget.Clickable {
	return &b.clickables[c.Y*b.ctrl.State().Width()+c.X]
}

func (b *Board) cell(c engine.Coord) Cell {
	return Cell{
		IsLit:      b.ctrl.State().Board.IsLit(c),
		OnActivate: b.ctrl.CellHandler(c),
	}
}

func (b *Board) Layout(gtx layout.Context) layout.Dimensions {
	b.update(gtx)

	paint.Fill(gtx.Ops, backgroundColor)

	if b.ctrl.HasWon() {
		return b.layoutVictory(gtx)
	}

	return b.layoutGrid(gtx)
}

// update delivers pending clicks before anything is drawn, so the frame shows
// the state after them. Cells are visited in row-major order, not in the order
// clicks arrived; Clickable keeps no timestamps. Once a click wins, the rest
// of the frame's clicks are dropped.
func (b *Board) update(gtx layout.Context) {
	state := b.ctrl.State()
	for i := 0; i < state.Height(); i++ {
		for j := 0; j < state.Width(); j++ {
			if b.ctrl.HasWon() {
				return
			}
			c := engine.Coord{X: j, Y: i}
			b.cell(c).Update(gtx, b.clickable(c))
		}
	}
}

func (b *Board) layoutGrid(gtx layout.Context) layout.Dimensions {
	state := b.ctrl.State()
	size := gtx.Dp(b.cellSize)

	for i := 0; i < state.Height(); i++ {
		for j := 0; j < state.Width(); j++ {
			c := engine.Coord{X: j, Y: i}

			stack := op.Offset(image.Point{X: j * size, Y: i * size}).Push(gtx.Ops)
			b.cell(c).Layout(gtx, b.clickable(c), size)
			stack.Pop()
		}
	}

	gridSize := image.Point{X: state.Width() * size, Y: state.Height() * size}

	stack := op.Offset(image.Point{X: 0, Y: gridSize.Y}).Push(gtx.Ops)
	label := material.Body1(b.theme, fmt.Sprintf("Moves: %d", state.Moves))
	label.Alignment = text.Middle
	gtx.Constraints = layout.Exact(image.Point{X: gridSize.X, Y: gtx.Dp(statusHeight)})
	layout.Center.Layout(gtx, label.Layout)
	stack.Pop()

	return layout.Dimensions{
		Size: image.Point{X: gridSize.X, Y: gridSize.Y + gtx.Dp(statusHeight)},
	}
}

func (b *Board) layoutVictory(gtx layout.Context) layout.Dimensions {
	title := material.H4(b.theme, VictoryMessage)
	title.Color = litColor
	title.Alignment = text.Middle
	return layout.Center.Layout(gtx, title.Layout)
}

package ui

import (
	"image"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
)

// share of the cell square actually painted; the rest is the gap
const cellFillPct = 0.92

// Cell draws one light. It keeps no state: the clickable belongs to the
// board and OnActivate is bound to the cell's coordinate by the caller.
type Cell struct {
	IsLit      bool
	OnActivate func()
}

// Update runs OnActivate once per click registered on click since the last
// frame and reports whether there was any.
func (c Cell) Update(gtx layout.Context, click *widget.Clickable) bool {
	activated := false
	for click.Clicked(gtx) {
		activated = true
		if c.OnActivate != nil {
			c.OnActivate()
		}
	}
	return activated
}

// Layout paints the cell as a size×size square.
func (c Cell) Layout(gtx layout.Context, click *widget.Clickable, size int) layout.Dimensions {
	return click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gap := int(float32(size) * (1 - cellFillPct) / 2)

		square := image.Rectangle{
			Min: image.Point{X: gap, Y: gap},
			Max: image.Point{X: size - gap, Y: size - gap},
		}

		paint.FillShape(gtx.Ops, getColor(c.IsLit, click.Hovered()), clip.UniformRRect(square, size/10).Op(gtx.Ops))
		pointer.CursorPointer.Add(gtx.Ops)

		return layout.Dimensions{
			Size: image.Point{X: size, Y: size},
		}
	})
}

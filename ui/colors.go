package ui

import "image/color"

var backgroundColor = color.NRGBA{R: 45, G: 45, B: 60, A: 255}
var litColor = color.NRGBA{R: 255, G: 220, B: 60, A: 255}
var litHoverColor = color.NRGBA{R: 255, G: 235, B: 140, A: 255}
var unlitColor = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
var unlitHoverColor = color.NRGBA{R: 60, G: 60, B: 80, A: 255}
var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func getColor(isLit, hovered bool) color.NRGBA {
	switch {
	case isLit && hovered:
		return litHoverColor
	case isLit:
		return litColor
	case hovered:
		return unlitHoverColor
	default:
		return unlitColor
	}
}

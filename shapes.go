package plot

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 4

// PointFunc draws one glyph of the given size centered on pos.
type PointFunc func(pos svg.Pos, size float64) svg.Element

func GetCircle(pos svg.Pos, size float64) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(currentColour)
	el.Radius = size / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, size float64) svg.Element {
	half := size / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(currentColour)

	return el.AsElement()
}

func GetDiamond(pos svg.Pos, size float64) svg.Element {
	half := size / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(currentColour)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

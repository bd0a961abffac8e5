package plot

import (
	"math"
	"sort"

	"github.com/midbel/svg"
)

// Bars draws one vertical bar per sample from a zero baseline. X is the bar
// position, Y the bar value. Bars never draw outside the destination
// rectangle so their residual contribution is zero.
type Bars struct {
	Title string
	Fill  Palette
	Width float64

	Points []Point
}

func (b Bars) Name() string {
	return b.Title
}

func (b Bars) Bounds() Rect {
	if len(b.Points) == 0 {
		return EmptyRect()
	}
	var (
		r    = boundsOf(b.Points)
		half = b.slot() * b.width() / 2
	)
	r.X.Min -= half
	r.X.Max += half
	r.Y = r.Y.Union(NewRange(0, 0))
	return r
}

func (b Bars) Residual(_, _ Rect) Residual {
	return Residual{}
}

func (b Bars) Render(t Transform) svg.Element {
	var (
		grp  = getBaseGroup("", "bar")
		half = b.slot() * b.width() / 2
		zero = t.Y(0)
	)
	for i, pt := range b.Points {
		if math.IsNaN(pt.Y) {
			continue
		}
		var (
			x0 = t.X(pt.X - half)
			x1 = t.X(pt.X + half)
			y  = t.Y(pt.Y)
			el svg.Rect
		)
		top, bot := y, zero
		if top > bot {
			top, bot = bot, top
		}
		el.Pos = svg.NewPos(x0, top)
		el.Dim = svg.NewDim(x1-x0, bot-top)
		el.Fill = svg.NewFill(b.Fill.At(i))
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (b Bars) LegendIcon(w, h float64) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(0, h*0.2)
	el.Dim = svg.NewDim(w, h*0.6)
	el.Fill = svg.NewFill(b.Fill.At(0))
	return el.AsElement()
}

func (b Bars) IconSize() (float64, float64) {
	return 12, 8
}

func (b Bars) Value(src Rect) (float64, bool) {
	return meanIn(b.Points, src.X)
}

func (b Bars) width() float64 {
	if b.Width <= 0 || b.Width > 1 {
		return 1
	}
	return b.Width
}

// slot is the narrowest spacing between adjacent bar positions; a single
// bar gets a unit slot.
func (b Bars) slot() float64 {
	if len(b.Points) < 2 {
		return 1
	}
	xs := make([]float64, 0, len(b.Points))
	for _, pt := range b.Points {
		xs = append(xs, pt.X)
	}
	sort.Float64s(xs)
	min := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < min {
			min = d
		}
	}
	if math.IsInf(min, 1) {
		return 1
	}
	return min
}

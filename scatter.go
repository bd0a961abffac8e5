package plot

import (
	"math"

	"github.com/midbel/svg"
)

// Scatter draws one glyph per sample.
type Scatter struct {
	Title string
	Color string
	Size  float64
	Shape PointFunc
	Skip  int

	Points []Point
}

func (s Scatter) Name() string {
	return s.Title
}

func (s Scatter) Bounds() Rect {
	return boundsOf(s.Points)
}

// Residual is the glyph radius on every side: a sample can sit exactly on
// any boundary of the destination rectangle.
func (s Scatter) Residual(_, _ Rect) Residual {
	if len(s.Points) == 0 {
		return Residual{}
	}
	return uniformResidual(s.size() / 2)
}

func (s Scatter) Render(t Transform) svg.Element {
	var (
		grp   = getBaseGroup(s.Color, "scatter")
		shape = s.shape()
	)
	for i, pt := range s.Points {
		if s.Skip > 0 && i > 0 && i%s.Skip != 0 {
			continue
		}
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			continue
		}
		p := t.Point(pt)
		grp.Append(shape(svg.NewPos(p.X, p.Y), s.size()))
	}
	return grp.AsElement()
}

func (s Scatter) LegendIcon(w, h float64) svg.Element {
	grp := getBaseGroup(s.Color)
	grp.Append(s.shape()(svg.NewPos(w/2, h/2), s.size()))
	return grp.AsElement()
}

func (s Scatter) IconSize() (float64, float64) {
	return s.size() * 2, s.size()
}

func (s Scatter) Value(src Rect) (float64, bool) {
	return meanIn(s.Points, src.X)
}

func (s Scatter) size() float64 {
	if s.Size <= 0 {
		return DefaultSize
	}
	return s.Size
}

func (s Scatter) shape() PointFunc {
	if s.Shape == nil {
		return GetCircle
	}
	return s.Shape
}

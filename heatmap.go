package plot

import (
	"math"

	"github.com/midbel/svg"
)

// HeatMap fills a data-space rectangle with a dense grid of cells coloured
// on a two-colour ramp. Values holds rows bottom to top, each row left to
// right. Heat maps have no representative value for legend ordering.
type HeatMap struct {
	Title string
	Area  Rect
	Low   string
	High  string

	Values [][]float64
}

func (h HeatMap) Name() string {
	return h.Title
}

func (h HeatMap) Bounds() Rect {
	if len(h.Values) == 0 {
		return EmptyRect()
	}
	return h.Area
}

func (h HeatMap) Residual(_, _ Rect) Residual {
	return Residual{}
}

func (h HeatMap) Render(t Transform) svg.Element {
	grp := getBaseGroup("", "heatmap")
	if len(h.Values) == 0 {
		return grp.AsElement()
	}
	var (
		lo, hi = h.valueRange()
		rows   = len(h.Values)
		dy     = h.Area.Height() / float64(rows)
	)
	for i, row := range h.Values {
		if len(row) == 0 {
			continue
		}
		var (
			dx = h.Area.Width() / float64(len(row))
			y0 = h.Area.Y.Min + float64(i)*dy
		)
		for j, v := range row {
			var (
				x0 = h.Area.X.Min + float64(j)*dx
				el svg.Rect
			)
			el.Pos = svg.NewPos(t.X(x0), t.Y(y0+dy))
			el.Dim = svg.NewDim(t.X(x0+dx)-t.X(x0), t.Y(y0)-t.Y(y0+dy))
			el.Fill = svg.NewFill(h.cellColor(v, lo, hi))
			grp.Append(el.AsElement())
		}
	}
	return grp.AsElement()
}

func (h HeatMap) LegendIcon(w, ht float64) svg.Element {
	var grp svg.Group
	var left svg.Rect
	left.Pos = svg.NewPos(0, ht*0.2)
	left.Dim = svg.NewDim(w/2, ht*0.6)
	left.Fill = svg.NewFill(h.low())
	grp.Append(left.AsElement())
	var right svg.Rect
	right.Pos = svg.NewPos(w/2, ht*0.2)
	right.Dim = svg.NewDim(w/2, ht*0.6)
	right.Fill = svg.NewFill(h.high())
	grp.Append(right.AsElement())
	return grp.AsElement()
}

func (h HeatMap) IconSize() (float64, float64) {
	return 12, 8
}

func (h HeatMap) Value(_ Rect) (float64, bool) {
	return 0, false
}

func (h HeatMap) valueRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range h.Values {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func (h HeatMap) cellColor(v, lo, hi float64) string {
	f := 0.5
	if hi > lo {
		f = (v - lo) / (hi - lo)
	}
	return lerpColor(h.low(), h.high(), f)
}

func (h HeatMap) low() string {
	if h.Low == "" {
		return "#ffffff"
	}
	return h.Low
}

func (h HeatMap) high() string {
	if h.High == "" {
		return "#1f77b4"
	}
	return h.High
}

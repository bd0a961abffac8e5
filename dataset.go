package plot

import (
	"math"

	"github.com/midbel/svg"
)

// Residual is the device-space distance a dataset draws outside its nominal
// destination rectangle in each direction, e.g. the glyph radius of a scatter
// point sitting on a boundary.
type Residual struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func uniformResidual(v float64) Residual {
	return Residual{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

// Merge keeps the per-direction maximum of both residuals.
func (r Residual) Merge(other Residual) Residual {
	x := r
	if other.Top > x.Top {
		x.Top = other.Top
	}
	if other.Right > x.Right {
		x.Right = other.Right
	}
	if other.Bottom > x.Bottom {
		x.Bottom = other.Bottom
	}
	if other.Left > x.Left {
		x.Left = other.Left
	}
	return x
}

// Dataset is one plotted series. Implementations are immutable once
// constructed; the engine never mutates them. An empty Name excludes the
// dataset from the legend.
type Dataset interface {
	Name() string

	// Bounds returns the data-space bounding box, EmptyRect when the
	// dataset holds no samples.
	Bounds() Rect

	// Residual reports how far outside dst the dataset would draw once
	// mapped through the transform derived from (src, dst).
	Residual(src, dst Rect) Residual

	Render(t Transform) svg.Element

	// LegendIcon draws the legend sample into a w x h box at the origin.
	LegendIcon(w, h float64) svg.Element

	// IconSize returns the natural size of the legend icon.
	IconSize() (float64, float64)

	// Value returns the representative value used to order legend
	// entries, false when not applicable.
	Value(src Rect) (float64, bool)
}

func boundsOf(points []Point) Rect {
	r := EmptyRect()
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		r = r.expand(p)
	}
	return r
}

// meanIn averages the y values of samples whose x falls inside rg.
func meanIn(points []Point, rg Range) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, p := range points {
		if math.IsNaN(p.Y) || !rg.Contains(p.X) {
			continue
		}
		sum += p.Y
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

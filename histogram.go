package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/midbel/svg"
)

// Histogram bins a sample of values into equal-width bars. Binning happens
// once at construction; the dataset is immutable afterwards. NaN samples are
// ignored.
type Histogram struct {
	title string
	fill  Palette
	bins  []histBin
	step  float64
}

type histBin struct {
	lo    float64
	hi    float64
	count float64
}

func NewHistogram(title string, values []float64, bins int) (Histogram, error) {
	return NewHistogramFill(title, values, bins, nil)
}

func NewHistogramFill(title string, values []float64, bins int, fill Palette) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("histogram: invalid bin count %d", bins)
	}
	h := Histogram{
		title: title,
		fill:  fill,
	}
	vals := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return h, nil
	}
	min, max := stats.Bounds(vals)
	if min == max {
		// all samples identical: a single unit-wide bin around them
		min -= 0.5
		max += 0.5
		bins = 1
	}
	h.step = (max - min) / float64(bins)
	h.bins = make([]histBin, bins)
	for i := range h.bins {
		h.bins[i].lo = min + float64(i)*h.step
		h.bins[i].hi = h.bins[i].lo + h.step
	}
	for _, v := range vals {
		i := int((v - min) / h.step)
		if i >= bins {
			i = bins - 1
		}
		h.bins[i].count++
	}
	return h, nil
}

func (h Histogram) Name() string {
	return h.title
}

// Count returns the number of samples that fell into bin i.
func (h Histogram) Count(i int) float64 {
	if i < 0 || i >= len(h.bins) {
		return 0
	}
	return h.bins[i].count
}

func (h Histogram) Bins() int {
	return len(h.bins)
}

func (h Histogram) Bounds() Rect {
	if len(h.bins) == 0 {
		return EmptyRect()
	}
	var top float64
	for _, b := range h.bins {
		top = math.Max(top, b.count)
	}
	return NewRect(h.bins[0].lo, h.bins[len(h.bins)-1].hi, 0, top)
}

func (h Histogram) Residual(_, _ Rect) Residual {
	return Residual{}
}

func (h Histogram) Render(t Transform) svg.Element {
	var (
		grp  = getBaseGroup("", "bar", "histogram")
		zero = t.Y(0)
	)
	for i, b := range h.bins {
		var (
			x0 = t.X(b.lo)
			x1 = t.X(b.hi)
			y  = t.Y(b.count)
			el svg.Rect
		)
		el.Pos = svg.NewPos(x0, y)
		el.Dim = svg.NewDim(x1-x0, zero-y)
		el.Fill = svg.NewFill(h.fill.At(i))
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (h Histogram) LegendIcon(w, ht float64) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(0, ht*0.2)
	el.Dim = svg.NewDim(w, ht*0.6)
	el.Fill = svg.NewFill(h.fill.At(0))
	return el.AsElement()
}

func (h Histogram) IconSize() (float64, float64) {
	return 12, 8
}

func (h Histogram) Value(src Rect) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, b := range h.bins {
		mid := (b.lo + b.hi) / 2
		if !src.X.Contains(mid) {
			continue
		}
		sum += b.count
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

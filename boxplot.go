package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/midbel/svg"
)

// BoxGroup is one column of samples to summarize at a position on the x
// axis.
type BoxGroup struct {
	Pos    float64
	Values []float64
}

// BoxSummary is the five-number summary drawn for one group. Whiskers reach
// the most extreme samples within 1.5 IQR of the quartiles.
type BoxSummary struct {
	Pos  float64
	Low  float64
	Q1   float64
	Med  float64
	Q3   float64
	High float64
}

func summarize(g BoxGroup) BoxSummary {
	var (
		s        = stats.Sample{Xs: g.Values}
		min, max = s.Bounds()
		sum      = BoxSummary{
			Pos: g.Pos,
			Q1:  s.Quantile(0.25),
			Med: s.Quantile(0.5),
			Q3:  s.Quantile(0.75),
		}
		fence = 1.5 * (sum.Q3 - sum.Q1)
	)
	sum.Low = math.Max(min, sum.Q1-fence)
	sum.High = math.Min(max, sum.Q3+fence)
	return sum
}

// BoxPlot draws a five-number box per group.
type BoxPlot struct {
	title  string
	color  string
	width  float64
	stroke float64
	boxes  []BoxSummary
}

func NewBoxPlot(title string, groups []BoxGroup) (BoxPlot, error) {
	b := BoxPlot{
		title:  title,
		width:  0.5,
		stroke: 1,
	}
	for i, g := range groups {
		if len(g.Values) == 0 {
			return BoxPlot{}, fmt.Errorf("boxplot: group %d has no values", i)
		}
		b.boxes = append(b.boxes, summarize(g))
	}
	return b, nil
}

// WithStyle returns a copy with the given colour, box width (data units) and
// stroke width (device units); non-positive values keep the defaults.
func (b BoxPlot) WithStyle(color string, width, stroke float64) BoxPlot {
	x := b
	if color != "" {
		x.color = color
	}
	if width > 0 {
		x.width = width
	}
	if stroke > 0 {
		x.stroke = stroke
	}
	return x
}

func (b BoxPlot) Name() string {
	return b.title
}

// Summaries exposes the computed five-number summaries in group order.
func (b BoxPlot) Summaries() []BoxSummary {
	out := make([]BoxSummary, len(b.boxes))
	copy(out, b.boxes)
	return out
}

func (b BoxPlot) Bounds() Rect {
	r := EmptyRect()
	for _, s := range b.boxes {
		r = r.expand(NewPoint(s.Pos-b.width/2, s.Low))
		r = r.expand(NewPoint(s.Pos+b.width/2, s.High))
	}
	return r
}

func (b BoxPlot) Residual(_, _ Rect) Residual {
	if len(b.boxes) == 0 {
		return Residual{}
	}
	return uniformResidual(b.stroke / 2)
}

func (b BoxPlot) Render(t Transform) svg.Element {
	var (
		grp    = getBaseGroup(b.color, "boxplot")
		stroke = svg.NewStroke(currentColour, b.stroke)
	)
	line := func(x0, y0, x1, y1 float64) {
		li := svg.NewLine(svg.NewPos(x0, y0), svg.NewPos(x1, y1))
		li.Stroke = stroke
		grp.Append(li.AsElement())
	}
	for _, s := range b.boxes {
		var (
			x0 = t.X(s.Pos - b.width/2)
			x1 = t.X(s.Pos + b.width/2)
			xc = t.X(s.Pos)
			q1 = t.Y(s.Q1)
			q3 = t.Y(s.Q3)
		)
		var box svg.Rect
		box.Pos = svg.NewPos(x0, q3)
		box.Dim = svg.NewDim(x1-x0, q1-q3)
		box.Fill = svg.NewFill("none")
		grp.Append(box.AsElement())

		line(x0, t.Y(s.Med), x1, t.Y(s.Med))
		// whisker stems and caps
		line(xc, q3, xc, t.Y(s.High))
		line(xc, q1, xc, t.Y(s.Low))
		line(x0, t.Y(s.High), x1, t.Y(s.High))
		line(x0, t.Y(s.Low), x1, t.Y(s.Low))
	}
	return grp.AsElement()
}

func (b BoxPlot) LegendIcon(w, h float64) svg.Element {
	grp := getBaseGroup(b.color)
	var box svg.Rect
	box.Pos = svg.NewPos(0, h*0.2)
	box.Dim = svg.NewDim(w, h*0.6)
	box.Fill = svg.NewFill("none")
	grp.Append(box.AsElement())
	li := svg.NewLine(svg.NewPos(0, h/2), svg.NewPos(w, h/2))
	li.Stroke = svg.NewStroke(currentColour, 1)
	grp.Append(li.AsElement())
	return grp.AsElement()
}

func (b BoxPlot) IconSize() (float64, float64) {
	return 12, 10
}

// Value is the mean of the group medians inside the source x range.
func (b BoxPlot) Value(src Rect) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, s := range b.boxes {
		if !src.X.Contains(s.Pos) {
			continue
		}
		sum += s.Med
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

package plot

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// AxisOption configures one numeric axis. Min and Max override the computed
// bound they point at; each side wins independently over the automatic
// padding. Ticks of zero lets the layout pass pick a count from the axis
// pixel length.
type AxisOption struct {
	Label  string
	Min    *float64
	Max    *float64
	Ticks  int
	Sub    int
	Format func(float64) string

	WithOuterTicks bool
	WithBands      bool
}

// Plot owns an ordered set of datasets and the titles, ranges and styles
// around them. Layout is recomputed from scratch on every render; nothing is
// cached across a resize. A Plot value may be rendered concurrently with
// other Plot values but a single Plot render is not re-entrant.
type Plot struct {
	Title  string
	Width  float64
	Height float64

	Padding

	X AxisOption
	Y AxisOption

	Legend LegendPolicy

	TitleStyle  TextStyle
	TickStyle   TextStyle
	LegendStyle TextStyle

	// Measurer supplies text metrics from the drawing backend; nil falls
	// back to the font-size estimate.
	Measurer Measurer

	Datasets []Dataset
}

func (p *Plot) DrawingWidth() float64 {
	return p.width() - p.Padding.Horizontal()
}

func (p *Plot) DrawingHeight() float64 {
	return p.height() - p.Padding.Vertical()
}

// Layout runs the layout pass for the current canvas size.
func (p *Plot) Layout() (Layout, error) {
	return Compute(p, p.width(), p.height(), p.Measurer)
}

// Render runs the full pipeline and writes the SVG document: layout, axes
// from the layout's tick sets, datasets through the derived transform, then
// title and legend.
func (p *Plot) Render(w io.Writer) error {
	lay, err := p.Layout()
	if err != nil {
		return err
	}
	el := svg.NewSVG()
	el.Dim = svg.NewDim(p.width(), p.height())
	el.OmitProlog = true

	el.Append(drawAxes(lay, p.X, p.Y, p.TickStyle, p.height(), p.Padding))

	t := lay.Transform()
	for _, d := range p.Datasets {
		el.Append(d.Render(t))
	}
	if p.Title != "" {
		el.Append(drawTitle(p.Title, p.TitleStyle, p.width()))
	}
	if p.Legend.enabled() {
		box, err := PlaceLegend(p.Datasets, lay.Src, lay.Dst, p.Legend, p.LegendStyle, p.measurer())
		if err != nil {
			return err
		}
		el.Append(box.Render(p.LegendStyle))
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (p *Plot) width() float64 {
	if p.Width <= 0 {
		return defaultWidth
	}
	return p.Width
}

func (p *Plot) height() float64 {
	if p.Height <= 0 {
		return defaultHeight
	}
	return p.Height
}

func (p *Plot) measurer() Measurer {
	if p.Measurer == nil {
		return Estimate{}
	}
	return p.Measurer
}

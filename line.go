package plot

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Line draws a polyline through its samples. A NaN y value is a gap: with
// IgnoreMissing the line restarts after it, without it the gap sample is
// dropped and the line drawn across.
type Line struct {
	Title         string
	Color         string
	Width         float64
	Fill          bool
	Text          TextPosition
	IgnoreMissing bool

	Points []Point
}

func (c Line) Name() string {
	return c.Title
}

func (c Line) Bounds() Rect {
	return boundsOf(c.Points)
}

// Residual is half the stroke width: the stroke is centered on the path, so
// a boundary sample bleeds that much outside.
func (c Line) Residual(_, _ Rect) Residual {
	if len(c.Points) == 0 {
		return Residual{}
	}
	return uniformResidual(c.width() / 2)
}

func (c Line) Render(t Transform) svg.Element {
	grp := getBaseGroup(c.Color, "line")
	grp.Id = c.Title
	if len(c.Points) == 0 {
		return grp.AsElement()
	}
	var (
		pat  = getBasePath(c.Fill, c.width())
		pos  svg.Pos
		segs = lineSegments(c.Points, c.IgnoreMissing)
	)
	for _, seg := range segs {
		for i, pt := range seg {
			pos.X = t.X(pt.X)
			pos.Y = t.Y(pt.Y)
			if i == 0 {
				pat.AbsMoveTo(pos)
			} else {
				pat.AbsLineTo(pos)
			}
		}
	}
	switch c.Text {
	case TextBefore:
		pt := slices.Fst(c.Points)
		txt := getLineText(c.Title, t.X(pt.X), t.Y(pt.Y), true)
		grp.Append(txt.AsElement())
	case TextAfter:
		pt := slices.Lst(c.Points)
		txt := getLineText(c.Title, t.X(pt.X), t.Y(pt.Y), false)
		grp.Append(txt.AsElement())
	default:
	}
	if c.Fill && len(segs) > 0 {
		pos.Y = t.Dst().Y.Max
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func (c Line) LegendIcon(w, h float64) svg.Element {
	grp := getBaseGroup(c.Color)
	li := svg.NewLine(svg.NewPos(0, h/2), svg.NewPos(w, h/2))
	li.Stroke = svg.NewStroke(currentColour, c.width())
	grp.Append(li.AsElement())
	return grp.AsElement()
}

func (c Line) IconSize() (float64, float64) {
	return 20, c.width()
}

func (c Line) Value(src Rect) (float64, bool) {
	return meanIn(c.Points, src.X)
}

// lineSegments splits points into the polylines the path walks: NaN samples
// never emit a vertex, and with ignore set a gap also starts a new segment.
// The first segment always begins at the first drawable point.
func lineSegments(points []Point, ignore bool) [][]Point {
	var (
		segs [][]Point
		cur  []Point
		gap  bool
	)
	for _, pt := range points {
		if math.IsNaN(pt.Y) {
			gap = true
			continue
		}
		if gap && ignore && len(cur) > 0 {
			segs = append(segs, cur)
			cur = nil
		}
		gap = false
		cur = append(cur, pt)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func (c Line) width() float64 {
	if c.Width <= 0 {
		return 1
	}
	return c.Width
}

// LinePoints overlays glyphs on a line: a composite of two child datasets
// sharing the same samples. Bounds are the union, residuals the
// per-direction maximum, rendering draws the line first then the glyphs.
// Name and representative value come from the line child.
type LinePoints struct {
	Line  Line
	Marks Scatter
}

func NewLinePoints(title, color string, points []Point) LinePoints {
	return LinePoints{
		Line: Line{
			Title:  title,
			Color:  color,
			Points: points,
		},
		Marks: Scatter{
			Color:  color,
			Points: points,
		},
	}
}

func (c LinePoints) Name() string {
	return c.Line.Name()
}

func (c LinePoints) Bounds() Rect {
	return c.Line.Bounds().Union(c.Marks.Bounds())
}

func (c LinePoints) Residual(src, dst Rect) Residual {
	return c.Line.Residual(src, dst).Merge(c.Marks.Residual(src, dst))
}

func (c LinePoints) Render(t Transform) svg.Element {
	var grp svg.Group
	grp.Append(c.Line.Render(t))
	grp.Append(c.Marks.Render(t))
	return grp.AsElement()
}

func (c LinePoints) LegendIcon(w, h float64) svg.Element {
	var grp svg.Group
	grp.Append(c.Line.LegendIcon(w, h))
	grp.Append(c.Marks.LegendIcon(w, h))
	return grp.AsElement()
}

func (c LinePoints) IconSize() (float64, float64) {
	var (
		lw, lh = c.Line.IconSize()
		mw, mh = c.Marks.IconSize()
	)
	return math.Max(lw, mw), math.Max(lh, mh)
}

func (c LinePoints) Value(src Rect) (float64, bool) {
	return c.Line.Value(src)
}

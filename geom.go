package plot

import (
	"math"
)

// Range is a closed interval on one axis. The zero value is the empty
// interval [0, 0] which is legal but degenerate.
type Range struct {
	Min float64
	Max float64
}

func NewRange(min, max float64) Range {
	return Range{
		Min: min,
		Max: max,
	}
}

func (r Range) Len() float64 {
	return r.Max - r.Min
}

// Empty reports whether r is the inverted sentinel produced by EmptyRect.
func (r Range) Empty() bool {
	return r.Min > r.Max
}

func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Union(other Range) Range {
	x := r
	if other.Min < x.Min {
		x.Min = other.Min
	}
	if other.Max > x.Max {
		x.Max = other.Max
	}
	return x
}

// Pad grows the interval by ratio of its length on each side.
func (r Range) Pad(ratio float64) Range {
	pad := r.Len() * ratio
	return Range{
		Min: r.Min - pad,
		Max: r.Max + pad,
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Rect is an axis-aligned rectangle, either a data-space bounding box or a
// device-space drawing region. Device rectangles have Y.Min at the top.
type Rect struct {
	X Range
	Y Range
}

func NewRect(xmin, xmax, ymin, ymax float64) Rect {
	return Rect{
		X: NewRange(xmin, xmax),
		Y: NewRange(ymin, ymax),
	}
}

// EmptyRect returns the inverted-infinite rectangle. A union with any real
// rectangle is a no-op on the real side, so it serves as the identity when
// folding dataset bounds.
func EmptyRect() Rect {
	return Rect{
		X: NewRange(math.Inf(1), math.Inf(-1)),
		Y: NewRange(math.Inf(1), math.Inf(-1)),
	}
}

func (r Rect) IsEmpty() bool {
	return r.X.Empty() || r.Y.Empty()
}

func (r Rect) Width() float64 {
	return r.X.Len()
}

func (r Rect) Height() float64 {
	return r.Y.Len()
}

func (r Rect) Union(other Rect) Rect {
	return Rect{
		X: r.X.Union(other.X),
		Y: r.Y.Union(other.Y),
	}
}

func (r Rect) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

func (r Rect) expand(p Point) Rect {
	x := r
	if p.X < x.X.Min {
		x.X.Min = p.X
	}
	if p.X > x.X.Max {
		x.X.Max = p.X
	}
	if p.Y < x.Y.Min {
		x.Y.Min = p.Y
	}
	if p.Y > x.Y.Max {
		x.Y.Max = p.Y
	}
	return x
}

// Transform is the affine map from a source rectangle in data space to a
// destination rectangle in device space. The y direction is inverted since
// device y grows downward. A zero-width source dimension fixes the scale
// factor to 1 so the map degrades to a translation instead of dividing by
// zero.
type Transform struct {
	src Rect
	dst Rect
	sx  float64
	sy  float64
}

func NewTransform(src, dst Rect) Transform {
	t := Transform{
		src: src,
		dst: dst,
		sx:  1,
		sy:  1,
	}
	if w := src.Width(); w != 0 {
		t.sx = dst.Width() / w
	}
	if h := src.Height(); h != 0 {
		t.sy = dst.Height() / h
	}
	return t
}

func (t Transform) Src() Rect {
	return t.src
}

func (t Transform) Dst() Rect {
	return t.dst
}

func (t Transform) X(x float64) float64 {
	return t.dst.X.Min + (x-t.src.X.Min)*t.sx
}

func (t Transform) Y(y float64) float64 {
	return t.dst.Y.Max - (y-t.src.Y.Min)*t.sy
}

func (t Transform) Point(p Point) Point {
	return Point{
		X: t.X(p.X),
		Y: t.Y(p.Y),
	}
}

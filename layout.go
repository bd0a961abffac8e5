package plot

import (
	"fmt"
)

const (
	// proportional padding applied to each data axis
	padRatio = 0.01
	// fallback half-span for an axis that stays degenerate after padding
	defaultHalfSpan = 0.5
	// gap between the title line and the plotting area
	titlePad = 4.0
	// length of the tick marks along the domain line
	tickLen = FontSize * 0.8
	// gap between tick mark and tick label
	labelGap = FontSize * 0.4
)

// Layout is the result of one layout pass: the padded source rectangle, the
// destination rectangle and the exact tick sets the reservation was computed
// from. The draw phase must reuse these ticks; recomputing them could yield
// a different set and misalign labels with gridlines.
type Layout struct {
	Src Rect
	Dst Rect
	X   []Tick
	Y   []Tick
}

func (l Layout) Transform() Transform {
	return NewTransform(l.Src, l.Dst)
}

// Compute derives the destination rectangle for a plot on a width x height
// canvas. The pass is a fixed sequence, not a solver: union of dataset
// bounds, padding and overrides, title and axis label reservation, then a
// single residual shrink. It either returns a complete geometry or an error,
// never a partial one.
func Compute(p *Plot, width, height float64, m Measurer) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("plot: invalid canvas size %gx%g", width, height)
	}
	if m == nil {
		m = Estimate{}
	}
	mm := newMemoMeasurer(m)

	src := EmptyRect()
	for _, d := range p.Datasets {
		src = src.Union(d.Bounds())
	}
	if src.X.Empty() {
		src.X = NewRange(0, 1)
	}
	if src.Y.Empty() {
		src.Y = NewRange(0, 1)
	}
	src.X = fitRange(src.X, p.X.Min, p.X.Max)
	src.Y = fitRange(src.Y, p.Y.Min, p.Y.Max)

	dst := NewRect(p.Padding.Left, width-p.Padding.Right, p.Padding.Top, height-p.Padding.Bottom)
	if p.Title != "" {
		dst.Y.Min += mm.LineHeight(p.TitleStyle) + titlePad
	}

	xticks := axisTicks(src.X, p.X, dst.Width())
	yticks := axisTicks(src.Y, p.Y, dst.Height())

	// bottom band: tick mark, gap, tallest label, optional axis label line
	tall, err := tallestLabel(mm, xticks, p.TickStyle)
	if err != nil {
		return Layout{}, err
	}
	bottom := tickLen + labelGap + tall
	if p.X.Label != "" {
		bottom += mm.LineHeight(p.TickStyle)
	}
	dst.Y.Max -= bottom

	// left band: widest label, gap, tick mark, optional rotated axis label
	wide, err := widestLabel(mm, yticks, p.TickStyle)
	if err != nil {
		return Layout{}, err
	}
	left := tickLen + labelGap + wide
	if p.Y.Label != "" {
		left += mm.LineHeight(p.TickStyle)
	}
	dst.X.Min += left

	// one residual pass against the post-reservation rectangle; glyph radii
	// are small next to label bands so a further fixed point is not worth it
	var res Residual
	for _, d := range p.Datasets {
		res = res.Merge(d.Residual(src, dst))
	}
	dst.X.Min += res.Left
	dst.X.Max -= res.Right
	dst.Y.Min += res.Top
	dst.Y.Max -= res.Bottom

	lay := Layout{
		Src: src,
		Dst: dst,
		X:   xticks,
		Y:   yticks,
	}
	return lay, nil
}

// fitRange pads rg proportionally, then applies the explicit per-bound
// overrides, each independently taking precedence over the padding. An axis
// that ends up with zero width gets a small default span so the transform
// never sees a non-finite scale.
func fitRange(rg Range, lo, hi *float64) Range {
	out := rg.Pad(padRatio)
	if lo != nil {
		out.Min = *lo
	}
	if hi != nil {
		out.Max = *hi
	}
	if out.Degenerate() {
		out.Min -= defaultHalfSpan
		out.Max += defaultHalfSpan
	}
	return out
}

func axisTicks(rg Range, opt AxisOption, length float64) []Tick {
	count := opt.Ticks
	if count < 1 {
		count = RecommendedTicks(length)
	}
	ticks := TickRangeSub(rg, count, opt.Sub)
	if opt.Format != nil {
		for i := range ticks {
			if ticks[i].Major() {
				ticks[i].Label = opt.Format(ticks[i].Value)
			}
		}
	}
	return ticks
}

func widestLabel(m Measurer, ticks []Tick, style TextStyle) (float64, error) {
	var wide float64
	for _, t := range ticks {
		if !t.Major() {
			continue
		}
		w, _, err := m.Measure(t.Label, style)
		if err != nil {
			return 0, err
		}
		if w > wide {
			wide = w
		}
	}
	return wide, nil
}

func tallestLabel(m Measurer, ticks []Tick, style TextStyle) (float64, error) {
	var tall float64
	for _, t := range ticks {
		if !t.Major() {
			continue
		}
		_, h, err := m.Measure(t.Label, style)
		if err != nil {
			return 0, err
		}
		if h > tall {
			tall = h
		}
	}
	return tall, nil
}

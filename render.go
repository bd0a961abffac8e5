package plot

import (
	"github.com/midbel/svg"
)

const currentColour = "currentColour"

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

func getBasePath(fill bool, width float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, width)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getLineText(str string, x, y float64, before bool) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "end"
	txt.Baseline = "middle"
	if !before {
		txt.Anchor = "start"
		txt.Pos.X += FontSize * 0.4
	} else {
		txt.Pos.X -= FontSize * 0.4
	}
	return txt
}

func drawTitle(title string, style TextStyle, width float64) svg.Element {
	txt := svg.NewText(title)
	txt.Pos = svg.NewPos(width/2, style.size())
	txt.Font = svg.NewFont(style.size())
	txt.Anchor = "middle"
	txt.Baseline = "hanging"
	return txt.AsElement()
}

// drawAxes renders the bottom and left axis from the tick sets the layout
// pass produced; it never recomputes ticks.
func drawAxes(lay Layout, xopt, yopt AxisOption, style TextStyle, height float64, pad Padding) svg.Element {
	var g svg.Group
	g.Id = "axis"
	g.Append(drawXAxis(lay, xopt, style, height, pad))
	g.Append(drawYAxis(lay, yopt, style, pad))
	return g.AsElement()
}

func drawXAxis(lay Layout, opt AxisOption, style TextStyle, height float64, pad Padding) svg.Element {
	var (
		t    = lay.Transform()
		dst  = lay.Dst
		g    svg.Group
		d    = domainLine(OrientBottom, dst.Width(), svg.NewStroke("black", 1))
		font = svg.NewFont(style.size())
	)
	g.Transform = svg.Translate(dst.X.Min, dst.Y.Max)
	g.Append(d.AsElement())
	var lastMajor float64
	haveMajor := false
	for _, tick := range lay.X {
		var (
			pos = t.X(tick.Value) - dst.X.Min
			grp svg.Group
		)
		grp.Transform = svg.Translate(pos, 0)
		size := tickLen
		if !tick.Major() {
			size *= 0.6
		}
		mark := lineTick(OrientBottom, 0, size, d.Stroke)
		grp.Append(mark.AsElement())
		if tick.Major() {
			text := tickText(OrientBottom, tick.Label, 0, font)
			grp.Append(text.AsElement())
			if opt.WithOuterTicks {
				sk := d.Stroke
				sk.Opacity = 0.05
				outer := lineTick(OrientBottom, 0, -dst.Height(), sk)
				grp.Append(outer.AsElement())
			}
			if opt.WithBands && haveMajor {
				if n := countMajorBefore(lay.X, tick.Value); n%2 == 1 {
					band := tickBand(pos-lastMajor, dst.Height())
					band.Transform = svg.Translate(lastMajor-pos, -dst.Height())
					grp.Append(band.AsElement())
				}
			}
			lastMajor = pos
			haveMajor = true
		}
		g.Append(grp.AsElement())
	}
	if opt.Label != "" {
		txt := svg.NewText(opt.Label)
		txt.Pos = svg.NewPos(dst.Width()/2, height-pad.Bottom-dst.Y.Max)
		txt.Font = font
		txt.Anchor = "middle"
		txt.Baseline = "auto"
		g.Append(txt.AsElement())
	}
	return g.AsElement()
}

func drawYAxis(lay Layout, opt AxisOption, style TextStyle, pad Padding) svg.Element {
	var (
		t    = lay.Transform()
		dst  = lay.Dst
		g    svg.Group
		d    = domainLine(OrientLeft, dst.Height(), svg.NewStroke("black", 1))
		font = svg.NewFont(style.size())
	)
	g.Transform = svg.Translate(dst.X.Min, dst.Y.Min)
	g.Append(d.AsElement())
	for _, tick := range lay.Y {
		var (
			pos = t.Y(tick.Value) - dst.Y.Min
			grp svg.Group
		)
		grp.Transform = svg.Translate(0, pos)
		size := tickLen
		if !tick.Major() {
			size *= 0.6
		}
		mark := lineTick(OrientLeft, 0, size, d.Stroke)
		grp.Append(mark.AsElement())
		if tick.Major() {
			text := tickText(OrientLeft, tick.Label, 0, font)
			grp.Append(text.AsElement())
			if opt.WithOuterTicks {
				sk := d.Stroke
				sk.Opacity = 0.05
				outer := lineTick(OrientRight, 0, dst.Width(), sk)
				grp.Append(outer.AsElement())
			}
		}
		g.Append(grp.AsElement())
	}
	if opt.Label != "" {
		var (
			rot svg.Group
			txt = svg.NewText(opt.Label)
		)
		rot.Transform = svg.Translate(pad.Left-dst.X.Min, dst.Height()/2)
		rot.Transform.RA = -90
		txt.Font = font
		txt.Anchor = "middle"
		txt.Baseline = "hanging"
		rot.Append(txt.AsElement())
		g.Append(rot.AsElement())
	}
	return g.AsElement()
}

func countMajorBefore(ticks []Tick, value float64) int {
	var n int
	for _, t := range ticks {
		if t.Major() && t.Value < value {
			n++
		}
	}
	return n
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func tickBand(width, height float64) svg.Rect {
	var rec svg.Rect
	rec.Pos = svg.NewPos(0, 0)
	rec.Dim = svg.NewDim(width, height)
	rec.Fill = svg.NewFill("currentColor")
	rec.Fill.Opacity = 0.05
	return rec
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}

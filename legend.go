package plot

import (
	"fmt"
	"sort"

	"github.com/midbel/svg"
)

type LegendSort int

const (
	SortNone LegendSort = iota
	SortAscending
	SortDescending
)

// LegendPolicy selects where the legend box goes: one of the four corner
// orientations (OrientTop|OrientLeft and friends), or an explicit device
// anchor with an icon side. The zero value disables the legend.
type LegendPolicy struct {
	Orient Orientation
	At     *Point
	Icon   TextPosition
	Sort   LegendSort
}

func (p LegendPolicy) enabled() bool {
	return p.Orient != 0 || p.At != nil
}

const legendPad = FontSize * 0.8

// LegendBox is the measured and anchored legend geometry. Rows are stacked
// top to bottom at a uniform height so entries align regardless of icon
// shape.
type LegendBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Row    float64
	Icon   TextPosition

	iconWidth float64
	entries   []Dataset
}

// PlaceLegend measures and anchors the legend for the named datasets among
// sets. Unnamed datasets get no row at all. src is the current source
// rectangle, used only when policy.Sort orders entries by representative
// value; dst is the destination rectangle the box is anchored to.
func PlaceLegend(sets []Dataset, src, dst Rect, policy LegendPolicy, style TextStyle, m Measurer) (LegendBox, error) {
	if m == nil {
		m = Estimate{}
	}
	var named []Dataset
	for _, d := range sets {
		if d.Name() != "" {
			named = append(named, d)
		}
	}
	if policy.Sort != SortNone {
		named = sortByValue(named, src, policy.Sort)
	}
	box := LegendBox{
		Row:     m.LineHeight(style),
		entries: named,
	}
	var labelWidth float64
	for _, d := range named {
		w, _, err := m.Measure(d.Name(), style)
		if err != nil {
			return LegendBox{}, err
		}
		if w > labelWidth {
			labelWidth = w
		}
		iw, ih := d.IconSize()
		if iw > box.iconWidth {
			box.iconWidth = iw
		}
		if ih > box.Row {
			box.Row = ih
		}
	}
	box.Width = labelWidth + box.iconWidth + legendPad
	box.Height = float64(len(named)) * box.Row

	switch policy.Orient {
	case OrientTop | OrientLeft:
		box.X, box.Y = dst.X.Min, dst.Y.Min
		box.Icon = TextAfter
	case OrientBottom | OrientLeft:
		box.X, box.Y = dst.X.Min, dst.Y.Max-box.Height
		box.Icon = TextAfter
	case OrientTop | OrientRight:
		box.X, box.Y = dst.X.Max-box.Width, dst.Y.Min
		box.Icon = TextBefore
	case OrientBottom | OrientRight:
		box.X, box.Y = dst.X.Max-box.Width, dst.Y.Max-box.Height
		box.Icon = TextBefore
	default:
		if policy.At == nil {
			return LegendBox{}, fmt.Errorf("legend: no anchor in policy")
		}
		box.X, box.Y = policy.At.X, policy.At.Y
		box.Icon = policy.Icon
		if box.Icon == 0 {
			box.Icon = TextBefore
		}
	}
	return box, nil
}

// sortByValue orders entries by representative value, stable so ties keep
// insertion order. Entries reporting no value keep their relative order and
// go after the valued ones.
func sortByValue(sets []Dataset, src Rect, dir LegendSort) []Dataset {
	type entry struct {
		d Dataset
		v float64
	}
	var (
		valued []entry
		rest   []Dataset
	)
	for _, d := range sets {
		if v, ok := d.Value(src); ok {
			valued = append(valued, entry{d: d, v: v})
		} else {
			rest = append(rest, d)
		}
	}
	sort.SliceStable(valued, func(i, j int) bool {
		if dir == SortDescending {
			return valued[i].v > valued[j].v
		}
		return valued[i].v < valued[j].v
	})
	out := make([]Dataset, 0, len(sets))
	for _, e := range valued {
		out = append(out, e.d)
	}
	return append(out, rest...)
}

// Render draws the legend rows at the anchored position.
func (lg LegendBox) Render(style TextStyle) svg.Element {
	var grp svg.Group
	grp.Id = "legend"
	grp.Transform = svg.Translate(lg.X, lg.Y)
	font := svg.NewFont(style.size())
	for i, d := range lg.entries {
		var row svg.Group
		row.Transform = svg.Translate(0, float64(i)*lg.Row)
		var (
			icon svg.Group
			txt  = svg.NewText(d.Name())
		)
		txt.Font = font
		txt.Baseline = "middle"
		txt.Pos.Y = lg.Row / 2
		if lg.Icon == TextBefore {
			icon.Append(d.LegendIcon(lg.iconWidth, lg.Row))
			txt.Anchor = "start"
			txt.Pos.X = lg.iconWidth + legendPad
		} else {
			txt.Anchor = "start"
			txt.Pos.X = 0
			icon.Transform = svg.Translate(lg.Width-lg.iconWidth, 0)
			icon.Append(d.LegendIcon(lg.iconWidth, lg.Row))
		}
		row.Append(icon.AsElement())
		row.Append(txt.AsElement())
		grp.Append(row.AsElement())
	}
	return grp.AsElement()
}

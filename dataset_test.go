package plot

import (
	"math"
	"testing"
)

func TestScatterResidualMonotone(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	prev := Residual{}
	for _, size := range []float64{1, 2, 4, 8, 16} {
		s := Scatter{Size: size, Points: pts}
		res := s.Residual(NewRect(0, 10, 0, 10), NewRect(0, 100, 0, 100))
		if res.Top < prev.Top || res.Right < prev.Right || res.Bottom < prev.Bottom || res.Left < prev.Left {
			t.Fatalf("residual shrank when glyph grew: size %g gave %+v after %+v", size, res, prev)
		}
		if res.Left != size/2 {
			t.Errorf("size %g: residual %g, want glyph radius %g", size, res.Left, size/2)
		}
		prev = res
	}
}

func TestScatterEmpty(t *testing.T) {
	var s Scatter
	if !s.Bounds().IsEmpty() {
		t.Error("empty scatter should report empty bounds")
	}
	if res := s.Residual(Rect{}, Rect{}); res != (Residual{}) {
		t.Errorf("empty scatter residual %+v, want zero", res)
	}
}

func TestLineBoundsSkipNaN(t *testing.T) {
	c := Line{
		Points: []Point{
			{X: 0, Y: 1},
			{X: 1, Y: math.NaN()},
			{X: 2, Y: 5},
		},
	}
	r := c.Bounds()
	if r.Y.Min != 1 || r.Y.Max != 5 {
		t.Errorf("NaN leaked into bounds: %v", r.Y)
	}
	if r.X.Min != 0 || r.X.Max != 2 {
		t.Errorf("x bounds %v", r.X)
	}
}

func TestLineResidualIsHalfStroke(t *testing.T) {
	c := Line{Width: 3, Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	res := c.Residual(Rect{}, Rect{})
	if res.Top != 1.5 {
		t.Errorf("residual %g, want 1.5", res.Top)
	}
}

func TestLinePointsComposite(t *testing.T) {
	lp := NewLinePoints("both", "red", []Point{{X: 0, Y: 0}, {X: 4, Y: 8}})
	lp.Line.Width = 1
	lp.Marks.Size = 6

	if lp.Name() != "both" {
		t.Errorf("name %q", lp.Name())
	}
	want := NewRect(0, 4, 0, 8)
	if got := lp.Bounds(); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	// glyph radius 3 dominates the half stroke
	res := lp.Residual(want, NewRect(0, 100, 0, 100))
	if res.Top != 3 {
		t.Errorf("composite residual %g, want max of children (3)", res.Top)
	}
	if v, ok := lp.Value(NewRect(0, 4, 0, 8)); !ok || v != 4 {
		t.Errorf("value %g/%v, want mean 4", v, ok)
	}
}

func TestBarsBounds(t *testing.T) {
	b := Bars{
		Points: []Point{{X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 7}},
	}
	r := b.Bounds()
	if r.X.Min != 0.5 || r.X.Max != 3.5 {
		t.Errorf("x bounds %v, want [0.5, 3.5]", r.X)
	}
	if r.Y.Min != 0 || r.Y.Max != 7 {
		t.Errorf("baseline not included: %v", r.Y)
	}
	if res := b.Residual(Rect{}, Rect{}); res != (Residual{}) {
		t.Errorf("bars should have zero residual, got %+v", res)
	}
}

func TestBarsNegativeValues(t *testing.T) {
	b := Bars{
		Points: []Point{{X: 0, Y: -4}, {X: 1, Y: 2}},
	}
	r := b.Bounds()
	if r.Y.Min != -4 || r.Y.Max != 2 {
		t.Errorf("y bounds %v, want [-4, 2]", r.Y)
	}
}

func TestHistogramBins(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	h, err := NewHistogram("spread", values, 5)
	if err != nil {
		t.Fatal(err)
	}
	if h.Bins() != 5 {
		t.Fatalf("got %d bins", h.Bins())
	}
	var total float64
	for i := 0; i < h.Bins(); i++ {
		total += h.Count(i)
	}
	if total != float64(len(values)) {
		t.Errorf("bin counts sum to %g, want %d", total, len(values))
	}
	r := h.Bounds()
	if r.X.Min != 0 || r.X.Max != 10 {
		t.Errorf("x bounds %v", r.X)
	}
	if r.Y.Min != 0 {
		t.Errorf("histogram baseline %g, want 0", r.Y.Min)
	}
}

func TestHistogramInvalidBins(t *testing.T) {
	if _, err := NewHistogram("bad", []float64{1, 2}, 0); err == nil {
		t.Error("zero bin count accepted")
	}
}

func TestHistogramUniformValues(t *testing.T) {
	h, err := NewHistogram("flat", []float64{3, 3, 3}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if h.Bins() != 1 {
		t.Fatalf("identical samples: got %d bins, want 1", h.Bins())
	}
	if h.Count(0) != 3 {
		t.Errorf("count %g, want 3", h.Count(0))
	}
}

func TestHistogramSkipsNaN(t *testing.T) {
	values := []float64{math.NaN(), 1, 4, math.NaN(), 7, 9, math.NaN()}
	h, err := NewHistogram("gappy", values, 3)
	if err != nil {
		t.Fatal(err)
	}
	var total float64
	for i := 0; i < h.Bins(); i++ {
		total += h.Count(i)
	}
	if total != 4 {
		t.Errorf("bin counts sum to %g, want the 4 finite samples", total)
	}
	r := h.Bounds()
	if r.X.Min != 1 || r.X.Max != 9 {
		t.Errorf("NaN leaked into bounds: %v", r.X)
	}
}

func TestHistogramAllNaN(t *testing.T) {
	h, err := NewHistogram("empty", []float64{math.NaN(), math.NaN()}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if h.Bins() != 0 {
		t.Errorf("got %d bins, want none", h.Bins())
	}
	if !h.Bounds().IsEmpty() {
		t.Errorf("bounds %v, want empty", h.Bounds())
	}
}

func TestLineSegments(t *testing.T) {
	pts := []Point{
		{X: 0, Y: math.NaN()},
		{X: 1, Y: 2},
		{X: 2, Y: math.NaN()},
		{X: 3, Y: 4},
		{X: 4, Y: 5},
	}
	// gaps break the line
	segs := lineSegments(pts, true)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0][0].X != 1 {
		t.Errorf("first segment starts at x=%g, want the first drawable point", segs[0][0].X)
	}
	if len(segs[1]) != 2 || segs[1][0].X != 3 {
		t.Errorf("second segment %v", segs[1])
	}
	// gaps dropped: one segment across
	segs = lineSegments(pts, false)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if len(segs[0]) != 3 || segs[0][0].X != 1 {
		t.Errorf("segment %v must start at the first drawable point", segs[0])
	}
	if segs := lineSegments([]Point{{X: 0, Y: math.NaN()}}, false); len(segs) != 0 {
		t.Errorf("all-NaN input produced segments %v", segs)
	}
}

func TestBoxPlotSummary(t *testing.T) {
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(i + 1)
	}
	b, err := NewBoxPlot("dist", []BoxGroup{{Pos: 1, Values: values}})
	if err != nil {
		t.Fatal(err)
	}
	sums := b.Summaries()
	if len(sums) != 1 {
		t.Fatalf("got %d summaries", len(sums))
	}
	s := sums[0]
	if s.Med != 51 {
		t.Errorf("median %g, want 51", s.Med)
	}
	if !(s.Low <= s.Q1 && s.Q1 < s.Med && s.Med < s.Q3 && s.Q3 <= s.High) {
		t.Errorf("summary out of order: %+v", s)
	}
	if s.Low < 1 || s.High > 101 {
		t.Errorf("whiskers outside data: %+v", s)
	}
}

func TestBoxPlotEmptyGroup(t *testing.T) {
	if _, err := NewBoxPlot("bad", []BoxGroup{{Pos: 0}}); err == nil {
		t.Error("empty group accepted")
	}
}

func TestHeatMapValue(t *testing.T) {
	h := HeatMap{
		Area:   NewRect(0, 4, 0, 2),
		Values: [][]float64{{1, 2}, {3, 4}},
	}
	if _, ok := h.Value(NewRect(0, 4, 0, 2)); ok {
		t.Error("heat map should report no representative value")
	}
	if got := h.Bounds(); got != NewRect(0, 4, 0, 2) {
		t.Errorf("bounds %v", got)
	}
}

func TestMeanIn(t *testing.T) {
	pts := []Point{{X: 0, Y: 2}, {X: 5, Y: 4}, {X: 20, Y: 100}}
	v, ok := meanIn(pts, NewRange(0, 10))
	if !ok || v != 3 {
		t.Errorf("got %g/%v, want 3", v, ok)
	}
	if _, ok := meanIn(pts, NewRange(30, 40)); ok {
		t.Error("empty selection should report no value")
	}
}

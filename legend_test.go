package plot

import (
	"math"
	"testing"
)

func namedFake(name string, val float64, ok bool) fakeDataset {
	return fakeDataset{
		name:   name,
		rect:   NewRect(0, 10, 0, 10),
		val:    val,
		hasVal: ok,
	}
}

func TestPlaceLegendCorner(t *testing.T) {
	var (
		dst  = NewRect(50, 350, 20, 380)
		sets = []Dataset{
			namedFake("alpha", 1, true),
			namedFake("beta", 2, true),
			namedFake("gamma", 3, true),
		}
		policy = LegendPolicy{Orient: OrientTop | OrientRight}
	)
	box, err := PlaceLegend(sets, NewRect(0, 10, 0, 10), dst, policy, TextStyle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	row := Estimate{}.LineHeight(TextStyle{})
	if want := 3 * row; math.Abs(box.Height-want) > 1e-9 {
		t.Errorf("legend height %g, want %g", box.Height, want)
	}
	if got := box.X + box.Width; math.Abs(got-dst.X.Max) > 1e-9 {
		t.Errorf("right edge %g, want %g", got, dst.X.Max)
	}
	if box.Y != dst.Y.Min {
		t.Errorf("top edge %g, want %g", box.Y, dst.Y.Min)
	}
	if box.Icon != TextBefore {
		t.Error("right corner should place icon before the text")
	}
}

func TestPlaceLegendIconSides(t *testing.T) {
	var (
		dst  = NewRect(0, 300, 0, 300)
		sets = []Dataset{namedFake("one", 1, true)}
	)
	tests := []struct {
		orient Orientation
		icon   TextPosition
	}{
		{orient: OrientTop | OrientLeft, icon: TextAfter},
		{orient: OrientBottom | OrientLeft, icon: TextAfter},
		{orient: OrientTop | OrientRight, icon: TextBefore},
		{orient: OrientBottom | OrientRight, icon: TextBefore},
	}
	for _, c := range tests {
		box, err := PlaceLegend(sets, dst, dst, LegendPolicy{Orient: c.orient}, TextStyle{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if box.Icon != c.icon {
			t.Errorf("orient %v: icon side %v, want %v", c.orient, box.Icon, c.icon)
		}
	}
}

func TestPlaceLegendBottomAnchors(t *testing.T) {
	var (
		dst  = NewRect(0, 300, 0, 300)
		sets = []Dataset{
			namedFake("one", 1, true),
			namedFake("two", 2, true),
		}
	)
	box, err := PlaceLegend(sets, dst, dst, LegendPolicy{Orient: OrientBottom | OrientLeft}, TextStyle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := box.Y + box.Height; math.Abs(got-dst.Y.Max) > 1e-9 {
		t.Errorf("bottom edge %g, want %g", got, dst.Y.Max)
	}
	if box.X != dst.X.Min {
		t.Errorf("left edge %g, want %g", box.X, dst.X.Min)
	}
}

func TestPlaceLegendSkipsUnnamed(t *testing.T) {
	sets := []Dataset{
		namedFake("visible", 1, true),
		namedFake("", 2, true),
		namedFake("also", 3, true),
	}
	box, err := PlaceLegend(sets, NewRect(0, 1, 0, 1), NewRect(0, 300, 0, 300), LegendPolicy{Orient: OrientTop | OrientLeft}, TextStyle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * box.Row; box.Height != want {
		t.Errorf("unnamed dataset got a row: height %g, want %g", box.Height, want)
	}
}

func TestPlaceLegendExplicitAnchor(t *testing.T) {
	var (
		at     = NewPoint(120, 40)
		policy = LegendPolicy{At: &at, Icon: TextAfter}
		sets   = []Dataset{namedFake("one", 1, true)}
	)
	box, err := PlaceLegend(sets, NewRect(0, 1, 0, 1), NewRect(0, 300, 0, 300), policy, TextStyle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if box.X != 120 || box.Y != 40 {
		t.Errorf("anchor (%g, %g), want (120, 40)", box.X, box.Y)
	}
	if box.Icon != TextAfter {
		t.Errorf("icon side %v, want TextAfter", box.Icon)
	}
}

func TestSortByValue(t *testing.T) {
	var (
		src  = NewRect(0, 10, 0, 10)
		sets = []Dataset{
			namedFake("low", 1, true),
			namedFake("high", 9, true),
			namedFake("na-1", 0, false),
			namedFake("mid-a", 5, true),
			namedFake("mid-b", 5, true),
			namedFake("na-2", 0, false),
		}
	)
	desc := sortByValue(sets, src, SortDescending)
	want := []string{"high", "mid-a", "mid-b", "low", "na-1", "na-2"}
	for i, d := range desc {
		if d.Name() != want[i] {
			t.Fatalf("descending order %d: got %q, want %q", i, d.Name(), want[i])
		}
	}
	asc := sortByValue(sets, src, SortAscending)
	want = []string{"low", "mid-a", "mid-b", "high", "na-1", "na-2"}
	for i, d := range asc {
		if d.Name() != want[i] {
			t.Fatalf("ascending order %d: got %q, want %q", i, d.Name(), want[i])
		}
	}
}

func TestPlaceLegendNoAnchor(t *testing.T) {
	sets := []Dataset{namedFake("one", 1, true)}
	if _, err := PlaceLegend(sets, NewRect(0, 1, 0, 1), NewRect(0, 300, 0, 300), LegendPolicy{}, TextStyle{}, nil); err == nil {
		t.Error("policy without anchor accepted")
	}
}

package plot

import (
	"testing"
)

type countingMeasurer struct {
	calls int
}

func (c *countingMeasurer) Measure(text string, style TextStyle) (float64, float64, error) {
	c.calls++
	return Estimate{}.Measure(text, style)
}

func (c *countingMeasurer) LineHeight(style TextStyle) float64 {
	return Estimate{}.LineHeight(style)
}

func TestMemoMeasurer(t *testing.T) {
	var (
		inner countingMeasurer
		mm    = newMemoMeasurer(&inner)
	)
	w1, h1, err := mm.Measure("100", TextStyle{})
	if err != nil {
		t.Fatal(err)
	}
	w2, h2, err := mm.Measure("100", TextStyle{})
	if err != nil {
		t.Fatal(err)
	}
	if w1 != w2 || h1 != h2 {
		t.Errorf("cached measurement differs: (%g, %g) vs (%g, %g)", w1, h1, w2, h2)
	}
	if inner.calls != 1 {
		t.Errorf("backend measured %d times, want 1", inner.calls)
	}
	if _, _, err := mm.Measure("100", TextStyle{Size: 20}); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 2 {
		t.Errorf("different style must measure again, got %d calls", inner.calls)
	}
}

func TestEstimateGrowsWithText(t *testing.T) {
	var (
		e        = Estimate{}
		w1, _, _ = e.Measure("10", TextStyle{})
		w2, _, _ = e.Measure("10000", TextStyle{})
	)
	if w2 <= w1 {
		t.Errorf("longer text should measure wider: %g vs %g", w1, w2)
	}
	if e.LineHeight(TextStyle{}) <= 0 {
		t.Error("line height must be positive")
	}
}

package plot

import (
	"math"
	"strconv"
)

// Tick is a single mark on a numeric axis. A tick with a label is major,
// one without is a minor mark.
type Tick struct {
	Value float64
	Label string
}

func (t Tick) Major() bool {
	return t.Label != ""
}

var niceSteps = []float64{1, 2, 2.5, 5, 10}

const (
	// estimated width of a tick label plus the gap to its neighbour,
	// used to derive a tick count from a pixel budget
	approxLabel = FontSize * 4
	tickGap     = FontSize * 2
)

// RecommendedTicks returns a tick count suited to an axis of the given
// device length: denser axes get proportionally more ticks.
func RecommendedTicks(length float64) int {
	n := int(length / (approxLabel + tickGap))
	if n < 1 {
		n = 1
	}
	return n
}

// TickRange returns major ticks for rg. The step is the smallest value of
// the form {1, 2, 2.5, 5, 10}*10^k not below rg.Len()/count, the first tick
// is the smallest step multiple at or above rg.Min and the last is the first
// one at or above rg.Max.
func TickRange(rg Range, count int) []Tick {
	return TickRangeSub(rg, count, 1)
}

// TickRangeSub behaves like TickRange and interleaves sub-1 unlabelled minor
// ticks per major interval. Minor ticks before the first major tick are kept
// when they fall inside rg.
func TickRangeSub(rg Range, count, sub int) []Tick {
	if count < 1 {
		count = 1
	}
	if sub < 1 {
		sub = 1
	}
	if rg.Degenerate() {
		t := Tick{
			Value: rg.Min,
			Label: strconv.FormatFloat(rg.Min, 'g', -1, 64),
		}
		return []Tick{t}
	}
	step := niceStep(rg.Len() / float64(count))
	if step <= 0 {
		panic("plot: tick step underflow")
	}
	var (
		start = math.Ceil(rg.Min/step) * step
		prec  = stepPrecision(step)
		limit = int(rg.Len()/step) + 2
		ticks []Tick
	)
	minors := func(from float64) {
		for j := 1; j < sub; j++ {
			v := from + float64(j)*step/float64(sub)
			if v >= rg.Min && v < rg.Max {
				ticks = append(ticks, Tick{Value: v})
			}
		}
	}
	minors(start - step)
	for i := 0; i <= limit; i++ {
		v := start + float64(i)*step
		ticks = append(ticks, Tick{
			Value: v,
			Label: formatTick(v, prec),
		})
		if v >= rg.Max {
			break
		}
		minors(v)
	}
	return ticks
}

// niceStep rounds raw up to the nearest nice value for its order of
// magnitude.
func niceStep(raw float64) float64 {
	var (
		exp  = math.Floor(math.Log10(raw))
		mag  = math.Pow(10, exp)
		frac = raw / mag
	)
	for _, n := range niceSteps {
		if n >= frac {
			return n * mag
		}
	}
	return 10 * mag
}

// stepPrecision gives the number of decimal places needed so labels of
// adjacent ticks at the given step stay distinct.
func stepPrecision(step float64) int {
	prec := 0
	for prec < 12 {
		scaled := step * math.Pow(10, float64(prec))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, math.Abs(scaled)) {
			break
		}
		prec++
	}
	return prec
}

func formatTick(v float64, prec int) string {
	p := math.Pow(10, float64(prec))
	v = math.Round(v*p) / p
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

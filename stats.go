package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Statistics helpers backing the box-plot and error-bar style datasets.

func Mean(values []float64) float64 {
	return stats.Sample{Xs: values}.Mean()
}

func StdDev(values []float64) float64 {
	return stats.Sample{Xs: values}.StdDev()
}

// Percentile returns the p-th percentile of values, p in [0, 1].
func Percentile(values []float64, p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("percentile: %g out of range [0, 1]", p)
	}
	return stats.Sample{Xs: values}.Quantile(p), nil
}

var zScores = map[float64]float64{
	0.90: 1.6449,
	0.95: 1.9600,
	0.99: 2.5758,
}

// ConfidenceInterval returns the normal-approximation interval around the
// mean at the given level (one of 0.90, 0.95, 0.99; anything else falls back
// to 0.95).
func ConfidenceInterval(values []float64, level float64) (float64, float64) {
	z, ok := zScores[level]
	if !ok {
		z = zScores[0.95]
	}
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	var (
		mean = Mean(values)
		off  = z * StdDev(values) / math.Sqrt(float64(len(values)))
	)
	return mean - off, mean + off
}

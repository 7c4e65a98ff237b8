package lag

import (
	"math"

	"github.com/aouyang1/go-tsfeatures/feature"
	"github.com/aouyang1/go-tsfeatures/stats"
)

// LaggedSeries returns positionally shifted copies of y, one feature per lag,
// labeled "{name}_lag{N}". Rows shifted past the start of the series are NaN.
func LaggedSeries(name string, y []float64, lags []int) feature.Set {
	res := make(feature.Set)
	for _, l := range lags {
		col := make([]float64, len(y))
		for i := range y {
			if i-l < 0 || i-l >= len(y) {
				col[i] = math.NaN()
				continue
			}
			col[i] = y[i-l]
		}
		feat := feature.NewLag(name+"_lag", l)
		res[feat.String()] = feature.Data{
			F:    feat,
			Data: col,
		}
	}
	return res
}

// MovingAverageSeries computes the rolling mean of y shifted back by
// startStep over a trailing window of windowSize rows with a minimum of one
// observed row. A windowSize of 0 or less averages over all available
// history.
func MovingAverageSeries(y []float64, startStep, windowSize int) []float64 {
	if windowSize <= 0 {
		windowSize = len(y)
	}

	shifted := make([]float64, len(y))
	for i := range y {
		if i-startStep < 0 {
			shifted[i] = math.NaN()
			continue
		}
		shifted[i] = y[i-startStep]
	}

	res := make([]float64, len(y))
	for i := range shifted {
		lo := i - windowSize + 1
		if lo < 0 {
			lo = 0
		}
		res[i] = stats.Mean(shifted[lo : i+1])
	}
	return res
}

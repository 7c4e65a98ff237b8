package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Valid filters out NaN values returning a new slice. Lag alignment marks
// unavailable history as NaN so reducers only see observed values.
func Valid(vals []float64) []float64 {
	res := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		res = append(res, v)
	}
	return res
}

// Mean computes the arithmetic mean of the non-NaN values. Returns NaN if no
// valid values are present.
func Mean(vals []float64) float64 {
	valid := Valid(vals)
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// Quantile computes the q-th linearly interpolated quantile of the non-NaN
// values. Returns NaN if no valid values are present.
func Quantile(q float64, vals []float64) float64 {
	valid := Valid(vals)
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	return stat.Quantile(q, stat.LinInterp, valid, nil)
}

// StdDev computes the sample standard deviation of the non-NaN values.
// Returns NaN with fewer than 2 valid values.
func StdDev(vals []float64) float64 {
	valid := Valid(vals)
	if len(valid) < 2 {
		return math.NaN()
	}
	return stat.StdDev(valid, nil)
}

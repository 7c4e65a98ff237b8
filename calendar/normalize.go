package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-tsfeatures/timedataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrUnknownNormalization = errors.New("unknown normalization, accepted values are log and minmax")

// Normalization is the closed set of value scaling variants for
// NormalizedColumns.
type Normalization int

const (
	NormalizationLog Normalization = iota
	NormalizationMinMax
)

func (n Normalization) String() string {
	switch n {
	case NormalizationLog:
		return "log"
	case NormalizationMinMax:
		return "minmax"
	}
	return fmt.Sprintf("unknown_%d", int(n))
}

// NormalizedYear indicates the position of the year of each time point within
// the [minYear, maxYear] range scaled to [0, 1]. A degenerate range returns 0
// for every point.
func NormalizedYear(t []time.Time, minYear, maxYear int) []float64 {
	res := make([]float64, len(t))
	if maxYear == minYear {
		return res
	}
	for i, pnt := range t {
		res[i] = float64(pnt.Year()-minYear) / float64(maxYear-minYear)
	}
	return res
}

// NormalizedDate indicates the position of the date of each time point within
// the [minDate, maxDate] range scaled to [0, 1]. A degenerate range returns 0
// for every point.
func NormalizedDate(t []time.Time, minDate, maxDate time.Time) []float64 {
	res := make([]float64, len(t))
	rangeDays := maxDate.Sub(minDate).Hours() / 24.0
	if rangeDays == 0 {
		return res
	}
	for i, pnt := range t {
		days := math.Floor(truncateToDate(pnt).Sub(minDate).Hours() / 24.0)
		res[i] = days / rangeDays
	}
	return res
}

// NormalizedDateHour indicates the position of each time point within the
// [minDatehour, maxDatehour] range in hours scaled to [0, 1]. A degenerate
// range returns 0 for every point.
func NormalizedDateHour(t []time.Time, minDatehour, maxDatehour time.Time) []float64 {
	res := make([]float64, len(t))
	rangeHours := maxDatehour.Sub(minDatehour).Hours()
	if rangeHours == 0 {
		return res
	}
	for i, pnt := range t {
		res[i] = pnt.Sub(minDatehour).Hours() / rangeHours
	}
	return res
}

// NormalizedColumns rescales a value series either by log ratio to its global
// mean or by min-max scaling. Non-monotonic input is sorted by time first, so
// the returned time slice carries the output ordering. Degenerate series
// (zero mean for log, constant for minmax) return all zeros rather than
// dividing by zero.
func NormalizedColumns(t []time.Time, y []float64, norm Normalization) ([]time.Time, []float64, error) {
	if !timedataset.TimeSlice(t).IsMonotonic() {
		var err error
		t, y, err = timedataset.SortByTime(t, y)
		if err != nil {
			return nil, nil, err
		}
	}

	switch norm {
	case NormalizationLog, NormalizationMinMax:
	default:
		return nil, nil, fmt.Errorf("normalization %d, %w", int(norm), ErrUnknownNormalization)
	}

	res := make([]float64, len(y))
	if len(y) == 0 {
		return t, res, nil
	}

	switch norm {
	case NormalizationLog:
		meanVal := stat.Mean(y, nil)
		if meanVal == 0 {
			return t, res, nil
		}
		for i, val := range y {
			res[i] = math.Log(val / meanVal)
		}
	case NormalizationMinMax:
		minVal := floats.Min(y)
		maxVal := floats.Max(y)
		if minVal == maxVal {
			return t, res, nil
		}
		for i, val := range y {
			res[i] = (val - minVal) / (maxVal - minVal)
		}
	}
	return t, res, nil
}

package lag

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-tsfeatures/timedataset"
)

var (
	ErrNoData          = errors.New("no time series data")
	ErrLagLenMismatch  = errors.New("time feature has a different length than values")
	ErrNonPositiveSpan = errors.New("years and window must not be negative")
)

const (
	// WeekLagBase is the number of weeks treated as one year back when
	// aligning to the same week, day of week, and hour of previous years.
	WeekLagBase = 52
	// DayLagBase is the number of days treated as one year back when
	// aligning to the same day of year and hour of previous years.
	DayLagBase = 365
)

// SameWeekDayHourLag creates a lag feature by aggregating values of and
// around the same week, same day of week, and same hour of day of previous
// years. weekWindow widens the candidate weeks by +-weekWindow to reduce
// noise. Rows with no valid historical offset are NaN. Results are rounded
// to the nearest integer.
func SameWeekDayHourLag(t []time.Time, y []float64, nYears, weekWindow int, agg Aggregation) ([]float64, error) {
	spec := OffsetSpec{
		Base:    WeekLagBase,
		Window:  weekWindow,
		Repeats: nYears,
		Unit:    OffsetUnitWeeks,
	}
	return samePeriodLag(t, y, spec, agg)
}

// SameDayHourLag creates a lag feature by aggregating values of and around
// the same day of year and same hour of day of previous years. dayWindow
// widens the candidate days by +-dayWindow to reduce noise. Rows with no
// valid historical offset are NaN. Results are rounded to the nearest
// integer.
func SameDayHourLag(t []time.Time, y []float64, nYears, dayWindow int, agg Aggregation) ([]float64, error) {
	spec := OffsetSpec{
		Base:    DayLagBase,
		Window:  dayWindow,
		Repeats: nYears,
		Unit:    OffsetUnitDays,
	}
	return samePeriodLag(t, y, spec, agg)
}

// samePeriodLag aligns each target row with the historical values at every
// candidate offset and reduces them row-wise. An offset participates only if
// at least one row can reach back to observed data; per-row lookbacks landing
// before the earliest time point are marked missing instead of failing.
func samePeriodLag(t []time.Time, y []float64, spec OffsetSpec, agg Aggregation) ([]float64, error) {
	if len(t) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrLagLenMismatch,
		)
	}
	if spec.Repeats < 0 || spec.Window < 0 {
		return nil, ErrNonPositiveSpan
	}

	ts := timedataset.TimeSlice(t)
	minTime := ts.MinTime()
	maxTime := ts.MaxTime()

	rowIdx := make(map[int64]int, len(t))
	for i, pnt := range t {
		rowIdx[pnt.Unix()] = i
	}

	var durs []time.Duration
	for _, offset := range spec.Offsets() {
		dur := time.Duration(offset) * spec.Unit.Duration()
		// drop offsets no row can satisfy
		if maxTime.Add(-dur).Before(minTime) {
			continue
		}
		durs = append(durs, dur)
	}

	res := make([]float64, len(t))
	vals := make([]float64, len(durs))
	for i := range t {
		for j, dur := range durs {
			vals[j] = math.NaN()
			lagTime := t[i].Add(-dur)
			if lagTime.Before(minTime) {
				continue
			}
			if idx, exists := rowIdx[lagTime.Unix()]; exists {
				vals[j] = y[idx]
			}
		}
		res[i] = math.Round(agg.Apply(vals))
	}
	return res, nil
}

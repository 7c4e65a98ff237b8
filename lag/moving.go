package lag

import (
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-tsfeatures/feature"
	"github.com/aouyang1/go-tsfeatures/timedataset"
)

const (
	MovingAveragePrefix  = "moving_average_lag_"
	MovingQuantilePrefix = "moving_quantile_lag_"
	MovingStdDevPrefix   = "moving_std_lag_"
	MovingAggPrefix      = "moving_agg_lag_"

	hoursPerWeek = 24 * 7
)

// SameDayHourMovingAverage creates moving average features by averaging
// values of the same day of week and same hour of day of previous weeks.
// See SameDayHourMovingAgg.
func SameDayHourMovingAverage(t []time.Time, y []float64, windowSize, startWeek, count int, fct time.Time) (feature.Set, error) {
	return movingAgg(t, y, windowSize, startWeek, count, fct, NewMean(), MovingAveragePrefix)
}

// SameDayHourMovingQuantile creates moving quantile features from values of
// the same day of week and same hour of day of previous weeks. q must lie in
// [0, 1]. See SameDayHourMovingAgg.
func SameDayHourMovingQuantile(t []time.Time, y []float64, windowSize, startWeek, count int, q float64, fct time.Time) (feature.Set, error) {
	agg, err := NewQuantile(q)
	if err != nil {
		return nil, err
	}
	return movingAgg(t, y, windowSize, startWeek, count, fct, agg, MovingQuantilePrefix)
}

// SameDayHourMovingStd creates moving standard deviation features from values
// of the same day of week and same hour of day of previous weeks. See
// SameDayHourMovingAgg.
func SameDayHourMovingStd(t []time.Time, y []float64, windowSize, startWeek, count int, fct time.Time) (feature.Set, error) {
	return movingAgg(t, y, windowSize, startWeek, count, fct, NewStdDev(), MovingStdDevPrefix)
}

// SameDayHourMovingAgg creates a series of moving aggregate features from
// values of the same day of week and same hour of day of previous weeks.
//
// For example startWeek=9, windowSize=4, and count=3 creates three features:
// moving_agg_lag_9 aggregating the same day and hour values of the 9th
// through 12th weeks before the current week, moving_agg_lag_10 over the
// 10th through 13th, and moving_agg_lag_11 over the 11th through 14th.
//
// fct is the forecast creation time. A candidate week offset is eligible only
// if its lookback in hours reaches strictly past the distance from every time
// point to fct, guaranteeing no feature is computed from data unavailable at
// forecast creation time. A feature whose candidate weeks are all ineligible
// is omitted entirely.
func SameDayHourMovingAgg(t []time.Time, y []float64, windowSize, startWeek, count int, fct time.Time, agg Aggregation) (feature.Set, error) {
	return movingAgg(t, y, windowSize, startWeek, count, fct, agg, MovingAggPrefix)
}

func movingAgg(t []time.Time, y []float64, windowSize, startWeek, count int, fct time.Time, agg Aggregation, prefix string) (feature.Set, error) {
	if len(t) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrLagLenMismatch,
		)
	}

	if !timedataset.TimeSlice(t).IsMonotonic() {
		var err error
		t, y, err = timedataset.SortByTime(t, y)
		if err != nil {
			return nil, err
		}
	}

	// the largest forward distance from forecast creation time determines
	// how far back an offset must reach to avoid leaking future data
	maxDiff := math.Inf(-1)
	for _, pnt := range t {
		diff := pnt.Sub(fct).Hours()
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	rowIdx := make(map[int64]int, len(t))
	for i, pnt := range t {
		rowIdx[pnt.Unix()] = i
	}

	res := make(feature.Set)
	for k := 0; k < count; k++ {
		week := startWeek + k
		var hourLags []int
		for w := 0; w < windowSize; w++ {
			h := (week + w) * hoursPerWeek
			if float64(h) > maxDiff {
				hourLags = append(hourLags, h)
			}
		}
		// entire feature fails the forecast creation time guard
		if len(hourLags) == 0 {
			continue
		}

		col := make([]float64, len(t))
		vals := make([]float64, len(hourLags))
		for i := range t {
			for j, h := range hourLags {
				vals[j] = math.NaN()
				lagTime := t[i].Add(-time.Duration(h) * time.Hour)
				if idx, exists := rowIdx[lagTime.Unix()]; exists {
					vals[j] = y[idx]
				}
			}
			col[i] = math.Round(agg.Apply(vals))
		}

		feat := feature.NewLag(prefix, week)
		res[feat.String()] = feature.Data{
			F:    feat,
			Data: col,
		}
	}
	return res, nil
}

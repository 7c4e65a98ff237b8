package timedataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// TimestampFormat is the accepted layout when parsing timestamp columns
// provided as strings.
const TimestampFormat = "2006-01-02 15:04:05"

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrCannotInferFreq    = errors.New("cannot infer frequency with less than 2 time points")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}

	return td, nil
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// DropNan returns a new TimeDataset removing any time points where the value
// is NaN.
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}

	tSeries := make([]time.Time, 0, len(td.T))
	ySeries := make([]float64, 0, len(td.T))
	for i := 0; i < len(td.T); i++ {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		tSeries = append(tSeries, td.T[i])
		ySeries = append(ySeries, td.Y[i])
	}
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// ParseTimes converts a slice of timestamp strings in the form
// "2006-01-02 15:04:05" to time points in UTC.
func ParseTimes(ts []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(ts))
	for i, s := range ts {
		pnt, err := time.Parse(TimestampFormat, s)
		if err != nil {
			return nil, fmt.Errorf("unable to parse timestamp at %d, %w", i, err)
		}
		out = append(out, pnt)
	}
	return out, nil
}

// SortByTime co-sorts a time and value slice in ascending time order returning
// new slices. Input slices are left untouched. Returns an error if the two
// slices differ in length.
func SortByTime(t []time.Time, y []float64) ([]time.Time, []float64, error) {
	if len(t) != len(y) {
		return nil, nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	idx := make([]int, len(t))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return t[idx[i]].Before(t[idx[j]])
	})

	tSorted := make([]time.Time, len(t))
	ySorted := make([]float64, len(t))
	for i, j := range idx {
		tSorted[i] = t[j]
		ySorted[i] = y[j]
	}
	return tSorted, ySorted, nil
}

package timedataset

import (
	"math"
	"time"
)

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// MinTime returns the earliest time point without assuming the slice is
// sorted.
func (t TimeSlice) MinTime() time.Time {
	var minTime time.Time
	for _, pnt := range t {
		if minTime.IsZero() || pnt.Before(minTime) {
			minTime = pnt
		}
	}
	return minTime
}

// MaxTime returns the latest time point without assuming the slice is sorted.
func (t TimeSlice) MaxTime() time.Time {
	var maxTime time.Time
	for _, pnt := range t {
		if maxTime.IsZero() || pnt.After(maxTime) {
			maxTime = pnt
		}
	}
	return maxTime
}

// IsMonotonic reports whether the time points are strictly increasing.
func (t TimeSlice) IsMonotonic() bool {
	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return false
		}
	}
	return true
}

func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt >= maxCnt && delta < maxDelta {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

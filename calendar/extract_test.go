package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractors(t *testing.T) {
	// Wednesday in week 27
	pnt := time.Date(2017, 7, 5, 13, 0, 0, 0, time.UTC)
	tSeries := []time.Time{pnt}

	assert.Equal(t, []float64{13}, HourOfDay(tSeries))
	assert.Equal(t, []float64{2}, DayOfWeek(tSeries))
	assert.Equal(t, []float64{5}, DayOfMonth(tSeries))
	assert.Equal(t, []float64{186}, DayOfYear(tSeries))
	assert.Equal(t, []float64{7}, MonthOfYear(tSeries))
	assert.Equal(t, []float64{27}, WeekOfYear(tSeries))
}

func TestDayOfWeekMondayZero(t *testing.T) {
	// 2017-01-02 is a Monday, 2017-01-08 is a Sunday
	assert.Equal(t, []float64{0}, DayOfWeek([]time.Time{time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC)}))
	assert.Equal(t, []float64{6}, DayOfWeek([]time.Time{time.Date(2017, 1, 8, 0, 0, 0, 0, time.UTC)}))
}

func TestWeekOfMonth(t *testing.T) {
	testData := map[string]struct {
		t        time.Time
		expected float64
	}{
		// May 2017 starts on a Monday
		"first day":     {time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC), 1},
		"first sunday":  {time.Date(2017, 5, 7, 0, 0, 0, 0, time.UTC), 1},
		"second monday": {time.Date(2017, 5, 8, 0, 0, 0, 0, time.UTC), 2},
		"last day":      {time.Date(2017, 5, 31, 0, 0, 0, 0, time.UTC), 5},
		// June 2017 starts on a Thursday
		"offset month start": {time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC), 1},
		"offset month day 5": {time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC), 2},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := WeekOfMonth([]time.Time{td.t})
			assert.Equal(t, []float64{td.expected}, res)
		})
	}
}

func TestTimeOfYear(t *testing.T) {
	testData := map[string]struct {
		t        time.Time
		expected float64
	}{
		"year start": {
			t:        time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 0.0,
		},
		"year end non leap": {
			t:        time.Date(2017, 12, 31, 23, 0, 0, 0, time.UTC),
			expected: 1.0,
		},
		"year end leap": {
			t:        time.Date(2016, 12, 31, 23, 0, 0, 0, time.UTC),
			expected: 1.0,
		},
		"leap midpoint differs": {
			t:        time.Date(2016, 7, 2, 11, 0, 0, 0, time.UTC),
			expected: (183.0*24.0 + 11.0) / (366.0*24.0 - 1.0),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := TimeOfYear([]time.Time{td.t})
			assert.InDelta(t, td.expected, res[0], 1e-12)
		})
	}
}

func TestTimeOfYearMonotonicWithinYear(t *testing.T) {
	tSeries := make([]time.Time, 0, 365*24)
	ct := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	for ct.Year() == 2017 {
		tSeries = append(tSeries, ct)
		ct = ct.Add(time.Hour)
	}

	res := TimeOfYear(tSeries)
	require.Len(t, res, 365*24)
	for i := 1; i < len(res); i++ {
		assert.Greater(t, res[i], res[i-1])
	}
	assert.Equal(t, 0.0, res[0])
	assert.InDelta(t, 1.0, res[len(res)-1], 1e-12)
}

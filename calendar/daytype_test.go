package calendar

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyTimes(start time.Time, n int) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.AddDate(0, 0, i))
	}
	return t
}

func TestDayTypesNoHolidays(t *testing.T) {
	// 2017-01-02 is a Monday
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 14)

	res, err := DayTypes(tSeries, nil, DefaultSemiHolidayOffset)
	require.NoError(t, err)

	expected := DayTypeSlice{
		Monday, MidWeek, MidWeek, MidWeek, Friday, Saturday, Sunday,
		Monday, MidWeek, MidWeek, MidWeek, Friday, Saturday, Sunday,
	}
	assert.Equal(t, expected, res)
	assert.Equal(t, []float64{0, 2, 2, 2, 4, 5, 6, 0, 2, 2, 2, 4, 5, 6}, res.Floats())
}

func TestDayTypesHolidays(t *testing.T) {
	// Mon Jan 2 through Sun Jan 8 with a holiday on Wednesday Jan 4
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 7)
	holiday := []bool{false, false, true, false, false, false, false}

	res, err := DayTypes(tSeries, holiday, DefaultSemiHolidayOffset)
	require.NoError(t, err)

	expected := DayTypeSlice{
		Monday, SemiHoliday, Holiday, SemiHoliday, Friday, Saturday, Sunday,
	}
	assert.Equal(t, expected, res)
}

func TestDayTypesAdjacentHolidays(t *testing.T) {
	// back to back holidays keep their holiday code rather than degrading
	// to semi-holiday
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 7)
	holiday := []bool{false, false, true, true, false, false, false}

	res, err := DayTypes(tSeries, holiday, DefaultSemiHolidayOffset)
	require.NoError(t, err)

	expected := DayTypeSlice{
		Monday, SemiHoliday, Holiday, Holiday, SemiHoliday, Saturday, Sunday,
	}
	assert.Equal(t, expected, res)
}

func TestDayTypesWiderOffset(t *testing.T) {
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 7)
	holiday := []bool{false, false, false, true, false, false, false}

	res, err := DayTypes(tSeries, holiday, 2*24*time.Hour)
	require.NoError(t, err)

	expected := DayTypeSlice{
		Monday, SemiHoliday, SemiHoliday, Holiday, SemiHoliday, SemiHoliday, Sunday,
	}
	assert.Equal(t, expected, res)
}

func TestDayTypesIndicatorLenMismatch(t *testing.T) {
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 7)
	_, err := DayTypes(tSeries, []bool{true}, DefaultSemiHolidayOffset)
	assert.ErrorIs(t, err, ErrIndicatorLenMismatch)
}

func TestHolidayIndicator(t *testing.T) {
	// points spanning Christmas 2017 which is observed on the day itself,
	// a Monday
	tSeries := []time.Time{
		time.Date(2017, 12, 24, 23, 0, 0, 0, time.UTC),
		time.Date(2017, 12, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 12, 25, 13, 0, 0, 0, time.UTC),
		time.Date(2017, 12, 26, 0, 0, 0, 0, time.UTC),
	}

	res := HolidayIndicator(tSeries, []*cal.Holiday{us.ChristmasDay})
	assert.Equal(t, []bool{false, true, true, false}, res)
}

func TestHolidayIndicatorEmpty(t *testing.T) {
	assert.Equal(t, []bool{}, HolidayIndicator([]time.Time{}, []*cal.Holiday{us.NewYear}))
}

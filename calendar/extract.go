package calendar

import (
	"math"
	"time"
)

// HourOfDay returns the hour component of each time point.
func HourOfDay(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		res[i] = float64(pnt.Hour())
	}
	return res
}

// DayOfWeek returns the day of week with Monday as 0 and Sunday as 6.
func DayOfWeek(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		res[i] = float64((int(pnt.Weekday()) + 6) % 7)
	}
	return res
}

// DayOfMonth returns the day of month component of each time point.
func DayOfMonth(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		res[i] = float64(pnt.Day())
	}
	return res
}

// DayOfYear returns the 1-based ordinal day of year of each time point.
func DayOfYear(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		res[i] = float64(pnt.YearDay())
	}
	return res
}

// MonthOfYear returns the month component of each time point.
func MonthOfYear(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		res[i] = float64(pnt.Month())
	}
	return res
}

// WeekOfYear returns the ISO 8601 week number of each time point.
func WeekOfYear(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		_, week := pnt.ISOWeek()
		res[i] = float64(week)
	}
	return res
}

// WeekOfMonth returns the week of the month of each time point where the
// first partial week counts as week 1.
func WeekOfMonth(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		firstDay := time.Date(pnt.Year(), pnt.Month(), 1, 0, 0, 0, 0, pnt.Location())
		firstWeekday := (int(firstDay.Weekday()) + 6) % 7
		adjusted := pnt.Day() + firstWeekday
		res[i] = math.Ceil(float64(adjusted) / 7.0)
	}
	return res
}

// TimeOfYear indicates the annual position of each time point linearly
// increasing from 0 on January 1 at 00:00 to 1 on December 31 at 23:00.
// Leap years normalize over 366 days. The value is discontinuous across the
// year boundary.
func TimeOfYear(t []time.Time) []float64 {
	res := make([]float64, len(t))
	for i, pnt := range t {
		hourOfYear := float64(pnt.YearDay()-1)*24.0 + float64(pnt.Hour())
		res[i] = hourOfYear / (float64(daysInYear(pnt.Year()))*24.0 - 1.0)
	}
	return res
}

func daysInYear(year int) int {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

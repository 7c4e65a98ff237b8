// Package calendar derives calendar features from a slice of time points.
// All functions are pure and assume nothing about sampling frequency.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrIndicatorLenMismatch = errors.New("holiday indicator has a different length than time points")

// DayType categorizes a day for load forecasting purposes. Tuesday through
// Thursday behave alike so they share a single code. The numeric values match
// the columns historically emitted by this feature so existing models keep
// working.
type DayType int

const (
	Monday      DayType = 0
	MidWeek     DayType = 2
	Friday      DayType = 4
	Saturday    DayType = 5
	Sunday      DayType = 6
	Holiday     DayType = 7
	SemiHoliday DayType = 8
)

// DefaultSemiHolidayOffset marks the day before and after a holiday as
// semi-holidays.
const DefaultSemiHolidayOffset = 24 * time.Hour

func (d DayType) String() string {
	switch d {
	case Monday:
		return "monday"
	case MidWeek:
		return "midweek"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	case Holiday:
		return "holiday"
	case SemiHoliday:
		return "semi_holiday"
	}
	return fmt.Sprintf("unknown_%d", int(d))
}

type DayTypeSlice []DayType

// Floats converts day types to a float column for use as model input.
func (d DayTypeSlice) Floats() []float64 {
	res := make([]float64, len(d))
	for i, dt := range d {
		res[i] = float64(dt)
	}
	return res
}

func weekdayType(wd time.Weekday) DayType {
	switch wd {
	case time.Monday:
		return Monday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	}
	return MidWeek
}

// DayTypes maps each time point to its DayType. The optional holiday
// indicator overrides the weekday code with Holiday, and any date within
// semiHolidayOffset of a holiday that is not itself a holiday is coded
// SemiHoliday. Holiday always wins over SemiHoliday.
func DayTypes(t []time.Time, holiday []bool, semiHolidayOffset time.Duration) (DayTypeSlice, error) {
	if holiday != nil && len(holiday) != len(t) {
		return nil, fmt.Errorf(
			"indicator has length of %d, but time has a length of %d, %w",
			len(holiday), len(t), ErrIndicatorLenMismatch,
		)
	}

	res := make(DayTypeSlice, len(t))
	for i, pnt := range t {
		res[i] = weekdayType(pnt.Weekday())
	}
	if holiday == nil {
		return res, nil
	}

	holidayDates := make(map[time.Time]struct{})
	for i, isHol := range holiday {
		if isHol {
			res[i] = Holiday
			holidayDates[truncateToDate(t[i])] = struct{}{}
		}
	}

	semiHolidayDates := make(map[time.Time]struct{})
	for d := range holidayDates {
		for off := -semiHolidayOffset; off <= semiHolidayOffset; off += 24 * time.Hour {
			near := truncateToDate(d.Add(off))
			if _, exists := holidayDates[near]; exists {
				continue
			}
			semiHolidayDates[near] = struct{}{}
		}
	}

	for i, pnt := range t {
		if res[i] == Holiday {
			continue
		}
		if _, exists := semiHolidayDates[truncateToDate(pnt)]; exists {
			res[i] = SemiHoliday
		}
	}
	return res, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

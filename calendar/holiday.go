package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// HolidayIndicator builds a binary indicator marking any time point landing
// on the observed date of one of the provided holidays. The indicator feeds
// directly into DayTypes.
func HolidayIndicator(t []time.Time, hols []*cal.Holiday) []bool {
	res := make([]bool, len(t))
	if len(t) == 0 || len(hols) == 0 {
		return res
	}

	minYear := t[0].Year()
	maxYear := t[0].Year()
	for _, pnt := range t {
		if pnt.Year() < minYear {
			minYear = pnt.Year()
		}
		if pnt.Year() > maxYear {
			maxYear = pnt.Year()
		}
	}

	holidayDates := make(map[holidayDate]struct{})
	for _, hol := range hols {
		for year := minYear; year <= maxYear; year++ {
			_, observed := hol.Calc(year)
			y, m, d := observed.Date()
			holidayDates[holidayDate{y, m, d}] = struct{}{}
		}
	}

	for i, pnt := range t {
		y, m, d := pnt.Date()
		if _, exists := holidayDates[holidayDate{y, m, d}]; exists {
			res[i] = true
		}
	}
	return res
}

type holidayDate struct {
	year  int
	month time.Month
	day   int
}

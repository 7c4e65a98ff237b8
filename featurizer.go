// Package tsfeatures derives calendar, seasonal, and historical lag features
// from regularly sampled time-series data for use as forecasting model
// inputs. The library performs no I/O and keeps no state across calls.
package tsfeatures

import (
	"fmt"
	"time"

	"github.com/aouyang1/go-tsfeatures/calendar"
	"github.com/aouyang1/go-tsfeatures/feature"
	"github.com/aouyang1/go-tsfeatures/lag"
	"github.com/aouyang1/go-tsfeatures/timedataset"
)

// Featurizer assembles a feature set from a univariate time series using the
// configured calendar and lag feature generators.
type Featurizer struct {
	opt *Options
}

// New creates a new instance of a Featurizer using the provided options. If
// no options are provided a default is used.
func New(opt *Options) *Featurizer {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	return &Featurizer{opt: opt}
}

// Generate builds the configured feature columns for the input series. The
// optional holiday indicator feeds day type coding. fct is the forecast
// creation time bounding every moving aggregate lookback; it is ignored when
// no moving aggregate features are configured.
func (f *Featurizer) Generate(t []time.Time, y []float64, holiday []bool, fct time.Time) (feature.Set, error) {
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create feature dataset, %w", err)
	}

	res := make(feature.Set)

	if f.opt.DayTypes {
		offset := time.Duration(f.opt.SemiHolidayOffsetDays) * 24 * time.Hour
		dt, err := calendar.DayTypes(td.T, holiday, offset)
		if err != nil {
			return nil, fmt.Errorf("unable to generate day types, %w", err)
		}
		feat := feature.NewCalendar("day_type")
		res[feat.String()] = feature.Data{F: feat, Data: dt.Floats()}
	}
	if f.opt.HourOfDay {
		feat := feature.NewCalendar("hour_of_day")
		res[feat.String()] = feature.Data{F: feat, Data: calendar.HourOfDay(td.T)}
	}
	if f.opt.DayOfWeek {
		feat := feature.NewCalendar("day_of_week")
		res[feat.String()] = feature.Data{F: feat, Data: calendar.DayOfWeek(td.T)}
	}
	if f.opt.TimeOfYear {
		feat := feature.NewCalendar("time_of_year")
		res[feat.String()] = feature.Data{F: feat, Data: calendar.TimeOfYear(td.T)}
	}

	if f.opt.AnnualOrders > 0 {
		res.Update(calendar.AnnualFourier(td.T, f.opt.AnnualOrders))
	}
	if f.opt.WeeklyOrders > 0 {
		res.Update(calendar.WeeklyFourier(td.T, f.opt.WeeklyOrders))
	}
	if f.opt.DailyOrders > 0 {
		res.Update(calendar.DailyFourier(td.T, f.opt.DailyOrders))
	}

	if mw := f.opt.MovingAverage; mw != nil {
		ma, err := lag.SameDayHourMovingAverage(td.T, td.Y, mw.WindowSize, mw.StartWeek, mw.Count, fct)
		if err != nil {
			return nil, fmt.Errorf("unable to generate moving average features, %w", err)
		}
		res.Update(ma)
	}

	return res, nil
}

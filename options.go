package tsfeatures

// MovingWindowOptions configures a family of same day and hour moving
// aggregate features over previous weeks. StartWeek is the first lookback
// week, Count the number of features to emit, and WindowSize the number of
// weeks reduced into each feature.
type MovingWindowOptions struct {
	WindowSize int `json:"window_size"`
	StartWeek  int `json:"start_week"`
	Count      int `json:"count"`
}

// Options configures which feature columns a Featurizer generates.
type Options struct {
	DayTypes              bool `json:"day_types"`
	SemiHolidayOffsetDays int  `json:"semi_holiday_offset_days"`

	HourOfDay  bool `json:"hour_of_day"`
	DayOfWeek  bool `json:"day_of_week"`
	TimeOfYear bool `json:"time_of_year"`

	AnnualOrders int `json:"annual_orders"`
	WeeklyOrders int `json:"weekly_orders"`
	DailyOrders  int `json:"daily_orders"`

	MovingAverage *MovingWindowOptions `json:"moving_average,omitempty"`
}

// NewDefaultOptions generates calendar, time of year, and low order seasonal
// harmonics suitable for hourly load data.
func NewDefaultOptions() *Options {
	return &Options{
		DayTypes:              true,
		SemiHolidayOffsetDays: 1,
		HourOfDay:             true,
		DayOfWeek:             true,
		TimeOfYear:            true,
		AnnualOrders:          3,
		WeeklyOrders:          3,
		DailyOrders:           3,
	}
}

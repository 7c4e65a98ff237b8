package calendar

import (
	"math"
	"time"

	"github.com/aouyang1/go-tsfeatures/feature"
)

const (
	// AnnualPeriod uses the mean tropical year length in days so harmonics
	// stay phase aligned across leap years.
	AnnualPeriod = 365.24
	WeeklyPeriod = 7.0
	DailyPeriod  = 24.0
)

// AnnualFourier creates sin/cos pairs of the day of year at harmonics
// 1 through nHarmonics.
func AnnualFourier(t []time.Time, nHarmonics int) feature.Set {
	return fourierSet("annual", DayOfYear(t), nHarmonics, AnnualPeriod)
}

// WeeklyFourier creates sin/cos pairs of the 1-based day of week at harmonics
// 1 through nHarmonics.
func WeeklyFourier(t []time.Time, nHarmonics int) feature.Set {
	tFeat := DayOfWeek(t)
	for i := range tFeat {
		tFeat[i] += 1
	}
	return fourierSet("weekly", tFeat, nHarmonics, WeeklyPeriod)
}

// DailyFourier creates sin/cos pairs of the 1-based hour of day at harmonics
// 1 through nHarmonics.
func DailyFourier(t []time.Time, nHarmonics int) feature.Set {
	tFeat := HourOfDay(t)
	for i := range tFeat {
		tFeat[i] += 1
	}
	return fourierSet("daily", tFeat, nHarmonics, DailyPeriod)
}

func fourierSet(name string, tFeat []float64, nHarmonics int, period float64) feature.Set {
	x := make(feature.Set)
	for order := 1; order <= nHarmonics; order++ {
		sinFeat, cosFeat := fourierComponent(tFeat, order, period)
		sinFeatCol := feature.NewSeasonality(name, feature.FourierCompSin, order)
		cosFeatCol := feature.NewSeasonality(name, feature.FourierCompCos, order)
		x[sinFeatCol.String()] = feature.Data{
			F:    sinFeatCol,
			Data: sinFeat,
		}
		x[cosFeatCol.String()] = feature.Data{
			F:    cosFeatCol,
			Data: cosFeat,
		}
	}
	return x
}

func fourierComponent(timeFeature []float64, order int, period float64) ([]float64, []float64) {
	omega := 2.0 * math.Pi * float64(order) / period
	sinFeat := make([]float64, len(timeFeature))
	cosFeat := make([]float64, len(timeFeature))
	for i, tFeat := range timeFeature {
		rad := omega * tFeat
		sinFeat[i] = math.Sin(rad)
		cosFeat[i] = math.Cos(rad)
	}
	return sinFeat, cosFeat
}

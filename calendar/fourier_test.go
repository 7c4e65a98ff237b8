package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/aouyang1/go-tsfeatures/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyTimes(start time.Time, n int) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.Add(time.Duration(i)*time.Hour))
	}
	return t
}

func TestDailyFourier(t *testing.T) {
	tSeries := hourlyTimes(time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 48)

	feats := DailyFourier(tSeries, 2)
	require.Len(t, feats, 4)

	sin1 := feats[feature.NewSeasonality("daily", feature.FourierCompSin, 1).String()]
	cos1 := feats[feature.NewSeasonality("daily", feature.FourierCompCos, 1).String()]
	require.Len(t, sin1.Data, 48)

	// midnight maps to t=1 on a 24 hour period
	assert.InDelta(t, math.Sin(2.0*math.Pi/24.0), sin1.Data[0], 1e-12)
	assert.InDelta(t, math.Cos(2.0*math.Pi/24.0), cos1.Data[0], 1e-12)

	// repeats with a 24 hour period
	for i := 0; i < 24; i++ {
		assert.InDelta(t, sin1.Data[i], sin1.Data[i+24], 1e-9)
	}
}

func TestWeeklyFourier(t *testing.T) {
	tSeries := dailyTimes(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 14)

	feats := WeeklyFourier(tSeries, 3)
	require.Len(t, feats, 6)

	sin2 := feats[feature.NewSeasonality("weekly", feature.FourierCompSin, 2).String()]
	// Monday maps to t=1 on a 7 day period
	assert.InDelta(t, math.Sin(2.0*2.0*math.Pi/7.0), sin2.Data[0], 1e-12)
}

func TestAnnualFourier(t *testing.T) {
	tSeries := dailyTimes(time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 365)

	feats := AnnualFourier(tSeries, 1)
	require.Len(t, feats, 2)

	sin1 := feats[feature.NewSeasonality("annual", feature.FourierCompSin, 1).String()]
	assert.InDelta(t, math.Sin(2.0*math.Pi*1.0/365.24), sin1.Data[0], 1e-12)
}

func TestFourierIdentity(t *testing.T) {
	tSeries := hourlyTimes(time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC), 24*14)

	for name, feats := range map[string]feature.Set{
		"annual": AnnualFourier(tSeries, 3),
		"weekly": WeeklyFourier(tSeries, 3),
		"daily":  DailyFourier(tSeries, 3),
	} {
		for order := 1; order <= 3; order++ {
			sinFeat := feats[feature.NewSeasonality(name, feature.FourierCompSin, order).String()]
			cosFeat := feats[feature.NewSeasonality(name, feature.FourierCompCos, order).String()]
			require.Len(t, sinFeat.Data, len(tSeries))
			for i := range sinFeat.Data {
				identity := sinFeat.Data[i]*sinFeat.Data[i] + cosFeat.Data[i]*cosFeat.Data[i]
				assert.InDelta(t, 1.0, identity, 1e-9)
			}
		}
	}
}

package feature

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarString(t *testing.T) {
	feat := NewCalendar("day_type")
	expected := "cal_day_type"
	assert.Equal(t, expected, feat.String())
}

func TestCalendarGet(t *testing.T) {
	feat := NewCalendar("day_type")

	testData := map[string]struct {
		label     string
		expVal    string
		expExists bool
	}{
		"unknown": {
			label: "unknown",
		},
		"capitalized": {
			label:     "NAME",
			expVal:    "day_type",
			expExists: true,
		},
		"exact match": {
			label:     "name",
			expVal:    "day_type",
			expExists: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			val, exists := feat.Get(td.label)
			assert.Equal(t, td.expExists, exists, "exists")
			assert.Equal(t, td.expVal, val, "value")
		})
	}
}

func TestCalendarUnmarshalJSON(t *testing.T) {
	feat := NewCalendar("day_type")
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Calendar
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}

func TestSeasonalityString(t *testing.T) {
	feat := NewSeasonality("annual", FourierCompSin, 3)
	expected := "seas_annual_03_sin"
	assert.Equal(t, expected, feat.String())
}

func TestSeasonalityUnmarshalJSON(t *testing.T) {
	feat := NewSeasonality("weekly", FourierCompCos, 2)
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Seasonality
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}

func TestLagString(t *testing.T) {
	feat := NewLag("moving_average_lag_", 9)
	expected := "moving_average_lag_9"
	assert.Equal(t, expected, feat.String())
}

func TestLagGet(t *testing.T) {
	feat := NewLag("week_lag_", 52)

	val, exists := feat.Get("prefix")
	assert.True(t, exists)
	assert.Equal(t, "week_lag_", val)

	val, exists = feat.Get("OFFSET")
	assert.True(t, exists)
	assert.Equal(t, "52", val)

	_, exists = feat.Get("unknown")
	assert.False(t, exists)
}

func TestLagUnmarshalJSON(t *testing.T) {
	feat := NewLag("moving_std_lag_", 11)
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Lag
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}

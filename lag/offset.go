// Package lag builds historical lag and moving aggregate features for
// time-series forecasting. Lookbacks are calendar aware, aggregate only
// observed history, and honor a forecast creation time cutoff so no feature
// depends on data unavailable at prediction time.
package lag

import (
	"fmt"
	"time"
)

// OffsetUnit is the time unit an offset count is expressed in.
type OffsetUnit int

const (
	OffsetUnitWeeks OffsetUnit = iota
	OffsetUnitDays
)

func (u OffsetUnit) Duration() time.Duration {
	switch u {
	case OffsetUnitWeeks:
		return 7 * 24 * time.Hour
	case OffsetUnitDays:
		return 24 * time.Hour
	}
	return 0
}

func (u OffsetUnit) String() string {
	switch u {
	case OffsetUnitWeeks:
		return "weeks"
	case OffsetUnitDays:
		return "days"
	}
	return fmt.Sprintf("unknown_%d", int(u))
}

// OffsetSpec expands to the set of raw candidate lookback offsets for a same
// period lag. Base is the period count of one repetition e.g. 52 weeks,
// Window widens each repetition by +-Window periods to reduce noise, and
// Repeats replicates the window once per year back.
type OffsetSpec struct {
	Base    int
	Window  int
	Repeats int
	Unit    OffsetUnit
}

// Offsets returns the full candidate offset list in Unit periods e.g.
// Base=52, Window=1, Repeats=2 yields [51 52 53 103 104 105].
func (s OffsetSpec) Offsets() []int {
	offsets := make([]int, 0, s.Repeats*(2*s.Window+1))
	for y := 0; y < s.Repeats; y++ {
		for k := s.Base - s.Window; k <= s.Base+s.Window; k++ {
			offsets = append(offsets, k+y*s.Base)
		}
	}
	return offsets
}

package lag

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-tsfeatures/stats"
)

var ErrInvalidQuantile = errors.New("quantile must be between 0 and 1")

type aggKind int

const (
	aggMean aggKind = iota
	aggQuantile
	aggStdDev
)

// Aggregation is the closed set of reductions applied to the valid historical
// values aligned to each target row. Construct with NewMean, NewQuantile, or
// NewStdDev; invalid parameters fail at construction rather than silently
// producing no output.
type Aggregation struct {
	kind aggKind
	q    float64
}

func NewMean() Aggregation {
	return Aggregation{kind: aggMean}
}

func NewQuantile(q float64) (Aggregation, error) {
	if q < 0 || q > 1 {
		return Aggregation{}, fmt.Errorf("got %f, %w", q, ErrInvalidQuantile)
	}
	return Aggregation{kind: aggQuantile, q: q}, nil
}

func NewStdDev() Aggregation {
	return Aggregation{kind: aggStdDev}
}

func (a Aggregation) String() string {
	switch a.kind {
	case aggMean:
		return "mean"
	case aggQuantile:
		return fmt.Sprintf("quantile_%0.2f", a.q)
	case aggStdDev:
		return "std"
	}
	return fmt.Sprintf("unknown_%d", int(a.kind))
}

// Apply reduces the non-NaN subset of vals. Returns NaN when no valid values
// are present.
func (a Aggregation) Apply(vals []float64) float64 {
	switch a.kind {
	case aggQuantile:
		return stats.Quantile(a.q, vals)
	case aggStdDev:
		return stats.StdDev(vals)
	}
	return stats.Mean(vals)
}

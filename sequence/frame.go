// Package sequence reshapes multi-grain time-series tables into the fixed
// length overlapping sequences and static feature arrays consumed by
// sequence models. A grain is the pair of categorical keys identifying one
// individual series e.g. store and product.
package sequence

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoRows            = errors.New("frame has no rows")
	ErrColLenMismatch    = errors.New("column has a different length than grain keys")
	ErrGrainLenMismatch  = errors.New("grain key columns have different lengths")
	ErrUnknownColumn     = errors.New("unknown feature column")
	ErrInvalidSeqLen     = errors.New("sequence length must be at least 1")
	ErrInvalidTimesteps  = errors.New("timestep bounds are invalid")
	ErrInvalidTotalSteps = errors.New("total timesteps must be at least 1")
)

// Frame is an ordered table of float feature columns keyed by two grain
// columns. Rows for one grain are expected to be stored in time order as
// produced by upstream feature construction.
type Frame struct {
	grain1 []string
	grain2 []string
	cols   map[string][]float64
}

// NewFrame validates that the grain key columns and every feature column
// share the same length and returns a Frame copying the inputs.
func NewFrame(grain1, grain2 []string, cols map[string][]float64) (*Frame, error) {
	if len(grain1) != len(grain2) {
		return nil, fmt.Errorf(
			"first grain has length of %d, but second has a length of %d, %w",
			len(grain1), len(grain2), ErrGrainLenMismatch,
		)
	}
	for name, col := range cols {
		if len(col) != len(grain1) {
			return nil, fmt.Errorf(
				"column %q has length of %d, but grain keys have a length of %d, %w",
				name, len(col), len(grain1), ErrColLenMismatch,
			)
		}
	}

	g1 := make([]string, len(grain1))
	g2 := make([]string, len(grain2))
	copy(g1, grain1)
	copy(g2, grain2)

	colsCopy := make(map[string][]float64, len(cols))
	for name, col := range cols {
		c := make([]float64, len(col))
		copy(c, col)
		colsCopy[name] = c
	}

	return &Frame{
		grain1: g1,
		grain2: g2,
		cols:   colsCopy,
	}, nil
}

func (f *Frame) Len() int {
	return len(f.grain1)
}

// Columns returns the sorted feature column names.
func (f *Frame) Columns() []string {
	names := make([]string, 0, len(f.cols))
	for name := range f.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group is one grain's row subsequence in frame order.
type Group struct {
	Grain1 string
	Grain2 string
	Rows   []int
}

// GroupBy partitions the frame rows by grain pair iterating the Cartesian
// product of the sorted unique values of each grain column. Pairs with no
// rows are skipped. Both SequenceArray and StaticFeatureArray derive their
// entity ordering from this single pass so their outputs stay aligned.
func (f *Frame) GroupBy() []Group {
	rowsByPair := make(map[[2]string][]int)
	for i := range f.grain1 {
		key := [2]string{f.grain1[i], f.grain2[i]}
		rowsByPair[key] = append(rowsByPair[key], i)
	}

	uniq1 := sortedUnique(f.grain1)
	uniq2 := sortedUnique(f.grain2)

	groups := make([]Group, 0, len(rowsByPair))
	for _, g1 := range uniq1 {
		for _, g2 := range uniq2 {
			rows, exists := rowsByPair[[2]string{g1, g2}]
			if !exists {
				continue
			}
			groups = append(groups, Group{
				Grain1: g1,
				Grain2: g2,
				Rows:   rows,
			})
		}
	}
	return groups
}

// rowMatrix gathers the requested feature columns for the given rows
// producing a (rows, features) matrix.
func (f *Frame) rowMatrix(rows []int, cols []string) ([][]float64, error) {
	colData := make([][]float64, len(cols))
	for j, name := range cols {
		col, exists := f.cols[name]
		if !exists {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		colData[j] = col
	}

	res := make([][]float64, len(rows))
	for i, r := range rows {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = colData[j][r]
		}
		res[i] = row
	}
	return res, nil
}

func sortedUnique(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	uniq := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Strings(uniq)
	return uniq
}

package sequence

import (
	"fmt"
	"iter"

	"github.com/aouyang1/go-tsfeatures/array"
)

// Windows returns a lazy iterator over every fixed length window of the
// (rows, features) matrix. Each window is a view starting at row i and
// ending at row i+seqLen-1 for i over [startTimestep, endTimestep-seqLen+1].
// endTimestep is the inclusive last usable row index; pass a negative value
// to default to the final row. The iterator is finite and restartable.
func Windows(rows [][]float64, seqLen, startTimestep, endTimestep int) iter.Seq[[][]float64] {
	if endTimestep < 0 || endTimestep > len(rows)-1 {
		endTimestep = len(rows) - 1
	}
	return func(yield func([][]float64) bool) {
		for i := startTimestep; i <= endTimestep-seqLen+1; i++ {
			if !yield(rows[i : i+seqLen]) {
				return
			}
		}
	}
}

// SequenceArray slides a window of seqLen rows over each grain's time
// ordered feature rows and stacks every window into a tensor of shape
// (totalSequences, seqLen, len(cols)). Grains are iterated in GroupBy order.
// startTimestep and endTimestep bound the usable rows per grain with a
// negative endTimestep defaulting to each grain's final row.
func SequenceArray(f *Frame, seqLen int, cols []string, startTimestep, endTimestep int) (*array.Tensor, error) {
	if f.Len() == 0 {
		return nil, ErrNoRows
	}
	if seqLen < 1 {
		return nil, fmt.Errorf("got %d, %w", seqLen, ErrInvalidSeqLen)
	}
	if startTimestep < 0 {
		return nil, fmt.Errorf("start timestep %d, %w", startTimestep, ErrInvalidTimesteps)
	}

	groups := f.GroupBy()

	grpRows := make([][][]float64, len(groups))
	var total int
	for gi, grp := range groups {
		rows, err := f.rowMatrix(grp.Rows, cols)
		if err != nil {
			return nil, err
		}
		grpRows[gi] = rows

		end := endTimestep
		if end < 0 || end > len(rows)-1 {
			end = len(rows) - 1
		}
		if n := end - seqLen + 2 - startTimestep; n > 0 {
			total += n
		}
	}

	res, err := array.NewTensor(total, seqLen, len(cols))
	if err != nil {
		return nil, err
	}

	var s int
	for _, rows := range grpRows {
		for window := range Windows(rows, seqLen, startTimestep, endTimestep) {
			if err := res.SetSequence(s, window); err != nil {
				return nil, err
			}
			s++
		}
	}
	return res, nil
}

// StaticFeatureArray extracts the first totalTimesteps rows of the chosen
// columns per grain, assumed constant within a grain, building the static
// feature table matching SequenceArray's grain ordering. Grains with fewer
// rows contribute what they have.
func StaticFeatureArray(f *Frame, totalTimesteps int, cols []string) (*array.Array, error) {
	if f.Len() == 0 {
		return nil, ErrNoRows
	}
	if totalTimesteps < 1 {
		return nil, fmt.Errorf("got %d, %w", totalTimesteps, ErrInvalidTotalSteps)
	}

	var out [][]float64
	for _, grp := range f.GroupBy() {
		rows := grp.Rows
		if len(rows) > totalTimesteps {
			rows = rows[:totalTimesteps]
		}
		mx, err := f.rowMatrix(rows, cols)
		if err != nil {
			return nil, err
		}
		out = append(out, mx...)
	}
	return array.New2D(out)
}

package array

import (
	"errors"
	"fmt"
)

var (
	ErrSeqOutOfBounds   = errors.New("sequence is out of bounds")
	ErrStepOutOfBounds  = errors.New("timestep is out of bounds")
	ErrFeatOutOfBounds  = errors.New("feature is out of bounds")
	ErrSeqShapeMismatch = errors.New("sequence shape mismatch")
)

// Tensor is a dense 3D array of shape (sequences, timesteps, features)
// stored in row major order. It holds the stacked output of a sliding window
// sequence builder where each sequence is a (timesteps, features) matrix.
type Tensor struct {
	arr   []float64
	seqs  int
	steps int
	feats int
}

// NewTensor allocates a zeroed tensor with the given shape.
func NewTensor(seqs, steps, feats int) (*Tensor, error) {
	if seqs < 0 || steps < 0 || feats < 0 {
		return nil, ErrNegativeDim
	}
	return &Tensor{
		arr:   make([]float64, seqs*steps*feats),
		seqs:  seqs,
		steps: steps,
		feats: feats,
	}, nil
}

func (t *Tensor) Shape() (int, int, int) {
	return t.seqs, t.steps, t.feats
}

func (t *Tensor) Size() int {
	return len(t.arr)
}

// At retrieves the value at sequence s, timestep i, and feature j.
func (t *Tensor) At(s, i, j int) (float64, error) {
	if s < 0 || s >= t.seqs {
		return 0.0, ErrSeqOutOfBounds
	}
	if i < 0 || i >= t.steps {
		return 0.0, ErrStepOutOfBounds
	}
	if j < 0 || j >= t.feats {
		return 0.0, ErrFeatOutOfBounds
	}
	return t.arr[(s*t.steps+i)*t.feats+j], nil
}

// Sequence returns a copy of the s-th (timesteps, features) matrix.
func (t *Tensor) Sequence(s int) ([][]float64, error) {
	if s < 0 || s >= t.seqs {
		return nil, ErrSeqOutOfBounds
	}

	res := make([][]float64, t.steps)
	for i := 0; i < t.steps; i++ {
		row := make([]float64, t.feats)
		start := (s*t.steps + i) * t.feats
		copy(row, t.arr[start:start+t.feats])
		res[i] = row
	}
	return res, nil
}

// SetSequence overwrites the s-th sequence with the provided
// (timesteps, features) matrix.
func (t *Tensor) SetSequence(s int, seq [][]float64) error {
	if s < 0 || s >= t.seqs {
		return ErrSeqOutOfBounds
	}
	if len(seq) != t.steps {
		return fmt.Errorf("got %d timesteps, want %d, %w", len(seq), t.steps, ErrSeqShapeMismatch)
	}
	for i, row := range seq {
		if len(row) != t.feats {
			return fmt.Errorf("at timestep %d got %d features, want %d, %w", i, len(row), t.feats, ErrSeqShapeMismatch)
		}
		copy(t.arr[(s*t.steps+i)*t.feats:], row)
	}
	return nil
}

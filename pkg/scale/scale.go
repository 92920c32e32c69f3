// Package scale provides the per-column normalization used ahead of
// dimensionality reduction: z-score standardization for the shared input
// matrix and a min-max rescale for techniques that require non-negative
// entries.
package scale

import (
	"errors"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/stats"
)

var errNotFitted = errors.New("scale: transform called before Fit")

// StandardScaler standardizes each column to zero mean and unit variance.
// Columns with zero variance map to zero.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scale: empty input")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.Mean[j] = stats.Mean(col)
		s.Std[j] = stats.Std(col)
	}
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, errNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			if s.Std[j] != 0 {
				r[j] = (v - s.Mean[j]) / s.Std[j]
			}
		}
		out[i] = r
	}
	return out, nil
}

// InverseTransform maps standardized values back to the original units.
func (s *StandardScaler) InverseTransform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, errNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = v*s.Std[j] + s.Mean[j]
		}
		out[i] = r
	}
	return out, nil
}

func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// MinMaxScaler rescales each column to [0, 1]. Constant columns map to zero.
type MinMaxScaler struct {
	Min []float64
	Max []float64
	fit bool
}

func NewMinMaxScaler() *MinMaxScaler { return &MinMaxScaler{} }

func (s *MinMaxScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scale: empty input")
	}
	cols := len(X[0])
	s.Min = make([]float64, cols)
	s.Max = make([]float64, cols)
	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.Min[j], s.Max[j] = stats.MinMax(col)
	}
	s.fit = true
	return nil
}

func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, errNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			if s.Max[j] != s.Min[j] {
				r[j] = (v - s.Min[j]) / (s.Max[j] - s.Min[j])
			}
		}
		out[i] = r
	}
	return out, nil
}

// InverseTransform maps [0, 1] values back to the original units.
func (s *MinMaxScaler) InverseTransform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, errNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = v*(s.Max[j]-s.Min[j]) + s.Min[j]
		}
		out[i] = r
	}
	return out, nil
}

func (s *MinMaxScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Standardize standardizes each column to zero mean and unit variance in one
// call, for callers that do not need the fitted parameters.
func Standardize(X [][]float64) [][]float64 {
	s := NewStandardScaler()
	out, err := s.FitTransform(X)
	if err != nil {
		return nil
	}
	return out
}

// MinMax rescales each column to [0, 1] in one call.
func MinMax(X [][]float64) [][]float64 {
	s := NewMinMaxScaler()
	out, err := s.FitTransform(X)
	if err != nil {
		return nil
	}
	return out
}

// Package reduce implements the six dimensionality-reduction techniques the
// report compares: PCA, SVD, ICA, NMF, t-SNE, and UMAP. Each technique is an
// independent, stateless transformation of a read-only input matrix into a
// labeled low-dimensional embedding. A technique failing is local: the caller
// reports it absent and continues with the rest.
package reduce

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reducer maps an n x d input matrix to an n x k embedding.
type Reducer interface {
	Name() string
	Reduce(X [][]float64) ([][]float64, error)
}

// Embedding is one technique's output: the reduced coordinates of every
// sample plus the original label column, tagged with the technique name.
type Embedding struct {
	Technique string
	Points    [][]float64
	Labels    []string
}

func (e *Embedding) Rows() int { return len(e.Points) }

func (e *Embedding) Cols() int {
	if len(e.Points) == 0 {
		return 0
	}
	return len(e.Points[0])
}

// Run applies a reducer and attaches the label column to the result.
func Run(r Reducer, X [][]float64, labels []string) (*Embedding, error) {
	pts, err := r.Reduce(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name(), err)
	}
	if len(pts) != len(X) {
		return nil, fmt.Errorf("%s: embedding has %d rows, want %d", r.Name(), len(pts), len(X))
	}
	lbl := make([]string, len(labels))
	copy(lbl, labels)
	return &Embedding{Technique: r.Name(), Points: pts, Labels: lbl}, nil
}

var errEmpty = errors.New("empty input matrix")

// denseFrom copies a rectangular [][]float64 into a gonum Dense.
func denseFrom(X [][]float64) (*mat.Dense, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return nil, errEmpty
	}
	n, d := len(X), len(X[0])
	m := mat.NewDense(n, d, nil)
	for i, row := range X {
		if len(row) != d {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), d)
		}
		m.SetRow(i, row)
	}
	return m, nil
}

// toRows copies a gonum matrix back into row slices.
func toRows(m mat.Matrix) [][]float64 {
	n, d := m.Dims()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = m.At(i, j)
		}
		out[i] = row
	}
	return out
}

// centerColumns subtracts each column's mean.
func centerColumns(m *mat.Dense) *mat.Dense {
	n, d := m.Dims()
	out := mat.NewDense(n, d, nil)
	for j := 0; j < d; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += m.At(i, j)
		}
		mean := sum / float64(n)
		for i := 0; i < n; i++ {
			out.Set(i, j, m.At(i, j)-mean)
		}
	}
	return out
}

package reduce

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// SVD factorizes the data matrix into orthogonal factors and uses the
// leading left singular vectors as the embedding. Deterministic.
type SVD struct {
	Components int

	// Values holds the singular values of the input. Populated by Reduce.
	Values []float64
}

func NewSVD(k int) *SVD { return &SVD{Components: k} }

func (s *SVD) Name() string { return "SVD" }

func (s *SVD) Reduce(X [][]float64) ([][]float64, error) {
	m, err := denseFrom(X)
	if err != nil {
		return nil, err
	}
	n, _ := m.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, errors.New("singular value decomposition did not converge")
	}
	var u mat.Dense
	svd.UTo(&u)
	s.Values = svd.Values(nil)

	k := s.Components
	if k <= 0 {
		k = 2
	}
	if _, uc := u.Dims(); k > uc {
		k = uc
	}
	return toRows(u.Slice(0, n, 0, k)), nil
}

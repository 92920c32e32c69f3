package reduce

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ICA extracts statistically independent components with symmetric FastICA
// (logcosh contrast) after SVD whitening. The fixed-point solver starts from
// a random unmixing matrix, so results are reproducible only for a fixed
// Seed.
type ICA struct {
	Components int
	MaxIter    int
	Tol        float64
	Seed       int64
}

func NewICA(k int, seed int64) *ICA {
	return &ICA{Components: k, Seed: seed}
}

func (a *ICA) Name() string { return "ICA" }

func (a *ICA) Reduce(X [][]float64) ([][]float64, error) {
	m, err := denseFrom(X)
	if err != nil {
		return nil, err
	}
	n, _ := m.Dims()

	k := a.Components
	if k <= 0 {
		k = 2
	}
	maxIter := a.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := a.Tol
	if tol <= 0 {
		tol = 1e-4
	}

	// Whiten: thin SVD of the centered data, keep the columns of U with
	// non-negligible singular values, and rescale to unit covariance.
	centered := centerColumns(m)
	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, errors.New("whitening decomposition did not converge")
	}
	var u mat.Dense
	svd.UTo(&u)
	sv := svd.Values(nil)
	dim := 0
	for _, s := range sv {
		if s > 1e-10*sv[0] {
			dim++
		}
	}
	if dim < k {
		return nil, fmt.Errorf("input rank %d below requested %d components", dim, k)
	}
	scale := math.Sqrt(float64(n - 1))
	z := mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			z.Set(i, j, u.At(i, j)*scale)
		}
	}

	rng := rand.New(rand.NewSource(a.Seed))
	w := mat.NewDense(dim, k, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, rng.NormFloat64())
		}
	}
	w, err = symDecorrelate(w)
	if err != nil {
		return nil, err
	}

	g := mat.NewDense(n, k, nil)
	gDeriv := make([]float64, k)
	for iter := 0; iter < maxIter; iter++ {
		var y mat.Dense
		y.Mul(z, w)
		for j := 0; j < k; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				t := math.Tanh(y.At(i, j))
				g.Set(i, j, t)
				sum += 1 - t*t
			}
			gDeriv[j] = sum / float64(n)
		}

		// Fixed-point update: W1 = Z'G/n - W diag(E[g'])
		var ztg mat.Dense
		ztg.Mul(z.T(), g)
		w1 := mat.NewDense(dim, k, nil)
		for i := 0; i < dim; i++ {
			for j := 0; j < k; j++ {
				w1.Set(i, j, ztg.At(i, j)/float64(n)-w.At(i, j)*gDeriv[j])
			}
		}
		w1, err = symDecorrelate(w1)
		if err != nil {
			return nil, err
		}

		// Converged when every new direction aligns with its predecessor.
		delta := 0.0
		for j := 0; j < k; j++ {
			dot := 0.0
			for i := 0; i < dim; i++ {
				dot += w1.At(i, j) * w.At(i, j)
			}
			if dev := math.Abs(math.Abs(dot) - 1); dev > delta {
				delta = dev
			}
		}
		w = w1
		if delta < tol {
			break
		}
	}

	var sources mat.Dense
	sources.Mul(z, w)
	return toRows(&sources), nil
}

// symDecorrelate orthonormalizes the columns of W: W (W'W)^(-1/2).
func symDecorrelate(w *mat.Dense) (*mat.Dense, error) {
	_, k := w.Dims()
	var wtw mat.Dense
	wtw.Mul(w.T(), w)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, 0.5*(wtw.At(i, j)+wtw.At(j, i)))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, errors.New("decorrelation eigendecomposition failed")
	}
	vals := eig.Values(nil)
	var q mat.Dense
	eig.VectorsTo(&q)
	inv := mat.NewDense(k, k, nil)
	for i, v := range vals {
		if v <= 0 {
			return nil, errors.New("degenerate unmixing matrix")
		}
		inv.Set(i, i, 1/math.Sqrt(v))
	}
	var t1, t2, out mat.Dense
	t1.Mul(&q, inv)
	t2.Mul(&t1, q.T())
	out.Mul(w, &t2)
	return &out, nil
}

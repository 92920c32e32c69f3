package reduce

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// NMF factorizes a non-negative matrix V into non-negative factors W (n x k)
// and H (k x d) by multiplicative updates, using W as the embedding. The
// factors are randomly initialized, so results are reproducible only for a
// fixed Seed. Input must be non-negative; feed it the min-max-scaled matrix,
// not the standardized one.
type NMF struct {
	Components int
	MaxIter    int
	Tol        float64
	Seed       int64

	// H holds the fitted basis matrix after Reduce.
	H *mat.Dense
}

func NewNMF(k int, seed int64) *NMF {
	return &NMF{Components: k, Seed: seed}
}

func (f *NMF) Name() string { return "NMF" }

func (f *NMF) Reduce(X [][]float64) ([][]float64, error) {
	v, err := denseFrom(X)
	if err != nil {
		return nil, err
	}
	n, d := v.Dims()

	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			val := v.At(i, j)
			if val < 0 {
				return nil, fmt.Errorf("negative entry %g at (%d,%d); factorization requires non-negative input", val, i, j)
			}
			sum += val
		}
	}

	k := f.Components
	if k <= 0 {
		k = 2
	}
	maxIter := f.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := f.Tol
	if tol <= 0 {
		tol = 1e-4
	}

	// Uniform init scaled so W*H starts near the magnitude of V.
	rng := rand.New(rand.NewSource(f.Seed))
	init := math.Sqrt(sum / float64(n*d*k))
	w := mat.NewDense(n, k, nil)
	h := mat.NewDense(k, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, rng.Float64()*init)
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < d; j++ {
			h.Set(i, j, rng.Float64()*init)
		}
	}

	const eps = 1e-9
	prev := math.Inf(1)
	for iter := 0; iter < maxIter; iter++ {
		// H <- H .* (W'V) ./ (W'WH + eps)
		var wtv, wtw, wtwh mat.Dense
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		for i := 0; i < k; i++ {
			for j := 0; j < d; j++ {
				h.Set(i, j, h.At(i, j)*wtv.At(i, j)/(wtwh.At(i, j)+eps))
			}
		}

		// W <- W .* (VH') ./ (WHH' + eps)
		var vht, wh, whht mat.Dense
		vht.Mul(v, h.T())
		wh.Mul(w, h)
		whht.Mul(&wh, h.T())
		for i := 0; i < n; i++ {
			for j := 0; j < k; j++ {
				w.Set(i, j, w.At(i, j)*vht.At(i, j)/(whht.At(i, j)+eps))
			}
		}

		if iter%10 == 9 {
			res := residual(v, w, h)
			if prev-res < tol*math.Max(prev, 1) {
				break
			}
			prev = res
		}
	}

	f.H = h
	return toRows(w), nil
}

// residual is the Frobenius norm of V - W*H.
func residual(v, w, h *mat.Dense) float64 {
	var approx, diff mat.Dense
	approx.Mul(w, h)
	diff.Sub(v, &approx)
	return mat.Norm(&diff, 2)
}

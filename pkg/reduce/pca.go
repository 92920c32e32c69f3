package reduce

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCA projects the input onto its leading principal components. Scores are
// ordered by descending explained variance and the result is deterministic
// up to a per-component sign.
type PCA struct {
	Components int

	// Explained holds the proportion of variance carried by each returned
	// component. Populated by Reduce.
	Explained []float64
}

func NewPCA(k int) *PCA { return &PCA{Components: k} }

func (p *PCA) Name() string { return "PCA" }

func (p *PCA) Reduce(X [][]float64) ([][]float64, error) {
	m, err := denseFrom(X)
	if err != nil {
		return nil, err
	}
	n, d := m.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, errors.New("principal component decomposition failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)

	k := p.Components
	if k <= 0 {
		k = 2
	}
	if avail := len(vars); k > avail {
		k = avail
	}
	if k > n {
		k = n
	}

	total := 0.0
	for _, v := range vars {
		total += v
	}
	p.Explained = make([]float64, k)
	if total > 0 {
		for i := 0; i < k; i++ {
			p.Explained[i] = vars[i] / total
		}
	}

	// Scores: centered data projected onto the leading eigenvectors.
	centered := centerColumns(m)
	var scores mat.Dense
	scores.Mul(centered, vecs.Slice(0, d, 0, k))
	return toRows(&scores), nil
}

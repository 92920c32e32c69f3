package reduce

import (
	"github.com/nozzle/umap"
)

// UMAP embeds samples with uniform manifold approximation and projection,
// using the library's default neighborhood and metric parameters unless
// overridden. Stochastic; Seed makes a run reproducible.
type UMAP struct {
	Components int
	Neighbors  int
	Epochs     int
	Seed       int64
}

func NewUMAP(k int, seed int64) *UMAP {
	return &UMAP{Components: k, Seed: seed}
}

func (u *UMAP) Name() string { return "UMAP" }

func (u *UMAP) Reduce(X [][]float64) ([][]float64, error) {
	if _, err := denseFrom(X); err != nil {
		return nil, err
	}

	cfg := umap.DefaultConfig()
	cfg.Seed = u.Seed
	if u.Components > 0 {
		cfg.NComponents = u.Components
	} else {
		cfg.NComponents = 2
	}
	if u.Neighbors > 0 {
		cfg.NNeighbors = u.Neighbors
	}
	if n := len(X); cfg.NNeighbors >= n {
		cfg.NNeighbors = n - 1
	}
	if u.Epochs > 0 {
		cfg.NEpochs = u.Epochs
	}

	data := make([][]float32, len(X))
	for i, row := range X {
		r := make([]float32, len(row))
		for j, v := range row {
			r[j] = float32(v)
		}
		data[i] = r
	}

	model := umap.New(cfg)
	emb := model.FitTransform(data)

	out := make([][]float64, len(emb))
	for i, row := range emb {
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = float64(v)
		}
		out[i] = r
	}
	return out, nil
}

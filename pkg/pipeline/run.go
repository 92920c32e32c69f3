// Package pipeline wires the analysis stages together: load, profile, scale,
// reduce, report. The dataset flows through explicit parameters and return
// values; there is no shared mutable state between stages, and the six
// reduction techniques run independently so one failing never aborts the run.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/dataset"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/profile"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/reduce"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/report"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/scale"
)

// TechniqueOrder fixes the panel order of the comparison grid.
var TechniqueOrder = []string{"PCA", "SVD", "ICA", "NMF", "TSNE", "UMAP"}

// Config carries every tunable of a run. Zero values fall back to the
// defaults of DefaultConfig.
type Config struct {
	DataPath    string
	LabelColumn string
	OutDir      string

	// Seed drives ICA, NMF, t-SNE and UMAP. Zero means "use the default
	// seed", so a literal seed of 0 is not selectable; pick any other value
	// for a custom run.
	Seed          int64
	Perplexity    float64
	BoxBatch      int
	PCAComponents int

	// RenderBoxPlots enables the descriptor box-plot sweep, which writes one
	// figure per BoxBatch descriptors and is by far the slowest stage.
	RenderBoxPlots bool
}

// DefaultConfig returns the parameters of the published analysis: seed
// 12345678 for the stochastic solvers, perplexity 5 for t-SNE, descriptor
// box plots in batches of 28, five reported PCA/SVD components.
func DefaultConfig() Config {
	return Config{
		LabelColumn:   "cancer_type",
		OutDir:        "output",
		Seed:          12345678,
		Perplexity:    5,
		BoxBatch:      28,
		PCAComponents: 5,
	}
}

// Result collects everything a run produced.
type Result struct {
	Table        *dataset.Table
	Records      []profile.Record
	LabelSummary profile.CategoricalRecord
	Flags        profile.Flagged
	Explained    []float64 // PCA explained-variance proportions
	Embeddings   map[string]*reduce.Embedding
	Failures     map[string]error
}

// Run executes the full analysis. It returns an error only for fatal
// conditions (unavailable or malformed dataset, unwritable output);
// per-technique and per-figure failures are recorded in the Result.
func Run(cfg Config) (*Result, error) {
	def := DefaultConfig()
	if cfg.LabelColumn == "" {
		cfg.LabelColumn = def.LabelColumn
	}
	if cfg.OutDir == "" {
		cfg.OutDir = def.OutDir
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Perplexity <= 0 {
		cfg.Perplexity = def.Perplexity
	}
	if cfg.BoxBatch <= 0 {
		cfg.BoxBatch = def.BoxBatch
	}
	if cfg.PCAComponents <= 0 {
		cfg.PCAComponents = def.PCAComponents
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// Stage 1: load and filter.
	table, err := dataset.Load(cfg.DataPath, cfg.LabelColumn)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d samples x %d descriptors (%d cancer types)\n",
		table.Rows(), table.Cols(), len(table.Levels()))

	res := &Result{
		Table:      table,
		Embeddings: make(map[string]*reduce.Embedding),
		Failures:   make(map[string]error),
	}

	// Stage 2: quality profile.
	res.Records = profile.Profile(table)
	res.LabelSummary = profile.Categorical(cfg.LabelColumn, table.Labels)
	res.Flags = profile.Flags(res.Records)
	fmt.Printf("Profiled %d descriptors: %d low-variance by mode ratio, %d by uniqueness, %d high-skew\n",
		len(res.Records), len(res.Flags.ByModeRatio), len(res.Flags.ByUniqueness), len(res.Flags.HighSkew))
	if err := writeProfile(res.Records, filepath.Join(cfg.OutDir, "quality_profile.csv")); err != nil {
		return nil, err
	}

	// Stage 3: normalize. The standardized matrix feeds every technique
	// except NMF, which needs the non-negative min-max matrix.
	standardized, err := scale.NewStandardScaler().FitTransform(table.X)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	rescaled, err := scale.NewMinMaxScaler().FitTransform(table.X)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// Stage 4: reduce.
	pca := reduce.NewPCA(cfg.PCAComponents)
	reducers := []struct {
		r     reduce.Reducer
		input [][]float64
	}{
		{pca, standardized},
		{reduce.NewSVD(cfg.PCAComponents), standardized},
		{reduce.NewICA(2, cfg.Seed), standardized},
		{reduce.NewNMF(2, cfg.Seed), rescaled},
		{reduce.NewTSNE(2, cfg.Perplexity, cfg.Seed), standardized},
		{reduce.NewUMAP(2, cfg.Seed), standardized},
	}
	for _, step := range reducers {
		name := step.r.Name()
		emb, err := reduce.Run(step.r, step.input, table.Labels)
		if err != nil {
			slog.Warn("technique failed, continuing", "technique", name, "err", err)
			res.Failures[name] = err
			continue
		}
		res.Embeddings[name] = emb
		fmt.Printf("%s: embedded %d samples into %d dimensions\n", name, emb.Rows(), emb.Cols())
		path := filepath.Join(cfg.OutDir, "embedding_"+name+".csv")
		if err := report.WriteEmbeddingCSV(emb, path); err != nil {
			slog.Warn("embedding export failed", "technique", name, "err", err)
		}
	}
	res.Explained = pca.Explained

	// Stage 5: report. Each figure is independent and non-fatal.
	levels := table.Levels()
	if emb, ok := res.Embeddings["PCA"]; ok {
		if err := report.ScatterMatrix(emb, levels, filepath.Join(cfg.OutDir, "pca_scatter_matrix.png")); err != nil {
			slog.Warn("figure skipped", "figure", "pca_scatter_matrix", "err", err)
		}
	}
	for name, emb := range res.Embeddings {
		path := filepath.Join(cfg.OutDir, "scatter_"+name+".png")
		if err := report.Scatter2D(emb, levels, path); err != nil {
			slog.Warn("figure skipped", "figure", "scatter_"+name, "err", err)
		}
	}
	if cfg.RenderBoxPlots {
		paths, err := report.BoxPlotSweep(table, cfg.BoxBatch, cfg.OutDir)
		if err != nil {
			slog.Warn("box-plot sweep incomplete", "rendered", len(paths), "err", err)
		} else {
			fmt.Printf("Rendered %d box-plot figures (batches of %d descriptors)\n", len(paths), cfg.BoxBatch)
		}
	}
	if err := report.ComparisonGrid(res.Embeddings, TechniqueOrder, levels,
		filepath.Join(cfg.OutDir, "comparison_grid.png")); err != nil {
		slog.Warn("figure skipped", "figure", "comparison_grid", "err", err)
	}

	return res, nil
}

func writeProfile(recs []profile.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()
	return profile.WriteCSV(f, recs)
}

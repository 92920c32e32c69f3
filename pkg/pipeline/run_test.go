package pipeline

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/dataset"
)

// writeDataset produces a small NCI60-shaped CSV: 8 samples for each of the
// five cancer types plus two rows that must be filtered out, with mild
// class-dependent offsets in the descriptors.
func writeDataset(t *testing.T, cols int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(21))
	var b strings.Builder
	for j := 0; j < cols; j++ {
		fmt.Fprintf(&b, "g_%d,", j+1)
	}
	b.WriteString("cancer_type\n")
	for li, level := range dataset.CancerTypes {
		for s := 0; s < 8; s++ {
			for j := 0; j < cols; j++ {
				fmt.Fprintf(&b, "%.5f,", rng.NormFloat64()+float64(li)*0.5)
			}
			b.WriteString(level + "\n")
		}
	}
	for _, odd := range []string{"LEUKEMIA", "CNS"} {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%.5f,", rng.NormFloat64())
		}
		b.WriteString(odd + "\n")
	}

	path := filepath.Join(t.TempDir(), "nci60.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	cfg := DefaultConfig()
	cfg.DataPath = writeDataset(t, 12)
	cfg.OutDir = t.TempDir()
	cfg.BoxBatch = 5
	cfg.RenderBoxPlots = true

	res, err := Run(cfg)
	require.NoError(t, err)

	require.Equal(t, 40, res.Table.Rows())
	require.Equal(t, 12, res.Table.Cols())
	require.Len(t, res.Records, 12)
	require.Equal(t, 5, res.LabelSummary.Unique)

	require.Empty(t, res.Failures)
	require.Len(t, res.Embeddings, len(TechniqueOrder))
	for _, name := range TechniqueOrder {
		emb, ok := res.Embeddings[name]
		require.True(t, ok, "missing embedding for %s", name)
		require.Equal(t, 40, emb.Rows(), "%s row count", name)
	}
	require.Equal(t, 5, res.Embeddings["PCA"].Cols())
	require.Equal(t, 5, res.Embeddings["SVD"].Cols())
	for _, name := range []string{"ICA", "NMF", "TSNE", "UMAP"} {
		require.Equal(t, 2, res.Embeddings[name].Cols(), "%s dimensionality", name)
	}
	require.Len(t, res.Explained, 5)

	for _, f := range []string{
		"quality_profile.csv",
		"embedding_PCA.csv",
		"embedding_UMAP.csv",
		"pca_scatter_matrix.png",
		"scatter_PCA.png",
		"comparison_grid.png",
		"boxplots_0001.png",
		"boxplots_0003.png",
	} {
		info, err := os.Stat(filepath.Join(cfg.OutDir, f))
		require.NoError(t, err, "expected output %s", f)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestRunMissingDataset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataPath = filepath.Join(t.TempDir(), "absent.csv")
	cfg.OutDir = t.TempDir()
	_, err := Run(cfg)
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, int64(12345678), cfg.Seed)
	require.Equal(t, 5.0, cfg.Perplexity)
	require.Equal(t, 28, cfg.BoxBatch)
	require.Equal(t, 5, cfg.PCAComponents)
	require.Equal(t, "cancer_type", cfg.LabelColumn)
}

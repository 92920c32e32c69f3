package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/pipeline"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input       : Path to the gene-expression CSV (header row, one label
//                 column, numeric descriptor columns). Default = data/nci60.csv
// --label-col   : Name of the cancer-type label column. Default = cancer_type
// --output      : Directory for figures and tables. Default = output
// --seed        : Random seed shared by ICA, NMF, t-SNE and UMAP
//                 (0 selects the default seed)
// --perplexity  : t-SNE perplexity (kept low for small sample counts)
// --components  : Number of PCA/SVD components to report
// --box-batch   : Descriptors per box-plot figure
// --box-plots   : Render the full descriptor box-plot sweep (slow)
//
// Example:
//   go run ./cmd/nci60 --input data/nci60.csv --output output --box-plots
//
// ---------------------------------------------------------------------
//

func main() {
	cfg := pipeline.DefaultConfig()

	input := flag.String("input", "data/nci60.csv", "Path to the gene-expression CSV")
	labelCol := flag.String("label-col", cfg.LabelColumn, "Name of the cancer-type label column")
	output := flag.String("output", cfg.OutDir, "Directory for figures and tables")
	seed := flag.Int64("seed", cfg.Seed, "Random seed for the stochastic techniques (0 selects the default)")
	perplexity := flag.Float64("perplexity", cfg.Perplexity, "t-SNE perplexity")
	components := flag.Int("components", cfg.PCAComponents, "Number of PCA/SVD components to report")
	boxBatch := flag.Int("box-batch", cfg.BoxBatch, "Descriptors per box-plot figure")
	boxPlots := flag.Bool("box-plots", false, "Render the full descriptor box-plot sweep")
	flag.Parse()

	cfg.DataPath = *input
	cfg.LabelColumn = *labelCol
	cfg.OutDir = *output
	cfg.Seed = *seed
	cfg.Perplexity = *perplexity
	cfg.PCAComponents = *components
	cfg.BoxBatch = *boxBatch
	cfg.RenderBoxPlots = *boxPlots

	res, err := pipeline.Run(cfg)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	fmt.Println("\n=== Summary ===")
	fmt.Printf("Samples: %d, descriptors: %d\n", res.Table.Rows(), res.Table.Cols())
	fmt.Printf("Label levels: %v\n", res.Table.Levels())
	if len(res.Explained) > 0 {
		fmt.Printf("PCA explained variance:")
		for i, p := range res.Explained {
			fmt.Printf(" PC%d=%.1f%%", i+1, p*100)
		}
		fmt.Println()
	}
	for _, name := range pipeline.TechniqueOrder {
		if emb, ok := res.Embeddings[name]; ok {
			fmt.Printf("%-5s %d x %d\n", name, emb.Rows(), emb.Cols())
		} else {
			fmt.Printf("%-5s unavailable: %v\n", name, res.Failures[name])
		}
	}
}

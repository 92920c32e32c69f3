package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/reduce"
)

// WriteEmbeddingCSV exports one technique's embedding with its label column.
func WriteEmbeddingCSV(e *reduce.Embedding, path string) error {
	k := e.Cols()
	records := make([][]string, 0, e.Rows()+1)
	head := make([]string, 0, k+1)
	for j := 0; j < k; j++ {
		head = append(head, fmt.Sprintf("dim_%d", j+1))
	}
	head = append(head, "cancer_type")
	records = append(records, head)
	for i, row := range e.Points {
		rec := make([]string, 0, k+1)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec = append(rec, e.Labels[i])
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return fmt.Errorf("report: %s: %w", e.Technique, df.Err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %s: %w", e.Technique, err)
	}
	defer f.Close()
	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("report: %s: %w", e.Technique, err)
	}
	return nil
}

// Package dataset loads the NCI60-style gene-expression table: one row per
// sample, ~6830 numeric descriptor columns, and a single cancer-type label
// column restricted to five classes in a fixed order.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CancerTypes is the fixed label ordering used everywhere downstream: in
// legends, palettes, and categorical summaries. Rows with any other label are
// dropped at load time.
var CancerTypes = []string{"BREAST", "RENAL", "MELANOMA", "NSCLC", "COLON"}

var (
	ErrNoRows       = errors.New("dataset: no rows with a recognized cancer type")
	ErrMissingLabel = errors.New("dataset: label column not found")
)

// Table is the loaded dataset: a numeric descriptor matrix plus one label per
// row. It is immutable after Load.
type Table struct {
	Names  []string    // descriptor column names, CSV order
	X      [][]float64 // Rows() x Cols()
	Labels []string    // per-row cancer type, encounter order
}

func (t *Table) Rows() int { return len(t.X) }

func (t *Table) Cols() int { return len(t.Names) }

// Levels returns the ordered categorical levels of the label column. The
// order is fixed regardless of row order in the source.
func (t *Table) Levels() []string {
	out := make([]string, len(CancerTypes))
	copy(out, CancerTypes)
	return out
}

// Column returns a copy of descriptor column j.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, len(t.X))
	for i, row := range t.X {
		col[i] = row[j]
	}
	return col
}

// Load reads the dataset from a CSV file with a header row, keeps only rows
// whose labelCol value is one of CancerTypes, and extracts every other column
// as a numeric descriptor. The file being unavailable or malformed is a fatal
// condition for the analysis; there is no partial-result mode.
func Load(path, labelCol string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{labelCol: series.String}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: %w", df.Err)
	}

	hasLabel := false
	for _, name := range df.Names() {
		if name == labelCol {
			hasLabel = true
			break
		}
	}
	if !hasLabel {
		return nil, fmt.Errorf("%w: %q", ErrMissingLabel, labelCol)
	}

	df = df.Filter(dataframe.F{
		Colname:    labelCol,
		Comparator: series.In,
		Comparando: CancerTypes,
	})
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: filter: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, ErrNoRows
	}

	t := &Table{Labels: df.Col(labelCol).Records()}
	for _, name := range df.Names() {
		if name == labelCol {
			continue
		}
		t.Names = append(t.Names, name)
	}
	t.X = make([][]float64, df.Nrow())
	for i := range t.X {
		t.X[i] = make([]float64, len(t.Names))
	}
	for j, name := range t.Names {
		col := df.Col(name).Float()
		for i, v := range col {
			t.X[i][j] = v
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the invariants the rest of the pipeline assumes: no missing
// descriptor values and every label one of the five fixed levels.
func (t *Table) Validate() error {
	levels := make(map[string]struct{}, len(CancerTypes))
	for _, l := range CancerTypes {
		levels[l] = struct{}{}
	}
	for i, l := range t.Labels {
		if _, ok := levels[l]; !ok {
			return fmt.Errorf("dataset: row %d has unknown label %q", i, l)
		}
	}
	for i, row := range t.X {
		if len(row) != len(t.Names) {
			return fmt.Errorf("dataset: row %d has %d descriptors, want %d", i, len(row), len(t.Names))
		}
		for j, v := range row {
			if math.IsNaN(v) {
				return fmt.Errorf("dataset: missing or non-numeric value at row %d, column %q", i, t.Names[j])
			}
		}
	}
	return nil
}

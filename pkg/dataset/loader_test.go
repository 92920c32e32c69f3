package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = `g_1,g_2,g_3,cancer_type
0.1,1.5,-0.3,RENAL
0.2,1.1,-0.1,BREAST
0.4,0.9,0.2,LEUKEMIA
-0.5,1.2,0.7,COLON
0.3,0.8,-0.9,MELANOMA
1.2,-0.4,0.5,CNS
0.7,0.2,0.1,NSCLC
0.6,0.3,0.4,RENAL
`

func TestLoadFiltersToKnownCancerTypes(t *testing.T) {
	table, err := Load(writeCSV(t, sampleCSV), "cancer_type")
	require.NoError(t, err)

	// LEUKEMIA and CNS rows are dropped; encounter order is preserved.
	require.Equal(t, 6, table.Rows())
	require.Equal(t, []string{"RENAL", "BREAST", "COLON", "MELANOMA", "NSCLC", "RENAL"}, table.Labels)
	require.Equal(t, []string{"g_1", "g_2", "g_3"}, table.Names)
	require.Equal(t, 3, table.Cols())
	require.InDelta(t, -0.5, table.X[2][0], 1e-12)
	require.InDelta(t, 0.7, table.X[2][2], 1e-12)
}

func TestLevelsOrderIsFixed(t *testing.T) {
	// Rows arrive in reverse level order; Levels must not care.
	csv := `g_1,cancer_type
1,COLON
2,NSCLC
3,MELANOMA
4,RENAL
5,BREAST
`
	table, err := Load(writeCSV(t, csv), "cancer_type")
	require.NoError(t, err)
	require.Equal(t, []string{"BREAST", "RENAL", "MELANOMA", "NSCLC", "COLON"}, table.Levels())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), "cancer_type")
	require.Error(t, err)
}

func TestLoadMissingLabelColumn(t *testing.T) {
	_, err := Load(writeCSV(t, sampleCSV), "tissue")
	require.ErrorIs(t, err, ErrMissingLabel)
}

func TestLoadNoMatchingRows(t *testing.T) {
	csv := `g_1,cancer_type
1,LEUKEMIA
2,CNS
`
	_, err := Load(writeCSV(t, csv), "cancer_type")
	require.ErrorIs(t, err, ErrNoRows)
}

func TestLoadRejectsNonNumericDescriptor(t *testing.T) {
	csv := `g_1,cancer_type
oops,RENAL
2,COLON
`
	_, err := Load(writeCSV(t, csv), "cancer_type")
	require.Error(t, err)
}

func TestColumn(t *testing.T) {
	table, err := Load(writeCSV(t, sampleCSV), "cancer_type")
	require.NoError(t, err)
	col := table.Column(1)
	require.Equal(t, table.Rows(), len(col))
	require.InDelta(t, 1.5, col[0], 1e-12)

	// Column returns a copy.
	col[0] = 99
	require.InDelta(t, 1.5, table.X[0][1], 1e-12)
}

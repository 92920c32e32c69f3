package reduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The neighbor-embedding techniques iterate on pairwise structure, so these
// stay small to keep the suite fast.

func TestTSNEShape(t *testing.T) {
	if testing.Short() {
		t.Skip("iterative embedding")
	}
	X := randomData(30, 8, 11)
	r := NewTSNE(2, 5, 12345678)
	r.MaxIter = 100
	out, err := r.Reduce(X)
	require.NoError(t, err)
	require.Len(t, out, 30)
	require.Len(t, out[0], 2)
}

func TestUMAPShape(t *testing.T) {
	if testing.Short() {
		t.Skip("iterative embedding")
	}
	X := randomData(30, 8, 12)
	r := NewUMAP(2, 12345678)
	r.Epochs = 50
	out, err := r.Reduce(X)
	require.NoError(t, err)
	require.Len(t, out, 30)
	require.Len(t, out[0], 2)
}

func TestUMAPCapsNeighborsToSampleCount(t *testing.T) {
	if testing.Short() {
		t.Skip("iterative embedding")
	}
	// Fewer samples than the library's default neighbor count.
	X := randomData(10, 4, 13)
	r := NewUMAP(2, 12345678)
	r.Epochs = 20
	out, err := r.Reduce(X)
	require.NoError(t, err)
	require.Len(t, out, 10)
}

// SPDX-License-Identifier: MIT
// Package vectordata_test contains test helpers
//
// Purpose:
//   • Build fixtures in either encoding from plain slices.
//   • Check sparse invariants and NaN-aware contents in one place.

package vectordata_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averbraeck/djunits-sub012/scale"
	"github.com/averbraeck/djunits-sub012/vectordata"
)

// storages lists both encodings for table loops.
var storages = []vectordata.StorageType{vectordata.StorageDense, vectordata.StorageSparse}

// mustVector builds values (standard units) in the requested encoding or fails the test.
func mustVector[T vectordata.Element](t *testing.T, st vectordata.StorageType, values ...T) vectordata.VectorData[T] {
	t.Helper()
	v, err := vectordata.Instantiate(values, scale.Identity{}, st)
	require.NoError(t, err)
	require.Equal(t, st, v.StorageType())

	return v
}

// mustSparse builds a Sparse vector of the given size from parallel arrays.
func mustSparse[T vectordata.Element](t *testing.T, size int, indices []int, values []T) *vectordata.Sparse[T] {
	t.Helper()
	s, err := vectordata.NewSparse(indices, values, size)
	require.NoError(t, err)

	return s
}

// mustDense builds a Dense vector from values.
func mustDense[T vectordata.Element](t *testing.T, values ...T) *vectordata.Dense[T] {
	t.Helper()
	d, err := vectordata.NewDense(values)
	require.NoError(t, err)

	return d
}

// requireContents compares the logical contents of v with want (NaN-aware).
func requireContents[T vectordata.Element](t *testing.T, want []T, v vectordata.VectorData[T]) {
	t.Helper()
	require.Equal(t, len(want), v.Size(), "size")
	got := v.DenseValues()
	for i := range want {
		w, g := float64(want[i]), float64(got[i])
		if math.IsNaN(w) {
			require.True(t, math.IsNaN(g), "index %d: want NaN, got %v", i, g)
			continue
		}
		require.Equal(t, w, g, "index %d", i)
	}
}

// requireSparseInvariants checks sorted unique indices in range and no stored zero.
func requireSparseInvariants[T vectordata.Element](t *testing.T, v vectordata.VectorData[T]) {
	t.Helper()
	s, ok := v.(*vectordata.Sparse[T])
	if !ok {
		return
	}
	idx, val := s.Indices(), s.NonZeroValues()
	require.Len(t, val, len(idx))
	for k := range idx {
		require.GreaterOrEqual(t, idx[k], 0)
		require.Less(t, idx[k], s.Size())
		if k > 0 {
			require.Greater(t, idx[k], idx[k-1], "indices must be strictly increasing")
		}
		require.NotZero(t, val[k], "stored zero at index %d", idx[k])
	}
	require.Equal(t, len(idx), s.Cardinality())
}

// randomValues returns integer-valued data with roughly 60% zeros so that
// sums and products are exact in both float widths.
func randomValues(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if rng.Intn(10) < 6 {
			continue
		}
		out[i] = float64(rng.Intn(11) - 5)
	}

	return out
}

// identity is the no-op display scale.
func identity() scale.Scale { return scale.Identity{} }

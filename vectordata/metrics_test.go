// SPDX-License-Identifier: MIT

package vectordata_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/averbraeck/djunits-sub012/vectordata"
)

func TestMetrics_CountOperations(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m, err := vectordata.NewMetrics(reg)
	require.NoError(t, err)
	opt := vectordata.WithMetrics(m)

	d, err := vectordata.Instantiate([]float64{1, 0, 2}, identity(), vectordata.StorageDense, opt)
	require.NoError(t, err)
	s, err := vectordata.Instantiate([]float64{0, 3, 0}, identity(), vectordata.StorageSparse, opt)
	require.NoError(t, err)

	_, err = d.Plus(d)
	require.NoError(t, err)
	_, err = s.Plus(s)
	require.NoError(t, err)
	_, err = s.Assign(func(x float64) float64 { return x + 1 })
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "instantiate", vectordata.StorageDense)))
	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "instantiate", vectordata.StorageSparse)))
	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "plus", vectordata.StorageDense)))
	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "plus", vectordata.StorageSparse)))
	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "assign", vectordata.StorageSparse)))
	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.DensifyCounter_TestOnly(m, "assign")))
	require.Zero(t, testutil.ToFloat64(vectordata.DensifyCounter_TestOnly(m, "plus")))

	count, err := testutil.GatherAndCount(reg, "vectordata_operations_total")
	require.NoError(t, err)
	// instantiate×2, plus×2, assign on the sparse receiver and on its dense form.
	require.Equal(t, 6, count)
}

func TestMetrics_SparseDivideCountedOnReceiver(t *testing.T) {
	t.Parallel()
	m, err := vectordata.NewMetrics(nil)
	require.NoError(t, err)

	a, err := vectordata.NewSparse([]int{0, 2}, []float64{4, 6}, 3, vectordata.WithMetrics(m))
	require.NoError(t, err)
	b := mustSparse(t, 3, []int{0, 2}, []float64{2, 3})

	q, err := a.Divide(b)
	require.NoError(t, err)
	require.True(t, q.IsDense())
	requireContents(t, []float64{2, math.NaN(), 2}, q)

	require.Equal(t, 1.0, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "divide", vectordata.StorageSparse)))
	require.Zero(t, testutil.ToFloat64(vectordata.OperationsCounter_TestOnly(m, "divide_by", vectordata.StorageDense)))
}

func TestMetrics_SparseGrowth(t *testing.T) {
	t.Parallel()
	m, err := vectordata.NewMetrics(nil)
	require.NoError(t, err)

	a, err := vectordata.NewZeroSparse[float64](100, vectordata.WithMetrics(m))
	require.NoError(t, err)
	dense := make([]float64, 100)
	for i := range dense {
		dense[i] = float64(i + 1)
	}
	b := mustDense(t, dense...)

	_, err = a.IncrementBy(b)
	require.NoError(t, err)
	require.Equal(t, 100, a.Cardinality())
	// 16 → 32 → 64 → 100.
	require.Equal(t, 3.0, testutil.ToFloat64(vectordata.SparseGrowCounter_TestOnly(m)))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := vectordata.NewMetrics(reg)
	require.NoError(t, err)

	_, err = vectordata.NewMetrics(reg)
	require.Error(t, err)
}

// SPDX-License-Identifier: MIT

package vectordata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averbraeck/djunits-sub012/vectordata"
)

func TestNewSparse_Validation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		indices []int
		values  []float64
		size    int
		want    error
	}{
		{"nil indices", nil, []float64{}, 3, vectordata.ErrNilArgument},
		{"nil values", []int{}, nil, 3, vectordata.ErrNilArgument},
		{"negative size", []int{}, []float64{}, -2, vectordata.ErrInvalidSize},
		{"length mismatch", []int{0, 1}, []float64{1}, 3, vectordata.ErrSizeMismatch},
		{"index too large", []int{3}, []float64{1}, 3, vectordata.ErrOutOfRange},
		{"negative index", []int{-1}, []float64{1}, 3, vectordata.ErrOutOfRange},
		{"unsorted", []int{2, 1}, []float64{1, 1}, 3, vectordata.ErrNotSorted},
		{"duplicate", []int{1, 1}, []float64{1, 1}, 3, vectordata.ErrNotSorted},
		{"stored zero", []int{0, 2}, []float64{1, 0}, 3, vectordata.ErrZeroValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := vectordata.NewSparse(tc.indices, tc.values, tc.size)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewSparse_CopiesInput(t *testing.T) {
	t.Parallel()
	idx, val := []int{1, 4}, []float64{2, 3}
	s := mustSparse(t, 5, idx, val)
	idx[0], val[0] = 0, 99

	require.Equal(t, []int{1, 4}, s.Indices())
	require.Equal(t, []float64{2, 3}, s.NonZeroValues())

	// Accessors hand out copies too.
	s.Indices()[0] = 3
	require.Equal(t, []int{1, 4}, s.Indices())
}

// Scenario: a Sparse vector {2: 5, 7: -3} of size 10 materializes to a
// ten-element buffer with exactly two non-zeros.
func TestSparse_ToDense(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 10, []int{2, 7}, []float64{5, -3})

	d := s.ToDense()
	require.Equal(t, []float64{0, 0, 5, 0, 0, 0, 0, -3, 0, 0}, d.DenseValues())
	require.Equal(t, 2, d.Cardinality())
	require.True(t, d.Equals(s))
	require.True(t, s.Equals(d))
}

func TestSparse_Get(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 6, []int{0, 3, 5}, []float64{1, 2, 3})

	for i, want := range []float64{1, 0, 0, 2, 0, 3} {
		got, err := s.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, got, "Get(%d)", i)
	}
	_, err := s.Get(6)
	require.ErrorIs(t, err, vectordata.ErrOutOfRange)
	_, err = s.Get(-1)
	require.ErrorIs(t, err, vectordata.ErrOutOfRange)
}

// Set covers the four cases of the sorted layout: remove, overwrite,
// no-op and insert.
func TestSparse_SetCases(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 8, []int{1, 3, 5}, []float64{1, 2, 3})

	// Remove: cardinality drops by exactly one.
	require.NoError(t, s.Set(3, 0))
	require.Equal(t, 2, s.Cardinality())
	got, _ := s.Get(3)
	require.Zero(t, got)
	require.Equal(t, []int{1, 5}, s.Indices())

	// Overwrite.
	require.NoError(t, s.Set(5, 9))
	require.Equal(t, []float64{1, 9}, s.NonZeroValues())

	// Zero over an implicit zero.
	require.NoError(t, s.Set(2, 0))
	require.Equal(t, 2, s.Cardinality())

	// Insert at the front, middle and back.
	require.NoError(t, s.Set(0, 7))
	require.NoError(t, s.Set(4, 8))
	require.NoError(t, s.Set(7, 6))
	require.Equal(t, []int{0, 1, 4, 5, 7}, s.Indices())
	require.Equal(t, []float64{7, 1, 8, 9, 6}, s.NonZeroValues())
	requireSparseInvariants[float64](t, s)

	require.ErrorIs(t, s.Set(8, 1), vectordata.ErrOutOfRange)
}

func TestSparse_FrozenRejectsMutation(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 3, []int{1}, []float64{2})
	other := mustSparse(t, 3, []int{0}, []float64{1})
	s.Freeze()
	require.False(t, s.IsMutable())

	require.ErrorIs(t, s.Set(0, 1), vectordata.ErrImmutable)
	_, err := s.Assign(func(x float64) float64 { return 2 * x })
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	_, err = s.AssignBinary(func(x, y float64) float64 { return x * y }, other)
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	_, err = s.IncrementBy(other)
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	_, err = s.DecrementBy(other)
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	_, err = s.MultiplyBy(other)
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	_, err = s.DivideBy(other)
	require.ErrorIs(t, err, vectordata.ErrImmutable)
	require.Equal(t, []int{1}, s.Indices())

	prod, err := s.Times(other)
	require.NoError(t, err)
	require.True(t, prod.IsMutable())
	require.Zero(t, prod.Cardinality())
}

func TestSparse_ZeroAndEmpty(t *testing.T) {
	t.Parallel()
	z, err := vectordata.NewZeroSparse[float32](5)
	require.NoError(t, err)
	require.Equal(t, 5, z.Size())
	require.Zero(t, z.Cardinality())
	require.Zero(t, z.Sum())
	require.Equal(t, make([]float32, 5), z.DenseValues())

	_, err = vectordata.NewZeroSparse[float64](-1)
	require.ErrorIs(t, err, vectordata.ErrInvalidSize)

	empty, err := vectordata.NewZeroSparse[float64](0)
	require.NoError(t, err)
	require.Empty(t, empty.DenseValues())
	require.Equal(t, "Sparse(size=0){}", empty.String())
}

func TestSparse_SumStringKind(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 10, []int{2, 7}, []float64{5, -3})
	require.Equal(t, 2.0, s.Sum())
	require.Equal(t, "Sparse(size=10){2: 5, 7: -3}", s.String())
	require.True(t, s.IsSparse())
	require.False(t, s.IsDense())
	require.Equal(t, "SPARSE", s.StorageType().String())
}

func TestSparse_CopyIsIndependent(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, 4, []int{1}, []float64{2})
	cp := s.Copy()
	require.True(t, cp.IsSparse())
	require.NoError(t, cp.Set(1, 0))
	require.Equal(t, 1, s.Cardinality())
	require.Zero(t, cp.Cardinality())
}

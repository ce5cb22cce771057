// SPDX-License-Identifier: MIT

// Package vectordata - Sparse storage (sorted index array + parallel values).
//
// Purpose:
//   - Store only non-zero (index, value) pairs plus the logical size.
//   - Keep the invariants after every public call:
//     indices strictly increasing within [0,size), len(indices) == len(values),
//     no stored value equal to zero.
//
// Complexity quicksheet:
//   - Get: O(log nnz); Set: O(log nnz) search + O(nnz) shift on insert/remove;
//     ToDense: O(size); Cardinality: O(1).

package vectordata

import (
	"fmt"
	"slices"
	"strings"
)

// Sparse is a vector stored as sorted (index, value) pairs.
type Sparse[T Element] struct {
	indices []int    // strictly increasing, each in [0,size)
	values  []T      // values[k] is the non-zero value at indices[k]
	size    int      // logical length
	opts    *Options // never nil
	frozen  bool     // immutability flag
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ VectorData[float64] = (*Sparse[float64])(nil)
	_ VectorData[float32] = (*Sparse[float32])(nil)
	_ fmt.Stringer        = (*Sparse[float32])(nil)
)

// NewSparse creates a Sparse vector from parallel index/value arrays.
// MAIN DESCRIPTION:
//   - Public constructor with full invariant validation; inputs are copied.
//
// Implementation:
//   - Stage 1: reject nil arrays (ErrNilArgument) and negative size (ErrInvalidSize).
//   - Stage 2: validate lengths, range, strict ordering and non-zero values.
//   - Stage 3: copy both arrays.
//
// Errors:
//   - ErrNilArgument, ErrInvalidSize, ErrSizeMismatch, ErrOutOfRange,
//     ErrNotSorted, ErrZeroValue.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func NewSparse[T Element](indices []int, values []T, size int, opts ...Option) (*Sparse[T], error) {
	const tag = "NewSparse"
	if indices == nil {
		return nil, validatorErrorf(tag+": indices", ErrNilArgument)
	}
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateSize(tag, size); err != nil {
		return nil, err
	}
	if err := validateSparseLayout(tag, indices, values, size); err != nil {
		return nil, err
	}

	return newSparseOwned(slices.Clone(indices), slices.Clone(values), size, resolveOptions(opts)), nil
}

// NewZeroSparse creates an all-zero Sparse vector of the given size.
// Errors: ErrInvalidSize when size < 0.
func NewZeroSparse[T Element](size int, opts ...Option) (*Sparse[T], error) {
	if err := validateSize("NewZeroSparse", size); err != nil {
		return nil, err
	}

	return newSparseOwned([]int{}, []T{}, size, resolveOptions(opts)), nil
}

// newSparseOwned wraps arrays the engine already owns and validated.
func newSparseOwned[T Element](indices []int, values []T, size int, o *Options) *Sparse[T] {
	return &Sparse[T]{indices: indices, values: values, size: size, opts: o}
}

// Size returns the logical length. Complexity: O(1).
func (s *Sparse[T]) Size() int { return s.size }

// Cardinality returns the number of stored (non-zero) pairs. Complexity: O(1).
func (s *Sparse[T]) Cardinality() int { return len(s.indices) }

// StorageType returns StorageSparse.
func (s *Sparse[T]) StorageType() StorageType { return StorageSparse }

// IsDense is always false.
func (s *Sparse[T]) IsDense() bool { return false }

// IsSparse is always true.
func (s *Sparse[T]) IsSparse() bool { return true }

// IsMutable reports whether mutating methods are permitted.
func (s *Sparse[T]) IsMutable() bool { return !s.frozen }

// Freeze makes s immutable and returns it.
func (s *Sparse[T]) Freeze() VectorData[T] {
	s.frozen = true
	return s
}

func (s *Sparse[T]) options() *Options { return s.opts }

// at reads index i via binary search; zero when no pair is stored.
func (s *Sparse[T]) at(i int) T {
	if k, found := slices.BinarySearch(s.indices, i); found {
		return s.values[k]
	}

	return 0
}

// Indices returns a copy of the stored positions (strictly increasing).
func (s *Sparse[T]) Indices() []int { return slices.Clone(s.indices) }

// NonZeroValues returns a copy of the stored values, parallel to Indices().
func (s *Sparse[T]) NonZeroValues() []T { return slices.Clone(s.values) }

// Get returns the value at i (zero when not stored) or ErrOutOfRange.
// Complexity: O(log nnz).
func (s *Sparse[T]) Get(i int) (T, error) {
	if err := validateIndex("Sparse."+ctxGet, i, s.size); err != nil {
		return 0, err
	}

	return s.at(i), nil
}

// Set writes v at i, keeping the sparse invariants.
// MAIN DESCRIPTION:
//   - Binary search for i, then one of four cases.
//
// Behavior highlights:
//   - found,  v == 0: remove the slot (shift both arrays left by one).
//   - found,  v != 0: overwrite in place.
//   - absent, v == 0: no-op.
//   - absent, v != 0: insert at the sorted position (shift right by one).
//
// Errors:
//   - ErrImmutable, ErrOutOfRange.
//
// Complexity:
//   - Time O(log nnz) search + O(nnz) shift.
func (s *Sparse[T]) Set(i int, v T) error {
	if s.frozen {
		return validatorErrorf("Sparse."+ctxSet, ErrImmutable)
	}
	if err := validateIndex("Sparse."+ctxSet, i, s.size); err != nil {
		return err
	}

	k, found := slices.BinarySearch(s.indices, i)
	switch {
	case found && v == 0:
		s.indices = slices.Delete(s.indices, k, k+1)
		s.values = slices.Delete(s.values, k, k+1)
	case found:
		s.values[k] = v
	case v == 0:
		// implicit zero already
	default:
		s.indices = slices.Insert(s.indices, k, i)
		s.values = slices.Insert(s.values, k, v)
	}

	return nil
}

// ToDense allocates a zero-filled buffer of length size and scatters the
// stored pairs into it. Each pair writes a distinct slot, so the scatter
// runs through the fan-out.
// Complexity: O(size + nnz).
func (s *Sparse[T]) ToDense() *Dense[T] {
	return newDenseOwned(s.DenseValues(), s.opts)
}

// DenseValues returns a fresh slice with one value per logical index.
func (s *Sparse[T]) DenseValues() []T {
	buf := make([]T, s.size)
	s.opts.forChunks(len(s.indices), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			buf[s.indices[k]] = s.values[k]
		}
	})

	return buf
}

// ToSparse returns an independent, mutable copy.
// Complexity: O(nnz).
func (s *Sparse[T]) ToSparse() *Sparse[T] {
	return newSparseOwned(slices.Clone(s.indices), slices.Clone(s.values), s.size, s.opts)
}

// Copy returns a mutable deep copy (Sparse).
func (s *Sparse[T]) Copy() VectorData[T] { return s.ToSparse() }

// Sum returns the sum of the stored values (implicit zeros add nothing).
// Complexity: O(nnz).
func (s *Sparse[T]) Sum() T { return kSum(s.values) }

// Equals compares logical contents with any encoding.
func (s *Sparse[T]) Equals(other VectorData[T]) bool { return equalContents[T](s, other) }

// Hash folds the logical contents (see hashContents).
func (s *Sparse[T]) Hash() uint64 { return hashContents[T](s) }

// String renders "Sparse(size=n){i: v, ...}" for diagnostics.
// Complexity: O(nnz).
func (s *Sparse[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sparse(size=%d){", s.size)
	for k, idx := range s.indices {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%d: %g", idx, s.values[k])
	}
	b.WriteString("}")

	return b.String()
}

// SPDX-License-Identifier: MIT

// Package vectordata - Dense storage & safe accessors.
//
// Purpose:
//   - Provide a contiguous buffer with one slot per logical index.
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//   - Never alias caller memory: constructors and conversions copy.
//
// Complexity quicksheet:
//   - NewDense: O(n) copy; Get/Set: O(1); ToSparse: O(n); Cardinality: O(n).

package vectordata

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxGet = "Get"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Dense is a vector stored as one contiguous buffer.
//   - values holds exactly Size() elements; zeros are stored explicitly.
//   - opts is the resolved engine configuration shared with derived results.
//   - frozen rejects every mutating call with ErrImmutable.
type Dense[T Element] struct {
	values []T      // len == logical size
	opts   *Options // never nil
	frozen bool     // immutability flag
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ VectorData[float64] = (*Dense[float64])(nil)
	_ VectorData[float32] = (*Dense[float32])(nil)
	_ fmt.Stringer        = (*Dense[float64])(nil)
)

// NewDense creates a Dense vector holding a copy of values.
// MAIN DESCRIPTION:
//   - Public constructor; the caller keeps ownership of values.
//
// Implementation:
//   - Stage 1: reject a nil slice (ErrNilArgument). An empty slice is a legal size-0 vector.
//   - Stage 2: copy values into a fresh buffer; resolve options.
//
// Errors:
//   - ErrNilArgument.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewDense[T Element](values []T, opts ...Option) (*Dense[T], error) {
	if values == nil {
		return nil, validatorErrorf("NewDense: values", ErrNilArgument)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return newDenseOwned(buf, resolveOptions(opts)), nil
}

// NewZeroDense creates a Dense vector of the given size filled with zeros.
// Errors: ErrInvalidSize when size < 0.
func NewZeroDense[T Element](size int, opts ...Option) (*Dense[T], error) {
	if err := validateSize("NewZeroDense", size); err != nil {
		return nil, err
	}

	return newDenseOwned(make([]T, size), resolveOptions(opts)), nil
}

// newDenseOwned wraps a buffer the engine already owns (no copy).
func newDenseOwned[T Element](buf []T, o *Options) *Dense[T] {
	return &Dense[T]{values: buf, opts: o}
}

// Size returns the logical length. Complexity: O(1).
func (d *Dense[T]) Size() int { return len(d.values) }

// StorageType returns StorageDense.
func (d *Dense[T]) StorageType() StorageType { return StorageDense }

// IsDense is always true.
func (d *Dense[T]) IsDense() bool { return true }

// IsSparse is always false.
func (d *Dense[T]) IsSparse() bool { return false }

// IsMutable reports whether mutating methods are permitted.
func (d *Dense[T]) IsMutable() bool { return !d.frozen }

// Freeze makes d immutable and returns it.
func (d *Dense[T]) Freeze() VectorData[T] {
	d.frozen = true
	return d
}

func (d *Dense[T]) options() *Options { return d.opts }

func (d *Dense[T]) at(i int) T { return d.values[i] }

// Cardinality counts the non-zero entries (NaN counts as non-zero).
// Complexity: O(n).
func (d *Dense[T]) Cardinality() int {
	n := 0
	for _, v := range d.values {
		if v != 0 {
			n++
		}
	}

	return n
}

// Get returns the value at i or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) Get(i int) (T, error) {
	if err := validateIndex("Dense."+ctxGet, i, len(d.values)); err != nil {
		return 0, err
	}

	return d.values[i], nil
}

// Set stores v at i unconditionally (a zero stays a physical slot).
// Errors: ErrImmutable, ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) Set(i int, v T) error {
	if d.frozen {
		return validatorErrorf("Dense."+ctxSet, ErrImmutable)
	}
	if err := validateIndex("Dense."+ctxSet, i, len(d.values)); err != nil {
		return err
	}
	d.values[i] = v

	return nil
}

// ToDense returns an independent, mutable copy.
// Complexity: O(n).
func (d *Dense[T]) ToDense() *Dense[T] {
	return newDenseOwned(d.DenseValues(), d.opts)
}

// ToSparse scans for non-zero cells and returns a new Sparse vector.
// Implementation:
//   - Stage 1: count non-zeros to size both arrays exactly.
//   - Stage 2: copy (index, value) pairs in increasing index order.
//
// Complexity:
//   - Time O(n), Space O(nnz).
func (d *Dense[T]) ToSparse() *Sparse[T] {
	nnz := d.Cardinality()
	indices := make([]int, 0, nnz)
	values := make([]T, 0, nnz)
	for i, v := range d.values {
		if v != 0 {
			indices = append(indices, i)
			values = append(values, v)
		}
	}

	return newSparseOwned(indices, values, len(d.values), d.opts)
}

// Copy returns a mutable deep copy (Dense).
func (d *Dense[T]) Copy() VectorData[T] { return d.ToDense() }

// DenseValues returns a fresh copy of the buffer.
func (d *Dense[T]) DenseValues() []T {
	cp := make([]T, len(d.values))
	copy(cp, d.values)

	return cp
}

// Sum returns the sum of every entry, zeros included (zSum).
// Complexity: O(n), optionally fanned out.
func (d *Dense[T]) Sum() T { return sumChunks(d.opts, d.values) }

// Equals compares logical contents with any encoding.
func (d *Dense[T]) Equals(other VectorData[T]) bool { return equalContents[T](d, other) }

// Hash folds the logical contents (see hashContents).
func (d *Dense[T]) Hash() uint64 { return hashContents[T](d) }

// String renders "Dense[v0, v1, ...]" for diagnostics.
// Complexity: O(n).
func (d *Dense[T]) String() string {
	var b strings.Builder
	b.WriteString("Dense")
	b.WriteString(_fmtOpen)
	for i, v := range d.values {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

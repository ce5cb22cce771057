// SPDX-License-Identifier: MIT

// Package vectordata: domain types shared by both storage encodings.
// This file contains ONLY the element constraint, the storage kind enum,
// the scalar contract and the VectorData capability set.
package vectordata

import "golang.org/x/exp/constraints"

// Element is the numeric kind stored by the engine (float32 or float64).
type Element interface {
	constraints.Float
}

// StorageType names the physical encoding of a vector.
// The zero value StorageUnknown is treated as an absent argument by factories.
type StorageType int

const (
	// StorageUnknown is the zero value; factories reject it with ErrNilArgument.
	StorageUnknown StorageType = iota
	// StorageDense stores one slot per logical index.
	StorageDense
	// StorageSparse stores only non-zero (index, value) pairs.
	StorageSparse
)

// String returns "DENSE", "SPARSE" or "UNKNOWN".
func (s StorageType) String() string {
	switch s {
	case StorageDense:
		return "DENSE"
	case StorageSparse:
		return "SPARSE"
	default:
		return "UNKNOWN"
	}
}

// Scalar is a typed quantity that exposes its value in the standard unit.
type Scalar interface {
	SI() float64
}

// VectorData is the capability set shared by Dense and Sparse.
// It is sealed: only *Dense[T] and *Sparse[T] implement it, and the engine
// dispatches on the concrete kind with type switches.
//
// Mutating methods (Set, Assign, AssignBinary, IncrementBy, DecrementBy,
// MultiplyBy, DivideBy) return ErrImmutable on frozen storage and never
// change the encoding of the receiver. Pure combinators (Plus, Minus,
// Times, Divide) always return new, mutable storage.
type VectorData[T Element] interface {
	// Size returns the logical length.
	Size() int
	// Cardinality returns the number of non-zero entries.
	Cardinality() int
	// StorageType returns the physical encoding.
	StorageType() StorageType
	// IsDense reports StorageType() == StorageDense.
	IsDense() bool
	// IsSparse reports StorageType() == StorageSparse.
	IsSparse() bool
	// IsMutable reports whether mutating methods are permitted.
	IsMutable() bool
	// Freeze makes the storage immutable and returns it.
	Freeze() VectorData[T]

	// Get returns the value at index i or ErrOutOfRange.
	Get(i int) (T, error)
	// Set writes v at index i.
	Set(i int, v T) error

	// ToDense returns a new dense copy.
	ToDense() *Dense[T]
	// ToSparse returns a new sparse copy.
	ToSparse() *Sparse[T]
	// Copy returns a mutable deep copy of the same encoding.
	Copy() VectorData[T]
	// DenseValues returns a fresh slice with one value per logical index.
	DenseValues() []T

	// Assign replaces every value x with f(x) in place.
	Assign(f func(T) T) (VectorData[T], error)
	// AssignBinary replaces every value x with f(x, right[i]) in place.
	AssignBinary(f func(T, T) T, right VectorData[T]) (VectorData[T], error)

	// Plus returns this + right.
	Plus(right VectorData[T]) (VectorData[T], error)
	// Minus returns this - right.
	Minus(right VectorData[T]) (VectorData[T], error)
	// Times returns this * right element-wise.
	Times(right VectorData[T]) (VectorData[T], error)
	// Divide returns this / right element-wise.
	Divide(right VectorData[T]) (VectorData[T], error)

	// IncrementBy adds right in place.
	IncrementBy(right VectorData[T]) (VectorData[T], error)
	// DecrementBy subtracts right in place.
	DecrementBy(right VectorData[T]) (VectorData[T], error)
	// MultiplyBy multiplies by right element-wise in place.
	MultiplyBy(right VectorData[T]) (VectorData[T], error)
	// DivideBy divides by right element-wise in place.
	DivideBy(right VectorData[T]) (VectorData[T], error)

	// Sum returns the sum of every element (zSum).
	Sum() T

	// Equals compares logical contents regardless of encoding.
	Equals(other VectorData[T]) bool
	// Hash folds the logical contents; equal vectors hash equally.
	Hash() uint64
	// String renders the vector for diagnostics.
	String() string

	options() *Options // sealed: engine configuration carried by the storage
	at(i int) T        // unchecked read, 0 <= i < Size()
}

// binary kernels shared by the combinators.
func add[T Element](a, b T) T { return a + b }
func sub[T Element](a, b T) T { return a - b }
func mul[T Element](a, b T) T { return a * b }
func div[T Element](a, b T) T { return a / b }

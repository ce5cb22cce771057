// SPDX-License-Identifier: MIT
// Package vectordata: sentinel error set.
// All operations return these sentinels (wrapped with call-site context via
// fmt.Errorf("ctx: %w", ErrX)); callers and tests match with errors.Is.
// No operation panics on user-triggered error conditions, and no operation
// mutates or allocates externally visible state before failing.

package vectordata

import "errors"

var (
	// ErrNilArgument is returned when a required slice, map, scale, storage
	// type or operand is absent, or when a collection holds a nil element.
	ErrNilArgument = errors.New("vectordata: nil argument")

	// ErrInvalidSize is returned when a requested vector size is negative.
	ErrInvalidSize = errors.New("vectordata: invalid size")

	// ErrOutOfRange indicates an index (or map key) outside [0, size).
	ErrOutOfRange = errors.New("vectordata: index out of range")

	// ErrSizeMismatch indicates two operands of a binary operation differ in Size().
	ErrSizeMismatch = errors.New("vectordata: size mismatch")

	// ErrImmutable is returned by every mutating method on frozen storage.
	ErrImmutable = errors.New("vectordata: storage is immutable")

	// ErrUnknownStorage is returned for a StorageType value outside the enum.
	ErrUnknownStorage = errors.New("vectordata: unknown storage type")

	// ErrNotSorted indicates sparse indices that are not strictly increasing.
	ErrNotSorted = errors.New("vectordata: sparse indices not strictly increasing")

	// ErrZeroValue indicates an explicit zero handed to a sparse constructor.
	ErrZeroValue = errors.New("vectordata: zero value in sparse storage")

	// ErrInvalidConfig indicates an environment configuration that cannot be applied.
	ErrInvalidConfig = errors.New("vectordata: invalid configuration")
)

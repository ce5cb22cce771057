// SPDX-License-Identifier: MIT
// Package: vectordata
//
// Purpose:
//  - Provide a single, canonical source of truth for argument checks.
//  - Keep operations minimal by delegating nil/size/index/storage checks here.
//  - Return sentinel errors wrapped with the caller's tag so call sites read
//    "Dense.Plus: ... : vectordata: size mismatch".
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → SameSize.
//  - All checks run before any state is touched (no partial mutation).

package vectordata

import (
	"fmt"
	"reflect"

	"github.com/averbraeck/djunits-sub012/scale"
)

// validatorErrorf wraps an underlying error with the given call-site tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOperand rejects nil interfaces and typed nil storage pointers.
// Complexity: O(1).
func validateOperand[T Element](tag string, v VectorData[T]) error {
	switch x := v.(type) {
	case nil:
		return validatorErrorf(tag, ErrNilArgument)
	case *Dense[T]:
		if x == nil {
			return validatorErrorf(tag, ErrNilArgument)
		}
	case *Sparse[T]:
		if x == nil {
			return validatorErrorf(tag, ErrNilArgument)
		}
	}

	return nil
}

// checkSizes fails with ErrSizeMismatch unless both operands share Size().
// Assumes both operands are non-nil.
// Complexity: O(1).
func checkSizes[T Element](tag string, left, right VectorData[T]) error {
	if left.Size() != right.Size() {
		return fmt.Errorf("%s: sizes %d and %d: %w", tag, left.Size(), right.Size(), ErrSizeMismatch)
	}

	return nil
}

// validateBinary is the composite check run first by every binary operation:
// NotNil(right) → SameSize(left, right).
func validateBinary[T Element](tag string, left, right VectorData[T]) error {
	if err := validateOperand(tag, right); err != nil {
		return err
	}

	return checkSizes(tag, left, right)
}

// validateIndex checks 0 <= i < size.
func validateIndex(tag string, i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("%s(%d): size %d: %w", tag, i, size, ErrOutOfRange)
	}

	return nil
}

// validateSize rejects negative logical sizes.
func validateSize(tag string, size int) error {
	if size < 0 {
		return fmt.Errorf("%s: size %d: %w", tag, size, ErrInvalidSize)
	}

	return nil
}

// validateStorage rejects the zero StorageType (absent) and unknown values.
func validateStorage(tag string, st StorageType) error {
	switch st {
	case StorageDense, StorageSparse:
		return nil
	case StorageUnknown:
		return validatorErrorf(tag+": storage type", ErrNilArgument)
	default:
		return fmt.Errorf("%s: storage type %d: %w", tag, int(st), ErrUnknownStorage)
	}
}

// isNilArg reports whether x is a nil interface or an interface holding a
// nil pointer, func, map, slice, chan or interface.
// Complexity: O(1).
func isNilArg(x any) bool {
	if x == nil {
		return true
	}
	switch v := reflect.ValueOf(x); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// validateScale rejects a nil scale, typed nil pointers included.
func validateScale(tag string, s scale.Scale) error {
	if isNilArg(s) {
		return validatorErrorf(tag+": scale", ErrNilArgument)
	}

	return nil
}

// validateSparseLayout checks the sparse invariants of caller-provided arrays:
// equal lengths, indices strictly increasing within [0,size), no zero values.
// Complexity: O(n).
func validateSparseLayout[T Element](tag string, indices []int, values []T, size int) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%s: %d indices, %d values: %w", tag, len(indices), len(values), ErrSizeMismatch)
	}
	prev := -1
	for k, idx := range indices {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%s: index %d: size %d: %w", tag, idx, size, ErrOutOfRange)
		}
		if idx <= prev {
			return fmt.Errorf("%s: index %d after %d: %w", tag, idx, prev, ErrNotSorted)
		}
		if values[k] == 0 {
			return fmt.Errorf("%s: index %d: %w", tag, idx, ErrZeroValue)
		}
		prev = idx
	}

	return nil
}

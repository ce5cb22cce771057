// SPDX-License-Identifier: MIT

// Package vectordata - Dense arithmetic.
//
// Purpose:
//   - Element-wise assignment and combinators for Dense receivers.
//   - Dense absorbs a sparse right operand for Plus/Minus/Divide (dense result)
//     and hands Times over to the sparse operand so the product stays sparse.
//
// Determinism & Performance:
//   - Every per-index transform runs through Options.forChunks; each index
//     reads its old value before writing it, so in-place passes have no
//     ordering constraint and the result is independent of the fan-out.
//   - A sparse right operand is materialized once (O(n)) instead of being
//     binary-searched per index.

package vectordata

import (
	"go.uber.org/zap"
)

// rightBuffer returns right as a flat buffer. A Dense operand is returned
// without copying and must be treated as read-only.
func rightBuffer[T Element](right VectorData[T]) []T {
	if r, ok := right.(*Dense[T]); ok {
		return r.values
	}

	return right.DenseValues()
}

// Assign replaces every value x with f(x) in place and returns d.
// MAIN DESCRIPTION:
//   - In-place map; f must be safe for concurrent calls when the fan-out is enabled.
//
// Errors:
//   - ErrImmutable.
//
// Complexity:
//   - Time O(n), Space O(1).
func (d *Dense[T]) Assign(f func(T) T) (VectorData[T], error) {
	if d.frozen {
		return nil, validatorErrorf("Dense.Assign", ErrImmutable)
	}
	d.opts.metrics.observeOp(opAssign, StorageDense)
	d.opts.forChunks(len(d.values), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d.values[i] = f(d.values[i])
		}
	})

	return d, nil
}

// AssignBinary replaces every value x with f(x, right[i]) in place and returns d.
// Implementation:
//   - Stage 1: validate mutability, operand and sizes (no state touched on failure).
//   - Stage 2: read right through its dense buffer (Dense) or a materialized
//     copy (Sparse), apply f per index.
//
// Errors:
//   - ErrImmutable, ErrNilArgument, ErrSizeMismatch.
//
// Complexity:
//   - Time O(n), Space O(n) only for a sparse right operand.
func (d *Dense[T]) AssignBinary(f func(T, T) T, right VectorData[T]) (VectorData[T], error) {
	if d.frozen {
		return nil, validatorErrorf("Dense.AssignBinary", ErrImmutable)
	}
	if err := validateBinary[T]("Dense.AssignBinary", d, right); err != nil {
		return nil, err
	}
	d.opts.metrics.observeOp(opAssignBin, StorageDense)

	rv := rightBuffer(right)
	d.opts.forChunks(len(d.values), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d.values[i] = f(d.values[i], rv[i])
		}
	})

	return d, nil
}

// inPlace is the common body of IncrementBy/DecrementBy/MultiplyBy/DivideBy.
func (d *Dense[T]) inPlace(op string, k binaryKernel[T], right VectorData[T]) (VectorData[T], error) {
	tag := "Dense." + op
	if d.frozen {
		return nil, validatorErrorf(tag, ErrImmutable)
	}
	if err := validateBinary[T](tag, d, right); err != nil {
		return nil, err
	}
	d.opts.metrics.observeOp(op, StorageDense)
	applyBinary(d.opts, k, d.values, d.values, rightBuffer(right))

	return d, nil
}

// fresh computes k(d, right) into a new Dense result.
func (d *Dense[T]) fresh(op string, k binaryKernel[T], right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Dense."+op, d, right); err != nil {
		return nil, err
	}
	d.opts.metrics.observeOp(op, StorageDense)
	out := make([]T, len(d.values))
	applyBinary(d.opts, k, out, d.values, rightBuffer(right))

	return newDenseOwned(out, d.opts), nil
}

// IncrementBy adds right in place. Complexity: O(n).
func (d *Dense[T]) IncrementBy(right VectorData[T]) (VectorData[T], error) {
	return d.inPlace(opIncrementBy, kAdd[T], right)
}

// DecrementBy subtracts right in place. Complexity: O(n).
func (d *Dense[T]) DecrementBy(right VectorData[T]) (VectorData[T], error) {
	return d.inPlace(opDecrementBy, kSub[T], right)
}

// MultiplyBy multiplies by right in place; d stays Dense. Complexity: O(n).
func (d *Dense[T]) MultiplyBy(right VectorData[T]) (VectorData[T], error) {
	return d.inPlace(opMultiplyBy, kMul[T], right)
}

// DivideBy divides by right in place; x/0 and 0/0 follow IEEE-754. Complexity: O(n).
func (d *Dense[T]) DivideBy(right VectorData[T]) (VectorData[T], error) {
	return d.inPlace(opDivideBy, kDiv[T], right)
}

// Plus returns a new Dense d + right for either encoding of right.
// Complexity: O(n).
func (d *Dense[T]) Plus(right VectorData[T]) (VectorData[T], error) {
	return d.fresh(opPlus, kAdd[T], right)
}

// Minus returns a new Dense d - right for either encoding of right.
// Complexity: O(n).
func (d *Dense[T]) Minus(right VectorData[T]) (VectorData[T], error) {
	return d.fresh(opMinus, kSub[T], right)
}

// Times returns d * right element-wise.
// Behavior highlights:
//   - Dense right: new Dense.
//   - Sparse right: delegated to right.Times(d) (multiplication commutes), so
//     the product stays Sparse.
//
// Complexity: O(n).
func (d *Dense[T]) Times(right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Dense.Times", d, right); err != nil {
		return nil, err
	}
	if s, ok := right.(*Sparse[T]); ok {
		d.opts.logger.Debug("dense times sparse delegated to sparse operand",
			zap.Int("size", len(d.values)),
			zap.Int("cardinality", s.Cardinality()),
		)
		return s.Times(d)
	}

	return d.fresh(opTimes, kMul[T], right)
}

// Divide returns a new Dense d / right for either encoding of right.
// Division does not commute, so a sparse right operand is never delegated.
// Complexity: O(n).
func (d *Dense[T]) Divide(right VectorData[T]) (VectorData[T], error) {
	return d.fresh(opDivide, kDiv[T], right)
}

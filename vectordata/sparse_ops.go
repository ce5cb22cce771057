// SPDX-License-Identifier: MIT

// Package vectordata - Sparse arithmetic: densify fallback, sorted merges,
// and the result-encoding policy.
//
// Purpose:
//   - Never let a non-zero result leak into dense storage the caller did not
//     ask for, and never spend O(size) memory on a result that stays sparse.
//
// Algorithm:
//   - f(0) != 0 (unary) or f(0,0) != 0 (binary): every implicit zero would
//     become a stored value, so the receiver is densified, computed densely,
//     and re-sparsified into itself.
//   - Otherwise only positions stored on at least one side can produce a
//     non-zero, and a sequential two-cursor merge builds the output in a
//     sparseBuffer (capacity min(16,size), doubling capped at size, trimmed).
//
// Determinism:
//   - The merge is inherently sequential and is never fanned out.

package vectordata

import (
	"go.uber.org/zap"
)

// replace installs freshly built arrays into s and reports buffer growth.
func (s *Sparse[T]) replace(b *sparseBuffer[T]) {
	s.indices, s.values = b.finish()
	for i := 0; i < b.grows; i++ {
		s.opts.metrics.observeGrow()
	}
	if b.grows > 0 {
		s.opts.logger.Debug("sparse output buffer grown",
			zap.Int("size", s.size),
			zap.Int("cardinality", len(s.indices)),
			zap.Int("reallocations", b.grows),
		)
	}
}

// densifyInto installs the non-zeros of a dense result into s.
func (s *Sparse[T]) densifyInto(op string, d *Dense[T]) {
	r := d.ToSparse()
	s.indices, s.values = r.indices, r.values
	s.opts.metrics.observeDensify(op)
	s.opts.logger.Debug("sparse operation densified",
		zap.String("op", op),
		zap.Int("size", s.size),
		zap.Int("cardinality", len(s.indices)),
	)
}

// Assign replaces every value x with f(x) in place and returns s.
// MAIN DESCRIPTION:
//   - Sparsity-preserving map with a dense fallback when f(0) != 0.
//
// Implementation:
//   - Stage 1: if f(0) != 0, densify, apply, re-sparsify into s.
//   - Stage 2: otherwise walk stored pairs, keep results that are non-zero.
//
// Errors:
//   - ErrImmutable.
//
// Complexity:
//   - Time O(nnz) (O(size) on fallback), Space O(nnz).
func (s *Sparse[T]) Assign(f func(T) T) (VectorData[T], error) {
	if s.frozen {
		return nil, validatorErrorf("Sparse.Assign", ErrImmutable)
	}
	s.opts.metrics.observeOp(opAssign, StorageSparse)

	if f(0) != 0 {
		d := s.ToDense()
		_, _ = d.Assign(f) // fresh mutable dense: cannot fail
		s.densifyInto(opAssign, d)
		return s, nil
	}

	b := newSparseBuffer[T](s.size)
	for k, idx := range s.indices {
		b.push(idx, f(s.values[k]))
	}
	s.replace(b)

	return s, nil
}

// AssignBinary replaces every value x with f(x, right[i]) in place and returns s.
// MAIN DESCRIPTION:
//   - Sparse receiver stays Sparse; right may be either encoding.
//
// Implementation:
//   - Stage 1: validate mutability, operand and sizes.
//   - Stage 2: if f(0,0) != 0, compute on the dense form and re-sparsify.
//   - Stage 3: Sparse right → two-cursor merge; Dense right → walk every
//     position of right with a cursor over s.indices.
//
// Errors:
//   - ErrImmutable, ErrNilArgument, ErrSizeMismatch.
//
// Complexity:
//   - Sparse right: O(nnz(s) + nnz(right)); Dense right: O(size).
func (s *Sparse[T]) AssignBinary(f func(T, T) T, right VectorData[T]) (VectorData[T], error) {
	return s.assignBinary(opAssignBin, f, right)
}

func (s *Sparse[T]) assignBinary(op string, f func(T, T) T, right VectorData[T]) (VectorData[T], error) {
	tag := "Sparse." + op
	if s.frozen {
		return nil, validatorErrorf(tag, ErrImmutable)
	}
	if err := validateBinary[T](tag, s, right); err != nil {
		return nil, err
	}
	s.opts.metrics.observeOp(op, StorageSparse)

	if f(0, 0) != 0 {
		d := s.ToDense()
		_, _ = d.AssignBinary(f, right) // sizes already checked
		s.densifyInto(op, d)
		return s, nil
	}

	var b *sparseBuffer[T]
	switch r := right.(type) {
	case *Sparse[T]:
		b = mergeSparse(f, s, r)
	case *Dense[T]:
		b = mergeDense(f, s, r)
	}
	s.replace(b)

	return s, nil
}

// mergeSparse is the sorted merge of two index streams.
//   - equal indices combine both values;
//   - the smaller index combines its value with an implicit zero;
//   - once one side is exhausted, the other side combines with zero.
//
// a and b may be the same storage; the output goes to a new buffer.
// Complexity: O(nnz(a) + nnz(b)).
func mergeSparse[T Element](f func(T, T) T, a, b *Sparse[T]) *sparseBuffer[T] {
	out := newSparseBuffer[T](a.size)
	i, j := 0, 0
	na, nb := len(a.indices), len(b.indices)
	for i < na || j < nb {
		switch {
		case j >= nb || (i < na && a.indices[i] < b.indices[j]):
			out.push(a.indices[i], f(a.values[i], 0))
			i++
		case i >= na || b.indices[j] < a.indices[i]:
			out.push(b.indices[j], f(0, b.values[j]))
			j++
		default: // a.indices[i] == b.indices[j]
			out.push(a.indices[i], f(a.values[i], b.values[j]))
			i++
			j++
		}
	}

	return out
}

// mergeDense walks every position of the dense operand; a cursor over
// a.indices (sorted) supplies a's value or an implicit zero.
// Complexity: O(size).
func mergeDense[T Element](f func(T, T) T, a *Sparse[T], d *Dense[T]) *sparseBuffer[T] {
	out := newSparseBuffer[T](a.size)
	k := 0
	for pos, rv := range d.values {
		var lv T
		if k < len(a.indices) && a.indices[k] == pos {
			lv = a.values[k]
			k++
		}
		out.push(pos, f(lv, rv))
	}

	return out
}

// IncrementBy adds right in place; s stays Sparse.
func (s *Sparse[T]) IncrementBy(right VectorData[T]) (VectorData[T], error) {
	return s.assignBinary(opIncrementBy, add[T], right)
}

// DecrementBy subtracts right in place; s stays Sparse.
func (s *Sparse[T]) DecrementBy(right VectorData[T]) (VectorData[T], error) {
	return s.assignBinary(opDecrementBy, sub[T], right)
}

// MultiplyBy multiplies by right in place; s stays Sparse.
func (s *Sparse[T]) MultiplyBy(right VectorData[T]) (VectorData[T], error) {
	return s.assignBinary(opMultiplyBy, mul[T], right)
}

// DivideBy divides by right in place; s stays Sparse.
// Because 0/0 is NaN, this always takes the dense fallback: implicit zeros
// divided by a zero of right become stored NaN values.
func (s *Sparse[T]) DivideBy(right VectorData[T]) (VectorData[T], error) {
	return s.assignBinary(opDivideBy, div[T], right)
}

// mutableCopy returns a mutable copy carrying the receiver's options.
func (s *Sparse[T]) mutableCopy() *Sparse[T] { return s.ToSparse() }

// Plus returns s + right.
// Behavior highlights:
//   - Dense right: delegated to right.Plus(s) (addition commutes) → Dense.
//   - Sparse right: merge into a copy of s → Sparse.
//
// Complexity: O(size) or O(nnz(s) + nnz(right)).
func (s *Sparse[T]) Plus(right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Sparse.Plus", s, right); err != nil {
		return nil, err
	}
	if d, ok := right.(*Dense[T]); ok {
		return d.Plus(s)
	}

	return s.mutableCopy().assignBinary(opPlus, add[T], right)
}

// Minus returns s - right.
// Behavior highlights:
//   - Dense right: computed as -(right - s) → Dense.
//   - Sparse right: merge into a copy of s → Sparse.
//
// Complexity: O(size) or O(nnz(s) + nnz(right)).
func (s *Sparse[T]) Minus(right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Sparse.Minus", s, right); err != nil {
		return nil, err
	}
	if d, ok := right.(*Dense[T]); ok {
		diff, err := d.Minus(s)
		if err != nil {
			return nil, err
		}
		return diff.Assign(negate[T])
	}

	return s.mutableCopy().assignBinary(opMinus, sub[T], right)
}

// Times returns s * right element-wise as Sparse for either encoding of
// right (zero times anything is zero, so sparse absorbs).
// Complexity: O(size) or O(nnz(s) + nnz(right)).
func (s *Sparse[T]) Times(right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Sparse.Times", s, right); err != nil {
		return nil, err
	}

	return s.mutableCopy().assignBinary(opTimes, mul[T], right)
}

// Divide returns s / right element-wise.
// Behavior highlights:
//   - Sparse right: Dense result (most positions become 0/0 = NaN).
//   - Dense right: Sparse result computed on a copy of s.
//
// Complexity: O(size).
func (s *Sparse[T]) Divide(right VectorData[T]) (VectorData[T], error) {
	if err := validateBinary[T]("Sparse.Divide", s, right); err != nil {
		return nil, err
	}
	if _, ok := right.(*Sparse[T]); ok {
		s.opts.metrics.observeOp(opDivide, StorageSparse)
		d := s.ToDense()
		applyBinary(d.opts, kDiv[T], d.values, d.values, rightBuffer(right))
		return d, nil
	}

	return s.mutableCopy().assignBinary(opDivide, div[T], right)
}

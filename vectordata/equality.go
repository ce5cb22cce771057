// SPDX-License-Identifier: MIT

// Package vectordata - representation-independent equality and hashing.
//
// Policy:
//   - Two vectors are equal when they share Size() and, at every index, the
//     values compare equal with == or are both NaN. -0 equals +0.
//   - Hash visits the non-zero entries in increasing index order, so Dense and
//     Sparse encodings of the same logical vector produce identical hashes.
//     NaN payloads are canonicalized; zeros (both signs) are skipped.

package vectordata

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaNBits is the bit pattern hashed for every NaN.
const canonicalNaNBits = 0x7FF8000000000001

// sameValue is the element equality used by Equals.
func sameValue[T Element](a, b T) bool {
	return a == b || (a != a && b != b)
}

// equalContents compares the logical contents of a and b.
// Complexity:
//   - Sparse/Sparse: O(nnz); otherwise O(size).
func equalContents[T Element](a, b VectorData[T]) bool {
	if validateOperand("Equals", b) != nil {
		return false
	}
	if a.Size() != b.Size() {
		return false
	}

	// Canonical sparse layouts compare pairwise.
	if sa, ok := a.(*Sparse[T]); ok {
		if sb, ok := b.(*Sparse[T]); ok {
			if len(sa.indices) != len(sb.indices) {
				return false
			}
			for k := range sa.indices {
				if sa.indices[k] != sb.indices[k] || !sameValue(sa.values[k], sb.values[k]) {
					return false
				}
			}
			return true
		}
	}

	// Dense on at least one side: compare every position.
	av, bv := rightBuffer(a), rightBuffer(b)
	for i := range av {
		if !sameValue(av[i], bv[i]) {
			return false
		}
	}

	return true
}

// visitNonZero calls fn(i, v) for every non-zero entry in increasing index order.
func visitNonZero[T Element](v VectorData[T], fn func(i int, x T)) {
	switch s := v.(type) {
	case *Sparse[T]:
		for k, idx := range s.indices {
			fn(idx, s.values[k])
		}
	case *Dense[T]:
		for i, x := range s.values {
			if x != 0 {
				fn(i, x)
			}
		}
	}
}

// hashContents folds size and non-zero (index, value) pairs with xxhash.
// Complexity: O(nnz) for Sparse, O(size) for Dense.
func hashContents[T Element](v VectorData[T]) uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(v.Size()))
	_, _ = h.Write(buf[:])

	visitNonZero(v, func(i int, x T) {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], valueBits(x))
		_, _ = h.Write(buf[:])
	})

	return h.Sum64()
}

// valueBits widens x to float64 and returns its bits with NaN canonicalized.
func valueBits[T Element](x T) uint64 {
	f := float64(x)
	if math.IsNaN(f) {
		return canonicalNaNBits
	}

	return math.Float64bits(f)
}

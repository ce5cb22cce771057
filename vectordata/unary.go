// SPDX-License-Identifier: MIT

package vectordata

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// negate is the additive inverse used by Sparse.Minus and Neg.
func negate[T Element](x T) T { return -x }

// absolute returns |x|; NaN stays NaN.
func absolute[T Element](x T) T { return T(math.Abs(float64(x))) }

// Neg returns a new vector -v with the same encoding as v.
// Errors: ErrNilArgument.
func Neg[T Element](v VectorData[T]) (VectorData[T], error) {
	if err := validateOperand("Neg", v); err != nil {
		return nil, err
	}

	return v.Copy().Assign(negate[T])
}

// Abs returns a new vector |v| with the same encoding as v.
// Errors: ErrNilArgument.
func Abs[T Element](v VectorData[T]) (VectorData[T], error) {
	if err := validateOperand("Abs", v); err != nil {
		return nil, err
	}

	return v.Copy().Assign(absolute[T])
}

// ScaleBy returns a new vector factor * v with the same encoding as v.
// A zero factor yields an all-zero vector (an empty Sparse, or a Dense of zeros);
// a NaN or infinite factor densifies the implicit zeros of a Sparse v.
// Errors: ErrNilArgument.
func ScaleBy[T Element](v VectorData[T], factor T) (VectorData[T], error) {
	if err := validateOperand("ScaleBy", v); err != nil {
		return nil, err
	}

	return v.Copy().Assign(func(x T) T { return x * factor })
}

// Support returns the positions of the non-zero entries of v as a roaring bitmap.
// Errors:
//   - ErrNilArgument for a nil v.
//   - ErrOutOfRange when Size() exceeds the uint32 domain of the bitmap.
//
// Complexity: O(nnz) for Sparse, O(size) for Dense.
func Support[T Element](v VectorData[T]) (*roaring.Bitmap, error) {
	if err := validateOperand("Support", v); err != nil {
		return nil, err
	}
	if uint64(v.Size()) > math.MaxUint32+1 {
		return nil, fmt.Errorf("Support: size %d: %w", v.Size(), ErrOutOfRange)
	}

	bm := roaring.New()
	visitNonZero(v, func(i int, _ T) {
		bm.Add(uint32(i))
	})

	return bm, nil
}

// Convert re-types v to element kind U (e.g. float64 → float32), keeping its
// encoding and options. Sparse entries that round to zero in U are dropped.
// Errors: ErrNilArgument.
// Complexity: O(size) for Dense, O(nnz) for Sparse.
func Convert[U, T Element](v VectorData[T]) (VectorData[U], error) {
	if err := validateOperand("Convert", v); err != nil {
		return nil, err
	}

	switch src := v.(type) {
	case *Dense[T]:
		out := make([]U, len(src.values))
		for i, x := range src.values {
			out[i] = U(x)
		}
		return newDenseOwned(out, src.opts), nil
	case *Sparse[T]:
		b := newSparseBuffer[U](src.size)
		for k, idx := range src.indices {
			b.push(idx, U(src.values[k]))
		}
		res := newSparseOwned([]int{}, []U{}, src.size, src.opts)
		res.replace(b)
		return res, nil
	}

	return nil, validatorErrorf("Convert", ErrNilArgument) // unreachable: sealed interface
}

// SPDX-License-Identifier: MIT

// Package vectordata is the numeric storage and algebra engine behind
// unit-carrying vector quantities.
//
// The package provides:
//
//   - Dense storage: one contiguous buffer, one slot per logical index.
//   - Sparse storage: sorted index array plus parallel non-zero value array.
//   - Factories for five input shapes (raw slice, nullable list, scalar slice,
//     index→value map, existing storage) that apply a scale.Scale on ingestion.
//   - Element-wise unary/binary assignment and the arithmetic combinators
//     Plus/Minus/Times/Divide with in-place IncrementBy/DecrementBy/
//     MultiplyBy/DivideBy, where the encoding of the result follows a
//     density-preserving policy instead of always materializing dense output.
//   - Representation-independent Equals and Hash.
//
// Result encoding policy:
//
//	dense  ⊕ dense  → dense          sparse ± sparse → sparse
//	dense  ± sparse → dense          sparse ± dense  → dense
//	any    × sparse → sparse         sparse × any    → sparse
//	sparse / sparse → dense          sparse / dense  → sparse
//	dense  / any    → dense
//
// One generic engine serves float32 and float64. Dense per-index kernels may
// fan out over chunks (see WithParallelThreshold); the sparse merge is always
// sequential. Storage is not safe for concurrent mutation.
package vectordata

// SPDX-License-Identifier: MIT
// Package: vectordata
//
// Purpose:
//   - Provide small, *private* element-wise kernels (k*) over flat buffers so
//     Dense operations do not duplicate tight loops.
//   - Offer a chunked fan-out (forChunks) that every dense per-index transform
//     runs through; each chunk writes a disjoint range, so no locking is needed.
//
// Design:
//   - float64 buffers take the gonum/floats fast path; other element types
//     (float32, named float types) use the generic loop.
//   - Results never depend on the fan-out, except Sum whose partial sums are
//     combined in chunk order (deterministic for a given worker count).

package vectordata

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// forChunks runs body over [0,n) either inline or split into contiguous
// chunks executed by at most maxWorkers goroutines.
// Complexity: O(n) total work plus O(workers) scheduling.
func (o *Options) forChunks(n int, body func(lo, hi int)) {
	if !o.parallel(n) {
		body(0, n)
		return
	}
	chunk := (n + o.maxWorkers - 1) / o.maxWorkers

	var g errgroup.Group
	g.SetLimit(o.maxWorkers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // bodies never fail
}

// asFloat64 exposes a buffer as []float64 when T is exactly float64.
func asFloat64[T Element](s []T) ([]float64, bool) {
	f, ok := any(s).([]float64)
	return f, ok
}

// kAdd computes dst[i] = a[i] + b[i]. dst may alias a or b.
func kAdd[T Element](dst, a, b []T) {
	if d, ok := asFloat64(dst); ok {
		x, _ := asFloat64(a)
		y, _ := asFloat64(b)
		floats.AddTo(d, x, y)
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// kSub computes dst[i] = a[i] - b[i]. dst may alias a or b.
func kSub[T Element](dst, a, b []T) {
	if d, ok := asFloat64(dst); ok {
		x, _ := asFloat64(a)
		y, _ := asFloat64(b)
		floats.SubTo(d, x, y)
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// kMul computes dst[i] = a[i] * b[i]. dst may alias a or b.
func kMul[T Element](dst, a, b []T) {
	if d, ok := asFloat64(dst); ok {
		x, _ := asFloat64(a)
		y, _ := asFloat64(b)
		floats.MulTo(d, x, y)
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// kDiv computes dst[i] = a[i] / b[i] with IEEE-754 semantics (x/0 = ±Inf, 0/0 = NaN).
func kDiv[T Element](dst, a, b []T) {
	if d, ok := asFloat64(dst); ok {
		x, _ := asFloat64(a)
		y, _ := asFloat64(b)
		floats.DivTo(d, x, y)
		return
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// kSum returns the sum of s.
func kSum[T Element](s []T) T {
	if f, ok := asFloat64(s); ok {
		return T(floats.Sum(f))
	}
	var acc T
	for _, v := range s {
		acc += v
	}

	return acc
}

// binaryKernel picks the slice kernel for a known scalar combinator.
type binaryKernel[T Element] func(dst, a, b []T)

// applyBinary runs k over dst/a/b with the configured fan-out.
func applyBinary[T Element](o *Options, k binaryKernel[T], dst, a, b []T) {
	o.forChunks(len(dst), func(lo, hi int) {
		k(dst[lo:hi], a[lo:hi], b[lo:hi])
	})
}

// sumChunks sums s through the fan-out; partials are added in chunk order.
func sumChunks[T Element](o *Options, s []T) T {
	if !o.parallel(len(s)) {
		return kSum(s)
	}
	chunk := (len(s) + o.maxWorkers - 1) / o.maxWorkers
	partials := make([]T, (len(s)+chunk-1)/chunk)
	o.forChunks(len(s), func(lo, hi int) {
		partials[lo/chunk] = kSum(s[lo:hi])
	})

	return kSum(partials)
}

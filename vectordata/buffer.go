// SPDX-License-Identifier: MIT

package vectordata

// sparseBuffer accumulates (index, value) pairs for a sparse result.
// Pairs must be pushed in strictly increasing index order; zero values are
// dropped on push so the finished arrays never hold a stored zero.
//
// Growth policy:
//   - start at capacity min(initialSparseCapacity, size),
//   - double on overflow, capped at size (a vector never has more than size
//     non-zeros, so the cap is never exceeded),
//   - trim to exactly n entries in finish.
type sparseBuffer[T Element] struct {
	indices []int // physical buffer, len == capacity
	values  []T   // parallel to indices
	n       int   // pairs written so far
	size    int   // logical size of the vector being built
	grows   int   // reallocations performed (observability)
}

// newSparseBuffer allocates the initial buffers for a vector of logical size.
func newSparseBuffer[T Element](size int) *sparseBuffer[T] {
	c := min(initialSparseCapacity, size)

	return &sparseBuffer[T]{
		indices: make([]int, c),
		values:  make([]T, c),
		size:    size,
	}
}

// push appends (idx, v) unless v == 0.
// Complexity: amortized O(1).
func (b *sparseBuffer[T]) push(idx int, v T) {
	if v == 0 {
		return // zeros are implicit in sparse storage
	}
	if b.n == len(b.indices) {
		b.grow()
	}
	b.indices[b.n] = idx
	b.values[b.n] = v
	b.n++
}

// grow doubles the capacity, capped at the logical size.
func (b *sparseBuffer[T]) grow() {
	c := min(max(2*len(b.indices), 1), b.size)
	idx := make([]int, c)
	val := make([]T, c)
	copy(idx, b.indices[:b.n])
	copy(val, b.values[:b.n])
	b.indices, b.values = idx, val
	b.grows++
}

// finish returns arrays trimmed to the exact number of stored pairs.
// Complexity: O(n) when a trim is needed, O(1) otherwise.
func (b *sparseBuffer[T]) finish() ([]int, []T) {
	if b.n == len(b.indices) {
		return b.indices, b.values
	}
	idx := make([]int, b.n)
	val := make([]T, b.n)
	copy(idx, b.indices[:b.n])
	copy(val, b.values[:b.n])

	return idx, val
}

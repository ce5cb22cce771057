// SPDX-License-Identifier: MIT

package vectordata

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED buffer growth, option resolution and metric collectors
//     to vectordata_test ONLY, without widening the production API.
//   - The file ends in _test.go, so it is compiled only by `go test`.

import "github.com/prometheus/client_golang/prometheus"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	InitialSparseCapacity_TestOnly = initialSparseCapacity
)

// BufferGrowth_TestOnly pushes `pushes` non-zero pairs into a sparse output
// buffer of logical size `size` and reports every capacity it went through
// plus the length/capacity of the trimmed result.
func BufferGrowth_TestOnly(size, pushes int) (caps []int, finalLen, finalCap int) {
	b := newSparseBuffer[float64](size)
	caps = append(caps, len(b.indices))
	for i := 0; i < pushes; i++ {
		before := len(b.indices)
		b.push(i, 1)
		if len(b.indices) != before {
			caps = append(caps, len(b.indices))
		}
	}
	idx, _ := b.finish()

	return caps, len(idx), cap(idx)
}

// OptionsSnapshot_TestOnly resolves opts and returns the effective settings.
func OptionsSnapshot_TestOnly(opts ...Option) (threshold, workers int, hasMetrics bool) {
	o := gatherOptions(opts...)
	return o.parallelThreshold, o.maxWorkers, o.metrics != nil
}

// StorageParallel_TestOnly reports whether v's options fan out over n elements.
func StorageParallel_TestOnly[T Element](v VectorData[T], n int) bool {
	return v.options().parallel(n)
}

// OperationsCounter_TestOnly returns the operations counter for (op, storage).
func OperationsCounter_TestOnly(m *Metrics, op string, st StorageType) prometheus.Counter {
	return m.operations.WithLabelValues(op, st.String())
}

// DensifyCounter_TestOnly returns the densify counter for op.
func DensifyCounter_TestOnly(m *Metrics, op string) prometheus.Counter {
	return m.densify.WithLabelValues(op)
}

// SparseGrowCounter_TestOnly returns the sparse buffer growth counter.
func SparseGrowCounter_TestOnly(m *Metrics) prometheus.Counter {
	return m.sparseGrow
}

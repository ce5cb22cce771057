// SPDX-License-Identifier: MIT

// Package vectordata: functional configuration of the engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived settings once.
//
// Design goals:
//   - Deterministic results: options change scheduling and observability,
//     never the numeric outcome of an element-wise kernel.
//   - Options are resolved once at construction and carried by the storage;
//     results of an operation inherit the receiver's Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package vectordata

import (
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the minimum dense length at which per-index
	// kernels fan out over worker goroutines. 0 disables fan-out.
	DefaultParallelThreshold = 1 << 15

	// DefaultMaxWorkers bounds the fan-out; 0 resolves to runtime.GOMAXPROCS(0).
	DefaultMaxWorkers = 0
)

// initialSparseCapacity is the starting capacity of a sparse output buffer
// (capped by the logical size); buffers double on overflow.
const initialSparseCapacity = 16

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "vectordata: WithParallelThreshold: threshold must be >= 0"
	panicWorkersInvalid   = "vectordata: WithMaxWorkers: workers must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
// A resolved *Options is immutable and shared by every storage built from it.
type Options struct {
	parallelThreshold int         // 0 ⇒ sequential kernels
	maxWorkers        int         // resolved to >= 1 by gatherOptions
	logger            *zap.Logger // never nil after gatherOptions
	metrics           *Metrics    // nil ⇒ metrics disabled
}

// defaultOptions backs every storage created without explicit options.
var defaultOptions = gatherOptions()

// WithParallelThreshold sets the dense length from which kernels fan out.
// Implementation:
//   - Stage 1: validate n >= 0; panic otherwise.
//   - Stage 2: return a setter; 0 disables parallel execution.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithSequential disables fan-out for every kernel.
func WithSequential() Option {
	return func(o *Options) { o.parallelThreshold = 0 }
}

// WithMaxWorkers bounds the number of goroutines used by a fan-out.
// 0 means runtime.GOMAXPROCS(0). Panics on negative n.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.maxWorkers = n }
}

// WithLogger routes engine debug events to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics enables operation counters on m (see NewMetrics).
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// gatherOptions applies user setters over the defaults and resolves
// derived values (worker count, no-op logger) in exactly one place.
func gatherOptions(user ...Option) *Options {
	o := &Options{
		parallelThreshold: DefaultParallelThreshold,
		maxWorkers:        DefaultMaxWorkers,
	}
	for _, set := range user {
		set(o) // apply in order; last-writer-wins semantics
	}

	if o.maxWorkers == 0 {
		o.maxWorkers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// resolveOptions returns defaultOptions when no setters are given, so the
// common path allocates nothing.
func resolveOptions(user []Option) *Options {
	if len(user) == 0 {
		return defaultOptions
	}

	return gatherOptions(user...)
}

// parallel reports whether a kernel over n elements should fan out.
func (o *Options) parallel(n int) bool {
	return o.parallelThreshold > 0 && n >= o.parallelThreshold && o.maxWorkers > 1
}

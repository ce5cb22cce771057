// SPDX-License-Identifier: MIT

package vectordata

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric labels.
const (
	labelOp      = "op"
	labelStorage = "storage"
)

// Operation names used as the "op" label and in log events.
const (
	opAssign      = "assign"
	opAssignBin   = "assign_binary"
	opPlus        = "plus"
	opMinus       = "minus"
	opTimes       = "times"
	opDivide      = "divide"
	opIncrementBy = "increment_by"
	opDecrementBy = "decrement_by"
	opMultiplyBy  = "multiply_by"
	opDivideBy    = "divide_by"
	opInstantiate = "instantiate"
)

// Metrics holds the Prometheus collectors of the engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	densify    *prometheus.CounterVec
	sparseGrow prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectordata_operations_total",
				Help: "Vector operations by name and receiver storage type",
			},
			[]string{labelOp, labelStorage},
		),
		densify: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectordata_densify_total",
				Help: "Sparse operations that fell back to a dense computation",
			},
			[]string{labelOp},
		),
		sparseGrow: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vectordata_sparse_grow_total",
				Help: "Reallocations of sparse output buffers",
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.operations, m.densify, m.sparseGrow} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeOp(op string, st StorageType) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, st.String()).Inc()
}

func (m *Metrics) observeDensify(op string) {
	if m == nil {
		return
	}
	m.densify.WithLabelValues(op).Inc()
}

func (m *Metrics) observeGrow() {
	if m == nil {
		return
	}
	m.sparseGrow.Inc()
}

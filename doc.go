// Package djunits is the numeric storage core for unit-aware vectors:
// dense and sparse float vectors that hold every value in the standard
// (SI) unit and combine element-wise without ever losing sparsity by accident.
//
// 🚀 What is inside?
//
//	• scale/      — display-unit ↔ standard-unit conversions (identity, linear,
//	                offset-linear such as °C → K, arbitrary function pairs)
//	• vectordata/ — Dense and Sparse storage behind one VectorData interface,
//	                factories from slices, lists, scalars and index maps,
//	                element-wise arithmetic with a fixed result-encoding policy,
//	                representation-independent equality and hashing
//
// ✨ Why this layout?
//
//   - One source of truth for values: always standard units, converted once on ingestion
//   - Sparse stays sparse: sorted (index, value) pairs, no stored zeros, merge-based ops
//   - Deterministic: parallel fan-out never changes an element-wise result
//   - Observable: zap debug events and optional Prometheus counters
//
// Quick example:
//
//	km, _ := scale.NewLinear(1000)
//	v, _ := vectordata.Instantiate([]float64{1.5, 0, 2}, km, vectordata.StorageSparse)
//	fmt.Println(v) // Sparse(size=3){0: 1500, 2: 2000}
//
// Runnable scenarios live in examples/.
//
//	go get github.com/averbraeck/djunits-sub012/vectordata
package djunits

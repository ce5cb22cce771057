// SPDX-License-Identifier: MIT

// Package vectordata - instantiation from external input shapes.
//
// Purpose:
//   - Convert raw slices, nullable lists, scalar slices, index→value maps and
//     existing storage into Dense or Sparse storage.
//   - Apply the display→standard unit Scale exactly once per value on ingestion.
//
// Policy:
//   - Fail fast: every argument and every element is validated before the
//     result is allocated (ErrNilArgument, ErrInvalidSize, ErrOutOfRange,
//     ErrUnknownStorage).
//   - Sparse results keep only converted values that are non-zero.
//   - Scalars already carry standard-unit values (SI()) and bypass the Scale.

package vectordata

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/averbraeck/djunits-sub012/scale"
)

// Ingestion shapes used in log events.
const (
	shapeSlice     = "slice"
	shapeList      = "list"
	shapeScalars   = "scalars"
	shapeMap       = "map"
	shapeScalarMap = "scalar_map"
	shapeStorage   = "storage"
)

// converter returns the per-value ingestion function for s.
func converter[T Element](s scale.Scale) func(T) T {
	if s.IsIdentity() {
		return func(v T) T { return v }
	}

	return func(v T) T { return T(s.ToStandardUnit(float64(v))) }
}

// logIngest records one factory call on the resolved options.
func logIngest[T Element](o *Options, shape string, v VectorData[T]) {
	o.metrics.observeOp(opInstantiate, v.StorageType())
	o.logger.Debug("vector data instantiated",
		zap.String("shape", shape),
		zap.Stringer("storage", v.StorageType()),
		zap.Int("size", v.Size()),
		zap.Int("cardinality", v.Cardinality()),
	)
}

// Instantiate builds storage from a raw slice of display-unit values.
// MAIN DESCRIPTION:
//   - Every entry is converted with s.ToStandardUnit; the caller's slice is never aliased.
//
// Implementation:
//   - Stage 1: validate values, s and st.
//   - Stage 2 (Dense): convert into a fresh buffer through the fan-out.
//   - Stage 2 (Sparse): convert sequentially, keeping non-zero results only.
//
// Errors:
//   - ErrNilArgument (nil values/scale, StorageUnknown), ErrUnknownStorage.
//
// Complexity:
//   - Time O(n); Space O(n) dense, O(nnz) sparse.
func Instantiate[T Element](values []T, s scale.Scale, st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "Instantiate"
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateScale(tag, s); err != nil {
		return nil, err
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	v := instantiate(values, converter[T](s), st, o)
	logIngest(o, shapeSlice, v)

	return v, nil
}

// instantiate is the validated core shared by the slice-based factories.
func instantiate[T Element](values []T, conv func(T) T, st StorageType, o *Options) VectorData[T] {
	if st == StorageDense {
		buf := make([]T, len(values))
		o.forChunks(len(values), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				buf[i] = conv(values[i])
			}
		})
		return newDenseOwned(buf, o)
	}

	b := newSparseBuffer[T](len(values))
	for i, v := range values {
		b.push(i, conv(v))
	}
	idx, val := b.finish()

	return newSparseOwned(idx, val, len(values), o)
}

// InstantiateList builds storage from a list of optional display-unit values.
// Semantics equal Instantiate; a nil element fails with ErrNilArgument.
// Complexity: O(n).
func InstantiateList[T Element](values []*T, s scale.Scale, st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "InstantiateList"
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateScale(tag, s); err != nil {
		return nil, err
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	raw := make([]T, len(values))
	for i, p := range values {
		if p == nil {
			return nil, fmt.Errorf("%s: element %d: %w", tag, i, ErrNilArgument)
		}
		raw[i] = *p
	}
	o := resolveOptions(opts)
	v := instantiate(raw, converter[T](s), st, o)
	logIngest(o, shapeList, v)

	return v, nil
}

// InstantiateScalars builds storage from typed scalars. Each scalar already
// holds its standard-unit value, so no Scale is applied.
// Errors: ErrNilArgument (nil slice, nil element, StorageUnknown), ErrUnknownStorage.
// Complexity: O(n).
func InstantiateScalars[T Element](values []Scalar, st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "InstantiateScalars"
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	raw, err := scalarsSI[T](tag, values)
	if err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	v := instantiate(raw, converter[T](scale.Identity{}), st, o)
	logIngest(o, shapeScalars, v)

	return v, nil
}

// scalarsSI extracts SI values, rejecting nil elements.
func scalarsSI[T Element](tag string, values []Scalar) ([]T, error) {
	raw := make([]T, len(values))
	for i, sc := range values {
		if isNilArg(sc) {
			return nil, fmt.Errorf("%s: element %d: %w", tag, i, ErrNilArgument)
		}
		raw[i] = T(sc.SI())
	}

	return raw, nil
}

// InstantiateMap builds storage of the given size from an index→value map of
// display-unit values; unset indices hold a display-unit zero.
// MAIN DESCRIPTION:
//   - The display-unit zero of an offset scale is not a standard-unit zero,
//     so implicit slots may become stored values.
//
// Implementation:
//   - Stage 1: validate map, scale, storage, size >= 0 and every key in [0,size).
//   - Stage 2: zero := s.ToStandardUnit(0).
//   - Stage 3 (Dense): pre-fill with zero (when non-zero), overlay converted entries.
//   - Stage 4 (Sparse, zero == 0): push converted entries in key order.
//   - Stage 4 (Sparse, zero != 0): for each gap [prev+1, key) and the tail
//     [last+1, size) push filler zero values, interleaved with converted
//     entries; push drops any filler or entry that converts to exactly 0.
//
// Errors:
//   - ErrNilArgument, ErrInvalidSize, ErrOutOfRange, ErrUnknownStorage.
//
// Complexity:
//   - Dense O(size); Sparse O(k log k) when zero == 0, O(size) otherwise.
func InstantiateMap[T Element](values map[int]T, size int, s scale.Scale, st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "InstantiateMap"
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateScale(tag, s); err != nil {
		return nil, err
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	if err := validateKeys(tag, values, size); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	v := instantiateMap(values, size, converter[T](s), st, o)
	logIngest(o, shapeMap, v)

	return v, nil
}

// InstantiateScalarMap builds storage of the given size from an index→scalar
// map. Scalars carry standard-unit values; unset indices are zero.
// Errors: ErrNilArgument (also for nil elements), ErrInvalidSize, ErrOutOfRange, ErrUnknownStorage.
func InstantiateScalarMap[T Element](values map[int]Scalar, size int, st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "InstantiateScalarMap"
	if values == nil {
		return nil, validatorErrorf(tag+": values", ErrNilArgument)
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	if err := validateKeys(tag, values, size); err != nil {
		return nil, err
	}
	raw := make(map[int]T, len(values))
	for k, sc := range values {
		if isNilArg(sc) {
			return nil, fmt.Errorf("%s: key %d: %w", tag, k, ErrNilArgument)
		}
		raw[k] = T(sc.SI())
	}
	o := resolveOptions(opts)
	v := instantiateMap(raw, size, converter[T](scale.Identity{}), st, o)
	logIngest(o, shapeScalarMap, v)

	return v, nil
}

// validateKeys checks size >= 0 and every key in [0,size).
func validateKeys[V any](tag string, values map[int]V, size int) error {
	if err := validateSize(tag, size); err != nil {
		return err
	}
	for k := range values {
		if k < 0 || k >= size {
			return fmt.Errorf("%s: key %d: size %d: %w", tag, k, size, ErrOutOfRange)
		}
	}

	return nil
}

// instantiateMap is the validated core of the map factories.
func instantiateMap[T Element](values map[int]T, size int, conv func(T) T, st StorageType, o *Options) VectorData[T] {
	zero := conv(0)

	if st == StorageDense {
		buf := make([]T, size)
		if zero != 0 {
			for i := range buf {
				buf[i] = zero
			}
		}
		for k, v := range values {
			buf[k] = conv(v)
		}
		return newDenseOwned(buf, o)
	}

	keys := slices.Sorted(maps.Keys(values))
	b := newSparseBuffer[T](size)
	if zero == 0 {
		for _, k := range keys {
			b.push(k, conv(values[k]))
		}
	} else {
		next := 0 // first position not yet emitted
		for _, k := range keys {
			for ; next < k; next++ {
				b.push(next, zero) // filler for the gap [next, k)
			}
			b.push(k, conv(values[k]))
			next = k + 1
		}
		for ; next < size; next++ {
			b.push(next, zero) // trailing filler [last+1, size)
		}
	}
	idx, val := b.finish()

	return newSparseOwned(idx, val, size, o)
}

// InstantiateFrom re-encodes existing storage as st. The result never
// aliases v and is mutable; it inherits v's options unless opts are given.
// Errors: ErrNilArgument, ErrUnknownStorage.
// Complexity: O(size) or O(nnz).
func InstantiateFrom[T Element](v VectorData[T], st StorageType, opts ...Option) (VectorData[T], error) {
	const tag = "InstantiateFrom"
	if err := validateOperand(tag, v); err != nil {
		return nil, err
	}
	if err := validateStorage(tag, st); err != nil {
		return nil, err
	}
	o := v.options()
	if len(opts) > 0 {
		o = gatherOptions(opts...)
	}

	var out VectorData[T]
	if st == StorageDense {
		d := v.ToDense()
		d.opts = o
		out = d
	} else {
		s := v.ToSparse()
		s.opts = o
		out = s
	}
	logIngest(o, shapeStorage, out)

	return out, nil
}

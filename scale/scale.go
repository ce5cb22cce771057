// SPDX-License-Identifier: MIT

// Package scale - conversions between a display unit and the standard unit.
//
// Purpose:
//   - Define the Scale contract consumed by vectordata ingestion.
//   - Provide the concrete scales needed by the unit layer: identity, linear,
//     offset-linear (e.g. °C → K) and arbitrary function pairs (e.g. decibels).
//
// Policy:
//   - Constructors validate their parameters and return sentinel errors;
//     conversions themselves never fail and follow IEEE-754 arithmetic.
package scale

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidFactor is returned when a conversion factor is zero, NaN or ±Inf.
	ErrInvalidFactor = errors.New("scale: invalid conversion factor")

	// ErrInvalidOffset is returned when an offset is NaN or ±Inf.
	ErrInvalidOffset = errors.New("scale: invalid conversion offset")

	// ErrNilFunc is returned when a function scale is built from a nil conversion.
	ErrNilFunc = errors.New("scale: nil conversion function")
)

// Scale converts a value expressed in a display unit to and from the
// standard (SI) unit.
type Scale interface {
	// ToStandardUnit converts a display-unit value into the standard unit.
	ToStandardUnit(v float64) float64

	// FromStandardUnit converts a standard-unit value into the display unit.
	FromStandardUnit(v float64) float64

	// IsIdentity reports whether both conversions return their input unchanged.
	IsIdentity() bool
}

// Compile-time conformance.
var (
	_ Scale = Identity{}
	_ Scale = Linear{}
	_ Scale = OffsetLinear{}
	_ Scale = Func{}
)

// Identity is the scale of a standard unit: both directions are no-ops.
type Identity struct{}

// ToStandardUnit returns v.
func (Identity) ToStandardUnit(v float64) float64 { return v }

// FromStandardUnit returns v.
func (Identity) FromStandardUnit(v float64) float64 { return v }

// IsIdentity is always true.
func (Identity) IsIdentity() bool { return true }

// Linear multiplies by a constant factor: si = v * factor.
type Linear struct {
	factor float64 // non-zero, finite
}

// NewLinear builds a Linear scale.
// Returns ErrInvalidFactor when factor is zero, NaN or ±Inf.
func NewLinear(factor float64) (Linear, error) {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Linear{}, fmt.Errorf("NewLinear(%g): %w", factor, ErrInvalidFactor)
	}

	return Linear{factor: factor}, nil
}

// Factor returns the conversion factor to the standard unit.
func (s Linear) Factor() float64 { return s.factor }

// ToStandardUnit returns v * factor.
func (s Linear) ToStandardUnit(v float64) float64 { return v * s.factor }

// FromStandardUnit returns v / factor.
func (s Linear) FromStandardUnit(v float64) float64 { return v / s.factor }

// IsIdentity reports factor == 1.
func (s Linear) IsIdentity() bool { return s.factor == 1 }

// OffsetLinear shifts then multiplies: si = (v + offset) * factor.
// The zero of the display unit does not map onto the zero of the standard
// unit unless offset == 0 (e.g. °C with factor 1, offset 273.15).
type OffsetLinear struct {
	factor float64 // non-zero, finite
	offset float64 // finite
}

// NewOffsetLinear builds an OffsetLinear scale.
// Returns ErrInvalidFactor or ErrInvalidOffset for non-finite/degenerate parameters.
func NewOffsetLinear(factor, offset float64) (OffsetLinear, error) {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return OffsetLinear{}, fmt.Errorf("NewOffsetLinear(%g,%g): %w", factor, offset, ErrInvalidFactor)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return OffsetLinear{}, fmt.Errorf("NewOffsetLinear(%g,%g): %w", factor, offset, ErrInvalidOffset)
	}

	return OffsetLinear{factor: factor, offset: offset}, nil
}

// ToStandardUnit returns (v + offset) * factor.
func (s OffsetLinear) ToStandardUnit(v float64) float64 { return (v + s.offset) * s.factor }

// FromStandardUnit returns v / factor - offset.
func (s OffsetLinear) FromStandardUnit(v float64) float64 { return v/s.factor - s.offset }

// IsIdentity reports factor == 1 && offset == 0.
func (s OffsetLinear) IsIdentity() bool { return s.factor == 1 && s.offset == 0 }

// Func is a non-linear scale defined by a pair of conversion functions.
// Build it with NewFunc; the zero value Func{} behaves as the identity.
type Func struct {
	to   func(float64) float64
	from func(float64) float64
}

// NewFunc builds a Func scale from the two directions of the conversion.
// Returns ErrNilFunc when either function is nil.
func NewFunc(to, from func(float64) float64) (Func, error) {
	if to == nil || from == nil {
		return Func{}, fmt.Errorf("NewFunc: %w", ErrNilFunc)
	}

	return Func{to: to, from: from}, nil
}

// ToStandardUnit applies the forward conversion.
func (s Func) ToStandardUnit(v float64) float64 {
	if s.to == nil {
		return v
	}

	return s.to(v)
}

// FromStandardUnit applies the inverse conversion.
func (s Func) FromStandardUnit(v float64) float64 {
	if s.from == nil {
		return v
	}

	return s.from(v)
}

// IsIdentity is true only for the zero value; a function scale built by
// NewFunc is never assumed to be the identity.
func (s Func) IsIdentity() bool { return s.to == nil && s.from == nil }

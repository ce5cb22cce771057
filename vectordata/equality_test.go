// SPDX-License-Identifier: MIT

package vectordata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averbraeck/djunits-sub012/vectordata"
)

func TestEquals_AcrossEncodings(t *testing.T) {
	t.Parallel()
	vals := []float64{0, 1.25, 0, -7, 0, 0}
	d := mustVector(t, vectordata.StorageDense, vals...)
	s := mustVector(t, vectordata.StorageSparse, vals...)

	require.True(t, d.Equals(s))
	require.True(t, s.Equals(d))
	require.Equal(t, d.Hash(), s.Hash())
	require.True(t, d.Equals(d))
}

func TestEquals_Differences(t *testing.T) {
	t.Parallel()
	base := mustVector(t, vectordata.StorageSparse, 0.0, 1.0, 2.0)

	for _, st := range storages {
		changed := mustVector(t, st, 0.0, 1.0, 3.0)
		require.False(t, base.Equals(changed))
		require.NotEqual(t, base.Hash(), changed.Hash())

		longer := mustVector(t, st, 0.0, 1.0, 2.0, 0.0)
		require.False(t, base.Equals(longer), "size is part of the identity")
		require.NotEqual(t, base.Hash(), longer.Hash())

		moved := mustVector(t, st, 1.0, 0.0, 2.0)
		require.False(t, base.Equals(moved))
	}
}

func TestEquals_SignedZeroAndNaN(t *testing.T) {
	t.Parallel()
	negZero := math.Copysign(0, -1)

	for _, st := range storages {
		a := mustVector(t, st, negZero, 1.0)
		b := mustVector(t, vectordata.StorageDense, 0.0, 1.0)
		require.True(t, a.Equals(b), "-0 equals +0")
		require.Equal(t, a.Hash(), b.Hash())

		// Two different NaN payloads are the same logical value.
		n1 := math.NaN()
		n2 := math.Float64frombits(0x7FF8000000000ABC)
		x := mustVector(t, st, n1, 2.0)
		y := mustVector(t, vectordata.StorageSparse, n2, 2.0)
		require.True(t, x.Equals(y))
		require.Equal(t, x.Hash(), y.Hash())
	}
}

func TestHash_Float32MatchesWidenedFloat64(t *testing.T) {
	t.Parallel()
	a := mustVector(t, vectordata.StorageSparse, float32(0.5), 0, float32(-3))
	b := mustVector(t, vectordata.StorageDense, 0.5, 0, -3.0)
	require.Equal(t, a.Hash(), b.Hash())
}

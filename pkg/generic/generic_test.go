// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package generic

import (
	"math"
	"testing"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestCopySwapRev(t *testing.T) {
	x := []int16{1, 2, 3}
	y := make([]int16, 3)
	require.NoError(t, Copy(3, x, 1, y, -1))
	assert.Equal(t, []int16{3, 2, 1}, y)

	require.NoError(t, Swap(3, x, 1, y, 1))
	assert.Equal(t, []int16{3, 2, 1}, x)
	assert.Equal(t, []int16{1, 2, 3}, y)

	require.NoError(t, Rev(3, x, 1))
	assert.Equal(t, []int16{1, 2, 3}, x)

	// Boxed values.
	boxed := []any{"a", 1, nil, 2.5}
	out := make([]any, 4)
	require.NoError(t, Copy(4, boxed, 1, out, 1))
	assert.Equal(t, boxed, out)
	require.NoError(t, RevNDArray(2, out, 2, 0))
	assert.Equal(t, []any{nil, 1, "a", 2.5}, out)

	// Half precision.
	halves := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2)}
	require.NoError(t, Rev(2, halves, 1))
	assert.Equal(t, float32(2), halves[0].Float32())
}

func TestTypeErrors(t *testing.T) {
	// Mismatched element kinds.
	err := Copy(2, []float64{1, 2}, 1, []float32{0, 0}, 1)
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	assert.Contains(t, err.Error(), "generic.Copy")

	// Unsupported element kinds.
	err = Copy(1, []string{"x"}, 1, []string{""}, 1)
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	_, err = Sum(1, []complex128{1}, 1)
	assert.True(t, strided.IsArgumentError(err))
	_, err = Mean(1, []float16.Float16{float16.Fromfloat32(1)}, 1)
	assert.True(t, strided.IsArgumentError(err))
	_, err = Dot(0, nil, 1, nil, 1)
	assert.Error(t, err)

	// Go's int has no element kind: it is neither reported as supported nor dispatched.
	ints := []int{1, 2, 3}
	assert.False(t, Supports("sum", dtypes.FromAny(ints)))
	_, err = Sum(3, ints, 1)
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	assert.Contains(t, err.Error(), "[]int")
	assert.Contains(t, err.Error(), "generic.Sum")
	assert.NotPanics(t, func() { _ = Fill(3, 1, ints, 1) })

	// Out of bounds views.
	y := []int32{7, 7}
	err = Axpy(3, 1, []int32{1, 2, 3}, 1, y, 1)
	assert.True(t, strided.IsArgumentError(err))
	assert.Equal(t, []int32{7, 7}, y)

	// Non-numeric alpha.
	err = Fill(2, "one", []float64{0, 0}, 1)
	assert.True(t, strided.IsArgumentError(err))
}

func TestFillScalAxpy(t *testing.T) {
	x := make([]uint8, 4)
	require.NoError(t, Fill(2, 7, x, 2))
	assert.Equal(t, []uint8{7, 0, 7, 0}, x)

	f := make([]float32, 3)
	require.NoError(t, Fill(3, 0.5, f, 1))
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, f)

	b := make([]bfloat16.BFloat16, 2)
	require.NoError(t, Fill(2, float32(1.5), b, 1))
	assert.Equal(t, float32(1.5), b[1].Float32())

	boxed := make([]any, 3)
	require.NoError(t, FillNDArray(2, "z", boxed, 1, 1))
	assert.Equal(t, []any{nil, "z", "z"}, boxed)

	ints := []int64{1, -3, 5}
	require.NoError(t, Scal(3, 2.5, ints, 1))
	assert.Equal(t, []int64{2, -7, 12}, ints)

	floats := []float64{1, 2, 3}
	require.NoError(t, Scal(3, -2, floats, -1))
	assert.Equal(t, []float64{-2, -4, -6}, floats)

	h := []float16.Float16{float16.Fromfloat32(3)}
	require.NoError(t, Scal(1, 0.5, h, 1))
	assert.Equal(t, float32(1.5), h[0].Float32())

	y := []int32{10, 20, 30}
	require.NoError(t, Axpy(3, 2, []int32{1, 2, 3}, 1, y, 1))
	assert.Equal(t, []int32{12, 24, 36}, y)

	yf := []float64{1, 1}
	require.NoError(t, Axpy(2, 0.5, []float64{2, 4}, -1, yf, 1))
	assert.Equal(t, []float64{3, 2}, yf)
}

func TestReductions(t *testing.T) {
	ints := []int32{3, -1, 4, -1, 5}
	assert.Equal(t, 10.0, must.M1(Sum(5, ints, 1)))
	assert.Equal(t, 5.0, must.M1(Max(5, ints, 1)))
	assert.Equal(t, -1.0, must.M1(Min(5, ints, 1)))
	assert.Equal(t, 5.0, must.M1(NanMax(5, ints, 1)))
	assert.Equal(t, 2.0, must.M1(Mean(5, ints, 1)))
	assert.Equal(t, 4.0, must.M1(Max(2, ints, -2))) // x[2], x[0]
	assert.InDelta(t, 8.0, must.M1(Variance(5, 1, ints, 1)), 1e-12)

	u := []uint64{1, 2, 3}
	assert.Equal(t, 14.0, must.M1(Dot(3, u, 1, u, 1)))

	f := []float64{1, math.NaN(), 3}
	assert.True(t, math.IsNaN(must.M1(Max(3, f, 1))))
	assert.Equal(t, 3.0, must.M1(NanMax(3, f, 1)))
	assert.Equal(t, 1.0, must.M1(NanMin(3, f, 1)))
	assert.Equal(t, 2.0, must.M1(Mean(2, []float32{1, 3}, 1)))
	assert.Equal(t, 6.0, must.M1(Dot(2, []float32{1, 2}, 1, []float32{2, 2}, 1)))

	halves := []bfloat16.BFloat16{bfloat16.FromFloat32(1), bfloat16.FromFloat32(-2), bfloat16.FromFloat32(4)}
	assert.Equal(t, 3.0, must.M1(Sum(3, halves, 1)))
	assert.Equal(t, 4.0, must.M1(Max(3, halves, 1)))
	assert.Equal(t, -2.0, must.M1(MinNDArray(2, halves, 1, 0)))

	// Neutral results.
	assert.Equal(t, 0.0, must.M1(Sum(0, ints, 1)))
	assert.True(t, math.IsNaN(must.M1(Max(0, ints, 1))))
	assert.Equal(t, 0.0, must.M1(Dot(-1, u, 1, u, 1)))
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports("copy", dtypes.Generic))
	assert.True(t, Supports("sum", dtypes.Float16))
	assert.False(t, Supports("mean", dtypes.Float16))
	assert.True(t, Supports("variance", dtypes.Uint16))
	assert.False(t, Supports("dot", dtypes.Complex64))
	assert.False(t, Supports("unknown", dtypes.Float64))
}

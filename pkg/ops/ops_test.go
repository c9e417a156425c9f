// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"math"
	"testing"

	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestBinary(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{10, 20, 30, 40}
	z := make([]float64, 4)
	assert.Equal(t, []float64{11, 22, 33, 44}, Add(4, x, 1, y, 1, z, 1))
	assert.Equal(t, []float64{-9, -18, -27, -36}, Sub(4, x, 1, y, 1, z, 1))
	assert.Equal(t, []float64{10, 40, 90, 160}, Mul(4, x, 1, y, 1, z, 1))
	assert.Equal(t, []float64{0.1, 0.1, 0.1, 0.1}, Div(4, x, 1, y, 1, z, 1))

	// y reversed: z[i] = x[i] + y[3-i].
	assert.Equal(t, []float64{41, 32, 23, 14}, Add(4, x, 1, y, -1, z, 1))

	// Integers, every other element, in place.
	ints := []int32{1, 100, 2, 100, 3}
	AddNDArray(3, ints, 2, 0, []int32{5}, 0, 0, ints, 2, 0)
	assert.Equal(t, []int32{6, 100, 7, 100, 8}, ints)

	// Complex numbers.
	c := Mul(1, []complex128{1i}, 1, []complex128{1i}, 1, make([]complex128, 1), 1)
	assert.Equal(t, complex128(-1), c[0])

	// Map2 across types.
	labels := Map2(2, []string{"a", "b"}, 1, []int{1, 2}, 1, make([]string, 2), 1,
		func(s string, i int) string { return s + string(rune('0'+i)) })
	assert.Equal(t, []string{"a1", "b2"}, labels)

	// Division by zero is IEEE 754.
	assert.True(t, math.IsInf(Div(1, []float64{1}, 1, []float64{0}, 1, z, 1)[0], 1))

	// Invalid views panic before writing.
	z = []float64{7, 7, 7, 7}
	require.Panics(t, func() { Add(4, x, 1, y, 2, z, 1) })
	assert.Equal(t, []float64{7, 7, 7, 7}, z)
}

func TestUnary(t *testing.T) {
	x := []float64{-2.5, -0.5, 0, 1.5, 4}
	y := make([]float64, len(x))
	n := len(x)
	assert.Equal(t, []float64{2.5, 0.5, 0, 1.5, 4}, Abs(n, x, 1, y, 1))
	assert.Equal(t, []float64{6.25, 0.25, 0, 2.25, 16}, Abs2(n, x, 1, y, 1))
	assert.Equal(t, []float64{-2, -0, 0, 2, 4}, Ceil(n, x, 1, y, 1))
	assert.Equal(t, []float64{-3, -1, 0, 1, 4}, Floor(n, x, 1, y, 1))
	assert.Equal(t, []float64{-2, -0, 0, 1, 4}, Trunc(n, x, 1, y, 1))
	assert.Equal(t, []float64{-3, -1, 0, 2, 4}, Round(n, x, 1, y, 1))
	assert.Equal(t, []float64{0, 0, 0, 1.5, 4}, Ramp(n, x, 1, y, 1))
	assert.Equal(t, []float64{2.5, 0.5, -0, -1.5, -4}, Neg(n, x, 1, y, 1))
	assert.Equal(t, []float64{-0.4, -2, math.Inf(1), 1 / 1.5, 0.25}, Inv(n, x, 1, y, 1))
	assert.InDeltaSlice(t, []float64{3, 2}, Cbrt(2, []float64{27, 8}, 1, y[:2], 1), 1e-15)

	sq := Sqrt(n, x, 1, y, 1)
	assert.True(t, math.IsNaN(sq[0]))
	assert.Equal(t, 2.0, sq[4])

	assert.InDelta(t, math.Pi, Deg2Rad(1, []float64{180}, 1, y, 1)[0], 1e-15)

	// Ramp propagates NaN.
	assert.True(t, math.IsNaN(Ramp(1, []float64{math.NaN()}, 1, y, 1)[0]))

	// In place with a negative stride: the logical order doesn't matter for element-wise maps.
	inPlace := []float32{-1, 2, -3}
	Abs(3, inPlace, -1, inPlace, -1)
	assert.Equal(t, []float32{1, 2, 3}, inPlace)

	// NDArray form over a sub-view.
	buf := []float64{9, -1, 9, -2, 9}
	AbsNDArray(2, buf, 2, 1, buf, 2, 1)
	assert.Equal(t, []float64{9, 1, 9, 2, 9}, buf)

	assert.Equal(t, []int8{3, 0, 4}, AbsInt(3, []int8{-3, 0, 4}, 1, make([]int8, 3), 1))
	assert.Equal(t, []int64{math.MaxInt64}, AbsInt(1, []int64{-math.MaxInt64}, 1, make([]int64, 1), 1))

	// n <= 0 touches nothing.
	out := []float64{42}
	Sqrt(0, x, 1, out, 1)
	assert.Equal(t, []float64{42}, out)
}

func TestMasked(t *testing.T) {
	x := []float64{-4, 9, -16, 25}
	mask := []uint8{0, 1, 0, 0}
	y := []float64{-1, -1, -1, -1}
	assert.Equal(t, []float64{4, -1, 16, 25}, MskAbs(4, x, 1, mask, 1, y, 1))

	y = []float64{-1, -1, -1, -1}
	sq := MskSqrt(4, x, 1, mask, 1, y, 1)
	assert.True(t, math.IsNaN(sq[0]))
	assert.Equal(t, -1.0, sq[1])
	assert.True(t, math.IsNaN(sq[2]))
	assert.Equal(t, 5.0, sq[3])

	y = []float64{-1, -1, -1, -1}
	assert.Equal(t, []float64{0, -1, 0, 25}, MskRamp(4, x, 1, mask, 1, y, 1))

	y = []float64{-1, -1}
	assert.Equal(t, []float64{-1, 3}, MskCeil(2, []float64{0.5, 2.5}, 1, []uint8{1, 0}, 1, y, 1))

	// Reversed mask.
	y = []float64{-1, -1, -1, -1}
	MskMap(4, x, 1, []uint8{0, 0, 1, 1}, -1, y, 1, func(v float64) float64 { return 2 * v })
	assert.Equal(t, []float64{-1, -1, -32, 50}, y)

	require.Panics(t, func() { MskAbs(4, x, 1, mask[:2], 1, y, 1) })
}

func TestMapBy(t *testing.T) {
	x := []float64{-4, 9, -16, 25}
	evens := func(v float64, i int) (float64, bool) { return v, i%2 == 0 }
	y := []float64{-1, -1, -1, -1}
	assert.Equal(t, []float64{4, -1, 16, -1}, AbsBy(4, x, 1, y, 1, evens))

	y = []float64{-1, -1, -1, -1}
	assert.Equal(t, []float64{-1, 3, -1, 5}, SqrtBy(4, x, 1, y, 1, func(v float64, i int) (float64, bool) {
		return v, v > 0
	}))

	// Indices are logical: with a negative stride, i=0 is the last element of the buffer.
	idx := make([]int, 4)
	MapBy(4, x, -1, idx, 1, func(v float64, i int) (int, bool) { return int(v) * 10, i == 0 })
	assert.Equal(t, []int{250, 0, 0, 0}, idx)

	// Structs through an accessor.
	type point struct{ X, Y float64 }
	points := []point{{3, 4}, {6, 8}}
	norms := MapBy(2, points, 1, make([]float64, 2), 1, func(p point, _ int) (float64, bool) {
		return math.Hypot(p.X, p.Y), true
	})
	assert.Equal(t, []float64{5, 10}, norms)
}

func TestConvert(t *testing.T) {
	x := []float32{1, 0.5, -2, 65504, 1e6}
	h := Float32ToFloat16(len(x), x, 1, make([]float16.Float16, len(x)), 1)
	back := Float16ToFloat32(len(h), h, 1, make([]float32, len(h)), 1)
	assert.Equal(t, []float32{1, 0.5, -2, 65504}, back[:4])
	assert.True(t, math.IsInf(float64(back[4]), 1))

	b := Float32ToBFloat16(3, x, 1, make([]bfloat16.BFloat16, 3), 1)
	assert.Equal(t, []float32{1, 0.5, -2}, BFloat16ToFloat32(3, b, 1, make([]float32, 3), 1))

	wide := Float32ToFloat64(3, x, -1, make([]float64, 3), 1)
	assert.Equal(t, []float64{-2, 0.5, 1}, wide)
	assert.Equal(t, []float32{float32(1) / 3}, Float64ToFloat32(1, []float64{1.0 / 3}, 1, make([]float32, 1), 1))
}

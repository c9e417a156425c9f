// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

import (
	"math"
	"testing"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(5, 1))
	assert.Equal(t, 0, Offset(5, 3))
	assert.Equal(t, 0, Offset(5, 0))
	assert.Equal(t, 4, Offset(5, -1))
	assert.Equal(t, 8, Offset(5, -2))
	assert.Equal(t, 0, Offset(0, -2))
	assert.Equal(t, 10, StartIndex(5, -2, 2))
	assert.Equal(t, 2, StartIndex(5, 2, 2))

	assert.Equal(t, 8, LastIndex(5, 2, 0))
	assert.Equal(t, 0, LastIndex(5, -2, 8))
	lo, hi := MinMaxIndex(5, -2, 8)
	assert.Equal(t, []int{0, 8}, []int{lo, hi})
	assert.Equal(t, 9, BufferLength(5, -2))
	assert.Equal(t, 1, BufferLength(5, 0))
	assert.Equal(t, 0, BufferLength(0, 3))
}

func TestCheckVector(t *testing.T) {
	require.NotPanics(t, func() { CheckVector("op", "x", 3, 5, 2, 0) })
	require.NotPanics(t, func() { CheckVector("op", "x", 3, 5, -2, 4) })
	require.NotPanics(t, func() { CheckVector("op", "x", 0, 0, 7, 100) })

	err := Catch(func() { CheckVector("dcopy", "x", 3, 5, 2, 1) })
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))
	assert.Contains(t, err.Error(), "dcopy")
	assert.Contains(t, err.Error(), `"x"`)

	err = Catch(func() { CheckVector("dcopy", "y", 3, 5, -2, 3) })
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))

	err = Catch(func() { CheckMatrix("dgemv", "A", 2, 3, 5, 3, 1, 0) })
	require.Error(t, err)
	require.NoError(t, Catch(func() { CheckMatrix("dgemv", "A", 2, 3, 6, 3, 1, 0) }))
	require.NoError(t, Catch(func() { CheckMatrix("dgemv", "A", 2, 3, 6, -3, 1, 3) }))

	assert.True(t, IsArgumentError(Catch(func() { CheckNonNegative("op", "n", -1) })))
	assert.True(t, IsArgumentError(Catch(func() { CheckNonZero("op", "inck", 0) })))
	assert.False(t, IsArgumentError(nil))
}

func TestView(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := NewView(data, 3, -2)
	assert.Equal(t, 4, v.Offset)
	assert.Equal(t, []float64{5, 3, 1}, v.ToSlice(3))
	assert.Equal(t, []float64{1, 3, 5}, v.Reverse(3).ToSlice(3))
	v.Set(1, 30)
	assert.Equal(t, 30.0, data[2])
	assert.Equal(t, 2, v.Index(1))

	w := NewViewNDArray(data, 1, 1)
	assert.Equal(t, []float64{2, 30, 4}, w.ToSlice(3))
	assert.Empty(t, w.ToSlice(0))
	require.Panics(t, func() { w.ToSlice(6) })
}

func TestSameBufferAndOverlaps(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	assert.True(t, SameBuffer(data, data))
	assert.True(t, SameBuffer(data[:2], data))
	assert.False(t, SameBuffer(data[1:], data))
	assert.False(t, SameBuffer(append([]float64(nil), data...), data))
	assert.True(t, SameBuffer([]float64{}, nil))
	assert.False(t, SameBuffer(nil, data))

	assert.True(t, Overlaps(data, data))
	assert.True(t, Overlaps(data[4:], data[:5]))
	assert.True(t, Overlaps(data[:5], data[4:]))
	assert.False(t, Overlaps(data[:3], data[3:]))
	assert.False(t, Overlaps(NewView(data, 3, 2).ToSlice(3), data))
	assert.False(t, Overlaps(nil, data))
}

// naiveUnary is the reference per-element loop.
func naiveUnary(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int, fn func(float64) float64) {
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		y[iy] = fn(x[ix])
		ix += strideX
		iy += strideY
	}
}

func TestUnaryUnrolledMatchesNaive(t *testing.T) {
	fn := func(v float64) float64 { return v*1.1 + 0.3 }
	for n := 0; n < 35; n++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i) * 0.7
		}
		got := make([]float64, n)
		want := make([]float64, n)
		UnaryNDArray(n, x, 1, 0, got, 1, 0, fn)
		naiveUnary(n, x, 1, 0, want, 1, 0, fn)
		require.Equalf(t, want, got, "n=%d", n)
	}
}

func TestUnaryStrides(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, 3)
	neg := func(v float64) float64 { return -v }

	// Negative input stride reads backwards.
	Unary(3, x, -2, y, 1, neg)
	assert.Equal(t, []float64{-5, -3, -1}, y)

	// Zero output stride: the cell ends with the last value.
	y = []float64{0, 0, 0}
	Unary(3, x, 1, y, 0, neg)
	assert.Equal(t, []float64{-3, 0, 0}, y)

	// n <= 0 leaves the output untouched and never looks at the buffers.
	y = []float64{7, 8, 9}
	out := Unary(-1, nil, 1, y, 1, neg)
	assert.Equal(t, []float64{7, 8, 9}, out)
	assert.Same(t, &y[0], &out[0])

	// Invalid views fail before any write.
	y = []float64{7, 8, 9}
	err := Catch(func() { Unary(3, x, 1, y, 2, neg) })
	require.Error(t, err)
	assert.Equal(t, []float64{7, 8, 9}, y)
}

func TestNullaryAndInPlace(t *testing.T) {
	x := make([]int, 11)
	counter := 0
	Nullary(11, x, 1, func() int { counter++; return counter })
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, x)

	InPlace(11, x, 1, func(v int) int { return v * 2 })
	assert.Equal(t, 22, x[10])

	y := []int{1, 2, 3}
	InPlace(4, y, 0, func(v int) int { return v + 1 })
	assert.Equal(t, []int{5, 2, 3}, y)

	z := []int{0, 0, 0, 0, 0}
	counter = 0
	Nullary(3, z, -2, func() int { counter++; return counter })
	assert.Equal(t, []int{3, 0, 2, 0, 1}, z)
}

func TestBinaryAndTernary(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float32{9, 8, 7, 6, 5, 4, 3, 2, 1}
	z := make([]float32, 9)
	Binary(9, x, 1, y, 1, z, 1, func(a, b float32) float32 { return a - b })
	assert.Equal(t, []float32{-8, -6, -4, -2, 0, 2, 4, 6, 8}, z)

	z = make([]float32, 3)
	BinaryNDArray(3, x, 3, 0, y, -3, 8, z, 1, 0, func(a, b float32) float32 { return a * b })
	assert.Equal(t, []float32{1 * 1, 4 * 4, 7 * 7}, z)

	out := make([]float64, 2)
	Ternary(2, x, 1, y, 1, z, 1, out, -1, func(a, b, c float32) float64 { return float64(a + b + c) })
	assert.Equal(t, []float64{2 + 8 + 16, 1 + 9 + 1}, out)
}

func TestMaskedAndBy(t *testing.T) {
	x := []float64{1, 4, 9, 16}
	mask := []uint8{0, 1, 0, 1}
	y := []float64{-1, -1, -1, -1}
	MaskedUnary(4, x, 1, mask, 1, y, 1, math.Sqrt)
	assert.Equal(t, []float64{1, -1, 3, -1}, y)

	y = []float64{-1, -1, -1, -1}
	UnaryBy(4, x, 1, y, 1, func(v float64, i int) (float64, bool) {
		return v + float64(i), i%2 == 1
	})
	assert.Equal(t, []float64{-1, 5, -1, 19}, y)
}

func TestFold(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sum := func(acc, v int) int { return acc + v }
	assert.Equal(t, 55, Fold(10, x, 1, 0, sum))
	assert.Equal(t, 25, Fold(5, x, 2, 0, sum))
	assert.Equal(t, 30, FoldNDArray(5, x, 2, 1, 0, sum))
	assert.Equal(t, 4, Fold(4, x, 0, 0, sum))
	assert.Equal(t, -1, Fold(0, x, 1, -1, sum))

	// Order matters for non-commutative folds: negative strides visit the buffer backwards.
	digits := func(acc, v int) int { return acc*10 + v }
	assert.Equal(t, 123, Fold(3, x, 1, 0, digits))
	assert.Equal(t, 321, Fold(3, x, -1, 0, digits))
}

func TestUnary2D(t *testing.T) {
	// 2x3 row-major.
	a := []float64{1, 2, 3, 4, 5, 6}
	b := make([]float64, 6)
	Unary2D(2, 3, a, 3, b, 3, func(v float64) float64 { return v * 10 })
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60}, b)

	// Transposed output: b is column-major 2x3.
	b = make([]float64, 6)
	Unary2DNDArray(2, 3, a, 3, 1, 0, b, 1, 2, 0, func(v float64) float64 { return v })
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, b)

	assert.False(t, LoopOrder(4, 4, 4, 1, 4, 1))
	assert.True(t, LoopOrder(4, 4, 1, 4, 4, 1))
	assert.True(t, LoopOrder(4, 1, 1, 1, 1, 1))
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher("sum")
	d.Register(dtypes.Float64, func(params ...any) any {
		var s float64
		for _, v := range params[0].([]float64) {
			s += v
		}
		return s
	})
	d.RegisterIfNotSet(dtypes.Float64, func(params ...any) any { return 0.0 })
	assert.True(t, d.Supports(dtypes.Float64))
	assert.False(t, d.Supports(dtypes.Int8))
	assert.Equal(t, []dtypes.DType{dtypes.Float64}, d.DTypes())
	assert.Equal(t, 6.0, d.Dispatch(dtypes.Float64, []float64{1, 2, 3}))

	_, err := d.TryDispatch(dtypes.Int8, []int8{1})
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))
	require.Panics(t, func() { d.Register(dtypes.DType(100), nil) })
	require.Panics(t, func() { d.Register(dtypes.InvalidDType, nil) })
	assert.False(t, d.Supports(dtypes.InvalidDType))
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// The element-wise functions. Their float64 math is exact for float32 inputs except where the
// function itself rounds (Sqrt, Cbrt, Deg2Rad), in which case the result is correctly rounded.

func absFn[T dtypes.GoFloat](v T) T   { return T(math.Abs(float64(v))) }
func abs2Fn[T dtypes.GoFloat](v T) T  { return v * v }
func negFn[T dtypes.GoFloat](v T) T   { return -v }
func ceilFn[T dtypes.GoFloat](v T) T  { return T(math.Ceil(float64(v))) }
func floorFn[T dtypes.GoFloat](v T) T { return T(math.Floor(float64(v))) }
func truncFn[T dtypes.GoFloat](v T) T { return T(math.Trunc(float64(v))) }
func sqrtFn[T dtypes.GoFloat](v T) T  { return T(math.Sqrt(float64(v))) }
func cbrtFn[T dtypes.GoFloat](v T) T  { return T(math.Cbrt(float64(v))) }
func invFn[T dtypes.GoFloat](v T) T   { return 1 / v }

// roundFn rounds half away from zero.
func roundFn[T dtypes.GoFloat](v T) T { return T(math.Round(float64(v))) }

// rampFn is max(v, 0). NaN propagates.
func rampFn[T dtypes.GoFloat](v T) T {
	if v > 0 || v != v {
		return v
	}
	return 0
}

func deg2radFn[T dtypes.GoFloat](v T) T { return T(float64(v) * (math.Pi / 180)) }

func absIntFn[T dtypes.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// MapNDArray sets y[i] = fn(x[i]) and returns y.
func MapNDArray[T, U any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int, fn func(T) U) []U {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, fn)
}

// Map sets y[i] = fn(x[i]) and returns y.
func Map[T, U any](n int, x []T, strideX int, y []U, strideY int, fn func(T) U) []U {
	return strided.Unary(n, x, strideX, y, strideY, fn)
}

// AbsNDArray sets y[i] = |x[i]| and returns y.
func AbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, absFn[T])
}

// Abs sets y[i] = |x[i]| and returns y.
func Abs[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, absFn[T])
}

// Abs2NDArray sets y[i] = x[i]² and returns y.
func Abs2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, abs2Fn[T])
}

// Abs2 sets y[i] = x[i]² and returns y.
func Abs2[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, abs2Fn[T])
}

func NegNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, negFn[T])
}

// Neg sets y[i] = -x[i] and returns y.
func Neg[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, negFn[T])
}

func CeilNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, ceilFn[T])
}

// Ceil rounds each element toward +Inf.
func Ceil[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, ceilFn[T])
}

func FloorNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, floorFn[T])
}

// Floor rounds each element toward -Inf.
func Floor[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, floorFn[T])
}

func TruncNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, truncFn[T])
}

// Trunc rounds each element toward zero.
func Trunc[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, truncFn[T])
}

func RoundNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, roundFn[T])
}

// Round rounds each element to the nearest integer, half away from zero.
func Round[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, roundFn[T])
}

func SqrtNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, sqrtFn[T])
}

// Sqrt sets y[i] = √x[i]. Negative inputs give NaN.
func Sqrt[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, sqrtFn[T])
}

func CbrtNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, cbrtFn[T])
}

// Cbrt sets y[i] to the cube root of x[i].
func Cbrt[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, cbrtFn[T])
}

func InvNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, invFn[T])
}

// Inv sets y[i] = 1/x[i].
func Inv[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, invFn[T])
}

func RampNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, rampFn[T])
}

// Ramp sets y[i] = max(x[i], 0).
func Ramp[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, rampFn[T])
}

func Deg2RadNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, deg2radFn[T])
}

// Deg2Rad converts each element from degrees to radians.
func Deg2Rad[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, deg2radFn[T])
}

// AbsIntNDArray sets y[i] = |x[i]| for signed integers. The absolute value of the most negative integer
// wraps around to itself.
func AbsIntNDArray[T dtypes.Signed](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, absIntFn[T])
}

// AbsInt sets y[i] = |x[i]| for signed integers.
func AbsInt[T dtypes.Signed](n int, x []T, strideX int, y []T, strideY int) []T {
	return strided.Unary(n, x, strideX, y, strideY, absIntFn[T])
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Masked maps only write the elements whose mask value is 0: y[i] is left untouched where mask[i] != 0.

// MskMapNDArray sets y[i] = fn(x[i]) where mask[i] == 0, and returns y.
func MskMapNDArray[T, U any](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []U, strideY, offsetY int, fn func(T) U) []U {
	return strided.MaskedUnaryNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask, y, strideY, offsetY, fn)
}

// MskMap sets y[i] = fn(x[i]) where mask[i] == 0, and returns y.
func MskMap[T, U any](n int, x []T, strideX int, mask []uint8, strideMask int, y []U, strideY int, fn func(T) U) []U {
	return strided.MaskedUnary(n, x, strideX, mask, strideMask, y, strideY, fn)
}

func MskAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []T, strideY, offsetY int) []T {
	return strided.MaskedUnaryNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask, y, strideY, offsetY, absFn[T])
}

// MskAbs sets y[i] = |x[i]| where mask[i] == 0.
func MskAbs[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int, y []T, strideY int) []T {
	return strided.MaskedUnary(n, x, strideX, mask, strideMask, y, strideY, absFn[T])
}

func MskSqrtNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []T, strideY, offsetY int) []T {
	return strided.MaskedUnaryNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask, y, strideY, offsetY, sqrtFn[T])
}

// MskSqrt sets y[i] = √x[i] where mask[i] == 0.
func MskSqrt[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int, y []T, strideY int) []T {
	return strided.MaskedUnary(n, x, strideX, mask, strideMask, y, strideY, sqrtFn[T])
}

func MskRampNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []T, strideY, offsetY int) []T {
	return strided.MaskedUnaryNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask, y, strideY, offsetY, rampFn[T])
}

// MskRamp sets y[i] = max(x[i], 0) where mask[i] == 0.
func MskRamp[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int, y []T, strideY int) []T {
	return strided.MaskedUnary(n, x, strideX, mask, strideMask, y, strideY, rampFn[T])
}

func MskCeilNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []T, strideY, offsetY int) []T {
	return strided.MaskedUnaryNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask, y, strideY, offsetY, ceilFn[T])
}

// MskCeil rounds x[i] toward +Inf where mask[i] == 0.
func MskCeil[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int, y []T, strideY int) []T {
	return strided.MaskedUnary(n, x, strideX, mask, strideMask, y, strideY, ceilFn[T])
}

// Callback maps: fn receives the element and its logical index; when it returns false y[i] is left untouched.

// MapByNDArray sets y[i] to the value returned by fn(x[i], i) when it returns true, and returns y.
func MapByNDArray[T, U any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryByNDArray(n, x, strideX, offsetX, y, strideY, offsetY, fn)
}

// MapBy sets y[i] to the value returned by fn(x[i], i) when it returns true, and returns y.
func MapBy[T, U any](n int, x []T, strideX int, y []U, strideY int, fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryBy(n, x, strideX, y, strideY, fn)
}

// composeBy applies op to the values accessed by fn.
func composeBy[T any, U dtypes.GoFloat](fn func(v T, i int) (U, bool), op func(U) U) func(T, int) (U, bool) {
	return func(v T, i int) (U, bool) {
		u, ok := fn(v, i)
		if !ok {
			return u, false
		}
		return op(u), true
	}
}

// AbsByNDArray sets y[i] = |fn(x[i], i)| for the elements accessed by fn.
func AbsByNDArray[T any, U dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryByNDArray(n, x, strideX, offsetX, y, strideY, offsetY, composeBy(fn, absFn[U]))
}

// AbsBy sets y[i] = |fn(x[i], i)| for the elements accessed by fn.
func AbsBy[T any, U dtypes.GoFloat](n int, x []T, strideX int, y []U, strideY int, fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryBy(n, x, strideX, y, strideY, composeBy(fn, absFn[U]))
}

// SqrtByNDArray sets y[i] = √fn(x[i], i) for the elements accessed by fn.
func SqrtByNDArray[T any, U dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryByNDArray(n, x, strideX, offsetX, y, strideY, offsetY, composeBy(fn, sqrtFn[U]))
}

// SqrtBy sets y[i] = √fn(x[i], i) for the elements accessed by fn.
func SqrtBy[T any, U dtypes.GoFloat](n int, x []T, strideX int, y []U, strideY int, fn func(v T, i int) (U, bool)) []U {
	return strided.UnaryBy(n, x, strideX, y, strideY, composeBy(fn, sqrtFn[U]))
}

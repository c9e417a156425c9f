// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ops implements strided element-wise math: binary arithmetic, unary float maps (in their plain,
// masked and callback forms) and precision conversion copies.
//
// All kernels are built on the generic loops of package strided, so contiguous views take the unrolled path.
// The output view may alias an input view with the same stride and offset (in-place update).
package ops

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Map2NDArray sets z[i] = fn(x[i], y[i]) and returns z.
func Map2NDArray[T, U, V any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	z []V, strideZ, offsetZ int, fn func(T, U) V) []V {
	return strided.BinaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, z, strideZ, offsetZ, fn)
}

// Map2 sets z[i] = fn(x[i], y[i]) and returns z.
func Map2[T, U, V any](n int, x []T, strideX int, y []U, strideY int, z []V, strideZ int, fn func(T, U) V) []V {
	return strided.Binary(n, x, strideX, y, strideY, z, strideZ, fn)
}

func add[T dtypes.Number](a, b T) T  { return a + b }
func sub[T dtypes.Number](a, b T) T  { return a - b }
func mul[T dtypes.Number](a, b T) T  { return a * b }
func div[T dtypes.GoFloat](a, b T) T { return a / b }

// AddNDArray sets z[i] = x[i] + y[i] and returns z.
func AddNDArray[T dtypes.Number](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, z []T, strideZ, offsetZ int) []T {
	return strided.BinaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, z, strideZ, offsetZ, add[T])
}

// Add sets z[i] = x[i] + y[i] and returns z.
func Add[T dtypes.Number](n int, x []T, strideX int, y []T, strideY int, z []T, strideZ int) []T {
	return strided.Binary(n, x, strideX, y, strideY, z, strideZ, add[T])
}

// SubNDArray sets z[i] = x[i] - y[i] and returns z.
func SubNDArray[T dtypes.Number](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, z []T, strideZ, offsetZ int) []T {
	return strided.BinaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, z, strideZ, offsetZ, sub[T])
}

// Sub sets z[i] = x[i] - y[i] and returns z.
func Sub[T dtypes.Number](n int, x []T, strideX int, y []T, strideY int, z []T, strideZ int) []T {
	return strided.Binary(n, x, strideX, y, strideY, z, strideZ, sub[T])
}

// MulNDArray sets z[i] = x[i] * y[i] and returns z.
func MulNDArray[T dtypes.Number](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, z []T, strideZ, offsetZ int) []T {
	return strided.BinaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, z, strideZ, offsetZ, mul[T])
}

// Mul sets z[i] = x[i] * y[i] and returns z.
func Mul[T dtypes.Number](n int, x []T, strideX int, y []T, strideY int, z []T, strideZ int) []T {
	return strided.Binary(n, x, strideX, y, strideY, z, strideZ, mul[T])
}

// DivNDArray sets z[i] = x[i] / y[i] and returns z. Division by zero follows IEEE 754.
func DivNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, z []T, strideZ, offsetZ int) []T {
	return strided.BinaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, z, strideZ, offsetZ, div[T])
}

// Div sets z[i] = x[i] / y[i] and returns z.
func Div[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int, z []T, strideZ int) []T {
	return strided.Binary(n, x, strideX, y, strideY, z, strideZ, div[T])
}

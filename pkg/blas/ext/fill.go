// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ext implements the extended BLAS kernels over strided buffers: fill, reverse, add-constant,
// compensated and pairwise sums, cumulative sums, and in-place sorting.
//
// Like package blas, every kernel Foo has a convention form and a FooNDArray form with explicit offsets,
// and invalid arguments panic with a *strided.ArgumentError before any buffer is touched.
package ext

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

const (
	unrollFill = 8
	unrollApx  = 5
)

// FillNDArray sets every element of x to alpha and returns x.
func FillNDArray[T dtypes.Number](n int, alpha T, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	strided.CheckVector("fill", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % unrollFill
		for i := 0; i < m; i++ {
			x[ix+i] = alpha
		}
		for i := m; i < n; i += unrollFill {
			xs := x[ix+i : ix+i+unrollFill]
			xs[0] = alpha
			xs[1] = alpha
			xs[2] = alpha
			xs[3] = alpha
			xs[4] = alpha
			xs[5] = alpha
			xs[6] = alpha
			xs[7] = alpha
		}
		return x
	}
	for i := 0; i < n; i++ {
		x[ix] = alpha
		ix += strideX
	}
	return x
}

// Fill sets every element of x to alpha and returns x.
func Fill[T dtypes.Number](n int, alpha T, x []T, strideX int) []T {
	return FillNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// FillByNDArray sets the logical element i of x to fn(i) and returns x.
func FillByNDArray[T any](n int, x []T, strideX, offsetX int, fn func(i int) T) []T {
	i := 0
	return strided.NullaryNDArray(n, x, strideX, offsetX, func() T {
		v := fn(i)
		i++
		return v
	})
}

// FillBy sets the logical element i of x to fn(i) and returns x.
func FillBy[T any](n int, x []T, strideX int, fn func(i int) T) []T {
	return FillByNDArray(n, x, strideX, strided.Offset(n, strideX), fn)
}

// RevNDArray reverses x in place and returns x.
func RevNDArray[T any](n int, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	strided.CheckVector("rev", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	iy := strided.LastIndex(n, strideX, offsetX)
	for i := 0; i < n/2; i++ {
		x[ix], x[iy] = x[iy], x[ix]
		ix += strideX
		iy -= strideX
	}
	return x
}

// Rev reverses x in place and returns x.
func Rev[T any](n int, x []T, strideX int) []T {
	return RevNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// ApxNDArray adds alpha to every element of x and returns x.
func ApxNDArray[T dtypes.Number](n int, alpha T, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	strided.CheckVector("apx", "x", n, len(x), strideX, offsetX)
	if alpha == 0 {
		return x
	}
	ix := offsetX
	if strideX == 1 {
		m := n % unrollApx
		for i := 0; i < m; i++ {
			x[ix+i] += alpha
		}
		for i := m; i < n; i += unrollApx {
			xs := x[ix+i : ix+i+unrollApx]
			xs[0] += alpha
			xs[1] += alpha
			xs[2] += alpha
			xs[3] += alpha
			xs[4] += alpha
		}
		return x
	}
	for i := 0; i < n; i++ {
		x[ix] += alpha
		ix += strideX
	}
	return x
}

// Apx adds alpha to every element of x and returns x.
func Apx[T dtypes.Number](n int, alpha T, x []T, strideX int) []T {
	return ApxNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

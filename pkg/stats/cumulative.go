// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// cumulative writes in y[i] the running max (or min if useMin) of x[0..i]. Once a NaN is seen, the
// remaining outputs are NaN.
func cumulative[T dtypes.GoFloat](op string, useMin, useAbs bool, n int, x []T, strideX, offsetX int,
	y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	strided.CheckVector(op, "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	var m T
	for i := 0; i < n; i++ {
		v := x[ix]
		if useAbs {
			v = abs(v)
		}
		switch {
		case i == 0 || isNaN(v):
			m = v
		case isNaN(m):
		case useMin && less(v, m):
			m = v
		case !useMin && greater(v, m):
			m = v
		}
		y[iy] = m
		ix += strideX
		iy += strideY
	}
	return y
}

// CuMaxNDArray writes the cumulative maximum of x into y, and returns y.
func CuMaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return cumulative("cumax", false, false, n, x, strideX, offsetX, y, strideY, offsetY)
}

// CuMax writes the cumulative maximum of x into y, and returns y.
func CuMax[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return CuMaxNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// CuMinNDArray writes the cumulative minimum of x into y, and returns y.
func CuMinNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return cumulative("cumin", true, false, n, x, strideX, offsetX, y, strideY, offsetY)
}

// CuMin writes the cumulative minimum of x into y, and returns y.
func CuMin[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return CuMinNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// CuMaxAbsNDArray writes the cumulative maximum absolute value of x into y, and returns y.
func CuMaxAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return cumulative("cumaxabs", false, true, n, x, strideX, offsetX, y, strideY, offsetY)
}

// CuMaxAbs writes the cumulative maximum absolute value of x into y, and returns y.
func CuMaxAbs[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return CuMaxAbsNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// CuMinAbsNDArray writes the cumulative minimum absolute value of x into y, and returns y.
func CuMinAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return cumulative("cuminabs", true, true, n, x, strideX, offsetX, y, strideY, offsetY)
}

// CuMinAbs writes the cumulative minimum absolute value of x into y, and returns y.
func CuMinAbs[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return CuMinAbsNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

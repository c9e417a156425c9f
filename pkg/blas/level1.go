// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package blas implements the BLAS level 1 and level 2 routines over strided buffers.
//
// The kernels are generic over the float kinds: `Scal[float64]` is the classic dscal, `Scal[float32]` is sscal.
// Complex kernels take interleaved (real, imaginary) buffers of the float kind, with strides and offsets
// counted in complex elements.
//
// Every kernel Foo has a convention form, which derives the starting index of each vector from the sign
// of its stride, and a FooNDArray form that takes the offsets explicitly. See package strided for the
// conventions.
//
// Invalid arguments (views out of bounds, invalid enums) panic with a *strided.ArgumentError before any
// buffer is modified. Use strided.Catch to convert them to errors.
package blas

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Unroll factors of the contiguous fast paths.
const (
	unrollScal = 5
	unrollCopy = 8
	unrollSwap = 3
	unrollAxpy = 4
	unrollDot  = 5
	unrollAsum = 6
)

func abs[T dtypes.GoFloat](v T) T {
	return T(math.Abs(float64(v)))
}

// ScalNDArray multiplies x by alpha in place and returns x.
func ScalNDArray[T dtypes.GoFloat](n int, alpha T, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	strided.CheckVector("scal", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % unrollScal
		for i := 0; i < m; i++ {
			x[ix+i] *= alpha
		}
		for i := m; i < n; i += unrollScal {
			xs := x[ix+i : ix+i+unrollScal]
			xs[0] *= alpha
			xs[1] *= alpha
			xs[2] *= alpha
			xs[3] *= alpha
			xs[4] *= alpha
		}
		return x
	}
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += strideX
	}
	return x
}

// Scal multiplies x by alpha in place and returns x.
func Scal[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) []T {
	return ScalNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// CopyNDArray copies x into y and returns y.
func CopyNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector("copy", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("copy", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % unrollCopy
		for i := 0; i < m; i++ {
			y[iy+i] = x[ix+i]
		}
		for i := m; i < n; i += unrollCopy {
			copy(y[iy+i:iy+i+unrollCopy], x[ix+i:ix+i+unrollCopy])
		}
		return y
	}
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += strideX
		iy += strideY
	}
	return y
}

// Copy copies x into y and returns y.
func Copy[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return CopyNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// SwapNDArray interchanges x and y. It returns y.
func SwapNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector("swap", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("swap", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % unrollSwap
		for i := 0; i < m; i++ {
			x[ix+i], y[iy+i] = y[iy+i], x[ix+i]
		}
		for i := m; i < n; i += unrollSwap {
			xs := x[ix+i : ix+i+unrollSwap]
			ys := y[iy+i : iy+i+unrollSwap]
			xs[0], ys[0] = ys[0], xs[0]
			xs[1], ys[1] = ys[1], xs[1]
			xs[2], ys[2] = ys[2], xs[2]
		}
		return y
	}
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += strideX
		iy += strideY
	}
	return y
}

// Swap interchanges x and y. It returns y.
func Swap[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return SwapNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// AxpyNDArray computes y += alpha*x and returns y.
func AxpyNDArray[T dtypes.GoFloat](n int, alpha T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector("axpy", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("axpy", "y", n, len(y), strideY, offsetY)
	if alpha == 0 {
		return y
	}
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % unrollAxpy
		for i := 0; i < m; i++ {
			y[iy+i] += alpha * x[ix+i]
		}
		for i := m; i < n; i += unrollAxpy {
			xs := x[ix+i : ix+i+unrollAxpy]
			ys := y[iy+i : iy+i+unrollAxpy]
			ys[0] += alpha * xs[0]
			ys[1] += alpha * xs[1]
			ys[2] += alpha * xs[2]
			ys[3] += alpha * xs[3]
		}
		return y
	}
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += strideX
		iy += strideY
	}
	return y
}

// Axpy computes y += alpha*x and returns y.
func Axpy[T dtypes.GoFloat](n int, alpha T, x []T, strideX int, y []T, strideY int) []T {
	return AxpyNDArray(n, alpha, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// DotNDArray returns the dot product of x and y, accumulated in T. It returns 0 for n <= 0.
func DotNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) T {
	var dot T
	if n <= 0 {
		return dot
	}
	strided.CheckVector("dot", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("dot", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % unrollDot
		for i := 0; i < m; i++ {
			dot += x[ix+i] * y[iy+i]
		}
		for i := m; i < n; i += unrollDot {
			xs := x[ix+i : ix+i+unrollDot]
			ys := y[iy+i : iy+i+unrollDot]
			dot += xs[0] * ys[0]
			dot += xs[1] * ys[1]
			dot += xs[2] * ys[2]
			dot += xs[3] * ys[3]
			dot += xs[4] * ys[4]
		}
		return dot
	}
	for i := 0; i < n; i++ {
		dot += x[ix] * y[iy]
		ix += strideX
		iy += strideY
	}
	return dot
}

// Dot returns the dot product of x and y. It returns 0 for n <= 0.
func Dot[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) T {
	return DotNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// AsumNDArray returns the sum of the absolute values of x. It returns 0 for n <= 0.
func AsumNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	var sum T
	if n <= 0 {
		return sum
	}
	strided.CheckVector("asum", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % unrollAsum
		for i := 0; i < m; i++ {
			sum += abs(x[ix+i])
		}
		for i := m; i < n; i += unrollAsum {
			xs := x[ix+i : ix+i+unrollAsum]
			sum += abs(xs[0])
			sum += abs(xs[1])
			sum += abs(xs[2])
			sum += abs(xs[3])
			sum += abs(xs[4])
			sum += abs(xs[5])
		}
		return sum
	}
	for i := 0; i < n; i++ {
		sum += abs(x[ix])
		ix += strideX
	}
	return sum
}

// Asum returns the sum of the absolute values of x. It returns 0 for n <= 0.
func Asum[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return AsumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// Nrm2NDArray returns the Euclidean norm of x, computed with a running scale so that it doesn't overflow
// or underflow for large or tiny values. It returns 0 for n <= 0.
func Nrm2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return 0
	}
	strided.CheckVector("nrm2", "x", n, len(x), strideX, offsetX)
	if n == 1 {
		return abs(x[offsetX])
	}
	scale, ssq := nrm2Accumulate[T](n, x, strideX, offsetX, 0, 1)
	return scale * T(math.Sqrt(float64(ssq)))
}

// nrm2Accumulate updates the (scale, ssq) pair, where the sum of squares is scale^2 * ssq, with the
// n values of x.
func nrm2Accumulate[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, scale, ssq T) (T, T) {
	ix := offsetX
	for i := 0; i < n; i++ {
		if v := x[ix]; v != 0 {
			a := abs(v)
			if scale < a {
				r := scale / a
				ssq = 1 + ssq*r*r
				scale = a
			} else {
				r := a / scale
				ssq += r * r
			}
		}
		ix += strideX
	}
	return scale, ssq
}

// Nrm2 returns the Euclidean norm of x. It returns 0 for n <= 0.
func Nrm2[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return Nrm2NDArray(n, x, strideX, strided.Offset(n, strideX))
}

// IamaxNDArray returns the logical index of the first element of x with the largest absolute value.
// It returns -1 for n < 1.
func IamaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) int {
	if n < 1 {
		return -1
	}
	strided.CheckVector("iamax", "x", n, len(x), strideX, offsetX)
	if n == 1 || strideX == 0 {
		return 0
	}
	idx := 0
	maxAbs := abs(x[offsetX])
	ix := offsetX + strideX
	for i := 1; i < n; i++ {
		if a := abs(x[ix]); a > maxAbs {
			idx = i
			maxAbs = a
		}
		ix += strideX
	}
	return idx
}

// Iamax returns the logical index of the first element of x with the largest absolute value.
// It returns -1 for n < 1.
func Iamax[T dtypes.GoFloat](n int, x []T, strideX int) int {
	return IamaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// DSDotNDArray returns the dot product of two float32 vectors, accumulated in float64.
func DSDotNDArray(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) float64 {
	var dot float64
	if n <= 0 {
		return dot
	}
	strided.CheckVector("dsdot", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("dsdot", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % unrollDot
		for i := 0; i < m; i++ {
			dot += float64(x[ix+i]) * float64(y[iy+i])
		}
		for i := m; i < n; i += unrollDot {
			xs := x[ix+i : ix+i+unrollDot]
			ys := y[iy+i : iy+i+unrollDot]
			dot += float64(xs[0]) * float64(ys[0])
			dot += float64(xs[1]) * float64(ys[1])
			dot += float64(xs[2]) * float64(ys[2])
			dot += float64(xs[3]) * float64(ys[3])
			dot += float64(xs[4]) * float64(ys[4])
		}
		return dot
	}
	for i := 0; i < n; i++ {
		dot += float64(x[ix]) * float64(y[iy])
		ix += strideX
		iy += strideY
	}
	return dot
}

// DSDot returns the dot product of two float32 vectors, accumulated in float64.
func DSDot(n int, x []float32, strideX int, y []float32, strideY int) float64 {
	return DSDotNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// SDSDotNDArray returns sb plus the dot product of two float32 vectors, accumulated in float64 and
// rounded to float32 at the end. For n <= 0 it returns sb.
func SDSDotNDArray(n int, sb float32, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) float32 {
	return float32(float64(sb) + DSDotNDArray(n, x, strideX, offsetX, y, strideY, offsetY))
}

// SDSDot returns sb plus the dot product of two float32 vectors, accumulated in float64.
func SDSDot(n int, sb float32, x []float32, strideX int, y []float32, strideY int) float32 {
	return SDSDotNDArray(n, sb, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// This file holds the level 1 kernels over interleaved complex buffers: element i of a complex vector
// occupies ElementsPerValue consecutive buffer cells (real part first) starting at cell
// ElementsPerValue*(offset + i*stride), so strides and offsets count complex elements.
// ComplexFoo[float64] is the classic zfoo over dtypes.Complex128, ComplexFoo[float32] is cfoo over
// dtypes.Complex64.

// complexKind returns the complex DType whose parts are stored as T.
func complexKind[T dtypes.GoFloat]() dtypes.DType {
	var zero T
	if dtypes.Complex64.RealDType() == dtypes.FromAny(zero) {
		return dtypes.Complex64
	}
	return dtypes.Complex128
}

// complexView validates the complex vector (n, x, stride, offset) and returns the buffer index of the
// real part of its first element and the buffer step between elements.
func complexView[T dtypes.GoFloat](op, arg string, n int, x []T, stride, offset int) (start, step int) {
	parts := complexKind[T]().ElementsPerValue()
	strided.CheckVector(op, arg, n, len(x)/parts, stride, offset)
	return parts * offset, parts * stride
}

// ComplexScalNDArray multiplies the complex vector x by alpha in place and returns x.
func ComplexScalNDArray[T dtypes.GoFloat](n int, alpha complex128, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	ix, sx := complexView("complex-scal", "x", n, x, strideX, offsetX)
	ar, ai := T(real(alpha)), T(imag(alpha))
	for i := 0; i < n; i++ {
		re, im := x[ix], x[ix+1]
		x[ix] = ar*re - ai*im
		x[ix+1] = ar*im + ai*re
		ix += sx
	}
	return x
}

// ComplexScal multiplies the complex vector x by alpha in place and returns x.
func ComplexScal[T dtypes.GoFloat](n int, alpha complex128, x []T, strideX int) []T {
	return ComplexScalNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// ComplexRealScalNDArray multiplies the complex vector x by the real alpha in place and returns x.
func ComplexRealScalNDArray[T dtypes.GoFloat](n int, alpha T, x []T, strideX, offsetX int) []T {
	if n <= 0 {
		return x
	}
	ix, sx := complexView("complex-real-scal", "x", n, x, strideX, offsetX)
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		x[ix+1] *= alpha
		ix += sx
	}
	return x
}

// ComplexRealScal multiplies the complex vector x by the real alpha in place and returns x.
func ComplexRealScal[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) []T {
	return ComplexRealScalNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// ComplexCopyNDArray copies the complex vector x into y and returns y.
func ComplexCopyNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	ix, sx := complexView("complex-copy", "x", n, x, strideX, offsetX)
	iy, sy := complexView("complex-copy", "y", n, y, strideY, offsetY)
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		y[iy+1] = x[ix+1]
		ix += sx
		iy += sy
	}
	return y
}

// ComplexCopy copies the complex vector x into y and returns y.
func ComplexCopy[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return ComplexCopyNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// ComplexSwapNDArray interchanges the complex vectors x and y and returns y.
func ComplexSwapNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	ix, sx := complexView("complex-swap", "x", n, x, strideX, offsetX)
	iy, sy := complexView("complex-swap", "y", n, y, strideY, offsetY)
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		x[ix+1], y[iy+1] = y[iy+1], x[ix+1]
		ix += sx
		iy += sy
	}
	return y
}

// ComplexSwap interchanges the complex vectors x and y and returns y.
func ComplexSwap[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) []T {
	return ComplexSwapNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// ComplexAxpyNDArray computes y += alpha*x over complex vectors and returns y.
func ComplexAxpyNDArray[T dtypes.GoFloat](n int, alpha complex128, x []T, strideX, offsetX int,
	y []T, strideY, offsetY int) []T {
	if n <= 0 {
		return y
	}
	ix, sx := complexView("complex-axpy", "x", n, x, strideX, offsetX)
	iy, sy := complexView("complex-axpy", "y", n, y, strideY, offsetY)
	if alpha == 0 {
		return y
	}
	ar, ai := T(real(alpha)), T(imag(alpha))
	for i := 0; i < n; i++ {
		re, im := x[ix], x[ix+1]
		y[iy] += ar*re - ai*im
		y[iy+1] += ar*im + ai*re
		ix += sx
		iy += sy
	}
	return y
}

// ComplexAxpy computes y += alpha*x over complex vectors and returns y.
func ComplexAxpy[T dtypes.GoFloat](n int, alpha complex128, x []T, strideX int, y []T, strideY int) []T {
	return ComplexAxpyNDArray(n, alpha, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func complexDot[T dtypes.GoFloat](op string, conjugate bool, n int, x []T, strideX, offsetX int,
	y []T, strideY, offsetY int) complex128 {
	if n <= 0 {
		return 0
	}
	ix, sx := complexView(op, "x", n, x, strideX, offsetX)
	iy, sy := complexView(op, "y", n, y, strideY, offsetY)
	var re, im T
	for i := 0; i < n; i++ {
		xr, xi := x[ix], x[ix+1]
		if conjugate {
			xi = -xi
		}
		yr, yi := y[iy], y[iy+1]
		re += xr*yr - xi*yi
		im += xr*yi + xi*yr
		ix += sx
		iy += sy
	}
	return complex(float64(re), float64(im))
}

// ComplexDotuNDArray returns the unconjugated dot product sum(x[i]*y[i]) of two complex vectors.
func ComplexDotuNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) complex128 {
	return complexDot("complex-dotu", false, n, x, strideX, offsetX, y, strideY, offsetY)
}

// ComplexDotu returns the unconjugated dot product sum(x[i]*y[i]) of two complex vectors.
func ComplexDotu[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) complex128 {
	return ComplexDotuNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// ComplexDotcNDArray returns the conjugated dot product sum(conj(x[i])*y[i]) of two complex vectors.
func ComplexDotcNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) complex128 {
	return complexDot("complex-dotc", true, n, x, strideX, offsetX, y, strideY, offsetY)
}

// ComplexDotc returns the conjugated dot product sum(conj(x[i])*y[i]) of two complex vectors.
func ComplexDotc[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int) complex128 {
	return ComplexDotcNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// ComplexAsumNDArray returns the sum of |re| + |im| over the complex vector x.
func ComplexAsumNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	var sum T
	if n <= 0 {
		return sum
	}
	ix, sx := complexView("complex-asum", "x", n, x, strideX, offsetX)
	for i := 0; i < n; i++ {
		sum += abs(x[ix]) + abs(x[ix+1])
		ix += sx
	}
	return sum
}

// ComplexAsum returns the sum of |re| + |im| over the complex vector x.
func ComplexAsum[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return ComplexAsumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// ComplexNrm2NDArray returns the Euclidean norm of the complex vector x.
func ComplexNrm2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return 0
	}
	ix, sx := complexView("complex-nrm2", "x", n, x, strideX, offsetX)
	// Real and imaginary parts are two real vectors sharing the step sx.
	scale, ssq := nrm2Accumulate[T](n, x, sx, ix, 0, 1)
	scale, ssq = nrm2Accumulate[T](n, x, sx, ix+1, scale, ssq)
	return scale * T(math.Sqrt(float64(ssq)))
}

// ComplexNrm2 returns the Euclidean norm of the complex vector x.
func ComplexNrm2[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return ComplexNrm2NDArray(n, x, strideX, strided.Offset(n, strideX))
}

// ComplexIamaxNDArray returns the logical index of the first element of the complex vector x with the
// largest |re| + |im|. It returns -1 for n < 1.
func ComplexIamaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) int {
	if n < 1 {
		return -1
	}
	ix, sx := complexView("complex-iamax", "x", n, x, strideX, offsetX)
	if n == 1 || strideX == 0 {
		return 0
	}
	idx := 0
	maxAbs := abs(x[ix]) + abs(x[ix+1])
	ix += sx
	for i := 1; i < n; i++ {
		if a := abs(x[ix]) + abs(x[ix+1]); a > maxAbs {
			idx = i
			maxAbs = a
		}
		ix += sx
	}
	return idx
}

// ComplexIamax returns the logical index of the first element of the complex vector x with the
// largest |re| + |im|. It returns -1 for n < 1.
func ComplexIamax[T dtypes.GoFloat](n int, x []T, strideX int) int {
	return ComplexIamaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Level 2 kernels address a matrix A with two strides: element (i, j) is A[offsetA + i*strideA1 + j*strideA2].
// The convention forms take a Layout and a leading dimension instead, and derive the vector offsets from the
// sign of their strides.

// checkLeadingDim validates lda against the size of the dimension that must be contiguous in layout.
func checkLeadingDim(op string, layout Layout, rows, cols, lda int) {
	minLD := cols
	if layout == ColumnMajor {
		minLD = rows
	}
	if lda < max(1, minLD) {
		strided.Panicf(op, "lda", "must be at least max(1, %d) for layout %s, got %d", minLD, layout, lda)
	}
}

// scaleVector sets y = beta*y, where beta == 0 clears y (even if it holds NaNs).
func scaleVector[T dtypes.GoFloat](n int, beta T, y []T, strideY, offsetY int) {
	if beta == 1 {
		return
	}
	iy := offsetY
	for i := 0; i < n; i++ {
		if beta == 0 {
			y[iy] = 0
		} else {
			y[iy] *= beta
		}
		iy += strideY
	}
}

// GemvNDArray computes y = alpha*op(A)*x + beta*y, where A is an (m x n) matrix and op(A) is A or its
// transpose. It returns y.
func GemvNDArray[T dtypes.GoFloat](trans Transpose, m, n int, alpha T, a []T, strideA1, strideA2, offsetA int,
	x []T, strideX, offsetX int, beta T, y []T, strideY, offsetY int) []T {
	const op = "gemv"
	trans.check(op)
	strided.CheckNonNegative(op, "m", m)
	strided.CheckNonNegative(op, "n", n)
	strided.CheckNonZero(op, "strideX", strideX)
	strided.CheckNonZero(op, "strideY", strideY)
	lenX, lenY := n, m
	if trans != NoTrans {
		lenX, lenY = m, n
	}
	strided.CheckMatrix(op, "A", m, n, len(a), strideA1, strideA2, offsetA)
	strided.CheckVector(op, "x", lenX, len(x), strideX, offsetX)
	strided.CheckVector(op, "y", lenY, len(y), strideY, offsetY)
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return y
	}
	scaleVector(lenY, beta, y, strideY, offsetY)
	if alpha == 0 {
		return y
	}
	if trans == NoTrans {
		// y[i] += alpha * A[i, :] . x
		ia, iy := offsetA, offsetY
		for i := 0; i < m; i++ {
			var temp T
			ja, ix := ia, offsetX
			for j := 0; j < n; j++ {
				temp += a[ja] * x[ix]
				ja += strideA2
				ix += strideX
			}
			y[iy] += alpha * temp
			ia += strideA1
			iy += strideY
		}
		return y
	}
	// y[j] += alpha * A[:, j] . x
	ja, iy := offsetA, offsetY
	for j := 0; j < n; j++ {
		var temp T
		ia, ix := ja, offsetX
		for i := 0; i < m; i++ {
			temp += a[ia] * x[ix]
			ia += strideA1
			ix += strideX
		}
		y[iy] += alpha * temp
		ja += strideA2
		iy += strideY
	}
	return y
}

// Gemv computes y = alpha*op(A)*x + beta*y, where A is an (m x n) matrix stored in layout with leading
// dimension lda. It returns y.
func Gemv[T dtypes.GoFloat](layout Layout, trans Transpose, m, n int, alpha T, a []T, lda int,
	x []T, strideX int, beta T, y []T, strideY int) []T {
	layout.Check("gemv")
	trans.check("gemv")
	checkLeadingDim("gemv", layout, m, n, lda)
	lenX, lenY := n, m
	if trans != NoTrans {
		lenX, lenY = m, n
	}
	sa1, sa2 := layout.Strides(lda)
	return GemvNDArray(trans, m, n, alpha, a, sa1, sa2, 0, x, strideX, strided.Offset(lenX, strideX),
		beta, y, strideY, strided.Offset(lenY, strideY))
}

// GerNDArray performs the rank 1 update A += alpha * x * yᵀ, where A is an (m x n) matrix. It returns A.
func GerNDArray[T dtypes.GoFloat](m, n int, alpha T, x []T, strideX, offsetX int, y []T, strideY, offsetY int,
	a []T, strideA1, strideA2, offsetA int) []T {
	const op = "ger"
	strided.CheckNonNegative(op, "m", m)
	strided.CheckNonNegative(op, "n", n)
	strided.CheckNonZero(op, "strideX", strideX)
	strided.CheckNonZero(op, "strideY", strideY)
	strided.CheckVector(op, "x", m, len(x), strideX, offsetX)
	strided.CheckVector(op, "y", n, len(y), strideY, offsetY)
	strided.CheckMatrix(op, "A", m, n, len(a), strideA1, strideA2, offsetA)
	if m == 0 || n == 0 || alpha == 0 {
		return a
	}
	ia, ix := offsetA, offsetX
	for i := 0; i < m; i++ {
		if xv := x[ix]; xv != 0 {
			temp := alpha * xv
			ja, iy := ia, offsetY
			for j := 0; j < n; j++ {
				a[ja] += temp * y[iy]
				ja += strideA2
				iy += strideY
			}
		}
		ia += strideA1
		ix += strideX
	}
	return a
}

// Ger performs the rank 1 update A += alpha * x * yᵀ, where A is an (m x n) matrix stored in layout with
// leading dimension lda. It returns A.
func Ger[T dtypes.GoFloat](layout Layout, m, n int, alpha T, x []T, strideX int, y []T, strideY int,
	a []T, lda int) []T {
	layout.Check("ger")
	checkLeadingDim("ger", layout, m, n, lda)
	sa1, sa2 := layout.Strides(lda)
	return GerNDArray(m, n, alpha, x, strideX, strided.Offset(m, strideX), y, strideY, strided.Offset(n, strideY),
		a, sa1, sa2, 0)
}

// TrmvNDArray computes x = op(A)*x, where A is an (n x n) triangular matrix: only the triangle selected by uplo
// is referenced, and with diag == Unit its diagonal is assumed to be all ones. It returns x.
func TrmvNDArray[T dtypes.GoFloat](uplo Uplo, trans Transpose, diag Diag, n int, a []T, strideA1, strideA2, offsetA int,
	x []T, strideX, offsetX int) []T {
	const op = "trmv"
	uplo.CheckTriangle(op)
	trans.check(op)
	diag.check(op)
	strided.CheckNonNegative(op, "n", n)
	strided.CheckNonZero(op, "strideX", strideX)
	strided.CheckMatrix(op, "A", n, n, len(a), strideA1, strideA2, offsetA)
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if n == 0 {
		return x
	}
	at := func(i, j int) T { return a[offsetA+i*strideA1+j*strideA2] }
	xi := func(i int) int { return offsetX + i*strideX }
	nonUnit := diag == NonUnit

	// Each x[i] only depends on the x[j] that are still unmodified given the iteration direction.
	upperLike := (uplo == Upper) == (trans == NoTrans)
	row := func(i int) T {
		var temp T
		if nonUnit {
			temp = at(i, i) * x[xi(i)]
		} else {
			temp = x[xi(i)]
		}
		lo, hi := 0, i
		if upperLike {
			lo, hi = i+1, n
		}
		for j := lo; j < hi; j++ {
			if trans == NoTrans {
				temp += at(i, j) * x[xi(j)]
			} else {
				temp += at(j, i) * x[xi(j)]
			}
		}
		return temp
	}
	if upperLike {
		for i := 0; i < n; i++ {
			x[xi(i)] = row(i)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			x[xi(i)] = row(i)
		}
	}
	return x
}

// Trmv computes x = op(A)*x, where A is an (n x n) triangular matrix stored in layout with leading
// dimension lda. It returns x.
func Trmv[T dtypes.GoFloat](layout Layout, uplo Uplo, trans Transpose, diag Diag, n int, a []T, lda int,
	x []T, strideX int) []T {
	layout.Check("trmv")
	checkLeadingDim("trmv", layout, n, n, lda)
	sa1, sa2 := layout.Strides(lda)
	return TrmvNDArray(uplo, trans, diag, n, a, sa1, sa2, 0, x, strideX, strided.Offset(n, strideX))
}

// SymvNDArray computes y = alpha*A*x + beta*y, where A is an (n x n) symmetric matrix of which only the
// triangle selected by uplo is referenced. It returns y.
func SymvNDArray[T dtypes.GoFloat](uplo Uplo, n int, alpha T, a []T, strideA1, strideA2, offsetA int,
	x []T, strideX, offsetX int, beta T, y []T, strideY, offsetY int) []T {
	const op = "symv"
	uplo.CheckTriangle(op)
	strided.CheckNonNegative(op, "n", n)
	strided.CheckNonZero(op, "strideX", strideX)
	strided.CheckNonZero(op, "strideY", strideY)
	strided.CheckMatrix(op, "A", n, n, len(a), strideA1, strideA2, offsetA)
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	strided.CheckVector(op, "y", n, len(y), strideY, offsetY)
	if n == 0 || (alpha == 0 && beta == 1) {
		return y
	}
	scaleVector(n, beta, y, strideY, offsetY)
	if alpha == 0 {
		return y
	}
	at := func(i, j int) T {
		if (uplo == Upper) == (i > j) {
			i, j = j, i
		}
		return a[offsetA+i*strideA1+j*strideA2]
	}
	iy := offsetY
	for i := 0; i < n; i++ {
		var temp T
		ix := offsetX
		for j := 0; j < n; j++ {
			temp += at(i, j) * x[ix]
			ix += strideX
		}
		y[iy] += alpha * temp
		iy += strideY
	}
	return y
}

// Symv computes y = alpha*A*x + beta*y, where A is an (n x n) symmetric matrix stored in layout with leading
// dimension lda. It returns y.
func Symv[T dtypes.GoFloat](layout Layout, uplo Uplo, n int, alpha T, a []T, lda int,
	x []T, strideX int, beta T, y []T, strideY int) []T {
	layout.Check("symv")
	checkLeadingDim("symv", layout, n, n, lda)
	sa1, sa2 := layout.Strides(lda)
	return SymvNDArray(uplo, n, alpha, a, sa1, sa2, 0, x, strideX, strided.Offset(n, strideX),
		beta, y, strideY, strided.Offset(n, strideY))
}

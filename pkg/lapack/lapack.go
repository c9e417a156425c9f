// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package lapack implements the two-dimensional strided routines of LAPACK used to move matrix data around:
// copying (a triangle of) a matrix, applying row interchanges and transposing out of place.
//
// A matrix view is (rows, cols, buffer, stride1, stride2, offset): element (i, j) is stored in
// buffer[offset + i*stride1 + j*stride2]. The convention forms take a blas.Layout and a leading dimension
// instead, and start at index 0 of the buffer. Row and pivot indices are 0-based.
package lapack

import (
	"github.com/gomlx/strided/pkg/blas"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

func checkLeadingDim(op, arg string, layout blas.Layout, rows, cols, ld int) {
	minLD := cols
	if layout == blas.ColumnMajor {
		minLD = rows
	}
	if ld < max(1, minLD) {
		strided.Panicf(op, arg, "must be at least max(1, %d) for layout %s, got %d", minLD, layout, ld)
	}
}

func identity[T any](v T) T { return v }

// LacpyNDArray copies the (m x n) matrix A, or only its upper or lower triangle (or trapezoid), into B.
// Elements of B outside the selected part are left untouched. It returns B.
func LacpyNDArray[T dtypes.GoFloat](uplo blas.Uplo, m, n int, a []T, strideA1, strideA2, offsetA int,
	b []T, strideB1, strideB2, offsetB int) []T {
	const op = "lacpy"
	uplo.Check(op)
	strided.CheckNonNegative(op, "m", m)
	strided.CheckNonNegative(op, "n", n)
	if m == 0 || n == 0 {
		return b
	}
	strided.CheckMatrix(op, "a", m, n, len(a), strideA1, strideA2, offsetA)
	strided.CheckMatrix(op, "b", m, n, len(b), strideB1, strideB2, offsetB)
	switch uplo {
	case blas.All:
		strided.Unary2DNDArray(m, n, a, strideA1, strideA2, offsetA, b, strideB1, strideB2, offsetB, identity[T])
	case blas.Upper:
		// Column j holds rows 0..min(j, m-1).
		for j := range n {
			blas.CopyNDArray(min(j+1, m), a, strideA1, offsetA+j*strideA2, b, strideB1, offsetB+j*strideB2)
		}
	case blas.Lower:
		// Row i holds columns 0..min(i, n-1).
		for i := range m {
			blas.CopyNDArray(min(i+1, n), a, strideA2, offsetA+i*strideA1, b, strideB2, offsetB+i*strideB1)
		}
	}
	return b
}

// Lacpy copies the (m x n) matrix A, or only its upper or lower triangle, into B. Both matrices are stored
// in the given layout with leading dimensions lda and ldb.
func Lacpy[T dtypes.GoFloat](layout blas.Layout, uplo blas.Uplo, m, n int, a []T, lda int, b []T, ldb int) []T {
	const op = "lacpy"
	layout.Check(op)
	checkLeadingDim(op, "lda", layout, m, n, lda)
	checkLeadingDim(op, "ldb", layout, m, n, ldb)
	sa1, sa2 := layout.Strides(lda)
	sb1, sb2 := layout.Strides(ldb)
	return LacpyNDArray(uplo, m, n, a, sa1, sa2, 0, b, sb1, sb2, 0)
}

// LaswpNDArray performs a series of row interchanges on the matrix A, with n columns: for each row k from k1
// to k2 (inclusive) row k is swapped with row ipiv[offsetIPIV + (k-k1)*strideIPIV].
//
// The interchanges are applied in increasing order of k if inck > 0, and in decreasing order if inck < 0, which
// undoes a forward application. It returns A.
func LaswpNDArray[T dtypes.GoFloat](n int, a []T, strideA1, strideA2, offsetA int, k1, k2, inck int,
	ipiv []int, strideIPIV, offsetIPIV int) []T {
	const op = "laswp"
	strided.CheckNonNegative(op, "n", n)
	strided.CheckNonNegative(op, "k1", k1)
	strided.CheckNonZero(op, "inck", inck)
	if k2 < k1 {
		strided.Panicf(op, "k2", "must be at least k1=%d, got %d", k1, k2)
	}
	numPivots := k2 - k1 + 1
	strided.CheckVector(op, "ipiv", numPivots, len(ipiv), strideIPIV, offsetIPIV)
	rows := k2 + 1
	ip := offsetIPIV
	for range numPivots {
		p := ipiv[ip]
		if p < 0 {
			strided.Panicf(op, "ipiv", "pivots must be non-negative row indices, got %d", p)
		}
		rows = max(rows, p+1)
		ip += strideIPIV
	}
	if n == 0 {
		return a
	}
	strided.CheckMatrix(op, "a", rows, n, len(a), strideA1, strideA2, offsetA)

	k, step := k1, 1
	if inck < 0 {
		k, step = k2, -1
	}
	for range numPivots {
		p := ipiv[offsetIPIV+(k-k1)*strideIPIV]
		if p != k {
			blas.SwapNDArray(n, a, strideA2, offsetA+k*strideA1, a, strideA2, offsetA+p*strideA1)
		}
		k += step
	}
	return a
}

// Laswp performs the row interchanges k = k1..k2 on the matrix A, stored in the given layout with leading
// dimension lda and n columns. The pivot of row k is ipiv[(k-k1)*|incx|]; a negative incx applies the
// interchanges in reverse order.
func Laswp[T dtypes.GoFloat](layout blas.Layout, n int, a []T, lda int, k1, k2 int, ipiv []int, incx int) []T {
	const op = "laswp"
	layout.Check(op)
	strided.CheckNonZero(op, "incx", incx)
	if lda < 1 || (layout == blas.RowMajor && lda < n) {
		strided.Panicf(op, "lda", "invalid leading dimension %d for %d columns in layout %s", lda, n, layout)
	}
	inck, stride := 1, incx
	if incx < 0 {
		inck, stride = -1, -incx
	}
	sa1, sa2 := layout.Strides(lda)
	return LaswpNDArray(n, a, sa1, sa2, 0, k1, k2, inck, ipiv, stride, 0)
}

// GeTransNDArray writes the transpose of the (m x n) matrix A into the (n x m) matrix B. It returns B.
func GeTransNDArray[T dtypes.GoFloat](m, n int, a []T, strideA1, strideA2, offsetA int,
	b []T, strideB1, strideB2, offsetB int) []T {
	const op = "getrans"
	strided.CheckNonNegative(op, "m", m)
	strided.CheckNonNegative(op, "n", n)
	if m == 0 || n == 0 {
		return b
	}
	strided.CheckMatrix(op, "a", m, n, len(a), strideA1, strideA2, offsetA)
	strided.CheckMatrix(op, "b", n, m, len(b), strideB1, strideB2, offsetB)
	// b[j, i] = a[i, j]: b viewed with swapped strides is an (m x n) matrix.
	return strided.Unary2DNDArray(m, n, a, strideA1, strideA2, offsetA, b, strideB2, strideB1, offsetB, identity[T])
}

// GeTrans writes the transpose of the (m x n) matrix A into the (n x m) matrix B, both in the given layout.
func GeTrans[T dtypes.GoFloat](layout blas.Layout, m, n int, a []T, lda int, b []T, ldb int) []T {
	const op = "getrans"
	layout.Check(op)
	checkLeadingDim(op, "lda", layout, m, n, lda)
	checkLeadingDim(op, "ldb", layout, n, m, ldb)
	sa1, sa2 := layout.Strides(lda)
	sb1, sb2 := layout.Strides(ldb)
	return GeTransNDArray(m, n, a, sa1, sa2, 0, b, sb1, sb2, 0)
}

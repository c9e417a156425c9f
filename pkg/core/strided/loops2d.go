// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LoopOrder returns whether a two-dimensional loop over (rows x cols) views should iterate rows in the inner
// loop ("column-major" traversal), given the strides of the input view a and output view b.
//
// The inner loop runs over the dimension where the input has the smaller absolute stride, which is the one
// that walks memory contiguously. Ties are broken by the output strides, and then in favor of row-major
// traversal (inner loop over columns).
func LoopOrder(rows, cols, strideA1, strideA2, strideB1, strideB2 int) (rowsInner bool) {
	if rows <= 1 || cols <= 1 {
		return rows > 1
	}
	a1, a2 := absInt(strideA1), absInt(strideA2)
	if a1 != a2 {
		return a1 < a2
	}
	return absInt(strideB1) < absInt(strideB2)
}

// Unary2DNDArray sets b[i, j] = fn(a[i, j]) for a (rows x cols) view, where element (i, j) of a is stored at
// a[offsetA + i*strideA1 + j*strideA2] (and likewise for b). It returns b.
//
// The order in which elements are visited is chosen with LoopOrder; fn must not depend on it.
func Unary2DNDArray[T, U any](rows, cols int, a []T, strideA1, strideA2, offsetA int,
	b []U, strideB1, strideB2, offsetB int, fn func(T) U) []U {
	if rows <= 0 || cols <= 0 {
		return b
	}
	CheckMatrix("Unary2D", "a", rows, cols, len(a), strideA1, strideA2, offsetA)
	CheckMatrix("Unary2D", "b", rows, cols, len(b), strideB1, strideB2, offsetB)

	// Normalize to (outer, inner) dimensions.
	outer, inner := rows, cols
	sa0, sa1, sb0, sb1 := strideA1, strideA2, strideB1, strideB2
	if LoopOrder(rows, cols, strideA1, strideA2, strideB1, strideB2) {
		outer, inner = cols, rows
		sa0, sa1, sb0, sb1 = strideA2, strideA1, strideB2, strideB1
	}
	ia0, ib0 := offsetA, offsetB
	for range outer {
		UnaryNDArray(inner, a, sa1, ia0, b, sb1, ib0, fn)
		ia0 += sa0
		ib0 += sb0
	}
	return b
}

// Unary2D is the row-major convention form of Unary2DNDArray: a and b are row-major with leading
// dimensions lda and ldb.
func Unary2D[T, U any](rows, cols int, a []T, lda int, b []U, ldb int, fn func(T) U) []U {
	return Unary2DNDArray(rows, cols, a, lda, 1, 0, b, ldb, 1, 0, fn)
}

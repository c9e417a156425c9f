// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ext

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Cumulative sums write y[i] = sum + x[0] + ... + x[i] and return y. For n <= 0 y is returned untouched.

// CuSumByNDArray computes the cumulative sum of x, starting from sum, into y with the given algorithm.
func CuSumByNDArray[T dtypes.GoFloat](algo Algorithm, n int, sum T, x []T, strideX, offsetX int,
	y []T, strideY, offsetY int) []T {
	const op = "cusum"
	if n <= 0 {
		return y
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	strided.CheckVector(op, "y", n, len(y), strideY, offsetY)
	switch algo {
	case ORS:
		cuSumORS(n, sum, x, strideX, offsetX, y, strideY, offsetY)
	case KBN:
		cuSumKBN(n, sum, x, strideX, offsetX, y, strideY, offsetY)
	case KBN2:
		cuSumKBN2(n, sum, x, strideX, offsetX, y, strideY, offsetY)
	case PW:
		cuSumPairwise(n, sum, x, strideX, offsetX, y, strideY, offsetY)
	default:
		strided.Panicf(op, "algorithm", "unknown summation algorithm %d", int(algo))
	}
	return y
}

func cuSumORS[T dtypes.GoFloat](n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) {
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		sum += x[ix]
		y[iy] = sum
		ix += strideX
		iy += strideY
	}
}

func cuSumKBN[T dtypes.GoFloat](n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) {
	var c T
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		sum, c = kbnAdd(sum, c, x[ix])
		y[iy] = sum + c
		ix += strideX
		iy += strideY
	}
}

func cuSumKBN2[T dtypes.GoFloat](n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) {
	st := kbn2State[T]{sum: sum}
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		st.add(x[ix])
		y[iy] = st.result()
		ix += strideX
		iy += strideY
	}
}

// cuSumPairwise splits the input in halves down to blocks of PairwiseBlockSize; each block is summed on its
// own and offset by the last cumulative value of the previous block.
func cuSumPairwise[T dtypes.GoFloat](n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) {
	if n <= PairwiseBlockSize {
		var s T
		ix, iy := offsetX, offsetY
		for i := 0; i < n; i++ {
			s += x[ix]
			y[iy] = sum + s
			ix += strideX
			iy += strideY
		}
		return
	}
	half := n / 2
	cuSumPairwise(half, sum, x, strideX, offsetX, y, strideY, offsetY)
	last := offsetY + (half-1)*strideY
	cuSumPairwise(n-half, y[last], x, strideX, offsetX+half*strideX, y, strideY, last+strideY)
}

// CuSumNDArray computes the cumulative sum of x, starting from sum, into y, using the Kahan-Babuška-Neumaier
// summation. It returns y.
func CuSumNDArray[T dtypes.GoFloat](n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return CuSumByNDArray(KBN, n, sum, x, strideX, offsetX, y, strideY, offsetY)
}

// CuSum computes the cumulative sum of x, starting from sum, into y. It returns y.
func CuSum[T dtypes.GoFloat](n int, sum T, x []T, strideX int, y []T, strideY int) []T {
	return CuSumNDArray(n, sum, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func CuSumORS[T dtypes.GoFloat](n int, sum T, x []T, strideX int, y []T, strideY int) []T {
	return CuSumByNDArray(ORS, n, sum, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func CuSumKBN[T dtypes.GoFloat](n int, sum T, x []T, strideX int, y []T, strideY int) []T {
	return CuSumByNDArray(KBN, n, sum, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func CuSumKBN2[T dtypes.GoFloat](n int, sum T, x []T, strideX int, y []T, strideY int) []T {
	return CuSumByNDArray(KBN2, n, sum, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func CuSumPW[T dtypes.GoFloat](n int, sum T, x []T, strideX int, y []T, strideY int) []T {
	return CuSumByNDArray(PW, n, sum, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

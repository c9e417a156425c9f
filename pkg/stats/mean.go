// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"github.com/gomlx/strided/pkg/blas/ext"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// meanBy returns sum(x)/n with the sum accumulated by the given algorithm.
func meanBy[T dtypes.GoFloat](op string, algo ext.Algorithm, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if n == 1 || strideX == 0 {
		return x[offsetX]
	}
	return ext.SumByNDArray(algo, n, x, strideX, offsetX) / T(n)
}

// nanMeanBy returns the mean of the non-NaN elements, with the sum accumulated by the given algorithm.
func nanMeanBy[T dtypes.GoFloat](op string, algo ext.Algorithm, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if n == 1 || strideX == 0 {
		return x[offsetX]
	}
	sum, count := ext.NanNSumByNDArray(algo, n, x, strideX, offsetX)
	if count == 0 {
		return nan[T]()
	}
	return sum / T(count)
}

// meanPN is the two-pass mean: a pairwise sum first, then the mean of the residuals corrects it.
func meanPN[T dtypes.GoFloat](op string, skipNaN bool, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if n == 1 || strideX == 0 {
		return x[offsetX]
	}
	var sum T
	count := n
	if skipNaN {
		sum, count = ext.NanNSumByNDArray(ext.PW, n, x, strideX, offsetX)
		if count == 0 {
			return nan[T]()
		}
	} else {
		sum = ext.SumPWNDArray(n, x, strideX, offsetX)
	}
	mu := sum / T(count)
	var c T
	ix := offsetX
	for i := 0; i < n; i++ {
		v := x[ix]
		ix += strideX
		if skipNaN && isNaN(v) {
			continue
		}
		c += v - mu
	}
	return mu + c/T(count)
}

// meanWD is Welford's running mean.
func meanWD[T dtypes.GoFloat](op string, skipNaN bool, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if n == 1 || strideX == 0 {
		return x[offsetX]
	}
	var mu T
	count := 0
	ix := offsetX
	for i := 0; i < n; i++ {
		v := x[ix]
		ix += strideX
		if skipNaN && isNaN(v) {
			continue
		}
		count++
		mu += (v - mu) / T(count)
	}
	if count == 0 {
		return nan[T]()
	}
	return mu
}

// MeanNDArray returns the arithmetic mean of x, using the two-pass algorithm (MeanPN).
// It returns NaN for n <= 0.
func MeanNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanPN("mean", false, n, x, strideX, offsetX)
}

// Mean returns the arithmetic mean of x, using the two-pass algorithm (MeanPN).
func Mean[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanPNNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanPN("meanpn", false, n, x, strideX, offsetX)
}

// MeanPN returns the mean of x with a two-pass algorithm: a pairwise sum, corrected by the mean of the
// residuals.
func MeanPN[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanPNNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanORSNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanBy("meanors", ext.ORS, n, x, strideX, offsetX)
}

// MeanORS returns the mean of x using ordinary recursive summation.
func MeanORS[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanORSNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanPWNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanBy("meanpw", ext.PW, n, x, strideX, offsetX)
}

// MeanPW returns the mean of x using pairwise summation.
func MeanPW[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanPWNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanKBNNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanBy("meankbn", ext.KBN, n, x, strideX, offsetX)
}

// MeanKBN returns the mean of x using Kahan-Babuška-Neumaier summation.
func MeanKBN[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanKBNNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanKBN2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanBy("meankbn2", ext.KBN2, n, x, strideX, offsetX)
}

// MeanKBN2 returns the mean of x using second-order iterative Kahan-Babuška summation.
func MeanKBN2[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanKBN2NDArray(n, x, strideX, strided.Offset(n, strideX))
}

func MeanWDNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanWD("meanwd", false, n, x, strideX, offsetX)
}

// MeanWD returns the mean of x using Welford's online algorithm.
func MeanWD[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MeanWDNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMeanNDArray returns the mean of the non-NaN elements of x (NanMeanPN).
// It returns NaN if there are none.
func NanMeanNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanPN("nanmean", true, n, x, strideX, offsetX)
}

// NanMean returns the mean of the non-NaN elements of x (NanMeanPN).
func NanMean[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMeanNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanMeanPNNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanPN("nanmeanpn", true, n, x, strideX, offsetX)
}

func NanMeanPN[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMeanPNNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanMeanORSNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanMeanBy("nanmeanors", ext.ORS, n, x, strideX, offsetX)
}

func NanMeanORS[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMeanORSNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanMeanPWNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanMeanBy("nanmeanpw", ext.PW, n, x, strideX, offsetX)
}

func NanMeanPW[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMeanPWNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanMeanWDNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return meanWD("nanmeanwd", true, n, x, strideX, offsetX)
}

func NanMeanWD[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMeanWDNDArray(n, x, strideX, strided.Offset(n, strideX))
}

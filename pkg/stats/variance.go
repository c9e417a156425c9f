// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/strided/pkg/blas/ext"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// VarianceAlgorithm selects how the variance is accumulated.
type VarianceAlgorithm int

const (
	// PN is the two-pass algorithm: the mean is computed with a pairwise sum, then the sum of squared
	// deviations is corrected by the (rounding-error) sum of deviations.
	PN VarianceAlgorithm = iota

	// WD is Welford's one-pass online algorithm.
	WD

	// YC is the one-pass Youngs-Cramer algorithm.
	YC

	// TK is the one-pass textbook algorithm, sum(x²) - sum(x)²/N. It is fast but suffers from catastrophic
	// cancellation when the variance is small compared to the mean.
	TK

	// CH is the one-pass algorithm with the data shifted by a trial mean (the first element).
	CH
)

var varianceAlgorithmNames = []string{"pn", "wd", "yc", "tk", "ch"}

// String implements fmt.Stringer.
func (a VarianceAlgorithm) String() string {
	if a < 0 || int(a) >= len(varianceAlgorithmNames) {
		return "VarianceAlgorithm(invalid)"
	}
	return varianceAlgorithmNames[a]
}

// variance computes the variance with the given algorithm. The denominator is count - correction, where
// count is n, or the number of non-NaN elements if skipNaN.
func variance[T dtypes.GoFloat](op string, algo VarianceAlgorithm, skipNaN bool, n int, correction T,
	x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if strideX == 0 {
		if isNaN(x[offsetX]) || T(n)-correction <= 0 {
			return nan[T]()
		}
		return 0
	}

	// each calls fn for every element entering the variance, with its 1-based position among them,
	// and returns how many there were.
	each := func(fn func(v T, count int)) int {
		count := 0
		ix := offsetX
		for i := 0; i < n; i++ {
			v := x[ix]
			ix += strideX
			if skipNaN && isNaN(v) {
				continue
			}
			count++
			fn(v, count)
		}
		return count
	}

	var (
		result T
		count  int
		den    T
	)
	switch algo {
	case PN, CH:
		var mu T
		if algo == PN {
			if skipNaN {
				var sum T
				sum, count = ext.NanNSumByNDArray(ext.PW, n, x, strideX, offsetX)
				mu = sum / T(count)
			} else {
				count = n
				mu = ext.SumPWNDArray(n, x, strideX, offsetX) / T(n)
			}
		} else {
			// Trial mean: the first element entering the variance.
			ix := offsetX
			for i := 0; i < n; i++ {
				mu = x[ix]
				ix += strideX
				if !skipNaN || !isNaN(mu) {
					break
				}
			}
		}
		var m2, m T
		count = each(func(v T, _ int) {
			d := v - mu
			m2 += d * d
			m += d
		})
		den = T(count) - correction
		result = m2/den - (m/T(count))*(m/den)

	case WD:
		var mu, m2 T
		count = each(func(v T, c int) {
			delta := v - mu
			mu += delta / T(c)
			m2 += delta * (v - mu)
		})
		den = T(count) - correction
		result = m2 / den

	case YC:
		var sum, s T
		count = each(func(v T, c int) {
			if c == 1 {
				sum = v
				return
			}
			sum += v
			d := T(c)*v - sum
			s += (1 / (T(c) * T(c-1))) * d * d
		})
		den = T(count) - correction
		result = s / den

	case TK:
		var s, s2 T
		count = each(func(v T, _ int) {
			s += v
			s2 += v * v
		})
		den = T(count) - correction
		result = (s2 - (s/T(count))*s) / den

	default:
		exceptions.Panicf("stats.%s: unknown variance algorithm %d", op, algo)
	}
	if count == 0 || den <= 0 {
		return nan[T]()
	}
	return result
}

// VarianceByNDArray returns the variance of x computed with the given algorithm, with count - correction as
// the denominator (correction 1 gives the unbiased sample variance, 0 the population variance).
// It returns NaN if n <= 0 or if n - correction <= 0.
func VarianceByNDArray[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T {
	return variance("variance"+algo.String(), algo, false, n, correction, x, strideX, offsetX)
}

// VarianceBy returns the variance of x computed with the given algorithm.
func VarianceBy[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(algo, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceByNDArray returns the variance of the non-NaN elements of x computed with the given algorithm,
// using (number of non-NaN elements) - correction as the denominator.
func NanVarianceByNDArray[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T {
	return variance("nanvariance"+algo.String(), algo, true, n, correction, x, strideX, offsetX)
}

// NanVarianceBy returns the variance of the non-NaN elements of x computed with the given algorithm.
func NanVarianceBy[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(algo, n, correction, x, strideX, strided.Offset(n, strideX))
}

func sqrt[T dtypes.GoFloat](v T) T {
	return T(math.Sqrt(float64(v)))
}

// StdevByNDArray returns the standard deviation of x: the square root of VarianceByNDArray.
func StdevByNDArray[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T {
	return sqrt(VarianceByNDArray(algo, n, correction, x, strideX, offsetX))
}

// StdevBy returns the standard deviation of x computed with the given algorithm.
func StdevBy[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(algo, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevByNDArray returns the standard deviation of the non-NaN elements of x.
func NanStdevByNDArray[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T {
	return sqrt(NanVarianceByNDArray(algo, n, correction, x, strideX, offsetX))
}

// NanStdevBy returns the standard deviation of the non-NaN elements of x.
func NanStdevBy[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(algo, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMByNDArray returns the standard error of the mean of x: its standard deviation divided by sqrt(n).
func SEMByNDArray[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(algo, n, correction, x, strideX, offsetX) / sqrt(T(n))
}

// SEMBy returns the standard error of the mean of x.
func SEMBy[T dtypes.GoFloat](algo VarianceAlgorithm, n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(algo, n, correction, x, strideX, strided.Offset(n, strideX))
}

// varm is the variance around a known mean.
func varm[T dtypes.GoFloat](op string, corrected bool, n int, mean, correction T, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	den := T(n) - correction
	if den <= 0 {
		return nan[T]()
	}
	var m2, m T
	ix := offsetX
	for i := 0; i < n; i++ {
		d := x[ix] - mean
		ix += strideX
		m2 += d * d
		m += d
	}
	if !corrected {
		return m2 / den
	}
	return m2/den - (m/T(n))*(m/den)
}

// VarmPNNDArray returns the variance of x around the known mean, with the sum of squared deviations corrected
// by the sum of deviations (which is non-zero if the given mean is not exact).
func VarmPNNDArray[T dtypes.GoFloat](n int, mean, correction T, x []T, strideX, offsetX int) T {
	return varm("varmpn", true, n, mean, correction, x, strideX, offsetX)
}

// VarmPN returns the variance of x around the known mean.
func VarmPN[T dtypes.GoFloat](n int, mean, correction T, x []T, strideX int) T {
	return VarmPNNDArray(n, mean, correction, x, strideX, strided.Offset(n, strideX))
}

// VarmTKNDArray returns sum((x-mean)²) / (n-correction).
func VarmTKNDArray[T dtypes.GoFloat](n int, mean, correction T, x []T, strideX, offsetX int) T {
	return varm("varmtk", false, n, mean, correction, x, strideX, offsetX)
}

// VarmTK returns sum((x-mean)²) / (n-correction).
func VarmTK[T dtypes.GoFloat](n int, mean, correction T, x []T, strideX int) T {
	return VarmTKNDArray(n, mean, correction, x, strideX, strided.Offset(n, strideX))
}

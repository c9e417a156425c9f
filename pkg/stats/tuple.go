// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"github.com/gomlx/strided/pkg/blas/ext"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// meanVarPN writes the mean and the variance (or the standard deviation if stdev) of x into the two
// elements of the out view, in a single two-pass computation.
func meanVarPN[T dtypes.GoFloat](op string, stdev bool, n int, correction T, x []T, strideX, offsetX int,
	out []T, strideOut, offsetOut int) []T {
	strided.CheckVector(op, "out", 2, len(out), strideOut, offsetOut)
	iMean, iVar := offsetOut, offsetOut+strideOut
	if n <= 0 {
		out[iMean], out[iVar] = nan[T](), nan[T]()
		return out
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	den := T(n) - correction
	var mu, v T
	if n == 1 || strideX == 0 {
		mu = x[offsetX]
		if isNaN(mu) {
			v = mu
		}
	} else {
		mu = ext.SumPWNDArray(n, x, strideX, offsetX) / T(n)
		var m2, m T
		ix := offsetX
		for i := 0; i < n; i++ {
			d := x[ix] - mu
			ix += strideX
			m2 += d * d
			m += d
		}
		v = m2/den - (m/T(n))*(m/den)
		mu += m / T(n)
	}
	if den <= 0 {
		v = nan[T]()
	}
	if stdev {
		v = sqrt(v)
	}
	out[iMean], out[iVar] = mu, v
	return out
}

// MeanVarPNNDArray writes the mean of x into out[offsetOut] and its variance (with n-correction as the
// denominator) into out[offsetOut+strideOut]. It returns out.
//
// For n <= 0 both outputs are NaN.
func MeanVarPNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int, out []T, strideOut, offsetOut int) []T {
	return meanVarPN("meanvarpn", false, n, correction, x, strideX, offsetX, out, strideOut, offsetOut)
}

// MeanVarPN writes the mean and the variance of x into the two elements of out.
func MeanVarPN[T dtypes.GoFloat](n int, correction T, x []T, strideX int, out []T, strideOut int) []T {
	return MeanVarPNNDArray(n, correction, x, strideX, strided.Offset(n, strideX), out, strideOut, strided.Offset(2, strideOut))
}

// MeanVarNDArray is MeanVarPNNDArray.
func MeanVarNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int, out []T, strideOut, offsetOut int) []T {
	return meanVarPN("meanvar", false, n, correction, x, strideX, offsetX, out, strideOut, offsetOut)
}

// MeanVar writes the mean and the variance of x into the two elements of out.
func MeanVar[T dtypes.GoFloat](n int, correction T, x []T, strideX int, out []T, strideOut int) []T {
	return MeanVarNDArray(n, correction, x, strideX, strided.Offset(n, strideX), out, strideOut, strided.Offset(2, strideOut))
}

// MeanStdevPNNDArray writes the mean and the standard deviation of x into the two elements of the out view.
func MeanStdevPNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int, out []T, strideOut, offsetOut int) []T {
	return meanVarPN("meanstdevpn", true, n, correction, x, strideX, offsetX, out, strideOut, offsetOut)
}

// MeanStdevPN writes the mean and the standard deviation of x into the two elements of out.
func MeanStdevPN[T dtypes.GoFloat](n int, correction T, x []T, strideX int, out []T, strideOut int) []T {
	return MeanStdevPNNDArray(n, correction, x, strideX, strided.Offset(n, strideX), out, strideOut, strided.Offset(2, strideOut))
}

// MeanStdevNDArray is MeanStdevPNNDArray.
func MeanStdevNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int, out []T, strideOut, offsetOut int) []T {
	return meanVarPN("meanstdev", true, n, correction, x, strideX, offsetX, out, strideOut, offsetOut)
}

// MeanStdev writes the mean and the standard deviation of x into the two elements of out.
func MeanStdev[T dtypes.GoFloat](n int, correction T, x []T, strideX int, out []T, strideOut int) []T {
	return MeanStdevNDArray(n, correction, x, strideX, strided.Offset(n, strideX), out, strideOut, strided.Offset(2, strideOut))
}

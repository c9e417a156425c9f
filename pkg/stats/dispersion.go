// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// Named entry points for each dispersion kernel. Variance, Stdev, NanVariance, NanStdev and SEM use PN.

// VarianceNDArray is VariancePNNDArray.
func VarianceNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(PN, n, correction, x, strideX, offsetX)
}

// Variance returns the variance of x, computed with the PN algorithm.
func Variance[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// VariancePNNDArray returns the variance of x computed with the two-pass PN algorithm.
func VariancePNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(PN, n, correction, x, strideX, offsetX)
}

// VariancePN returns the variance of x computed with the two-pass PN algorithm.
func VariancePN[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// VarianceWDNDArray returns the variance of x computed with Welford's algorithm.
func VarianceWDNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(WD, n, correction, x, strideX, offsetX)
}

// VarianceWD returns the variance of x computed with Welford's algorithm.
func VarianceWD[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(WD, n, correction, x, strideX, strided.Offset(n, strideX))
}

// VarianceYCNDArray returns the variance of x computed with the Youngs-Cramer algorithm.
func VarianceYCNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(YC, n, correction, x, strideX, offsetX)
}

// VarianceYC returns the variance of x computed with the Youngs-Cramer algorithm.
func VarianceYC[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(YC, n, correction, x, strideX, strided.Offset(n, strideX))
}

// VarianceTKNDArray returns the variance of x computed with the textbook algorithm.
func VarianceTKNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(TK, n, correction, x, strideX, offsetX)
}

// VarianceTK returns the variance of x computed with the textbook algorithm.
func VarianceTK[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(TK, n, correction, x, strideX, strided.Offset(n, strideX))
}

// VarianceCHNDArray returns the variance of x computed over the data shifted by its first element.
func VarianceCHNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return VarianceByNDArray(CH, n, correction, x, strideX, offsetX)
}

// VarianceCH returns the variance of x computed over the data shifted by its first element.
func VarianceCH[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return VarianceByNDArray(CH, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevNDArray is StdevPNNDArray.
func StdevNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(PN, n, correction, x, strideX, offsetX)
}

// Stdev returns the standard deviation of x, computed with the PN algorithm.
func Stdev[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevPNNDArray returns the standard deviation of x computed with the two-pass PN algorithm.
func StdevPNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(PN, n, correction, x, strideX, offsetX)
}

// StdevPN returns the standard deviation of x computed with the two-pass PN algorithm.
func StdevPN[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevWDNDArray returns the standard deviation of x computed with Welford's algorithm.
func StdevWDNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(WD, n, correction, x, strideX, offsetX)
}

// StdevWD returns the standard deviation of x computed with Welford's algorithm.
func StdevWD[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(WD, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevYCNDArray returns the standard deviation of x computed with the Youngs-Cramer algorithm.
func StdevYCNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(YC, n, correction, x, strideX, offsetX)
}

// StdevYC returns the standard deviation of x computed with the Youngs-Cramer algorithm.
func StdevYC[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(YC, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevTKNDArray returns the standard deviation of x computed with the textbook algorithm.
func StdevTKNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(TK, n, correction, x, strideX, offsetX)
}

// StdevTK returns the standard deviation of x computed with the textbook algorithm.
func StdevTK[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(TK, n, correction, x, strideX, strided.Offset(n, strideX))
}

// StdevCHNDArray returns the standard deviation of x computed over the data shifted by its first element.
func StdevCHNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return StdevByNDArray(CH, n, correction, x, strideX, offsetX)
}

// StdevCH returns the standard deviation of x computed over the data shifted by its first element.
func StdevCH[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return StdevByNDArray(CH, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceNDArray is NanVariancePNNDArray.
func NanVarianceNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(PN, n, correction, x, strideX, offsetX)
}

// NanVariance returns the variance of the non-NaN elements of x, computed with the PN algorithm.
func NanVariance[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVariancePNNDArray returns the variance of the non-NaN elements of x computed with the two-pass PN algorithm.
func NanVariancePNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(PN, n, correction, x, strideX, offsetX)
}

// NanVariancePN returns the variance of the non-NaN elements of x computed with the two-pass PN algorithm.
func NanVariancePN[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceWDNDArray returns the variance of the non-NaN elements of x computed with Welford's algorithm.
func NanVarianceWDNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(WD, n, correction, x, strideX, offsetX)
}

// NanVarianceWD returns the variance of the non-NaN elements of x computed with Welford's algorithm.
func NanVarianceWD[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(WD, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceYCNDArray returns the variance of the non-NaN elements of x computed with the Youngs-Cramer algorithm.
func NanVarianceYCNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(YC, n, correction, x, strideX, offsetX)
}

// NanVarianceYC returns the variance of the non-NaN elements of x computed with the Youngs-Cramer algorithm.
func NanVarianceYC[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(YC, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceTKNDArray returns the variance of the non-NaN elements of x computed with the textbook algorithm.
func NanVarianceTKNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(TK, n, correction, x, strideX, offsetX)
}

// NanVarianceTK returns the variance of the non-NaN elements of x computed with the textbook algorithm.
func NanVarianceTK[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(TK, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanVarianceCHNDArray returns the variance of the non-NaN elements of x computed over the data shifted by
// its first element.
func NanVarianceCHNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanVarianceByNDArray(CH, n, correction, x, strideX, offsetX)
}

// NanVarianceCH returns the variance of the non-NaN elements of x computed over the data shifted by its first
// element.
func NanVarianceCH[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanVarianceByNDArray(CH, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevNDArray is NanStdevPNNDArray.
func NanStdevNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(PN, n, correction, x, strideX, offsetX)
}

// NanStdev returns the standard deviation of the non-NaN elements of x, computed with the PN algorithm.
func NanStdev[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevPNNDArray returns the standard deviation of the non-NaN elements of x computed with the two-pass PN
// algorithm.
func NanStdevPNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(PN, n, correction, x, strideX, offsetX)
}

// NanStdevPN returns the standard deviation of the non-NaN elements of x computed with the two-pass PN algorithm.
func NanStdevPN[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevWDNDArray returns the standard deviation of the non-NaN elements of x computed with Welford's algorithm.
func NanStdevWDNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(WD, n, correction, x, strideX, offsetX)
}

// NanStdevWD returns the standard deviation of the non-NaN elements of x computed with Welford's algorithm.
func NanStdevWD[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(WD, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevYCNDArray returns the standard deviation of the non-NaN elements of x computed with the
// Youngs-Cramer algorithm.
func NanStdevYCNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(YC, n, correction, x, strideX, offsetX)
}

// NanStdevYC returns the standard deviation of the non-NaN elements of x computed with the Youngs-Cramer algorithm.
func NanStdevYC[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(YC, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevTKNDArray returns the standard deviation of the non-NaN elements of x computed with the textbook algorithm.
func NanStdevTKNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(TK, n, correction, x, strideX, offsetX)
}

// NanStdevTK returns the standard deviation of the non-NaN elements of x computed with the textbook algorithm.
func NanStdevTK[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(TK, n, correction, x, strideX, strided.Offset(n, strideX))
}

// NanStdevCHNDArray returns the standard deviation of the non-NaN elements of x computed over the data
// shifted by its first element.
func NanStdevCHNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return NanStdevByNDArray(CH, n, correction, x, strideX, offsetX)
}

// NanStdevCH returns the standard deviation of the non-NaN elements of x computed over the data shifted by
// its first element.
func NanStdevCH[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return NanStdevByNDArray(CH, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMNDArray is SEMPNNDArray.
func SEMNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(PN, n, correction, x, strideX, offsetX)
}

// SEM returns the standard error of the mean of x, computed with the PN algorithm.
func SEM[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMPNNDArray returns the standard error of the mean of x computed with the two-pass PN algorithm.
func SEMPNNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(PN, n, correction, x, strideX, offsetX)
}

// SEMPN returns the standard error of the mean of x computed with the two-pass PN algorithm.
func SEMPN[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(PN, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMWDNDArray returns the standard error of the mean of x computed with Welford's algorithm.
func SEMWDNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(WD, n, correction, x, strideX, offsetX)
}

// SEMWD returns the standard error of the mean of x computed with Welford's algorithm.
func SEMWD[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(WD, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMYCNDArray returns the standard error of the mean of x computed with the Youngs-Cramer algorithm.
func SEMYCNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(YC, n, correction, x, strideX, offsetX)
}

// SEMYC returns the standard error of the mean of x computed with the Youngs-Cramer algorithm.
func SEMYC[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(YC, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMTKNDArray returns the standard error of the mean of x computed with the textbook algorithm.
func SEMTKNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(TK, n, correction, x, strideX, offsetX)
}

// SEMTK returns the standard error of the mean of x computed with the textbook algorithm.
func SEMTK[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(TK, n, correction, x, strideX, strided.Offset(n, strideX))
}

// SEMCHNDArray returns the standard error of the mean of x computed over the data shifted by its first element.
func SEMCHNDArray[T dtypes.GoFloat](n int, correction T, x []T, strideX, offsetX int) T {
	return SEMByNDArray(CH, n, correction, x, strideX, offsetX)
}

// SEMCH returns the standard error of the mean of x computed over the data shifted by its first element.
func SEMCH[T dtypes.GoFloat](n int, correction T, x []T, strideX int) T {
	return SEMByNDArray(CH, n, correction, x, strideX, strided.Offset(n, strideX))
}

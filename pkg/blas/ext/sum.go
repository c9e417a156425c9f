// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ext

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// The sum kernels return 0 for n <= 0, and n*x[offset] for a zero stride.

// SumNDArray returns the sum of x, using pairwise summation.
func SumNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return SumPWNDArray(n, x, strideX, offsetX)
}

// Sum returns the sum of x, using pairwise summation.
func Sum[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return SumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// SumORSNDArray returns the sum of x, using ordinary recursive summation.
func SumORSNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("sumors", ORS, n, summand[T]{}, x, strideX, offsetX)
	return sum
}

// SumORS returns the sum of x, using ordinary recursive summation.
func SumORS[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return SumORSNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// SumKBNNDArray returns the sum of x, using the Kahan-Babuška-Neumaier compensated summation.
func SumKBNNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("sumkbn", KBN, n, summand[T]{}, x, strideX, offsetX)
	return sum
}

// SumKBN returns the sum of x, using the Kahan-Babuška-Neumaier compensated summation.
func SumKBN[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return SumKBNNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// SumKBN2NDArray returns the sum of x, using the second-order iterative Kahan-Babuška summation.
func SumKBN2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("sumkbn2", KBN2, n, summand[T]{}, x, strideX, offsetX)
	return sum
}

// SumKBN2 returns the sum of x, using the second-order iterative Kahan-Babuška summation.
func SumKBN2[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return SumKBN2NDArray(n, x, strideX, strided.Offset(n, strideX))
}

// SumPWNDArray returns the sum of x, using pairwise summation.
func SumPWNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("sumpw", PW, n, summand[T]{}, x, strideX, offsetX)
	return sum
}

// SumPW returns the sum of x, using pairwise summation.
func SumPW[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return SumPWNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// SumByNDArray returns the sum of x with the given algorithm.
func SumByNDArray[T dtypes.GoFloat](algo Algorithm, n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("sum", algo, n, summand[T]{}, x, strideX, offsetX)
	return sum
}

// SumBy returns the sum of x with the given algorithm.
func SumBy[T dtypes.GoFloat](algo Algorithm, n int, x []T, strideX int) T {
	return SumByNDArray(algo, n, x, strideX, strided.Offset(n, strideX))
}

// NaN-skipping sums: NaN elements are ignored. If all elements are NaN (or n <= 0) the sum is 0.

// NanSumNDArray returns the sum of the non-NaN elements of x, using pairwise summation.
func NanSumNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return NanSumPWNDArray(n, x, strideX, offsetX)
}

// NanSum returns the sum of the non-NaN elements of x, using pairwise summation.
func NanSum[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanSumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanSumORSNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("nansumors", ORS, n, summand[T]{skipNaN: true}, x, strideX, offsetX)
	return sum
}

func NanSumORS[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanSumORSNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanSumKBNNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("nansumkbn", KBN, n, summand[T]{skipNaN: true}, x, strideX, offsetX)
	return sum
}

func NanSumKBN[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanSumKBNNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanSumKBN2NDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("nansumkbn2", KBN2, n, summand[T]{skipNaN: true}, x, strideX, offsetX)
	return sum
}

func NanSumKBN2[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanSumKBN2NDArray(n, x, strideX, strided.Offset(n, strideX))
}

func NanSumPWNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("nansumpw", PW, n, summand[T]{skipNaN: true}, x, strideX, offsetX)
	return sum
}

func NanSumPW[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanSumPWNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanNSumNDArray returns the sum of the non-NaN elements of x, and how many there are, using
// pairwise summation.
func NanNSumNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) (T, int) {
	return NanNSumByNDArray(PW, n, x, strideX, offsetX)
}

// NanNSum returns the sum of the non-NaN elements of x, and how many there are.
func NanNSum[T dtypes.GoFloat](n int, x []T, strideX int) (T, int) {
	return NanNSumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanNSumByNDArray is NanNSumNDArray with the given algorithm.
func NanNSumByNDArray[T dtypes.GoFloat](algo Algorithm, n int, x []T, strideX, offsetX int) (T, int) {
	return sumNDArray("nannsum", algo, n, summand[T]{skipNaN: true}, x, strideX, offsetX)
}

func NanNSumORS[T dtypes.GoFloat](n int, x []T, strideX int) (T, int) {
	return NanNSumByNDArray(ORS, n, x, strideX, strided.Offset(n, strideX))
}

func NanNSumKBN[T dtypes.GoFloat](n int, x []T, strideX int) (T, int) {
	return NanNSumByNDArray(KBN, n, x, strideX, strided.Offset(n, strideX))
}

func NanNSumKBN2[T dtypes.GoFloat](n int, x []T, strideX int) (T, int) {
	return NanNSumByNDArray(KBN2, n, x, strideX, strided.Offset(n, strideX))
}

func NanNSumPW[T dtypes.GoFloat](n int, x []T, strideX int) (T, int) {
	return NanNSumByNDArray(PW, n, x, strideX, strided.Offset(n, strideX))
}

// AsumPWNDArray returns the sum of the absolute values of x, using pairwise summation.
func AsumPWNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("asumpw", PW, n, summand[T]{abs: true}, x, strideX, offsetX)
	return sum
}

// AsumPW returns the sum of the absolute values of x, using pairwise summation.
func AsumPW[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return AsumPWNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// ApxSumByNDArray returns the sum of alpha+x[i] over x, with the given algorithm.
func ApxSumByNDArray[T dtypes.GoFloat](algo Algorithm, n int, alpha T, x []T, strideX, offsetX int) T {
	sum, _ := sumNDArray("apxsum", algo, n, summand[T]{alpha: alpha}, x, strideX, offsetX)
	return sum
}

// ApxSumNDArray returns the sum of alpha+x[i] over x, using the Kahan-Babuška-Neumaier summation.
func ApxSumNDArray[T dtypes.GoFloat](n int, alpha T, x []T, strideX, offsetX int) T {
	return ApxSumByNDArray(KBN, n, alpha, x, strideX, offsetX)
}

// ApxSum returns the sum of alpha+x[i] over x, using the Kahan-Babuška-Neumaier summation.
func ApxSum[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) T {
	return ApxSumNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

func ApxSumORS[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) T {
	return ApxSumByNDArray(ORS, n, alpha, x, strideX, strided.Offset(n, strideX))
}

func ApxSumKBN[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) T {
	return ApxSumByNDArray(KBN, n, alpha, x, strideX, strided.Offset(n, strideX))
}

func ApxSumKBN2[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) T {
	return ApxSumByNDArray(KBN2, n, alpha, x, strideX, strided.Offset(n, strideX))
}

func ApxSumPW[T dtypes.GoFloat](n int, alpha T, x []T, strideX int) T {
	return ApxSumByNDArray(PW, n, alpha, x, strideX, strided.Offset(n, strideX))
}

// Mixed precision ("ds") sums: float32 input, accumulated and returned in float64.

// SumWideByNDArray returns the sum of the float32 buffer x accumulated in float64 with the given algorithm.
func SumWideByNDArray(algo Algorithm, n int, x []float32, strideX, offsetX int) float64 {
	sum, _ := sumNDArray("dssum", algo, n, summand[float64]{}, x, strideX, offsetX)
	return sum
}

// SumWideNDArray returns the sum of the float32 buffer x accumulated in float64, using pairwise summation.
func SumWideNDArray(n int, x []float32, strideX, offsetX int) float64 {
	return SumWideByNDArray(PW, n, x, strideX, offsetX)
}

// SumWide returns the sum of the float32 buffer x accumulated in float64, using pairwise summation.
func SumWide(n int, x []float32, strideX int) float64 {
	return SumWideNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func SumWideORS(n int, x []float32, strideX int) float64 {
	return SumWideByNDArray(ORS, n, x, strideX, strided.Offset(n, strideX))
}

func SumWideKBN(n int, x []float32, strideX int) float64 {
	return SumWideByNDArray(KBN, n, x, strideX, strided.Offset(n, strideX))
}

func SumWideKBN2(n int, x []float32, strideX int) float64 {
	return SumWideByNDArray(KBN2, n, x, strideX, strided.Offset(n, strideX))
}

func SumWidePW(n int, x []float32, strideX int) float64 {
	return SumWideByNDArray(PW, n, x, strideX, strided.Offset(n, strideX))
}

// NanSumWideNDArray returns the sum of the non-NaN elements of the float32 buffer x, accumulated in float64
// with pairwise summation.
func NanSumWideNDArray(n int, x []float32, strideX, offsetX int) float64 {
	sum, _ := sumNDArray("dsnansum", PW, n, summand[float64]{skipNaN: true}, x, strideX, offsetX)
	return sum
}

// NanSumWide returns the sum of the non-NaN elements of the float32 buffer x, accumulated in float64.
func NanSumWide(n int, x []float32, strideX int) float64 {
	return NanSumWideNDArray(n, x, strideX, strided.Offset(n, strideX))
}

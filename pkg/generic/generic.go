// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package generic implements runtime-typed ("g") kernels: the buffers are passed as `any` (a slice of any
// supported element kind, or []any for the Copy/Swap/Fill/Rev family) and the element kind is resolved
// once per call, with strided.Dispatcher, to the generic instantiation that runs the loop.
//
// Unlike the typed kernels, these functions don't panic on invalid arguments: they return an error wrapping
// a *strided.ArgumentError, for instance when x and y hold different element kinds.
//
// Integer reductions are computed in float64 and half-precision ones (Float16, BFloat16) in float32.
package generic

//go:generate go run ../../internal/cmd/generic_dispatcher

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/pkg/errors"
)

var (
	copyDispatcher   = strided.NewDispatcher("gcopy")
	swapDispatcher   = strided.NewDispatcher("gswap")
	revDispatcher    = strided.NewDispatcher("grev")
	fillDispatcher   = strided.NewDispatcher("gfill")
	scalDispatcher   = strided.NewDispatcher("gscal")
	axpyDispatcher   = strided.NewDispatcher("gaxpy")
	dotDispatcher    = strided.NewDispatcher("gdot")
	reduceDispatcher = strided.NewDispatcher("greduce")

	// statisticDispatcher is like reduceDispatcher, without half-precision support.
	statisticDispatcher = strided.NewDispatcher("gstatistic")
)

func init() {
	fillDispatcher.Register(dtypes.Generic, fillAny)
}

// Supports returns whether the named operation ("copy", "sum", "variance", ...) handles the element kind.
func Supports(operation string, dtype dtypes.DType) bool {
	switch operation {
	case "copy":
		return copyDispatcher.Supports(dtype)
	case "swap":
		return swapDispatcher.Supports(dtype)
	case "rev":
		return revDispatcher.Supports(dtype)
	case "fill":
		return fillDispatcher.Supports(dtype)
	case "scal":
		return scalDispatcher.Supports(dtype)
	case "axpy":
		return axpyDispatcher.Supports(dtype)
	case "dot":
		return dotDispatcher.Supports(dtype)
	case "sum", "max", "min":
		return reduceDispatcher.Supports(dtype)
	case "nanmax", "nanmin", "mean", "variance":
		return statisticDispatcher.Supports(dtype)
	}
	return false
}

// run dispatches on the element kind of x, converting a panic into an error.
func run(op string, d *strided.Dispatcher, x any, params ...any) (any, error) {
	dtype := dtypes.FromAny(x)
	if !dtype.IsSupported() {
		return nil, errors.Wrapf(strided.NewArgumentError(d.Name, "x", "buffer of type %T has no element kind", x),
			"generic.%s", op)
	}
	result, err := d.TryDispatch(dtype, params...)
	if err != nil {
		return nil, errors.Wrapf(err, "generic.%s", op)
	}
	return result, nil
}

// CopyNDArray copies x into y, which must hold the same element kind.
func CopyNDArray(n int, x any, strideX, offsetX int, y any, strideY, offsetY int) error {
	_, err := run("Copy", copyDispatcher, x, n, x, strideX, offsetX, y, strideY, offsetY)
	return err
}

// Copy copies x into y, which must hold the same element kind.
func Copy(n int, x any, strideX int, y any, strideY int) error {
	return CopyNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// SwapNDArray interchanges x and y, which must hold the same element kind.
func SwapNDArray(n int, x any, strideX, offsetX int, y any, strideY, offsetY int) error {
	_, err := run("Swap", swapDispatcher, x, n, x, strideX, offsetX, y, strideY, offsetY)
	return err
}

// Swap interchanges x and y.
func Swap(n int, x any, strideX int, y any, strideY int) error {
	return SwapNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// RevNDArray reverses the elements of x in place.
func RevNDArray(n int, x any, strideX, offsetX int) error {
	_, err := run("Rev", revDispatcher, x, n, x, strideX, offsetX)
	return err
}

// Rev reverses the elements of x in place.
func Rev(n int, x any, strideX int) error {
	return RevNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// FillNDArray sets every element of x to alpha. For numeric buffers alpha can be any Go number (it is
// converted to the element kind); for []any it is stored as is.
func FillNDArray(n int, alpha any, x any, strideX, offsetX int) error {
	_, err := run("Fill", fillDispatcher, x, n, alpha, x, strideX, offsetX)
	return err
}

// Fill sets every element of x to alpha.
func Fill(n int, alpha any, x any, strideX int) error {
	return FillNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// ScalNDArray multiplies x by alpha in place. Integer results are truncated toward zero.
func ScalNDArray(n int, alpha float64, x any, strideX, offsetX int) error {
	_, err := run("Scal", scalDispatcher, x, n, alpha, x, strideX, offsetX)
	return err
}

// Scal multiplies x by alpha in place.
func Scal(n int, alpha float64, x any, strideX int) error {
	return ScalNDArray(n, alpha, x, strideX, strided.Offset(n, strideX))
}

// AxpyNDArray sets y += alpha * x. x and y must hold the same element kind.
func AxpyNDArray(n int, alpha float64, x any, strideX, offsetX int, y any, strideY, offsetY int) error {
	_, err := run("Axpy", axpyDispatcher, x, n, alpha, x, strideX, offsetX, y, strideY, offsetY)
	return err
}

// Axpy sets y += alpha * x.
func Axpy(n int, alpha float64, x any, strideX int, y any, strideY int) error {
	return AxpyNDArray(n, alpha, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// DotNDArray returns the dot product of x and y, which must hold the same element kind.
func DotNDArray(n int, x any, strideX, offsetX int, y any, strideY, offsetY int) (float64, error) {
	result, err := run("Dot", dotDispatcher, x, n, x, strideX, offsetX, y, strideY, offsetY)
	if err != nil {
		return 0, err
	}
	return result.(float64), nil
}

// Dot returns the dot product of x and y.
func Dot(n int, x any, strideX int, y any, strideY int) (float64, error) {
	return DotNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

func reduce(op string, d *strided.Dispatcher, r reduction, n int, x any, strideX, offsetX int) (float64, error) {
	result, err := run(op, d, x, r, n, x, strideX, offsetX)
	if err != nil {
		return 0, err
	}
	return result.(float64), nil
}

// SumNDArray returns the sum of x, using pairwise summation for float kinds.
func SumNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("Sum", reduceDispatcher, sumReduction, n, x, strideX, offsetX)
}

// Sum returns the sum of x.
func Sum(n int, x any, strideX int) (float64, error) {
	return SumNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MaxNDArray returns the maximum of x. It returns NaN for n <= 0, or if x holds a NaN.
func MaxNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("Max", reduceDispatcher, maxReduction, n, x, strideX, offsetX)
}

// Max returns the maximum of x.
func Max(n int, x any, strideX int) (float64, error) {
	return MaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MinNDArray returns the minimum of x. It returns NaN for n <= 0, or if x holds a NaN.
func MinNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("Min", reduceDispatcher, minReduction, n, x, strideX, offsetX)
}

// Min returns the minimum of x.
func Min(n int, x any, strideX int) (float64, error) {
	return MinNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMaxNDArray returns the maximum of the non-NaN elements of x.
func NanMaxNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("NanMax", statisticDispatcher, nanMaxReduction, n, x, strideX, offsetX)
}

// NanMax returns the maximum of the non-NaN elements of x.
func NanMax(n int, x any, strideX int) (float64, error) {
	return NanMaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMinNDArray returns the minimum of the non-NaN elements of x.
func NanMinNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("NanMin", statisticDispatcher, nanMinReduction, n, x, strideX, offsetX)
}

// NanMin returns the minimum of the non-NaN elements of x.
func NanMin(n int, x any, strideX int) (float64, error) {
	return NanMinNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MeanNDArray returns the arithmetic mean of x.
func MeanNDArray(n int, x any, strideX, offsetX int) (float64, error) {
	return reduce("Mean", statisticDispatcher, meanReduction, n, x, strideX, offsetX)
}

// Mean returns the arithmetic mean of x.
func Mean(n int, x any, strideX int) (float64, error) {
	return MeanNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// VarianceNDArray returns the variance of x with n-correction as the denominator.
func VarianceNDArray(n int, correction float64, x any, strideX, offsetX int) (float64, error) {
	return reduce("Variance", statisticDispatcher, varianceReduction(correction), n, x, strideX, offsetX)
}

// Variance returns the variance of x with n-correction as the denominator.
func Variance(n int, correction float64, x any, strideX int) (float64, error) {
	return VarianceNDArray(n, correction, x, strideX, strided.Offset(n, strideX))
}

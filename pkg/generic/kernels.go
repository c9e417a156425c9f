// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package generic

import (
	"github.com/gomlx/strided/pkg/blas"
	"github.com/gomlx/strided/pkg/blas/ext"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/gomlx/strided/pkg/stats"
	"github.com/x448/float16"
)

// The dispatched functions below take their parameters positionally, in the same order as the exported
// entry points, with the buffers as `any`.

// buffer asserts that v is a []T, or panics with an ArgumentError.
func buffer[T any](op, arg string, v any) []T {
	x, ok := v.([]T)
	if !ok {
		strided.Panicf(op, arg, "expected a buffer of type %T, got %T", []T(nil), v)
	}
	return x
}

// view returns the parameters (x, strideX, offsetX) starting at params[i].
func view[T any](op, arg string, params []any, i int) ([]T, int, int) {
	return buffer[T](op, arg, params[i]), params[i+1].(int), params[i+2].(int)
}

func toFloat64(op string, v any) float64 {
	switch a := v.(type) {
	case float64:
		return a
	case float32:
		return float64(a)
	case int:
		return float64(a)
	case int8:
		return float64(a)
	case int16:
		return float64(a)
	case int32:
		return float64(a)
	case int64:
		return float64(a)
	case uint:
		return float64(a)
	case uint8:
		return float64(a)
	case uint16:
		return float64(a)
	case uint32:
		return float64(a)
	case uint64:
		return float64(a)
	case float16.Float16:
		return float64(a.Float32())
	case bfloat16.BFloat16:
		return a.Float64()
	}
	strided.Panicf(op, "alpha", "expected a number, got %T", v)
	return 0
}

func halfToFloat32[T dtypes.Half](v T) float32 {
	switch h := any(v).(type) {
	case float16.Float16:
		return h.Float32()
	case bfloat16.BFloat16:
		return h.Float32()
	}
	return 0
}

func float32ToHalf[T dtypes.Half](v float32) T {
	var h T
	switch any(h).(type) {
	case float16.Float16:
		return any(float16.Fromfloat32(v)).(T)
	case bfloat16.BFloat16:
		return any(bfloat16.FromFloat32(v)).(T)
	}
	return h
}

func identity[T any](v T) T { return v }

func copyGeneric[T any](params ...any) any {
	const op = "gcopy"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 1)
	y, sy, oy := view[T](op, "y", params, 4)
	strided.UnaryNDArray(n, x, sx, ox, y, sy, oy, identity[T])
	return nil
}

func swapGeneric[T any](params ...any) any {
	const op = "gswap"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 1)
	y, sy, oy := view[T](op, "y", params, 4)
	if n <= 0 {
		return nil
	}
	strided.CheckVector(op, "x", n, len(x), sx, ox)
	strided.CheckVector(op, "y", n, len(y), sy, oy)
	ix, iy := ox, oy
	for range n {
		x[ix], y[iy] = y[iy], x[ix]
		ix += sx
		iy += sy
	}
	return nil
}

func revGeneric[T any](params ...any) any {
	n := params[0].(int)
	x, sx, ox := view[T]("grev", "x", params, 1)
	ext.RevNDArray(n, x, sx, ox)
	return nil
}

func fillNumber[T dtypes.NumberNotComplex](params ...any) any {
	const op = "gfill"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 2)
	alpha := T(toFloat64(op, params[1]))
	ext.FillNDArray(n, alpha, x, sx, ox)
	return nil
}

func fillHalf[T dtypes.Half](params ...any) any {
	const op = "gfill"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 2)
	alpha := float32ToHalf[T](float32(toFloat64(op, params[1])))
	strided.NullaryNDArray(n, x, sx, ox, func() T { return alpha })
	return nil
}

// fillAny fills a []any buffer: alpha is stored as given.
func fillAny(params ...any) any {
	n := params[0].(int)
	x, sx, ox := view[any]("gfill", "x", params, 2)
	alpha := params[1]
	strided.NullaryNDArray(n, x, sx, ox, func() any { return alpha })
	return nil
}

func scalInt[T dtypes.Integer](params ...any) any {
	n, alpha := params[0].(int), params[1].(float64)
	x, sx, ox := view[T]("gscal", "x", params, 2)
	strided.InPlaceNDArray(n, x, sx, ox, func(v T) T { return T(float64(v) * alpha) })
	return nil
}

func scalFloat[T dtypes.GoFloat](params ...any) any {
	n, alpha := params[0].(int), params[1].(float64)
	x, sx, ox := view[T]("gscal", "x", params, 2)
	blas.ScalNDArray(n, T(alpha), x, sx, ox)
	return nil
}

func scalHalf[T dtypes.Half](params ...any) any {
	n, alpha := params[0].(int), float32(params[1].(float64))
	x, sx, ox := view[T]("gscal", "x", params, 2)
	strided.InPlaceNDArray(n, x, sx, ox, func(v T) T { return float32ToHalf[T](halfToFloat32(v) * alpha) })
	return nil
}

func axpyInt[T dtypes.Integer](params ...any) any {
	const op = "gaxpy"
	n, alpha := params[0].(int), params[1].(float64)
	x, sx, ox := view[T](op, "x", params, 2)
	y, sy, oy := view[T](op, "y", params, 5)
	strided.BinaryNDArray(n, x, sx, ox, y, sy, oy, y, sy, oy, func(a, b T) T {
		return T(float64(b) + alpha*float64(a))
	})
	return nil
}

func axpyFloat[T dtypes.GoFloat](params ...any) any {
	const op = "gaxpy"
	n, alpha := params[0].(int), params[1].(float64)
	x, sx, ox := view[T](op, "x", params, 2)
	y, sy, oy := view[T](op, "y", params, 5)
	blas.AxpyNDArray(n, T(alpha), x, sx, ox, y, sy, oy)
	return nil
}

// promote copies the view into a new contiguous buffer of a wider float type.
func promote[T any, F dtypes.GoFloat](op, arg string, n int, x []T, strideX, offsetX int, fn func(T) F) []F {
	if n <= 0 {
		return nil
	}
	strided.CheckVector(op, arg, n, len(x), strideX, offsetX)
	return strided.UnaryNDArray(n, x, strideX, offsetX, make([]F, n), 1, 0, fn)
}

func intToFloat64[T dtypes.Integer](v T) float64 { return float64(v) }

func dotInt[T dtypes.Integer](params ...any) any {
	const op = "gdot"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 1)
	y, sy, oy := view[T](op, "y", params, 4)
	x64 := promote(op, "x", n, x, sx, ox, intToFloat64[T])
	y64 := promote(op, "y", n, y, sy, oy, intToFloat64[T])
	return blas.DotNDArray(n, x64, 1, 0, y64, 1, 0)
}

func dotFloat[T dtypes.GoFloat](params ...any) any {
	const op = "gdot"
	n := params[0].(int)
	x, sx, ox := view[T](op, "x", params, 1)
	y, sy, oy := view[T](op, "y", params, 4)
	return float64(blas.DotNDArray(n, x, sx, ox, y, sy, oy))
}

// reduction is a float reduction instantiated for both float kinds.
type reduction struct {
	f32 func(n int, x []float32, strideX, offsetX int) float32
	f64 func(n int, x []float64, strideX, offsetX int) float64
}

var (
	sumReduction    = reduction{ext.SumNDArray[float32], ext.SumNDArray[float64]}
	maxReduction    = reduction{stats.MaxNDArray[float32], stats.MaxNDArray[float64]}
	minReduction    = reduction{stats.MinNDArray[float32], stats.MinNDArray[float64]}
	nanMaxReduction = reduction{stats.NanMaxNDArray[float32], stats.NanMaxNDArray[float64]}
	nanMinReduction = reduction{stats.NanMinNDArray[float32], stats.NanMinNDArray[float64]}
	meanReduction   = reduction{stats.MeanNDArray[float32], stats.MeanNDArray[float64]}
)

func varianceReduction(correction float64) reduction {
	return reduction{
		f32: func(n int, x []float32, strideX, offsetX int) float32 {
			return stats.VarianceNDArray(n, float32(correction), x, strideX, offsetX)
		},
		f64: func(n int, x []float64, strideX, offsetX int) float64 {
			return stats.VarianceNDArray(n, correction, x, strideX, offsetX)
		},
	}
}

func reduceInt[T dtypes.Integer](params ...any) any {
	const op = "greduce"
	r, n := params[0].(reduction), params[1].(int)
	x, sx, ox := view[T](op, "x", params, 2)
	x64 := promote(op, "x", n, x, sx, ox, intToFloat64[T])
	return r.f64(n, x64, 1, 0)
}

func reduceFloat[T dtypes.GoFloat](params ...any) any {
	r, n := params[0].(reduction), params[1].(int)
	x, sx, ox := view[T]("greduce", "x", params, 2)
	switch xs := any(x).(type) {
	case []float32:
		return float64(r.f32(n, xs, sx, ox))
	case []float64:
		return r.f64(n, xs, sx, ox)
	}
	return nil
}

func reduceHalf[T dtypes.Half](params ...any) any {
	const op = "greduce"
	r, n := params[0].(reduction), params[1].(int)
	x, sx, ox := view[T](op, "x", params, 2)
	x32 := promote(op, "x", n, x, sx, ox, halfToFloat32[T])
	return float64(r.f32(n, x32, 1, 0))
}

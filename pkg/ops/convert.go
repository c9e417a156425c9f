// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/x448/float16"
)

// Precision conversion copies. Widening conversions are exact; narrowing ones round to nearest even.

func f16ToF32(v float16.Float16) float32    { return v.Float32() }
func f32ToF16(v float32) float16.Float16    { return float16.Fromfloat32(v) }
func bf16ToF32(v bfloat16.BFloat16) float32 { return v.Float32() }
func f32ToBF16(v float32) bfloat16.BFloat16 { return bfloat16.FromFloat32(v) }
func f32ToF64(v float32) float64            { return float64(v) }
func f64ToF32(v float64) float32            { return float32(v) }

func Float16ToFloat32NDArray(n int, x []float16.Float16, strideX, offsetX int, y []float32, strideY, offsetY int) []float32 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, f16ToF32)
}

// Float16ToFloat32 widens IEEE half-precision values to float32.
func Float16ToFloat32(n int, x []float16.Float16, strideX int, y []float32, strideY int) []float32 {
	return strided.Unary(n, x, strideX, y, strideY, f16ToF32)
}

func Float32ToFloat16NDArray(n int, x []float32, strideX, offsetX int, y []float16.Float16, strideY, offsetY int) []float16.Float16 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, f32ToF16)
}

// Float32ToFloat16 narrows float32 values to IEEE half-precision. Values out of range become ±Inf.
func Float32ToFloat16(n int, x []float32, strideX int, y []float16.Float16, strideY int) []float16.Float16 {
	return strided.Unary(n, x, strideX, y, strideY, f32ToF16)
}

func BFloat16ToFloat32NDArray(n int, x []bfloat16.BFloat16, strideX, offsetX int, y []float32, strideY, offsetY int) []float32 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, bf16ToF32)
}

// BFloat16ToFloat32 widens bfloat16 values to float32.
func BFloat16ToFloat32(n int, x []bfloat16.BFloat16, strideX int, y []float32, strideY int) []float32 {
	return strided.Unary(n, x, strideX, y, strideY, bf16ToF32)
}

func Float32ToBFloat16NDArray(n int, x []float32, strideX, offsetX int, y []bfloat16.BFloat16, strideY, offsetY int) []bfloat16.BFloat16 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, f32ToBF16)
}

// Float32ToBFloat16 narrows float32 values to bfloat16.
func Float32ToBFloat16(n int, x []float32, strideX int, y []bfloat16.BFloat16, strideY int) []bfloat16.BFloat16 {
	return strided.Unary(n, x, strideX, y, strideY, f32ToBF16)
}

func Float32ToFloat64NDArray(n int, x []float32, strideX, offsetX int, y []float64, strideY, offsetY int) []float64 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, f32ToF64)
}

// Float32ToFloat64 widens float32 values to float64.
func Float32ToFloat64(n int, x []float32, strideX int, y []float64, strideY int) []float64 {
	return strided.Unary(n, x, strideX, y, strideY, f32ToF64)
}

func Float64ToFloat32NDArray(n int, x []float64, strideX, offsetX int, y []float32, strideY, offsetY int) []float32 {
	return strided.UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, f64ToF32)
}

// Float64ToFloat32 narrows float64 values to float32.
func Float64ToFloat32(n int, x []float64, strideX int, y []float32, strideY int) []float32 {
	return strided.Unary(n, x, strideX, y, strideY, f64ToF32)
}

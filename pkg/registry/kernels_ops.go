// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/gomlx/strided/pkg/ops"
)

const (
	nsOps     = "ops"
	nsStrided = "strided"

	// Unroll factor of the generic loops of package strided, used by the element-wise kernels.
	loopUnroll = 8
)

type unaryKernel struct {
	name string
	f64  func(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int) []float64
	f32  func(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) []float32
	doc  string
}

func registerOps() {
	for _, u := range []unaryKernel{
		{"abs", ops.AbsNDArray[float64], ops.AbsNDArray[float32], "y = |x|"},
		{"abs2", ops.Abs2NDArray[float64], ops.Abs2NDArray[float32], "y = x*x"},
		{"neg", ops.NegNDArray[float64], ops.NegNDArray[float32], "y = -x"},
		{"ceil", ops.CeilNDArray[float64], ops.CeilNDArray[float32], "y = ceil(x)"},
		{"floor", ops.FloorNDArray[float64], ops.FloorNDArray[float32], "y = floor(x)"},
		{"trunc", ops.TruncNDArray[float64], ops.TruncNDArray[float32], "y = trunc(x)"},
		{"round", ops.RoundNDArray[float64], ops.RoundNDArray[float32], "y = round(x), halves away from zero"},
		{"sqrt", ops.SqrtNDArray[float64], ops.SqrtNDArray[float32], "y = sqrt(x)"},
		{"cbrt", ops.CbrtNDArray[float64], ops.CbrtNDArray[float32], "y = cbrt(x)"},
		{"inv", ops.InvNDArray[float64], ops.InvNDArray[float32], "y = 1/x"},
		{"ramp", ops.RampNDArray[float64], ops.RampNDArray[float32], "y = max(x, 0)"},
		{"deg2rad", ops.Deg2RadNDArray[float64], ops.Deg2RadNDArray[float32], "y = x*pi/180"},
	} {
		both(entry{name: u.name, namespace: nsOps, shape: Map, output: MutatesOutput, unroll: loopUnroll, operands: 2,
			doc: u.doc},
			mapXY(u.f64), mapXY(u.f32))
	}

	for _, b := range []struct {
		name string
		f64  func(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int, z []float64, strideZ, offsetZ int) []float64
		f32  func(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int, z []float32, strideZ, offsetZ int) []float32
		doc  string
	}{
		{"add", ops.AddNDArray[float64], ops.AddNDArray[float32], "z = x + y"},
		{"sub", ops.SubNDArray[float64], ops.SubNDArray[float32], "z = x - y"},
		{"mul", ops.MulNDArray[float64], ops.MulNDArray[float32], "z = x * y"},
		{"div", ops.DivNDArray[float64], ops.DivNDArray[float32], "z = x / y"},
	} {
		both(entry{name: b.name, namespace: nsOps, shape: Binary, output: MutatesOutput, unroll: loopUnroll, operands: 3,
			doc: b.doc},
			mapXYZ(b.f64), mapXYZ(b.f32))
	}

	for _, m := range []struct {
		name string
		f64  func(n int, x []float64, strideX, offsetX int, mask []uint8, strideMask, offsetMask int, y []float64, strideY, offsetY int) []float64
		f32  func(n int, x []float32, strideX, offsetX int, mask []uint8, strideMask, offsetMask int, y []float32, strideY, offsetY int) []float32
	}{
		{"mskabs", ops.MskAbsNDArray[float64], ops.MskAbsNDArray[float32]},
		{"msksqrt", ops.MskSqrtNDArray[float64], ops.MskSqrtNDArray[float32]},
		{"mskramp", ops.MskRampNDArray[float64], ops.MskRampNDArray[float32]},
		{"mskceil", ops.MskCeilNDArray[float64], ops.MskCeilNDArray[float32]},
	} {
		both(entry{name: m.name, namespace: nsOps, shape: Map, output: MutatesOutput, operands: 3,
			doc: "y = f(x) where the mask (second operand) is 0"},
			mapMasked(m.f64), mapMasked(m.f32))
	}

	both(entry{name: "gather", namespace: nsStrided, shape: Map, output: CopyProducing, operands: 1,
		doc: "contiguous copy of the view"},
		gather[float64](), gather[float32]())
}

func mapMasked[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []T, strideY, offsetY int) []T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, v[0].Data, v[0].Stride, v[0].Offset, maskOf(v[1].Data), v[1].Stride, v[1].Offset,
			v[2].Data, v[2].Stride, v[2].Offset)
	}
}

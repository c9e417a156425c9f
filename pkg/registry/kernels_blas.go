// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/gomlx/strided/pkg/blas"
	"github.com/gomlx/strided/pkg/blas/ext"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

const (
	nsBLAS = "blas"
	nsExt  = "blas/ext"
)

func registerBLAS() {
	both(entry{name: "scal", namespace: nsBLAS, shape: InPlace, output: MutatesInput, unroll: 5, operands: 1,
		scalars: []string{"alpha"}, defaults: []float64{0.5}, doc: "x = alpha*x"},
		inPlace1(blas.ScalNDArray[float64]), inPlace1(blas.ScalNDArray[float32]))
	both(entry{name: "copy", namespace: nsBLAS, shape: Map, output: MutatesOutput, unroll: 8, operands: 2,
		doc: "y = x"},
		mapXY(blas.CopyNDArray[float64]), mapXY(blas.CopyNDArray[float32]))
	both(entry{name: "swap", namespace: nsBLAS, shape: Binary, output: MutatesInput, returns: 1, unroll: 3, operands: 2,
		doc: "exchange x and y"},
		mapXY(blas.SwapNDArray[float64]), mapXY(blas.SwapNDArray[float32]))
	both(entry{name: "axpy", namespace: nsBLAS, shape: Binary, output: MutatesOutput, unroll: 4, operands: 2,
		scalars: []string{"alpha"}, defaults: []float64{2}, doc: "y = alpha*x + y"},
		mapXY1(blas.AxpyNDArray[float64]), mapXY1(blas.AxpyNDArray[float32]))
	both(entry{name: "dot", namespace: nsBLAS, shape: Binary, output: Scalar, unroll: 5, operands: 2,
		doc: "sum of x[i]*y[i]"},
		reduceXY(blas.DotNDArray[float64]), reduceXY(blas.DotNDArray[float32]))
	both(entry{name: "asum", namespace: nsBLAS, shape: Reduce, output: Scalar, unroll: 6, operands: 1,
		doc: "sum of |x[i]|"},
		reduce(blas.AsumNDArray[float64]), reduce(blas.AsumNDArray[float32]))
	both(entry{name: "nrm2", namespace: nsBLAS, shape: Reduce, output: Scalar, operands: 1,
		doc: "euclidean norm of x"},
		reduce(blas.Nrm2NDArray[float64]), reduce(blas.Nrm2NDArray[float32]))
	both(entry{name: "iamax", namespace: nsBLAS, shape: Reduce, output: Scalar, operands: 1, empty: -1,
		doc: "index of the first element with the largest |x[i]|"},
		reduceIndex(blas.IamaxNDArray[float64]), reduceIndex(blas.IamaxNDArray[float32]))
	both(entry{name: "rot", namespace: nsBLAS, shape: Binary, output: MutatesInput, returns: 1, operands: 2,
		scalars: []string{"c", "s"}, defaults: []float64{0.6, 0.8}, doc: "apply the plane rotation (c, s) to x and y"},
		rotCall[float64](), rotCall[float32]())
}

func rotCall[T dtypes.GoFloat]() typedCall[T] {
	return func(n int, s []T, v []strided.View[T]) (T, []T) {
		return 0, blas.RotNDArray(n, v[0].Data, v[0].Stride, v[0].Offset, v[1].Data, v[1].Stride, v[1].Offset, s[0], s[1])
	}
}

// summationAlgorithms lists the algorithms registered for each sum, in the order they are listed.
var summationAlgorithms = []ext.Algorithm{ext.ORS, ext.KBN, ext.KBN2, ext.PW}

// sumUnroll returns the unroll factor of the contiguous path of the algorithm when NaNs are not skipped.
func sumUnroll(algo ext.Algorithm) int {
	switch algo {
	case ext.ORS:
		return 6
	case ext.PW:
		return 8
	}
	return 0
}

func registerExt() {
	both(entry{name: "fill", namespace: nsExt, shape: InPlace, output: MutatesInput, unroll: 8, operands: 1,
		scalars: []string{"alpha"}, defaults: []float64{3}, doc: "x[i] = alpha"},
		inPlace1(ext.FillNDArray[float64]), inPlace1(ext.FillNDArray[float32]))
	both(entry{name: "apx", namespace: nsExt, shape: InPlace, output: MutatesInput, unroll: 5, operands: 1,
		scalars: []string{"alpha"}, defaults: []float64{1.5}, doc: "x[i] += alpha"},
		inPlace1(ext.ApxNDArray[float64]), inPlace1(ext.ApxNDArray[float32]))
	both(entry{name: "rev", namespace: nsExt, shape: InPlace, output: MutatesInput, operands: 1,
		doc: "reverse x in place"},
		inPlace(ext.RevNDArray[float64]), inPlace(ext.RevNDArray[float32]))

	both(entry{name: "sum", namespace: nsExt, shape: Reduce, output: Scalar, algorithm: "pw", unroll: 8, operands: 1,
		doc: "sum of x"},
		reduce(ext.SumNDArray[float64]), reduce(ext.SumNDArray[float32]))
	both(entry{name: "nansum", namespace: nsExt, shape: Reduce, output: Scalar, algorithm: "pw", operands: 1,
		doc: "sum of x, ignoring NaNs"},
		reduce(ext.NanSumNDArray[float64]), reduce(ext.NanSumNDArray[float32]))
	both(entry{name: "asumpw", namespace: nsExt, shape: Reduce, output: Scalar, algorithm: "pw", operands: 1,
		doc: "sum of |x[i]| with pairwise summation"},
		reduce(ext.AsumPWNDArray[float64]), reduce(ext.AsumPWNDArray[float32]))
	both(entry{name: "apxsum", namespace: nsExt, shape: Reduce, output: Scalar, algorithm: "kbn", operands: 1,
		scalars: []string{"alpha"}, defaults: []float64{1.5}, doc: "sum of alpha+x[i]"},
		reduce1(ext.ApxSumNDArray[float64]), reduce1(ext.ApxSumNDArray[float32]))
	both(entry{name: "cusum", namespace: nsExt, shape: Map, output: MutatesOutput, algorithm: "kbn", operands: 2,
		scalars: []string{"sum"}, defaults: []float64{0}, doc: "cumulative sum of x, starting from sum"},
		mapXY1(ext.CuSumNDArray[float64]), mapXY1(ext.CuSumNDArray[float32]))

	for _, algo := range summationAlgorithms {
		suffix := algo.String()
		both(entry{name: "sum" + suffix, namespace: nsExt, shape: Reduce, output: Scalar, algorithm: suffix,
			unroll: sumUnroll(algo), operands: 1, doc: "sum of x"},
			reduce(sumBy[float64](algo)), reduce(sumBy[float32](algo)))
		both(entry{name: "nansum" + suffix, namespace: nsExt, shape: Reduce, output: Scalar, algorithm: suffix,
			operands: 1, doc: "sum of x, ignoring NaNs"},
			reduce(nanSumBy[float64](algo)), reduce(nanSumBy[float32](algo)))
		both(entry{name: "apxsum" + suffix, namespace: nsExt, shape: Reduce, output: Scalar, algorithm: suffix,
			unroll: sumUnroll(algo), operands: 1, scalars: []string{"alpha"}, defaults: []float64{1.5},
			doc: "sum of alpha+x[i]"},
			reduce1(apxSumBy[float64](algo)), reduce1(apxSumBy[float32](algo)))
		both(entry{name: "cusum" + suffix, namespace: nsExt, shape: Map, output: MutatesOutput, algorithm: suffix,
			operands: 2, scalars: []string{"sum"}, defaults: []float64{0}, doc: "cumulative sum of x, starting from sum"},
			mapXY1(cuSumBy[float64](algo)), mapXY1(cuSumBy[float32](algo)))
	}

	for _, sort := range []struct {
		suffix   string
		sort64   func(n int, order float64, x []float64, strideX, offsetX int) []float64
		sort32   func(n int, order float32, x []float32, strideX, offsetX int) []float32
		sort2x64 func(n int, order float64, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int) []float64
		sort2x32 func(n int, order float32, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) []float32
	}{
		{"ins", ext.SortInsNDArray[float64], ext.SortInsNDArray[float32], ext.Sort2InsNDArray[float64], ext.Sort2InsNDArray[float32]},
		{"sh", ext.SortShNDArray[float64], ext.SortShNDArray[float32], ext.Sort2ShNDArray[float64], ext.Sort2ShNDArray[float32]},
		{"hp", ext.SortHpNDArray[float64], ext.SortHpNDArray[float32], ext.Sort2HpNDArray[float64], ext.Sort2HpNDArray[float32]},
	} {
		both(entry{name: "sort" + sort.suffix, namespace: nsExt, shape: InPlace, output: MutatesInput, algorithm: sort.suffix,
			operands: 1, scalars: []string{"order"}, defaults: []float64{1}, doc: "sort x in place"},
			inPlace1(sort.sort64), inPlace1(sort.sort32))
		both(entry{name: "sort2" + sort.suffix, namespace: nsExt, shape: Binary, output: MutatesInput, algorithm: sort.suffix,
			operands: 2, scalars: []string{"order"}, defaults: []float64{1}, doc: "sort x in place, permuting y alongside"},
			mapXY1(sort.sort2x64), mapXY1(sort.sort2x32))
	}
}

func sumBy[T dtypes.GoFloat](algo ext.Algorithm) func(n int, x []T, strideX, offsetX int) T {
	return func(n int, x []T, strideX, offsetX int) T {
		return ext.SumByNDArray(algo, n, x, strideX, offsetX)
	}
}

func nanSumBy[T dtypes.GoFloat](algo ext.Algorithm) func(n int, x []T, strideX, offsetX int) T {
	return func(n int, x []T, strideX, offsetX int) T {
		sum, _ := ext.NanNSumByNDArray(algo, n, x, strideX, offsetX)
		return sum
	}
}

func apxSumBy[T dtypes.GoFloat](algo ext.Algorithm) func(n int, alpha T, x []T, strideX, offsetX int) T {
	return func(n int, alpha T, x []T, strideX, offsetX int) T {
		return ext.ApxSumByNDArray(algo, n, alpha, x, strideX, offsetX)
	}
}

func cuSumBy[T dtypes.GoFloat](algo ext.Algorithm) func(n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	return func(n int, sum T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
		return ext.CuSumByNDArray(algo, n, sum, x, strideX, offsetX, y, strideY, offsetY)
	}
}

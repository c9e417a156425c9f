// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/pkg/errors"
)

// typedCall is the calling convention of the registered kernels before they are adapted to float64 operands.
// Depending on the kernel's Output it returns a scalar result, the buffer it mutated or a newly produced one.
type typedCall[T dtypes.GoFloat] func(n int, scalars []T, views []strided.View[T]) (T, []T)

// entry describes a kernel independently of its element type.
type entry struct {
	name, namespace string
	algorithm       string
	shape           Shape
	output          Output
	returns         int
	unroll          int
	operands        int
	results         int
	scalars         []string
	defaults        []float64
	empty           float64
	orderInvariant  bool
	doc             string
}

// register adds the variant of the kernel for T, named with the prefix of T ("d" or "s").
func register[T dtypes.GoFloat](e entry, fn typedCall[T]) {
	if len(e.scalars) != len(e.defaults) {
		exceptions.Panicf("registry: kernel %q has %d scalars but %d defaults", e.name, len(e.scalars), len(e.defaults))
	}
	var zero T
	dtype := dtypes.FromAny(zero)
	returns := e.returns
	if e.output == MutatesOutput {
		returns = e.operands - 1
	}
	k := &Kernel{
		Name:           dtype.Prefix() + e.name,
		Namespace:      e.namespace,
		DType:          dtype,
		Shape:          e.shape,
		Output:         e.output,
		Returns:        returns,
		Algorithm:      e.algorithm,
		Unroll:         e.unroll,
		Operands:       e.operands,
		Results:        e.results,
		Scalars:        e.scalars,
		Defaults:       e.defaults,
		Empty:          e.empty,
		OrderInvariant: e.orderInvariant,
		Doc:            e.doc,
	}
	k.Call = adapt(k, fn)
	add(k)
}

// both registers the float64 and the float32 variants of the kernel.
func both(e entry, f64 typedCall[float64], f32 typedCall[float32]) {
	register(e, f64)
	register(e, f32)
}

// adapt converts the float64 operands to T, runs fn and converts the written buffers back.
// For T == float64 the operands are used directly.
func adapt[T dtypes.GoFloat](k *Kernel, fn typedCall[T]) func(n int, scalars []float64, operands []Operand) []float64 {
	return func(n int, scalars []float64, operands []Operand) []float64 {
		if len(operands) != k.Operands {
			strided.Panicf(k.Name, "operands", "takes %d operands, got %d", k.Operands, len(operands))
		}
		if scalars == nil {
			scalars = k.Defaults
		}
		if len(scalars) != len(k.Scalars) {
			strided.Panicf(k.Name, "scalars", "takes %d scalars %v, got %d", len(k.Scalars), k.Scalars, len(scalars))
		}
		typedScalars := make([]T, len(scalars))
		for i, s := range scalars {
			typedScalars[i] = T(s)
		}
		views := make([]strided.View[T], len(operands))
		for i, op := range operands {
			views[i] = strided.View[T]{Data: fromFloat64[T](op.Data), Stride: op.Stride, Offset: op.Offset}
		}

		result, produced := fn(n, typedScalars, views)
		switch k.Output {
		case Scalar:
			return []float64{float64(result)}
		case CopyProducing:
			for i, v := range views {
				if strided.Overlaps(produced, v.Data) {
					panic(errors.Wrapf(ErrContract, "copy-producing kernel %q returned a buffer sharing memory with operand %d",
						k.Name, i))
				}
			}
			return toFloat64(produced)
		case MutatesInput, MutatesOutput:
			if !strided.SameBuffer(produced, views[k.Returns].Data) {
				panic(errors.Wrapf(ErrContract, "kernel %q didn't return the buffer of its operand %d", k.Name, k.Returns))
			}
			if k.Output == MutatesInput {
				for i := range operands {
					copyBack(operands[i].Data, views[i].Data)
				}
			} else {
				last := len(operands) - 1
				copyBack(operands[last].Data, views[last].Data)
			}
			return operands[k.Returns].Data
		}
		exceptions.Panicf("registry: kernel %q has unknown output kind %s", k.Name, k.Output)
		return nil
	}
}

func fromFloat64[T dtypes.GoFloat](data []float64) []T {
	if typed, ok := any(data).([]T); ok {
		return typed
	}
	out := make([]T, len(data))
	for i, v := range data {
		out[i] = T(v)
	}
	return out
}

func toFloat64[T dtypes.GoFloat](data []T) []float64 {
	if f64, ok := any(data).([]float64); ok {
		return f64
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// copyBack writes src into dst, unless src already is dst.
func copyBack[T dtypes.GoFloat](dst []float64, src []T) {
	if _, ok := any(src).([]float64); ok {
		return
	}
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// maskOf converts a float operand to a mask: non-zero values mark masked elements.
func maskOf[T dtypes.GoFloat](data []T) []uint8 {
	mask := make([]uint8, len(data))
	for i, v := range data {
		if v != 0 {
			mask[i] = 1
		}
	}
	return mask
}

// The functions below adapt each kernel signature to typedCall.

func reduce[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int) T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return fn(n, v[0].Data, v[0].Stride, v[0].Offset), nil
	}
}

func reduceIndex[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int) int) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return T(fn(n, v[0].Data, v[0].Stride, v[0].Offset)), nil
	}
}

func reduce1[T dtypes.GoFloat](fn func(n int, s T, x []T, strideX, offsetX int) T) typedCall[T] {
	return func(n int, s []T, v []strided.View[T]) (T, []T) {
		return fn(n, s[0], v[0].Data, v[0].Stride, v[0].Offset), nil
	}
}

func reduce2[T dtypes.GoFloat](fn func(n int, s0, s1 T, x []T, strideX, offsetX int) T) typedCall[T] {
	return func(n int, s []T, v []strided.View[T]) (T, []T) {
		return fn(n, s[0], s[1], v[0].Data, v[0].Stride, v[0].Offset), nil
	}
}

func reduceMasked[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return fn(n, v[0].Data, v[0].Stride, v[0].Offset, maskOf(v[1].Data), v[1].Stride, v[1].Offset), nil
	}
}

func reduceXY[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return fn(n, v[0].Data, v[0].Stride, v[0].Offset, v[1].Data, v[1].Stride, v[1].Offset), nil
	}
}

func mapXY[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, v[0].Data, v[0].Stride, v[0].Offset, v[1].Data, v[1].Stride, v[1].Offset)
	}
}

func mapXY1[T dtypes.GoFloat](fn func(n int, s T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T) typedCall[T] {
	return func(n int, s []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, s[0], v[0].Data, v[0].Stride, v[0].Offset, v[1].Data, v[1].Stride, v[1].Offset)
	}
}

func mapXYZ[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int,
	z []T, strideZ, offsetZ int) []T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, v[0].Data, v[0].Stride, v[0].Offset, v[1].Data, v[1].Stride, v[1].Offset,
			v[2].Data, v[2].Stride, v[2].Offset)
	}
}

func inPlace[T dtypes.GoFloat](fn func(n int, x []T, strideX, offsetX int) []T) typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, v[0].Data, v[0].Stride, v[0].Offset)
	}
}

func inPlace1[T dtypes.GoFloat](fn func(n int, s T, x []T, strideX, offsetX int) []T) typedCall[T] {
	return func(n int, s []T, v []strided.View[T]) (T, []T) {
		return 0, fn(n, s[0], v[0].Data, v[0].Stride, v[0].Offset)
	}
}

func tuple1[T dtypes.GoFloat](fn func(n int, s T, x []T, strideX, offsetX int, out []T, strideOut, offsetOut int) []T) typedCall[T] {
	return mapXY1(fn)
}

func gather[T dtypes.GoFloat]() typedCall[T] {
	return func(n int, _ []T, v []strided.View[T]) (T, []T) {
		return 0, v[0].ToSlice(n)
	}
}

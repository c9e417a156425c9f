// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package strided holds the building blocks shared by all strided kernels: the stride/offset resolver,
// argument validation, the View type and the generic loops (unrolled for contiguous data).
//
// A strided view of a buffer is the triple (buffer, stride, offset) plus an element count N: it visits
// the indices offset, offset+stride, ..., offset+(N-1)*stride. The stride is signed: a negative stride
// walks the buffer backwards and a zero stride visits the same cell N times.
//
// Every kernel comes in two forms:
//
//   - The convention form, e.g. `Unary(n, x, strideX, y, strideY, fn)`, which derives the starting index
//     of each buffer from its stride with Offset: 0 for non-negative strides and (1-N)*stride for
//     negative ones, so the logical sequence is the buffer read backwards.
//   - The ndarray form, e.g. `UnaryNDArray(n, x, strideX, offsetX, y, strideY, offsetY, fn)`, which takes
//     the index of the first logical element explicitly, to operate on sub-views without copying.
//
// Both forms share the same loop. For n <= 0 no buffer is touched.
package strided

// Offset returns the index of the first logical element of a view of n elements with the given stride,
// when the view starts at the beginning of the buffer: 0 if stride >= 0, (1-n)*stride otherwise.
func Offset(n, stride int) int {
	if stride > 0 || n <= 0 {
		return 0
	}
	return (1 - n) * stride
}

// StartIndex returns the physical index of the first logical element of a view of n elements with the given
// stride over the part of the buffer starting at base.
//
// Iterating i = 0..n-1 from StartIndex with ix += stride visits the buffer in the intended logical order,
// regardless of the sign of the stride.
func StartIndex(n, stride, base int) int {
	return base + Offset(n, stride)
}

// LastIndex returns the physical index of the last logical element (the n-th) of the view.
// For n <= 0 it returns offset.
func LastIndex(n, stride, offset int) int {
	if n <= 0 {
		return offset
	}
	return offset + (n-1)*stride
}

// MinMaxIndex returns the lowest and highest physical indices accessed by a view of n elements.
// For n <= 0 it returns (offset, offset).
func MinMaxIndex(n, stride, offset int) (lo, hi int) {
	last := LastIndex(n, stride, offset)
	if last < offset {
		return last, offset
	}
	return offset, last
}

// BufferLength returns the minimum buffer length needed by a view of n elements with the given stride
// in its convention form (starting at index 0 of the buffer).
func BufferLength(n, stride int) int {
	if n <= 0 {
		return 0
	}
	if stride < 0 {
		stride = -stride
	}
	return (n-1)*stride + 1
}

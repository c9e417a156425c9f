// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

// This file implements the generic strided loops.
//
// All loops have the same shape: if every stride involved is 1 they take the unrolled fast path, which
// first runs the n%M leftover elements and then M elements per iteration; otherwise they run one
// increment-by-stride loop. Both paths visit the elements in the same order, so results are identical.

// loopUnroll is the unroll factor of the generic loops.
const loopUnroll = 8

// NullaryNDArray fills the view of x with the values returned by successive calls to fn.
func NullaryNDArray[T any](n int, x []T, strideX, offsetX int, fn func() T) []T {
	if n <= 0 {
		return x
	}
	CheckVector("Nullary", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % loopUnroll
		for i := 0; i < m; i++ {
			x[ix+i] = fn()
		}
		for i := m; i < n; i += loopUnroll {
			xs := x[ix+i : ix+i+loopUnroll]
			xs[0] = fn()
			xs[1] = fn()
			xs[2] = fn()
			xs[3] = fn()
			xs[4] = fn()
			xs[5] = fn()
			xs[6] = fn()
			xs[7] = fn()
		}
		return x
	}
	for i := 0; i < n; i++ {
		x[ix] = fn()
		ix += strideX
	}
	return x
}

// Nullary is the convention form of NullaryNDArray.
func Nullary[T any](n int, x []T, strideX int, fn func() T) []T {
	return NullaryNDArray(n, x, strideX, Offset(n, strideX), fn)
}

// UnaryNDArray sets y[i] = fn(x[i]) for each logical element i. It returns y.
func UnaryNDArray[T, U any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int, fn func(T) U) []U {
	if n <= 0 {
		return y
	}
	CheckVector("Unary", "x", n, len(x), strideX, offsetX)
	CheckVector("Unary", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	if strideX == 1 && strideY == 1 {
		m := n % loopUnroll
		for i := 0; i < m; i++ {
			y[iy+i] = fn(x[ix+i])
		}
		for i := m; i < n; i += loopUnroll {
			xs := x[ix+i : ix+i+loopUnroll]
			ys := y[iy+i : iy+i+loopUnroll]
			ys[0] = fn(xs[0])
			ys[1] = fn(xs[1])
			ys[2] = fn(xs[2])
			ys[3] = fn(xs[3])
			ys[4] = fn(xs[4])
			ys[5] = fn(xs[5])
			ys[6] = fn(xs[6])
			ys[7] = fn(xs[7])
		}
		return y
	}
	for i := 0; i < n; i++ {
		y[iy] = fn(x[ix])
		ix += strideX
		iy += strideY
	}
	return y
}

// Unary is the convention form of UnaryNDArray.
func Unary[T, U any](n int, x []T, strideX int, y []U, strideY int, fn func(T) U) []U {
	return UnaryNDArray(n, x, strideX, Offset(n, strideX), y, strideY, Offset(n, strideY), fn)
}

// InPlaceNDArray sets x[i] = fn(x[i]) for each logical element i. It returns x.
func InPlaceNDArray[T any](n int, x []T, strideX, offsetX int, fn func(T) T) []T {
	if n <= 0 {
		return x
	}
	CheckVector("InPlace", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % loopUnroll
		for i := 0; i < m; i++ {
			x[ix+i] = fn(x[ix+i])
		}
		for i := m; i < n; i += loopUnroll {
			xs := x[ix+i : ix+i+loopUnroll]
			xs[0] = fn(xs[0])
			xs[1] = fn(xs[1])
			xs[2] = fn(xs[2])
			xs[3] = fn(xs[3])
			xs[4] = fn(xs[4])
			xs[5] = fn(xs[5])
			xs[6] = fn(xs[6])
			xs[7] = fn(xs[7])
		}
		return x
	}
	for i := 0; i < n; i++ {
		x[ix] = fn(x[ix])
		ix += strideX
	}
	return x
}

// InPlace is the convention form of InPlaceNDArray.
func InPlace[T any](n int, x []T, strideX int, fn func(T) T) []T {
	return InPlaceNDArray(n, x, strideX, Offset(n, strideX), fn)
}

// BinaryNDArray sets z[i] = fn(x[i], y[i]) for each logical element i. It returns z.
func BinaryNDArray[T, U, V any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	z []V, strideZ, offsetZ int, fn func(T, U) V) []V {
	if n <= 0 {
		return z
	}
	CheckVector("Binary", "x", n, len(x), strideX, offsetX)
	CheckVector("Binary", "y", n, len(y), strideY, offsetY)
	CheckVector("Binary", "z", n, len(z), strideZ, offsetZ)
	ix, iy, iz := offsetX, offsetY, offsetZ
	if strideX == 1 && strideY == 1 && strideZ == 1 {
		m := n % loopUnroll
		for i := 0; i < m; i++ {
			z[iz+i] = fn(x[ix+i], y[iy+i])
		}
		for i := m; i < n; i += loopUnroll {
			xs := x[ix+i : ix+i+loopUnroll]
			ys := y[iy+i : iy+i+loopUnroll]
			zs := z[iz+i : iz+i+loopUnroll]
			zs[0] = fn(xs[0], ys[0])
			zs[1] = fn(xs[1], ys[1])
			zs[2] = fn(xs[2], ys[2])
			zs[3] = fn(xs[3], ys[3])
			zs[4] = fn(xs[4], ys[4])
			zs[5] = fn(xs[5], ys[5])
			zs[6] = fn(xs[6], ys[6])
			zs[7] = fn(xs[7], ys[7])
		}
		return z
	}
	for i := 0; i < n; i++ {
		z[iz] = fn(x[ix], y[iy])
		ix += strideX
		iy += strideY
		iz += strideZ
	}
	return z
}

// Binary is the convention form of BinaryNDArray.
func Binary[T, U, V any](n int, x []T, strideX int, y []U, strideY int, z []V, strideZ int, fn func(T, U) V) []V {
	return BinaryNDArray(n, x, strideX, Offset(n, strideX), y, strideY, Offset(n, strideY),
		z, strideZ, Offset(n, strideZ), fn)
}

// TernaryNDArray sets out[i] = fn(x[i], y[i], z[i]) for each logical element i. It returns out.
//
// Ternary kernels (fused multiply-add and the like) are rare enough that they don't get an unrolled path.
func TernaryNDArray[T, U, V, W any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	z []V, strideZ, offsetZ int, out []W, strideOut, offsetOut int, fn func(T, U, V) W) []W {
	if n <= 0 {
		return out
	}
	CheckVector("Ternary", "x", n, len(x), strideX, offsetX)
	CheckVector("Ternary", "y", n, len(y), strideY, offsetY)
	CheckVector("Ternary", "z", n, len(z), strideZ, offsetZ)
	CheckVector("Ternary", "out", n, len(out), strideOut, offsetOut)
	ix, iy, iz, io := offsetX, offsetY, offsetZ, offsetOut
	for i := 0; i < n; i++ {
		out[io] = fn(x[ix], y[iy], z[iz])
		ix += strideX
		iy += strideY
		iz += strideZ
		io += strideOut
	}
	return out
}

// Ternary is the convention form of TernaryNDArray.
func Ternary[T, U, V, W any](n int, x []T, strideX int, y []U, strideY int, z []V, strideZ int,
	out []W, strideOut int, fn func(T, U, V) W) []W {
	return TernaryNDArray(n, x, strideX, Offset(n, strideX), y, strideY, Offset(n, strideY),
		z, strideZ, Offset(n, strideZ), out, strideOut, Offset(n, strideOut), fn)
}

// MaskedUnaryNDArray sets y[i] = fn(x[i]) for each logical element i whose mask value is 0.
// A non-zero mask value marks the element as masked: y[i] is left untouched. It returns y.
func MaskedUnaryNDArray[T, U any](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int,
	y []U, strideY, offsetY int, fn func(T) U) []U {
	if n <= 0 {
		return y
	}
	CheckVector("MaskedUnary", "x", n, len(x), strideX, offsetX)
	CheckVector("MaskedUnary", "mask", n, len(mask), strideMask, offsetMask)
	CheckVector("MaskedUnary", "y", n, len(y), strideY, offsetY)
	ix, im, iy := offsetX, offsetMask, offsetY
	for i := 0; i < n; i++ {
		if mask[im] == 0 {
			y[iy] = fn(x[ix])
		}
		ix += strideX
		im += strideMask
		iy += strideY
	}
	return y
}

// MaskedUnary is the convention form of MaskedUnaryNDArray.
func MaskedUnary[T, U any](n int, x []T, strideX int, mask []uint8, strideMask int, y []U, strideY int, fn func(T) U) []U {
	return MaskedUnaryNDArray(n, x, strideX, Offset(n, strideX), mask, strideMask, Offset(n, strideMask),
		y, strideY, Offset(n, strideY), fn)
}

// UnaryByNDArray calls fn(x[i], i) for each logical element i and, if it returns ok, stores the value in y[i].
// When fn returns false y[i] is left untouched. It returns y.
func UnaryByNDArray[T, U any](n int, x []T, strideX, offsetX int, y []U, strideY, offsetY int,
	fn func(value T, i int) (U, bool)) []U {
	if n <= 0 {
		return y
	}
	CheckVector("UnaryBy", "x", n, len(x), strideX, offsetX)
	CheckVector("UnaryBy", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		if v, ok := fn(x[ix], i); ok {
			y[iy] = v
		}
		ix += strideX
		iy += strideY
	}
	return y
}

// UnaryBy is the convention form of UnaryByNDArray.
func UnaryBy[T, U any](n int, x []T, strideX int, y []U, strideY int, fn func(value T, i int) (U, bool)) []U {
	return UnaryByNDArray(n, x, strideX, Offset(n, strideX), y, strideY, Offset(n, strideY), fn)
}

// FoldNDArray reduces the view of x with fn, starting from init, in logical order.
// For n <= 0 it returns init.
func FoldNDArray[T, A any](n int, x []T, strideX, offsetX int, init A, fn func(acc A, value T) A) A {
	acc := init
	if n <= 0 {
		return acc
	}
	CheckVector("Fold", "x", n, len(x), strideX, offsetX)
	ix := offsetX
	if strideX == 1 {
		m := n % loopUnroll
		for i := 0; i < m; i++ {
			acc = fn(acc, x[ix+i])
		}
		for i := m; i < n; i += loopUnroll {
			xs := x[ix+i : ix+i+loopUnroll]
			acc = fn(acc, xs[0])
			acc = fn(acc, xs[1])
			acc = fn(acc, xs[2])
			acc = fn(acc, xs[3])
			acc = fn(acc, xs[4])
			acc = fn(acc, xs[5])
			acc = fn(acc, xs[6])
			acc = fn(acc, xs[7])
		}
		return acc
	}
	for i := 0; i < n; i++ {
		acc = fn(acc, x[ix])
		ix += strideX
	}
	return acc
}

// Fold is the convention form of FoldNDArray.
func Fold[T, A any](n int, x []T, strideX int, init A, fn func(acc A, value T) A) A {
	return FoldNDArray(n, x, strideX, Offset(n, strideX), init, fn)
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package stats implements statistical reductions over strided buffers: extremes, ranges, means,
// variances and standard deviations, along with their NaN-skipping, masked and cumulative forms.
//
// Reductions over no elements (n <= 0) return NaN. The Nan* kernels skip NaN elements and return NaN only if
// no element is left. Max prefers +0 over -0, and Min prefers -0 over +0.
//
// Like the other kernel packages, every kernel Foo has a convention form and a FooNDArray form with explicit
// offsets; invalid views panic with a *strided.ArgumentError.
package stats

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

func nan[T dtypes.GoFloat]() T {
	return T(math.NaN())
}

func isNaN[T dtypes.GoFloat](v T) bool {
	return v != v
}

func abs[T dtypes.GoFloat](v T) T {
	return T(math.Abs(float64(v)))
}

// greater reports whether v should replace the current maximum m.
func greater[T dtypes.GoFloat](v, m T) bool {
	return v > m || (v == m && v == 0 && !math.Signbit(float64(v)))
}

// less reports whether v should replace the current minimum m.
func less[T dtypes.GoFloat](v, m T) bool {
	return v < m || (v == m && v == 0 && math.Signbit(float64(v)))
}

// extremum returns the max (or min if useMin) of the view, propagating NaN.
func extremum[T dtypes.GoFloat](op string, useMin, useAbs bool, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	ix := offsetX
	m := x[ix]
	if useAbs {
		m = abs(m)
	}
	if n == 1 || strideX == 0 || isNaN(m) {
		return m
	}
	for i := 1; i < n; i++ {
		ix += strideX
		v := x[ix]
		if useAbs {
			v = abs(v)
		}
		if isNaN(v) {
			return v
		}
		if useMin {
			if less(v, m) {
				m = v
			}
		} else if greater(v, m) {
			m = v
		}
	}
	return m
}

// nanExtremum returns the max (or min if useMin) of the non-NaN elements of the view.
func nanExtremum[T dtypes.GoFloat](op string, useMin, useAbs bool, n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if strideX == 0 {
		n = 1
	}
	ix := offsetX
	i := 0
	var m T
	for ; i < n; i++ {
		m = x[ix]
		ix += strideX
		if !isNaN(m) {
			break
		}
	}
	if i == n {
		return nan[T]()
	}
	if useAbs {
		m = abs(m)
	}
	for i++; i < n; i++ {
		v := x[ix]
		ix += strideX
		if isNaN(v) {
			continue
		}
		if useAbs {
			v = abs(v)
		}
		if useMin {
			if less(v, m) {
				m = v
			}
		} else if greater(v, m) {
			m = v
		}
	}
	return m
}

// MaxNDArray returns the maximum of x. NaN propagates.
func MaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return extremum("max", false, false, n, x, strideX, offsetX)
}

// Max returns the maximum of x. NaN propagates.
func Max[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MinNDArray returns the minimum of x. NaN propagates.
func MinNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return extremum("min", true, false, n, x, strideX, offsetX)
}

// Min returns the minimum of x. NaN propagates.
func Min[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MinNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MaxAbsNDArray returns the maximum absolute value of x.
func MaxAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return extremum("maxabs", false, true, n, x, strideX, offsetX)
}

// MaxAbs returns the maximum absolute value of x.
func MaxAbs[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MaxAbsNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MinAbsNDArray returns the minimum absolute value of x.
func MinAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return extremum("minabs", true, true, n, x, strideX, offsetX)
}

// MinAbs returns the minimum absolute value of x.
func MinAbs[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MinAbsNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// RangeNDArray returns max(x) - min(x).
func RangeNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return MaxNDArray(n, x, strideX, offsetX) - MinNDArray(n, x, strideX, offsetX)
}

// Range returns max(x) - min(x).
func Range[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return RangeNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MidRangeNDArray returns the mean of max(x) and min(x).
func MidRangeNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return (MaxNDArray(n, x, strideX, offsetX) + MinNDArray(n, x, strideX, offsetX)) / 2
}

// MidRange returns the mean of max(x) and min(x).
func MidRange[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MidRangeNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMaxNDArray returns the maximum of the non-NaN elements of x.
func NanMaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanExtremum("nanmax", false, false, n, x, strideX, offsetX)
}

// NanMax returns the maximum of the non-NaN elements of x.
func NanMax[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMaxNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMinNDArray returns the minimum of the non-NaN elements of x.
func NanMinNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanExtremum("nanmin", true, false, n, x, strideX, offsetX)
}

// NanMin returns the minimum of the non-NaN elements of x.
func NanMin[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMinNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMaxAbsNDArray returns the maximum absolute value of the non-NaN elements of x.
func NanMaxAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanExtremum("nanmaxabs", false, true, n, x, strideX, offsetX)
}

// NanMaxAbs returns the maximum absolute value of the non-NaN elements of x.
func NanMaxAbs[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMaxAbsNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanMinAbsNDArray returns the minimum absolute value of the non-NaN elements of x.
func NanMinAbsNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return nanExtremum("nanminabs", true, true, n, x, strideX, offsetX)
}

// NanMinAbs returns the minimum absolute value of the non-NaN elements of x.
func NanMinAbs[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanMinAbsNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// NanRangeNDArray returns the range of the non-NaN elements of x.
func NanRangeNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	return NanMaxNDArray(n, x, strideX, offsetX) - NanMinNDArray(n, x, strideX, offsetX)
}

// NanRange returns the range of the non-NaN elements of x.
func NanRange[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return NanRangeNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MaxByNDArray returns the maximum of fn(x[i], i) over the elements for which fn returns true.
// It returns NaN if there are none. NaN values returned by fn propagate.
func MaxByNDArray[T any, U dtypes.GoFloat](n int, x []T, strideX, offsetX int, fn func(v T, i int) (U, bool)) U {
	return extremumBy("maxby", false, n, x, strideX, offsetX, fn)
}

// MaxBy returns the maximum of fn(x[i], i) over the elements for which fn returns true.
func MaxBy[T any, U dtypes.GoFloat](n int, x []T, strideX int, fn func(v T, i int) (U, bool)) U {
	return MaxByNDArray(n, x, strideX, strided.Offset(n, strideX), fn)
}

// MinByNDArray returns the minimum of fn(x[i], i) over the elements for which fn returns true.
func MinByNDArray[T any, U dtypes.GoFloat](n int, x []T, strideX, offsetX int, fn func(v T, i int) (U, bool)) U {
	return extremumBy("minby", true, n, x, strideX, offsetX, fn)
}

// MinBy returns the minimum of fn(x[i], i) over the elements for which fn returns true.
func MinBy[T any, U dtypes.GoFloat](n int, x []T, strideX int, fn func(v T, i int) (U, bool)) U {
	return MinByNDArray(n, x, strideX, strided.Offset(n, strideX), fn)
}

func extremumBy[T any, U dtypes.GoFloat](op string, useMin bool, n int, x []T, strideX, offsetX int,
	fn func(v T, i int) (U, bool)) U {
	if n <= 0 {
		return nan[U]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	found := false
	var m U
	ix := offsetX
	for i := 0; i < n; i++ {
		v, ok := fn(x[ix], i)
		ix += strideX
		if !ok {
			continue
		}
		if isNaN(v) {
			return v
		}
		switch {
		case !found:
			m, found = v, true
		case useMin && less(v, m):
			m = v
		case !useMin && greater(v, m):
			m = v
		}
	}
	if !found {
		return nan[U]()
	}
	return m
}

// Sorted-input statistics: x must be sorted, in either increasing or decreasing order.

// MaxSortedNDArray returns the maximum of the sorted x, reading only its first and last elements.
func MaxSortedNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	first, last, ok := sortedEnds("maxsorted", n, x, strideX, offsetX)
	if !ok {
		return nan[T]()
	}
	if greater(last, first) {
		return last
	}
	return first
}

// MaxSorted returns the maximum of the sorted x.
func MaxSorted[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MaxSortedNDArray(n, x, strideX, strided.Offset(n, strideX))
}

// MinSortedNDArray returns the minimum of the sorted x, reading only its first and last elements.
func MinSortedNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	first, last, ok := sortedEnds("minsorted", n, x, strideX, offsetX)
	if !ok {
		return nan[T]()
	}
	if less(last, first) {
		return last
	}
	return first
}

// MinSorted returns the minimum of the sorted x.
func MinSorted[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MinSortedNDArray(n, x, strideX, strided.Offset(n, strideX))
}

func sortedEnds[T dtypes.GoFloat](op string, n int, x []T, strideX, offsetX int) (first, last T, ok bool) {
	if n <= 0 {
		return
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	first, last = x[offsetX], x[strided.LastIndex(n, strideX, offsetX)]
	if isNaN(first) || isNaN(last) {
		return first, last, false
	}
	return first, last, true
}

// MedianSortedNDArray returns the median of the sorted x: its middle element, or the mean of the two
// middle elements if n is even.
func MedianSortedNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector("mediansorted", "x", n, len(x), strideX, offsetX)
	mid := n / 2
	if n%2 == 1 {
		return x[offsetX+mid*strideX]
	}
	a, b := x[offsetX+(mid-1)*strideX], x[offsetX+mid*strideX]
	return (a + b) / 2
}

// MedianSorted returns the median of the sorted x.
func MedianSorted[T dtypes.GoFloat](n int, x []T, strideX int) T {
	return MedianSortedNDArray(n, x, strideX, strided.Offset(n, strideX))
}

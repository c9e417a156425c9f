// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// maskedExtremum returns the max (or min if useMin) of the elements of x whose mask value is 0.
// If skipNaN NaN elements are ignored, otherwise they propagate.
func maskedExtremum[T dtypes.GoFloat](op string, useMin, skipNaN bool, n int, x []T, strideX, offsetX int,
	mask []uint8, strideMask, offsetMask int) T {
	if n <= 0 {
		return nan[T]()
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	strided.CheckVector(op, "mask", n, len(mask), strideMask, offsetMask)
	found := false
	var m T
	ix, im := offsetX, offsetMask
	for i := 0; i < n; i++ {
		v, masked := x[ix], mask[im] != 0
		ix += strideX
		im += strideMask
		if masked {
			continue
		}
		if isNaN(v) {
			if skipNaN {
				continue
			}
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
		return nan[T]()
	}
	return m
}

// MskMaxNDArray returns the maximum of the elements of x whose mask value is 0.
// It returns NaN if every element is masked.
func MskMaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return maskedExtremum("mskmax", false, false, n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// MskMax returns the maximum of the elements of x whose mask value is 0.
func MskMax[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return MskMaxNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

// MskMinNDArray returns the minimum of the elements of x whose mask value is 0.
func MskMinNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return maskedExtremum("mskmin", true, false, n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// MskMin returns the minimum of the elements of x whose mask value is 0.
func MskMin[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return MskMinNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

// MskRangeNDArray returns the range of the elements of x whose mask value is 0.
func MskRangeNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return MskMaxNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask) -
		MskMinNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// MskRange returns the range of the elements of x whose mask value is 0.
func MskRange[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return MskRangeNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

func NanMskMaxNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return maskedExtremum("nanmskmax", false, true, n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// NanMskMax returns the maximum of the non-NaN elements of x whose mask value is 0.
func NanMskMax[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return NanMskMaxNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

func NanMskMinNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return maskedExtremum("nanmskmin", true, true, n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// NanMskMin returns the minimum of the non-NaN elements of x whose mask value is 0.
func NanMskMin[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return NanMskMinNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

func NanMskRangeNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) T {
	return NanMskMaxNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask) -
		NanMskMinNDArray(n, x, strideX, offsetX, mask, strideMask, offsetMask)
}

// NanMskRange returns the range of the non-NaN elements of x whose mask value is 0.
func NanMskRange[T dtypes.GoFloat](n int, x []T, strideX int, mask []uint8, strideMask int) T {
	return NanMskRangeNDArray(n, x, strideX, strided.Offset(n, strideX), mask, strideMask, strided.Offset(n, strideMask))
}

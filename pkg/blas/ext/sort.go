// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ext

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// The sort kernels sort x in place, in increasing order if order > 0 and in decreasing order if order < 0;
// order == 0 and a zero stride leave x untouched. NaNs sort last in increasing order (first in decreasing
// order) and -0 sorts before +0.
//
// The Sort2 variants apply the same permutation to the companion buffer y.

// ciuraGaps are the gaps used by the shell sort.
var ciuraGaps = []int{701, 301, 132, 57, 23, 10, 4, 1}

// before is the strict total order used by the sorts.
func before[T dtypes.GoFloat](a, b T) bool {
	if a != a {
		return false
	}
	if b != b {
		return true
	}
	if a < b {
		return true
	}
	if a == 0 && b == 0 {
		return math.Signbit(float64(a)) && !math.Signbit(float64(b))
	}
	return false
}

// sortView is the pair of views being sorted; y may be nil.
type sortView[T dtypes.GoFloat] struct {
	x                []T
	strideX, offsetX int
	y                []T
	strideY, offsetY int
}

func (v *sortView[T]) at(i int) T {
	return v.x[v.offsetX+i*v.strideX]
}

func (v *sortView[T]) swap(i, j int) {
	ix, jx := v.offsetX+i*v.strideX, v.offsetX+j*v.strideX
	v.x[ix], v.x[jx] = v.x[jx], v.x[ix]
	if v.y != nil {
		iy, jy := v.offsetY+i*v.strideY, v.offsetY+j*v.strideY
		v.y[iy], v.y[jy] = v.y[jy], v.y[iy]
	}
}

// move copies element i onto element j.
func (v *sortView[T]) move(i, j int) {
	v.x[v.offsetX+j*v.strideX] = v.x[v.offsetX+i*v.strideX]
	if v.y != nil {
		v.y[v.offsetY+j*v.strideY] = v.y[v.offsetY+i*v.strideY]
	}
}

func (v *sortView[T]) get(i int) (T, T) {
	var w T
	if v.y != nil {
		w = v.y[v.offsetY+i*v.strideY]
	}
	return v.x[v.offsetX+i*v.strideX], w
}

func (v *sortView[T]) set(i int, xv, yv T) {
	v.x[v.offsetX+i*v.strideX] = xv
	if v.y != nil {
		v.y[v.offsetY+i*v.strideY] = yv
	}
}

// newSortView validates the arguments and returns the view to sort in increasing order, or nil if there is
// nothing to do. Decreasing order is an increasing sort of the reversed views.
func newSortView[T dtypes.GoFloat](op string, n int, order T, x []T, strideX, offsetX int,
	y []T, strideY, offsetY int, withY bool) *sortView[T] {
	if n <= 0 {
		return nil
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if withY {
		strided.CheckVector(op, "y", n, len(y), strideY, offsetY)
	}
	if order == 0 || order != order || strideX == 0 {
		return nil
	}
	if order < 0 {
		offsetX = strided.LastIndex(n, strideX, offsetX)
		strideX = -strideX
		if withY {
			offsetY = strided.LastIndex(n, strideY, offsetY)
			strideY = -strideY
		}
	}
	v := &sortView[T]{x: x, strideX: strideX, offsetX: offsetX}
	if withY {
		v.y, v.strideY, v.offsetY = y, strideY, offsetY
	}
	return v
}

func insertionSort[T dtypes.GoFloat](n int, v *sortView[T]) {
	for i := 1; i < n; i++ {
		xv, yv := v.get(i)
		j := i - 1
		for ; j >= 0 && before(xv, v.at(j)); j-- {
			v.move(j, j+1)
		}
		v.set(j+1, xv, yv)
	}
}

func shellSort[T dtypes.GoFloat](n int, v *sortView[T]) {
	for _, gap := range ciuraGaps {
		if gap >= n {
			continue
		}
		for i := gap; i < n; i++ {
			xv, yv := v.get(i)
			j := i
			for ; j >= gap && before(xv, v.at(j-gap)); j -= gap {
				v.move(j-gap, j)
			}
			v.set(j, xv, yv)
		}
	}
}

func heapSort[T dtypes.GoFloat](n int, v *sortView[T]) {
	siftDown := func(root, end int) {
		for {
			child := 2*root + 1
			if child >= end {
				return
			}
			if child+1 < end && before(v.at(child), v.at(child+1)) {
				child++
			}
			if !before(v.at(root), v.at(child)) {
				return
			}
			v.swap(root, child)
			root = child
		}
	}
	for start := n/2 - 1; start >= 0; start-- {
		siftDown(start, n)
	}
	for end := n - 1; end > 0; end-- {
		v.swap(0, end)
		siftDown(0, end)
	}
}

// SortInsNDArray sorts x in place using insertion sort (stable) and returns x.
func SortInsNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int) []T {
	if v := newSortView("sortins", n, order, x, strideX, offsetX, nil, 0, 0, false); v != nil {
		insertionSort(n, v)
	}
	return x
}

// SortIns sorts x in place using insertion sort (stable) and returns x.
func SortIns[T dtypes.GoFloat](n int, order T, x []T, strideX int) []T {
	return SortInsNDArray(n, order, x, strideX, strided.Offset(n, strideX))
}

// SortShNDArray sorts x in place using shell sort with Ciura's gap sequence and returns x.
func SortShNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int) []T {
	if v := newSortView("sortsh", n, order, x, strideX, offsetX, nil, 0, 0, false); v != nil {
		shellSort(n, v)
	}
	return x
}

// SortSh sorts x in place using shell sort and returns x.
func SortSh[T dtypes.GoFloat](n int, order T, x []T, strideX int) []T {
	return SortShNDArray(n, order, x, strideX, strided.Offset(n, strideX))
}

// SortHpNDArray sorts x in place using heap sort and returns x.
func SortHpNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int) []T {
	if v := newSortView("sorthp", n, order, x, strideX, offsetX, nil, 0, 0, false); v != nil {
		heapSort(n, v)
	}
	return x
}

// SortHp sorts x in place using heap sort and returns x.
func SortHp[T dtypes.GoFloat](n int, order T, x []T, strideX int) []T {
	return SortHpNDArray(n, order, x, strideX, strided.Offset(n, strideX))
}

// Sort2InsNDArray sorts x in place using insertion sort, applying the same permutation to y. It returns x.
func Sort2InsNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if v := newSortView("sort2ins", n, order, x, strideX, offsetX, y, strideY, offsetY, true); v != nil {
		insertionSort(n, v)
	}
	return x
}

// Sort2Ins sorts x in place using insertion sort, applying the same permutation to y. It returns x.
func Sort2Ins[T dtypes.GoFloat](n int, order T, x []T, strideX int, y []T, strideY int) []T {
	return Sort2InsNDArray(n, order, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// Sort2ShNDArray sorts x in place using shell sort, applying the same permutation to y. It returns x.
func Sort2ShNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if v := newSortView("sort2sh", n, order, x, strideX, offsetX, y, strideY, offsetY, true); v != nil {
		shellSort(n, v)
	}
	return x
}

// Sort2Sh sorts x in place using shell sort, applying the same permutation to y. It returns x.
func Sort2Sh[T dtypes.GoFloat](n int, order T, x []T, strideX int, y []T, strideY int) []T {
	return Sort2ShNDArray(n, order, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

// Sort2HpNDArray sorts x in place using heap sort, applying the same permutation to y. It returns x.
func Sort2HpNDArray[T dtypes.GoFloat](n int, order T, x []T, strideX, offsetX int, y []T, strideY, offsetY int) []T {
	if v := newSortView("sort2hp", n, order, x, strideX, offsetX, y, strideY, offsetY, true); v != nil {
		heapSort(n, v)
	}
	return x
}

// Sort2Hp sorts x in place using heap sort, applying the same permutation to y. It returns x.
func Sort2Hp[T dtypes.GoFloat](n int, order T, x []T, strideX int, y []T, strideY int) []T {
	return Sort2HpNDArray(n, order, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY))
}

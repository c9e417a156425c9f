// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lapack

import (
	"testing"

	"github.com/gomlx/strided/pkg/blas"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// seq returns 1, 2, ..., n.
func seq(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return x
}

func TestLacpy(t *testing.T) {
	a := seq(12) // 3x4, row-major.
	b := Lacpy(blas.RowMajor, blas.All, 3, 4, a, 4, filled(12, -1), 4)
	assert.Equal(t, a, b)

	b = Lacpy(blas.RowMajor, blas.Upper, 3, 4, a, 4, filled(12, -1), 4)
	assert.Equal(t, []float64{
		1, 2, 3, 4,
		-1, 6, 7, 8,
		-1, -1, 11, 12}, b)

	b = Lacpy(blas.RowMajor, blas.Lower, 3, 4, a, 4, filled(12, -1), 4)
	assert.Equal(t, []float64{
		1, -1, -1, -1,
		5, 6, -1, -1,
		9, 10, 11, -1}, b)

	// Tall matrix, column-major: the upper trapezoid of a 4x2 matrix.
	// Columns of A are (1, 2, 3, 4) and (5, 6, 7, 8).
	b = Lacpy(blas.ColumnMajor, blas.Upper, 4, 2, seq(8), 4, filled(8, -1), 4)
	assert.Equal(t, []float64{1, -1, -1, -1, 5, 6, -1, -1}, b)

	// Padding in B (ldb=5) is never written.
	b = Lacpy(blas.RowMajor, blas.All, 2, 2, []float64{1, 2, 3, 4}, 2, filled(7, -1), 5)
	assert.Equal(t, []float64{1, 2, -1, -1, -1, 3, 4}, b)

	// Invalid arguments.
	require.Panics(t, func() { Lacpy(blas.RowMajor, blas.Uplo(7), 3, 4, a, 4, filled(12, 0), 4) })
	err := strided.Catch(func() { Lacpy(blas.RowMajor, blas.All, 3, 4, a, 3, filled(12, 0), 4) })
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	out := filled(11, 0)
	require.Panics(t, func() { Lacpy(blas.RowMajor, blas.Upper, 3, 4, a, 4, out, 4) })
	assert.Equal(t, filled(11, 0), out)
}

func TestLaswp(t *testing.T) {
	// 4x2 matrix whose row i is (i, 10*i).
	a := []float64{0, 0, 1, 10, 2, 20, 3, 30}
	ipiv := []int{2, 3}
	Laswp(blas.RowMajor, 2, a, 2, 0, 1, ipiv, 1)
	assert.Equal(t, []float64{2, 20, 3, 30, 0, 0, 1, 10}, a)

	// Applying the same pivots in reverse order undoes the interchanges.
	Laswp(blas.RowMajor, 2, a, 2, 0, 1, ipiv, -1)
	assert.Equal(t, []float64{0, 0, 1, 10, 2, 20, 3, 30}, a)

	// Column-major, starting at k1=1, with a pivot equal to the row itself.
	c := []float64{0, 1, 2, 0, 10, 20} // 3x2, column-major: rows (0,0), (1,10), (2,20).
	Laswp(blas.ColumnMajor, 2, c, 3, 1, 2, []int{2, 2}, 1)
	assert.Equal(t, []float64{0, 2, 1, 0, 20, 10}, c)

	// NDArray form with strided pivots.
	d := []float64{0, 1, 2}
	LaswpNDArray(1, d, 1, 1, 0, 0, 0, 1, []int{-7, 2}, 1, 1)
	assert.Equal(t, []float64{2, 1, 0}, d)

	// Invalid pivots are reported before any interchange.
	e := []float64{0, 1, 2}
	require.Panics(t, func() { Laswp(blas.RowMajor, 1, e, 1, 0, 1, []int{1, -1}, 1) })
	require.Panics(t, func() { Laswp(blas.RowMajor, 1, e, 1, 0, 1, []int{1, 5}, 1) })
	require.Panics(t, func() { Laswp(blas.RowMajor, 1, e, 1, 0, 1, []int{1}, 1) })
	require.Panics(t, func() { Laswp(blas.RowMajor, 1, e, 1, 0, 1, []int{1, 2}, 0) })
	assert.Equal(t, []float64{0, 1, 2}, e)
}

func TestGeTrans(t *testing.T) {
	a := seq(6) // 2x3.
	b := GeTrans(blas.RowMajor, 2, 3, a, 3, make([]float64, 6), 2)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, b)

	// Column-major: A's columns are (1, 4), (2, 5), (3, 6).
	b = GeTrans(blas.ColumnMajor, 2, 3, []float64{1, 4, 2, 5, 3, 6}, 2, make([]float64, 6), 3)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, b)

	// Transposing twice is the identity.
	back := GeTrans(blas.RowMajor, 3, 2, []float64{1, 4, 2, 5, 3, 6}, 2, make([]float64, 6), 3)
	assert.Equal(t, a, back)

	// NDArray form over a sub-matrix: the 2x2 bottom-right block of a 3x3 matrix, reversed rows in B.
	m := seq(9)
	out := GeTransNDArray(2, 2, m, 3, 1, 4, make([]float64, 4), -2, 1, 2)
	assert.Equal(t, []float64{6, 9, 5, 8}, out)

	require.Panics(t, func() { GeTrans(blas.RowMajor, 2, 3, a, 3, make([]float64, 6), 1) })
	assert.Equal(t, []float64{}, GeTrans(blas.RowMajor, 0, 3, a, 3, []float64{}, 1))
}

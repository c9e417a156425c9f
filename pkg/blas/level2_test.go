// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math/rand/v2"
	"testing"

	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// transposeMatrix returns the column-major copy of a row-major (rows x cols) matrix.
func transposeMatrix(a []float64, rows, cols int) []float64 {
	t := make([]float64, len(a))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j*rows+i] = a[i*cols+j]
		}
	}
	return t
}

func TestGemv(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	m, n := 5, 7
	a := randomVector(rng, m*n)
	for _, trans := range []Transpose{NoTrans, Trans} {
		lenX, lenY := n, m
		gt := gblas.NoTrans
		if trans == Trans {
			lenX, lenY = m, n
			gt = gblas.Trans
		}
		x := randomVector(rng, lenX)
		y := randomVector(rng, lenY)

		want := append([]float64(nil), y...)
		blas64.Gemv(gt, 1.5, blas64.General{Rows: m, Cols: n, Data: a, Stride: n},
			blas64.Vector{N: lenX, Data: x, Inc: 1}, 0.5, blas64.Vector{N: lenY, Data: want, Inc: 1})

		got := append([]float64(nil), y...)
		Gemv(RowMajor, trans, m, n, 1.5, a, n, x, 1, 0.5, got, 1)
		assert.InDeltaSlicef(t, want, got, 1e-12, "row-major %s", trans)

		got = append([]float64(nil), y...)
		Gemv(ColumnMajor, trans, m, n, 1.5, transposeMatrix(a, m, n), m, x, 1, 0.5, got, 1)
		assert.InDeltaSlicef(t, want, got, 1e-12, "column-major %s", trans)
	}
}

func TestGemvEdgeCases(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	x := []float64{1, 1}

	// beta == 0 clears y, even NaNs.
	y := []float64{nan(), nan()}
	Gemv(RowMajor, NoTrans, 2, 2, 1.0, a, 2, x, 1, 0.0, y, 1)
	assert.Equal(t, []float64{3, 7}, y)

	// alpha == 0 only scales.
	y = []float64{1, 2}
	Gemv(RowMajor, NoTrans, 2, 2, 0.0, a, 2, x, 1, 2.0, y, 1)
	assert.Equal(t, []float64{2, 4}, y)

	// Negative y stride writes backwards.
	y = []float64{0, 0}
	Gemv(RowMajor, NoTrans, 2, 2, 1.0, a, 2, x, 1, 0.0, y, -1)
	assert.Equal(t, []float64{7, 3}, y)

	err := strided.Catch(func() { Gemv(RowMajor, NoTrans, 2, 2, 1.0, a, 1, x, 1, 0.0, y, 1) })
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	assert.Contains(t, err.Error(), "lda")

	err = strided.Catch(func() { Gemv(RowMajor, Transpose(9), 2, 2, 1.0, a, 2, x, 1, 0.0, y, 1) })
	assert.True(t, strided.IsArgumentError(err))
	err = strided.Catch(func() { Gemv(Layout(5), NoTrans, 2, 2, 1.0, a, 2, x, 1, 0.0, y, 1) })
	assert.True(t, strided.IsArgumentError(err))
	err = strided.Catch(func() { Gemv(RowMajor, NoTrans, 2, 2, 1.0, a, 2, x, 0, 0.0, y, 1) })
	assert.True(t, strided.IsArgumentError(err))
}

func TestGer(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	m, n := 4, 6
	a := randomVector(rng, m*n)
	x := randomVector(rng, m)
	y := randomVector(rng, n)

	want := append([]float64(nil), a...)
	blas64.Ger(-0.25, blas64.Vector{N: m, Data: x, Inc: 1}, blas64.Vector{N: n, Data: y, Inc: 1},
		blas64.General{Rows: m, Cols: n, Data: want, Stride: n})
	got := append([]float64(nil), a...)
	Ger(RowMajor, m, n, -0.25, x, 1, y, 1, got, n)
	assert.InDeltaSlice(t, want, got, 1e-12)

	gotCol := transposeMatrix(a, m, n)
	Ger(ColumnMajor, m, n, -0.25, x, 1, y, 1, gotCol, m)
	assert.InDeltaSlice(t, transposeMatrix(want, m, n), gotCol, 1e-12)
}

func TestTrmv(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 19))
	n := 6
	a := randomVector(rng, n*n)
	for _, uplo := range []Uplo{Upper, Lower} {
		for _, trans := range []Transpose{NoTrans, Trans} {
			for _, diag := range []Diag{NonUnit, Unit} {
				x := randomVector(rng, 2*n)
				want := append([]float64(nil), x...)
				gu, gt, gd := gblas.Upper, gblas.NoTrans, gblas.NonUnit
				if uplo == Lower {
					gu = gblas.Lower
				}
				if trans == Trans {
					gt = gblas.Trans
				}
				if diag == Unit {
					gd = gblas.Unit
				}
				blas64.Trmv(gt, blas64.Triangular{Uplo: gu, Diag: gd, N: n, Data: a, Stride: n},
					blas64.Vector{N: n, Data: want, Inc: 2})
				got := append([]float64(nil), x...)
				Trmv(RowMajor, uplo, trans, diag, n, a, n, got, 2)
				assert.InDeltaSlicef(t, want, got, 1e-12, "%s %s %s", uplo, trans, diag)
			}
		}
	}
	err := strided.Catch(func() { Trmv(RowMajor, All, NoTrans, NonUnit, n, a, n, make([]float64, n), 1) })
	assert.True(t, strided.IsArgumentError(err))
}

func TestSymv(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 29))
	n := 5
	a := randomVector(rng, n*n)
	for _, uplo := range []Uplo{Upper, Lower} {
		x := randomVector(rng, n)
		y := randomVector(rng, n)
		gu := gblas.Upper
		if uplo == Lower {
			gu = gblas.Lower
		}
		want := append([]float64(nil), y...)
		blas64.Symv(2, blas64.Symmetric{Uplo: gu, N: n, Data: a, Stride: n},
			blas64.Vector{N: n, Data: x, Inc: 1}, -1, blas64.Vector{N: n, Data: want, Inc: 1})
		got := append([]float64(nil), y...)
		Symv(RowMajor, uplo, n, 2.0, a, n, x, 1, -1.0, got, 1)
		assert.InDeltaSlicef(t, want, got, 1e-12, "%s", uplo)
	}
}

func TestParseEnums(t *testing.T) {
	l, err := ParseLayout("Column-Major")
	require.NoError(t, err)
	assert.Equal(t, ColumnMajor, l)
	_, err = ParseLayout("diagonal")
	require.Error(t, err)

	tr, err := ParseTranspose("transpose")
	require.NoError(t, err)
	assert.Equal(t, Trans, tr)
	u, err := ParseUplo("lower")
	require.NoError(t, err)
	assert.Equal(t, Lower, u)
	d, err := ParseDiag("unit")
	require.NoError(t, err)
	assert.Equal(t, Unit, d)

	assert.Equal(t, "row-major", RowMajor.String())
	assert.Equal(t, "Uplo(invalid)", Uplo(-1).String())
	s1, s2 := ColumnMajor.Strides(7)
	assert.Equal(t, []int{1, 7}, []int{s1, s2})
}

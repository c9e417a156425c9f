// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

// interleave converts complex128 values to an interleaved buffer.
func interleave(values ...complex128) []float64 {
	buf := make([]float64, 0, 2*len(values))
	for _, v := range values {
		buf = append(buf, real(v), imag(v))
	}
	return buf
}

func TestComplexLayout(t *testing.T) {
	assert.Equal(t, dtypes.Complex64, complexKind[float32]())
	assert.Equal(t, dtypes.Complex128, complexKind[float64]())

	start, step := complexView("op", "x", 3, make([]float64, 10), -2, 4)
	assert.Equal(t, []int{8, -4}, []int{start, step})

	// A trailing real part without its imaginary pair doesn't count as an element.
	err := strided.Catch(func() { complexView("op", "x", 3, make([]float32, 5), 1, 0) })
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	require.NoError(t, strided.Catch(func() { complexView("op", "x", 3, make([]float32, 6), 1, 0) }))
}

func TestComplexScalAndAxpy(t *testing.T) {
	x := interleave(1+2i, 3-1i)
	ComplexScal(2, 2i, x, 1)
	assert.Equal(t, interleave(-4+2i, 2+6i), x)

	x = interleave(1+2i, 3-1i)
	ComplexRealScal(2, 3.0, x, 1)
	assert.Equal(t, interleave(3+6i, 9-3i), x)

	x = interleave(1+1i, 2+2i)
	y := interleave(10, 20)
	ComplexAxpy(2, 1i, x, 1, y, 1)
	assert.Equal(t, interleave(9+1i, 18+2i), y)

	// Strides count complex elements: stride -1 pairs x[1] with y[0].
	y = interleave(0, 0)
	ComplexAxpy(2, 1, x, -1, y, 1)
	assert.Equal(t, interleave(2+2i, 1+1i), y)
}

func TestComplexCopySwap(t *testing.T) {
	x := interleave(1+1i, 2+2i, 3+3i)
	y := make([]float32, 4)
	xs := []float32{1, 1, 2, 2, 3, 3}
	ComplexCopyNDArray(2, xs, 2, 0, y, 1, 0)
	assert.Equal(t, []float32{1, 1, 3, 3}, y)

	z := interleave(0, 0, 0)
	ComplexSwap(3, x, 1, z, -1)
	assert.Equal(t, interleave(0, 0, 0), x)
	assert.Equal(t, interleave(3+3i, 2+2i, 1+1i), z)
}

func TestComplexReductions(t *testing.T) {
	xv := []complex128{1 + 2i, -3 + 1i, 0.5 - 4i}
	yv := []complex128{2 - 1i, 1i, -1 + 1i}
	x, y := interleave(xv...), interleave(yv...)

	var dotu, dotc complex128
	var asum float64
	var nrm float64
	for i := range xv {
		dotu += xv[i] * yv[i]
		dotc += cmplx.Conj(xv[i]) * yv[i]
		asum += math.Abs(real(xv[i])) + math.Abs(imag(xv[i]))
		nrm += real(xv[i])*real(xv[i]) + imag(xv[i])*imag(xv[i])
	}
	assert.InDelta(t, real(dotu), real(ComplexDotu(3, x, 1, y, 1)), 1e-12)
	assert.InDelta(t, imag(dotu), imag(ComplexDotu(3, x, 1, y, 1)), 1e-12)
	assert.InDelta(t, real(dotc), real(ComplexDotc(3, x, 1, y, 1)), 1e-12)
	assert.InDelta(t, imag(dotc), imag(ComplexDotc(3, x, 1, y, 1)), 1e-12)
	assert.InDelta(t, asum, ComplexAsum(3, x, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(nrm), ComplexNrm2(3, x, 1), 1e-12)
	assert.Equal(t, 2, ComplexIamax(3, x, 1))
	assert.Equal(t, 0, ComplexIamax(3, x, -1))
	assert.Equal(t, -1, ComplexIamax(0, x, 1))
	assert.Equal(t, complex128(0), ComplexDotu(0, x, 1, y, 1))
}

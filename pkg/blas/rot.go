// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// RotNDArray applies the plane rotation (c, s) to the points (x[i], y[i]):
//
//	x[i] = c*x[i] + s*y[i]
//	y[i] = c*y[i] - s*x[i]
//
// It returns y.
func RotNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, c, s T) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector("rot", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("rot", "y", n, len(y), strideY, offsetY)
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		xv, yv := x[ix], y[iy]
		x[ix] = c*xv + s*yv
		y[iy] = c*yv - s*xv
		ix += strideX
		iy += strideY
	}
	return y
}

// Rot applies the plane rotation (c, s) to the points (x[i], y[i]). It returns y.
func Rot[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int, c, s T) []T {
	return RotNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY), c, s)
}

func sign[T dtypes.GoFloat](v T) T {
	return T(math.Copysign(1, float64(v)))
}

// Rotg constructs the Givens rotation that zeroes the second component of (a, b):
//
//	[  c  s ] [ a ]   [ r ]
//	[ -s  c ] [ b ] = [ 0 ]
//
// z is the value from which c and s can be recovered: if |z| < 1 then s = z and c = sqrt(1-z²);
// if |z| > 1 then c = 1/z and s = sqrt(1-c²); if z == 1 then c = 0 and s = 1.
func Rotg[T dtypes.GoFloat](a, b T) (r, z, c, s T) {
	anorm, bnorm := abs(a), abs(b)
	switch {
	case bnorm == 0:
		return a, 0, 1, 0
	case anorm == 0:
		return b, 1, 0, 1
	}
	scale := max(anorm, bnorm)
	sigma := sign(b)
	if anorm > bnorm {
		sigma = sign(a)
	}
	as, bs := a/scale, b/scale
	r = sigma * scale * T(math.Sqrt(float64(as*as+bs*bs)))
	c = a / r
	s = b / r
	switch {
	case anorm > bnorm:
		z = s
	case c != 0:
		z = 1 / c
	default:
		z = 1
	}
	return
}

// Modified Givens rotation flags, stored in param[0] of Rotm and Rotmg.
const (
	RotmFull     = -1 // H = [h11 h12; h21 h22]
	RotmOffDiag  = 0  // H = [1 h12; h21 1]
	RotmDiag     = 1  // H = [h11 1; -1 h22]
	RotmIdentity = -2 // H = I
)

// RotmNDArray applies the modified Givens transformation H to the points (x[i], y[i]):
//
//	[ x[i] ]     [ x[i] ]
//	[ y[i] ] = H [ y[i] ]
//
// param holds [flag, h11, h21, h12, h22]; see the Rotm* flag constants for the form of H. It returns y.
func RotmNDArray[T dtypes.GoFloat](n int, x []T, strideX, offsetX int, y []T, strideY, offsetY int, param [5]T) []T {
	if n <= 0 {
		return y
	}
	strided.CheckVector("rotm", "x", n, len(x), strideX, offsetX)
	strided.CheckVector("rotm", "y", n, len(y), strideY, offsetY)
	flag := param[0]
	var h11, h21, h12, h22 T
	switch flag {
	case RotmIdentity:
		return y
	case RotmFull:
		h11, h21, h12, h22 = param[1], param[2], param[3], param[4]
	case RotmOffDiag:
		h11, h21, h12, h22 = 1, param[2], param[3], 1
	case RotmDiag:
		h11, h21, h12, h22 = param[1], -1, 1, param[4]
	default:
		strided.Panicf("rotm", "param", "invalid flag %v", flag)
	}
	ix, iy := offsetX, offsetY
	for i := 0; i < n; i++ {
		w, z := x[ix], y[iy]
		x[ix] = w*h11 + z*h12
		y[iy] = w*h21 + z*h22
		ix += strideX
		iy += strideY
	}
	return y
}

// Rotm applies the modified Givens transformation given by param to the points (x[i], y[i]). It returns y.
func Rotm[T dtypes.GoFloat](n int, x []T, strideX int, y []T, strideY int, param [5]T) []T {
	return RotmNDArray(n, x, strideX, strided.Offset(n, strideX), y, strideY, strided.Offset(n, strideY), param)
}

// Rotmg constructs the modified Givens transformation H that zeroes the second component of
// (sqrt(d1)*x1, sqrt(d2)*y1). It returns the param vector for Rotm and the updated d1, d2 and x1.
func Rotmg[T dtypes.GoFloat](d1, d2, x1, y1 T) (param [5]T, rd1, rd2, rx1 T) {
	const (
		gam    = 4096.0
		gamsq  = gam * gam
		rgamsq = 1.0 / gamsq
	)
	var flag, h11, h12, h21, h22 T
	if d1 < 0 {
		param[0] = RotmFull
		return param, 0, 0, 0
	}
	p2 := d2 * y1
	if p2 == 0 {
		param[0] = RotmIdentity
		return param, d1, d2, x1
	}
	p1 := d1 * x1
	q2 := p2 * y1
	q1 := p1 * x1
	if abs(q1) > abs(q2) {
		h21 = -y1 / x1
		h12 = p2 / p1
		u := 1 - h12*h21
		if u <= 0 {
			param[0] = RotmFull
			return param, 0, 0, 0
		}
		flag = RotmOffDiag
		d1 /= u
		d2 /= u
		x1 *= u
	} else {
		if q2 < 0 {
			param[0] = RotmFull
			return param, 0, 0, 0
		}
		flag = RotmDiag
		h11 = p1 / p2
		h22 = x1 / y1
		u := 1 + h11*h22
		d1, d2 = d2/u, d1/u
		x1 = y1 * u
	}

	// Promote H to its full form before rescaling.
	toFull := func() {
		switch flag {
		case RotmOffDiag:
			h11, h22 = 1, 1
		case RotmDiag:
			h21, h12 = -1, 1
		}
		flag = RotmFull
	}
	if d1 != 0 {
		for d1 <= rgamsq || d1 >= gamsq {
			toFull()
			if d1 <= rgamsq {
				d1 *= gamsq
				x1 /= gam
				h11 /= gam
				h12 /= gam
			} else {
				d1 /= gamsq
				x1 *= gam
				h11 *= gam
				h12 *= gam
			}
		}
	}
	if d2 != 0 {
		for abs(d2) <= rgamsq || abs(d2) >= gamsq {
			toFull()
			if abs(d2) <= rgamsq {
				d2 *= gamsq
				h21 /= gam
				h22 /= gam
			} else {
				d2 /= gamsq
				h21 *= gam
				h22 *= gam
			}
		}
	}

	param[0] = flag
	switch flag {
	case RotmFull:
		param[1], param[2], param[3], param[4] = h11, h21, h12, h22
	case RotmOffDiag:
		param[2], param[3] = h21, h12
	case RotmDiag:
		param[1], param[4] = h11, h22
	}
	return param, d1, d2, x1
}

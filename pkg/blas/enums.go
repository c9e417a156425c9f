// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"strings"

	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/pkg/errors"
)

// Layout of a two-dimensional buffer in the convention forms of the level 2 kernels.
type Layout int

const (
	RowMajor Layout = iota
	ColumnMajor
)

var layoutNames = []string{"row-major", "column-major"}

// String implements fmt.Stringer.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "Layout(invalid)"
	}
	return layoutNames[l]
}

// ParseLayout converts "row-major" or "column-major" (case-insensitive) to a Layout.
func ParseLayout(s string) (Layout, error) {
	return parseEnum[Layout](s, layoutNames, "layout")
}

// Strides returns the strides (stride1, stride2) of a buffer with leading dimension ld in this layout.
func (l Layout) Strides(ld int) (stride1, stride2 int) {
	if l == ColumnMajor {
		return 1, ld
	}
	return ld, 1
}

// Check panics with an ArgumentError if l is not a valid layout.
func (l Layout) Check(op string) {
	if l != RowMajor && l != ColumnMajor {
		strided.Panicf(op, "layout", "invalid value %d", int(l))
	}
}

// Transpose selects op(A) in the level 2 kernels.
type Transpose int

const (
	NoTrans Transpose = iota
	Trans
	ConjTrans
)

var transposeNames = []string{"no-transpose", "transpose", "conjugate-transpose"}

// String implements fmt.Stringer.
func (t Transpose) String() string {
	if t < 0 || int(t) >= len(transposeNames) {
		return "Transpose(invalid)"
	}
	return transposeNames[t]
}

// ParseTranspose converts "no-transpose", "transpose" or "conjugate-transpose" to a Transpose.
func ParseTranspose(s string) (Transpose, error) {
	return parseEnum[Transpose](s, transposeNames, "transpose")
}

func (t Transpose) check(op string) {
	if t < NoTrans || t > ConjTrans {
		strided.Panicf(op, "trans", "invalid value %d", int(t))
	}
}

// Uplo selects which triangle of a matrix is referenced. All is only accepted by the routines that can
// work on the full matrix (lapack.Lacpy).
type Uplo int

const (
	Upper Uplo = iota
	Lower
	All
)

var uploNames = []string{"upper", "lower", "all"}

// String implements fmt.Stringer.
func (u Uplo) String() string {
	if u < 0 || int(u) >= len(uploNames) {
		return "Uplo(invalid)"
	}
	return uploNames[u]
}

// ParseUplo converts "upper", "lower" or "all" to an Uplo.
func ParseUplo(s string) (Uplo, error) {
	return parseEnum[Uplo](s, uploNames, "uplo")
}

// Check panics with an ArgumentError if u is not one of Upper, Lower or All.
func (u Uplo) Check(op string) {
	if u != Upper && u != Lower && u != All {
		strided.Panicf(op, "uplo", "invalid value %d", int(u))
	}
}

// CheckTriangle panics with an ArgumentError if u is not Upper or Lower.
func (u Uplo) CheckTriangle(op string) {
	if u != Upper && u != Lower {
		strided.Panicf(op, "uplo", "must be upper or lower, got %s", u)
	}
}

// Diag tells whether a triangular matrix has an implicit unit diagonal.
type Diag int

const (
	NonUnit Diag = iota
	Unit
)

var diagNames = []string{"non-unit", "unit"}

// String implements fmt.Stringer.
func (d Diag) String() string {
	if d < 0 || int(d) >= len(diagNames) {
		return "Diag(invalid)"
	}
	return diagNames[d]
}

// ParseDiag converts "non-unit" or "unit" to a Diag.
func ParseDiag(s string) (Diag, error) {
	return parseEnum[Diag](s, diagNames, "diag")
}

func (d Diag) check(op string) {
	if d != NonUnit && d != Unit {
		strided.Panicf(op, "diag", "invalid value %d", int(d))
	}
}

func parseEnum[E ~int](s string, names []string, kind string) (E, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if key == name {
			return E(i), nil
		}
	}
	return 0, errors.Errorf("unknown %s %q, valid values are %q", kind, s, names)
}

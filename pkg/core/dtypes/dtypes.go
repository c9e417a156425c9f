// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the element kinds supported by the strided kernels.
//
// It covers the kinds a strided buffer can hold, with the naming prefixes used by kernel names ("d" for
// Float64, "s" for Float32, "z" for Complex128, etc.) and the layout of interleaved complex buffers.
//
// It also includes the constraint interfaces used as generics traits by the kernel packages
// (Number, NumberNotComplex, GoFloat, Integer, Signed).
package dtypes

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type  = reflect.TypeOf(float32(0))
	float64Type  = reflect.TypeOf(float64(0))
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
)

// goTypes maps the exact Go element types to their DType. Named types (type Celsius float64) and the
// platform dependent int and uint are absent: their buffers don't type-assert to any of
// the kernel slice types.
var goTypes = map[reflect.Type]DType{
	reflect.TypeOf(false):         Bool,
	reflect.TypeOf(int8(0)):       Int8,
	reflect.TypeOf(int16(0)):      Int16,
	reflect.TypeOf(int32(0)):      Int32,
	reflect.TypeOf(int64(0)):      Int64,
	reflect.TypeOf(uint8(0)):      Uint8,
	reflect.TypeOf(uint16(0)):     Uint16,
	reflect.TypeOf(uint32(0)):     Uint32,
	reflect.TypeOf(uint64(0)):     Uint64,
	float16Type:                   Float16,
	bfloat16Type:                  BFloat16,
	float32Type:                   Float32,
	float64Type:                   Float64,
	reflect.TypeOf(complex64(0)):  Complex64,
	reflect.TypeOf(complex128(0)): Complex128,
}

// FromGoType returns the DType for the given "reflect.Type".
// Slices are resolved to the DType of their elements, so FromGoType of []float64 is Float64.
// A []any buffer maps to Generic. It returns InvalidDType for unknown types, including int, uint and
// named types, since no kernel accepts their buffers.
func FromGoType(t reflect.Type) DType {
	if t == nil {
		return InvalidDType
	}
	if t.Kind() == reflect.Slice {
		if t.Elem() == anyType {
			return Generic
		}
		t = t.Elem()
	}
	if dtype, found := goTypes[t]; found {
		return dtype
	}
	return InvalidDType
}

// FromAny introspects the underlying type of any and returns the corresponding DType.
// It accepts scalars and slices (see FromGoType). Unsupported types return InvalidDType.
func FromAny(value any) DType {
	return FromGoType(reflect.TypeOf(value))
}

// Size returns the number of bytes for the given DType.
// It panics for Generic and InvalidDType, which have no fixed size.
func (dtype DType) Size() int {
	return int(dtype.GoType().Size())
}

// GoType returns the Go `reflect.Type` corresponding to the DType.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Int64:
		return reflect.TypeOf(int64(0))
	case Int32:
		return reflect.TypeOf(int32(0))
	case Int16:
		return reflect.TypeOf(int16(0))
	case Int8:
		return reflect.TypeOf(int8(0))

	case Uint64:
		return reflect.TypeOf(uint64(0))
	case Uint32:
		return reflect.TypeOf(uint32(0))
	case Uint16:
		return reflect.TypeOf(uint16(0))
	case Uint8:
		return reflect.TypeOf(uint8(0))

	case Bool:
		return reflect.TypeOf(true)

	case Float16:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float32:
		return float32Type
	case Float64:
		return float64Type

	case Complex64:
		return reflect.TypeOf(complex64(0))
	case Complex128:
		return reflect.TypeOf(complex128(0))

	default:
		panicf("unknown dtype %q (%d) in DType.GoType", dtype, dtype)
		panic(nil)
	}
}

// Prefix returns the letter(s) used for this kind in kernel names, following the BLAS tradition:
// "d" for Float64, "s" for Float32, "z" for Complex128, "c" for Complex64 and "g" for Generic.
// Integer kinds use their short C-like names ("i32", "u8", ...).
func (dtype DType) Prefix() string {
	switch dtype {
	case Float64:
		return "d"
	case Float32:
		return "s"
	case Complex128:
		return "z"
	case Complex64:
		return "c"
	case Float16:
		return "h"
	case BFloat16:
		return "b"
	case Generic:
		return "g"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Uint8:
		return "u8"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Uint64:
		return "u64"
	case Bool:
		return "x"
	default:
		return ""
	}
}

// ElementsPerValue returns how many buffer elements hold one logical value: 2 for the interleaved
// complex kinds, 1 otherwise.
func (dtype DType) ElementsPerValue() int {
	if dtype.IsComplex() {
		return 2
	}
	return 1
}

// IsFloat returns whether dtype is a supported float. It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float32 || dtype == Float64 || dtype == Float16 || dtype == BFloat16
}

// IsComplex returns whether dtype is a supported complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// RealDType returns the real component of complex dtypes.
// For float dtypes, it returns itself.
//
// It returns InvalidDType for other non-(complex or float) dtypes.
func (dtype DType) RealDType() DType {
	if dtype.IsFloat() {
		return dtype
	}
	switch dtype {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return InvalidDType
	}
}

// IsSupported returns whether dtype is a valid element kind for a strided buffer.
func (dtype DType) IsSupported() bool {
	return dtype > InvalidDType && dtype <= Generic
}

// Number represents the Go numeric types corresponding to supported DType's.
// Used as traits for generics.
//
// It includes complex numbers.
// It doesn't include float16.Float16 or bfloat16.BFloat16 because they are not native number types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// NumberNotComplex represents the real Go numeric types: the ones that can be ordered.
// Used as a Generics constraint.
type NumberNotComplex interface {
	constraints.Integer | constraints.Float
}

// GoFloat represent a continuous Go numeric type.
// It doesn't include complex numbers.
type GoFloat interface {
	constraints.Float
}

// Integer represents the Go integer types, signed or unsigned.
type Integer interface {
	constraints.Integer
}

// Signed represents the Go numeric types that can be negated: signed integers and floats.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Half represents the 16 bits float types, which are stored natively but computed in float32.
type Half interface {
	float16.Float16 | bfloat16.BFloat16
}

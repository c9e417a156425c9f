// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import "strconv"

// DType is an enum of the element kinds a strided buffer can hold.
//
// The numeric values follow the order used by the PJRT buffer types for the kinds shared with it, so
// serialized values stay compatible with GoMLX. Generic is specific to this library: it marks kernels
// that accept any of the other kinds, dispatched at call time.
type DType int32

const (
	// InvalidDType is the zero value, used for unknown or unsupported types.
	InvalidDType DType = 0

	// Bool is a two-state boolean. Only used as a mask kind.
	Bool DType = 1

	// Int8 is a signed integral value of fixed width.
	Int8 DType = 2

	// Int16 is a signed integral value of fixed width.
	Int16 DType = 3

	// Int32 is a signed integral value of fixed width.
	Int32 DType = 4

	// Int64 is a signed integral value of fixed width.
	Int64 DType = 5

	// Uint8 is an unsigned integral value of fixed width. It is also the kind of the masks used by
	// the masked kernels.
	Uint8 DType = 6

	// Uint16 is an unsigned integral value of fixed width.
	Uint16 DType = 7

	// Uint32 is an unsigned integral value of fixed width.
	Uint32 DType = 8

	// Uint64 is an unsigned integral value of fixed width.
	Uint64 DType = 9

	// Float16 is the IEEE 754 half-precision float, see github.com/x448/float16.
	Float16 DType = 10

	// Float32 is the IEEE 754 single-precision float.
	Float32 DType = 11

	// Float64 is the IEEE 754 double-precision float.
	Float64 DType = 12

	// BFloat16 is the truncated 16 bits float: 1 bit for the sign, 8 bits for the exponent
	// and 7 bits for the mantissa.
	BFloat16 DType = 13

	// Complex64 is a pair of Float32 (real, imag). Strided kernels store it interleaved in a []float32.
	Complex64 DType = 14

	// Complex128 is a pair of Float64 (real, imag). Strided kernels store it interleaved in a []float64.
	Complex128 DType = 15

	// Generic marks kernels that accept buffers of any supported kind, resolved once per call.
	Generic DType = 16
)

// NumDTypes is one past the largest DType value. Used to size dispatch tables.
const NumDTypes = int(Generic) + 1

// Aliases.
const (
	F16  = Float16
	F32  = Float32
	F64  = Float64
	BF16 = BFloat16
	C64  = Complex64
	C128 = Complex128
	S8   = Int8
	S16  = Int16
	S32  = Int32
	S64  = Int64
	U8   = Uint8
	U16  = Uint16
	U32  = Uint32
	U64  = Uint64
)

// MapOfNames to their dtypes. It includes also aliases to the various dtypes.
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Bool":         Bool,
	"Int8":         Int8,
	"S8":           Int8,
	"Int16":        Int16,
	"S16":          Int16,
	"Int32":        Int32,
	"S32":          Int32,
	"Int64":        Int64,
	"S64":          Int64,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Uint16":       Uint16,
	"U16":          Uint16,
	"Uint32":       Uint32,
	"U32":          Uint32,
	"Uint64":       Uint64,
	"U64":          Uint64,
	"Float16":      Float16,
	"F16":          Float16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
	"Complex64":    Complex64,
	"C64":          Complex64,
	"Complex128":   Complex128,
	"C128":         Complex128,
	"Generic":      Generic,
}

var dtypeNames = [...]string{
	InvalidDType: "InvalidDType",
	Bool:         "Bool",
	Int8:         "Int8",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	Uint8:        "Uint8",
	Uint16:       "Uint16",
	Uint32:       "Uint32",
	Uint64:       "Uint64",
	Float16:      "Float16",
	Float32:      "Float32",
	Float64:      "Float64",
	BFloat16:     "BFloat16",
	Complex64:    "Complex64",
	Complex128:   "Complex128",
	Generic:      "Generic",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if dtype < 0 || int(dtype) >= len(dtypeNames) {
		return "DType(" + strconv.Itoa(int(dtype)) + ")"
	}
	return dtypeNames[dtype]
}

// DTypeValues returns all valid values of the enum, excluding InvalidDType.
func DTypeValues() []DType {
	values := make([]DType, 0, NumDTypes-1)
	for dtype := Bool; dtype <= Generic; dtype++ {
		values = append(values, dtype)
	}
	return values
}

/***** File generated by ./internal/cmd/generic_dispatcher. Don't edit it directly. *****/

package generic

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func init() {

	// copyDispatcher: copyGeneric
	copyDispatcher.Register(dtypes.Int8, copyGeneric[int8])
	copyDispatcher.Register(dtypes.Int16, copyGeneric[int16])
	copyDispatcher.Register(dtypes.Int32, copyGeneric[int32])
	copyDispatcher.Register(dtypes.Int64, copyGeneric[int64])
	copyDispatcher.Register(dtypes.Uint8, copyGeneric[uint8])
	copyDispatcher.Register(dtypes.Uint16, copyGeneric[uint16])
	copyDispatcher.Register(dtypes.Uint32, copyGeneric[uint32])
	copyDispatcher.Register(dtypes.Uint64, copyGeneric[uint64])
	copyDispatcher.Register(dtypes.Float32, copyGeneric[float32])
	copyDispatcher.Register(dtypes.Float64, copyGeneric[float64])
	copyDispatcher.Register(dtypes.BFloat16, copyGeneric[bfloat16.BFloat16])
	copyDispatcher.Register(dtypes.Float16, copyGeneric[float16.Float16])
	copyDispatcher.Register(dtypes.Generic, copyGeneric[any])

	// swapDispatcher: swapGeneric
	swapDispatcher.Register(dtypes.Int8, swapGeneric[int8])
	swapDispatcher.Register(dtypes.Int16, swapGeneric[int16])
	swapDispatcher.Register(dtypes.Int32, swapGeneric[int32])
	swapDispatcher.Register(dtypes.Int64, swapGeneric[int64])
	swapDispatcher.Register(dtypes.Uint8, swapGeneric[uint8])
	swapDispatcher.Register(dtypes.Uint16, swapGeneric[uint16])
	swapDispatcher.Register(dtypes.Uint32, swapGeneric[uint32])
	swapDispatcher.Register(dtypes.Uint64, swapGeneric[uint64])
	swapDispatcher.Register(dtypes.Float32, swapGeneric[float32])
	swapDispatcher.Register(dtypes.Float64, swapGeneric[float64])
	swapDispatcher.Register(dtypes.BFloat16, swapGeneric[bfloat16.BFloat16])
	swapDispatcher.Register(dtypes.Float16, swapGeneric[float16.Float16])
	swapDispatcher.Register(dtypes.Generic, swapGeneric[any])

	// revDispatcher: revGeneric
	revDispatcher.Register(dtypes.Int8, revGeneric[int8])
	revDispatcher.Register(dtypes.Int16, revGeneric[int16])
	revDispatcher.Register(dtypes.Int32, revGeneric[int32])
	revDispatcher.Register(dtypes.Int64, revGeneric[int64])
	revDispatcher.Register(dtypes.Uint8, revGeneric[uint8])
	revDispatcher.Register(dtypes.Uint16, revGeneric[uint16])
	revDispatcher.Register(dtypes.Uint32, revGeneric[uint32])
	revDispatcher.Register(dtypes.Uint64, revGeneric[uint64])
	revDispatcher.Register(dtypes.Float32, revGeneric[float32])
	revDispatcher.Register(dtypes.Float64, revGeneric[float64])
	revDispatcher.Register(dtypes.BFloat16, revGeneric[bfloat16.BFloat16])
	revDispatcher.Register(dtypes.Float16, revGeneric[float16.Float16])
	revDispatcher.Register(dtypes.Generic, revGeneric[any])

	// fillDispatcher: fillNumber
	fillDispatcher.Register(dtypes.Int8, fillNumber[int8])
	fillDispatcher.Register(dtypes.Int16, fillNumber[int16])
	fillDispatcher.Register(dtypes.Int32, fillNumber[int32])
	fillDispatcher.Register(dtypes.Int64, fillNumber[int64])
	fillDispatcher.Register(dtypes.Uint8, fillNumber[uint8])
	fillDispatcher.Register(dtypes.Uint16, fillNumber[uint16])
	fillDispatcher.Register(dtypes.Uint32, fillNumber[uint32])
	fillDispatcher.Register(dtypes.Uint64, fillNumber[uint64])
	fillDispatcher.Register(dtypes.Float32, fillNumber[float32])
	fillDispatcher.Register(dtypes.Float64, fillNumber[float64])

	// fillDispatcher: fillHalf
	fillDispatcher.Register(dtypes.BFloat16, fillHalf[bfloat16.BFloat16])
	fillDispatcher.Register(dtypes.Float16, fillHalf[float16.Float16])

	// scalDispatcher: scalInt
	scalDispatcher.Register(dtypes.Int8, scalInt[int8])
	scalDispatcher.Register(dtypes.Int16, scalInt[int16])
	scalDispatcher.Register(dtypes.Int32, scalInt[int32])
	scalDispatcher.Register(dtypes.Int64, scalInt[int64])
	scalDispatcher.Register(dtypes.Uint8, scalInt[uint8])
	scalDispatcher.Register(dtypes.Uint16, scalInt[uint16])
	scalDispatcher.Register(dtypes.Uint32, scalInt[uint32])
	scalDispatcher.Register(dtypes.Uint64, scalInt[uint64])

	// scalDispatcher: scalFloat
	scalDispatcher.Register(dtypes.Float32, scalFloat[float32])
	scalDispatcher.Register(dtypes.Float64, scalFloat[float64])

	// scalDispatcher: scalHalf
	scalDispatcher.Register(dtypes.BFloat16, scalHalf[bfloat16.BFloat16])
	scalDispatcher.Register(dtypes.Float16, scalHalf[float16.Float16])

	// axpyDispatcher: axpyInt
	axpyDispatcher.Register(dtypes.Int8, axpyInt[int8])
	axpyDispatcher.Register(dtypes.Int16, axpyInt[int16])
	axpyDispatcher.Register(dtypes.Int32, axpyInt[int32])
	axpyDispatcher.Register(dtypes.Int64, axpyInt[int64])
	axpyDispatcher.Register(dtypes.Uint8, axpyInt[uint8])
	axpyDispatcher.Register(dtypes.Uint16, axpyInt[uint16])
	axpyDispatcher.Register(dtypes.Uint32, axpyInt[uint32])
	axpyDispatcher.Register(dtypes.Uint64, axpyInt[uint64])

	// axpyDispatcher: axpyFloat
	axpyDispatcher.Register(dtypes.Float32, axpyFloat[float32])
	axpyDispatcher.Register(dtypes.Float64, axpyFloat[float64])

	// dotDispatcher: dotInt
	dotDispatcher.Register(dtypes.Int8, dotInt[int8])
	dotDispatcher.Register(dtypes.Int16, dotInt[int16])
	dotDispatcher.Register(dtypes.Int32, dotInt[int32])
	dotDispatcher.Register(dtypes.Int64, dotInt[int64])
	dotDispatcher.Register(dtypes.Uint8, dotInt[uint8])
	dotDispatcher.Register(dtypes.Uint16, dotInt[uint16])
	dotDispatcher.Register(dtypes.Uint32, dotInt[uint32])
	dotDispatcher.Register(dtypes.Uint64, dotInt[uint64])

	// dotDispatcher: dotFloat
	dotDispatcher.Register(dtypes.Float32, dotFloat[float32])
	dotDispatcher.Register(dtypes.Float64, dotFloat[float64])

	// reduceDispatcher: reduceInt
	reduceDispatcher.Register(dtypes.Int8, reduceInt[int8])
	reduceDispatcher.Register(dtypes.Int16, reduceInt[int16])
	reduceDispatcher.Register(dtypes.Int32, reduceInt[int32])
	reduceDispatcher.Register(dtypes.Int64, reduceInt[int64])
	reduceDispatcher.Register(dtypes.Uint8, reduceInt[uint8])
	reduceDispatcher.Register(dtypes.Uint16, reduceInt[uint16])
	reduceDispatcher.Register(dtypes.Uint32, reduceInt[uint32])
	reduceDispatcher.Register(dtypes.Uint64, reduceInt[uint64])

	// reduceDispatcher: reduceFloat
	reduceDispatcher.Register(dtypes.Float32, reduceFloat[float32])
	reduceDispatcher.Register(dtypes.Float64, reduceFloat[float64])

	// reduceDispatcher: reduceHalf
	reduceDispatcher.Register(dtypes.BFloat16, reduceHalf[bfloat16.BFloat16])
	reduceDispatcher.Register(dtypes.Float16, reduceHalf[float16.Float16])

	// statisticDispatcher: reduceInt
	statisticDispatcher.Register(dtypes.Int8, reduceInt[int8])
	statisticDispatcher.Register(dtypes.Int16, reduceInt[int16])
	statisticDispatcher.Register(dtypes.Int32, reduceInt[int32])
	statisticDispatcher.Register(dtypes.Int64, reduceInt[int64])
	statisticDispatcher.Register(dtypes.Uint8, reduceInt[uint8])
	statisticDispatcher.Register(dtypes.Uint16, reduceInt[uint16])
	statisticDispatcher.Register(dtypes.Uint32, reduceInt[uint32])
	statisticDispatcher.Register(dtypes.Uint64, reduceInt[uint64])

	// statisticDispatcher: reduceFloat
	statisticDispatcher.Register(dtypes.Float32, reduceFloat[float32])
	statisticDispatcher.Register(dtypes.Float64, reduceFloat[float64])
}

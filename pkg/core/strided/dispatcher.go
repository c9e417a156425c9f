// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/strided/pkg/core/dtypes"
)

// DispatchFunc is the type of functions a Dispatcher can handle. The parameters are whatever the
// class of functions agreed upon, usually the buffers (as `any`) and the strides and offsets.
type DispatchFunc func(params ...any) any

// Dispatcher holds one function per element kind for a class of functions (e.g. "sum"): it is how the
// runtime-typed entry points pick, once per call, the generic instantiation that runs the loop.
//
// Registration happens at init time; afterwards a Dispatcher is read-only and safe for concurrent use.
type Dispatcher struct {
	Name  string
	fnMap [dtypes.NumDTypes]DispatchFunc
}

// NewDispatcher creates a new dispatcher for a class of functions.
func NewDispatcher(name string) *Dispatcher {
	return &Dispatcher{Name: name}
}

func (d *Dispatcher) checkDType(dtype dtypes.DType) {
	if !dtype.IsSupported() {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.Name)
	}
}

// Register a function to handle a specific dtype.
// This overwrites any previous setting for the same dtype.
func (d *Dispatcher) Register(dtype dtypes.DType, fn DispatchFunc) {
	d.checkDType(dtype)
	d.fnMap[dtype] = fn
}

// RegisterIfNotSet a function to handle a specific dtype.
func (d *Dispatcher) RegisterIfNotSet(dtype dtypes.DType, fn DispatchFunc) {
	d.checkDType(dtype)
	if d.fnMap[dtype] != nil {
		return
	}
	d.fnMap[dtype] = fn
}

// Supports returns whether a function is registered for dtype.
func (d *Dispatcher) Supports(dtype dtypes.DType) bool {
	return dtype.IsSupported() && d.fnMap[dtype] != nil
}

// DTypes returns the dtypes with a registered function, in enum order.
func (d *Dispatcher) DTypes() []dtypes.DType {
	var list []dtypes.DType
	for dtype, fn := range d.fnMap {
		if fn != nil {
			list = append(list, dtypes.DType(dtype))
		}
	}
	return list
}

// Dispatch calls the function that matches the dtype and returns its result.
//
// It panics with an ArgumentError if no function is registered for dtype.
func (d *Dispatcher) Dispatch(dtype dtypes.DType, params ...any) any {
	if !d.Supports(dtype) {
		Panicf(d.Name, "dtype", "element kind %s not supported", dtype)
	}
	return d.fnMap[dtype](params...)
}

// TryDispatch is like Dispatch, but returns any panic raised by the dispatched function (or by the lookup)
// as an error.
func (d *Dispatcher) TryDispatch(dtype dtypes.DType, params ...any) (result any, err error) {
	err = Catch(func() { result = d.Dispatch(dtype, params...) })
	return
}

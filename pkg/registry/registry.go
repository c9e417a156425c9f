// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package registry is the static catalog of the real-valued kernels of this module: every float64 ("d") and
// float32 ("s") variant of the BLAS, extended BLAS, statistics and element-wise kernels, with a uniform
// float64 calling convention.
//
// The catalog is built once when the package is initialized and is read-only afterwards. It is what the
// command line tool lists and benchmarks, and what the property sweep (internal/sweep) verifies.
//
// Example:
//
//	k := registry.MustLookup("dsum")
//	x := []float64{1, 2, 3, 4}
//	sum := k.Call(2, nil, []registry.Operand{{Data: x, Stride: 2}})[0] // 1+3
package registry

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Operand is a strided view over a float64 buffer, as taken by Kernel.Call.
type Operand = strided.View[float64]

// Shape classifies the kernels by the operands they take and what they produce.
type Shape int

const (
	// Reduce kernels read one vector (plus a mask for the masked ones) and return a scalar.
	Reduce Shape = iota
	// Map kernels read a vector x and write a vector y.
	Map
	// InPlace kernels read and write a single vector.
	InPlace
	// Binary kernels combine two vectors, either into a scalar (dot), in place (swap, axpy) or into a
	// third vector (add).
	Binary
	// Tuple kernels read a vector and write a fixed number of results (e.g. mean and variance) into an
	// output vector.
	Tuple
)

var shapeNames = []string{"reduce", "map", "in-place", "binary", "tuple"}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Output classifies the kernels by which buffers they write.
type Output int

const (
	// Scalar kernels return a value and write no buffer.
	Scalar Output = iota
	// MutatesInput kernels update their operands in place.
	MutatesInput
	// MutatesOutput kernels write only their last operand and leave the others untouched.
	MutatesOutput
	// CopyProducing kernels return a newly allocated buffer and write no operand.
	CopyProducing
)

var outputNames = []string{"scalar", "mutates-input", "mutates-output", "copy"}

// String implements fmt.Stringer.
func (o Output) String() string {
	if o < 0 || int(o) >= len(outputNames) {
		return fmt.Sprintf("Output(%d)", int(o))
	}
	return outputNames[o]
}

// Kernel describes one registered kernel.
type Kernel struct {
	Name      string // e.g. "dsum", "svariancewd".
	Namespace string // e.g. "blas", "blas/ext", "stats", "ops".
	DType     dtypes.DType
	Shape     Shape
	Output    Output

	// Algorithm is the name of the summation or variance algorithm ("pw", "kbn", "wd", ...), if any.
	Algorithm string

	// Unroll is the unroll factor of the contiguous fast path, or 0 if the kernel has a single loop.
	Unroll int

	// Operands is the number of vector operands the kernel takes.
	Operands int

	// Results is the number of elements Tuple kernels write to their output operand, whatever n is.
	Results int

	// Returns is the index of the operand whose buffer MutatesInput and MutatesOutput kernels return:
	// always the last one for MutatesOutput, usually the first one for MutatesInput (swap and rot return y).
	Returns int

	// Scalars names the scalar arguments, in order, and Defaults holds the values used when Call is given
	// nil scalars.
	Scalars  []string
	Defaults []float64

	// Empty is the result of a Scalar kernel for n <= 0: 0 for the BLAS sums, -1 for iamax and NaN for the
	// statistics.
	Empty float64

	// OrderInvariant is set for Scalar kernels whose result is bit-identical when the operands are visited in
	// reverse order (maximum, minimum, range, ...). Sums aren't: rounding depends on the order.
	OrderInvariant bool

	Doc string

	// Call runs the kernel on n logical elements of the operands.
	//
	// It returns the scalar result (a slice of length 1) for Scalar kernels, the buffer of the operand
	// Returns for MutatesInput and MutatesOutput kernels and a new buffer, sharing no memory with the
	// operands, for CopyProducing kernels. Invalid arguments panic with a strided.ArgumentError, like the
	// kernels do. A kernel breaking this contract panics with an error wrapping ErrContract.
	//
	// float32 kernels convert the operands and the scalars, so results are exact only for float32
	// representable data.
	Call func(n int, scalars []float64, operands []Operand) []float64
}

// ErrContract is wrapped by the errors reporting a kernel that returned a buffer other than the one its
// Output kind promises.
var ErrContract = errors.New("kernel output contract violated")

// String returns a one-line description of the kernel.
func (k *Kernel) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", k.Name, k.Namespace, k.DType, k.Shape)
}

// TryCall is like Call, but returns invalid arguments and contract violations as an error.
func (k *Kernel) TryCall(n int, scalars []float64, operands []Operand) (result []float64, err error) {
	err = strided.Catch(func() { result = k.Call(n, scalars, operands) })
	if err != nil {
		err = errors.WithMessagef(err, "registry kernel %q", k.Name)
	}
	return
}

var (
	kernels = make(map[string]*Kernel)
	frozen  bool
)

func init() {
	registerBLAS()
	registerExt()
	registerStats()
	registerOps()
	frozen = true
	klog.V(1).Infof("registry: %d kernels registered in %d namespaces", len(kernels), len(Namespaces()))
}

// add registers the kernel. Registering after initialization or registering a name twice is a bug.
func add(k *Kernel) {
	if frozen {
		exceptions.Panicf("registry: kernel %q registered after initialization", k.Name)
	}
	if _, found := kernels[k.Name]; found {
		exceptions.Panicf("registry: kernel %q registered twice", k.Name)
	}
	kernels[k.Name] = k
}

// Lookup returns the kernel with the given name, e.g. "dsum", and whether it was found.
func Lookup(name string) (*Kernel, bool) {
	k, found := kernels[strings.ToLower(name)]
	return k, found
}

// MustLookup is like Lookup, but panics if the kernel is not registered.
func MustLookup(name string) *Kernel {
	k, found := Lookup(name)
	if !found {
		exceptions.Panicf("registry: unknown kernel %q", name)
	}
	return k
}

// Names returns the sorted names of all registered kernels.
func Names() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Namespaces returns the sorted list of namespaces with at least one kernel.
func Namespaces() []string {
	var namespaces []string
	for _, k := range kernels {
		if !slices.Contains(namespaces, k.Namespace) {
			namespaces = append(namespaces, k.Namespace)
		}
	}
	sort.Strings(namespaces)
	return namespaces
}

// InNamespace returns the kernels of the namespace, sorted by name.
func InNamespace(namespace string) []*Kernel {
	var list []*Kernel
	Enumerate(func(k *Kernel) bool {
		if k.Namespace == namespace {
			list = append(list, k)
		}
		return true
	})
	return list
}

// Enumerate calls fn for every kernel, sorted by name, until fn returns false.
func Enumerate(fn func(k *Kernel) bool) {
	for _, name := range Names() {
		if !fn(kernels[name]) {
			return
		}
	}
}

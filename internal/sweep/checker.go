// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/pkg/errors"
)

// emptyBufferLength is the length of the buffers passed with n <= 0.
const emptyBufferLength = 4

// trailing is the number of buffer elements after the last element of the embedded views.
const trailing = 2

// checker verifies the properties of one kernel. It is used by a single goroutine.
type checker struct {
	config   *Config
	kernel   *registry.Kernel
	rng      *rand.Rand
	cases    int
	failures []Failure
}

// reference holds the outcome of the kernel on contiguous data.
type reference struct {
	inputs [][]float64 // Operands before the call.
	after  [][]float64 // Operands after the call.
	result []float64
}

func (c *checker) fail(check Check, n, stride, offset int, format string, args ...any) {
	c.failures = append(c.failures, Failure{
		Kernel: c.kernel.Name, Check: check, N: n, Stride: stride, Offset: offset,
		Message: fmt.Sprintf(format, args...),
	})
}

// length of the operand i for n elements: Tuple kernels write a fixed number of results.
func (c *checker) length(i, n int) int {
	if c.kernel.Shape == registry.Tuple && i == c.kernel.Operands-1 {
		return c.kernel.Results
	}
	return n
}

func (c *checker) randomBuffer(length int) []float64 {
	buf := make([]float64, length)
	for i := range buf {
		buf[i] = randomValue(c.rng, c.kernel.DType)
	}
	return buf
}

// call runs the kernel and verifies the buffer it returns: the designated operand's for mutating kernels,
// one sharing no memory with the operands for copy-producing ones. The result is cloned.
func (c *checker) call(n int, operands []registry.Operand) ([]float64, error) {
	c.cases++
	k := c.kernel
	result, err := k.TryCall(n, nil, operands)
	if err != nil {
		return nil, err
	}
	switch k.Output {
	case registry.MutatesInput, registry.MutatesOutput:
		if !strided.SameBuffer(result, operands[k.Returns].Data) {
			return nil, errors.Wrapf(registry.ErrContract, "%s kernel didn't return the buffer of its operand %d",
				k.Output, k.Returns)
		}
	case registry.CopyProducing:
		for i, op := range operands {
			if strided.Overlaps(result, op.Data) {
				return nil, errors.Wrapf(registry.ErrContract, "returned buffer shares memory with operand %d", i)
			}
		}
	}
	return slices.Clone(result), nil
}

// callFailed records a failed call: contract violations under Contract, anything else under check.
func (c *checker) callFailed(check Check, n, stride, offset int, err error) {
	if errors.Is(err, registry.ErrContract) {
		check = Contract
	}
	c.fail(check, n, stride, offset, "call failed: %v", err)
}

func (c *checker) run() {
	for _, n := range c.config.Sizes {
		if n <= 0 {
			c.checkEmpty(n)
			continue
		}
		ref := c.checkContiguous(n)
		if ref == nil {
			continue
		}
		if c.kernel.OrderInvariant && c.kernel.Output == registry.Scalar {
			c.checkSymmetry(n, ref)
		}
		for _, k := range c.config.Strides {
			for _, stride := range []int{k, -k} {
				for _, offset := range c.config.Offsets {
					c.checkEmbedded(n, stride, offset, ref)
				}
			}
		}
	}
}

// checkEmpty verifies that for n <= 0 nothing is written and the neutral value is returned.
func (c *checker) checkEmpty(n int) {
	k := c.kernel
	buffers := make([][]float64, k.Operands)
	operands := make([]registry.Operand, k.Operands)
	for i := range buffers {
		buffers[i] = c.randomBuffer(emptyBufferLength)
		operands[i] = registry.Operand{Data: slices.Clone(buffers[i]), Stride: 1}
	}
	result, err := c.call(n, operands)
	if err != nil {
		c.callFailed(Empty, n, 1, 0, err)
		return
	}
	for i, op := range operands {
		for p, got := range op.Data {
			want := buffers[i][p]
			if k.Shape == registry.Tuple && i == k.Operands-1 && p < k.Results {
				// Tuple kernels report NaN results for empty inputs.
				want = k.Empty
			}
			if !same(got, want) {
				c.fail(Empty, n, 1, 0, "operand %d was modified at index %d: got %g, want %g", i, p, got, want)
				break
			}
		}
	}
	switch k.Output {
	case registry.Scalar:
		if len(result) != 1 || !same(result[0], k.Empty) {
			c.fail(Empty, n, 1, 0, "got %v, want [%g]", result, k.Empty)
		}
	case registry.CopyProducing:
		if len(result) != 0 {
			c.fail(Empty, n, 1, 0, "produced %d elements, want none", len(result))
		}
	}
}

// checkContiguous runs the kernel on contiguous data and verifies it only writes what its Output kind
// allows. It returns nil if the kernel failed.
func (c *checker) checkContiguous(n int) *reference {
	k := c.kernel
	ref := &reference{inputs: make([][]float64, k.Operands), after: make([][]float64, k.Operands)}
	operands := make([]registry.Operand, k.Operands)
	for i := range operands {
		ref.inputs[i] = c.randomBuffer(c.length(i, n))
		operands[i] = registry.Operand{Data: slices.Clone(ref.inputs[i]), Stride: 1}
	}
	result, err := c.call(n, operands)
	if err != nil {
		c.callFailed(Contract, n, 1, 0, err)
		return nil
	}
	ref.result = result
	for i, op := range operands {
		ref.after[i] = op.Data
		readOnly := k.Output == registry.Scalar || k.Output == registry.CopyProducing ||
			(k.Output == registry.MutatesOutput && i < k.Operands-1)
		if !readOnly {
			continue
		}
		for p := range op.Data {
			if !same(op.Data[p], ref.inputs[i][p]) {
				c.fail(Contract, n, 1, 0, "%s kernel modified its operand %d at index %d", k.Output, i, p)
				break
			}
		}
	}
	if k.Output == registry.CopyProducing {
		if len(result) != n {
			c.fail(Contract, n, 1, 0, "produced %d elements, want %d", len(result), n)
		}
	}
	return ref
}

// checkSymmetry verifies that an order-invariant reduction gives the same result on the reversed sequence.
func (c *checker) checkSymmetry(n int, ref *reference) {
	operands := make([]registry.Operand, c.kernel.Operands)
	for i := range operands {
		v := registry.Operand{Data: slices.Clone(ref.inputs[i]), Stride: 1}
		operands[i] = v.Reverse(c.length(i, n))
	}
	result, err := c.call(n, operands)
	if err != nil {
		c.callFailed(Symmetry, n, -1, n-1, err)
		return
	}
	if len(result) != 1 || !same(result[0], ref.result[0]) {
		c.fail(Symmetry, n, -1, n-1, "got %v on the reversed input, %v on the input", result, ref.result)
	}
}

// checkEmbedded runs the kernel on the reference data embedded in larger buffers with the given stride, and
// compares the results and the written elements with the contiguous run. Elements outside the views must
// be left untouched.
func (c *checker) checkEmbedded(n, stride, offset int, ref *reference) {
	k := c.kernel
	operands := make([]registry.Operand, k.Operands)
	before := make([][]float64, k.Operands)
	for i := range operands {
		length := c.length(i, n)
		abs := max(stride, -stride)
		buf := c.randomBuffer(offset + (length-1)*abs + 1 + trailing)
		v := strided.NewViewNDArray(buf, stride, offset+strided.Offset(length, stride))
		for j := range length {
			v.Set(j, ref.inputs[i][j])
		}
		before[i] = slices.Clone(buf)
		operands[i] = v
	}
	result, err := c.call(n, operands)
	if err != nil {
		c.callFailed(Identity, n, stride, offset, err)
		return
	}

	if k.Output == registry.Scalar || k.Output == registry.CopyProducing {
		if !slices.EqualFunc(result, ref.result, same) {
			c.fail(Identity, n, stride, offset, "got %v, contiguous run got %v", truncate(result), truncate(ref.result))
		}
	}
	for i, v := range operands {
		length := c.length(i, n)
		inView := make(map[int]int, length)
		for j := range length {
			inView[v.Index(j)] = j
		}
		for p, got := range v.Data {
			if j, found := inView[p]; found {
				if want := ref.after[i][j]; !same(got, want) {
					c.fail(Identity, n, stride, offset, "operand %d element %d: got %g, contiguous run got %g", i, j, got, want)
					break
				}
			} else if !same(got, before[i][p]) {
				c.fail(Contract, n, stride, offset, "operand %d written outside its view, at buffer index %d", i, p)
				break
			}
		}
	}
}

// truncate long results for the failure messages.
func truncate(values []float64) []float64 {
	const maxLen = 8
	if len(values) > maxLen {
		return values[:maxLen]
	}
	return values
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"context"
	"math"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllKernels runs the default sweep over the whole registry.
func TestAllKernels(t *testing.T) {
	config := DefaultConfig()
	if testing.Short() {
		config.Sizes = []int{0, 1, 9, 130}
	}
	var progress atomic.Int32
	config.Progress = func(done, total int) { progress.Add(1) }
	report, err := Run(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, len(registry.Names()), report.Kernels)
	assert.Equal(t, int32(report.Kernels), progress.Load())
	assert.Positive(t, report.Cases)
	for _, f := range report.Failures {
		t.Error(f)
	}
	assert.True(t, report.OK())
}

// brokenSum takes the contiguous path for stride 1 and a different summation order otherwise, writes into
// the x buffer and returns a sentinel for n <= 0: the sweep must catch all of it.
func brokenSum() *registry.Kernel {
	k := &registry.Kernel{
		Name: "dbrokensum", Namespace: "test", DType: dtypes.Float64, Shape: registry.Reduce,
		Output: registry.Scalar, Operands: 1, OrderInvariant: true,
	}
	k.Call = func(n int, _ []float64, operands []registry.Operand) []float64 {
		if n <= 0 {
			return []float64{-7}
		}
		x := operands[0]
		x.Check("dbrokensum", "x", n)
		var sum float64
		if x.Stride == 1 {
			for i := range n {
				if v := x.At(i); v == v {
					sum += v
				}
			}
		} else {
			for i := n - 1; i >= 0; i-- {
				if v := x.At(i); v == v {
					sum += v * 1.0000001
				}
			}
		}
		if len(x.Data) > x.Offset+1 && x.Stride != 1 {
			x.Data[len(x.Data)-1] = 0.5
		}
		return []float64{sum}
	}
	return k
}

func TestDetectsViolations(t *testing.T) {
	config := DefaultConfig()
	config.Sizes = []int{0, 10}
	config.Parallelism = 0
	report, err := Run(context.Background(), config, brokenSum())
	require.NoError(t, err)
	require.False(t, report.OK())

	found := make(map[Check]bool)
	for _, f := range report.Failures {
		assert.Equal(t, "dbrokensum", f.Kernel)
		found[f.Check] = true
	}
	assert.True(t, found[Empty], "empty check")
	assert.True(t, found[Identity], "identity check")
	assert.True(t, found[Contract], "contract check")
}

func TestDetectsContractViolations(t *testing.T) {
	// freshCopy writes y but returns a new buffer.
	freshCopy := &registry.Kernel{
		Name: "dfreshcopy", Namespace: "test", DType: dtypes.Float64, Shape: registry.Map,
		Output: registry.MutatesOutput, Operands: 2, Returns: 1,
	}
	freshCopy.Call = func(n int, _ []float64, operands []registry.Operand) []float64 {
		x, y := operands[0], operands[1]
		for i := range max(n, 0) {
			y.Set(i, x.At(i))
		}
		return slices.Clone(y.Data)
	}
	// leakyGather returns its operand instead of a copy.
	leakyGather := &registry.Kernel{
		Name: "dleakygather", Namespace: "test", DType: dtypes.Float64, Shape: registry.Map,
		Output: registry.CopyProducing, Operands: 1,
	}
	leakyGather.Call = func(n int, _ []float64, operands []registry.Operand) []float64 {
		if n <= 0 {
			return nil
		}
		return operands[0].Data
	}

	config := DefaultConfig()
	config.Sizes = []int{0, 5}
	report, err := Run(context.Background(), config, freshCopy, leakyGather)
	require.NoError(t, err)
	failed := make(map[string]bool)
	for _, f := range report.Failures {
		assert.Equal(t, Contract, f.Check, "%s", f)
		failed[f.Kernel] = true
	}
	assert.True(t, failed["dfreshcopy"])
	assert.True(t, failed["dleakygather"])
}

func TestSingleKernel(t *testing.T) {
	config := DefaultConfig()
	config.Parallelism = 2
	report, err := Run(context.Background(), config, registry.MustLookup("dmax"), registry.MustLookup("saxpy"))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Kernels)
	assert.Empty(t, report.Failures)
}

func TestInvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Sizes: []int{1}})
	require.Error(t, err)
	_, err = Run(context.Background(), Config{Sizes: []int{1}, Strides: []int{0}})
	require.Error(t, err)
	_, err = Run(context.Background(), Config{Sizes: []int{1}, Strides: []int{1}, Offsets: []int{-1}})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSame(t *testing.T) {
	assert.True(t, same(math.NaN(), math.NaN()))
	assert.False(t, same(0, math.Copysign(0, -1)))
	assert.True(t, same(1.5, 1.5))
	assert.False(t, same(1, math.NaN()))
	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "Check(9)", Check(9).String())
}

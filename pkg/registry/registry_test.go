// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/gomlx/strided/pkg/blas"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestLookup(t *testing.T) {
	k, found := Lookup("dsum")
	require.True(t, found)
	assert.Equal(t, dtypes.Float64, k.DType)
	assert.Equal(t, "blas/ext", k.Namespace)
	assert.Equal(t, Reduce, k.Shape)
	assert.Equal(t, Scalar, k.Output)
	assert.Equal(t, "pw", k.Algorithm)

	k, found = Lookup("SSUM")
	require.True(t, found)
	assert.Equal(t, dtypes.Float32, k.DType)

	_, found = Lookup("dnope")
	assert.False(t, found)
	require.Panics(t, func() { MustLookup("dnope") })
	assert.Equal(t, "ddot", MustLookup("ddot").Name)
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"blas", "blas/ext", "ops", "stats", "strided"}, Namespaces())

	names := Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		k := MustLookup(name)
		assert.Equal(t, len(k.Scalars), len(k.Defaults), "kernel %s", name)
		if k.Shape == Tuple {
			assert.Positive(t, k.Results, "kernel %s", name)
		}
		// Every kernel comes in both real precisions.
		switch k.DType {
		case dtypes.Float64:
			_, found := Lookup("s" + strings.TrimPrefix(name, "d"))
			assert.True(t, found, "float32 variant of %s", name)
		case dtypes.Float32:
			_, found := Lookup("d" + strings.TrimPrefix(name, "s"))
			assert.True(t, found, "float64 variant of %s", name)
		default:
			t.Errorf("kernel %s has unexpected dtype %s", name, k.DType)
		}
	}

	for _, k := range InNamespace("blas") {
		assert.Equal(t, "blas", k.Namespace)
	}
	assert.Contains(t, names, "dvariancewd")
	assert.Contains(t, names, "snanstdevch")
	assert.Contains(t, names, "dsort2hp")

	count := 0
	Enumerate(func(k *Kernel) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestRegisterAfterInit(t *testing.T) {
	require.Panics(t, func() { add(&Kernel{Name: "dlate"}) })
}

func TestCall(t *testing.T) {
	// Reductions: stride 2 over the first 2 elements.
	x := []float64{1, 2, 3, 4}
	assert.Equal(t, 4.0, MustLookup("dsum").Call(2, nil, []Operand{{Data: x, Stride: 2}})[0])
	assert.Equal(t, 4.0, MustLookup("ssum").Call(2, nil, []Operand{{Data: x, Stride: 2}})[0])
	assert.Equal(t, 3.0, MustLookup("diamax").Call(4, nil, []Operand{{Data: x, Stride: 1}})[0])
	assert.Equal(t, -1.0, MustLookup("diamax").Call(0, nil, []Operand{{Data: x, Stride: 1}})[0])
	assert.True(t, math.IsNaN(MustLookup("dmax").Call(0, nil, []Operand{{Data: x, Stride: 1}})[0]))

	// Negative stride in convention form.
	y := []float64{10, 20, 30, 40}
	got := MustLookup("scopy").Call(4, nil, []Operand{
		strided.NewView(x, 4, 1), strided.NewView(y, 4, -1)})
	assert.Equal(t, []float64{4, 3, 2, 1}, got)
	assert.Equal(t, []float64{4, 3, 2, 1}, y, "float32 kernels copy their output back")

	// In place, with scalars.
	z := []float64{1, 2, 3}
	MustLookup("sscal").Call(3, []float64{2}, []Operand{{Data: z, Stride: 1}})
	assert.Equal(t, []float64{2, 4, 6}, z)
	MustLookup("dscal").Call(3, nil, []Operand{{Data: z, Stride: 1}})
	assert.Equal(t, []float64{1, 2, 3}, z, "default alpha is 0.5")

	// Swap mutates both operands.
	a, b := []float64{1, 2}, []float64{3, 4}
	MustLookup("sswap").Call(2, nil, []Operand{{Data: a, Stride: 1}, {Data: b, Stride: 1}})
	assert.Equal(t, []float64{3, 4}, a)
	assert.Equal(t, []float64{1, 2}, b)

	// Binary into a third operand.
	out := make([]float64, 2)
	got = MustLookup("dadd").Call(2, nil, []Operand{{Data: a, Stride: 1}, {Data: b, Stride: 1}, {Data: out, Stride: 1}})
	assert.Equal(t, []float64{4, 6}, got)
	assert.Equal(t, []float64{3, 4}, a)

	// Tuple.
	data := []float64{1, -2, -4, 5, 0, 3}
	pair := make([]float64, 2)
	got = MustLookup("dmeanvar").Call(len(data), []float64{0}, []Operand{{Data: data, Stride: 1}, {Data: pair, Stride: 1}})
	assert.InDelta(t, 0.5, got[0], 1e-15)
	assert.InDelta(t, 53.5/6, got[1], 1e-13)

	// Masked reduction: the second operand is the mask.
	mask := []float64{0, 1, 0, 0}
	assert.Equal(t, 3.0, MustLookup("dmskmax").Call(3, nil, []Operand{{Data: []float64{1, 9, 3, 7}, Stride: 1}, {Data: mask, Stride: 1}})[0])

	// Copy producing.
	src := []float64{1, 2, 3, 4, 5}
	copied := MustLookup("sgather").Call(3, nil, []Operand{{Data: src, Stride: -2, Offset: 4}})
	assert.Equal(t, []float64{5, 3, 1}, copied)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, src)
}

func TestTryCall(t *testing.T) {
	k := MustLookup("ddot")
	_, err := k.TryCall(2, nil, []Operand{{Data: []float64{1, 2}, Stride: 1}})
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))

	_, err = k.TryCall(3, nil, []Operand{{Data: []float64{1, 2}, Stride: 1}, {Data: []float64{1, 2, 3}, Stride: 1}})
	require.Error(t, err)
	assert.True(t, strided.IsArgumentError(err))
	assert.Contains(t, err.Error(), "ddot")

	_, err = MustLookup("daxpy").TryCall(1, []float64{1, 2}, []Operand{{Data: []float64{1}}, {Data: []float64{1}}})
	require.Error(t, err)

	got, err := k.TryCall(2, nil, []Operand{{Data: []float64{1, 2}, Stride: 1}, {Data: []float64{3, 4}, Stride: 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{11}, got)
}

func TestOutputContract(t *testing.T) {
	// Every mutating kernel hands back the buffer of its designated operand.
	Enumerate(func(k *Kernel) bool {
		if k.Output != MutatesInput && k.Output != MutatesOutput {
			return true
		}
		operands := make([]Operand, k.Operands)
		for i := range operands {
			operands[i] = Operand{Data: []float64{3, 1, 2}, Stride: 1}
		}
		got, err := k.TryCall(3, nil, operands)
		require.NoError(t, err, "kernel %s", k.Name)
		require.NotEmpty(t, got, "kernel %s", k.Name)
		assert.Same(t, &operands[k.Returns].Data[0], &got[0], "kernel %s", k.Name)
		return true
	})
	assert.Equal(t, 1, MustLookup("dswap").Returns)
	assert.Equal(t, 0, MustLookup("ssort2hp").Returns)
	assert.Equal(t, 1, MustLookup("dmeanvar").Returns)

	x := []float64{1, 2, 3, 4}
	copied := MustLookup("dgather").Call(4, nil, []Operand{{Data: x, Stride: 1}})
	assert.Equal(t, x, copied)
	assert.False(t, strided.Overlaps(copied, x))

	// A kernel that writes y but returns a fresh buffer breaks the contract, in both precisions.
	freshCopy64 := &Kernel{Name: "dfreshcopy", DType: dtypes.Float64, Output: MutatesOutput, Operands: 2, Returns: 1}
	freshCopy64.Call = adapt(freshCopy64, mapXY(
		func(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int) []float64 {
			return slices.Clone(blas.CopyNDArray(n, x, strideX, offsetX, y, strideY, offsetY))
		}))
	freshCopy32 := &Kernel{Name: "sfreshcopy", DType: dtypes.Float32, Output: MutatesOutput, Operands: 2, Returns: 1}
	freshCopy32.Call = adapt(freshCopy32, mapXY(
		func(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) []float32 {
			return slices.Clone(blas.CopyNDArray(n, x, strideX, offsetX, y, strideY, offsetY))
		}))
	for _, k := range []*Kernel{freshCopy64, freshCopy32} {
		_, err := k.TryCall(3, nil, []Operand{{Data: []float64{1, 2, 3}, Stride: 1}, {Data: make([]float64, 3), Stride: 1}})
		require.ErrorIs(t, err, ErrContract, "kernel %s", k.Name)
	}

	// A copy-producing kernel must not return (part of) an operand.
	leakyGather := &Kernel{Name: "dleakygather", DType: dtypes.Float64, Output: CopyProducing, Operands: 1}
	leakyGather.Call = adapt(leakyGather, func(n int, _ []float64, v []strided.View[float64]) (float64, []float64) {
		return 0, v[0].Data[1:]
	})
	_, err := leakyGather.TryCall(2, nil, []Operand{{Data: x, Stride: 1}})
	require.ErrorIs(t, err, ErrContract)
}

func TestVarianceAlgorithms(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	x := make([]float64, 1001)
	for i := range x {
		x[i] = 1e3 + rng.NormFloat64()
	}
	want := stat.Variance(x, nil)
	wantMean := floats.Sum(x) / float64(len(x))
	for _, suffix := range []string{"", "pn", "wd", "yc", "tk", "ch"} {
		got := MustLookup("dvariance"+suffix).Call(len(x), nil, []Operand{{Data: x, Stride: 1}})[0]
		assert.InDelta(t, want, got, 1e-9, "dvariance%s", suffix)
	}
	got := MustLookup("dvarmpn").Call(len(x), []float64{wantMean, 1}, []Operand{{Data: x, Stride: 1}})[0]
	assert.InDelta(t, want, got, 1e-9)
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sweep verifies the properties every registered kernel must have, over a grid of element counts,
// strides and offsets:
//
//   - Identity: the kernel gives bit-identical results on contiguous data (its unrolled path) and on the
//     same logical sequence embedded at stride k or -k, at any offset (its generic path).
//   - Empty: for n <= 0 no buffer is touched and Scalar kernels return their documented neutral value.
//   - Symmetry: order-invariant reductions give the same result on the reversed sequence.
//   - Contract: a kernel writes only what its Output kind says it writes, and never outside its views.
//
// Kernels are checked concurrently, each on its own buffers.
package sweep

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/gomlx/strided/internal/workerspool"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config of a sweep.
type Config struct {
	// Sizes are the element counts tested. Counts <= 0 run the Empty check.
	Sizes []int

	// Strides are the magnitudes of the strides the data is embedded at; each is tested with both signs.
	Strides []int

	// Offsets are the number of buffer elements before the first element of the embedded views.
	Offsets []int

	// Parallelism is the number of kernels checked concurrently: 0 checks them sequentially, -1 is unlimited.
	Parallelism int

	// Seed of the random data.
	Seed uint64

	// Progress, if set, is called after each kernel is checked with the number of kernels done so far.
	// It may be called concurrently.
	Progress func(done, total int)
}

// DefaultConfig returns a grid that covers the leftover and unrolled parts of every fast path, the
// pairwise blocks and both stride signs.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{-1, 0, 1, 2, 3, 5, 7, 8, 9, 17, 64, 129, 300, 1001},
		Strides:     []int{1, 2, 3},
		Offsets:     []int{0, 5},
		Parallelism: runtime.NumCPU(),
		Seed:        42,
	}
}

// Check identifies one of the properties verified.
type Check int

const (
	Identity Check = iota
	Empty
	Symmetry
	Contract
)

var checkNames = []string{"identity", "empty", "symmetry", "contract"}

// String implements fmt.Stringer.
func (c Check) String() string {
	if c < 0 || int(c) >= len(checkNames) {
		return fmt.Sprintf("Check(%d)", int(c))
	}
	return checkNames[c]
}

// Failure describes one violated property.
type Failure struct {
	Kernel string
	Check  Check

	// Case where it failed: stride and offset are 0 for the checks on contiguous data.
	N, Stride, Offset int

	Message string
}

// String implements fmt.Stringer.
func (f Failure) String() string {
	return fmt.Sprintf("%s: %s check failed for n=%d, stride=%d, offset=%d: %s",
		f.Kernel, f.Check, f.N, f.Stride, f.Offset, f.Message)
}

// Report of a sweep.
type Report struct {
	Kernels  int           // Number of kernels checked.
	Cases    int           // Number of kernel calls compared.
	Failures []Failure     // Sorted by kernel name.
	Elapsed  time.Duration // Wall time of the sweep.
}

// OK returns whether no property was violated.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Run checks the kernels, or all registered kernels if kernels is empty.
//
// It returns an error if the configuration is invalid or the context is cancelled; violated properties
// are reported as Failures, not as errors.
func Run(ctx context.Context, config Config, kernels ...*registry.Kernel) (*Report, error) {
	if len(config.Sizes) == 0 || len(config.Strides) == 0 {
		return nil, errors.New("sweep: Config.Sizes and Config.Strides can't be empty")
	}
	for _, stride := range config.Strides {
		if stride <= 0 {
			return nil, errors.Errorf("sweep: invalid stride %d in Config.Strides, strides must be positive", stride)
		}
	}
	for _, offset := range config.Offsets {
		if offset < 0 {
			return nil, errors.Errorf("sweep: invalid offset %d in Config.Offsets, offsets can't be negative", offset)
		}
	}
	if len(config.Offsets) == 0 {
		config.Offsets = []int{0}
	}
	if len(kernels) == 0 {
		registry.Enumerate(func(k *registry.Kernel) bool {
			kernels = append(kernels, k)
			return true
		})
	}

	start := time.Now()
	pool := workerspool.New()
	pool.SetMaxParallelism(config.Parallelism)
	results := make([]*checker, len(kernels))
	var (
		mu   sync.Mutex
		done int
	)
	pool.Run(len(kernels), func(i int) {
		if ctx.Err() != nil {
			return
		}
		k := kernels[i]
		c := &checker{config: &config, kernel: k,
			rng: rand.New(rand.NewPCG(config.Seed, uint64(i)))}
		c.run()
		results[i] = c
		klog.V(2).Infof("sweep: %s checked, %d cases, %d failures", k.Name, c.cases, len(c.failures))
		if config.Progress != nil {
			mu.Lock()
			done++
			count := done
			mu.Unlock()
			config.Progress(count, len(kernels))
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "sweep interrupted")
	}

	report := &Report{Kernels: len(kernels)}
	for _, c := range results {
		report.Cases += c.cases
		report.Failures = append(report.Failures, c.failures...)
	}
	slices.SortStableFunc(report.Failures, func(a, b Failure) int {
		if a.Kernel < b.Kernel {
			return -1
		} else if a.Kernel > b.Kernel {
			return 1
		}
		return 0
	})
	for _, f := range report.Failures {
		klog.Warningf("sweep: %s", f)
	}
	report.Elapsed = time.Since(start)
	return report, nil
}

// same reports whether a and b are bit-identical, treating all NaNs as equal.
func same(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// randomValue draws the test data: mostly normal values, with exact zeros (of both signs) and NaNs mixed in.
// Masked kernels read their mask from a float operand, so zeros also leave about a quarter of the elements
// unmasked.
func randomValue(rng *rand.Rand, dtype dtypes.DType) float64 {
	var v float64
	switch p := rng.Float64(); {
	case p < 0.2:
		v = 0
	case p < 0.25:
		v = math.Copysign(0, -1)
	case p < 0.27:
		v = math.NaN()
	default:
		v = rng.NormFloat64() * 10
	}
	if dtype == dtypes.Float32 {
		v = float64(float32(v))
	}
	return v
}

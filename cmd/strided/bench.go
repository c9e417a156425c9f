// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/strided/pkg/core/strided"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sys/cpu"
	"k8s.io/klog/v2"
)

const defaultMinTime = 200 * time.Millisecond

// benchResult holds the timing of one kernel for one element count.
type benchResult struct {
	RunID   string
	Kernel  string
	N       int
	Stride  int
	Runs    int
	Elapsed time.Duration // Total time of the Runs calls.
	Bytes   int           // Bytes of the operands' views touched per call.
}

// PerCall returns the average time of one call.
func (r benchResult) PerCall() time.Duration {
	return r.Elapsed / time.Duration(max(r.Runs, 1))
}

// NsPerElement returns the average time per element, in nanoseconds.
func (r benchResult) NsPerElement() float64 {
	return float64(r.Elapsed.Nanoseconds()) / float64(max(r.Runs, 1)) / float64(r.N)
}

// Throughput in elements per second.
func (r benchResult) Throughput() float64 {
	return 1e9 / r.NsPerElement()
}

// bench runs the -bench flag.
func bench() error {
	kernels, err := parseKernels(*flagBench)
	if err != nil {
		return err
	}
	if len(kernels) == 0 {
		return errors.New("-bench requires at least one kernel")
	}
	sizes, err := parseSizes(*flagSizes)
	if err != nil {
		return errors.WithMessage(err, "-sizes")
	}
	if *flagStride == 0 {
		return errors.New("-stride can't be 0")
	}
	runID := uuid.NewString()
	printCPU(runID)

	bar := progressbar.NewOptions(len(kernels)*len(sizes),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	var results []benchResult
	for _, k := range kernels {
		for _, n := range sizes {
			r, err := runBench(k, n, *flagStride, *flagMinTime)
			if err != nil {
				return err
			}
			r.RunID = runID
			results = append(results, r)
			klog.V(1).Infof("bench: %s n=%d: %d runs, %s per call", k.Name, n, r.Runs, r.PerCall())
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	printResults(results)
	if *flagCSV != "" {
		if err := saveCSV(*flagCSV, results); err != nil {
			return err
		}
		fmt.Printf("Results saved to %q\n", *flagCSV)
	}
	if *flagPlot != "" {
		if err := savePlot(*flagPlot, results); err != nil {
			return err
		}
		fmt.Printf("Plot saved to %q\n", *flagPlot)
	}
	return nil
}

// printCPU prints the run id and the CPU features relevant to the kernels' performance.
func printCPU(runID string) {
	printTitle("Benchmark")
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row(false, "run id", runID)
	table.Row(false, "platform", fmt.Sprintf("%s/%s, %s CPUs", runtime.GOOS, runtime.GOARCH,
		humanize.Comma(int64(runtime.NumCPU()))))
	var features []string
	addFeature := func(has bool, name string) {
		if has {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		addFeature(cpu.X86.HasSSE42, "SSE4.2")
		addFeature(cpu.X86.HasAVX, "AVX")
		addFeature(cpu.X86.HasAVX2, "AVX2")
		addFeature(cpu.X86.HasFMA, "FMA")
		addFeature(cpu.X86.HasAVX512F, "AVX-512F")
	case "arm64":
		addFeature(cpu.ARM64.HasASIMD, "ASIMD")
		addFeature(cpu.ARM64.HasFPHP, "FP16")
		addFeature(cpu.ARM64.HasSVE, "SVE")
	}
	if len(features) == 0 {
		features = append(features, "-")
	}
	table.Row(false, "cpu features", strings.Join(features, " "))
	fmt.Println(table.Table.Render())
}

// benchOperands allocates the operands of the kernel for n elements with the given stride, filled with values
// in [1, 2) so that every kernel (sqrt, inv, ...) stays in its normal range.
func benchOperands(k *registry.Kernel, n, stride int) (operands []registry.Operand, bytes int) {
	rng := rand.New(rand.NewPCG(uint64(n), uint64(stride)))
	operands = make([]registry.Operand, k.Operands)
	for i := range operands {
		length := n
		if k.Shape == registry.Tuple && i == k.Operands-1 {
			length = k.Results
		}
		buf := make([]float64, strided.BufferLength(length, stride))
		for j := range buf {
			buf[j] = 1 + rng.Float64()
		}
		operands[i] = strided.NewView(buf, length, stride)
		bytes += length * k.DType.Size()
	}
	return
}

// runBench times the kernel for at least minTime. Calls are run in batches of doubling size.
//
// Kernels that mutate their input would drift (e.g. scal repeatedly scaling towards denormals), so their
// operands are restored before every call, outside the timed section.
func runBench(k *registry.Kernel, n, stride int, minTime time.Duration) (r benchResult, err error) {
	r = benchResult{Kernel: k.Name, N: n, Stride: stride}
	operands, bytes := benchOperands(k, n, stride)
	r.Bytes = bytes
	if _, err = k.TryCall(n, nil, operands); err != nil {
		return r, errors.WithMessagef(err, "benchmarking %s with n=%d", k.Name, n)
	}
	var originals [][]float64
	if k.Output == registry.MutatesInput {
		for _, op := range operands {
			originals = append(originals, slices.Clone(op.Data))
		}
	}
	for batch := 1; r.Elapsed < minTime; batch *= 2 {
		if originals == nil {
			start := time.Now()
			for range batch {
				k.Call(n, nil, operands)
			}
			r.Elapsed += time.Since(start)
		} else {
			for range batch {
				for i, op := range operands {
					copy(op.Data, originals[i])
				}
				start := time.Now()
				k.Call(n, nil, operands)
				r.Elapsed += time.Since(start)
			}
		}
		r.Runs += batch
	}
	return r, nil
}

func printResults(results []benchResult) {
	printTitle("Results")
	table := newPlainTable(lipgloss.Left, lipgloss.Right)
	table.Table.Headers("Kernel", "N", "Stride", "Runs", "Time/call", "ns/element", "Throughput", "Bandwidth")
	for _, r := range results {
		var bandwidth float64
		if perCall := r.PerCall(); perCall > 0 {
			bandwidth = float64(r.Bytes) / perCall.Seconds()
		}
		table.Row(false, r.Kernel, humanize.Comma(int64(r.N)), strconv.Itoa(r.Stride), humanize.Comma(int64(r.Runs)),
			formatDuration(r.PerCall()), fmt.Sprintf("%.3f", r.NsPerElement()),
			humanize.SIWithDigits(r.Throughput(), 2, "elem/s"), humanize.Bytes(uint64(bandwidth))+"/s")
	}
	fmt.Println(table.Table.Render())
}

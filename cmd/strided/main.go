// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// strided lists, benchmarks and verifies the kernels of the registry.
//
// Usage:
//
//	strided -list [-namespace=stats] [-dtype=f32]
//	strided -bench=dsum,dscal [-sizes=10,1000,1000000] [-min_time=200ms] [-csv=out.csv] [-plot=out.png]
//	strided -verify [-parallelism=8] [-kernels=dsum,smax]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gomlx/strided/pkg/registry"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagList      = flag.Bool("list", false, "Lists the registered kernels.")
	flagNamespace = flag.String("namespace", "", "Restricts -list to the kernels of this namespace, e.g. \"stats\".")
	flagDType     = flag.String("dtype", "", "Restricts -list to the kernels of this dtype, e.g. \"float32\" or \"f32\".")

	flagBench   = flag.String("bench", "", "Comma-separated list of kernels to benchmark, e.g. \"dsum,dscal\".")
	flagSizes   = flag.String("sizes", "10,1000,1000000", "Comma-separated list of element counts used by -bench.")
	flagMinTime = flag.Duration("min_time", defaultMinTime, "Minimum time spent timing each kernel and size in -bench.")
	flagStride  = flag.Int("stride", 1, "Stride of the operands in -bench.")
	flagCSV     = flag.String("csv", "", "If set, -bench also saves its results as CSV to this file.")
	flagPlot    = flag.String("plot", "", "If set, -bench also plots the time per element to this file (.png, .svg or .pdf).")

	flagVerify      = flag.Bool("verify", false, "Verifies the properties of the kernels (see internal/sweep).")
	flagKernels     = flag.String("kernels", "", "Comma-separated list of kernels to -verify. Defaults to all.")
	flagParallelism = flag.Int("parallelism", -2, "Number of kernels verified concurrently: 0 for sequential, "+
		"-1 for unlimited. Defaults to the number of CPUs.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'strided -help'.", flag.Args())
		os.Exit(1)
	}

	var err error
	ok := true
	switch {
	case *flagList:
		err = list(*flagNamespace, *flagDType)
	case *flagBench != "":
		err = bench()
	case *flagVerify:
		ok, err = verify()
	default:
		klog.Errorf("Nothing to do: use -list, -bench or -verify. See 'strided -help'.")
		os.Exit(1)
	}
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// parseKernels looks up the comma-separated list of kernel names.
func parseKernels(names string) ([]*registry.Kernel, error) {
	var kernels []*registry.Kernel
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, found := registry.Lookup(name)
		if !found {
			return nil, errors.Errorf("unknown kernel %q, see 'strided -list' for the registered ones", name)
		}
		kernels = append(kernels, k)
	}
	return kernels, nil
}

// parseSizes parses the comma-separated list of positive element counts.
func parseSizes(sizes string) ([]int, error) {
	var list []int
	for _, part := range strings.Split(sizes, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(part, "_", ""))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid size %q", part)
		}
		if n <= 0 {
			return nil, errors.Errorf("invalid size %d, sizes must be positive", n)
		}
		list = append(list, n)
	}
	if len(list) == 0 {
		return nil, errors.New("no sizes given")
	}
	return list, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

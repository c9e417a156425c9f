// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/stats"
)

const nsStats = "stats"

// reduction is a statistics reduction registered for both float64 and float32.
type reduction struct {
	name           string
	f64            func(n int, x []float64, strideX, offsetX int) float64
	f32            func(n int, x []float32, strideX, offsetX int) float32
	algorithm      string
	orderInvariant bool
	doc            string
}

func registerStats() {
	nan := math.NaN()
	for _, r := range []reduction{
		{"max", stats.MaxNDArray[float64], stats.MaxNDArray[float32], "", true, "maximum, NaN if any element is NaN"},
		{"min", stats.MinNDArray[float64], stats.MinNDArray[float32], "", true, "minimum, NaN if any element is NaN"},
		{"maxabs", stats.MaxAbsNDArray[float64], stats.MaxAbsNDArray[float32], "", true, "maximum absolute value"},
		{"minabs", stats.MinAbsNDArray[float64], stats.MinAbsNDArray[float32], "", true, "minimum absolute value"},
		{"range", stats.RangeNDArray[float64], stats.RangeNDArray[float32], "", true, "max - min"},
		{"midrange", stats.MidRangeNDArray[float64], stats.MidRangeNDArray[float32], "", true, "(max + min) / 2"},
		{"nanmax", stats.NanMaxNDArray[float64], stats.NanMaxNDArray[float32], "", true, "maximum, ignoring NaNs"},
		{"nanmin", stats.NanMinNDArray[float64], stats.NanMinNDArray[float32], "", true, "minimum, ignoring NaNs"},
		{"nanmaxabs", stats.NanMaxAbsNDArray[float64], stats.NanMaxAbsNDArray[float32], "", true, "maximum absolute value, ignoring NaNs"},
		{"nanminabs", stats.NanMinAbsNDArray[float64], stats.NanMinAbsNDArray[float32], "", true, "minimum absolute value, ignoring NaNs"},
		{"nanrange", stats.NanRangeNDArray[float64], stats.NanRangeNDArray[float32], "", true, "max - min, ignoring NaNs"},
		{"maxsorted", stats.MaxSortedNDArray[float64], stats.MaxSortedNDArray[float32], "", true, "maximum of sorted x"},
		{"minsorted", stats.MinSortedNDArray[float64], stats.MinSortedNDArray[float32], "", true, "minimum of sorted x"},
		{"mediansorted", stats.MedianSortedNDArray[float64], stats.MedianSortedNDArray[float32], "", false, "median of sorted x"},

		{"mean", stats.MeanNDArray[float64], stats.MeanNDArray[float32], "pn", false, "arithmetic mean"},
		{"meanpn", stats.MeanPNNDArray[float64], stats.MeanPNNDArray[float32], "pn", false, "arithmetic mean"},
		{"meanors", stats.MeanORSNDArray[float64], stats.MeanORSNDArray[float32], "ors", false, "arithmetic mean"},
		{"meanpw", stats.MeanPWNDArray[float64], stats.MeanPWNDArray[float32], "pw", false, "arithmetic mean"},
		{"meankbn", stats.MeanKBNNDArray[float64], stats.MeanKBNNDArray[float32], "kbn", false, "arithmetic mean"},
		{"meankbn2", stats.MeanKBN2NDArray[float64], stats.MeanKBN2NDArray[float32], "kbn2", false, "arithmetic mean"},
		{"meanwd", stats.MeanWDNDArray[float64], stats.MeanWDNDArray[float32], "wd", false, "arithmetic mean"},
		{"nanmean", stats.NanMeanNDArray[float64], stats.NanMeanNDArray[float32], "pn", false, "arithmetic mean, ignoring NaNs"},
		{"nanmeanpn", stats.NanMeanPNNDArray[float64], stats.NanMeanPNNDArray[float32], "pn", false, "arithmetic mean, ignoring NaNs"},
		{"nanmeanors", stats.NanMeanORSNDArray[float64], stats.NanMeanORSNDArray[float32], "ors", false, "arithmetic mean, ignoring NaNs"},
		{"nanmeanpw", stats.NanMeanPWNDArray[float64], stats.NanMeanPWNDArray[float32], "pw", false, "arithmetic mean, ignoring NaNs"},
		{"nanmeanwd", stats.NanMeanWDNDArray[float64], stats.NanMeanWDNDArray[float32], "wd", false, "arithmetic mean, ignoring NaNs"},
	} {
		both(entry{name: r.name, namespace: nsStats, shape: Reduce, output: Scalar, algorithm: r.algorithm, operands: 1,
			empty: nan, orderInvariant: r.orderInvariant, doc: r.doc},
			reduce(r.f64), reduce(r.f32))
	}

	for _, r := range []struct {
		name string
		f64  func(n int, x []float64, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) float64
		f32  func(n int, x []float32, strideX, offsetX int, mask []uint8, strideMask, offsetMask int) float32
	}{
		{"mskmax", stats.MskMaxNDArray[float64], stats.MskMaxNDArray[float32]},
		{"mskmin", stats.MskMinNDArray[float64], stats.MskMinNDArray[float32]},
		{"mskrange", stats.MskRangeNDArray[float64], stats.MskRangeNDArray[float32]},
		{"nanmskmax", stats.NanMskMaxNDArray[float64], stats.NanMskMaxNDArray[float32]},
		{"nanmskmin", stats.NanMskMinNDArray[float64], stats.NanMskMinNDArray[float32]},
		{"nanmskrange", stats.NanMskRangeNDArray[float64], stats.NanMskRangeNDArray[float32]},
	} {
		both(entry{name: r.name, namespace: nsStats, shape: Reduce, output: Scalar, operands: 2, empty: nan,
			orderInvariant: true, doc: "reduction over the elements whose mask (second operand) is 0"},
			reduceMasked(r.f64), reduceMasked(r.f32))
	}

	for _, r := range []struct {
		name string
		f64  func(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int) []float64
		f32  func(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int) []float32
	}{
		{"cumax", stats.CuMaxNDArray[float64], stats.CuMaxNDArray[float32]},
		{"cumin", stats.CuMinNDArray[float64], stats.CuMinNDArray[float32]},
		{"cumaxabs", stats.CuMaxAbsNDArray[float64], stats.CuMaxAbsNDArray[float32]},
		{"cuminabs", stats.CuMinAbsNDArray[float64], stats.CuMinAbsNDArray[float32]},
	} {
		both(entry{name: r.name, namespace: nsStats, shape: Map, output: MutatesOutput, operands: 2,
			doc: "cumulative extreme of x into y"},
			mapXY(r.f64), mapXY(r.f32))
	}

	correction := []string{"correction"}
	unbiased := []float64{1}
	for _, algo := range []stats.VarianceAlgorithm{stats.PN, stats.WD, stats.YC, stats.TK, stats.CH} {
		suffix := algo.String()
		for _, family := range []struct {
			name string
			f64  func(algo stats.VarianceAlgorithm, n int, correction float64, x []float64, strideX, offsetX int) float64
			f32  func(algo stats.VarianceAlgorithm, n int, correction float32, x []float32, strideX, offsetX int) float32
			doc  string
		}{
			{"variance", stats.VarianceByNDArray[float64], stats.VarianceByNDArray[float32], "variance"},
			{"stdev", stats.StdevByNDArray[float64], stats.StdevByNDArray[float32], "standard deviation"},
			{"nanvariance", stats.NanVarianceByNDArray[float64], stats.NanVarianceByNDArray[float32], "variance, ignoring NaNs"},
			{"nanstdev", stats.NanStdevByNDArray[float64], stats.NanStdevByNDArray[float32], "standard deviation, ignoring NaNs"},
			{"sem", stats.SEMByNDArray[float64], stats.SEMByNDArray[float32], "standard error of the mean"},
		} {
			e := entry{name: family.name + suffix, namespace: nsStats, shape: Reduce, output: Scalar, algorithm: suffix,
				operands: 1, scalars: correction, defaults: unbiased, empty: nan, doc: family.doc}
			both(e, reduce1(varianceBy(algo, family.f64)), reduce1(varianceBy(algo, family.f32)))
			if algo == stats.PN {
				// The default algorithm is also registered without suffix.
				e.name = family.name
				both(e, reduce1(varianceBy(algo, family.f64)), reduce1(varianceBy(algo, family.f32)))
			}
		}
	}

	both(entry{name: "varmpn", namespace: nsStats, shape: Reduce, output: Scalar, algorithm: "pn", operands: 1,
		scalars: []string{"mean", "correction"}, defaults: []float64{0, 1}, empty: nan,
		doc: "variance around a known mean"},
		reduce2(stats.VarmPNNDArray[float64]), reduce2(stats.VarmPNNDArray[float32]))
	both(entry{name: "varmtk", namespace: nsStats, shape: Reduce, output: Scalar, algorithm: "tk", operands: 1,
		scalars: []string{"mean", "correction"}, defaults: []float64{0, 1}, empty: nan,
		doc: "variance around a known mean"},
		reduce2(stats.VarmTKNDArray[float64]), reduce2(stats.VarmTKNDArray[float32]))

	both(entry{name: "meanvar", namespace: nsStats, shape: Tuple, output: MutatesOutput, algorithm: "pn", operands: 2,
		results: 2, scalars: correction, defaults: unbiased, empty: nan, doc: "mean and variance into out[0], out[1]"},
		tuple1(stats.MeanVarNDArray[float64]), tuple1(stats.MeanVarNDArray[float32]))
	both(entry{name: "meanstdev", namespace: nsStats, shape: Tuple, output: MutatesOutput, algorithm: "pn", operands: 2,
		results: 2, scalars: correction, defaults: unbiased, empty: nan, doc: "mean and standard deviation into out[0], out[1]"},
		tuple1(stats.MeanStdevNDArray[float64]), tuple1(stats.MeanStdevNDArray[float32]))
}

func varianceBy[T dtypes.GoFloat](algo stats.VarianceAlgorithm,
	fn func(algo stats.VarianceAlgorithm, n int, correction T, x []T, strideX, offsetX int) T) func(n int, correction T, x []T, strideX, offsetX int) T {
	return func(n int, correction T, x []T, strideX, offsetX int) T {
		return fn(algo, n, correction, x, strideX, offsetX)
	}
}

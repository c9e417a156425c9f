// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var nanF = math.NaN()

func randomVector(rng *rand.Rand, n int, shift float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = shift + 2*rng.Float64() - 1
	}
	return x
}

// embed returns a buffer where the logical sequence of the convention view (n, stride) is x.
func embed(x []float64, stride int) []float64 {
	n := len(x)
	k := stride
	if k < 0 {
		k = -k
	}
	buf := make([]float64, (n-1)*k+1)
	for i := range buf {
		buf[i] = 1e6 // Garbage: must never be read.
	}
	ix := 0
	if stride < 0 {
		ix = (1 - n) * stride
	}
	for _, v := range x {
		buf[ix] = v
		ix += stride
	}
	return buf
}

func without(x []float64, fn func(float64) bool) []float64 {
	var out []float64
	for _, v := range x {
		if !fn(v) {
			out = append(out, v)
		}
	}
	return out
}

func TestExtremes(t *testing.T) {
	x := []float64{1, -2, 4, 0, 3}
	assert.Equal(t, 4.0, Max(len(x), x, 1))
	assert.Equal(t, -2.0, Min(len(x), x, 1))
	assert.Equal(t, 4.0, MaxAbs(len(x), x, 1))
	assert.Equal(t, 0.0, MinAbs(len(x), x, 1))
	assert.Equal(t, 6.0, Range(len(x), x, 1))
	assert.Equal(t, 1.0, MidRange(len(x), x, 1))

	// Strided: elements 1, 4, 3.
	assert.Equal(t, 4.0, Max(3, x, 2))
	assert.Equal(t, 1.0, Min(3, x, -2))
	assert.Equal(t, -2.0, MinNDArray(2, x, 3, 1))
	// Zero stride.
	assert.Equal(t, 4.0, MaxNDArray(10, x, 0, 2))

	// Signed zeros.
	zeros := []float64{math.Copysign(0, -1), 0, math.Copysign(0, -1)}
	assert.False(t, math.Signbit(Max(3, zeros, 1)))
	assert.True(t, math.Signbit(Min(3, []float64{0, math.Copysign(0, -1), 0}, 1)))

	// NaN propagates.
	withNaN := []float64{1, nanF, 3}
	assert.True(t, math.IsNaN(Max(3, withNaN, 1)))
	assert.True(t, math.IsNaN(Min(3, withNaN, 1)))
	assert.True(t, math.IsNaN(Range(3, withNaN, 1)))

	// Empty.
	assert.True(t, math.IsNaN(Max(0, x, 1)))
	assert.True(t, math.IsNaN(MinAbs(-1, x, 1)))

	// Random data against gonum.
	rng := rand.New(rand.NewPCG(1, 2))
	data := randomVector(rng, 1001, 0)
	assert.Equal(t, floats.Max(data), Max(len(data), data, 1))
	assert.Equal(t, floats.Min(data), Min(len(data), data, 1))
	assert.Equal(t, floats.Max(data), Max(len(data), embed(data, -3), -3))

	require.Panics(t, func() { Max(4, x, 2) })
}

func TestNanExtremes(t *testing.T) {
	x := []float64{nanF, 1, nanF, -3, 2, nanF}
	assert.Equal(t, 2.0, NanMax(len(x), x, 1))
	assert.Equal(t, -3.0, NanMin(len(x), x, 1))
	assert.Equal(t, 3.0, NanMaxAbs(len(x), x, 1))
	assert.Equal(t, 1.0, NanMinAbs(len(x), x, 1))
	assert.Equal(t, 5.0, NanRange(len(x), x, 1))
	assert.Equal(t, 2.0, NanMax(len(x), x, -1))

	allNaN := []float64{nanF, nanF}
	assert.True(t, math.IsNaN(NanMax(2, allNaN, 1)))
	assert.True(t, math.IsNaN(NanMin(2, allNaN, 0)))
	assert.Equal(t, 1.0, NanMaxNDArray(5, x, 0, 1))
	assert.True(t, math.IsNaN(NanMax(0, x, 1)))
}

func TestExtremesBy(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	double := func(v float64, i int) (float64, bool) { return 2 * v, i != 3 }
	assert.Equal(t, 6.0, MaxBy(len(x), x, 1, double))
	assert.Equal(t, 2.0, MinBy(len(x), x, 1, double))
	assert.Equal(t, 8.0, MaxBy(len(x), x, -1, func(v float64, i int) (float64, bool) { return 2 * v, true }))

	// Callbacks may map from any element type.
	names := []string{"a", "abc", "ab"}
	assert.Equal(t, float32(3), MaxBy(3, names, 1, func(s string, _ int) (float32, bool) { return float32(len(s)), true }))

	none := func(v float64, i int) (float64, bool) { return v, false }
	assert.True(t, math.IsNaN(MaxBy(len(x), x, 1, none)))
	assert.True(t, math.IsNaN(MinBy(0, x, 1, double)))
}

func TestSorted(t *testing.T) {
	asc := []float64{1, 2, 3, 4}
	assert.Equal(t, 4.0, MaxSorted(4, asc, 1))
	assert.Equal(t, 1.0, MinSorted(4, asc, 1))
	assert.Equal(t, 2.5, MedianSorted(4, asc, 1))
	assert.Equal(t, 2.0, MedianSorted(3, asc, 1))

	desc := []float64{5, 3, 1}
	assert.Equal(t, 5.0, MaxSorted(3, desc, 1))
	assert.Equal(t, 1.0, MinSorted(3, desc, 1))
	assert.Equal(t, 3.0, MedianSorted(3, desc, 1))
	assert.Equal(t, 5.0, MaxSorted(3, desc, -1))

	// The middle pair is averaged as (a+b)/2: equal infinities stay infinite.
	inf := math.Inf(1)
	assert.Equal(t, -inf, MedianSorted(4, []float64{-inf, -inf, -inf, 0}, 1))
	assert.Equal(t, inf, MedianSorted(2, []float64{inf, inf}, 1))
	assert.Equal(t, float32(-1.5), MedianSorted(4, []float32{-3, -2, -1, 0}, 1))

	assert.True(t, math.IsNaN(MaxSorted(0, asc, 1)))
	assert.True(t, math.IsNaN(MedianSorted(0, asc, 1)))
	assert.True(t, math.IsNaN(MinSorted(2, []float64{nanF, 1}, 1)))
}

func TestMasked(t *testing.T) {
	x := []float64{1, 9, 3, nanF}
	mask := []uint8{0, 1, 0, 0}
	assert.True(t, math.IsNaN(MskMax(4, x, 1, mask, 1)))
	assert.Equal(t, 3.0, NanMskMax(4, x, 1, mask, 1))
	assert.Equal(t, 1.0, NanMskMin(4, x, 1, mask, 1))
	assert.Equal(t, 2.0, NanMskRange(4, x, 1, mask, 1))

	mask = []uint8{0, 1, 0, 1}
	assert.Equal(t, 3.0, MskMax(4, x, 1, mask, 1))
	assert.Equal(t, 1.0, MskMin(4, x, 1, mask, 1))
	assert.Equal(t, 2.0, MskRange(4, x, 1, mask, 1))
	assert.Equal(t, 3.0, MskMax(4, x, -1, mask, -1))

	allMasked := []uint8{1, 1, 1, 1}
	assert.True(t, math.IsNaN(MskMax(4, x, 1, allMasked, 1)))
	assert.True(t, math.IsNaN(NanMskMin(0, x, 1, allMasked, 1)))

	require.Panics(t, func() { MskMax(4, x, 1, []uint8{0, 0}, 1) })
}

func TestCumulative(t *testing.T) {
	x := []float64{1, 3, 2, 5, nanF, 7}
	y := make([]float64, len(x))
	CuMax(len(x), x, 1, y, 1)
	assert.Equal(t, []float64{1, 3, 3, 5}, y[:4])
	assert.True(t, math.IsNaN(y[4]) && math.IsNaN(y[5]))

	CuMin(len(x), x, 1, y, 1)
	assert.Equal(t, []float64{1, 1, 1, 1}, y[:4])
	assert.True(t, math.IsNaN(y[4]) && math.IsNaN(y[5]))

	assert.Equal(t, []float64{1, 3, 4}, CuMaxAbs(3, []float64{-1, 3, -4}, 1, make([]float64, 3), 1))
	assert.Equal(t, []float64{3, 2, 1}, CuMinAbs(3, []float64{-3, 2, -1}, 1, make([]float64, 3), 1))

	// Reversed output.
	assert.Equal(t, []float64{3, 3, 1}, CuMax(3, []float64{1, 3, 2}, 1, make([]float64, 3), -1))

	// n <= 0 leaves the output untouched.
	out := []float64{42}
	CuMax(0, x, 1, out, 1)
	assert.Equal(t, []float64{42}, out)
}

func TestMeans(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	x := randomVector(rng, 517, 10)
	want := stat.Mean(x, nil)
	n := len(x)
	for name, fn := range map[string]func(int, []float64, int) float64{
		"Mean": Mean[float64], "MeanPN": MeanPN[float64], "MeanORS": MeanORS[float64], "MeanPW": MeanPW[float64],
		"MeanKBN": MeanKBN[float64], "MeanKBN2": MeanKBN2[float64], "MeanWD": MeanWD[float64],
		"NanMean": NanMean[float64], "NanMeanPN": NanMeanPN[float64], "NanMeanORS": NanMeanORS[float64],
		"NanMeanPW": NanMeanPW[float64], "NanMeanWD": NanMeanWD[float64],
	} {
		assert.InDeltaf(t, want, fn(n, x, 1), 1e-11, "%s", name)
		assert.Equalf(t, fn(n, x, 1), fn(n, embed(x, -2), -2), "%s with stride -2", name)
		assert.Equalf(t, 7.5, fn(4, []float64{7.5}, 0), "%s with stride 0", name)
		assert.Truef(t, math.IsNaN(fn(0, x, 1)), "%s with n=0", name)
	}

	// NaN-skipping means.
	withNaN := append([]float64{nanF}, x...)
	withNaN = append(withNaN, nanF)
	assert.True(t, math.IsNaN(Mean(len(withNaN), withNaN, 1)))
	for name, fn := range map[string]func(int, []float64, int) float64{
		"NanMean": NanMean[float64], "NanMeanORS": NanMeanORS[float64], "NanMeanPW": NanMeanPW[float64],
		"NanMeanWD": NanMeanWD[float64],
	} {
		assert.InDeltaf(t, want, fn(len(withNaN), withNaN, 1), 1e-11, "%s", name)
		assert.Truef(t, math.IsNaN(fn(3, []float64{nanF, nanF, nanF}, 1)), "%s of all NaN", name)
	}
}

func TestVariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	x := randomVector(rng, 333, 1)
	n := len(x)
	want := stat.Variance(x, nil) // Unbiased: correction 1.
	for _, algo := range []VarianceAlgorithm{PN, WD, YC, TK, CH} {
		assert.InDeltaf(t, want, VarianceBy(algo, n, 1.0, x, 1), 1e-12, "%s", algo)
		assert.InDeltaf(t, want*float64(n-1)/float64(n), VarianceBy(algo, n, 0.0, x, 1), 1e-12, "%s population", algo)
		assert.InDeltaf(t, math.Sqrt(want), StdevBy(algo, n, 1.0, x, 1), 1e-12, "%s stdev", algo)
		assert.InDeltaf(t, stat.StdErr(math.Sqrt(want), float64(n)), SEMBy(algo, n, 1.0, x, 1), 1e-12, "%s sem", algo)
		assert.Equalf(t, VarianceBy(algo, n, 1.0, x, 1), VarianceBy(algo, n, 1.0, embed(x, -3), -3), "%s stride -3", algo)

		// Degenerate cases.
		assert.Truef(t, math.IsNaN(VarianceBy(algo, 0, 0.0, x, 1)), "%s n=0", algo)
		assert.Truef(t, math.IsNaN(VarianceBy(algo, 1, 1.0, x, 1)), "%s n=1 correction=1", algo)
		assert.Equalf(t, 0.0, VarianceBy(algo, 1, 0.0, x, 1), "%s n=1 correction=0", algo)
		assert.Equalf(t, 0.0, VarianceBy(algo, 5, 1.0, x, 0), "%s stride 0", algo)
		assert.Truef(t, math.IsNaN(VarianceBy(algo, 2, 2.0, x, 1)), "%s n-correction=0", algo)
	}

	// Named entry points.
	assert.Equal(t, VarianceBy(PN, n, 1.0, x, 1), Variance(n, 1.0, x, 1))
	assert.Equal(t, VarianceBy(YC, n, 1.0, x, 1), VarianceYC(n, 1.0, x, 1))
	assert.Equal(t, StdevBy(CH, n, 1.0, x, 1), StdevCH(n, 1.0, x, 1))
	assert.Equal(t, SEMBy(TK, n, 1.0, x, 1), SEMTKNDArray(n, 1.0, x, 1, 0))

	// Classic example: population variance of {2, 4, 4, 4, 5, 5, 7, 9} is 4.
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	for _, algo := range []VarianceAlgorithm{PN, WD, YC, TK, CH} {
		assert.InDeltaf(t, 4.0, VarianceBy(algo, len(data), 0.0, data, 1), 1e-14, "%s", algo)
		assert.InDeltaf(t, 2.0, StdevBy(algo, len(data), 0.0, data, 1), 1e-14, "%s", algo)
	}
}

func TestNanVariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	x := randomVector(rng, 100, 0)
	x[3], x[50], x[99] = nanF, nanF, nanF
	clean := without(x, math.IsNaN)
	want := stat.Variance(clean, nil)
	for _, algo := range []VarianceAlgorithm{PN, WD, YC, TK, CH} {
		assert.Truef(t, math.IsNaN(VarianceBy(algo, len(x), 1.0, x, 1)), "%s propagates NaN", algo)
		assert.InDeltaf(t, want, NanVarianceBy(algo, len(x), 1.0, x, 1), 1e-12, "%s", algo)
		assert.InDeltaf(t, math.Sqrt(want), NanStdevBy(algo, len(x), 1.0, x, 1), 1e-12, "%s", algo)
		assert.Truef(t, math.IsNaN(NanVarianceBy(algo, 3, 0.0, []float64{nanF, nanF, nanF}, 1)), "%s all NaN", algo)
		assert.Truef(t, math.IsNaN(NanVarianceBy(algo, 3, 1.0, []float64{nanF, 1, nanF}, 1)), "%s single value", algo)
	}
	assert.InDelta(t, want, NanVariance(len(x), 1.0, x, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(want), NanStdevWD(len(x), 1.0, x, 1), 1e-12)
}

func TestVarm(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	x := randomVector(rng, 200, 3)
	mean := stat.Mean(x, nil)
	want := stat.Variance(x, nil)
	assert.InDelta(t, want, VarmPN(len(x), mean, 1.0, x, 1), 1e-12)
	assert.InDelta(t, want, VarmTK(len(x), mean, 1.0, x, 1), 1e-12)
	assert.Equal(t, 1.0, VarmTK(2, 0.0, 0.0, []float64{1, -1}, 1))
	assert.True(t, math.IsNaN(VarmPN(1, 0.0, 1.0, x, 1)))
}

func TestMeanVar(t *testing.T) {
	x := []float64{1, -2, -4, 5, 0, 3}
	out := make([]float64, 2)
	MeanStdev(len(x), 0.0, x, 1, out, 1)
	assert.Equal(t, []float64{0.5, math.Sqrt(53.5 / 6)}, out)

	MeanVar(len(x), 0.0, x, 1, out, 1)
	assert.Equal(t, []float64{0.5, 53.5 / 6}, out)

	// Strided output: mean goes to the logical first element.
	out = []float64{-1, -1, -1}
	MeanVarPN(len(x), 1.0, x, 1, out, -2)
	assert.Equal(t, 0.5, out[2])
	assert.Equal(t, 53.5/5, out[0])
	assert.Equal(t, -1.0, out[1])

	MeanStdevPN(0, 1.0, x, 1, out, 1)
	assert.True(t, math.IsNaN(out[0]) && math.IsNaN(out[1]))

	MeanVar(1, 1.0, x, 1, out, 1)
	assert.Equal(t, 1.0, out[0])
	assert.True(t, math.IsNaN(out[1]))

	// A correction that leaves no degrees of freedom only invalidates the dispersion.
	MeanStdev(3, 3.0, x, 2, out, 1)
	assert.InDelta(t, -1.0, out[0], 1e-15)
	assert.True(t, math.IsNaN(out[1]))
	MeanVarPN(len(x), 7.0, x, 1, out, 1)
	assert.Equal(t, 0.5, out[0])
	assert.True(t, math.IsNaN(out[1]))

	require.Panics(t, func() { MeanVar(len(x), 0.0, x, 1, out[:1], 1) })
}

func TestFloat32(t *testing.T) {
	x := []float32{2, 4, 4, 4, 5, 5, 7, 9}
	assert.Equal(t, float32(5), Mean(len(x), x, 1))
	assert.InDelta(t, 4.0, float64(VarianceWD(len(x), float32(0), x, 1)), 1e-5)
	assert.Equal(t, float32(9), Max(len(x), x, 1))
}

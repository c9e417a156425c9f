// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ext

import (
	"math"

	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/strided"
)

// PairwiseBlockSize is the number of elements below which pairwise summation stops splitting the input and
// sums a block with 8 partial accumulators.
const PairwiseBlockSize = 128

const unrollSum = 6

// summand describes how each element of the input enters a sum accumulated in A.
type summand[A dtypes.GoFloat] struct {
	alpha   A    // Added to every element.
	abs     bool // Sum absolute values.
	skipNaN bool // NaN elements are left out (and not counted).
}

func (s summand[A]) value(v A) (A, bool) {
	v += s.alpha
	if s.skipNaN && v != v {
		return 0, false
	}
	if s.abs {
		v = A(math.Abs(float64(v)))
	}
	return v, true
}

// repeated handles a zero stride: the same element is summed n times.
func repeated[T, A dtypes.GoFloat](n int, s summand[A], v T) (A, int) {
	a, ok := s.value(A(v))
	if !ok {
		return 0, 0
	}
	return A(n) * a, n
}

// Algorithm identifies a summation algorithm.
type Algorithm int

const (
	// ORS is the ordinary recursive summation: one accumulator, no compensation.
	ORS Algorithm = iota
	// KBN is the Kahan-Babuška-Neumaier compensated summation.
	KBN
	// KBN2 is the second-order iterative Kahan-Babuška summation.
	KBN2
	// PW is the pairwise summation, which splits the input in halves down to blocks of PairwiseBlockSize.
	PW
)

var algorithmNames = []string{"ors", "kbn", "kbn2", "pw"}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "Algorithm(invalid)"
	}
	return algorithmNames[a]
}

// sumNDArray validates the view and runs the selected algorithm. It returns the sum and the number of
// elements that entered it.
func sumNDArray[T, A dtypes.GoFloat](op string, algo Algorithm, n int, s summand[A], x []T, strideX, offsetX int) (A, int) {
	if n <= 0 {
		return 0, 0
	}
	strided.CheckVector(op, "x", n, len(x), strideX, offsetX)
	if strideX == 0 {
		return repeated(n, s, x[offsetX])
	}
	switch algo {
	case ORS:
		return sumORS(n, s, x, strideX, offsetX)
	case KBN:
		return sumKBN(n, s, x, strideX, offsetX)
	case KBN2:
		return sumKBN2(n, s, x, strideX, offsetX)
	case PW:
		return sumPairwise(n, s, x, strideX, offsetX)
	default:
		strided.Panicf(op, "algorithm", "unknown summation algorithm %d", int(algo))
		return 0, 0
	}
}

func sumORS[T, A dtypes.GoFloat](n int, s summand[A], x []T, strideX, offsetX int) (sum A, count int) {
	ix := offsetX
	if strideX == 1 && !s.skipNaN {
		m := n % unrollSum
		for i := 0; i < m; i++ {
			v, _ := s.value(A(x[ix+i]))
			sum += v
		}
		for i := m; i < n; i += unrollSum {
			xs := x[ix+i : ix+i+unrollSum]
			v0, _ := s.value(A(xs[0]))
			v1, _ := s.value(A(xs[1]))
			v2, _ := s.value(A(xs[2]))
			v3, _ := s.value(A(xs[3]))
			v4, _ := s.value(A(xs[4]))
			v5, _ := s.value(A(xs[5]))
			sum += v0
			sum += v1
			sum += v2
			sum += v3
			sum += v4
			sum += v5
		}
		return sum, n
	}
	for i := 0; i < n; i++ {
		if v, ok := s.value(A(x[ix])); ok {
			sum += v
			count++
		}
		ix += strideX
	}
	return
}

// kbnAdd adds v to the (sum, c) pair, where c accumulates the rounding errors.
func kbnAdd[A dtypes.GoFloat](sum, c, v A) (A, A) {
	t := sum + v
	if math.Abs(float64(sum)) >= math.Abs(float64(v)) {
		c += (sum - t) + v
	} else {
		c += (v - t) + sum
	}
	return t, c
}

func sumKBN[T, A dtypes.GoFloat](n int, s summand[A], x []T, strideX, offsetX int) (A, int) {
	var sum, c A
	count := 0
	ix := offsetX
	for i := 0; i < n; i++ {
		if v, ok := s.value(A(x[ix])); ok {
			sum, c = kbnAdd(sum, c, v)
			count++
		}
		ix += strideX
	}
	return sum + c, count
}

// kbn2State is the state of the second-order Kahan-Babuška summation.
type kbn2State[A dtypes.GoFloat] struct {
	sum, cs, ccs A
}

func (st *kbn2State[A]) add(v A) {
	var c, cc A
	t := st.sum + v
	if math.Abs(float64(st.sum)) >= math.Abs(float64(v)) {
		c = (st.sum - t) + v
	} else {
		c = (v - t) + st.sum
	}
	st.sum = t
	t = st.cs + c
	if math.Abs(float64(st.cs)) >= math.Abs(float64(c)) {
		cc = (st.cs - t) + c
	} else {
		cc = (c - t) + st.cs
	}
	st.cs = t
	st.ccs += cc
}

func (st *kbn2State[A]) result() A {
	return st.sum + st.cs + st.ccs
}

func sumKBN2[T, A dtypes.GoFloat](n int, s summand[A], x []T, strideX, offsetX int) (A, int) {
	var st kbn2State[A]
	count := 0
	ix := offsetX
	for i := 0; i < n; i++ {
		if v, ok := s.value(A(x[ix])); ok {
			st.add(v)
			count++
		}
		ix += strideX
	}
	return st.result(), count
}

// sumPairwise sums recursively: inputs of up to PairwiseBlockSize elements are summed with 8 interleaved
// partial accumulators, larger ones are split in two halves (the first a multiple of 8 long).
// The split points depend only on n.
func sumPairwise[T, A dtypes.GoFloat](n int, s summand[A], x []T, strideX, offsetX int) (A, int) {
	ix := offsetX
	if n < 8 {
		var sum A
		count := 0
		for i := 0; i < n; i++ {
			if v, ok := s.value(A(x[ix])); ok {
				sum += v
				count++
			}
			ix += strideX
		}
		return sum, count
	}
	if n <= PairwiseBlockSize {
		var acc [8]A
		count := 0
		m := n % 8
		i := 0
		for ; i < n-m; i += 8 {
			for k := range acc {
				if v, ok := s.value(A(x[ix+k*strideX])); ok {
					acc[k] += v
					count++
				}
			}
			ix += 8 * strideX
		}
		sum := ((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
		for ; i < n; i++ {
			if v, ok := s.value(A(x[ix])); ok {
				sum += v
				count++
			}
			ix += strideX
		}
		return sum, count
	}
	half := n / 2
	half -= half % 8
	sum1, count1 := sumPairwise(half, s, x, strideX, ix)
	sum2, count2 := sumPairwise(n-half, s, x, strideX, ix+half*strideX)
	return sum1 + sum2, count1 + count2
}

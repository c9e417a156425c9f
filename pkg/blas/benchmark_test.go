// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

var benchmarkSizes = []int{10, 1000, 100_000}

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 0))
	for _, n := range benchmarkSizes {
		x, y := randomVector(rng, 2*n), randomVector(rng, 2*n)
		b.Run(fmt.Sprintf("n=%d/contiguous", n), func(b *testing.B) {
			for b.Loop() {
				_ = Dot(n, x, 1, y, 1)
			}
		})
		b.Run(fmt.Sprintf("n=%d/strided", n), func(b *testing.B) {
			for b.Loop() {
				_ = Dot(n, x, 2, y, -2)
			}
		})
	}
}

func BenchmarkAxpy(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 1))
	for _, n := range benchmarkSizes {
		x, y := randomVector(rng, n), randomVector(rng, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				Axpy(n, 1e-9, x, 1, y, 1)
			}
		})
	}
}

func BenchmarkGemv(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 2))
	const m, n = 256, 256
	a, x, y := randomVector(rng, m*n), randomVector(rng, n), randomVector(rng, m)
	for _, layout := range []Layout{RowMajor, ColumnMajor} {
		b.Run(layout.String(), func(b *testing.B) {
			for b.Loop() {
				Gemv(layout, NoTrans, m, n, 1.0, a, 256, x, 1, 0.0, y, 1)
			}
		})
	}
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package workerspool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_Run(t *testing.T) {
	pool := New()
	const maxParallelism = 3
	pool.SetMaxParallelism(maxParallelism)
	assert.True(t, pool.IsEnabled())
	assert.False(t, pool.IsUnlimited())

	var running, peak, count atomic.Int32
	pool.Run(50, func(i int) {
		current := running.Add(1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}
		count.Add(1)
		running.Add(-1)
	})
	assert.Equal(t, int32(50), count.Load())
	assert.LessOrEqual(t, peak.Load(), int32(maxParallelism))

	// No parallelism: tasks run inline, in order.
	pool.SetMaxParallelism(0)
	var order []int
	pool.Run(5, func(i int) { order = append(order, i) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	// Unlimited.
	pool.SetMaxParallelism(-1)
	assert.True(t, pool.IsUnlimited())
	count.Store(0)
	pool.Run(20, func(int) { count.Add(1) })
	assert.Equal(t, int32(20), count.Load())
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPool(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestNewPoolDefault(t *testing.T) {
	pool := NewPool(0)
	defer pool.Close()

	if pool.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want %d", pool.Workers(), runtime.GOMAXPROCS(0))
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool
	if pool.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", pool.Workers())
	}
	var calls int
	if got := pool.chunks(10, func(c, start, end int) {
		calls++
		if c != 0 || start != 0 || end != 10 {
			t.Errorf("chunk (%d, %d, %d), want (0, 0, 10)", c, start, end)
		}
	}); got != 1 {
		t.Errorf("chunks() = %d, want 1", got)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	pool.Close()
}

func TestChunksCoverRange(t *testing.T) {
	pool := NewPool(4).WithGrain(3)
	defer pool.Close()

	for _, n := range []int{0, 1, 5, 6, 7, 12, 13, 100, 101} {
		hits := make([]int32, n)
		var seen atomic.Int32
		ranges := pool.chunks(n, func(c, start, end int) {
			seen.Add(1)
			if c >= pool.Workers() {
				t.Errorf("n=%d: chunk index %d out of range", n, c)
			}
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		if int(seen.Load()) != ranges {
			t.Errorf("n=%d: %d calls for %d ranges", n, seen.Load(), ranges)
		}
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestSmallInputsRunSerially(t *testing.T) {
	pool := NewPool(8)
	defer pool.Close()

	if got := pool.chunks(DefaultGrain, func(int, int, int) {}); got != 1 {
		t.Errorf("chunks(%d) = %d ranges, want 1", DefaultGrain, got)
	}
}

func TestClosedPoolRunsSerially(t *testing.T) {
	pool := NewPool(4).WithGrain(1)
	pool.Close()
	pool.Close()

	if got := pool.chunks(100, func(int, int, int) {}); got != 1 {
		t.Errorf("chunks() after Close = %d ranges, want 1", got)
	}
}

func TestCloseWhileRunning(t *testing.T) {
	const callers, rounds, n = 8, 20, 64
	for range 50 {
		pool := NewPool(4).WithGrain(1)
		var total atomic.Int64
		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range rounds {
					pool.chunks(n, func(_, start, end int) {
						total.Add(int64(end - start))
					})
				}
			}()
		}
		pool.Close()
		wg.Wait()
		if got := total.Load(); got != callers*rounds*n {
			t.Fatalf("covered %d indices, want %d", got, callers*rounds*n)
		}
	}
}

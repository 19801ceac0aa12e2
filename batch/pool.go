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
)

// DefaultGrain is the smallest number of vectors handed to one worker.
// Slices shorter than two grains run on the calling goroutine.
const DefaultGrain = 1024

// Pool is a persistent set of workers shared by the batch operations.
// Workers start in NewPool and stay until Close. A nil *Pool runs every
// operation serially on the caller's goroutine. A Pool is safe for
// concurrent use, including Close racing with running operations.
type Pool struct {
	workers int
	grain   int
	work    chan task

	mu     sync.RWMutex // write-held by Close; read-held while queueing
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// NewPool starts a pool with the given number of workers; workers <= 0
// selects GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		grain:   DefaultGrain,
		work:    make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.work {
		t.run()
		t.done.Done()
	}
}

// WithGrain sets the minimum chunk size and returns p. Values below one
// are treated as one.
func (p *Pool) WithGrain(grain int) *Pool {
	p.grain = max(grain, 1)
	return p
}

// Workers returns the number of workers, or 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after pending work completes. Operations that
// start afterwards run serially. Close is idempotent.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.work)
	}
}

// chunks splits [0, n) into contiguous ranges and runs fn on each,
// blocking until all return. It returns the number of ranges; range i is
// always [i*size, min((i+1)*size, n)) with size = ceil(n/ranges).
func (p *Pool) chunks(n int, fn func(chunk, start, end int)) int {
	if n <= 0 {
		return 0
	}
	if p == nil {
		fn(0, 0, n)
		return 1
	}

	// The read lock keeps work open until every task is queued. Workers
	// drain queued tasks even after Close.
	p.mu.RLock()
	ranges := 1
	if !p.closed {
		ranges = min(p.workers, n/p.grain)
	}
	if ranges <= 1 {
		p.mu.RUnlock()
		fn(0, 0, n)
		return 1
	}
	size := (n + ranges - 1) / ranges
	ranges = (n + size - 1) / size

	var wg sync.WaitGroup
	wg.Add(ranges)
	for c := range ranges {
		start, end := c*size, min((c+1)*size, n)
		p.work <- task{run: func() { fn(c, start, end) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return ranges
}

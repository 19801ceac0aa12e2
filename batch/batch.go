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

// Package batch applies vector operations across slices of vectors,
// splitting long slices over a worker Pool.
//
// Every function requires its slice arguments to have equal lengths and
// panics otherwise. Elementwise results do not depend on the pool; the
// reductions Sum and DotSum add per-chunk partials in chunk order, so
// their floating-point rounding depends on the chunk count.
package batch

import (
	"fmt"

	"github.com/ajroetker/go-vecn/vector"
)

func checkLen(op string, want int, have ...int) {
	for _, n := range have {
		if n != want {
			panic(fmt.Sprintf("batch: %s: slice lengths %d and %d differ", op, want, n))
		}
	}
}

// Map stores f(src[i]) into dst[i].
func Map[T vector.Number, A vector.Components[T]](p *Pool, dst, src []vector.Vector[T, A], f func(vector.Vector[T, A]) vector.Vector[T, A]) {
	checkLen("Map", len(dst), len(src))
	p.chunks(len(dst), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	})
}

// Zip stores f(a[i], b[i]) into dst[i].
func Zip[T vector.Number, A vector.Components[T]](p *Pool, dst, a, b []vector.Vector[T, A], f func(a, b vector.Vector[T, A]) vector.Vector[T, A]) {
	checkLen("Zip", len(dst), len(a), len(b))
	p.chunks(len(dst), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(a[i], b[i])
		}
	})
}

// Add stores a[i] + b[i] into dst[i].
func Add[T vector.Number, A vector.Components[T]](p *Pool, dst, a, b []vector.Vector[T, A]) {
	Zip(p, dst, a, b, vector.Vector[T, A].Add)
}

// Scale stores src[i] * s into dst[i].
func Scale[T vector.Number, A vector.Components[T]](p *Pool, dst, src []vector.Vector[T, A], s T) {
	Map(p, dst, src, func(v vector.Vector[T, A]) vector.Vector[T, A] { return v.Scale(s) })
}

// Normalize stores the unit vector of src[i] into dst[i].
func Normalize[T vector.Float, A vector.Components[T]](p *Pool, dst, src []vector.Vector[T, A]) {
	Map(p, dst, src, vector.Normalize[T, A])
}

// Dot stores the dot product of a[i] and b[i] into dst[i].
func Dot[T vector.Number, A vector.Components[T]](p *Pool, dst []T, a, b []vector.Vector[T, A]) {
	checkLen("Dot", len(dst), len(a), len(b))
	p.chunks(len(dst), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i].Dot(b[i])
		}
	})
}

// Lengths stores the Euclidean length of src[i] into dst[i].
func Lengths[T vector.Float, A vector.Components[T]](p *Pool, dst []T, src []vector.Vector[T, A]) {
	checkLen("Lengths", len(dst), len(src))
	p.chunks(len(dst), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = vector.Length(src[i])
		}
	})
}

// Sum returns the componentwise sum of src; the zero vector when empty.
func Sum[T vector.Number, A vector.Components[T]](p *Pool, src []vector.Vector[T, A]) vector.Vector[T, A] {
	partials := make([]vector.Vector[T, A], p.Workers())
	n := p.chunks(len(src), func(c, start, end int) {
		var acc vector.Vector[T, A]
		for i := start; i < end; i++ {
			acc = acc.Add(src[i])
		}
		partials[c] = acc
	})
	var total vector.Vector[T, A]
	for _, s := range partials[:n] {
		total = total.Add(s)
	}
	return total
}

// DotSum returns the sum over i of Dot(a[i], b[i]).
func DotSum[T vector.Number, A vector.Components[T]](p *Pool, a, b []vector.Vector[T, A]) T {
	checkLen("DotSum", len(a), len(b))
	partials := make([]T, p.Workers())
	n := p.chunks(len(a), func(c, start, end int) {
		var acc T
		for i := start; i < end; i++ {
			acc += a[i].Dot(b[i])
		}
		partials[c] = acc
	})
	var total T
	for _, s := range partials[:n] {
		total += s
	}
	return total
}

// Convert converts src[i] into dst[i] under policy. With vector.Checked
// it returns the error for the lowest failing index, wrapped with that
// index; dst entries of other indices are still written.
func Convert[U, T vector.Number, B vector.Components[U], A vector.Components[T]](p *Pool, dst []vector.Vector[U, B], src []vector.Vector[T, A], policy vector.Policy) error {
	checkLen("Convert", len(dst), len(src))
	firstErr := make([]error, p.Workers())
	n := p.chunks(len(dst), func(c, start, end int) {
		for i := start; i < end; i++ {
			r, err := vector.Convert[U, T, B](src[i], policy)
			if err != nil && firstErr[c] == nil {
				firstErr[c] = fmt.Errorf("batch: vector %d: %w", i, err)
			}
			dst[i] = r
		}
	})
	for _, err := range firstErr[:n] {
		if err != nil {
			return err
		}
	}
	return nil
}

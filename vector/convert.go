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

package vector

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-vecn/internal/conv"
)

// ErrOverflow is wrapped by errors from checked conversions.
var ErrOverflow = conv.ErrOverflow

// OverflowError reports a component that does not fit its target type.
type OverflowError = conv.OverflowError

// Policy selects how components are converted between scalar types.
type Policy int

const (
	// Checked fails when a component cannot be represented in the target
	// type. Floats convert to integers by truncation toward zero.
	Checked Policy = iota

	// Saturating clamps out-of-range components to the target's minimum or
	// maximum. NaN converts to zero.
	Saturating

	// Truncating keeps the low bits of integers, like a Go conversion.
	// Floats convert to integers by truncation toward zero and saturate.
	Truncating
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Checked:
		return "checked"
	case Saturating:
		return "saturating"
	case Truncating:
		return "truncating"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Convert converts every component of v to U under policy. A and B must
// have the same length; Convert panics otherwise. Only the Checked policy
// returns errors, each an *OverflowError naming the first offending
// component.
//
// When T and U share a representation the components are reinterpreted
// without per-component work; the result is the same.
func Convert[U, T Number, B Components[U], A Components[T]](v Vector[T, A], policy Policy) (r Vector[U, B], err error) {
	if len(r.c) != len(v.c) {
		panic(fmt.Sprintf("vector: converting %d components to %d", len(v.c), len(r.c)))
	}
	if conv.SameRepresentation[U, T]() {
		r.c = *(*B)(unsafe.Pointer(&v.c))
		return r, nil
	}
	for i := range len(v.c) {
		switch policy {
		case Checked:
			x, err := conv.Checked[U](v.c[i])
			if err != nil {
				return Vector[U, B]{}, fmt.Errorf("vector: component %d: %w", i, err)
			}
			r.c[i] = x
		case Saturating:
			r.c[i] = conv.Saturating[U](v.c[i])
		case Truncating:
			r.c[i] = conv.Truncating[U](v.c[i])
		default:
			panic(fmt.Sprintf("vector: invalid conversion policy %d", int(policy)))
		}
	}
	return r, nil
}

// mustConvert converts under a policy that cannot fail.
func mustConvert[U, T Number, B Components[U], A Components[T]](v Vector[T, A], policy Policy) Vector[U, B] {
	r, err := Convert[U, T, B](v, policy)
	if err != nil {
		panic(err)
	}
	return r
}

// fromInts builds a vector from one exponent or index per component.
func fromInts[T Number, A Components[T]](xs []int) (r Vector[T, A]) {
	for i := range min(len(xs), len(r.c)) {
		r.c[i] = T(xs[i])
	}
	return r
}

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

package hwy

// MaskFromBits creates an n-lane mask from a bitmask integer.
// Bit i of bits corresponds to lane i; n is capped at 64.
func MaskFromBits[T Lanes](bits uint64, n int) Mask[T] {
	n = max(min(n, 64), 0)
	result := make([]bool, n)
	for i := range n {
		result[i] = bits&(1<<uint(i)) != 0
	}
	return Mask[T]{bits: result}
}

// MaskOr performs a lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: result}
}

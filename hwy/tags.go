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

// Tag names a register width. RegisterFor picks one per lane type and
// arity; LoadPadded sizes registers from it.
type Tag interface {
	// Width returns the register width in bytes.
	Width() int

	// Name returns the width as "<bits>bit".
	Name() string
}

// FixedTag64 selects a 64-bit register (a NEON D register). Only NEON
// executes it natively; elsewhere it is emulated by the scalar path.
type FixedTag64[T Lanes] struct{}

// Width returns 8 bytes (64 bits).
func (FixedTag64[T]) Width() int {
	return 8
}

// Name returns "64bit".
func (FixedTag64[T]) Name() string {
	return "64bit"
}

// FixedTag128 selects a 128-bit register (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// FixedTag256 selects a 256-bit register (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// FixedTag512 selects a 512-bit register (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// Accelerated reports whether the current target executes registers of
// width bytes natively. A 64-bit register is native only on NEON.
func Accelerated(width int) bool {
	t := load()
	if t.level == DispatchScalar || width > t.width {
		return false
	}
	if width == 8 {
		return t.level == DispatchNEON
	}
	return true
}

// RegisterFor returns the narrowest accelerated register tag holding at
// least n lanes of T. It reports false when no such register exists, in
// which case callers should run their scalar loop.
//
// Candidate widths are tried narrowest first: 64, 128, 256 then 512 bits.
func RegisterFor[T Lanes](n int) (Tag, bool) {
	if n <= 0 {
		return nil, false
	}
	size := SizeOf[T]()
	for _, tag := range []Tag{FixedTag64[T]{}, FixedTag128[T]{}, FixedTag256[T]{}, FixedTag512[T]{}} {
		w := tag.Width()
		if w/size < n {
			continue
		}
		if Accelerated(w) {
			return tag, true
		}
	}
	return nil, false
}

// LanesOf returns how many T lanes fit in a register described by tag.
func LanesOf[T Lanes](tag Tag) int {
	return tag.Width() / SizeOf[T]()
}

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

import (
	"unsafe"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Float kernels: vek ships AVX2 and NEON assembly for the float
// operations. They are used only when the dispatch level is not scalar and
// vek reports acceleration for this CPU. Only kernels that are correctly
// rounded are wired here, so results match the lane loops bit for bit.
// vek32's Sqrt is an approximation and stays on the lane loop.

var vekAccelerated = vek32.Info().Acceleration

// KernelsAccelerated reports whether float32 and float64 Add, Sub, Mul
// and Div, and float64 Sqrt, currently run through the assembly kernels.
func KernelsAccelerated() bool {
	return vekAccelerated && CurrentLevel() != DispatchScalar
}

func asF32[T Lanes](s []T) []float32 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&s[0])), len(s))
}

func asF64[T Lanes](s []T) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&s[0])), len(s))
}

type binaryKernel struct {
	f32 func(dst, x, y []float32) []float32
	f64 func(dst, x, y []float64) []float64
}

var (
	addKernels = binaryKernel{vek32.Add_Into, vek.Add_Into}
	subKernels = binaryKernel{vek32.Sub_Into, vek.Sub_Into}
	mulKernels = binaryKernel{vek32.Mul_Into, vek.Mul_Into}
	divKernels = binaryKernel{vek32.Div_Into, vek.Div_Into}
)

func runBinary[T Lanes](k binaryKernel, a, b Vec[T]) (Vec[T], bool) {
	if !IsFloat[T]() || !KernelsAccelerated() {
		return Vec[T]{}, false
	}
	n := min(len(a.data), len(b.data))
	if n == 0 {
		return Vec[T]{}, false
	}
	result := make([]T, n)
	switch SizeOf[T]() {
	case 4:
		k.f32(asF32(result), asF32(a.data[:n]), asF32(b.data[:n]))
	case 8:
		k.f64(asF64(result), asF64(a.data[:n]), asF64(b.data[:n]))
	default:
		return Vec[T]{}, false
	}
	return Vec[T]{data: result}, true
}

func addKernel[T Lanes](a, b Vec[T]) (Vec[T], bool) { return runBinary(addKernels, a, b) }
func subKernel[T Lanes](a, b Vec[T]) (Vec[T], bool) { return runBinary(subKernels, a, b) }
func mulKernel[T Lanes](a, b Vec[T]) (Vec[T], bool) { return runBinary(mulKernels, a, b) }
func divKernel[T Lanes](a, b Vec[T]) (Vec[T], bool) { return runBinary(divKernels, a, b) }

func sqrtKernel[T Floats](v Vec[T]) (Vec[T], bool) {
	if SizeOf[T]() != 8 || !KernelsAccelerated() || len(v.data) == 0 {
		return Vec[T]{}, false
	}
	result := make([]T, len(v.data))
	vek.Sqrt_Into(asF64(result), asF64(v.data))
	return Vec[T]{data: result}, true
}

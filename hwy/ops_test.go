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
	"math"
	"math/rand/v2"
	"testing"
)

func TestLoadPadded(t *testing.T) {
	v := LoadPadded([]float32{1, 2, 3}, FixedTag128[float32]{}, 9)
	want := []float32{1, 2, 3, 9}
	if v.NumLanes() != len(want) {
		t.Fatalf("LoadPadded: got %d lanes, want %d", v.NumLanes(), len(want))
	}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("LoadPadded: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}

	wide := LoadPadded([]int8{1, 2}, FixedTag256[int8]{}, 0)
	if wide.NumLanes() != 32 {
		t.Errorf("LoadPadded int8 256bit: got %d lanes, want 32", wide.NumLanes())
	}
}

func TestStoreN(t *testing.T) {
	v := SetN[int32](7, 4)
	dst := make([]int32, 4)
	StoreN(v, dst, 3)
	want := []int32{7, 7, 7, 0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("StoreN: index %d: got %d, want %d", i, dst[i], w)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := LoadSlice([]float64{10, -4})
	b := LoadSlice([]float64{5, 2})

	tests := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Add", Add(a, b), []float64{15, -2}},
		{"Sub", Sub(a, b), []float64{5, -6}},
		{"Mul", Mul(a, b), []float64{50, -8}},
		{"Div", Div(a, b), []float64{2, -2}},
		{"Rem", Rem(a, b), []float64{0, 0}},
		{"Neg", Neg(a), []float64{-10, 4}},
		{"Abs", Abs(a), []float64{10, 4}},
		{"Min", Min(a, b), []float64{5, -4}},
		{"Max", Max(a, b), []float64{10, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, w := range tt.want {
				if tt.got.data[i] != w {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, tt.got.data[i], w)
				}
			}
		})
	}
}

func TestIntegerWrap(t *testing.T) {
	a := LoadSlice([]uint8{250, 0})
	b := LoadSlice([]uint8{10, 1})

	sum := Add(a, b)
	if sum.data[0] != 4 {
		t.Errorf("Add uint8 wrap: got %d, want 4", sum.data[0])
	}
	diff := Sub(a, b)
	if diff.data[1] != 255 {
		t.Errorf("Sub uint8 wrap: got %d, want 255", diff.data[1])
	}

	m := LoadSlice([]int8{-128})
	if got := Abs(m).data[0]; got != -128 {
		t.Errorf("Abs int8 min: got %d, want -128", got)
	}
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero integer lane did not panic")
		}
	}()
	Div(LoadSlice([]int32{1}), LoadSlice([]int32{0}))
}

func TestRemSign(t *testing.T) {
	got := Rem(LoadSlice([]int32{-7, 7}), LoadSlice([]int32{3, -3}))
	want := []int32{-1, 1}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("Rem: lane %d: got %d, want %d", i, got.data[i], w)
		}
	}

	f := Rem(LoadSlice([]float32{-7.5}), LoadSlice([]float32{2}))
	if f.data[0] != -1.5 {
		t.Errorf("Rem float32: got %v, want -1.5", f.data[0])
	}
}

func TestAbsNegativeZero(t *testing.T) {
	got := Abs(LoadSlice([]float64{math.Copysign(0, -1)}))
	if math.Signbit(got.data[0]) {
		t.Error("Abs(-0) kept the sign bit")
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := LoadSlice([]float32{nan, 1})
	b := LoadSlice([]float32{1, nan})

	mn := Min(a, b)
	if mn.data[0] != 1 {
		t.Errorf("Min(NaN, 1): got %v, want 1", mn.data[0])
	}
	if !math.IsNaN(float64(mn.data[1])) {
		t.Errorf("Min(1, NaN): got %v, want NaN", mn.data[1])
	}

	mx := Max(a, b)
	if mx.data[0] != 1 {
		t.Errorf("Max(NaN, 1): got %v, want 1", mx.data[0])
	}
}

func TestClamp(t *testing.T) {
	v := LoadSlice([]int32{-5, 5, 50})
	lo := LoadSlice([]int32{0, 0, 0})
	hi := LoadSlice([]int32{10, 10, 10})
	got := Clamp(v, lo, hi)
	want := []int32{0, 5, 10}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("Clamp: lane %d: got %d, want %d", i, got.data[i], w)
		}
	}

	// lo above hi: hi wins
	inverted := Clamp(LoadSlice([]int32{3}), LoadSlice([]int32{8}), LoadSlice([]int32{2}))
	if inverted.data[0] != 2 {
		t.Errorf("Clamp inverted bounds: got %d, want 2", inverted.data[0])
	}
}

func TestSqrt(t *testing.T) {
	inf := float32(math.Inf(1))
	got := Sqrt(LoadSlice([]float32{4, 2, 0, 9, 16, inf, 1e-40}))
	want := []float32{2, float32(math.Sqrt(2)), 0, 3, 4, inf, float32(math.Sqrt(1e-40))}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("Sqrt: lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
	if got := Sqrt(LoadSlice([]float32{-1})).data[0]; !math.IsNaN(float64(got)) {
		t.Errorf("Sqrt(-1): got %v, want NaN", got)
	}

	wide := Sqrt(LoadSlice([]float64{2, 1e300}))
	if wide.data[0] != math.Sqrt(2) || wide.data[1] != 1e150 {
		t.Errorf("Sqrt float64: got %v", wide.data)
	}
}

// Every float32 input rounds to the same root as the float64 root of its
// widened value, whichever path runs.
func TestSqrtCorrectlyRounded(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	in := make([]float32, 4096)
	for i := range in {
		in[i] = math.Float32frombits(r.Uint32() &^ (1 << 31))
	}
	got := Sqrt(LoadSlice(in))
	for i, x := range in {
		want := float32(math.Sqrt(float64(x)))
		if math.Float32bits(got.data[i]) != math.Float32bits(want) && !(want != want && got.data[i] != got.data[i]) {
			t.Fatalf("Sqrt(%v): got %v, want %v", x, got.data[i], want)
		}
	}
}

func TestBitwise(t *testing.T) {
	a := LoadSlice([]uint16{0b1100})
	b := LoadSlice([]uint16{0b1010})

	tests := []struct {
		name string
		got  uint16
		want uint16
	}{
		{"And", And(a, b).data[0], 0b1000},
		{"Or", Or(a, b).data[0], 0b1110},
		{"Xor", Xor(a, b).data[0], 0b0110},
		{"AndNot", AndNot(a, b).data[0], 0b0100},
		{"Not", Not(a).data[0], 0xfff3},
		{"ShiftLeft", ShiftLeft(a, 2).data[0], 0b110000},
		{"ShiftRight", ShiftRight(a, 2).data[0], 0b11},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %b, want %b", tt.name, tt.got, tt.want)
		}
	}

	if got := ShiftRight(LoadSlice([]int8{-8}), 1).data[0]; got != -4 {
		t.Errorf("ShiftRight int8 arithmetic: got %d, want -4", got)
	}
}

func TestReduceSum(t *testing.T) {
	v := LoadSlice([]float32{1, 2, 3, 4})
	if got := ReduceSumN(v, 3); got != 6 {
		t.Errorf("ReduceSumN: got %v, want 6", got)
	}
	if got := ReduceSumN(SetN[int64](2, 5), 9); got != 10 {
		t.Errorf("ReduceSumN past the lanes: got %v, want 10", got)
	}
}

func TestEqualMask(t *testing.T) {
	nan := math.NaN()
	m := Equal(LoadSlice([]float64{1, nan}), LoadSlice([]float64{1, nan}))
	if !m.GetBit(0) || m.GetBit(1) {
		t.Errorf("Equal mask: got %v, want [true false]", m.bits)
	}
	if m.Bits(2) != 0b01 {
		t.Errorf("Mask.Bits: got %b, want 1", m.Bits(2))
	}
	if m.AllTrue() || !m.AnyTrue() || m.CountTrue() != 1 {
		t.Error("Mask predicates disagree with lanes")
	}

}

func TestOrderMasks(t *testing.T) {
	nan := math.NaN()
	a := LoadSlice([]float64{1, 5, nan, 3})
	b := LoadSlice([]float64{2, 5, 1, nan})

	if got := LessThan(a, b).Bits(4); got != 0b0001 {
		t.Errorf("LessThan: got %04b, want 0001", got)
	}
	if got := GreaterThan(b, a).Bits(4); got != 0b0001 {
		t.Errorf("GreaterThan: got %04b, want 0001", got)
	}
	if got := MaskOr(LessThan(a, b), Equal(a, b)).Bits(4); got != 0b0011 {
		t.Errorf("LessThan or Equal: got %04b, want 0011", got)
	}
	if got := IsNaN(a).Bits(4); got != 0b0100 {
		t.Errorf("IsNaN: got %04b, want 0100", got)
	}
	if IsNaN(LoadSlice([]int32{0, -1})).AnyTrue() {
		t.Error("IsNaN on integer lanes reported a NaN")
	}
}

func TestKernelsMatchLanes(t *testing.T) {
	a := []float32{1.1, -2.25, 3.5e-8, 7}
	b := []float32{0.3, 9.75, 1.5e-3, 3}

	run := func() [][]float32 {
		va, vb := LoadSlice(a), LoadSlice(b)
		return [][]float32{
			Add(va, vb).data,
			Sub(va, vb).data,
			Mul(va, vb).data,
			Div(va, vb).data,
			Sqrt(Abs(va)).data,
			Sqrt(vb).data,
		}
	}

	restore := SetDispatch(DispatchScalar)
	scalar := run()
	restore()
	native := run()

	for op := range scalar {
		for i := range scalar[op] {
			if math.Float32bits(scalar[op][i]) != math.Float32bits(native[op][i]) {
				t.Errorf("op %d lane %d: scalar %v, native %v", op, i, scalar[op][i], native[op][i])
			}
		}
	}
}

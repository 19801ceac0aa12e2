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
	"errors"
	"flag"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vecn/hwy"
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Verbose() {
		hwy.LogDispatch(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	os.Exit(m.Run())
}

func TestAddScenario(t *testing.T) {
	got := New3[float32](1, 2, 3).Add(New3[float32](4, 5, 6))
	assert.Equal(t, New3[float32](5, 7, 9), got)
}

func TestDotScenario(t *testing.T) {
	assert.Equal(t, 0.0, New3(1.0, 0, 0).Dot(New3(0.0, 1, 0)))
	assert.Equal(t, 6.0, New3(2.0, 0, 0).Dot(New3(3.0, 0, 0)))
	assert.Equal(t, int32(32), New3[int32](1, 2, 3).Dot(New3[int32](4, 5, 6)))
}

func TestConstructors(t *testing.T) {
	t.Run("Splat", func(t *testing.T) {
		assert.Equal(t, [4]int16{7, 7, 7, 7}, Splat4[int16](7).Array())
	})

	t.Run("Units", func(t *testing.T) {
		assert.Equal(t, [5]float64{0, 0, 0, 0, 1}, UnitV5[float64]().Array())
		assert.Equal(t, [2]uint8{0, 1}, UnitY2[uint8]().Array())
		assert.Equal(t, [3]int{1, 1, 1}, One3[int]().Array())
		assert.True(t, Zero4[float32]().IsZero())
	})

	t.Run("Unit out of range", func(t *testing.T) {
		assert.PanicsWithError(t, "vector: index 3 out of range [0, 3)", func() {
			Unit[float64, [3]float64](3)
		})
	})

	t.Run("Widen and narrow", func(t *testing.T) {
		v2 := New2(1.0, 2)
		v3 := New3From2(v2, 3)
		v4 := New4From3(v3, 4)
		v5 := New5From4(v4, 5)
		assert.Equal(t, [5]float64{1, 2, 3, 4, 5}, v5.Array())
		assert.Equal(t, New5From2(v2, 3, 4, 5), v5)
		assert.Equal(t, New5From3(v3, 4, 5), v5)
		assert.Equal(t, New4From2(v2, 3, 4), v4)
		assert.Equal(t, v4, Narrow5To4(v5))
		assert.Equal(t, v3, Narrow4To3(v4))
		assert.Equal(t, v2, Narrow3To2(v3))
	})

	t.Run("FromSlice", func(t *testing.T) {
		v, err := FromSlice3([]int32{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, New3[int32](1, 2, 3), v)

		_, err = FromSlice4([]int32{1, 2, 3})
		require.ErrorIs(t, err, ErrShortSequence)
		var lerr *LengthError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 4, lerr.Need)
		assert.Equal(t, 3, lerr.Have)

		assert.Panics(t, func() { MustFromSlice2([]float32{1}) })
	})
}

func TestAccessors(t *testing.T) {
	v := New5[int64](10, 20, 30, 40, 50)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []int64{10, 20, 30, 40, 50}, []int64{v.X(), v.Y(), v.Z(), v.W(), v.V()})

	x, err := v.Get(4)
	require.NoError(t, err)
	assert.Equal(t, int64(50), x)

	_, err = v.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Panics(t, func() { New2(1, 2).Z() })
	assert.Panics(t, func() { v.At(5) })

	w := v.With(2, 99)
	assert.Equal(t, int64(99), w.Z())
	assert.Equal(t, int64(30), v.Z(), "With must not modify the receiver")

	c := v.Components()
	c[0] = -1
	assert.Equal(t, int64(10), v.X())
}

func TestCopyTo(t *testing.T) {
	v := New3[float32](1, 2, 3)

	dst := make([]float32, 5)
	require.NoError(t, v.CopyTo(dst, 2))
	if diff := cmp.Diff([]float32{0, 0, 1, 2, 3}, dst); diff != "" {
		t.Errorf("CopyTo mismatch (-want +got):\n%s", diff)
	}

	err := v.CopyTo(dst, 3)
	require.ErrorIs(t, err, ErrShortBuffer)
	var lerr *LengthError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Have)

	err = v.CopyTo(dst, 9)
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 0, lerr.Have)

	err = v.CopyTo(dst, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	var ierr *IndexError
	assert.True(t, errors.As(err, &ierr))

	assert.True(t, v.TryCopyTo(make([]float32, 3)))
	assert.False(t, v.TryCopyTo(make([]float32, 2)))
}

func TestEqualityAndHash(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := New3(negZero, 1, 2)
	b := New3(0.0, 1, 2)

	assert.True(t, a == b)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), New3(0.0, 2, 1).Hash())

	nan := New2(math.NaN(), 0)
	assert.False(t, nan.Equal(nan))

	m := map[Vector2[int]]string{New2(1, 2): "a"}
	assert.Equal(t, "a", m[New2(1, 2)])

	assert.NotEqual(t, New5[int8](1, 2, 3, 4, 5).Hash(), New5[int8](1, 2, 3, 4, 6).Hash())
}

func TestPredicates(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name                                      string
		v                                         Vector3[float64]
		nan, isInf, finite, zero, neg, isInteger bool
	}{
		{"ordinary", New3(1.5, -2, 3), false, false, true, false, false, false},
		{"whole", New3(1.0, -2, 3), false, false, true, false, false, true},
		{"zero", Zero3[float64](), false, false, true, true, false, true},
		{"negative", New3(-1.0, math.Copysign(0, -1), -3), false, false, true, false, true, true},
		{"infinite", New3(inf, 0, 0), false, true, false, false, false, false},
		{"nan", New3(math.NaN(), 0, 0), true, false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nan, tt.v.IsNaN(), "IsNaN")
			assert.Equal(t, tt.isInf, tt.v.IsInf(), "IsInf")
			assert.Equal(t, tt.finite, tt.v.IsFinite(), "IsFinite")
			assert.Equal(t, tt.zero, tt.v.IsZero(), "IsZero")
			assert.Equal(t, tt.neg, tt.v.IsNegative(), "IsNegative")
			assert.Equal(t, tt.isInteger, tt.v.IsInteger(), "IsInteger")
		})
	}

	u := New2[uint16](1, 2)
	assert.False(t, u.IsNegative())
	assert.True(t, u.IsInteger())
	assert.True(t, New2[int8](-1, -128).IsNegative())
}

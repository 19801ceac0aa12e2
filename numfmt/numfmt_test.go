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

package numfmt

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	german = New("de-test", ".", ",")
	french = New("fr-test", "\u00a0", ",")
)

func TestFormatScalarFloat(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		format string
		p      Provider
		want   string
	}{
		{"general", 1.5, "", Invariant, "1.5"},
		{"integer valued", 3, "G", Invariant, "3"},
		{"negative zero", math.Copysign(0, -1), "", Invariant, "-0"},
		{"large", 1e15, "", Invariant, "1E+15"},
		{"below limit", 1e14, "", Invariant, "100000000000000"},
		{"small", 0.00001, "", Invariant, "1E-05"},
		{"small plain", 0.0001, "", Invariant, "0.0001"},
		{"lower general", 1e20, "g", Invariant, "1e+20"},
		{"significant digits", 12345.678, "G5", Invariant, "12346"},
		{"fixed", 3.14159, "F2", Invariant, "3.14"},
		{"fixed default", 2, "F", Invariant, "2.00"},
		{"exponent", 1234.5, "E2", Invariant, "1.23E+003"},
		{"exponent lower", 1234.5, "e", Invariant, "1.234500e+003"},
		{"grouped", 1234567.891, "N1", Invariant, "1,234,567.9"},
		{"culture decimal", 1.5, "", german, "1,5"},
		{"culture grouped", -1234.5, "N2", german, "-1.234,50"},
		{"nan", math.NaN(), "", Invariant, "NaN"},
		{"inf", math.Inf(1), "", Invariant, "Infinity"},
		{"neg inf", math.Inf(-1), "F3", Invariant, "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatScalar(tt.x, tt.format, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatScalarFloat32Shortest(t *testing.T) {
	got, err := FormatScalar(float32(0.1), "", Invariant)
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)

	got, err = FormatScalar(float32(1e7), "", Invariant)
	require.NoError(t, err)
	assert.Equal(t, "1E+07", got)
}

func TestFormatScalarInteger(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"general", func() (string, error) { return FormatScalar(int32(-42), "", Invariant) }, "-42"},
		{"unsigned max", func() (string, error) { return FormatScalar(uint64(math.MaxUint64), "", Invariant) }, "18446744073709551615"},
		{"decimal padded", func() (string, error) { return FormatScalar(int16(-7), "D4", Invariant) }, "-0007"},
		{"hex", func() (string, error) { return FormatScalar(uint16(0xbeef), "X", Invariant) }, "BEEF"},
		{"hex lower padded", func() (string, error) { return FormatScalar(uint8(10), "x4", Invariant) }, "000a"},
		{"hex negative", func() (string, error) { return FormatScalar(int8(-1), "X", Invariant) }, "FF"},
		{"fixed", func() (string, error) { return FormatScalar(int64(5), "F2", german) }, "5,00"},
		{"grouped", func() (string, error) { return FormatScalar(int64(1234567), "N0", Invariant) }, "1,234,567"},
		{"general fits", func() (string, error) { return FormatScalar(int64(math.MaxInt64), "G19", Invariant) }, "9223372036854775807"},
		{"general min", func() (string, error) { return FormatScalar(int64(math.MinInt64), "G19", Invariant) }, "-9223372036854775808"},
		{"general unsigned", func() (string, error) { return FormatScalar(uint64(math.MaxUint64), "G20", Invariant) }, "18446744073709551615"},
		{"general rounded", func() (string, error) { return FormatScalar(int64(math.MaxInt64), "G18", Invariant) }, "9.22337203685477581E+18"},
		{"general carry", func() (string, error) { return FormatScalar(int32(9999), "G2", Invariant) }, "1E+04"},
		{"general trims zeros", func() (string, error) { return FormatScalar(int32(-12001), "g3", german) }, "-1,2e+04"},
		{"exponent", func() (string, error) { return FormatScalar(uint64(math.MaxUint64), "E19", Invariant) }, "1.8446744073709551615E+019"},
		{"exponent rounded", func() (string, error) { return FormatScalar(int16(1250), "E1", Invariant) }, "1.3E+003"},
		{"exponent zero", func() (string, error) { return FormatScalar(uint8(0), "e2", Invariant) }, "0.00e+000"},
		{"exponent no fraction", func() (string, error) { return FormatScalar(int8(-7), "E0", Invariant) }, "-7E+000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatScalarInvalid(t *testing.T) {
	_, err := FormatScalar(1.5, "D", Invariant)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = FormatScalar(1, "Q", Invariant)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = FormatScalar(1, "F-1", Invariant)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseScalar(t *testing.T) {
	f, err := ParseScalar[float64](" 1.25 ", Invariant)
	require.NoError(t, err)
	assert.Equal(t, 1.25, f)

	f, err = ParseScalar[float64]("1.234,5", german)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, f)

	f32, err := ParseScalar[float32]("1E+07", Invariant)
	require.NoError(t, err)
	assert.Equal(t, float32(1e7), f32)

	inf, err := ParseScalar[float64]("-Infinity", Invariant)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf, -1))

	nan, err := ParseScalar[float32]("NaN", Invariant)
	require.NoError(t, err)
	assert.True(t, nan != nan)

	i, err := ParseScalar[int8]("-128", Invariant)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i)

	u, err := ParseScalar[uint32]("+7", Invariant)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), u)
}

func TestParseScalarErrors(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
		want error
	}{
		{"empty", func() error { _, err := ParseScalar[int32]("", Invariant); return err }, strconv.ErrSyntax},
		{"int overflow", func() error { _, err := ParseScalar[int8]("128", Invariant); return err }, strconv.ErrRange},
		{"negative unsigned", func() error { _, err := ParseScalar[uint8]("-1", Invariant); return err }, strconv.ErrSyntax},
		{"fraction in int", func() error { _, err := ParseScalar[int64]("1.5", Invariant); return err }, strconv.ErrSyntax},
		{"hex float", func() error { _, err := ParseScalar[float64]("0x1p-2", Invariant); return err }, strconv.ErrSyntax},
		{"wrong decimal", func() error { _, err := ParseScalar[float64]("1.5", french); return err }, strconv.ErrSyntax},
		{"garbage", func() error { _, err := ParseScalar[float32]("abc", Invariant); return err }, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRoundTripShortest(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.1, 1.0 / 3, math.MaxFloat64, math.SmallestNonzeroFloat64, -123.456e-7} {
		s, err := FormatScalar(x, "", Invariant)
		require.NoError(t, err)
		back, err := ParseScalar[float64](s, Invariant)
		require.NoError(t, err)
		assert.Equal(t, x, back, "round trip of %s", s)
	}
}

func TestForTag(t *testing.T) {
	en := ForTag(language.AmericanEnglish)
	assert.Equal(t, ",", en.GroupSeparator())
	assert.Equal(t, ".", en.DecimalSeparator())
	assert.Equal(t, "en-US", en.Name())

	de := ForTag(language.German)
	assert.Equal(t, ".", de.GroupSeparator())
	assert.Equal(t, ",", de.DecimalSeparator())
}

func TestLookup(t *testing.T) {
	c, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Invariant, c)

	c, err = Lookup("invariant")
	require.NoError(t, err)
	assert.Equal(t, Invariant, c)

	c, err = Lookup("de")
	require.NoError(t, err)
	assert.Equal(t, ",", c.DecimalSeparator())

	_, err = Lookup("not a locale!")
	assert.Error(t, err)
}

func TestFirstSeparator(t *testing.T) {
	assert.Equal(t, ",", firstSeparator("1,000,000"))
	assert.Equal(t, "\u00a0", firstSeparator("1\u00a0000\u00a0000"))
	assert.Equal(t, "", firstSeparator("1000000"))
	assert.Equal(t, "٬", firstSeparator("١٬٠٠٠٬٠٠٠"))
}

func TestSeparatorUTF8(t *testing.T) {
	b, err := SeparatorUTF8(french)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc2, 0xa0}, b)

	_, err = SeparatorUTF8(New("bad", "\xff", "."))
	assert.Error(t, err)
}

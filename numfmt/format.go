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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ajroetker/go-vecn/hwy"
)

// ErrFormat is returned for an unknown or inapplicable format specifier.
var ErrFormat = errors.New("numfmt: invalid format specifier")

// Text used for non-finite floats.
const (
	NaNSymbol              = "NaN"
	PositiveInfinitySymbol = "Infinity"
	NegativeInfinitySymbol = "-Infinity"
)

// spec is a parsed format specifier: a letter plus an optional precision.
type spec struct {
	kind      byte
	upper     bool
	precision int // -1 when absent
}

func parseSpec(format string) (spec, error) {
	if format == "" {
		return spec{kind: 'g', upper: true, precision: -1}, nil
	}
	c := format[0]
	s := spec{kind: c | 0x20, upper: c >= 'A' && c <= 'Z', precision: -1}
	switch s.kind {
	case 'g', 'r', 'f', 'e', 'n', 'd', 'x':
	default:
		return spec{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if len(format) > 1 {
		n, err := strconv.Atoi(format[1:])
		if err != nil || n < 0 || n > 999 {
			return spec{}, fmt.Errorf("%w: %q", ErrFormat, format)
		}
		s.precision = n
	}
	if s.kind == 'r' {
		s.kind, s.precision = 'g', -1
	}
	return s, nil
}

// FormatScalar renders x under format using p's separators. A nil p
// selects Default.
//
// Supported specifiers, each with an optional precision:
//   - "" or "G": shortest round-trip text; Gn limits significant digits
//   - "R": same as "G"
//   - "Fn": fixed point with n fractional digits (default 2)
//   - "En": scientific with n fractional digits (default 6)
//   - "Nn": fixed point with digit grouping (default 2)
//   - "Dn": integers only, zero padded to n digits
//   - "Xn": integers only, hexadecimal zero padded to n digits
//
// Lower-case letters select lower-case exponent and hex digits.
func FormatScalar[T hwy.Lanes](x T, format string, p Provider) (string, error) {
	b, err := AppendScalar(nil, x, format, p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendScalar appends the text of x to dst; see FormatScalar.
func AppendScalar[T hwy.Lanes](dst []byte, x T, format string, p Provider) ([]byte, error) {
	s, err := parseSpec(format)
	if err != nil {
		return dst, err
	}
	p = orDefault(p)
	if hwy.IsFloat[T]() {
		return appendFloat(dst, float64(x), hwy.SizeOf[T]()*8, s, p)
	}
	if hwy.IsSigned[T]() {
		return appendInt(dst, int64(x), false, hwy.SizeOf[T]()*8, s, p)
	}
	return appendInt(dst, int64(uint64(x)), true, hwy.SizeOf[T]()*8, s, p)
}

func appendInt(dst []byte, x int64, unsigned bool, bitSize int, s spec, p Provider) ([]byte, error) {
	digits := func() string {
		if unsigned {
			return strconv.FormatUint(uint64(x), 10)
		}
		return strconv.FormatInt(x, 10)
	}
	switch s.kind {
	case 'x':
		u := uint64(x)
		if bitSize < 64 {
			u &= 1<<uint(bitSize) - 1
		}
		h := strconv.FormatUint(u, 16)
		if s.upper {
			h = strings.ToUpper(h)
		}
		return append(dst, pad(h, s.precision)...), nil
	case 'd':
		d := digits()
		if strings.HasPrefix(d, "-") {
			return append(append(dst, '-'), pad(d[1:], s.precision)...), nil
		}
		return append(dst, pad(d, s.precision)...), nil
	case 'g':
		if s.precision <= 0 {
			return append(dst, digits()...), nil
		}
		return append(dst, localize(generalDigits(digits(), s), p, false)...), nil
	case 'f', 'n':
		text := digits()
		if prec := precisionOr(s, 2); prec > 0 {
			text += "." + strings.Repeat("0", prec)
		}
		return append(dst, localize(text, p, s.kind == 'n')...), nil
	default:
		return append(dst, localize(exponentDigits(digits(), s), p, false)...), nil
	}
}

// Integers are rounded in decimal so every digit of a 64-bit value
// survives; ties round away from zero.

// generalDigits renders the decimal text d of an integer under Gn: as is
// when it has at most n digits, in scientific notation otherwise.
func generalDigits(d string, s spec) string {
	sign, d := splitSign(d)
	if len(d) <= s.precision {
		return sign + d
	}
	kept, exp := roundSignificant(d, s.precision)
	kept = strings.TrimRight(kept, "0")
	return formatExponent(sign+mantissa(kept)+"e+"+strconv.Itoa(exp), s.upper, 2)
}

// exponentDigits renders the decimal text d of an integer under En.
func exponentDigits(d string, s spec) string {
	sign, d := splitSign(d)
	prec := precisionOr(s, 6)
	kept, exp := roundSignificant(d, prec+1)
	kept += strings.Repeat("0", prec+1-len(kept))
	return formatExponent(sign+mantissa(kept)+"e+"+strconv.Itoa(exp), s.upper, 3)
}

func splitSign(d string) (sign, digits string) {
	if strings.HasPrefix(d, "-") {
		return "-", d[1:]
	}
	return "", d
}

// mantissa places the decimal point after the first digit.
func mantissa(digits string) string {
	if len(digits) <= 1 {
		return digits
	}
	return digits[:1] + "." + digits[1:]
}

// roundSignificant rounds the digits d, which have no leading zeros, to n
// significant digits. It returns the kept digits and the decimal exponent
// of the first one.
func roundSignificant(d string, n int) (string, int) {
	exp := len(d) - 1
	if len(d) <= n {
		return d, exp
	}
	kept := []byte(d[:n])
	if d[n] < '5' {
		return string(kept), exp
	}
	for i := n - 1; i >= 0; i-- {
		if kept[i] < '9' {
			kept[i]++
			return string(kept), exp
		}
		kept[i] = '0'
	}
	// All nines carried out: 999 -> 1000.
	return "1" + string(kept[:n-1]), exp + 1
}

func pad(digits string, width int) string {
	if width <= len(digits) {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func appendFloat(dst []byte, x float64, bitSize int, s spec, p Provider) ([]byte, error) {
	switch {
	case math.IsNaN(x):
		return append(dst, NaNSymbol...), nil
	case math.IsInf(x, 1):
		return append(dst, PositiveInfinitySymbol...), nil
	case math.IsInf(x, -1):
		return append(dst, NegativeInfinitySymbol...), nil
	}

	var text string
	switch s.kind {
	case 'g':
		text = formatGeneral(x, bitSize, s)
	case 'f':
		text = strconv.FormatFloat(x, 'f', precisionOr(s, 2), bitSize)
	case 'n':
		text = strconv.FormatFloat(x, 'f', precisionOr(s, 2), bitSize)
	case 'e':
		text = formatExponent(strconv.FormatFloat(x, 'e', precisionOr(s, 6), bitSize), s.upper, 3)
	default:
		return dst, fmt.Errorf("%w: %q does not apply to floating-point values", ErrFormat, string(s.kind))
	}
	return append(dst, localize(text, p, s.kind == 'n')...), nil
}

func precisionOr(s spec, def int) int {
	if s.precision < 0 {
		return def
	}
	return s.precision
}

// formatGeneral renders shortest round-trip text, switching to scientific
// notation for magnitudes below 1e-4 and from 1e15 (float64) or 1e7
// (float32) upward.
func formatGeneral(x float64, bitSize int, s spec) string {
	if s.precision > 0 {
		return formatExponent(strconv.FormatFloat(x, 'g', s.precision, bitSize), s.upper, 2)
	}
	sci := strconv.FormatFloat(x, 'e', -1, bitSize)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	limit := 15
	if bitSize == 32 {
		limit = 7
	}
	if exp < -4 || exp >= limit {
		return formatExponent(sci, s.upper, 2)
	}
	return strconv.FormatFloat(x, 'f', -1, bitSize)
}

// formatExponent rewrites a Go exponent ("e+06") with the requested case
// and at least minDigits exponent digits.
func formatExponent(text string, upper bool, minDigits int) string {
	i := strings.IndexAny(text, "eE")
	if i < 0 {
		return text
	}
	mant, exp := text[:i], text[i+1:]
	sign := "+"
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = exp[:1], exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	e := "e"
	if upper {
		e = "E"
	}
	return mant + e + sign + pad(exp, minDigits)
}

// localize rewrites text, which uses "." as its decimal point, with p's
// decimal separator, inserting p's group separator between each group of
// three integral digits when grouped is set.
func localize(text string, p Provider, grouped bool) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	intPart, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart, frac = text[:i], text[i+1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	if grouped {
		sep := p.GroupSeparator()
		for i, c := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteString(sep)
			}
			b.WriteRune(c)
		}
	} else {
		b.WriteString(intPart)
	}
	if len(text) > len(intPart) {
		b.WriteString(p.DecimalSeparator())
		b.WriteString(frac)
	}
	return b.String()
}

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
	"strconv"
	"strings"

	"github.com/ajroetker/go-vecn/hwy"
)

// ParseScalar parses s as a T using p's separators. A nil p selects
// Default. Leading and trailing white space is ignored.
//
// Integers accept an optional sign and decimal digits. Floats also accept
// a fraction using the provider's decimal separator, digit groups using
// its group separator, an exponent, and the non-finite symbols NaN,
// Infinity, -Infinity and ∞.
//
// Errors are *strconv.NumError values, so errors.Is(err, strconv.ErrSyntax)
// and errors.Is(err, strconv.ErrRange) distinguish malformed and
// out-of-range input.
func ParseScalar[T hwy.Lanes](s string, p Provider) (T, error) {
	p = orDefault(p)
	text := strings.TrimSpace(s)
	bitSize := hwy.SizeOf[T]() * 8

	if hwy.IsFloat[T]() {
		f, err := parseFloat(text, bitSize, p)
		if err != nil {
			return 0, err
		}
		return T(f), nil
	}
	if hwy.IsSigned[T]() {
		n, err := strconv.ParseInt(text, 10, bitSize)
		if err != nil {
			return 0, numError(s, err)
		}
		return T(n), nil
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, bitSize)
	if err != nil {
		return 0, numError(s, err)
	}
	return T(u), nil
}

func parseFloat(text string, bitSize int, p Provider) (float64, error) {
	switch text {
	case NaNSymbol:
		return strconv.ParseFloat("NaN", bitSize)
	case PositiveInfinitySymbol, "∞", "+∞":
		return strconv.ParseFloat("+Inf", bitSize)
	case NegativeInfinitySymbol, "-∞":
		return strconv.ParseFloat("-Inf", bitSize)
	}
	norm := text
	if g := p.GroupSeparator(); g != "" && g != p.DecimalSeparator() {
		norm = strings.ReplaceAll(norm, g, "")
	}
	if dec := p.DecimalSeparator(); dec != "." {
		if strings.Contains(norm, ".") {
			return 0, syntaxError(text)
		}
		norm = strings.Replace(norm, dec, ".", 1)
	}
	// strconv accepts Go literal forms that are not part of this grammar.
	if strings.ContainsAny(norm, "_xXpP") {
		return 0, syntaxError(text)
	}
	f, err := strconv.ParseFloat(norm, bitSize)
	if err != nil {
		return f, numError(text, err)
	}
	return f, nil
}

func syntaxError(s string) error {
	return &strconv.NumError{Func: "ParseScalar", Num: s, Err: strconv.ErrSyntax}
}

// numError reports err against the caller's original text.
func numError(s string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return &strconv.NumError{Func: "ParseScalar", Num: s, Err: ne.Err}
	}
	return err
}

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
	"strconv"
	"unicode/utf8"

	"github.com/ajroetker/go-vecn/numfmt"
)

// AppendFormat appends the text form of v, <c1, c2, ..., cN>, to dst. Each
// component is rendered with numfmt.AppendScalar under format, and
// components are separated by p's group separator followed by a space. A
// nil p selects numfmt.Default().
func (v Vector[T, A]) AppendFormat(dst []byte, format string, p numfmt.Provider) ([]byte, error) {
	sep := numfmt.Group(p)
	start := len(dst)
	dst = append(dst, '<')
	for i := range len(v.c) {
		if i > 0 {
			dst = append(dst, sep...)
			dst = append(dst, ' ')
		}
		var err error
		dst, err = numfmt.AppendScalar(dst, v.c[i], format, p)
		if err != nil {
			return dst[:start], err
		}
	}
	return append(dst, '>'), nil
}

// FormatText returns the text form of v; see AppendFormat.
func (v Vector[T, A]) FormatText(format string, p numfmt.Provider) (string, error) {
	b, err := v.AppendFormat(nil, format, p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String returns v in the general format of the default culture.
func (v Vector[T, A]) String() string {
	s, _ := v.FormatText("", nil)
	return s
}

// TryFormat writes the text form of v into dst as runes. It returns the
// number of runes written and true, or 0 and false when dst is too small
// or format is invalid.
func (v Vector[T, A]) TryFormat(dst []rune, format string, p numfmt.Provider) (int, bool) {
	var scratch [128]byte
	b, err := v.AppendFormat(scratch[:0], format, p)
	if err != nil || utf8.RuneCount(b) > len(dst) {
		return 0, false
	}
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		dst[n] = r
		n++
		b = b[size:]
	}
	return n, true
}

// TryFormatUTF8 writes the UTF-8 text form of v into dst. It returns the
// number of bytes written and true, or 0 and false when dst is too small
// or format is invalid.
func (v Vector[T, A]) TryFormatUTF8(dst []byte, format string, p numfmt.Provider) (int, bool) {
	var scratch [128]byte
	b, err := v.AppendFormat(scratch[:0], format, p)
	if err != nil || len(b) > len(dst) {
		return 0, false
	}
	return copy(dst, b), true
}

// Format implements fmt.Formatter. The verbs v and s print the general
// format; f, e, g (and their upper-case forms) map to the F, E and G
// specifiers with the verb's precision; d, x and X print integers.
func (v Vector[T, A]) Format(f fmt.State, verb rune) {
	var spec string
	switch verb {
	case 'v', 's':
		spec = "G"
	case 'f', 'F':
		spec = "F"
	case 'e':
		spec = "e"
	case 'E':
		spec = "E"
	case 'g':
		spec = "g"
	case 'G':
		spec = "G"
	case 'd':
		spec = "D"
	case 'x':
		spec = "x"
	case 'X':
		spec = "X"
	default:
		fmt.Fprintf(f, "%%!%c(vector=%s)", verb, v.String())
		return
	}
	if prec, ok := f.Precision(); ok {
		spec += strconv.Itoa(prec)
	} else if spec == "G" {
		spec = ""
	}
	b, err := v.AppendFormat(nil, spec, nil)
	if err != nil {
		fmt.Fprintf(f, "%%!%c(vector=%s)", verb, v.String())
		return
	}
	f.Write(b)
}

// MarshalText implements encoding.TextMarshaler using the invariant
// culture and round-trip precision.
func (v Vector[T, A]) MarshalText() ([]byte, error) {
	return v.AppendFormat(nil, "R", numfmt.Invariant)
}

// UnmarshalText implements encoding.TextUnmarshaler using the invariant
// culture.
func (v *Vector[T, A]) UnmarshalText(text []byte) error {
	parsed, err := ParseUTF8[T, A](text, numfmt.Invariant)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

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
	"bytes"
	"strings"

	"github.com/ajroetker/go-vecn/numfmt"
)

// Parse parses text of the form <c1, c2, ..., cN> produced by
// AppendFormat. Components are separated by p's group separator; white
// space around each component is ignored. A nil p selects
// numfmt.Default().
//
// Errors are *ParseError values wrapping ErrSyntax for a grammar violation
// (empty text, missing brackets, a missing separator) or the scalar
// parser's error for a malformed component.
func Parse[T Number, A Components[T]](s string, p numfmt.Provider) (Vector[T, A], error) {
	return parseText[T, A](s, numfmt.Group(p), p)
}

// TryParse is like Parse but reports failure with a boolean. The returned
// vector is the zero vector on failure.
func TryParse[T Number, A Components[T]](s string, p numfmt.Provider) (Vector[T, A], bool) {
	v, err := Parse[T, A](s, p)
	return v, err == nil
}

// ParseUTF8 is Parse over UTF-8 encoded bytes. The separator is encoded
// once and matched against the raw bytes.
func ParseUTF8[T Number, A Components[T]](b []byte, p numfmt.Provider) (Vector[T, A], error) {
	sep, err := numfmt.SeparatorUTF8(p)
	if err != nil {
		return Vector[T, A]{}, &ParseError{Text: string(b), Component: -1, cause: err}
	}
	return parseText[T, A](b, sep, p)
}

// TryParseUTF8 is like ParseUTF8 but reports failure with a boolean.
func TryParseUTF8[T Number, A Components[T]](b []byte, p numfmt.Provider) (Vector[T, A], bool) {
	v, err := ParseUTF8[T, A](b, p)
	return v, err == nil
}

func parseText[T Number, A Components[T], S string | []byte](text, sep S, p numfmt.Provider) (r Vector[T, A], err error) {
	fail := func(component int, cause error) (Vector[T, A], error) {
		return Vector[T, A]{}, &ParseError{Text: string(text), Component: component, cause: cause}
	}
	if len(text) < 2 || text[0] != '<' || text[len(text)-1] != '>' {
		return fail(-1, ErrSyntax)
	}
	if len(sep) == 0 {
		return fail(-1, ErrSyntax)
	}
	rest := text[1 : len(text)-1]
	n := len(r.c)
	for i := range n {
		field := rest
		if i < n-1 {
			j := index(rest, sep)
			if j < 0 {
				return fail(i, ErrSyntax)
			}
			field, rest = rest[:j], rest[j+len(sep):]
		}
		x, err := numfmt.ParseScalar[T](string(field), p)
		if err != nil {
			return fail(i, err)
		}
		r.c[i] = x
	}
	return r, nil
}

func index[S string | []byte](s, sep S) int {
	switch s := any(s).(type) {
	case string:
		return strings.Index(s, any(sep).(string))
	case []byte:
		return bytes.Index(s, any(sep).([]byte))
	}
	return -1
}

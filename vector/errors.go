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
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by errors for a component index outside [0, N).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrShortSequence is wrapped by errors for a source with fewer than N elements.
	ErrShortSequence = errors.New("vector: sequence shorter than vector arity")

	// ErrShortBuffer is wrapped by errors for a destination with room for fewer than N elements.
	ErrShortBuffer = errors.New("vector: destination too short")

	// ErrSyntax is wrapped by parse errors for text that does not match <c1, ..., cN>.
	ErrSyntax = errors.New("vector: invalid syntax")
)

// IndexError reports an out-of-range component index.
//
// errors.Is(err, ErrIndexOutOfRange) holds for every IndexError.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError reports a sequence or buffer too short for the vector.
//
// The underlying sentinel (ErrShortSequence or ErrShortBuffer) can be
// accessed via errors.Unwrap.
type LengthError struct {
	Need  int
	Have  int
	cause error
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: need %d elements, have %d", e.cause, e.Need, e.Have)
}

func (e *LengthError) Unwrap() error { return e.cause }

// ParseError reports text that could not be parsed as a vector.
//
// The original underlying error can be accessed via errors.Unwrap: ErrSyntax
// for a grammar violation, or the scalar parser's error for a malformed
// component.
type ParseError struct {
	Text      string
	Component int // -1 when the error is not tied to a component
	cause     error
}

func (e *ParseError) Error() string {
	if e.Component < 0 {
		return fmt.Sprintf("vector: parsing %q: %v", e.Text, e.cause)
	}
	return fmt.Sprintf("vector: parsing %q: component %d: %v", e.Text, e.Component, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

func indexError(i, n int) error {
	return &IndexError{Index: i, Len: n}
}

func lengthError(need, have int, cause error) error {
	return &LengthError{Need: need, Have: have, cause: cause}
}

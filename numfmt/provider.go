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

// Package numfmt formats and parses numeric scalars for vector text
// interchange. A Provider supplies the culture-specific separators; the
// scalar grammar itself is fixed.
package numfmt

import (
	"fmt"
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Provider supplies the culture-specific text used when formatting and
// parsing numbers.
type Provider interface {
	// Name identifies the culture, e.g. "invariant" or "de-DE".
	Name() string

	// GroupSeparator separates digit groups ("," in the invariant culture).
	// Vector text uses it between components.
	GroupSeparator() string

	// DecimalSeparator separates the integral and fractional parts.
	DecimalSeparator() string
}

// Culture is a Provider with fixed separators.
type Culture struct {
	name    string
	group   string
	decimal string
}

// New returns a culture with the given separators.
func New(name, group, decimal string) Culture {
	return Culture{name: name, group: group, decimal: decimal}
}

// Name implements Provider.
func (c Culture) Name() string { return c.name }

// GroupSeparator implements Provider.
func (c Culture) GroupSeparator() string { return c.group }

// DecimalSeparator implements Provider.
func (c Culture) DecimalSeparator() string { return c.decimal }

// String returns the culture name.
func (c Culture) String() string { return c.name }

// Invariant is the culture-independent provider: "," groups and "." decimals.
var Invariant = Culture{name: "invariant", group: ",", decimal: "."}

// ForTag derives a culture from CLDR data for tag by formatting reference
// numbers with a golang.org/x/text/message printer and reading back the
// separators it used. Locales that do not group digits keep the
// invariant group separator.
func ForTag(tag language.Tag) Culture {
	p := message.NewPrinter(tag)
	group := firstSeparator(p.Sprintf("%d", 1000000))
	if group == "" {
		group = Invariant.group
	}
	decimal := firstSeparator(p.Sprintf("%.1f", 1.5))
	if decimal == "" {
		decimal = Invariant.decimal
	}
	return Culture{name: tag.String(), group: group, decimal: decimal}
}

// firstSeparator returns the first run of non-digit runes in s.
func firstSeparator(s string) string {
	start := -1
	for i, r := range s {
		isDigit := unicode.IsDigit(r)
		switch {
		case start < 0 && !isDigit && i > 0:
			start = i
		case start >= 0 && isDigit:
			return s[start:i]
		}
	}
	return ""
}

// Lookup returns the culture named by a BCP 47 tag. The names "" and
// "invariant" select Invariant.
func Lookup(name string) (Culture, error) {
	if name == "" || name == Invariant.name {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Culture{}, fmt.Errorf("numfmt: unknown locale %q: %w", name, err)
	}
	return ForTag(tag), nil
}

// LocaleEnv names the environment variable holding the default locale.
const LocaleEnv = "VECN_LOCALE"

var defaultCulture = sync.OnceValue(func() Culture {
	c, err := Lookup(os.Getenv(LocaleEnv))
	if err != nil {
		return Invariant
	}
	return c
})

// Default returns the process default culture: the locale named by
// VECN_LOCALE, or Invariant when it is unset or invalid. It is resolved
// once.
func Default() Culture {
	return defaultCulture()
}

// orDefault resolves a nil provider to Default.
func orDefault(p Provider) Provider {
	if p == nil {
		return Default()
	}
	return p
}

// SeparatorUTF8 returns the provider's group separator as bytes, checking
// that it is valid UTF-8.
func SeparatorUTF8(p Provider) ([]byte, error) {
	sep := orDefault(p).GroupSeparator()
	if !utf8.ValidString(sep) {
		return nil, fmt.Errorf("numfmt: group separator %q is not valid UTF-8", sep)
	}
	return []byte(sep), nil
}

// Group returns the provider's group separator, using Default for nil.
func Group(p Provider) string {
	return orDefault(p).GroupSeparator()
}

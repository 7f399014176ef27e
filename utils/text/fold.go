/*
   Copyright 2026 The EMBERPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"emberpx.dev/dnx/config"
)

// Folder turns raw machine identifiers into human-readable display strings
// using a fixed locale's case-folding rules.
//
// A Folder wraps cases.Caser values, which are stateful transformers; a
// Folder is therefore NOT safe for concurrent use. Build one per goroutine
// or per call. Construction is cheap, and formatted results are memoized a
// layer above, so in practice a Folder runs once per distinct key.
type Folder struct {
	// upper and lower apply the locale's case mappings.
	upper cases.Caser
	lower cases.Caser
	// splitCombined splits mixed underscore+space input on both delimiters.
	splitCombined bool
}

// NewFolder constructs a Folder for the given locale.
// The zero tag (language.Und) falls back to config.DefaultLocale.
func NewFolder(tag language.Tag, splitCombined bool) *Folder {
	if tag == language.Und {
		tag = config.DefaultLocale
	}
	return &Folder{
		upper:         cases.Upper(tag),
		lower:         cases.Lower(tag),
		splitCombined: splitCombined,
	}
}

// Capitalize uppercases the first rune of s and lowercases the remainder.
// An empty string is returned unchanged.
func (f *Folder) Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return f.upper.String(s[:size]) + f.lower.String(s[size:])
}

// Prettify renders a raw identifier as a display string. Decision order,
// first match wins:
//
//  1. raw contains '_' and no space: split on '_'.
//  2. raw contains a space: split on ' '.
//  3. otherwise: capitalize the whole string.
//
// Each segment is capitalized and segments are rejoined with single spaces.
// Consecutive delimiters produce empty segments, which capitalize to "" and
// contribute only their joining space ("A__B" -> "A  B"). Input holding both
// delimiters takes branch 2 only, so underscores survive inside tokens
// unless the Folder was built with splitCombined.
func (f *Folder) Prettify(raw string) string {
	var parts []string
	switch {
	case f.splitCombined && strings.ContainsAny(raw, "_ "):
		parts = strings.FieldsFunc(raw, func(r rune) bool {
			return r == '_' || r == ' '
		})
	case strings.Contains(raw, "_") && !strings.Contains(raw, " "):
		parts = strings.Split(raw, "_")
	case strings.Contains(raw, " "):
		parts = strings.Split(raw, " ")
	default:
		return f.Capitalize(raw)
	}

	for i, p := range parts {
		parts[i] = f.Capitalize(p)
	}
	return strings.Join(parts, " ")
}

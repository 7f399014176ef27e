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

package category

import (
	"fmt"
	"strings"
)

// Category identifies a display-name domain.
//
// # Overview
//
// Category is a small enumerated type that names a class of game identifier
// whose display names are requested through the formatter: block and item
// materials, entity types, ability types, and party feature flags. Each
// category owns its own memoization cache and its own slice of the override
// table, so the same key value in two categories never collides.
//
// Category is intentionally minimal: it does not carry per-category
// formatting rules. Those live in Config and apply uniformly; the category
// only partitions state.
//
// # Contract
//
//   - Category values are plain integers and are safe to use concurrently
//     across goroutines.
//   - The set of values may grow, but existing values must not change
//     meaning; caches and override tables are partitioned by them.
//   - Category should be used as an input to lookups and registration, not
//     mutated at runtime in hot paths.
type Category int

const (
	// Material is the domain of block and item materials ("IRON_PICKAXE").
	Material Category = iota

	// Entity is the domain of entity types ("ENDER DRAGON").
	Entity

	// Ability is the domain of ability types ("TREE_FELLER").
	Ability

	// Feature is the domain of party feature flags ("ALLIANCE").
	Feature
)

// All returns every defined category, in declaration order.
// The returned slice is a fresh copy; callers may mutate it.
func All() []Category {
	return []Category{Material, Entity, Ability, Feature}
}

// String returns a short, stable identifier suitable for logging, metrics
// labels and configuration dumps:
//
//   - Material -> "material"
//   - Entity   -> "entity"
//   - Ability  -> "ability"
//   - Feature  -> "feature"
//
// For unknown or out-of-range values, String returns the diagnostic form
// "Unknown(<n>)". It never panics, so corrupted values can still be
// surfaced safely in logs.
func (c Category) String() string {
	switch c {
	case Material:
		return "material"
	case Entity:
		return "entity"
	case Ability:
		return "ability"
	case Feature:
		return "feature"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Parse converts a string token into the corresponding Category. It accepts
// the canonical tokens produced by String for known values, matched
// case-insensitively with surrounding whitespace trimmed.
//
// On failure, Parse returns Material and a non-nil error; callers must not
// rely on the returned Category in the error case. Parse never panics, which
// makes it suitable for configuration values, environment variables and
// other human-authored inputs.
func Parse(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Material, fmt.Errorf("category: empty category")
	}

	switch strings.ToLower(trimmed) {
	case "material":
		return Material, nil
	case "entity":
		return Entity, nil
	case "ability":
		return Ability, nil
	case "feature":
		return Feature, nil
	default:
		return Material, fmt.Errorf("category: unknown category %q", s)
	}
}

// MustParse is like Parse but panics on invalid input. It is intended for
// hard-coded values in Go code, tests and initialization paths where an
// invalid token is a programmer error rather than a recoverable condition.
// It must not be used on untrusted input.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler. For the defined values it
// returns the same tokens as String. Unknown values yield an error rather
// than persisting a diagnostic "Unknown(...)" form.
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case Material, Entity, Ability, Feature:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("category: cannot marshal unknown category %d", c)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// tokens as Parse. On failure the receiver is left unchanged and a non-nil
// error is returned; it never panics.
func (c *Category) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = value
	return nil
}

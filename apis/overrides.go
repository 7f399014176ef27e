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

package apis

import "emberpx.dev/dnx/category"

// Overrides provides an explicit, derivation-free display-name table for
// known keys. Keep it minimal so implementations can be lock-free or
// sync.Map-backed.
type Overrides interface {
	// Register associates a (category, key) pair with a fixed display name.
	// Implementations should be idempotent for the same triple; conflicting
	// re-registrations return an error.
	Register(cat category.Category, k Key, name string) error
	// Lookup returns the registered display name for a key if present.
	Lookup(cat category.Category, k Key) (name string, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []OverrideEntry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// OverrideEntry is a single (category, key, name) association in an
// Overrides snapshot.
type OverrideEntry struct {
	// Category is the domain the entry belongs to.
	Category category.Category
	// Key is the registered category key.
	Key Key
	// Name is the associated display name.
	Name string
}

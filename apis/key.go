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

// Key is a category key: an enumerated value whose canonical textual form
// drives display-name formatting. It is fmt.Stringer-shaped on purpose; game
// enumerations (materials, entity types, abilities, feature flags) already
// carry a String method that yields their machine name ("IRON_PICKAXE").
//
// Keys are used as cache map keys, so their dynamic type must be comparable.
// Nil keys are rejected at the boundary (see utils/keys.Canonical).
type Key interface {
	// String returns the raw machine identifier for this key.
	String() string
}

// DisplayNamer is the zero-cost fast path for display-name resolution.
// When a key implements DisplayNamer, the formatter chain uses DisplayName()
// verbatim and skips overrides and derived formatting for that key.
//
// DisplayName must be deterministic for a given key value, cheap, and safe
// for concurrent calls; the result is memoized like any derived name.
type DisplayNamer interface {
	// DisplayName returns the human-readable name for this key.
	DisplayName() string
}

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

// Cache memoizes display names per key. Entries are write-once: concurrent
// first-writers for the same key may both compute, but the first stored
// value wins and is what every caller observes afterwards.
type Cache interface {
	// Get returns the memoized value for k if present.
	Get(k Key) (value string, ok bool)
	// GetOrCompute returns the memoized value for k, computing and storing
	// it on first use. compute must be pure; it may run redundantly under
	// contention but its result is only stored once. An invalid key (nil or
	// non-comparable) yields an error and nothing is stored.
	GetOrCompute(k Key, compute func(k Key) string) (string, error)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []CacheEntry
	// Count returns the number of memoized entries.
	Count() int
	// Reset clears all memoized entries.
	Reset()
}

// CacheEntry is a single (key, value) association in a Cache snapshot.
type CacheEntry struct {
	// Key is the memoized category key.
	Key Key
	// Value is the memoized display name.
	Value string
}

// CacheSet groups one Cache per category domain. Caches live for the life
// of the snapshot that owns them; there is no eviction.
type CacheSet interface {
	// For returns the cache for a category, creating it on first use.
	For(cat category.Category) Cache
	// Reset clears every per-category cache.
	Reset()
}

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

package cache

import (
	"sync"

	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/utils/keys"
)

// New constructs an empty memo cache.
// Entries are write-once and never evicted; the practical bound is the size
// of the enumeration domain feeding the cache.
func New() apis.Cache {
	return &memo{}
}

// memo is a simple Cache implementation backed by sync.Map.
type memo struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps apis.Key to its memoized display name.
	m sync.Map // map[apis.Key]string
	// count tracks the number of memoized entries.
	count int
}

// Get returns the memoized value for k if present.
func (c *memo) Get(k apis.Key) (string, bool) {
	if _, err := keys.Canonical(k); err != nil {
		return "", false
	}
	if v, ok := c.m.Load(k); ok {
		return v.(string), true
	}
	return "", false
}

// GetOrCompute returns the memoized value for k, computing and storing it on
// first use. compute runs outside the lock; it must be pure. Racing
// first-writers may both compute, but only the first store is kept, so every
// caller observes the same value.
func (c *memo) GetOrCompute(k apis.Key, compute func(apis.Key) string) (string, error) {
	// Validate inputs early.
	if _, err := keys.Canonical(k); err != nil {
		return "", err
	}

	// Fast read path: no locking for already-memoized keys.
	if v, ok := c.m.Load(k); ok {
		return v.(string), nil
	}

	v := compute(k)

	// Write path: guard with a mutex to keep the counter consistent.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	// First write wins; the entry is never replaced.
	if old, ok := c.m.Load(k); ok {
		return old.(string), nil
	}

	c.m.Store(k, v)
	c.count++
	return v, nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (c *memo) Entries() []apis.CacheEntry {
	entries := make([]apis.CacheEntry, 0, c.Count())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CacheEntry{
			Key:   key.(apis.Key),
			Value: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of memoized entries.
func (c *memo) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears all memoized entries.
func (c *memo) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}

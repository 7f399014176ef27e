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

package overrides

import (
	"errors"
	"sync"

	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/category"
	"emberpx.dev/dnx/utils/keys"
)

var (
	// ErrEmptyName is returned when an empty display name is provided.
	ErrEmptyName = errors.New("overrides: empty display name provided")
	// ErrConflictingRegistration indicates an attempt to re-register a
	// (category, key) pair with a different display name.
	ErrConflictingRegistration = errors.New("overrides: conflicting display-name registration")
)

// New constructs an empty override table.
func New() apis.Overrides {
	return &table{}
}

// entryKey partitions registrations by category so equal key values in two
// domains never collide.
type entryKey struct {
	cat category.Category
	key apis.Key
}

// table is a simple Overrides implementation backed by sync.Map.
type table struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps entryKey to the registered display name.
	m sync.Map // map[entryKey]string
	// count tracks the number of registered entries.
	count int
}

// Register associates a (category, key) pair with a fixed display name.
// It is idempotent for the same (category, key, name) triple.
func (t *table) Register(cat category.Category, k apis.Key, name string) error {
	// Validate inputs early.
	if _, err := keys.Canonical(k); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}

	ek := entryKey{cat: cat, key: k}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := t.m.Load(ek); ok {
		if old.(string) == name {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := t.m.Load(ek); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}

	t.m.Store(ek, name)
	t.count++
	return nil
}

// Lookup returns the registered display name for a key if present.
func (t *table) Lookup(cat category.Category, k apis.Key) (string, bool) {
	if _, err := keys.Canonical(k); err != nil {
		return "", false
	}
	if v, ok := t.m.Load(entryKey{cat: cat, key: k}); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (t *table) Entries() []apis.OverrideEntry {
	entries := make([]apis.OverrideEntry, 0, t.Count())
	t.m.Range(func(key, value any) bool {
		ek := key.(entryKey)
		entries = append(entries, apis.OverrideEntry{
			Category: ek.cat,
			Key:      ek.key,
			Name:     value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (t *table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Reset clears all registered entries.
func (t *table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m = sync.Map{}
	t.count = 0
}

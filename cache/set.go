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
	"emberpx.dev/dnx/category"
)

// NewSet constructs a CacheSet with one lazily created cache per category.
func NewSet() apis.CacheSet {
	return &set{}
}

// set is a CacheSet backed by sync.Map so For is lock-free once populated.
type set struct {
	m sync.Map // map[category.Category]apis.Cache
}

// For returns the cache for cat, creating it on first use. Racing creators
// are reconciled by LoadOrStore; every caller gets the same instance.
func (s *set) For(cat category.Category) apis.Cache {
	if v, ok := s.m.Load(cat); ok {
		return v.(apis.Cache)
	}
	v, _ := s.m.LoadOrStore(cat, New())
	return v.(apis.Cache)
}

// Reset clears every per-category cache. Cache instances stay valid; only
// their entries are dropped.
func (s *set) Reset() {
	s.m.Range(func(_, v any) bool {
		v.(apis.Cache).Reset()
		return true
	})
}

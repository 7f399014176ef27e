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

package builder

import (
	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/cache"
	"emberpx.dev/dnx/formatter"
	"emberpx.dev/dnx/overrides"
	"emberpx.dev/dnx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildOverrides builds and returns a new apis.Overrides based on the
// provided configuration and pre-existing table. If a pre-existing table is
// provided, its entries are copied into the new table.
func (b *builder) BuildOverrides(_ apis.Config, prev apis.Overrides, _ any) apis.Overrides {
	novr := overrides.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = novr.Register(e.Category, e.Key, e.Name)
		}
	}
	return novr
}

// BuildFormatter builds and returns a new apis.Formatter based on the
// provided configuration, override table, and pre-existing formatter.
func (b *builder) BuildFormatter(_ apis.Config, ovr apis.Overrides, _ apis.Formatter, _ any) apis.Formatter {
	return formatter.New(
		strategy.NewDisplayNamerStrategy(),
		strategy.NewOverridesStrategy(ovr),
		strategy.NewPrettyStrategy(),
	)
}

// BuildCaches builds and returns a fresh per-category cache set. Memoized
// values are never migrated: a configuration change can alter every derived
// name, and entries are recomputed lazily anyway.
func (b *builder) BuildCaches(_ apis.Config, _ apis.CacheSet, _ any) apis.CacheSet {
	return cache.NewSet()
}

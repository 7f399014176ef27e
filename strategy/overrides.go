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

package strategy

import (
	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/category"
)

// NewOverridesStrategy creates an apis.Strategy that consults an
// apis.Overrides table (derivation-free lookup).
func NewOverridesStrategy(ovr apis.Overrides) apis.Strategy {
	return &overridesStrategy{ovr: ovr}
}

// overridesStrategy consults a provided override table.
type overridesStrategy struct {
	ovr apis.Overrides
}

// Ensure overridesStrategy implements apis.Strategy.
var _ apis.Strategy = (*overridesStrategy)(nil)

// TryFormat looks up (cat, k) in the override table.
func (s *overridesStrategy) TryFormat(cat category.Category, k apis.Key, _ apis.Config) (string, bool) {
	if k == nil || s.ovr == nil {
		return "", false
	}
	return s.ovr.Lookup(cat, k)
}

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
	"emberpx.dev/dnx/utils/keys"
	"emberpx.dev/dnx/utils/text"
)

// NewPrettyStrategy creates the universal fallback apis.Strategy that
// derives a display name from the key's canonical textual form.
func NewPrettyStrategy() apis.Strategy {
	return prettyStrategy{}
}

// prettyStrategy splits the raw identifier on its delimiter, capitalizes
// each segment with the configured locale's rules, and rejoins with spaces.
// It handles every valid key, so it terminates the chain.
type prettyStrategy struct{}

// Ensure prettyStrategy implements apis.Strategy.
var _ apis.Strategy = (*prettyStrategy)(nil)

// TryFormat derives the display name for k. Invalid keys (nil or
// non-comparable) fall through unhandled.
func (prettyStrategy) TryFormat(_ category.Category, k apis.Key, cfg apis.Config) (string, bool) {
	raw, err := keys.Canonical(k)
	if err != nil {
		return "", false
	}
	// A cases.Caser is stateful, so the Folder is built per call; results
	// are memoized a layer above, so this runs once per distinct key.
	f := text.NewFolder(cfg.Locale, cfg.SplitCombined)
	return f.Prettify(raw), true
}

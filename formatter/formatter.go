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

package formatter

import (
	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/category"
)

// New constructs an apis.Formatter that tries the given strategies in order.
// Nil strategies are ignored. The returned formatter is safe for concurrent
// use provided strategies themselves are safe for concurrent TryFormat calls.
func New(strategies ...apis.Strategy) apis.Formatter {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving formatter over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Format runs strategies in order until one handles the key.
// Returns an empty string if no strategy produced a name.
func (c chain) Format(cat category.Category, k apis.Key, cfg apis.Config) string {
	for _, s := range c.strats {
		if name, ok := s.TryFormat(cat, k, cfg); ok {
			return name
		}
	}
	return ""
}

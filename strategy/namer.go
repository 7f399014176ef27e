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

// NewDisplayNamerStrategy creates an apis.Strategy that uses apis.DisplayNamer.
func NewDisplayNamerStrategy() apis.Strategy {
	return &displayNamerStrategy{}
}

// displayNamerStrategy is a zero-cost fast path: if k implements
// apis.DisplayNamer, return its DisplayName() and stop the chain.
type displayNamerStrategy struct{}

// Ensure displayNamerStrategy implements apis.Strategy.
var _ apis.Strategy = (*displayNamerStrategy)(nil)

// TryFormat checks if k implements apis.DisplayNamer and returns its
// DisplayName().
func (*displayNamerStrategy) TryFormat(_ category.Category, k apis.Key, _ apis.Config) (string, bool) {
	if k == nil {
		return "", false
	}
	if n, ok := k.(apis.DisplayNamer); ok {
		return n.DisplayName(), true
	}
	return "", false
}

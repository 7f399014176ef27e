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

// Formatter coordinates strategies to produce display names for keys.
// Typical chain: DisplayNamerStrategy -> OverridesStrategy -> PrettyStrategy.
type Formatter interface {
	// Format returns the display name for k in category cat, or "" if no
	// strategy could produce one.
	Format(cat category.Category, k Key, cfg Config) string
}

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

// Strategy is a pluggable formatting step. A Formatter can chain multiple
// strategies in order (e.g., DisplayNamer -> Overrides -> Pretty).
type Strategy interface {
	// TryFormat attempts to produce a display name for k according to cfg.
	// It returns (name, true) if handled; otherwise ("", false) to fall
	// through to the next strategy.
	TryFormat(cat category.Category, k Key, cfg Config) (name string, handled bool)
}

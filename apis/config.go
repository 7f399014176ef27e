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

import "golang.org/x/text/language"

// Config carries read-only formatting knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Locale selects the case-folding rules used when capitalizing
	// identifier segments. It is fixed per snapshot, never per call.
	// The zero tag (language.Und) is treated as the package default.
	Locale language.Tag

	// TicksPerSecond is the game clock rate used by tick-to-seconds
	// rendering. Non-positive values fall back to the package default.
	TicksPerSecond int

	// SplitCombined controls inputs that contain both underscores and
	// spaces. When false, only the space split runs and underscores survive
	// inside tokens ("already_has_and has space" -> "Already_has_and Has
	// Space"). When true, such inputs split on both delimiters.
	SplitCombined bool
}

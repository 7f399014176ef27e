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

// Builder composes Overrides, Formatter and CacheSet from a Config.
// Implementations may migrate state from previous instances (prev*), or
// ignore them.
type Builder interface {
	// BuildOverrides constructs an Overrides table for Config. May migrate
	// entries from the previous table.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildOverrides(cfg Config, prev Overrides, ext any) Overrides
	// BuildFormatter constructs a Formatter for Config and Overrides. May
	// reuse state from a previous formatter.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildFormatter(cfg Config, ovr Overrides, prev Formatter, ext any) Formatter
	// BuildCaches constructs the per-category cache set. Implementations
	// should not migrate memoized values across a Config change, since a
	// Config change can alter every derived name.
	BuildCaches(cfg Config, prev CacheSet, ext any) CacheSet
}

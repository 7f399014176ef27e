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

// Package dnx provides a global, process-wide display-name service for
// game-server plugins.
//
// dnx is responsible for turning enumerated machine identifiers — material
// names, entity types, ability names, party feature flags — into
// human-readable display strings, memoizing the result per distinct key.
// Examples: "IRON_PICKAXE" -> "Iron Pickaxe", "ENDER DRAGON" ->
// "Ender Dragon".
//
// # Design
//
// The core of dnx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: rules that control how identifiers are rendered (case-folding
//     locale, game clock rate, delimiter handling for mixed input).
//
//   - Overrides: a process-wide table of explicit, human-chosen display
//     names per (category, key). This is how you force "TNT" instead of the
//     derived "Tnt". The table can be written to at runtime
//     (RegisterOverride).
//
//   - Formatter: a read-only object that answers "what is the display name
//     of this key?". The formatter tries multiple strategies, in priority
//     order:
//     1. If the key implements apis.DisplayNamer, use k.DisplayName().
//     2. If (category, key) is found in Overrides, use that name.
//     3. Otherwise, derive the name from the key's String() form: split on
//     the delimiter, capitalize each segment with the configured locale's
//     rules, rejoin with spaces.
//     The formatter is concurrency-safe for reads.
//
//   - Caches: one write-once memo cache per category (material, entity,
//     ability, feature). A display name is computed at most once per
//     distinct key per snapshot; repeated lookups are a lock-free map hit.
//
//   - Builder: a pluggable factory that knows how to construct Overrides,
//     Formatter and Caches for a given Config (and optional extension
//     data). The Builder migrates override entries across rebuilds but
//     never migrates memoized values, since a Config change can alter every
//     derived name.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state and
// atomically swap it in, so lookups are lock-free on the hot path:
//
//	name := dnx.Material(mat)
//	name := dnx.Entity(et)
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Material(k) / Entity(k) / Ability(k) / Feature(k) string
//     Format(cat category.Category, k apis.Key) string
//     Prettify(raw string) string
//     Capitalize(raw string) string
//     TicksToSeconds(ticks float64) string
//     Percent(ratio float64) string
//     JoinFrom(args []string, offset int) string
//     IsInt(s string) / IsFloat(s string) bool
//
//     These are safe for concurrent use without additional locking. They
//     always read from the latest published snapshot. The four category
//     helpers and Format panic if the key is nil or its type cannot be used
//     as a map key; that is a programming error in the caller, not a
//     recoverable condition.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg), SetBuilder(b), SetExt(ext), SetOverrides(ovr),
//     SetFormatter(f), SetCaches(cs), RegisterOverride(cat, k, name),
//     ResetCaches(), Pin*/Unpin*, SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new snapshot
//     (rebuilding or reusing layers as needed), and atomically publishes
//     it. SetOverrides/SetFormatter/SetCaches overwrite and "pin" their
//     layer; a pinned layer is not rebuilt automatically until unpinned.
//     SetAll is the hard-reset API used by tests to obtain a clean
//     deterministic state.
//
//  3. Introspection:
//
//     Config(), Overrides(), Formatter(), Caches(), Builder(), ExtAs[T]()
//
// # Concurrency model
//
// Reads are wait-free: they load the current *state atomically and never
// take locks. Writes take a short build mutex, assemble a brand-new state
// struct, and publish it via an atomic pointer swap. Within one snapshot,
// two goroutines racing to format the same unseen key may both run the pure
// derivation, but the cache keeps only the first stored value, so results
// never diverge and entries are never overwritten.
//
// # Scope
//
// dnx is intentionally small. It does not localize messages, persist its
// caches, or know what a material is. It solves one job:
//
//	"Given an enumerated game identifier, produce a human-readable
//	 display string, at most once per distinct key."
//
// Everything else (game logic, messaging, UI) belongs to higher layers.
package dnx

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

package dnx

import (
	"errors"
	"sync"
	"sync/atomic"

	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/builder"
	"emberpx.dev/dnx/category"
	"emberpx.dev/dnx/config"
	"emberpx.dev/dnx/utils/text"
)

// init initializes the global display-name state.
func init() {
	// Initialize state with default cfg, ovr, fmtr, and cch.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.ovr = b.BuildOverrides(s.cfg, nil, nil)
	s.fmtr = b.BuildFormatter(s.cfg, s.ovr, nil, nil)
	s.cch = b.BuildCaches(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilOverrides is returned when a builder returns a nil override table.
	ErrNilOverrides = errors.New("dnx: builder returned nil overrides")
	// ErrNilFormatter is returned when a builder returns a nil formatter.
	ErrNilFormatter = errors.New("dnx: builder returned nil formatter")
	// ErrNilCaches is returned when a builder returns a nil cache set.
	ErrNilCaches = errors.New("dnx: builder returned nil cache set")
)

// Material returns the memoized display name for a material key.
// It panics if k is nil or not usable as a map key.
// This is a convenience wrapper around the global state.
func Material(k apis.Key) string {
	return Format(category.Material, k)
}

// Entity returns the memoized display name for an entity-type key.
// It panics if k is nil or not usable as a map key.
func Entity(k apis.Key) string {
	return Format(category.Entity, k)
}

// Ability returns the memoized display name for an ability-type key.
// It panics if k is nil or not usable as a map key.
func Ability(k apis.Key) string {
	return Format(category.Ability, k)
}

// Feature returns the memoized display name for a party-feature key.
// It panics if k is nil or not usable as a map key.
func Feature(k apis.Key) string {
	return Format(category.Feature, k)
}

// Format returns the memoized display name for k in category cat, computing
// it on first use via the global formatter. A nil or non-comparable key is a
// programming error in the caller and panics.
func Format(cat category.Category, k apis.Key) string {
	s := st.Load()
	name, err := s.cch.For(cat).GetOrCompute(k, func(k apis.Key) string {
		return s.fmtr.Format(cat, k, s.cfg)
	})
	if err != nil {
		panic(err)
	}
	return name
}

// Prettify derives a display string from a raw identifier without touching
// any cache. It uses the current snapshot's locale and delimiter rules.
func Prettify(raw string) string {
	s := st.Load()
	return text.NewFolder(s.cfg.Locale, s.cfg.SplitCombined).Prettify(raw)
}

// Capitalize uppercases the first rune of raw and lowercases the remainder
// using the current snapshot's locale. Empty input is returned unchanged.
func Capitalize(raw string) string {
	s := st.Load()
	return text.NewFolder(s.cfg.Locale, s.cfg.SplitCombined).Capitalize(raw)
}

// TicksToSeconds renders a game tick count as seconds with one decimal
// digit, using the current snapshot's clock rate. The decimal separator is
// always '.', regardless of host locale.
func TicksToSeconds(ticks float64) string {
	return text.FormatSeconds(ticks, st.Load().cfg.TicksPerSecond)
}

// Percent renders a ratio as a percentage with two decimal digits:
// 0.5 -> "50.00%".
func Percent(ratio float64) string {
	return text.FormatPercent(ratio)
}

// JoinFrom joins args starting at offset into a single space-separated
// string, "" if offset is at or past the end.
func JoinFrom(args []string, offset int) string {
	return text.JoinFrom(args, offset)
}

// IsInt reports whether s parses as a base-10 integer.
func IsInt(s string) bool {
	return text.IsInt(s)
}

// IsFloat reports whether s parses as a floating-point number.
func IsFloat(s string) bool {
	return text.IsFloat(s)
}

// RegisterOverride adds an explicit display name for (cat, k) to the global
// override table. Overrides registered after a key's first format are masked
// by the memo cache until ResetCaches is called; register them at process
// init. This is a convenience wrapper around the global table.
func RegisterOverride(cat category.Category, k apis.Key, name string) error {
	return st.Load().ovr.Register(cat, k, name)
}

// ResetCaches clears every memoized display name in the current snapshot.
// Subsequent lookups recompute lazily.
func ResetCaches() {
	st.Load().cch.Reset()
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, ovr apis.Overrides, fmtr apis.Formatter, cch apis.CacheSet, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Overrides
	novr := ovr
	npovr := false
	if novr == nil {
		novr = nbld.BuildOverrides(ncfg, old.ovr, next)
	} else {
		npovr = true
	}

	// Formatter
	nfmtr := fmtr
	npfmt := false
	if nfmtr == nil {
		nfmtr = nbld.BuildFormatter(ncfg, novr, old.fmtr, next)
	} else {
		npfmt = true
	}

	// Caches
	ncch := cch
	npcch := false
	if ncch == nil {
		ncch = nbld.BuildCaches(ncfg, old.cch, next)
	} else {
		npcch = true
	}

	// Ensure non-nil ovr, fmtr and cch.
	if novr == nil {
		panic(ErrNilOverrides)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			ovr:  novr,
			fmtr: nfmtr,
			cch:  ncch,
			bld:  nbld,
			povr: npovr,
			pfmt: npfmt,
			pcch: npcch,
		},
	)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the unpinned layers using the new configuration; memoized
// values are always discarded with the old cache set.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ovr, fmtr and cch based on the new cfg and old state.
	novr := old.ovr
	if !old.povr {
		novr = b.BuildOverrides(cfg, old.ovr, old.ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(cfg, novr, old.fmtr, old.ext)
	}
	ncch := old.cch
	if !old.pcch {
		ncch = b.BuildCaches(cfg, old.cch, old.ext)
	}

	// Ensure non-nil layers.
	if novr == nil {
		panic(ErrNilOverrides)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			ovr:  novr,
			fmtr: nfmtr,
			cch:  ncch,
			bld:  b,
			povr: old.povr,
			pfmt: old.pfmt,
			pcch: old.pcch,
		},
	)
}

// Overrides returns the global override table.
func Overrides() apis.Overrides {
	return st.Load().ovr
}

// SetOverrides sets the global override table to ovr and pins it.
// The formatter is rebuilt against the new table and memoized values are
// discarded, unless those layers are themselves pinned.
func SetOverrides(ovr apis.Overrides) {
	if ovr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new fmtr and cch based on the old cfg and new ovr.
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(old.cfg, ovr, old.fmtr, old.ext)
	}
	ncch := old.cch
	if !old.pcch {
		ncch = b.BuildCaches(old.cfg, old.cch, old.ext)
	}

	// Ensure non-nil layers.
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			ovr:  ovr,
			fmtr: nfmtr,
			cch:  ncch,
			bld:  b,
			povr: true,
			pfmt: old.pfmt,
			pcch: old.pcch,
		},
	)
}

// Formatter returns the global formatter.
func Formatter() apis.Formatter {
	return st.Load().fmtr
}

// SetFormatter sets the global formatter to f and pins it.
// Memoized values are discarded unless the cache layer is pinned.
func SetFormatter(f apis.Formatter) {
	if f == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// A new formatter can produce different names; drop memoized values.
	ncch := old.cch
	if !old.pcch {
		ncch = old.bld.BuildCaches(old.cfg, old.cch, old.ext)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			ovr:  old.ovr,
			fmtr: f,
			cch:  ncch,
			bld:  old.bld,
			povr: old.povr,
			pfmt: true,
			pcch: old.pcch,
		},
	)
}

// Caches returns the global per-category cache set.
func Caches() apis.CacheSet {
	return st.Load().cch
}

// SetCaches sets the global cache set to cs and pins it.
func SetCaches(cs apis.CacheSet) {
	if cs == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			ovr:  old.ovr,
			fmtr: old.fmtr,
			cch:  cs,
			bld:  old.bld,
			povr: old.povr,
			pfmt: old.pfmt,
			pcch: true,
		},
	)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new layers based on the new bld and old state.
	novr := old.ovr
	if !old.povr {
		novr = b.BuildOverrides(old.cfg, old.ovr, old.ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(old.cfg, novr, old.fmtr, old.ext)
	}
	ncch := old.cch
	if !old.pcch {
		ncch = b.BuildCaches(old.cfg, old.cch, old.ext)
	}

	// Ensure non-nil layers.
	if novr == nil {
		panic(ErrNilOverrides)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			ovr:  novr,
			fmtr: nfmtr,
			cch:  ncch,
			bld:  b,
			povr: old.povr,
			pfmt: old.pfmt,
			pcch: old.pcch,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new layers based on the new ext and old state.
	novr := old.ovr
	if !old.povr {
		novr = b.BuildOverrides(old.cfg, old.ovr, ext)
	}
	nfmtr := old.fmtr
	if !old.pfmt {
		nfmtr = b.BuildFormatter(old.cfg, novr, old.fmtr, ext)
	}
	ncch := old.cch
	if !old.pcch {
		ncch = b.BuildCaches(old.cfg, old.cch, ext)
	}

	// Ensure non-nil layers.
	if novr == nil {
		panic(ErrNilOverrides)
	}
	if nfmtr == nil {
		panic(ErrNilFormatter)
	}
	if ncch == nil {
		panic(ErrNilCaches)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			ovr:  novr,
			fmtr: nfmtr,
			cch:  ncch,
			bld:  b,
			povr: old.povr,
			pfmt: old.pfmt,
			pcch: old.pcch,
		},
	)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsOverridesPinned returns whether the global override table is pinned (immutable).
func IsOverridesPinned() bool {
	return st.Load().povr
}

// PinOverrides makes the global override table immutable.
func PinOverrides() {
	setPins(func(s *state) { s.povr = true })
}

// UnpinOverrides makes the global override table mutable again.
func UnpinOverrides() {
	setPins(func(s *state) { s.povr = false })
}

// IsFormatterPinned returns whether the global formatter is pinned (immutable).
func IsFormatterPinned() bool {
	return st.Load().pfmt
}

// PinFormatter makes the global formatter immutable.
func PinFormatter() {
	setPins(func(s *state) { s.pfmt = true })
}

// UnpinFormatter makes the global formatter mutable again.
func UnpinFormatter() {
	setPins(func(s *state) { s.pfmt = false })
}

// IsCachesPinned returns whether the global cache set is pinned (immutable).
func IsCachesPinned() bool {
	return st.Load().pcch
}

// PinCaches makes the global cache set immutable.
func PinCaches() {
	setPins(func(s *state) { s.pcch = true })
}

// UnpinCaches makes the global cache set mutable again.
func UnpinCaches() {
	setPins(func(s *state) { s.pcch = false })
}

// setPins publishes a snapshot identical to the current one except for the
// pin flags mutated by fn.
func setPins(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Copy, mutate pins, and store the new state atomically.
	next := *old
	fn(&next)
	st.Store(&next)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global display-name state.
var st atomic.Pointer[state]

// state is the global display-name state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// ovr is the global override table.
	ovr apis.Overrides
	// fmtr is the global formatter.
	fmtr apis.Formatter
	// cch is the global per-category cache set.
	cch apis.CacheSet
	// bld is the global builder.
	bld apis.Builder
	// povr indicates whether the override table is pinned (immutable).
	povr bool
	// pfmt indicates whether the formatter is pinned (immutable).
	pfmt bool
	// pcch indicates whether the cache set is pinned (immutable).
	pcch bool
}

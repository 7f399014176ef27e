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
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"golang.org/x/text/language"

	"emberpx.dev/dnx/apis"
	"emberpx.dev/dnx/builder"
	"emberpx.dev/dnx/cache"
	"emberpx.dev/dnx/category"
	"emberpx.dev/dnx/config"
)

// ---------------------- Helpers ----------------------

// token is a plain enum-style key for tests.
type token string

func (t token) String() string { return string(t) }

// Reset to a clean snapshot using the given builder.
// This fully replaces builder, config, ext and rebuilds all layers.
// Pins are reset because we pass nil ovr/fmtr/cch.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	SetAll(&cfg, ext, nil, nil, nil, b)
}

// Restore the production default stack; registered during cleanup so tests
// that mutate global state do not leak into each other.
func resetDefaults(tb testing.TB) {
	tb.Helper()
	cfg := config.DefaultConfig()
	SetAll(&cfg, nil, nil, nil, nil, builder.New())
	tb.Cleanup(func() {
		cfg := config.DefaultConfig()
		SetAll(&cfg, nil, nil, nil, nil, builder.New())
	})
}

// ---------------------- Test doubles (mocks) ----------------------

type mockOverrides struct {
	id   string
	mu   sync.Mutex
	data map[string]string
}

func newMockOverrides(id string) *mockOverrides {
	return &mockOverrides{id: id, data: make(map[string]string)}
}

func (m *mockOverrides) key(cat category.Category, k apis.Key) string {
	return cat.String() + "/" + k.String()
}

func (m *mockOverrides) Register(cat category.Category, k apis.Key, name string) error {
	m.mu.Lock()
	m.data[m.key(cat, k)] = name
	m.mu.Unlock()
	return nil
}

func (m *mockOverrides) Lookup(cat category.Category, k apis.Key) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.data[m.key(cat, k)]
	return n, ok
}

func (m *mockOverrides) Entries() []apis.OverrideEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []apis.OverrideEntry
	for kk, n := range m.data {
		out = append(out, apis.OverrideEntry{Key: token(kk), Name: n})
	}
	return out
}

func (m *mockOverrides) Count() int { m.mu.Lock(); defer m.mu.Unlock(); return len(m.data) }
func (m *mockOverrides) Reset()     { m.mu.Lock(); m.data = map[string]string{}; m.mu.Unlock() }

type mockFormatter struct {
	id      string
	mu      sync.Mutex
	formatC int
}

func (f *mockFormatter) Format(cat category.Category, k apis.Key, cfg apis.Config) string {
	f.mu.Lock()
	f.formatC++
	f.mu.Unlock()
	return f.id + ":" + cat.String() + ":" + k.String() + ":" + strconv.Itoa(cfg.TicksPerSecond)
}

// mockCacheSet wraps a real cache set so Format keeps working through it;
// the id only exists to tell instances apart.
type mockCacheSet struct {
	id string
	apis.CacheSet
}

func newMockCacheSet(id string) *mockCacheSet {
	return &mockCacheSet{id: id, CacheSet: cache.NewSet()}
}

type mockBuilder struct {
	mu         sync.Mutex
	lastCfg    apis.Config
	lastExt    any
	ovrCounter int
	fmtCounter int
	cchCounter int
}

func (b *mockBuilder) BuildOverrides(cfg apis.Config, prev apis.Overrides, ext any) apis.Overrides {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	b.ovrCounter++
	return newMockOverrides("ovr#" + strconv.Itoa(b.ovrCounter))
}

func (b *mockBuilder) BuildFormatter(cfg apis.Config, _ apis.Overrides, prev apis.Formatter, ext any) apis.Formatter {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	b.fmtCounter++
	return &mockFormatter{id: "fmt#" + strconv.Itoa(b.fmtCounter)}
}

func (b *mockBuilder) BuildCaches(cfg apis.Config, prev apis.CacheSet, ext any) apis.CacheSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	b.cchCounter++
	return newMockCacheSet("cch#" + strconv.Itoa(b.cchCounter))
}

func (b *mockBuilder) counters() (int, int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ovrCounter, b.fmtCounter, b.cchCounter
}

// ---------------------- Snapshot / rebuild tests ----------------------

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	// snapshot 1
	s1Ovr := Overrides()
	s1Fmt := Formatter()
	s1Cch := Caches()

	// change cfg -> all layers rebuild (not pinned)
	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))

	if Overrides() == s1Ovr {
		t.Fatalf("overrides were not rebuilt on SetConfig (unpinned)")
	}
	if Formatter() == s1Fmt {
		t.Fatalf("formatter was not rebuilt on SetConfig (unpinned)")
	}
	if Caches() == s1Cch {
		t.Fatalf("caches were not rebuilt on SetConfig (unpinned)")
	}

	b.mu.Lock()
	gotCfg := b.lastCfg
	b.mu.Unlock()
	if gotCfg.TicksPerSecond != 40 {
		t.Fatalf("builder received wrong cfg: %+v", gotCfg)
	}
}

func TestSetOverrides_Pins_and_RebuildsDownstream(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	customOvr := newMockOverrides("custom")
	SetOverrides(customOvr)

	if !IsOverridesPinned() {
		t.Fatalf("SetOverrides did not pin the override table")
	}

	beforeFmt := Formatter()
	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))

	if Overrides() != customOvr {
		t.Fatalf("pinned override table was rebuilt unexpectedly")
	}
	if Formatter() == beforeFmt {
		t.Fatalf("formatter was not rebuilt when cfg changed and fmtr not pinned")
	}
}

func TestSetFormatter_Pins_and_DropsCaches(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	cchBefore := Caches()
	customFmt := &mockFormatter{id: "custom"}
	SetFormatter(customFmt)

	if !IsFormatterPinned() {
		t.Fatalf("SetFormatter did not pin the formatter")
	}
	if Caches() == cchBefore {
		t.Fatalf("memoized values were not dropped on SetFormatter")
	}

	// Change cfg -> formatter stays pinned, caches rebuild again.
	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))
	if Formatter() != customFmt {
		t.Fatalf("pinned formatter was rebuilt unexpectedly")
	}
}

func TestSetCaches_Pins(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	customCch := newMockCacheSet("custom")
	SetCaches(customCch)

	if !IsCachesPinned() {
		t.Fatalf("SetCaches did not pin the cache set")
	}

	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))
	if Caches() != customCch {
		t.Fatalf("pinned cache set was rebuilt unexpectedly")
	}
}

func TestSetBuilder_Rebuilds_Only_Unpinned(t *testing.T) {
	resetDefaults(t)
	a := &mockBuilder{}
	resetWithBuilder(t, a, config.DefaultConfig(), nil)

	// Pin the formatter, leave overrides and caches unpinned.
	SetFormatter(&mockFormatter{id: "pinned"})
	ovrBefore := Overrides()
	fmtBefore := Formatter()

	b := &mockBuilder{}
	SetBuilder(b)

	if Overrides() == ovrBefore {
		t.Fatalf("overrides did not rebuild on SetBuilder (unpinned)")
	}
	if Formatter() != fmtBefore {
		t.Fatalf("pinned formatter was rebuilt on SetBuilder")
	}
}

func TestSetExt_Rebuilds_Unpinned_and_PassesValue(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	type extCfg struct{ X int }
	SetExt(extCfg{X: 42})

	b.mu.Lock()
	got := b.lastExt
	b.mu.Unlock()
	ec, ok := got.(extCfg)
	if !ok || ec.X != 42 {
		t.Fatalf("builder did not receive ext properly: %#v", got)
	}

	gotEc, ok := ExtAs[extCfg]()
	if !ok || gotEc.X != 42 {
		t.Fatalf("ExtAs: ok=%v got=%#v", ok, gotEc)
	}

	// Pin everything and ensure no rebuild on SetExt.
	SetOverrides(Overrides())
	SetFormatter(Formatter())
	SetCaches(Caches())
	o1, f1, c1 := b.counters()
	SetExt(extCfg{X: 7})
	o2, f2, c2 := b.counters()
	if o2 != o1 || f2 != f1 || c2 != c1 {
		t.Fatalf("SetExt should not rebuild when all layers are pinned")
	}
}

func TestUnpin_Allows_Rebuild_After(t *testing.T) {
	resetDefaults(t)
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	SetOverrides(Overrides())
	SetFormatter(Formatter())
	SetCaches(Caches())

	ovr1 := Overrides()
	fmt1 := Formatter()
	cch1 := Caches()
	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))
	if Overrides() != ovr1 || Formatter() != fmt1 || Caches() != cch1 {
		t.Fatalf("pinned layers should not rebuild on SetConfig")
	}

	UnpinOverrides()
	UnpinFormatter()
	UnpinCaches()
	if IsOverridesPinned() || IsFormatterPinned() || IsCachesPinned() {
		t.Fatalf("unpin did not clear the pin flags")
	}

	SetConfig(config.NewConfig(config.WithTicksPerSecond(10)))
	if Overrides() == ovr1 {
		t.Fatalf("overrides should rebuild after UnpinOverrides+SetConfig")
	}
	if Formatter() == fmt1 {
		t.Fatalf("formatter should rebuild after UnpinFormatter+SetConfig")
	}
	if Caches() == cch1 {
		t.Fatalf("caches should rebuild after UnpinCaches+SetConfig")
	}
}

// ---------------------- End-to-end formatting ----------------------

func TestFormat_EndToEnd(t *testing.T) {
	resetDefaults(t)

	tests := []struct {
		fn   func(apis.Key) string
		in   string
		want string
	}{
		{Material, "IRON_PICKAXE", "Iron Pickaxe"},
		{Material, "TNT", "Tnt"},
		{Entity, "ENDER DRAGON", "Ender Dragon"},
		{Ability, "GREEN_THUMB", "Green Thumb"},
		{Feature, "ALLIANCE", "Alliance"},
	}
	for _, tt := range tests {
		if got := tt.fn(token(tt.in)); got != tt.want {
			t.Fatalf("format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_Memoizes(t *testing.T) {
	resetDefaults(t)

	f := &mockFormatter{id: "count"}
	SetFormatter(f)

	first := Material(token("DIAMOND_ORE"))
	second := Material(token("DIAMOND_ORE"))
	if first != second {
		t.Fatalf("repeated format diverged: %q vs %q", first, second)
	}

	f.mu.Lock()
	calls := f.formatC
	f.mu.Unlock()
	if calls != 1 {
		t.Fatalf("formatter ran %d times for one key, want 1", calls)
	}

	// Same key in another category is a distinct cache entry.
	_ = Entity(token("DIAMOND_ORE"))
	f.mu.Lock()
	calls = f.formatC
	f.mu.Unlock()
	if calls != 2 {
		t.Fatalf("formatter ran %d times across two categories, want 2", calls)
	}
}

func TestFormat_PanicsOnInvalidKey(t *testing.T) {
	resetDefaults(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("Material(nil) did not panic")
		}
	}()
	_ = Material(nil)
}

func TestRegisterOverride_Flow(t *testing.T) {
	resetDefaults(t)

	if err := RegisterOverride(category.Ability, token("GREEN_THUMB"), "Green Thumb!"); err != nil {
		t.Fatalf("RegisterOverride: %v", err)
	}
	if got := Ability(token("GREEN_THUMB")); got != "Green Thumb!" {
		t.Fatalf("overridden Ability = %q, want %q", got, "Green Thumb!")
	}
}

func TestRegisterOverride_MaskedByCacheUntilReset(t *testing.T) {
	resetDefaults(t)

	// First format memoizes the derived name.
	if got := Material(token("TNT")); got != "Tnt" {
		t.Fatalf("derived Material = %q, want %q", got, "Tnt")
	}

	if err := RegisterOverride(category.Material, token("TNT"), "TNT"); err != nil {
		t.Fatalf("RegisterOverride: %v", err)
	}
	if got := Material(token("TNT")); got != "Tnt" {
		t.Fatalf("memoized value should mask the late override, got %q", got)
	}

	ResetCaches()
	if got := Material(token("TNT")); got != "TNT" {
		t.Fatalf("override not visible after ResetCaches, got %q", got)
	}
}

func TestConfig_LocaleAffectsDerivation(t *testing.T) {
	resetDefaults(t)

	if got := Capitalize("FIRST"); got != "First" {
		t.Fatalf("Capitalize (en) = %q, want %q", got, "First")
	}

	SetConfig(config.NewConfig(config.WithLocale(language.Turkish)))
	// Turkish lowercases dotted capital I to dotless ı.
	if got := Capitalize("FIRST"); got != "Fırst" {
		t.Fatalf("Capitalize (tr) = %q, want %q", got, "Fırst")
	}

	if got := Config().Locale; got != language.Turkish {
		t.Fatalf("Config().Locale = %v, want %v", got, language.Turkish)
	}
}

// ---------------------- Glue helpers ----------------------

func TestGlueHelpers(t *testing.T) {
	resetDefaults(t)

	if got := Prettify("IRON_PICKAXE"); got != "Iron Pickaxe" {
		t.Fatalf("Prettify = %q", got)
	}
	if got := Capitalize("aBC"); got != "Abc" {
		t.Fatalf("Capitalize = %q", got)
	}
	if got := TicksToSeconds(30); got != "1.5" {
		t.Fatalf("TicksToSeconds = %q", got)
	}
	if got := Percent(0.5); got != "50.00%" {
		t.Fatalf("Percent = %q", got)
	}
	if got := JoinFrom([]string{"party", "invite", "Bob"}, 2); got != "Bob" {
		t.Fatalf("JoinFrom = %q", got)
	}
	if !IsInt("42") || IsInt("4.2") {
		t.Fatalf("IsInt misclassified input")
	}
	if !IsFloat("4.2") || IsFloat("many") {
		t.Fatalf("IsFloat misclassified input")
	}
}

func TestTicksToSeconds_UsesConfiguredClock(t *testing.T) {
	resetDefaults(t)

	SetConfig(config.NewConfig(config.WithTicksPerSecond(40)))
	if got := TicksToSeconds(40); got != "1.0" {
		t.Fatalf("TicksToSeconds = %q, want %q", got, "1.0")
	}
}

// ---------------------- Concurrency ----------------------

func TestFormat_Concurrent_With_SetConfig(t *testing.T) {
	resetDefaults(t)

	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				k := token("KEY_" + strconv.Itoa(j%16))
				_ = Material(k)
				_ = Entity(k)
				_ = Prettify("RAW_" + strconv.Itoa(j%16))
			}
		}(i)
	}

	go func() {
		for i := 0; i < 20; i++ {
			SetConfig(config.NewConfig(
				config.WithTicksPerSecond(4 + i%5),
				config.WithSplitCombined(i%2 == 0),
			))
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done
}

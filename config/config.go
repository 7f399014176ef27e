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

package config

import (
	"golang.org/x/text/language"

	"emberpx.dev/dnx/apis"
)

const (
	// DefaultTicksPerSecond is the game clock rate assumed when none is
	// configured. Twenty ticks per second is the server tick standard.
	DefaultTicksPerSecond = 20
	// DefaultSplitCombined represents the default for SplitCombined.
	// When false, inputs holding both underscores and spaces split on the
	// space only, preserving the historical behavior.
	DefaultSplitCombined = false
)

// DefaultLocale is the case-folding locale assumed when none is configured.
// English is the single fixed locale of the display layer; it is never
// selected per call.
var DefaultLocale = language.English

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure TicksPerSecond and Locale are valid.
	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = DefaultTicksPerSecond
	}
	if cfg.Locale == language.Und {
		cfg.Locale = DefaultLocale
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Locale:         DefaultLocale,
		TicksPerSecond: DefaultTicksPerSecond,
		SplitCombined:  DefaultSplitCombined,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLocale sets the case-folding locale.
// The zero tag resets to the default.
func WithLocale(tag language.Tag) Option {
	return func(c *apis.Config) {
		if tag == language.Und {
			c.Locale = DefaultLocale
			return
		}
		c.Locale = tag
	}
}

// WithTicksPerSecond sets the game clock rate.
// A non-positive value resets to the default.
func WithTicksPerSecond(tps int) Option {
	return func(c *apis.Config) {
		if tps <= 0 {
			c.TicksPerSecond = DefaultTicksPerSecond
			return
		}
		c.TicksPerSecond = tps
	}
}

// WithSplitCombined sets the SplitCombined option.
func WithSplitCombined(split bool) Option {
	return func(c *apis.Config) {
		c.SplitCombined = split
	}
}

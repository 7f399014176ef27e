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
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"emberpx.dev/dnx/apis"
)

// envConfig is the raw environment shape; values are validated into an
// apis.Config by FromEnv.
type envConfig struct {
	Locale         string `env:"DNX_LOCALE" envDefault:"en"`
	TicksPerSecond int    `env:"DNX_TICKS_PER_SECOND" envDefault:"20"`
	SplitCombined  bool   `env:"DNX_SPLIT_COMBINED" envDefault:"false"`
}

// FromEnv loads configuration from environment variables:
//
//	DNX_LOCALE            BCP 47 tag for case folding (default "en")
//	DNX_TICKS_PER_SECOND  game clock rate (default 20)
//	DNX_SPLIT_COMBINED    split on both delimiters for mixed input (default false)
func FromEnv() (apis.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return apis.Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	tag, err := language.Parse(raw.Locale)
	if err != nil {
		return apis.Config{}, fmt.Errorf("config: parse locale %q: %w", raw.Locale, err)
	}

	return NewConfig(
		WithLocale(tag),
		WithTicksPerSecond(raw.TicksPerSecond),
		WithSplitCombined(raw.SplitCombined),
	), nil
}

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

package text

import (
	"strconv"
	"strings"

	"emberpx.dev/dnx/config"
)

// FormatSeconds renders a tick count as seconds with exactly one decimal
// digit. The decimal separator is always '.' and no digit grouping is
// applied, independent of the host locale. A non-positive ticksPerSecond
// falls back to config.DefaultTicksPerSecond.
func FormatSeconds(ticks float64, ticksPerSecond int) string {
	if ticksPerSecond <= 0 {
		ticksPerSecond = config.DefaultTicksPerSecond
	}
	return strconv.FormatFloat(ticks/float64(ticksPerSecond), 'f', 1, 64)
}

// FormatPercent renders a ratio as a percentage with exactly two decimal
// digits: 0.5 -> "50.00%". Separator rules match FormatSeconds.
func FormatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 2, 64) + "%"
}

// JoinFrom joins args starting at offset into a single space-separated
// string. An offset at or past the end yields ""; a negative offset is
// treated as zero.
func JoinFrom(args []string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(args) {
		return ""
	}
	return strings.Join(args[offset:], " ")
}

// IsInt reports whether s parses as a base-10 integer.
// Parse failures become false; they are never propagated.
func IsInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// IsFloat reports whether s parses as a floating-point number.
// Parse failures become false; they are never propagated.
func IsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

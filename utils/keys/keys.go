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

package keys

import (
	"errors"
	"reflect"

	"emberpx.dev/dnx/apis"
)

var (
	// ErrNilKey is returned when a nil category key is provided.
	ErrNilKey = errors.New("keys: nil category key provided")
	// ErrKeyNotComparable indicates that the key's dynamic type cannot be
	// used as a map key (slice, map or function based types).
	ErrKeyNotComparable = errors.New("keys: category key type is not comparable")
)

// Canonical validates k and returns its canonical textual form.
//
// Validation policy:
//   - nil interface values and nil pointers -> ErrNilKey
//   - non-comparable dynamic types -> ErrKeyNotComparable
//   - otherwise: k.String()
//
// Every cache and override boundary routes keys through here, so all four
// category domains share a single explicit invalid-argument check instead of
// failing with a nil dereference somewhere below.
func Canonical(k apis.Key) (string, error) {
	if k == nil {
		return "", ErrNilKey
	}

	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "", ErrNilKey
		}
	}
	if !rv.Type().Comparable() {
		return "", ErrKeyNotComparable
	}

	return k.String(), nil
}

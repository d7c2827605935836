/*
   Copyright 2025 The DIRPX Authors

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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checkable is the part of Model the generic helpers rely on. Value types
// whose Unmarshal methods have pointer receivers satisfy Checkable directly,
// so []Definition can be passed where []*Definition would be awkward.
type Checkable interface {
	Validatable
	Identifiable
}

// ValidateAll validates a slice of models and returns every validation
// failure instead of stopping at the first one.
//
// Each failure is wrapped with the model's index and TypeName, and the
// failures are combined through an rxmerr.Collector. Empty slices are valid.
//
// Example, validating the scale definitions of a catalog file:
//
//	if err := model.ValidateAll(catalog.Scales); err != nil {
//	    return fmt.Errorf("catalog %s: %w", path, err)
//	}
func ValidateAll[T Checkable](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models whose IsZero
// reports false. The input slice is not modified.
func FilterZero[T ZeroCheckable](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m unchanged if it is valid and panics otherwise.
//
// It is intended for package-level literal tables (the Lydian reference set,
// chord triads) where an invalid entry is a programming error.
func MustValidate[T Checkable](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.String() when unsafe is true and m.Redacted()
// otherwise.
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and serializes it to JSON.
func ToJSON[T Checkable](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and serializes it to YAML.
func ToYAML[T Checkable](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result.
func FromJSON[T Validatable](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result.
func FromYAML[T Validatable](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone produces a deep copy of m through a JSON round-trip.
//
// Types that implement Cloneable SHOULD be cloned through their own Clone
// method; this helper is the generic fallback.
func Clone[T any](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal reports whether a and b serialize to identical JSON. Values that
// fail to marshal are never equal.
func Equal[T any](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}

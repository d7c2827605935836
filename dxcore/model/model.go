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

// Package model defines the contracts that every dxtheory value type
// implements: note names, accidentals, pitches, notes, interval qualities,
// intervals, interval sets, modes and chord descriptors.
//
// All of these are immutable value types built from literal data. The Model
// contract gives them a shared surface for validation, JSON and YAML
// round-trips, log-safe rendering, type identification and zero detection,
// so that generic helpers such as ValidateAll, ToYAML and Equal work across
// the whole theory surface.
//
// Model values carry no shared state. Every method is a pure function of the
// receiver and is safe to call from any number of goroutines at once.
// Unmarshal methods mutate their receiver and need exclusive access to it
// for the duration of the call.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the fundamental contracts required
// for dxtheory value types.
//
// Implementations MUST satisfy all embedded interfaces. The compile-time
// assertion
//
//	var _ model.Model = (*Pitch)(nil)
//
// is placed next to each implementation so that a missing method is caught
// by the compiler rather than by a generic helper at a distant call site.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Theory values are mostly unrepresentable when malformed: an Interval can
// only be built through quality constructors that accept the matching number
// family. Validate exists for the values that can still be forged through
// numeric casts or decoding (NoteName(9), Degree(-1)) and for composite
// invariants such as "one interval per number" in a scale Set.
//
// Validate MUST be deterministic, MUST NOT mutate the receiver and MUST NOT
// have side effects.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It returns
	// nil if the instance is valid, or a descriptive error otherwise.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST refuse invalid values. Unmarshal methods MUST
// validate what they decoded before returning. Enum-like types serialize to
// their canonical lowercase names; composite values serialize to their
// compact textual form ("Eb4", "P5") or to a mapping when no textual form
// exists.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// No theory value holds sensitive data, so Redacted normally returns the
// same text as String. The split is kept so that dxtheory values compose
// with callers that only ever log through Redacted.
type Loggable interface {
	// Redacted returns a string representation suitable for production logs.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The name MUST be constant for the type, CamelCase and without a package
// prefix ("Pitch", "Interval", "Mode"). It is used in error messages and in
// the aggregated diagnostics produced by ValidateAll.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// Several theory zero values are meaningful (C natural, the perfect unison,
// Lydian), so IsZero reports "equal to the zero value", not "invalid".
type ZeroCheckable interface {
	// IsZero reports whether this instance equals its type's zero value.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent. For spelled
// values equality is structural: C♯ and D♭ are different pitches even though
// they share a pitch class.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves.
//
// Most theory values are plain comparable structs and clone by assignment.
// Slice-backed values (pitch.Notes, scale.Set) implement Clone so that a
// derived mode can never alias its reference set.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}

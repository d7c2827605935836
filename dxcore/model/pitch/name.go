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

package pitch

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"gopkg.in/yaml.v3"
)

// NoteName is one of the seven letter names C, D, E, F, G, A, B.
//
// Letter names are cyclic: after B comes C, and before C comes B. The
// register change that goes with the wrap is tracked by Note, not here.
type NoteName int

const (
	C NoteName = iota
	D
	E
	F
	G
	A
	B
)

const noteNames = "CDEFGAB"

// Semitones above C of each natural letter.
var naturalBase = [...]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

// Semitones from each natural letter up to the next one. E→F and B→C are
// the two half steps of the diatonic letter sequence; every other adjacent
// pair is a whole step.
var naturalGap = [...]int{C: 2, D: 2, E: 1, F: 2, G: 2, A: 2, B: 1}

// ParseNoteName parses a single letter, upper or lower case.
func ParseNoteName(s string) (NoteName, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(noteNames, strings.ToUpper(s)[0]); i >= 0 {
			return NoteName(i), nil
		}
	}
	return C, &errors.ParseError{Type: "NoteName", Value: s}
}

// String returns the uppercase letter, or "?" for an invalid value.
func (n NoteName) String() string {
	if !n.Valid() {
		return "?"
	}
	return noteNames[n : n+1]
}

// Next returns the following letter name, wrapping from B to C.
func (n NoteName) Next() NoteName {
	return (n + 1) % 7
}

// Prev returns the preceding letter name, wrapping from C to B.
func (n NoteName) Prev() NoteName {
	return (n + 6) % 7
}

// Base returns the semitones above C of the natural letter (C 0, D 2, E 4,
// F 5, G 7, A 9, B 11).
func (n NoteName) Base() int {
	return naturalBase[n]
}

// Gap returns the semitones from the natural letter up to the natural of
// Next: 1 for E and B, 2 otherwise.
func (n NoteName) Gap() int {
	return naturalGap[n]
}

// Valid reports whether n is one of the seven letter names.
func (n NoteName) Valid() bool {
	return n >= C && n <= B
}

// TypeName returns "NoteName".
func (n NoteName) TypeName() string {
	return "NoteName"
}

// Redacted returns the same string representation as String().
func (n NoteName) Redacted() string {
	return n.String()
}

// IsZero reports whether n is C.
func (n NoteName) IsZero() bool {
	return n == C
}

// Validate returns a *ValidationError if n is not a letter name.
func (n NoteName) Validate() error {
	if !n.Valid() {
		return &errors.ValidationError{
			Type:   "NoteName",
			Reason: "invalid NoteName value",
			Value:  int(n),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for NoteName.
func (n NoteName) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "NoteName", Value: int(n)}
	}
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for NoteName.
func (n *NoteName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "NoteName", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseNoteName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for NoteName.
func (n NoteName) MarshalYAML() (any, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "NoteName", Value: int(n)}
	}
	return n.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for NoteName.
func (n *NoteName) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "NoteName", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseNoteName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compile-time check that NoteName implements model.Model interface.
var _ model.Model = (*NoteName)(nil)

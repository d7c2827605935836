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

package interval

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Degree is an interval number within one octave, counted as diatonic steps
// from the lower note: DegreeUnison is 0 steps, DegreeOctave is 7.
//
// Degree is quality-free. A third is two letter names away whether it is
// minor, major, diminished or augmented, which is why Interval.DiatonicSteps
// depends on the degree alone.
type Degree int

const (
	DegreeUnison Degree = iota
	DegreeSecond
	DegreeThird
	DegreeFourth
	DegreeFifth
	DegreeSixth
	DegreeSeventh
	DegreeOctave
)

// String constants for Degree values used in serialization and parsing.
const (
	DegreeUnisonStr  = "unison"
	DegreeSecondStr  = "second"
	DegreeThirdStr   = "third"
	DegreeFourthStr  = "fourth"
	DegreeFifthStr   = "fifth"
	DegreeSixthStr   = "sixth"
	DegreeSeventhStr = "seventh"
	DegreeOctaveStr  = "octave"
)

var degreeNames = [...]string{
	DegreeUnison:  DegreeUnisonStr,
	DegreeSecond:  DegreeSecondStr,
	DegreeThird:   DegreeThirdStr,
	DegreeFourth:  DegreeFourthStr,
	DegreeFifth:   DegreeFifthStr,
	DegreeSixth:   DegreeSixthStr,
	DegreeSeventh: DegreeSeventhStr,
	DegreeOctave:  DegreeOctaveStr,
}

// ParseDegree converts a textual representation into a Degree.
//
// It accepts the lowercase names above (case-insensitively) and the
// conventional one-based ordinals "1" through "8".
func ParseDegree(s string) (Degree, error) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '8' {
		return Degree(s[0] - '1'), nil
	}
	lower := strings.ToLower(s)
	for d, name := range degreeNames {
		if name == lower {
			return Degree(d), nil
		}
	}
	return DegreeUnison, &errors.ParseError{Type: "Degree", Value: s}
}

// String returns the lowercase name of the degree, or "unknown".
func (d Degree) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return degreeNames[d]
}

// Ordinal returns the conventional one-based interval number (1 for a
// unison, 8 for an octave).
func (d Degree) Ordinal() int {
	return int(d) + 1
}

// IsPerfect reports whether the degree belongs to the perfect family
// (unison, fourth, fifth, octave).
func (d Degree) IsPerfect() bool {
	switch d {
	case DegreeUnison, DegreeFourth, DegreeFifth, DegreeOctave:
		return true
	default:
		return false
	}
}

// Valid reports whether the Degree value is one of the defined constants.
func (d Degree) Valid() bool {
	return d >= DegreeUnison && d <= DegreeOctave
}

// TypeName returns "Degree".
func (d Degree) TypeName() string {
	return "Degree"
}

// Redacted returns the same string representation as String().
func (d Degree) Redacted() string {
	return d.String()
}

// IsZero reports whether d is DegreeUnison.
func (d Degree) IsZero() bool {
	return d == DegreeUnison
}

// Validate returns a *ValidationError if d is not a defined constant.
func (d Degree) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "Degree",
			Reason: "invalid Degree value",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Degree.
func (d Degree) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Degree", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Degree.
func (d *Degree) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Degree", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseDegree(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Degree.
func (d Degree) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Degree", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Degree.
func (d *Degree) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Degree", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDegree(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that Degree implements model.Model interface.
var _ model.Model = (*Degree)(nil)

// Number is an interval number of either family. It is implemented only by
// PerfectNumber and ImperfectNumber.
type Number interface {
	// Degree returns the family-independent interval number.
	Degree() Degree

	number()
}

// PerfectNumber is an interval number whose unaltered quality is perfect.
type PerfectNumber Degree

// ImperfectNumber is an interval number whose unaltered qualities are minor
// and major.
type ImperfectNumber Degree

const (
	Unison = PerfectNumber(DegreeUnison)
	Fourth = PerfectNumber(DegreeFourth)
	Fifth  = PerfectNumber(DegreeFifth)
	Octave = PerfectNumber(DegreeOctave)
)

const (
	Second  = ImperfectNumber(DegreeSecond)
	Third   = ImperfectNumber(DegreeThird)
	Sixth   = ImperfectNumber(DegreeSixth)
	Seventh = ImperfectNumber(DegreeSeventh)
)

// Degree returns n as a Degree.
func (n PerfectNumber) Degree() Degree { return Degree(n) }

// String returns the degree name ("fifth").
func (n PerfectNumber) String() string { return Degree(n).String() }

func (PerfectNumber) number() {}

// Degree returns n as a Degree.
func (n ImperfectNumber) Degree() Degree { return Degree(n) }

// String returns the degree name ("third").
func (n ImperfectNumber) String() string { return Degree(n).String() }

func (ImperfectNumber) number() {}

// NumberOf returns the family-typed Number for d, or nil if d is invalid.
func NumberOf(d Degree) Number {
	switch {
	case !d.Valid():
		return nil
	case d.IsPerfect():
		return PerfectNumber(d)
	default:
		return ImperfectNumber(d)
	}
}

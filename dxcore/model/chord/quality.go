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

package chord

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/dxtheory/dxcore/model/scale"
	"gopkg.in/yaml.v3"
)

// Quality selects the triad a chord is built on.
type Quality int

const (
	// Major is the zero value: P1 M3 P5.
	Major Quality = iota

	// Minor is P1 m3 P5.
	Minor

	// Diminished is P1 m3 d5.
	Diminished

	// Sus4 replaces the third with a perfect fourth: P1 P4 P5.
	Sus4

	// Sus2 replaces the third with a major second: P1 M2 P5.
	Sus2
)

// String constants for Quality values used in serialization and parsing.
const (
	MajorStr      = "major"
	MinorStr      = "minor"
	DiminishedStr = "diminished"
	Sus4Str       = "sus4"
	Sus2Str       = "sus2"
)

var triads = [...]scale.Set{
	Major:      scale.MustSet(interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth),
	Minor:      scale.MustSet(interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth),
	Diminished: scale.MustSet(interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth),
	Sus4:       scale.MustSet(interval.PerfectUnison, interval.PerfectFourth, interval.PerfectFifth),
	Sus2:       scale.MustSet(interval.PerfectUnison, interval.MajorSecond, interval.PerfectFifth),
}

// ParseQuality converts a name or chord-symbol suffix into a Quality.
// Matching is case-insensitive except for the symbols "m" and "M".
//
//	"major", "maj", "M", ""  -> Major
//	"minor", "min", "m"      -> Minor
//	"diminished", "dim", "°" -> Diminished
//	"sus4", "sus"            -> Sus4
//	"sus2"                   -> Sus2
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "", "M":
		return Major, nil
	case "m":
		return Minor, nil
	case "°":
		return Diminished, nil
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case MajorStr, "maj":
		return Major, nil
	case MinorStr, "min":
		return Minor, nil
	case DiminishedStr, "dim":
		return Diminished, nil
	case Sus4Str, "sus":
		return Sus4, nil
	case Sus2Str:
		return Sus2, nil
	default:
		return Major, &errors.ParseError{Type: "ChordQuality", Value: s}
	}
}

// String returns the lowercase name of the quality, or "unknown" for values
// outside the defined constants.
func (q Quality) String() string {
	switch q {
	case Major:
		return MajorStr
	case Minor:
		return MinorStr
	case Diminished:
		return DiminishedStr
	case Sus4:
		return Sus4Str
	case Sus2:
		return Sus2Str
	default:
		return "unknown"
	}
}

// Symbol returns the chord-symbol suffix of the quality: "" for major,
// "m", "dim", "sus4" and "sus2" otherwise.
func (q Quality) Symbol() string {
	switch q {
	case Major:
		return ""
	case Minor:
		return "m"
	case Diminished:
		return "dim"
	default:
		return q.String()
	}
}

// Triad returns the interval set of the quality. It panics for values
// outside the defined constants.
func (q Quality) Triad() scale.Set {
	if !q.Valid() {
		panic("chord: invalid Quality " + q.String())
	}
	return triads[q]
}

// Valid reports whether the Quality value is one of the defined constants.
func (q Quality) Valid() bool {
	return q >= Major && q <= Sus2
}

// TypeName returns "ChordQuality".
func (q Quality) TypeName() string {
	return "ChordQuality"
}

// Redacted returns the same string representation as String().
func (q Quality) Redacted() string {
	return q.String()
}

// IsZero reports whether q is Major, the zero value.
func (q Quality) IsZero() bool {
	return q == Major
}

// Equal reports whether q equals other, which may be a Quality or *Quality.
func (q Quality) Equal(other any) bool {
	switch v := other.(type) {
	case Quality:
		return q == v
	case *Quality:
		if v == nil {
			return false
		}
		return q == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if q is not a defined constant.
func (q Quality) Validate() error {
	if !q.Valid() {
		return &errors.ValidationError{
			Type:   "ChordQuality",
			Reason: "invalid ChordQuality value",
			Value:  int(q),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Quality.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "ChordQuality", Value: int(q)}
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Quality.
func (q *Quality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "ChordQuality", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseQuality(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Quality.
func (q Quality) MarshalYAML() (any, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "ChordQuality", Value: int(q)}
	}
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Quality.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ChordQuality", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseQuality(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Tension is a tone added above the triad.
//
// Sevenths lie within the octave and become part of the chord's interval
// set. Ninths, elevenths and thirteenths are compound: they are spelled from
// the root raised by an octave, as a major second, perfect fourth and major
// sixth respectively.
type Tension int

const (
	// Seventh adds a minor seventh (C7, Cm7, C half-diminished).
	Seventh Tension = iota

	// MajorSeventh adds a major seventh (CM7). It cannot be combined with
	// Seventh.
	MajorSeventh

	Ninth
	Eleventh
	Thirteenth
)

// String constants for Tension values used in serialization and parsing.
const (
	SeventhStr      = "7"
	MajorSeventhStr = "M7"
	NinthStr        = "9"
	EleventhStr     = "11"
	ThirteenthStr   = "13"
)

// ParseTension accepts the chord-symbol numbers ("7", "M7", "maj7", "9",
// "11", "13") and the English names ("seventh", "major seventh", "ninth").
func ParseTension(s string) (Tension, error) {
	switch s {
	case SeventhStr:
		return Seventh, nil
	case MajorSeventhStr:
		return MajorSeventh, nil
	case NinthStr:
		return Ninth, nil
	case EleventhStr:
		return Eleventh, nil
	case ThirteenthStr:
		return Thirteenth, nil
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seventh":
		return Seventh, nil
	case "maj7", "major seventh":
		return MajorSeventh, nil
	case "ninth":
		return Ninth, nil
	case "eleventh":
		return Eleventh, nil
	case "thirteenth":
		return Thirteenth, nil
	default:
		return Seventh, &errors.ParseError{Type: "Tension", Value: s}
	}
}

// String returns the chord-symbol form of the tension, or "unknown".
func (t Tension) String() string {
	switch t {
	case Seventh:
		return SeventhStr
	case MajorSeventh:
		return MajorSeventhStr
	case Ninth:
		return NinthStr
	case Eleventh:
		return EleventhStr
	case Thirteenth:
		return ThirteenthStr
	default:
		return "unknown"
	}
}

// Interval returns the interval the tension adds, measured from the root
// for sevenths and from the root an octave up for compound tensions.
func (t Tension) Interval() interval.Interval {
	switch t {
	case Seventh:
		return interval.MinorSeventh
	case MajorSeventh:
		return interval.MajorSeventh
	case Ninth:
		return interval.MajorSecond
	case Eleventh:
		return interval.PerfectFourth
	case Thirteenth:
		return interval.MajorSixth
	default:
		panic("chord: invalid Tension " + t.String())
	}
}

// Compound reports whether the tension lies above the octave.
func (t Tension) Compound() bool {
	return t >= Ninth && t <= Thirteenth
}

// Valid reports whether the Tension value is one of the defined constants.
func (t Tension) Valid() bool {
	return t >= Seventh && t <= Thirteenth
}

// TypeName returns "Tension".
func (t Tension) TypeName() string {
	return "Tension"
}

// Redacted returns the same string representation as String().
func (t Tension) Redacted() string {
	return t.String()
}

// IsZero reports whether t is Seventh, the zero value.
func (t Tension) IsZero() bool {
	return t == Seventh
}

// Validate returns a *ValidationError if t is not a defined constant.
func (t Tension) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "Tension",
			Reason: "invalid Tension value",
			Value:  int(t),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Tension.
func (t Tension) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "Tension", Value: int(t)}
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the string form and bare numbers (7, 9, 11, 13).
func (t *Tension) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Tension", Data: data, Reason: err.Error()}
		}
	}
	parsed, err := ParseTension(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Tension.
func (t Tension) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "Tension", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Tension.
func (t *Tension) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseTension(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Compile-time checks that Quality and Tension implement model.Model.
var (
	_ model.Model = (*Quality)(nil)
	_ model.Model = (*Tension)(nil)
)

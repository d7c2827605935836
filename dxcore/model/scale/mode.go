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

package scale

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"gopkg.in/yaml.v3"
)

// Mode identifies one of the seven diatonic modes.
//
// The constants are declared in derivation order, brightest first. Each
// mode's interval set is obtained from the previous one by a single
// substitution, starting from the Lydian reference set:
//
//	Lydian      P1 M2 M3 A4 P5 M6 M7
//	Ionian      A4 -> P4
//	Mixolydian  M7 -> m7
//	Dorian      M3 -> m3
//	Aeolian     M6 -> m6
//	Phrygian    M2 -> m2
//	Locrian     P5 -> d5
//
// The sets are derived once, when the package is initialized.
type Mode int

const (
	// Lydian is the reference mode and the zero value.
	Lydian Mode = iota
	Ionian
	Mixolydian
	Dorian
	Aeolian
	Phrygian
	Locrian
)

// String constants for Mode values used in serialization and parsing.
const (
	LydianStr     = "lydian"
	IonianStr     = "ionian"
	MixolydianStr = "mixolydian"
	DorianStr     = "dorian"
	AeolianStr    = "aeolian"
	PhrygianStr   = "phrygian"
	LocrianStr    = "locrian"
)

var lydian = MustSet(
	interval.PerfectUnison,
	interval.MajorSecond,
	interval.MajorThird,
	interval.AugmentedFourth,
	interval.PerfectFifth,
	interval.MajorSixth,
	interval.MajorSeventh,
)

// substitutions lists, for every mode after Lydian, the interval that turns
// its predecessor's set into its own.
var substitutions = [...]struct {
	mode       Mode
	substitute interval.Interval
}{
	{Ionian, interval.PerfectFourth},
	{Mixolydian, interval.MinorSeventh},
	{Dorian, interval.MinorThird},
	{Aeolian, interval.MinorSixth},
	{Phrygian, interval.MinorSecond},
	{Locrian, interval.DiminishedFifth},
}

var modeSets = deriveModes()

func deriveModes() [Locrian + 1]Set {
	var sets [Locrian + 1]Set
	sets[Lydian] = lydian
	prev := lydian
	for _, s := range substitutions {
		prev = prev.Substitute(s.substitute)
		sets[s.mode] = prev
	}
	return sets
}

// parentDegrees maps each mode to the degree of the major scale it starts on.
var parentDegrees = [...]interval.Degree{
	Lydian:     interval.DegreeFourth,
	Ionian:     interval.DegreeUnison,
	Mixolydian: interval.DegreeFifth,
	Dorian:     interval.DegreeSecond,
	Aeolian:    interval.DegreeSixth,
	Phrygian:   interval.DegreeThird,
	Locrian:    interval.DegreeSeventh,
}

// Modes returns the seven modes in derivation order.
func Modes() []Mode {
	return []Mode{Lydian, Ionian, Mixolydian, Dorian, Aeolian, Phrygian, Locrian}
}

// ParseMode converts a textual representation into a Mode value.
//
// Matching is case-insensitive. "major" is accepted for Ionian and "minor"
// or "natural minor" for Aeolian.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LydianStr:
		return Lydian, nil
	case IonianStr, "major":
		return Ionian, nil
	case MixolydianStr:
		return Mixolydian, nil
	case DorianStr:
		return Dorian, nil
	case AeolianStr, "minor", "natural minor":
		return Aeolian, nil
	case PhrygianStr:
		return Phrygian, nil
	case LocrianStr:
		return Locrian, nil
	default:
		return Lydian, &errors.ParseError{Type: "Mode", Value: s}
	}
}

// String returns the lowercase name of the mode, or "unknown" for values
// outside the defined constants.
func (m Mode) String() string {
	switch m {
	case Lydian:
		return LydianStr
	case Ionian:
		return IonianStr
	case Mixolydian:
		return MixolydianStr
	case Dorian:
		return DorianStr
	case Aeolian:
		return AeolianStr
	case Phrygian:
		return PhrygianStr
	case Locrian:
		return LocrianStr
	default:
		return "unknown"
	}
}

// Intervals returns the interval set of the mode. It panics for values
// outside the defined constants.
func (m Mode) Intervals() Set {
	m.mustBeValid()
	return modeSets[m]
}

// Degree returns the degree of the major scale on which the mode starts:
// Dorian starts on the second, Aeolian on the sixth.
func (m Mode) Degree() interval.Degree {
	m.mustBeValid()
	return parentDegrees[m]
}

// Tonic returns the first note of this mode within the major key rooted at
// key. Ionian returns key itself; Dorian in C4 major returns D4.
func (m Mode) Tonic(key pitch.Note) pitch.Note {
	i, _ := modeSets[Ionian].Get(m.Degree())
	return key.Leap(i)
}

func (m Mode) mustBeValid() {
	if !m.Valid() {
		panic("scale: invalid Mode " + m.String())
	}
}

// Valid reports whether the Mode value is one of the defined constants.
func (m Mode) Valid() bool {
	return m >= Lydian && m <= Locrian
}

// TypeName returns "Mode".
func (m Mode) TypeName() string {
	return "Mode"
}

// Redacted returns the same string representation as String().
func (m Mode) Redacted() string {
	return m.String()
}

// IsZero reports whether m is Lydian, the zero value.
func (m Mode) IsZero() bool {
	return m == Lydian
}

// Equal reports whether m equals other, which may be a Mode or *Mode.
func (m Mode) Equal(other any) bool {
	switch v := other.(type) {
	case Mode:
		return m == v
	case *Mode:
		if v == nil {
			return false
		}
		return m == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if m is not a defined constant.
func (m Mode) Validate() error {
	if !m.Valid() {
		return &errors.ValidationError{
			Type:   "Mode",
			Reason: "invalid Mode value",
			Value:  int(m),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Mode.
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Mode", Value: int(m)}
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Mode.
//
// Both the string form ("dorian") and the numeric form are accepted.
func (m *Mode) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Mode", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Mode", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseMode(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Mode", Data: data, Reason: err.Error()}
	}
	*m = Mode(i)
	if !m.Valid() {
		return &errors.UnmarshalError{Type: "Mode", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Mode.
func (m Mode) MarshalYAML() (any, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Mode", Value: int(m)}
	}
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Mode.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Mode", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Mode.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Mode", Value: int(m)}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Mode.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Compile-time check that Mode implements model.Model interface.
var _ model.Model = (*Mode)(nil)

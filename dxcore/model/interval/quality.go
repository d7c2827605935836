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

// Quality is the modifier applied to an interval number: perfect, minor,
// major, diminished or augmented.
//
// Quality on its own does not determine which numbers it may be combined
// with. That constraint lives in the Interval constructors: Perfect accepts
// only a PerfectNumber, Minor and Major accept only an ImperfectNumber, and
// Diminished and Augmented accept either family.
type Quality int

const (
	// QualityPerfect is the unaltered quality of unisons, fourths, fifths
	// and octaves. It is the zero value so that the zero Interval is the
	// perfect unison.
	QualityPerfect Quality = iota

	// QualityMinor is the smaller of the two unaltered qualities of seconds,
	// thirds, sixths and sevenths.
	QualityMinor

	// QualityMajor is one semitone larger than QualityMinor.
	QualityMajor

	// QualityDiminished is one semitone smaller than perfect, or one
	// semitone smaller than minor.
	QualityDiminished

	// QualityAugmented is one semitone larger than perfect, or one semitone
	// larger than major.
	QualityAugmented
)

// String constants for Quality values used in serialization and parsing.
const (
	QualityPerfectStr    = "perfect"
	QualityMinorStr      = "minor"
	QualityMajorStr      = "major"
	QualityDiminishedStr = "diminished"
	QualityAugmentedStr  = "augmented"
)

// ParseQuality converts a textual representation into a Quality value.
//
// Full names are matched case-insensitively ("Major", "MAJOR"). The short
// symbols used in interval names are case-sensitive because "m" and "M"
// differ:
//
//	"P"        -> QualityPerfect
//	"m"        -> QualityMinor
//	"M"        -> QualityMajor
//	"d", "dim" -> QualityDiminished
//	"A", "aug" -> QualityAugmented
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "P":
		return QualityPerfect, nil
	case "m":
		return QualityMinor, nil
	case "M":
		return QualityMajor, nil
	case "d":
		return QualityDiminished, nil
	case "A":
		return QualityAugmented, nil
	}

	switch strings.ToLower(s) {
	case QualityPerfectStr:
		return QualityPerfect, nil
	case QualityMinorStr:
		return QualityMinor, nil
	case QualityMajorStr:
		return QualityMajor, nil
	case QualityDiminishedStr, "dim":
		return QualityDiminished, nil
	case QualityAugmentedStr, "aug":
		return QualityAugmented, nil
	default:
		return QualityPerfect, &errors.ParseError{Type: "Quality", Value: s}
	}
}

// String returns the lowercase name of the quality, or "unknown" for values
// outside the defined constants.
func (q Quality) String() string {
	switch q {
	case QualityPerfect:
		return QualityPerfectStr
	case QualityMinor:
		return QualityMinorStr
	case QualityMajor:
		return QualityMajorStr
	case QualityDiminished:
		return QualityDiminishedStr
	case QualityAugmented:
		return QualityAugmentedStr
	default:
		return "unknown"
	}
}

// Symbol returns the one-letter symbol used in short interval names
// (P, m, M, d, A), or "?" for values outside the defined constants.
func (q Quality) Symbol() string {
	switch q {
	case QualityPerfect:
		return "P"
	case QualityMinor:
		return "m"
	case QualityMajor:
		return "M"
	case QualityDiminished:
		return "d"
	case QualityAugmented:
		return "A"
	default:
		return "?"
	}
}

// Invert returns the quality an interval takes when inverted: perfect stays
// perfect, minor and major swap, diminished and augmented swap.
func (q Quality) Invert() Quality {
	switch q {
	case QualityMinor:
		return QualityMajor
	case QualityMajor:
		return QualityMinor
	case QualityDiminished:
		return QualityAugmented
	case QualityAugmented:
		return QualityDiminished
	default:
		return q
	}
}

// Valid reports whether the Quality value is one of the defined constants.
func (q Quality) Valid() bool {
	return q >= QualityPerfect && q <= QualityAugmented
}

// TypeName returns "Quality".
func (q Quality) TypeName() string {
	return "Quality"
}

// Redacted returns the same string representation as String().
func (q Quality) Redacted() string {
	return q.String()
}

// IsZero reports whether q is QualityPerfect, the zero value.
func (q Quality) IsZero() bool {
	return q == QualityPerfect
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
			Type:   "Quality",
			Reason: "invalid Quality value",
			Value:  int(q),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Quality.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Quality.
//
// Both the string form ("major", "M") and the numeric form are accepted.
func (q *Quality) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseQuality(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: err.Error()}
	}
	*q = Quality(i)
	if !q.Valid() {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Quality.
func (q Quality) MarshalYAML() (any, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Quality.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Quality", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseQuality(str)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Quality.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Quality.
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Compile-time check that Quality implements model.Model interface.
var _ model.Model = (*Quality)(nil)

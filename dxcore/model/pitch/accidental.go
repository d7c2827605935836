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
	"strconv"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Accidental is the signed number of semitones applied to a letter name:
// negative for flats, positive for sharps, zero for natural.
//
// Accidental is unbounded. Triple and quadruple alterations come out of
// ordinary interval arithmetic (G♯ major has an F𝄪, an augmented sixth above
// B♯ is G𝄪♯) and are kept as spelled, never folded onto a different letter.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Display glyphs.
const (
	SharpGlyph       = "♯"
	FlatGlyph        = "♭"
	NaturalGlyph     = "♮"
	DoubleSharpGlyph = "𝄪"
	DoubleFlatGlyph  = "𝄫"
)

// Glyph returns the display form used inside pitch names: nothing for a
// natural, ♯ ♭ 𝄪 𝄫 for single and double alterations, and a run of ♯ or ♭
// beyond that.
func (a Accidental) Glyph() string {
	switch {
	case a == Natural:
		return ""
	case a == DoubleSharp:
		return DoubleSharpGlyph
	case a == DoubleFlat:
		return DoubleFlatGlyph
	case a > 0:
		return strings.Repeat(SharpGlyph, int(a))
	default:
		return strings.Repeat(FlatGlyph, -int(a))
	}
}

// ASCII returns the plain-text form: a run of '#' or 'b', empty for a
// natural.
func (a Accidental) ASCII() string {
	if a >= 0 {
		return strings.Repeat("#", int(a))
	}
	return strings.Repeat("b", -int(a))
}

// Dutch returns the suffix used in Dutch (LilyPond) note names: a run of
// "is" for sharps or "es" for flats, empty for a natural.
func (a Accidental) Dutch() string {
	if a >= 0 {
		return strings.Repeat("is", int(a))
	}
	return strings.Repeat("es", -int(a))
}

// String returns Glyph, or ♮ for a natural so that the value is never
// rendered as an empty string on its own.
func (a Accidental) String() string {
	if a == Natural {
		return NaturalGlyph
	}
	return a.Glyph()
}

// ParseAccidental parses any of the forms produced by Glyph, String, ASCII
// and Dutch. Mixed runs are summed, so "𝄪♯" is three sharps. Combining
// sharps with flats in one accidental is rejected.
//
//	"", "♮", "n"     -> Natural
//	"#", "♯", "is"   -> Sharp (runs add up; "x" and "𝄪" count two)
//	"b", "♭", "es"   -> Flat (runs add up; "𝄫" counts two)
func ParseAccidental(s string) (Accidental, error) {
	if s == NaturalGlyph || s == "n" {
		return Natural, nil
	}

	var up, down int
	rest := s
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, DoubleSharpGlyph):
			up += 2
			rest = rest[len(DoubleSharpGlyph):]
		case strings.HasPrefix(rest, DoubleFlatGlyph):
			down += 2
			rest = rest[len(DoubleFlatGlyph):]
		case strings.HasPrefix(rest, SharpGlyph):
			up++
			rest = rest[len(SharpGlyph):]
		case strings.HasPrefix(rest, FlatGlyph):
			down++
			rest = rest[len(FlatGlyph):]
		case strings.HasPrefix(rest, "is"):
			up++
			rest = rest[2:]
		case strings.HasPrefix(rest, "es"):
			down++
			rest = rest[2:]
		case rest[0] == '#':
			up++
			rest = rest[1:]
		case rest[0] == 'x':
			up += 2
			rest = rest[1:]
		case rest[0] == 'b':
			down++
			rest = rest[1:]
		default:
			return Natural, &errors.ParseError{Type: "Accidental", Value: s}
		}
	}

	if up > 0 && down > 0 {
		return Natural, &errors.ParseError{Type: "Accidental", Value: s}
	}
	return Accidental(up - down), nil
}

// TypeName returns "Accidental".
func (a Accidental) TypeName() string {
	return "Accidental"
}

// Redacted returns the same string representation as String().
func (a Accidental) Redacted() string {
	return a.String()
}

// IsZero reports whether a is Natural.
func (a Accidental) IsZero() bool {
	return a == Natural
}

// Validate always returns nil; every alteration count is a valid spelling.
func (a Accidental) Validate() error {
	return nil
}

// MarshalJSON implements json.Marshaler for Accidental as a signed integer.
func (a Accidental) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(a))), nil
}

// UnmarshalJSON implements json.Unmarshaler for Accidental. Both the integer
// form and any textual form accepted by ParseAccidental are decoded.
func (a *Accidental) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Accidental", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Accidental", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseAccidental(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Accidental", Data: data, Reason: err.Error()}
	}
	*a = Accidental(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Accidental as a signed integer.
func (a Accidental) MarshalYAML() (any, error) {
	return int(a), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Accidental.
func (a *Accidental) UnmarshalYAML(node *yaml.Node) error {
	var i int
	if err := node.Decode(&i); err == nil {
		*a = Accidental(i)
		return nil
	}
	parsed, err := ParseAccidental(node.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Compile-time check that Accidental implements model.Model interface.
var _ model.Model = (*Accidental)(nil)

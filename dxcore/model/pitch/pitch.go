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

// Package pitch spells pitches and notes and moves them by intervals.
//
// A Pitch is a letter name plus an accidental; a Note adds an octave
// register. Moving by an interval is done in two phases so that the letter
// name is chosen by diatonic distance alone:
//
//  1. Walk the letter names one step at a time, interval.DiatonicSteps()
//     times, with a chromatic adjustment of zero. Each step changes the
//     letter and compensates the accidental for the natural gap between the
//     two letters, so after the walk the pitch still sounds like the origin.
//  2. Add interval.Size() to the accidental in one correction.
//
// For example, C up a major third walks C→D→E, arriving at E𝄫 (still the
// pitch of C), and the +4 correction gives E. Enharmonic spellings are
// never simplified: C♭ major contains F♭, and a diminished third above C♯ is
// E♭ rather than D♯.
//
// All values in this package are immutable and safe for concurrent use.
package pitch

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"gopkg.in/yaml.v3"
)

// Pitch is a letter name and an accidental, without a register.
//
// Pitch is comparable. Two pitches are equal only when both the letter and
// the accidental match; use Enharmonic to compare sounding pitch classes.
type Pitch struct {
	Name       NoteName   `json:"name" yaml:"name"`
	Accidental Accidental `json:"accidental" yaml:"accidental"`
}

// New returns the pitch spelled with letter name and accidental acc.
func New(name NoteName, acc Accidental) Pitch {
	return Pitch{Name: name, Accidental: acc}
}

// StepForward moves to the next letter name and sets the accidental so that
// the new pitch sounds adjust semitones above p.
//
//	C.StepForward(2)  == D
//	E.StepForward(2)  == F♯
//	B.StepForward(0)  == C♭
func (p Pitch) StepForward(adjust int) Pitch {
	return Pitch{
		Name:       p.Name.Next(),
		Accidental: p.Accidental + Accidental(adjust-p.Name.Gap()),
	}
}

// StepBackward moves to the previous letter name and sets the accidental so
// that the new pitch sounds adjust semitones below p. It is the exact
// inverse of StepForward.
func (p Pitch) StepBackward(adjust int) Pitch {
	prev := p.Name.Prev()
	return Pitch{
		Name:       prev,
		Accidental: p.Accidental + Accidental(prev.Gap()-adjust),
	}
}

// Leap returns the pitch i above p.
func (p Pitch) Leap(i interval.Interval) Pitch {
	for range i.DiatonicSteps() {
		p = p.StepForward(0)
	}
	p.Accidental += Accidental(i.Size())
	return p
}

// Fall returns the pitch i below p.
func (p Pitch) Fall(i interval.Interval) Pitch {
	for range i.DiatonicSteps() {
		p = p.StepBackward(0)
	}
	p.Accidental -= Accidental(i.Size())
	return p
}

// Class returns the pitch class, 0 for C through 11 for B. C♯ and D♭ share
// class 1; B♯ is class 0.
func (p Pitch) Class() int {
	return ((p.Name.Base()+int(p.Accidental))%12 + 12) % 12
}

// Enharmonic reports whether p and q share a pitch class.
func (p Pitch) Enharmonic(q Pitch) bool {
	return p.Class() == q.Class()
}

// Compare orders pitches by letter name, then by accidental. It returns -1,
// 0 or +1.
func (p Pitch) Compare(q Pitch) int {
	switch {
	case p.Name != q.Name:
		if p.Name < q.Name {
			return -1
		}
		return 1
	case p.Accidental < q.Accidental:
		return -1
	case p.Accidental > q.Accidental:
		return 1
	default:
		return 0
	}
}

// String returns the display form: uppercase letter followed by the
// accidental glyph ("E♭", "F𝄪", "C").
func (p Pitch) String() string {
	return p.Name.String() + p.Accidental.Glyph()
}

// ASCII returns the plain-text form ("Eb", "F##", "C").
func (p Pitch) ASCII() string {
	return p.Name.String() + p.Accidental.ASCII()
}

// Dutch returns the lowercase Dutch note name ("ees", "fisis", "c").
func (p Pitch) Dutch() string {
	return strings.ToLower(p.Name.String()) + p.Accidental.Dutch()
}

// Literal returns the code-literal form of p placed in DefaultOctave
// ("ees4"). It is accepted by ParseNote.
func (p Pitch) Literal() string {
	return p.Dutch() + fmt.Sprint(DefaultOctave)
}

// GoString returns a Go expression that constructs p.
func (p Pitch) GoString() string {
	return fmt.Sprintf("pitch.New(pitch.%s, %d)", p.Name, int(p.Accidental))
}

// Parse parses a pitch spelled as a letter name followed by an accidental in
// any form ParseAccidental accepts: "Eb", "E♭", "ees", "D#", "F𝄪", "bb".
// The Dutch contractions "es" and "as" are read as E♭ and A♭.
func Parse(s string) (Pitch, error) {
	if s == "" {
		return Pitch{}, &errors.ParseError{Type: "Pitch", Value: s}
	}
	name, err := ParseNoteName(s[:1])
	if err != nil {
		return Pitch{}, &errors.ParseError{Type: "Pitch", Value: s}
	}
	rest := s[1:]
	if (name == E || name == A) && strings.HasPrefix(rest, "s") {
		rest = "e" + rest
	}
	acc, err := ParseAccidental(rest)
	if err != nil {
		return Pitch{}, &errors.ParseError{Type: "Pitch", Value: s}
	}
	return Pitch{Name: name, Accidental: acc}, nil
}

// MustParse is like Parse but panics on error. It is intended for literal
// tables and tests.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// TypeName returns "Pitch".
func (p Pitch) TypeName() string {
	return "Pitch"
}

// Redacted returns the same string representation as String().
func (p Pitch) Redacted() string {
	return p.String()
}

// IsZero reports whether p is C natural.
func (p Pitch) IsZero() bool {
	return p == Pitch{}
}

// Equal reports whether p is spelled identically to other, which may be a
// Pitch or *Pitch.
func (p Pitch) Equal(other any) bool {
	switch v := other.(type) {
	case Pitch:
		return p == v
	case *Pitch:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if the letter name is invalid.
func (p Pitch) Validate() error {
	if !p.Name.Valid() {
		return &errors.ValidationError{
			Type:   "Pitch",
			Field:  "Name",
			Reason: "invalid NoteName value",
			Value:  int(p.Name),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Pitch using the ASCII form.
func (p Pitch) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p.ASCII())
}

// UnmarshalJSON implements json.Unmarshaler for Pitch.
func (p *Pitch) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: data, Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Pitch using the ASCII form.
func (p Pitch) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.ASCII(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Pitch.
func (p *Pitch) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Pitch.
func (p Pitch) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.ASCII()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Pitch.
func (p *Pitch) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return &errors.UnmarshalError{Type: "Pitch", Data: text, Reason: "invalid UTF-8"}
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time checks that Pitch implements the model interfaces.
var (
	_ model.Model           = (*Pitch)(nil)
	_ model.Comparable[any] = Pitch{}
)

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

// Package chord builds chords as scales: a triad quality and optional
// tensions above a root note.
//
// A Chord implements scale.Scale for the tones that fit within one octave
// (the triad and any seventh), so scale.Spell works on it unchanged.
// Chord.Notes additionally spells the compound tensions from the root
// raised by an octave:
//
//	c := chord.MustNew(pitch.MustParseNote("C4"), chord.Major, chord.Seventh, chord.Ninth)
//	c.Notes()  // C4, E4, G4, B♭4, D5
//	c.Symbol() // C7(9)
package chord

import (
	"encoding/json"
	"slices"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"dirpx.dev/dxtheory/dxcore/model/scale"
	"gopkg.in/yaml.v3"
)

// Chord is an immutable chord rooted at a note. The zero value is a C0 major
// triad.
type Chord struct {
	root     pitch.Note
	quality  Quality
	tensions []Tension
}

// New returns the chord of quality q rooted at root with the given tensions.
// Tensions are kept in ascending order. A repeated tension, or Seventh
// together with MajorSeventh, is a *ValidationError.
func New(root pitch.Note, q Quality, tensions ...Tension) (Chord, error) {
	ts := slices.Clone(tensions)
	slices.Sort(ts)
	c := Chord{root: root, quality: q, tensions: ts}
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(root pitch.Note, q Quality, tensions ...Tension) Chord {
	c, err := New(root, q, tensions...)
	if err != nil {
		panic(err)
	}
	return c
}

// Root returns the root note.
func (c Chord) Root() pitch.Note {
	return c.root
}

// Quality returns the triad quality.
func (c Chord) Quality() Quality {
	return c.quality
}

// Tensions returns a copy of the tensions in ascending order.
func (c Chord) Tensions() []Tension {
	return slices.Clone(c.tensions)
}

// Has reports whether the chord carries tension t.
func (c Chord) Has(t Tension) bool {
	return slices.Contains(c.tensions, t)
}

// Intervals returns the triad plus the seventh, if any. Compound tensions
// are not part of the set.
func (c Chord) Intervals() scale.Set {
	var sevenths []interval.Interval
	for _, t := range c.tensions {
		if !t.Compound() {
			sevenths = append(sevenths, t.Interval())
		}
	}
	set, err := c.quality.Triad().With(sevenths...)
	if err != nil {
		panic(err)
	}
	return set
}

// Notes spells the chord in ascending order: the within-octave tones from
// scale.Spell, then each compound tension leapt from the root an octave up.
func (c Chord) Notes() pitch.Notes {
	notes := scale.Spell(c)
	top := c.root.Leap(interval.PerfectOctave)
	for _, t := range c.tensions {
		if t.Compound() {
			notes = append(notes, top.Leap(t.Interval()))
		}
	}
	return notes
}

// Symbol returns the chord symbol: root pitch, quality suffix, seventh,
// then compound tensions in parentheses ("Cm7", "E♭M7(9)", "Bø7", "D7sus4").
func (c Chord) Symbol() string {
	var b strings.Builder
	b.WriteString(c.root.Pitch.String())

	switch {
	case c.quality == Diminished && c.Has(Seventh):
		b.WriteString("ø7")
	case c.quality == Sus4 || c.quality == Sus2:
		b.WriteString(c.sevenths())
		b.WriteString(c.quality.Symbol())
	default:
		b.WriteString(c.quality.Symbol())
		b.WriteString(c.sevenths())
	}

	var compound []string
	for _, t := range c.tensions {
		if t.Compound() {
			compound = append(compound, t.String())
		}
	}
	if len(compound) > 0 {
		b.WriteString("(" + strings.Join(compound, ",") + ")")
	}
	return b.String()
}

func (c Chord) sevenths() string {
	switch {
	case c.Has(Seventh):
		return SeventhStr
	case c.Has(MajorSeventh):
		return MajorSeventhStr
	default:
		return ""
	}
}

// String returns the chord symbol followed by the root note in brackets
// ("C7(9) [C4]").
func (c Chord) String() string {
	return c.Symbol() + " [" + c.root.String() + "]"
}

// TypeName returns "Chord".
func (c Chord) TypeName() string {
	return "Chord"
}

// Redacted returns the same string representation as String().
func (c Chord) Redacted() string {
	return c.String()
}

// IsZero reports whether c is the zero chord.
func (c Chord) IsZero() bool {
	return c.root.IsZero() && c.quality == Major && len(c.tensions) == 0
}

// Equal reports whether c equals other, which may be a Chord or *Chord.
func (c Chord) Equal(other any) bool {
	switch v := other.(type) {
	case Chord:
		return c.equal(v)
	case *Chord:
		if v == nil {
			return false
		}
		return c.equal(*v)
	default:
		return false
	}
}

func (c Chord) equal(o Chord) bool {
	return c.root == o.root && c.quality == o.quality && slices.Equal(c.tensions, o.tensions)
}

// Validate checks the root, the quality and the tensions.
func (c Chord) Validate() error {
	if err := c.root.Validate(); err != nil {
		return err
	}
	if err := c.quality.Validate(); err != nil {
		return err
	}
	for i, t := range c.tensions {
		if err := t.Validate(); err != nil {
			return err
		}
		if slices.Contains(c.tensions[:i], t) {
			return &errors.ValidationError{
				Type:   "Chord",
				Field:  "Tensions",
				Reason: "duplicate tension " + t.String(),
				Value:  int(t),
			}
		}
	}
	if c.Has(Seventh) && c.Has(MajorSeventh) {
		return &errors.ValidationError{
			Type:   "Chord",
			Field:  "Tensions",
			Reason: "cannot combine 7 and M7",
		}
	}
	return nil
}

type chordDoc struct {
	Root     pitch.Note `json:"root" yaml:"root"`
	Quality  Quality    `json:"quality" yaml:"quality"`
	Tensions []Tension  `json:"tensions,omitempty" yaml:"tensions,omitempty"`
}

// MarshalJSON encodes the chord as {"root": "C4", "quality": "major",
// "tensions": ["7", "9"]}.
func (c Chord) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(chordDoc{Root: c.root, Quality: c.quality, Tensions: c.tensions})
}

// UnmarshalJSON implements json.Unmarshaler for Chord.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var doc chordDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.UnmarshalError{Type: "Chord", Data: data, Reason: err.Error()}
	}
	parsed, err := New(doc.Root, doc.Quality, doc.Tensions...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Chord.
func (c Chord) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return chordDoc{Root: c.root, Quality: c.quality, Tensions: c.tensions}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Chord.
func (c *Chord) UnmarshalYAML(node *yaml.Node) error {
	var doc chordDoc
	if err := node.Decode(&doc); err != nil {
		return &errors.UnmarshalError{Type: "Chord", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := New(doc.Root, doc.Quality, doc.Tensions...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time checks for Chord.
var (
	_ scale.Scale = Chord{}
	_ model.Model = (*Chord)(nil)
)

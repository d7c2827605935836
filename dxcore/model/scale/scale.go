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

// Package scale assembles scales from a root note and a set of spelled
// intervals.
//
// A scale is anything that can report its root and its Set of intervals
// above that root. Spell turns such a value into concrete notes by leaping
// the root by every interval in size order, so enharmonic spelling comes
// entirely from the intervals: E♭ major yields A♭, never G♯.
//
// The seven diatonic modes are not listed one by one. Lydian is the only
// literal table; every other mode is derived from its predecessor by
// substituting a single interval (see Mode).
package scale

import (
	"encoding/json"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"gopkg.in/yaml.v3"
)

// Scale is implemented by every value that can be spelled.
type Scale interface {
	// Intervals returns the intervals above the root, one per number.
	Intervals() Set

	// Root returns the note the intervals are measured from.
	Root() pitch.Note
}

// Spell returns the notes of s in ascending order. The intervals are sorted
// by size, then by diatonic steps, and each note is the root leapt by one of
// them.
func Spell(s Scale) pitch.Notes {
	root := s.Root()
	sorted := s.Intervals().Sorted()
	notes := make(pitch.Notes, 0, len(sorted))
	for _, i := range sorted {
		notes = append(notes, root.Leap(i))
	}
	return notes
}

// Derived non-modal sets.
var (
	// HarmonicMinor is Aeolian with its seventh raised.
	HarmonicMinor = Aeolian.Intervals().Substitute(interval.MajorSeventh)

	// MelodicMinor is the ascending melodic minor: Dorian with its seventh
	// raised.
	MelodicMinor = Dorian.Intervals().Substitute(interval.MajorSeventh)

	// MajorPentatonic drops the fourth and the seventh of Ionian.
	MajorPentatonic = MustSet(
		interval.PerfectUnison,
		interval.MajorSecond,
		interval.MajorThird,
		interval.PerfectFifth,
		interval.MajorSixth,
	)

	// MinorPentatonic drops the second and the sixth of Aeolian.
	MinorPentatonic = MustSet(
		interval.PerfectUnison,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSeventh,
	)
)

// Diatonic is a mode rooted at a note.
type Diatonic struct {
	root pitch.Note
	mode Mode
}

// NewDiatonic returns the mode m rooted at root.
func NewDiatonic(root pitch.Note, m Mode) Diatonic {
	return Diatonic{root: root, mode: m}
}

// Major returns the Ionian scale rooted at root.
func Major(root pitch.Note) Diatonic {
	return Diatonic{root: root, mode: Ionian}
}

// Minor returns the Aeolian (natural minor) scale rooted at root.
func Minor(root pitch.Note) Diatonic {
	return Diatonic{root: root, mode: Aeolian}
}

// Root returns the first note of the scale.
func (d Diatonic) Root() pitch.Note {
	return d.root
}

// Mode returns the mode of the scale.
func (d Diatonic) Mode() Mode {
	return d.mode
}

// Intervals returns the interval set of the scale's mode.
func (d Diatonic) Intervals() Set {
	return d.mode.Intervals()
}

// Notes is shorthand for Spell(d).
func (d Diatonic) Notes() pitch.Notes {
	return Spell(d)
}

// String returns the root followed by the mode name ("E♭4 dorian").
func (d Diatonic) String() string {
	return d.root.String() + " " + d.mode.String()
}

// TypeName returns "Diatonic".
func (d Diatonic) TypeName() string {
	return "Diatonic"
}

// Redacted returns the same string representation as String().
func (d Diatonic) Redacted() string {
	return d.String()
}

// IsZero reports whether d is the zero value (C0 lydian).
func (d Diatonic) IsZero() bool {
	return d == Diatonic{}
}

// Equal reports whether d equals other, which may be a Diatonic or
// *Diatonic.
func (d Diatonic) Equal(other any) bool {
	switch v := other.(type) {
	case Diatonic:
		return d == v
	case *Diatonic:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks the root and the mode.
func (d Diatonic) Validate() error {
	if err := d.root.Validate(); err != nil {
		return err
	}
	return d.mode.Validate()
}

type diatonicDoc struct {
	Root pitch.Note `json:"root" yaml:"root"`
	Mode Mode       `json:"mode" yaml:"mode"`
}

// MarshalJSON encodes the scale as {"root": "Eb4", "mode": "dorian"}.
func (d Diatonic) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(diatonicDoc{Root: d.root, Mode: d.mode})
}

// UnmarshalJSON implements json.Unmarshaler for Diatonic.
func (d *Diatonic) UnmarshalJSON(data []byte) error {
	var doc diatonicDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.UnmarshalError{Type: "Diatonic", Data: data, Reason: err.Error()}
	}
	*d = NewDiatonic(doc.Root, doc.Mode)
	return d.Validate()
}

// MarshalYAML implements yaml.Marshaler for Diatonic.
func (d Diatonic) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return diatonicDoc{Root: d.root, Mode: d.mode}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Diatonic.
func (d *Diatonic) UnmarshalYAML(node *yaml.Node) error {
	var doc diatonicDoc
	if err := node.Decode(&doc); err != nil {
		return &errors.UnmarshalError{Type: "Diatonic", Data: []byte(node.Value), Reason: err.Error()}
	}
	*d = NewDiatonic(doc.Root, doc.Mode)
	return d.Validate()
}

// Custom is a scale with an arbitrary interval set.
type Custom struct {
	name string
	root pitch.Note
	set  Set
}

// New returns a custom scale of the given intervals rooted at root.
func New(root pitch.Note, set Set) Custom {
	return Custom{root: root, set: set}
}

// Named returns a copy of c carrying name.
func (c Custom) Named(name string) Custom {
	c.name = name
	return c
}

// Name returns the name given with Named, or "" for anonymous scales.
func (c Custom) Name() string {
	return c.name
}

// Root returns the first note of the scale.
func (c Custom) Root() pitch.Note {
	return c.root
}

// Intervals returns the scale's interval set.
func (c Custom) Intervals() Set {
	return c.set
}

// Notes is shorthand for Spell(c).
func (c Custom) Notes() pitch.Notes {
	return Spell(c)
}

// String returns the root followed by the name, or by the intervals when
// the scale is anonymous.
func (c Custom) String() string {
	if c.name != "" {
		return c.root.String() + " " + c.name
	}
	return c.root.String() + " [" + c.set.String() + "]"
}

// Compile-time checks for the Scale implementations.
var (
	_ Scale       = Diatonic{}
	_ Scale       = Custom{}
	_ model.Model = (*Diatonic)(nil)
)

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
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/dxtheory/dxcore/errors"
	"dirpx.dev/dxtheory/dxcore/model"
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"gopkg.in/yaml.v3"
)

// Octave is a register number. It increases by one each time a note moves
// up across the B→C letter boundary and decreases by one moving down across
// C→B. Which register is called "4" is up to the caller; dxtheory only
// counts boundary crossings.
type Octave uint

// DefaultOctave is the register used when a Pitch is rendered as a code
// literal without one.
const DefaultOctave Octave = 4

// Note is a Pitch placed in an Octave.
type Note struct {
	Pitch  Pitch  `json:"pitch" yaml:"pitch"`
	Octave Octave `json:"octave" yaml:"octave"`
}

// NewNote returns the note spelled name+acc in octave.
func NewNote(name NoteName, acc Accidental, octave Octave) Note {
	return Note{Pitch: New(name, acc), Octave: octave}
}

// AtOctave places p in octave.
func AtOctave(p Pitch, octave Octave) Note {
	return Note{Pitch: p, Octave: octave}
}

// StepForward moves to the next letter name, adjust semitones higher. The
// octave increases when the letter wraps from B to C, whatever the
// accidentals.
func (n Note) StepForward(adjust int) Note {
	next := Note{Pitch: n.Pitch.StepForward(adjust), Octave: n.Octave}
	if n.Pitch.Name == B {
		next.Octave++
	}
	return next
}

// StepBackward moves to the previous letter name, adjust semitones lower.
// The octave decreases when the letter wraps from C to B. Wrapping below
// octave 0 returns an *errors.OctaveUnderflowError.
func (n Note) StepBackward(adjust int) (Note, error) {
	prev := Note{Pitch: n.Pitch.StepBackward(adjust), Octave: n.Octave}
	if n.Pitch.Name == C {
		if n.Octave == 0 {
			return n, &errors.OctaveUnderflowError{Note: n.String(), Op: "step backward"}
		}
		prev.Octave--
	}
	return prev, nil
}

// Leap returns the note i above n.
//
// The octave is advanced once per B→C letter crossing during the walk, so
// B4 up a minor second is C5 and B♯4 up a diminished second is C5 too.
func (n Note) Leap(i interval.Interval) Note {
	for range i.DiatonicSteps() {
		n = n.StepForward(0)
	}
	n.Pitch.Accidental += Accidental(i.Size())
	return n
}

// Fall returns the note i below n, or an *errors.OctaveUnderflowError if the
// walk would cross below octave 0.
func (n Note) Fall(i interval.Interval) (Note, error) {
	start := n
	for range i.DiatonicSteps() {
		var err error
		if n, err = n.StepBackward(0); err != nil {
			return start, &errors.OctaveUnderflowError{
				Note: start.String(),
				Op:   "fall a " + i.Name(),
			}
		}
	}
	n.Pitch.Accidental -= Accidental(i.Size())
	return n, nil
}

// Semitones returns the absolute chromatic position of n, counting C
// natural of octave 0 as 0. B♯3 and C4 share a position.
func (n Note) Semitones() int {
	return int(n.Octave)*12 + n.Pitch.Name.Base() + int(n.Pitch.Accidental)
}

// Compare orders notes by sounding height, then by letter name, so that
// enharmonic spellings have a stable order. It returns -1, 0 or +1.
func (n Note) Compare(m Note) int {
	switch a, b := n.Semitones(), m.Semitones(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	switch {
	case n.Octave != m.Octave:
		if n.Octave < m.Octave {
			return -1
		}
		return 1
	default:
		return n.Pitch.Compare(m.Pitch)
	}
}

// String returns the display form ("E♭4").
func (n Note) String() string {
	return n.Pitch.String() + strconv.FormatUint(uint64(n.Octave), 10)
}

// ASCII returns the plain-text form ("Eb4").
func (n Note) ASCII() string {
	return n.Pitch.ASCII() + strconv.FormatUint(uint64(n.Octave), 10)
}

// Literal returns the code-literal form of n ("ees4"). It is accepted by
// ParseNote.
func (n Note) Literal() string {
	return n.Pitch.Dutch() + strconv.FormatUint(uint64(n.Octave), 10)
}

// GoString returns a Go expression that constructs n.
func (n Note) GoString() string {
	return fmt.Sprintf("pitch.NewNote(pitch.%s, %d, %d)", n.Pitch.Name, int(n.Pitch.Accidental), n.Octave)
}

// ParseNote parses a pitch followed by a decimal octave: "Eb4", "E♭4",
// "ees4", "C𝄪0".
func ParseNote(s string) (Note, error) {
	cut := strings.TrimRightFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if cut == s {
		return Note{}, &errors.ParseError{Type: "Note", Value: s}
	}
	p, err := Parse(cut)
	if err != nil {
		return Note{}, &errors.ParseError{Type: "Note", Value: s}
	}
	o, err := strconv.ParseUint(s[len(cut):], 10, 32)
	if err != nil {
		return Note{}, &errors.ParseError{Type: "Note", Value: s}
	}
	return Note{Pitch: p, Octave: Octave(o)}, nil
}

// MustParseNote is like ParseNote but panics on error.
func MustParseNote(s string) Note {
	n, err := ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

// TypeName returns "Note".
func (n Note) TypeName() string {
	return "Note"
}

// Redacted returns the same string representation as String().
func (n Note) Redacted() string {
	return n.String()
}

// IsZero reports whether n is C natural in octave 0.
func (n Note) IsZero() bool {
	return n == Note{}
}

// Equal reports whether n is spelled identically to other, which may be a
// Note or *Note.
func (n Note) Equal(other any) bool {
	switch v := other.(type) {
	case Note:
		return n == v
	case *Note:
		if v == nil {
			return false
		}
		return n == *v
	default:
		return false
	}
}

// Validate reports whether the pitch is valid.
func (n Note) Validate() error {
	if err := n.Pitch.Validate(); err != nil {
		return fmt.Errorf("Note.Pitch: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Note using the ASCII form.
func (n Note) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n.ASCII())
}

// UnmarshalJSON implements json.Unmarshaler for Note.
func (n *Note) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Note", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Note using the ASCII form.
func (n Note) MarshalYAML() (any, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.ASCII(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Note.
func (n *Note) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Note", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Note.
func (n Note) MarshalText() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return []byte(n.ASCII()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Note.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compile-time checks that Note implements the model interfaces.
var (
	_ model.Model           = (*Note)(nil)
	_ model.Comparable[any] = Note{}
)

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
	"slices"
	"strings"

	"dirpx.dev/dxtheory/dxcore/model"
)

// Notes is an ordered sequence of notes, typically a spelled scale or chord.
type Notes []Note

// String joins the display forms with ", " ("C4, D4, E4").
func (ns Notes) String() string {
	return ns.join(Note.String, ", ")
}

// ASCII joins the plain-text forms with ", " ("Eb4, F4, G4").
func (ns Notes) ASCII() string {
	return ns.join(Note.ASCII, ", ")
}

// Literal returns the code-literal form of the sequence ("[ees4, f4, g4]").
func (ns Notes) Literal() string {
	return "[" + ns.join(Note.Literal, ", ") + "]"
}

func (ns Notes) join(format func(Note) string, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = format(n)
	}
	return strings.Join(parts, sep)
}

// Pitches drops the octaves and returns the pitches in sequence order.
func (ns Notes) Pitches() []Pitch {
	out := make([]Pitch, len(ns))
	for i, n := range ns {
		out[i] = n.Pitch
	}
	return out
}

// PitchClasses returns the distinct spelled pitches of the sequence, ignoring
// octave, ordered by Pitch.Compare. E♭4 and E♭5 collapse to one entry; D♯
// and E♭ stay distinct.
func (ns Notes) PitchClasses() []Pitch {
	out := ns.Pitches()
	slices.SortFunc(out, Pitch.Compare)
	return slices.Compact(out)
}

// Classes returns the distinct numeric pitch classes (0-11) of the sequence
// in ascending order.
func (ns Notes) Classes() []int {
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Pitch.Class()
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Letters returns the distinct letter names of the sequence in C..B order.
func (ns Notes) Letters() []NoteName {
	out := make([]NoteName, len(ns))
	for i, n := range ns {
		out[i] = n.Pitch.Name
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// EquivalentIgnoringOctave reports whether ns and other contain the same set
// of spelled pitches, regardless of octave, order or repetition.
func (ns Notes) EquivalentIgnoringOctave(other Notes) bool {
	return slices.Equal(ns.PitchClasses(), other.PitchClasses())
}

// Clone returns a copy of ns that shares no backing array with it.
func (ns Notes) Clone() Notes {
	return slices.Clone(ns)
}

// Compile-time check that Notes implements model.Cloneable.
var _ model.Cloneable[Notes] = Notes(nil)
